// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "cargofly/internal/errors"

// ErrInvalidStatus is returned when an unknown status value is passed to a table lookup.
var ErrInvalidStatus = errors.New("invalid shipment status")

// ShipmentStatus represents a single stage in the shipment lifecycle.
type ShipmentStatus string

const (
	// StatusPending indicates the shipment is created and awaiting pickup.
	StatusPending ShipmentStatus = "pending"
	// StatusConfirmed indicates the booking has been confirmed by operations.
	StatusConfirmed ShipmentStatus = "confirmed"
	// StatusPickedUp indicates the courier has collected the package from the sender.
	StatusPickedUp ShipmentStatus = "picked_up"
	// StatusInTransit indicates the package is moving between locations.
	StatusInTransit ShipmentStatus = "in_transit"
	// StatusAtHub indicates the package is at an intermediate sorting hub.
	StatusAtHub ShipmentStatus = "at_hub"
	// StatusOutForDelivery indicates the package is on the final delivery leg.
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	// StatusDelivered indicates the package has reached the recipient.
	StatusDelivered ShipmentStatus = "delivered"
	// StatusCancelled indicates the shipment was cancelled before delivery.
	StatusCancelled ShipmentStatus = "cancelled"
	// StatusReturned indicates the package was sent back to the sender.
	StatusReturned ShipmentStatus = "returned"
)

// statusMeta holds the static per-status display label, progress percentage,
// and position in the forward progression (-1 for states outside it).
type statusMeta struct {
	label    string
	progress int
	rank     int
}

var statusTable = map[ShipmentStatus]statusMeta{
	StatusPending:        {label: "Pending", progress: 0, rank: 0},
	StatusConfirmed:      {label: "Confirmed", progress: 15, rank: 1},
	StatusPickedUp:       {label: "Picked Up", progress: 30, rank: 2},
	StatusInTransit:      {label: "In Transit", progress: 50, rank: 3},
	StatusAtHub:          {label: "At Sorting Hub", progress: 65, rank: 4},
	StatusOutForDelivery: {label: "Out for Delivery", progress: 85, rank: 5},
	StatusDelivered:      {label: "Delivered", progress: 100, rank: 6},
	StatusCancelled:      {label: "Cancelled", progress: 0, rank: -1},
	StatusReturned:       {label: "Returned", progress: 0, rank: -1},
}

// String returns the string representation of the status.
func (s ShipmentStatus) String() string {
	return string(s)
}

// IsValid checks if the status is one of the nine known values.
func (s ShipmentStatus) IsValid() bool {
	_, ok := statusTable[s]

	return ok
}

// Progress returns the completion percentage (0-100) dictated by the status.
// The shipment's progress field must always equal this value; it is never set
// independently.
func (s ShipmentStatus) Progress() (int, error) {
	meta, ok := statusTable[s]
	if !ok {
		return 0, errors.Wrapf(ErrInvalidStatus, "status %q", string(s))
	}

	return meta.progress, nil
}

// DisplayLabel returns the human-readable label for the status.
func (s ShipmentStatus) DisplayLabel() (string, error) {
	meta, ok := statusTable[s]
	if !ok {
		return "", errors.Wrapf(ErrInvalidStatus, "status %q", string(s))
	}

	return meta.label, nil
}

// IsTerminal reports whether no further transitions are allowed from the status.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusReturned
}

// CanTransitionTo reports whether a transition from s to next is allowed.
// The status only moves forward through the progression. Cancellation is
// allowed from any non-terminal state. A return is only possible once the
// package has physically left the sender.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	cur, ok := statusTable[s]
	if !ok {
		return false
	}
	nxt, ok := statusTable[next]
	if !ok {
		return false
	}

	switch next {
	case StatusCancelled:
		return s != StatusDelivered && s != StatusCancelled && s != StatusReturned
	case StatusReturned:
		return cur.rank >= statusTable[StatusPickedUp].rank || s == StatusDelivered
	default:
		if s == StatusCancelled || s == StatusReturned || s == StatusDelivered {
			return false
		}

		return nxt.rank > cur.rank
	}
}

// AllStatuses returns the nine defined statuses in progression order, with the
// two off-path states (cancelled, returned) last.
func AllStatuses() []ShipmentStatus {
	return []ShipmentStatus{
		StatusPending,
		StatusConfirmed,
		StatusPickedUp,
		StatusInTransit,
		StatusAtHub,
		StatusOutForDelivery,
		StatusDelivered,
		StatusCancelled,
		StatusReturned,
	}
}
