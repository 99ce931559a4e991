// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular customer account.
	RoleCustomer Role = "customer"
	// RoleAdmin indicates a back-office administrator.
	RoleAdmin Role = "admin"
	// RoleStaff indicates operations staff who can update shipment statuses.
	RoleStaff Role = "staff"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleStaff:
		return true
	default:
		return false
	}
}

// CanUpdateShipments reports whether the role may move shipments through the
// lifecycle.
func (r Role) CanUpdateShipments() bool {
	return r == RoleAdmin || r == RoleStaff
}
