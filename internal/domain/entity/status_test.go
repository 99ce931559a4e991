package entity

import (
	"testing"

	"cargofly/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentStatus_Progress(t *testing.T) {
	cases := []struct {
		status   ShipmentStatus
		progress int
	}{
		{StatusPending, 0},
		{StatusConfirmed, 15},
		{StatusPickedUp, 30},
		{StatusInTransit, 50},
		{StatusAtHub, 65},
		{StatusOutForDelivery, 85},
		{StatusDelivered, 100},
		{StatusCancelled, 0},
		{StatusReturned, 0},
	}

	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			progress, err := tc.status.Progress()
			require.NoError(t, err)
			assert.Equal(t, tc.progress, progress)
		})
	}
}

func TestShipmentStatus_Progress_Unknown(t *testing.T) {
	_, err := ShipmentStatus("teleported").Progress()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestShipmentStatus_DisplayLabel(t *testing.T) {
	cases := []struct {
		status ShipmentStatus
		label  string
	}{
		{StatusPending, "Pending"},
		{StatusConfirmed, "Confirmed"},
		{StatusPickedUp, "Picked Up"},
		{StatusInTransit, "In Transit"},
		{StatusAtHub, "At Sorting Hub"},
		{StatusOutForDelivery, "Out for Delivery"},
		{StatusDelivered, "Delivered"},
		{StatusCancelled, "Cancelled"},
		{StatusReturned, "Returned"},
	}

	for _, tc := range cases {
		t.Run(tc.status.String(), func(t *testing.T) {
			label, err := tc.status.DisplayLabel()
			require.NoError(t, err)
			assert.Equal(t, tc.label, label)
		})
	}
}

func TestShipmentStatus_DisplayLabel_Unknown(t *testing.T) {
	_, err := ShipmentStatus("").DisplayLabel()

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
}

func TestShipmentStatus_IsValid(t *testing.T) {
	for _, status := range AllStatuses() {
		assert.True(t, status.IsValid(), status.String())
	}

	assert.False(t, ShipmentStatus("unknown").IsValid())
	assert.False(t, ShipmentStatus("").IsValid())
}

func TestShipmentStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusReturned.IsTerminal())

	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusOutForDelivery.IsTerminal())
}

func TestShipmentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		name    string
		from    ShipmentStatus
		to      ShipmentStatus
		allowed bool
	}{
		{"forward one step", StatusPending, StatusConfirmed, true},
		{"forward skipping steps", StatusPending, StatusInTransit, true},
		{"full progression end", StatusOutForDelivery, StatusDelivered, true},
		{"backward", StatusInTransit, StatusConfirmed, false},
		{"same status", StatusInTransit, StatusInTransit, false},
		{"cancel from pending", StatusPending, StatusCancelled, true},
		{"cancel from in transit", StatusInTransit, StatusCancelled, true},
		{"cancel after delivery", StatusDelivered, StatusCancelled, false},
		{"cancel a cancelled shipment", StatusCancelled, StatusCancelled, false},
		{"return before pickup", StatusPending, StatusReturned, false},
		{"return before pickup confirmed", StatusConfirmed, StatusReturned, false},
		{"return after pickup", StatusPickedUp, StatusReturned, true},
		{"return from hub", StatusAtHub, StatusReturned, true},
		{"return after delivery", StatusDelivered, StatusReturned, true},
		{"forward out of delivered", StatusDelivered, StatusInTransit, false},
		{"forward out of cancelled", StatusCancelled, StatusConfirmed, false},
		{"forward out of returned", StatusReturned, StatusInTransit, false},
		{"unknown source", ShipmentStatus("lost"), StatusConfirmed, false},
		{"unknown target", StatusPending, ShipmentStatus("lost"), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestAllStatuses_CoversTable(t *testing.T) {
	statuses := AllStatuses()

	assert.Len(t, statuses, len(statusTable))
	for _, status := range statuses {
		assert.Contains(t, statusTable, status)
	}
}
