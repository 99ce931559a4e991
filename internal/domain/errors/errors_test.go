package errors

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetails_MatchesSentinel(t *testing.T) {
	err := ErrInvalidTransition.WithDetails("cannot move from delivered to confirmed")

	assert.True(t, errors.Is(err, ErrInvalidTransition))
	assert.Equal(t, "cannot move from delivered to confirmed", err.Details())

	// The sentinel itself stays untouched.
	assert.Empty(t, ErrInvalidTransition.Details())

	// HTTP and business codes carry over to the detailed copy.
	assert.Equal(t, ErrInvalidTransition.HTTPCode(), err.HTTPCode())
	assert.Equal(t, ErrInvalidTransition.ErrorCode(), err.ErrorCode())
}

func TestBaseError_WithDetails_WrappedStillMatches(t *testing.T) {
	err := errors.Wrap(ErrValidationFailed.WithDetails("shipment id must be a UUID"), "update status")

	assert.True(t, errors.Is(err, ErrValidationFailed))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestBaseError_Sentinels_DoNotMatchEachOther(t *testing.T) {
	assert.False(t, errors.Is(ErrInvalidTransition, ErrInvalidStatus))
	assert.False(t, errors.Is(ErrValidationFailed.WithDetails("x"), ErrForbidden))
}
