package entity

import (
	"math/rand/v2"
	"regexp"
	"strings"
)

const (
	trackingPrefix   = "CF-"
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	trackingLength   = 8
)

// trackingNumberPattern matches a well-formed public tracking number.
var trackingNumberPattern = regexp.MustCompile(`^CF-[A-Z0-9]{8}$`)

// GenerateTrackingNumber produces a human-readable tracking code: "CF-"
// followed by 8 characters drawn uniformly from A-Z and 0-9. The generator
// performs no uniqueness check; the shipment store enforces uniqueness at
// insert time and retries with a fresh code on collision.
func GenerateTrackingNumber() string {
	var sb strings.Builder
	sb.Grow(len(trackingPrefix) + trackingLength)
	sb.WriteString(trackingPrefix)
	for range trackingLength {
		sb.WriteByte(trackingAlphabet[rand.IntN(len(trackingAlphabet))])
	}

	return sb.String()
}

// NormalizeTrackingNumber upper-cases a user-supplied tracking number so
// lookups are case-insensitive.
func NormalizeTrackingNumber(trackingNumber string) string {
	return strings.ToUpper(strings.TrimSpace(trackingNumber))
}

// IsTrackingNumber reports whether the input looks like a tracking number
// after normalization.
func IsTrackingNumber(trackingNumber string) bool {
	return trackingNumberPattern.MatchString(NormalizeTrackingNumber(trackingNumber))
}
