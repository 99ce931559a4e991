package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateTrackingNumber_Format(t *testing.T) {
	for range 100 {
		tn := GenerateTrackingNumber()

		assert.Len(t, tn, 11)
		assert.True(t, strings.HasPrefix(tn, "CF-"), tn)
		assert.True(t, IsTrackingNumber(tn), tn)

		for _, r := range tn[len("CF-"):] {
			assert.True(t, strings.ContainsRune(trackingAlphabet, r), tn)
		}
	}
}

func TestGenerateTrackingNumber_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		seen[GenerateTrackingNumber()] = true
	}

	// 50 draws from a 36^8 space colliding down to one value would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 1)
}

func TestNormalizeTrackingNumber(t *testing.T) {
	assert.Equal(t, "CF-ABC12345", NormalizeTrackingNumber("cf-abc12345"))
	assert.Equal(t, "CF-ABC12345", NormalizeTrackingNumber("  CF-abc12345  "))
	assert.Equal(t, "CF-ABC12345", NormalizeTrackingNumber("CF-ABC12345"))
}

func TestIsTrackingNumber(t *testing.T) {
	cases := []struct {
		input string
		valid bool
	}{
		{"CF-ABC12345", true},
		{"cf-abc12345", true},
		{" CF-ABC12345 ", true},
		{"CF-00000000", true},
		{"CF-ABC1234", false},
		{"CF-ABC123456", false},
		{"XX-ABC12345", false},
		{"CF-abc1234!", false},
		{"CFABC12345", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, IsTrackingNumber(tc.input), tc.input)
	}
}
