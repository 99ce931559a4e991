// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// User is the profile record kept for each authenticated account. Identity
// itself lives with the external auth provider; this record is created lazily
// on first sign-in with a zero wallet balance.
//
// WalletBalance is a denormalized cache of the wallet ledger: it must always
// equal the sum of success credits minus success debits for the user, and is
// only ever changed atomically together with a new ledger entry.
type User struct {
	UID           string          `json:"uid"`               // The auth provider's unique identifier.
	Email         string          `json:"email"`             // Primary contact email.
	DisplayName   string          `json:"displayName"`       // The user's display name.
	Phone         string          `json:"phone,omitempty"`   // Optional contact phone.
	Company       string          `json:"company,omitempty"` // Optional company name.
	Role          Role            `json:"role"`              // customer, admin or staff.
	WalletBalance decimal.Decimal `json:"walletBalance"`     // Cached ledger sum, see above.
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
