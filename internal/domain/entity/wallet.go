package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType defines the direction of money movement in the wallet ledger.
type TransactionType string

const (
	// TransactionCredit adds funds to the wallet.
	TransactionCredit TransactionType = "credit"
	// TransactionDebit removes funds from the wallet.
	TransactionDebit TransactionType = "debit"
)

// TransactionStatus is the settlement state of a ledger entry. Only success
// transactions count towards the balance.
type TransactionStatus string

const (
	TransactionPending TransactionStatus = "pending"
	TransactionSuccess TransactionStatus = "success"
	TransactionFailed  TransactionStatus = "failed"
)

// WalletTransaction is one immutable entry in a user's wallet ledger. The
// user's balance at any point equals the sum of success credits minus the sum
// of success debits.
type WalletTransaction struct {
	ID          uuid.UUID         `json:"id"`
	UserID      string            `json:"userId"`
	Type        TransactionType   `json:"type"`
	Amount      decimal.Decimal   `json:"amount"` // Always positive; Type carries the sign.
	Description string            `json:"description"`
	Reference   string            `json:"reference,omitempty"` // Optional link to e.g. a shipment ID.
	Status      TransactionStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
}
