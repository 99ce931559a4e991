// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"cargofly/internal/domain/entity"
	"cargofly/internal/errors"

	"github.com/shopspring/decimal"
)

// ErrInsufficientBalance is returned by DebitBalance when the conditional
// decrement fails because the cached balance is lower than the amount.
var ErrInsufficientBalance = errors.New("insufficient wallet balance")

// WalletRepository defines the wallet ledger and the atomic balance cache
// operations. The cached balance on the user row is only ever changed through
// CreditBalance/DebitBalance, inside the same transaction that writes the
// ledger entry, so the two can never drift apart.
type WalletRepository interface {
	// CreateTransaction appends an immutable ledger entry.
	CreateTransaction(ctx context.Context, tx *entity.WalletTransaction) error

	// ListTransactions returns a user's ledger entries newest-first.
	ListTransactions(ctx context.Context, userID string) ([]*entity.WalletTransaction, error)

	// CreditBalance atomically increments the user's cached balance.
	CreditBalance(ctx context.Context, userID string, amount decimal.Decimal) error

	// DebitBalance atomically decrements the user's cached balance, guarded by
	// balance >= amount. Returns ErrInsufficientBalance when the guard fails.
	DebitBalance(ctx context.Context, userID string, amount decimal.Decimal) error

	// SumSuccessful recomputes the balance from the ledger: sum of success
	// credits minus sum of success debits. Used to verify the cache.
	SumSuccessful(ctx context.Context, userID string) (decimal.Decimal, error)
}
