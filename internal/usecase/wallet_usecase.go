package usecase

import (
	"context"

	"cargofly/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletView bundles the cached balance with the ledger, newest-first.
type WalletView struct {
	Balance      decimal.Decimal             `json:"balance"`
	Transactions []*entity.WalletTransaction `json:"transactions"`
}

// WalletUsecase defines the wallet ledger use cases. Every mutation writes a
// ledger entry and adjusts the cached balance inside one transaction.
type WalletUsecase interface {
	// FundWallet credits the wallet. Amount must be positive.
	FundWallet(ctx context.Context, userID string, amount decimal.Decimal, reference string) error

	// PayWithWallet debits the wallet for an arbitrary charge. Fails with
	// ErrInsufficientBalance without writing a ledger entry when the balance
	// is too low.
	PayWithWallet(ctx context.Context, userID string, amount decimal.Decimal, reference string) error

	// PayForShipment charges the shipment's total price to the owner's wallet
	// and marks the shipment paid, all in one transaction.
	PayForShipment(ctx context.Context, userID string, shipmentID uuid.UUID) error

	// GetWallet returns the cached balance and the transaction history.
	GetWallet(ctx context.Context, userID string) (*WalletView, error)
}
