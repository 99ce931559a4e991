package impl

import (
	"context"
	"log/slog"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// walletService implements the WalletUsecase interface. Every mutation writes
// the ledger entry and adjusts the cached balance inside one transaction, so
// the two can never drift apart.
type walletService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewWalletService is the constructor for walletService.
func NewWalletService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.WalletUsecase {
	return &walletService{
		txManager: txManager,
		logger:    logger,
	}
}

// FundWallet credits the wallet with a positive amount.
func (srv *walletService) FundWallet(ctx context.Context, userID string, amount decimal.Decimal, reference string) error {
	if !amount.IsPositive() {
		return domainerrors.ErrInvalidAmount.WrapMessage("fund amount " + amount.String())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireUser(ctx, repoFactory, userID); err != nil {
			return err
		}

		tx := &entity.WalletTransaction{
			UserID:      userID,
			Type:        entity.TransactionCredit,
			Amount:      amount,
			Description: "Wallet funding",
			Reference:   reference,
			Status:      entity.TransactionSuccess,
		}
		if err := repoFactory.WalletRepo().CreateTransaction(ctx, tx); err != nil {
			return errors.Wrap(err, "failed to write ledger entry")
		}

		return repoFactory.WalletRepo().CreditBalance(ctx, userID, amount)
	})
	if err != nil {
		return errors.Wrap(err, "failed to fund wallet")
	}

	srv.logger.Info("Wallet funded", "userID", userID, "amount", amount)

	return nil
}

// PayWithWallet debits the wallet for an arbitrary charge. The conditional
// decrement runs first: when the balance is too low the transaction rolls
// back without writing a ledger entry.
func (srv *walletService) PayWithWallet(ctx context.Context, userID string, amount decimal.Decimal, reference string) error {
	if !amount.IsPositive() {
		return domainerrors.ErrInvalidAmount.WrapMessage("payment amount " + amount.String())
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := srv.requireUser(ctx, repoFactory, userID); err != nil {
			return err
		}

		return srv.debit(ctx, repoFactory, userID, amount, "Wallet payment", reference)
	})
	if err != nil {
		return errors.Wrap(err, "failed to pay with wallet")
	}

	srv.logger.Info("Wallet payment", "userID", userID, "amount", amount)

	return nil
}

// PayForShipment charges the shipment's total price to the owner's wallet and
// marks the shipment paid, all in one transaction.
func (srv *walletService) PayForShipment(ctx context.Context, userID string, shipmentID uuid.UUID) error {
	var trackingNumber string

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		shipment, err := repoFactory.ShipmentRepo().FindByID(ctx, shipmentID)
		if err != nil {
			if errors.Is(err, repository.ErrShipmentNotFound) {
				return errors.Wrap(domainerrors.ErrShipmentNotFound, "shipment not found")
			}

			return errors.Wrap(err, "failed to load shipment")
		}
		if shipment.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "shipment belongs to another user")
		}
		if shipment.PaymentStatus == entity.PaymentPaid {
			return domainerrors.ErrValidationFailed.WrapMessage("shipment is already paid")
		}
		trackingNumber = shipment.TrackingNumber

		description := "Payment for shipment " + shipment.TrackingNumber
		if err := srv.debit(ctx, repoFactory, userID, shipment.Price.Total, description, shipmentID.String()); err != nil {
			return err
		}

		return repoFactory.ShipmentRepo().UpdatePayment(ctx, shipmentID, entity.PaymentPaid, "wallet")
	})
	if err != nil {
		return errors.Wrap(err, "failed to pay for shipment")
	}

	srv.logger.Info("Shipment paid from wallet",
		"userID", userID,
		"shipmentID", shipmentID,
		"trackingNumber", trackingNumber,
	)

	return nil
}

// GetWallet returns the cached balance and the ledger, newest-first. The
// cached balance is reconciled against the ledger sum on every read; drift
// indicates a balance write that bypassed the ledger and is logged loudly.
func (srv *walletService) GetWallet(ctx context.Context, userID string) (*usecase.WalletView, error) {
	var view *usecase.WalletView

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByUID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrUserNotFound, "no profile for user")
			}

			return errors.Wrap(err, "failed to load user")
		}

		walletRepo := repoFactory.WalletRepo()

		transactions, err := walletRepo.ListTransactions(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to list wallet transactions")
		}

		ledgerSum, err := walletRepo.SumSuccessful(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to sum wallet ledger")
		}
		if !ledgerSum.Equal(user.WalletBalance) {
			srv.logger.Error("Wallet balance drift detected",
				"userID", userID,
				"cached", user.WalletBalance,
				"ledger", ledgerSum,
			)
		}

		view = &usecase.WalletView{
			Balance:      user.WalletBalance,
			Transactions: transactions,
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get wallet")
	}

	return view, nil
}

// debit performs the conditional balance decrement and, only when it
// succeeds, writes the matching debit ledger entry.
func (srv *walletService) debit(ctx context.Context, repoFactory repository.RepositoryFactory, userID string, amount decimal.Decimal, description, reference string) error {
	if err := repoFactory.WalletRepo().DebitBalance(ctx, userID, amount); err != nil {
		if errors.Is(err, repository.ErrInsufficientBalance) {
			return errors.Wrap(domainerrors.ErrInsufficientBalance, "balance below "+amount.String())
		}

		return errors.Wrap(err, "failed to debit balance")
	}

	tx := &entity.WalletTransaction{
		UserID:      userID,
		Type:        entity.TransactionDebit,
		Amount:      amount,
		Description: description,
		Reference:   reference,
		Status:      entity.TransactionSuccess,
	}
	if err := repoFactory.WalletRepo().CreateTransaction(ctx, tx); err != nil {
		return errors.Wrap(err, "failed to write ledger entry")
	}

	return nil
}

// requireUser fails with ErrUserNotFound when no profile exists for the UID.
func (srv *walletService) requireUser(ctx context.Context, repoFactory repository.RepositoryFactory, userID string) error {
	if _, err := repoFactory.UserRepo().FindByUID(ctx, userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrUserNotFound, "no profile for user")
		}

		return errors.Wrap(err, "failed to load user")
	}

	return nil
}
