// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"cargofly/internal/domain/entity"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"
	"cargofly/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// walletRepository implements the repository.WalletRepository interface.
//
// The cached balance column is never read-modified-written: credits and debits
// run as single UPDATE statements so concurrent calls for the same user cannot
// lose updates, and the debit carries a balance guard in its WHERE clause.
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository is the constructor for walletRepository.
func NewWalletRepository(db *gorm.DB) repository.WalletRepository {
	return &walletRepository{
		db: db,
	}
}

// CreateTransaction appends an immutable ledger entry.
func (repo *walletRepository) CreateTransaction(ctx context.Context, tx *entity.WalletTransaction) error {
	txM := fromWalletTransactionDomain(tx)

	if err := repo.db.WithContext(ctx).Create(txM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrInvalidAmount.WrapMessage("ledger amounts must be positive")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create wallet transaction")
	}

	tx.ID = txM.ID
	tx.CreatedAt = txM.CreatedAt

	return nil
}

// ListTransactions returns a user's ledger entries newest-first.
func (repo *walletRepository) ListTransactions(ctx context.Context, userID string) ([]*entity.WalletTransaction, error) {
	var txMs []model.WalletTransactionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&txMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list wallet transactions")
	}

	txs := make([]*entity.WalletTransaction, 0, len(txMs))
	for i := range txMs {
		txs = append(txs, toWalletTransactionDomain(&txMs[i]))
	}

	return txs, nil
}

// CreditBalance atomically increments the user's cached balance.
func (repo *walletRepository) CreditBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uid = ?", userID).
		Update("wallet_balance", gorm.Expr("wallet_balance + ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to credit wallet balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}

// DebitBalance atomically decrements the user's cached balance. The balance
// guard in the WHERE clause makes an overdraft impossible even under
// concurrent debits; zero rows affected means the guard failed.
func (repo *walletRepository) DebitBalance(ctx context.Context, userID string, amount decimal.Decimal) error {
	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("uid = ? AND wallet_balance >= ?", userID, amount).
		Update("wallet_balance", gorm.Expr("wallet_balance - ?", amount))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to debit wallet balance")
	}
	if result.RowsAffected == 0 {
		return repository.ErrInsufficientBalance
	}

	return nil
}

// SumSuccessful recomputes the balance from the ledger.
func (repo *walletRepository) SumSuccessful(ctx context.Context, userID string) (decimal.Decimal, error) {
	var sum decimal.NullDecimal

	err := repo.db.WithContext(ctx).
		Model(&model.WalletTransactionModel{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN amount ELSE -amount END), 0)", string(entity.TransactionCredit)).
		Where("user_id = ? AND status = ?", userID, string(entity.TransactionSuccess)).
		Scan(&sum).Error
	if err != nil {
		return decimal.Zero, errors.Wrap(err, "failed to sum wallet ledger")
	}

	if !sum.Valid {
		return decimal.Zero, nil
	}

	return sum.Decimal, nil
}

// toWalletTransactionDomain converts a GORM WalletTransactionModel to a domain entity.
func toWalletTransactionDomain(data *model.WalletTransactionModel) *entity.WalletTransaction {
	if data == nil {
		return nil
	}

	return &entity.WalletTransaction{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        entity.TransactionType(data.Type),
		Amount:      data.Amount,
		Description: data.Description,
		Reference:   data.Reference,
		Status:      entity.TransactionStatus(data.Status),
		CreatedAt:   data.CreatedAt,
	}
}

// fromWalletTransactionDomain converts a domain entity to a GORM WalletTransactionModel.
func fromWalletTransactionDomain(data *entity.WalletTransaction) *model.WalletTransactionModel {
	if data == nil {
		return nil
	}

	return &model.WalletTransactionModel{
		ID:          data.ID,
		UserID:      data.UserID,
		Type:        string(data.Type),
		Amount:      data.Amount,
		Description: data.Description,
		Reference:   data.Reference,
		Status:      string(data.Status),
	}
}
