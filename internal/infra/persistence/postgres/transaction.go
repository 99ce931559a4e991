// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"cargofly/config"
	domainerrors "cargofly/internal/domain/errors"
	"cargofly/internal/domain/repository"

	"github.com/avast/retry-go/v4"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	defaultRetryAttempts uint          = 3
	defaultRetryDelay    time.Duration = 100 * time.Millisecond
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
// Execute retries the whole transaction a bounded number of times with
// exponential backoff when the failure is transient (backend unreachable,
// serialization failure); business errors are never retried.
type gormTransactionManager struct {
	db       *gorm.DB
	attempts uint
	delay    time.Duration
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific GORM transaction object and uses it to create
// repository instances that are bound to that single transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

// ShipmentRepo creates a shipment repository bound to the transaction.
func (f *gormRepositoryFactory) ShipmentRepo() repository.ShipmentRepository {
	return NewShipmentRepository(f.tx)
}

// TrackingEventRepo creates a tracking event repository bound to the transaction.
func (f *gormRepositoryFactory) TrackingEventRepo() repository.TrackingEventRepository {
	return NewTrackingEventRepository(f.tx)
}

// WalletRepo creates a wallet repository bound to the transaction.
func (f *gormRepositoryFactory) WalletRepo() repository.WalletRepository {
	return NewWalletRepository(f.tx)
}

// UserRepo creates a user repository bound to the transaction.
func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(db *gorm.DB, cfg *config.Config) repository.TransactionManager {
	attempts := defaultRetryAttempts
	delay := defaultRetryDelay
	if cfg != nil && cfg.Retry != nil {
		if cfg.Retry.Attempts > 0 {
			attempts = cfg.Retry.Attempts
		}
		if cfg.Retry.InitialDelay > 0 {
			delay = cfg.Retry.InitialDelay
		}
	}

	return &gormTransactionManager{db: db, attempts: attempts, delay: delay}
}

// Execute runs the given function within a single database transaction,
// retrying transient failures with backoff before surfacing the generic
// database error.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return retry.Do(
		func() error {
			return tm.executeOnce(ctx, fn)
		},
		retry.Context(ctx),
		retry.Attempts(tm.attempts),
		retry.Delay(tm.delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(isTransient),
	)
}

func (tm *gormTransactionManager) executeOnce(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return domainerrors.NewDatabaseExecuteError(tx.Error, "failed to begin transaction")
	}

	// If a panic occurs within the callback, always roll back before
	// re-panicking so the connection is not left holding an open transaction.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	factory := &gormRepositoryFactory{tx: tx}

	if err := fn(factory); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return fmt.Errorf("transaction rollback failed: %v (original error: %w)", rbErr, err)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to commit transaction")
	}

	return nil
}

// isTransient reports whether the error is worth retrying. Business errors
// (validation, insufficient balance, not found, conflicts) map to 4xx codes
// and are final; only infrastructure failures are retried.
func isTransient(err error) bool {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr.HTTPCode() >= http.StatusInternalServerError
	}

	// Repository sentinel errors (not found, duplicates) are final.
	return false
}
