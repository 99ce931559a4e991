package postgres

import (
	"cargofly/internal/errors"
	"cargofly/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema for all persistence models.
// Ordering matters: users before wallet_transactions, shipments before
// tracking_events, so foreign keys resolve.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.UserModel{},
		&model.WalletTransactionModel{},
		&model.ShipmentModel{},
		&model.TrackingEventModel{},
	); err != nil {
		return errors.Wrap(err, "failed to run auto migration")
	}

	return nil
}
