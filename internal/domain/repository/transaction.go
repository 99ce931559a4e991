package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
//
// Every multi-write operation in the system (shipment create + first tracking
// event, status update + transition event, ledger entry + balance change) must
// run through Execute so the writes commit or roll back together.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides a way to get repository instances that are bound to a specific transaction.
// This ensures all repository operations within a transaction use the same database connection.
type RepositoryFactory interface {
	// ShipmentRepo returns a ShipmentRepository bound to the current transaction.
	ShipmentRepo() ShipmentRepository

	// TrackingEventRepo returns a TrackingEventRepository bound to the current transaction.
	TrackingEventRepo() TrackingEventRepository

	// WalletRepo returns a WalletRepository bound to the current transaction.
	WalletRepo() WalletRepository

	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository
}
