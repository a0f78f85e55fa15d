package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// It lets the use case layer group repository calls atomically without
// depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs fn within a single database transaction. If fn returns
	// an error the transaction is rolled back, otherwise it is committed.
	// Repositories obtained from the factory are bound to that transaction.
	Execute(ctx context.Context, fn func(repoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repository instances bound to one transaction,
// so all operations inside an Execute callback share the same connection.
type RepositoryFactory interface {
	// UserRepo returns a UserRepository bound to the current transaction.
	UserRepo() UserRepository

	// TaskRepo returns a TaskRepository bound to the current transaction.
	TaskRepo() TaskRepository
}
