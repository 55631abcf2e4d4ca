package repository

import "context"

// TransactionManager runs a function within a single document-store
// transaction. This keeps the use case layer free of any store driver.
type TransactionManager interface {
	// Execute runs fn inside a transaction. If fn returns an error the
	// transaction aborts and no write is observable; the store may also
	// retry fn on contention, so fn must be side-effect free outside the
	// transaction-bound repositories it is given.
	Execute(ctx context.Context, fn func(repos RepositoryFactory) error) error
}

// RepositoryFactory yields repository instances bound to one transaction, so
// that reads and writes within it commit or abort together.
type RepositoryFactory interface {
	// NewCustomerMetricRepository returns a CustomerMetricRepository bound to the current transaction.
	NewCustomerMetricRepository() CustomerMetricRepository

	// NewStatsRepository returns a StatsRepository bound to the current transaction.
	NewStatsRepository() StatsRepository
}
