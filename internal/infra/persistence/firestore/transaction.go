package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"rebook/internal/domain/repository"
)

// firestoreTransactionManager implements the domain's TransactionManager
// interface on Firestore transactions.
type firestoreTransactionManager struct {
	client *firestore.Client
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory
// interface. It holds one *firestore.Transaction and creates repository
// instances bound to it, so their reads and writes commit or abort together.
type firestoreRepositoryFactory struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

// NewCustomerMetricRepository creates a customer metric repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewCustomerMetricRepository() repository.CustomerMetricRepository {
	return newCustomerMetricRepositoryTx(f.client, f.tx)
}

// NewStatsRepository creates a stats repository bound to the transaction.
func (f *firestoreRepositoryFactory) NewStatsRepository() repository.StatsRepository {
	return newStatsRepositoryTx(f.client, f.tx)
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
// This function will be used as an Fx provider.
func NewTransactionManager(client *firestore.Client) repository.TransactionManager {
	return &firestoreTransactionManager{client: client}
}

// Execute runs the given function within a single Firestore transaction.
// Firestore may retry fn on contention, so fn must be side-effect free
// outside the transaction-bound repositories it is given. All reads must
// happen before the first write; the repositories preserve that order.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	err := tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		factory := &firestoreRepositoryFactory{client: tm.client, tx: tx}

		return fn(factory)
	})
	if err != nil {
		return errors.Wrap(err, "transaction failed")
	}

	return nil
}
