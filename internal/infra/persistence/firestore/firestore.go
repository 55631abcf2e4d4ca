// Package firestore contains the concrete implementation of the persistence
// layer on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Collection layout. Customer metric records live under their brand so the
// "customers" collection-group query spans all brands at once.
const (
	collectionAppointments = "appointments"
	collectionBrands       = "brands"
	collectionCustomers    = "customers"
	collectionLocations    = "locations"
	collectionStaff        = "staff"
	collectionDailyStats   = "daily_stats"
	collectionMonthlyStats = "monthly_stats"
)

// ClientParams holds dependencies for the Firestore client, injected by Fx
type ClientParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	App    *firebase.App
	Logger *slog.Logger
}

// NewClient creates the Firestore client from the shared Firebase app and
// registers its shutdown hook.
func NewClient(params ClientParams) (*firestore.Client, error) {
	client, err := params.App.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get firestore client")
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return client, nil
}
