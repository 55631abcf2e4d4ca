// Package firebase provides the shared Firebase app handle used by both the
// Firestore persistence layer and the FCM push transport.
package firebase

import (
	"context"

	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/option"

	"rebook/config"
)

// Params defines the parameters required for the Firebase app
type Params struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
}

// New initializes the Firebase app from configuration. Credentials fall back
// to application default credentials when no file is configured.
func New(params Params) (*firebase.App, error) {
	cfg := params.Config.Firebase
	if cfg == nil {
		return nil, errors.New("firebase configuration is required")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize firebase app")
	}

	return app, nil
}
