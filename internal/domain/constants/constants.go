// Package constants holds shared deployment constants.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"

	// QueueProviderGoogle routes deferred jobs through Cloud Tasks and
	// Pub/Sub; QueueProviderLocal uses in-process timers and plain HTTP
	// for development.
	QueueProviderGoogle = "google"
	QueueProviderLocal  = "local"
)
