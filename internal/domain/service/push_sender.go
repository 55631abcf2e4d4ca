package service

import (
	"context"
	"errors"
)

// ErrTokenInvalid reports that the transport classified the push credential
// as permanently invalid. Retrying cannot succeed; callers remove the
// credential instead.
var ErrTokenInvalid = errors.New("push token invalid or unregistered")

// PushMessage is a single push notification addressed by credential.
type PushMessage struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// SendResult is the per-message outcome of a bulk send. Invalid marks
// permanently unusable credentials (distinct from transient failures).
type SendResult struct {
	Token   string
	Err     error
	Invalid bool
}

// PushSender is the bulk message-send transport.
type PushSender interface {
	// Send delivers a single message. Returns an error wrapping
	// ErrTokenInvalid when the credential is permanently unusable.
	Send(ctx context.Context, msg PushMessage) error

	// SendBulk delivers up to the transport's batch limit of messages and
	// returns one result per input message, in order. The error return
	// covers whole-call failures only.
	SendBulk(ctx context.Context, msgs []PushMessage) ([]SendResult, error)
}
