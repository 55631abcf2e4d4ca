// Package notification implements the push transport on Firebase Cloud
// Messaging.
package notification

import (
	"context"
	"log/slog"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"

	"rebook/internal/domain/service"
)

// FCM rejects batches above this size in a single SendEach call.
const maxBatchSize = 500

type firebaseSender struct {
	client *messaging.Client
	logger *slog.Logger
}

// NewFirebaseSender creates the FCM-backed push transport.
func NewFirebaseSender(ctx context.Context, app *firebase.App, logger *slog.Logger) (service.PushSender, error) {
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get messaging client")
	}

	return &firebaseSender{
		client: client,
		logger: logger,
	}, nil
}

// Send delivers a single message. Permanently invalid credentials come back
// wrapping service.ErrTokenInvalid so callers can clean them up.
func (s *firebaseSender) Send(ctx context.Context, msg service.PushMessage) error {
	_, err := s.client.Send(ctx, toFCMMessage(msg))
	if err != nil {
		if isInvalidToken(err) {
			return errors.Wrap(service.ErrTokenInvalid, err.Error())
		}

		return errors.Wrap(err, "send notification")
	}

	return nil
}

// SendBulk delivers up to maxBatchSize messages in one SendEach call and maps
// each response back to its input position.
func (s *firebaseSender) SendBulk(ctx context.Context, msgs []service.PushMessage) ([]service.SendResult, error) {
	if len(msgs) == 0 {
		return nil, nil
	}
	if len(msgs) > maxBatchSize {
		return nil, errors.Errorf("message count exceeds limit: %d (max %d)", len(msgs), maxBatchSize)
	}

	batch := make([]*messaging.Message, len(msgs))
	for i, msg := range msgs {
		batch[i] = toFCMMessage(msg)
	}

	response, err := s.client.SendEach(ctx, batch)
	if err != nil {
		return nil, errors.Wrap(err, "send batch")
	}

	results := make([]service.SendResult, len(msgs))
	for i, resp := range response.Responses {
		results[i] = service.SendResult{Token: msgs[i].Token}
		if resp.Error != nil {
			results[i].Err = resp.Error
			results[i].Invalid = isInvalidToken(resp.Error)
		}
	}

	s.logger.Debug("sent notification batch",
		slog.Int("success", response.SuccessCount),
		slog.Int("failure", response.FailureCount),
	)

	return results, nil
}

func toFCMMessage(msg service.PushMessage) *messaging.Message {
	return &messaging.Message{
		Token: msg.Token,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}
}

func isInvalidToken(err error) bool {
	return messaging.IsUnregistered(err) || messaging.IsInvalidArgument(err)
}
