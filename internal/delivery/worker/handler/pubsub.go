// Package handler contains the worker's HTTP endpoints for push
// subscriptions, deferred tasks and scheduler triggers.
package handler

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"google.golang.org/api/idtoken"

	deliverycontext "rebook/internal/delivery/context"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// decodeData returns the base64-decoded message payload.
func (m *PubSubMessage) decodeData() ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(m.Message.Data)
	if err != nil {
		return nil, errors.Wrap(err, "decode message data")
	}

	return data, nil
}

// requestScope resolves the request id (message attributes first, then the
// payload field, then the middleware-populated context) and returns a context
// and logger carrying it.
func requestScope(ctx context.Context, logger *slog.Logger, attrRequestID, payloadRequestID string) (context.Context, *slog.Logger) {
	requestID := attrRequestID
	if requestID == "" {
		requestID = payloadRequestID
	}
	if requestID == "" {
		requestID = deliverycontext.GetRequestIDFromContext(ctx)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}

	reqLogger := logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	return ctx, reqLogger
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// The issuer should be accounts.google.com
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

// bindEnvelope verifies (when enabled) and parses a Pub/Sub push envelope.
// When rejected is true the response has already been written and the handler
// must return err as-is.
func bindEnvelope(c echo.Context, logger *slog.Logger, verifyAuth bool) (pushMsg *PubSubMessage, data []byte, rejected bool, err error) {
	if verifyAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return nil, nil, true, c.NoContent(http.StatusUnauthorized)
		}
	}

	var msg PubSubMessage
	if err := c.Bind(&msg); err != nil {
		logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return nil, nil, true, c.NoContent(http.StatusBadRequest)
	}

	data, err = msg.decodeData()
	if err != nil {
		logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return nil, nil, true, c.NoContent(http.StatusBadRequest)
	}

	return &msg, data, false, nil
}
