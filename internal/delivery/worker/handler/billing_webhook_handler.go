package handler

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"

	"rebook/config"
	"rebook/internal/usecase"
)

const signatureHeader = "Webhook-Signature"

// BillingWebhookHandler receives subscription lifecycle webhooks from the
// payment provider. Requests carry a timestamped HMAC signature in the
// "t=<unix>,v1=<hex>" format; anything unsigned or stale is rejected.
type BillingWebhookHandler struct {
	secret    string
	tolerance time.Duration
	logger    *slog.Logger
	billing   usecase.BillingUsecase
}

// BillingWebhookHandlerParams holds dependencies for the BillingWebhookHandler
type BillingWebhookHandlerParams struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Billing usecase.BillingUsecase
}

// NewBillingWebhookHandler creates a new billing webhook handler
func NewBillingWebhookHandler(params BillingWebhookHandlerParams) *BillingWebhookHandler {
	secret := ""
	tolerance := 5 * time.Minute
	if params.Config.Billing != nil {
		secret = params.Config.Billing.WebhookSecret
		if params.Config.Billing.SignatureTolerance > 0 {
			tolerance = params.Config.Billing.SignatureTolerance
		}
	}

	return &BillingWebhookHandler{
		secret:    secret,
		tolerance: tolerance,
		logger:    params.Logger,
		billing:   params.Billing,
	}
}

// HandleWebhook verifies and applies one subscription webhook. Signature
// failures return 401 so the provider surfaces them as delivery errors;
// transient failures return 503 for a provider retry.
func (h *BillingWebhookHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("[Worker] Failed to read webhook body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.verifySignature(c.Request().Header.Get(signatureHeader), body, time.Now()); err != nil {
		h.logger.Warn("[Worker] Invalid webhook signature", slog.Any("error", err))

		return c.NoContent(http.StatusUnauthorized)
	}

	var event usecase.SubscriptionEvent
	if err := json.Unmarshal(body, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse billing event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ctx, reqLogger := requestScope(ctx, h.logger, "", "")

	reqLogger.Info("[Worker] Processing billing event",
		slog.String("type", event.Type),
		slog.String("brand_id", event.BrandID),
	)

	if err := h.billing.SyncSubscription(ctx, &event); err != nil {
		reqLogger.Error("[Worker] Failed to sync subscription",
			slog.String("brand_id", event.BrandID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusServiceUnavailable)
	}

	return c.NoContent(http.StatusOK)
}

// verifySignature checks the timestamped HMAC over "<timestamp>.<body>".
func (h *BillingWebhookHandler) verifySignature(header string, body []byte, now time.Time) error {
	if h.secret == "" {
		return errors.New("webhook secret not configured")
	}
	if header == "" {
		return errors.New("missing signature header")
	}

	var timestamp int64
	var signature string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}
		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return errors.Wrap(err, "invalid signature timestamp")
			}
			timestamp = ts
		case "v1":
			signature = value
		}
	}
	if timestamp == 0 || signature == "" {
		return errors.New("malformed signature header")
	}

	age := now.Sub(time.Unix(timestamp, 0))
	if age > h.tolerance || age < -h.tolerance {
		return errors.New("signature timestamp outside tolerance")
	}

	mac := hmac.New(sha256.New, []byte(h.secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return errors.New("signature mismatch")
	}

	return nil
}
