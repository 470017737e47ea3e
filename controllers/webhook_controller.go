package controllers

import (
	"context"
	"io"
	"net/http"

	"payment-gateway/models"
	"payment-gateway/webhook"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const webhookBodyLimit = 1 << 20 // 1MiB

// Dispatcher advances domain state for a verified event.
type Dispatcher interface {
	Dispatch(ctx context.Context, event *models.PaymentEvent) error
}

// WebhookController ingests provider webhooks. Signature verification is
// the sole authentication mechanism on this endpoint, and it runs over the
// exact body bytes received: nothing may parse or rewrite the body first.
type WebhookController struct {
	Verifier   *webhook.Verifier
	Dispatcher Dispatcher
	Logger     *zap.Logger
}

func NewWebhookController(verifier *webhook.Verifier, dispatcher Dispatcher, logger *zap.Logger) *WebhookController {
	return &WebhookController{Verifier: verifier, Dispatcher: dispatcher, Logger: logger}
}

func (wc *WebhookController) HandleStripeWebhook(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, webhookBodyLimit)
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	event, err := wc.Verifier.Verify(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		// Detail stays in the log; the response never describes what part
		// of the signature check failed.
		wc.Logger.Warn("webhook verification failed", zap.Error(err))
		respondError(c, http.StatusBadRequest, "Invalid webhook signature")
		return
	}

	if err := wc.Dispatcher.Dispatch(c.Request.Context(), event); err != nil {
		wc.Logger.Error("webhook dispatch failed",
			zap.String("event_id", event.ID),
			zap.String("type", string(event.Type)),
			zap.Error(err),
		)
		// Non-2xx makes the provider redeliver; handlers are idempotent
		// per event id.
		respondError(c, http.StatusInternalServerError, "Failed to process webhook event")
		return
	}

	respondSuccess(c, gin.H{"received": true})
}
