package controllers_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"payment-gateway/controllers"
	"payment-gateway/models"
	"payment-gateway/webhook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const webhookSecret = "whsec_controller_test"

type spyDispatcher struct {
	calls  int
	lastID string
	err    error
}

func (s *spyDispatcher) Dispatch(ctx context.Context, event *models.PaymentEvent) error {
	s.calls++
	s.lastID = event.ID
	return s.err
}

func setupWebhookRouter(d *spyDispatcher) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	wc := controllers.NewWebhookController(
		webhook.NewVerifier(webhookSecret, 5*time.Minute),
		d,
		zap.NewNop(),
	)
	r.POST("/webhooks/stripe", wc.HandleStripeWebhook)
	return r
}

func signedHeader(body []byte) string {
	ts := time.Now().Unix()
	mac := hmac.New(sha256.New, []byte(webhookSecret))
	fmt.Fprintf(mac, "%d.%s", ts, body)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func postWebhook(r *gin.Engine, body []byte, sig string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhooks/stripe", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if sig != "" {
		req.Header.Set("Stripe-Signature", sig)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var webhookBody = []byte(`{"id":"evt_w1","type":"invoice.paid","data":{"object":{"id":"in_1","customer":"cus_1"}}}`)

func TestWebhook_SignedEventAcknowledged(t *testing.T) {
	spy := &spyDispatcher{}
	r := setupWebhookRouter(spy)

	w := postWebhook(r, webhookBody, signedHeader(webhookBody))

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, true, resp["received"])
	assert.Equal(t, 1, spy.calls)
	assert.Equal(t, "evt_w1", spy.lastID)
}

func TestWebhook_MissingSignatureNeverDispatches(t *testing.T) {
	spy := &spyDispatcher{}
	r := setupWebhookRouter(spy)

	w := postWebhook(r, webhookBody, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeBody(t, w)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, 0, spy.calls)
}

func TestWebhook_InvalidSignatureNeverDispatches(t *testing.T) {
	spy := &spyDispatcher{}
	r := setupWebhookRouter(spy)

	tampered := bytes.Replace(webhookBody, []byte("cus_1"), []byte("cus_2"), 1)
	w := postWebhook(r, tampered, signedHeader(webhookBody))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, spy.calls)
}

func TestWebhook_HandlerErrorReturnsNon2xx(t *testing.T) {
	spy := &spyDispatcher{err: errors.New("downstream unavailable")}
	r := setupWebhookRouter(spy)

	w := postWebhook(r, webhookBody, signedHeader(webhookBody))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, spy.calls)

	// The response must not leak the handler's internals.
	resp := decodeBody(t, w)
	assert.NotContains(t, resp["error"], "downstream")
}
