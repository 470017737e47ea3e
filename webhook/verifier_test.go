package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"payment-gateway/models"

	"github.com/stretchr/testify/assert"
)

const testSecret = "whsec_test_secret"

var testBody = []byte(`{"id":"evt_123","type":"checkout.session.completed","created":1700000000,"data":{"object":{"id":"cs_1","mode":"payment"}}}`)

func sign(secret string, ts int64, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.%s", ts, body)
	return hex.EncodeToString(mac.Sum(nil))
}

func header(secret string, ts int64, body []byte) string {
	return fmt.Sprintf("t=%d,v1=%s", ts, sign(secret, ts, body))
}

func newTestVerifier(now time.Time) *Verifier {
	v := NewVerifier(testSecret, 5*time.Minute)
	v.now = func() time.Time { return now }
	return v
}

func TestVerify_ValidSignature(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier(now)

	event, err := v.Verify(testBody, header(testSecret, now.Unix(), testBody))
	assert.NoError(t, err)
	assert.Equal(t, "evt_123", event.ID)
	assert.Equal(t, models.EventCheckoutSessionCompleted, event.Type)
	assert.NotEmpty(t, event.Data.Object)
}

func TestVerify_MissingHeader(t *testing.T) {
	v := newTestVerifier(time.Unix(1700000000, 0))

	_, err := v.Verify(testBody, "")
	assert.ErrorIs(t, err, ErrMissingSignature)
}

func TestVerify_MutatedBodyRejected(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier(now)
	sig := header(testSecret, now.Unix(), testBody)

	for i := range testBody {
		mutated := append([]byte(nil), testBody...)
		mutated[i] ^= 0x01

		_, err := v.Verify(mutated, sig)
		assert.ErrorIs(t, err, ErrInvalidSignature, "byte %d", i)
	}
}

func TestVerify_MutatedSignatureRejected(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier(now)

	good := sign(testSecret, now.Unix(), testBody)
	bad := []byte(good)
	if bad[0] == 'a' {
		bad[0] = 'b'
	} else {
		bad[0] = 'a'
	}

	_, err := v.Verify(testBody, fmt.Sprintf("t=%d,v1=%s", now.Unix(), bad))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_WrongSecretRejected(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier(now)

	_, err := v.Verify(testBody, header("whsec_other", now.Unix(), testBody))
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_StaleTimestampRejected(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier(now)
	stale := now.Add(-6 * time.Minute).Unix()

	// Correctly signed, but outside the replay tolerance.
	_, err := v.Verify(testBody, header(testSecret, stale, testBody))
	assert.ErrorIs(t, err, ErrExpiredTimestamp)
}

func TestVerify_SecretRotationAnyCandidateMatches(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier(now)

	hdr := fmt.Sprintf("t=%d,v1=%s,v1=%s",
		now.Unix(),
		sign("whsec_retired", now.Unix(), testBody),
		sign(testSecret, now.Unix(), testBody),
	)

	event, err := v.Verify(testBody, hdr)
	assert.NoError(t, err)
	assert.Equal(t, "evt_123", event.ID)
}

func TestVerify_HeaderWithoutSignatures(t *testing.T) {
	v := newTestVerifier(time.Unix(1700000000, 0))

	_, err := v.Verify(testBody, "t=1700000000")
	assert.ErrorIs(t, err, ErrInvalidSignature)
}

func TestVerify_MalformedEnvelope(t *testing.T) {
	now := time.Unix(1700000000, 0)
	v := newTestVerifier(now)

	cases := map[string][]byte{
		"invalid json": []byte(`{"id":"evt_1",`),
		"missing id":   []byte(`{"type":"invoice.paid","data":{"object":{}}}`),
		"missing type": []byte(`{"id":"evt_1","data":{"object":{}}}`),
	}
	for name, body := range cases {
		_, err := v.Verify(body, header(testSecret, now.Unix(), body))
		assert.ErrorIs(t, err, ErrMalformedPayload, name)
	}
}
