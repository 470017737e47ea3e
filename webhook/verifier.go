package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"payment-gateway/models"
)

var (
	ErrMissingSignature = errors.New("webhook: missing signature header")
	ErrInvalidSignature = errors.New("webhook: signature verification failed")
	ErrExpiredTimestamp = errors.New("webhook: timestamp outside tolerance")
	ErrMalformedPayload = errors.New("webhook: malformed event payload")
)

const DefaultTolerance = 5 * time.Minute

// Verifier authenticates raw webhook payloads against the shared signing
// secret. Verification is computed over the exact bytes received; callers
// must not re-serialize the body first.
type Verifier struct {
	secret    string
	tolerance time.Duration
	now       func() time.Time
}

func NewVerifier(secret string, tolerance time.Duration) *Verifier {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}
	return &Verifier{
		secret:    secret,
		tolerance: tolerance,
		now:       time.Now,
	}
}

// Verify checks the signature header against rawBody and parses the event
// envelope. The header carries a unix timestamp and one or more hex HMAC
// candidates ("t=<ts>,v1=<hex>[,v1=<hex>...]"); any single matching
// candidate succeeds, so secret rotation never breaks delivery.
func (v *Verifier) Verify(rawBody []byte, sigHeader string) (*models.PaymentEvent, error) {
	if strings.TrimSpace(sigHeader) == "" {
		return nil, ErrMissingSignature
	}

	timestamp, candidates, err := parseSignatureHeader(sigHeader)
	if err != nil {
		return nil, err
	}

	if age := v.now().Sub(time.Unix(timestamp, 0)); age > v.tolerance {
		return nil, ErrExpiredTimestamp
	}

	expected := computeSignature(v.secret, timestamp, rawBody)
	matched := false
	for _, candidate := range candidates {
		if hmac.Equal(candidate, expected) {
			matched = true
		}
	}
	if !matched {
		return nil, ErrInvalidSignature
	}

	var event models.PaymentEvent
	if err := json.Unmarshal(rawBody, &event); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, "invalid event envelope")
	}
	if event.ID == "" || event.Type == "" {
		return nil, fmt.Errorf("%w: %s", ErrMalformedPayload, "event id and type are required")
	}

	return &event, nil
}

// parseSignatureHeader extracts the timestamp and all v1 signature
// candidates from the header. Unknown schemes are skipped.
func parseSignatureHeader(header string) (int64, [][]byte, error) {
	var (
		timestamp  int64 = -1
		candidates [][]byte
	)

	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return 0, nil, ErrInvalidSignature
		}

		switch key {
		case "t":
			ts, err := strconv.ParseInt(value, 10, 64)
			if err != nil {
				return 0, nil, ErrInvalidSignature
			}
			timestamp = ts
		case "v1":
			sig, err := hex.DecodeString(value)
			if err != nil {
				// Skip malformed candidates; another v1 entry may still match.
				continue
			}
			candidates = append(candidates, sig)
		}
	}

	if timestamp < 0 || len(candidates) == 0 {
		return 0, nil, ErrInvalidSignature
	}
	return timestamp, candidates, nil
}

func computeSignature(secret string, timestamp int64, body []byte) []byte {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte("."))
	mac.Write(body)
	return mac.Sum(nil)
}
