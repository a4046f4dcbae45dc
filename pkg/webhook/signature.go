package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	HeaderSignature = "X-Webhook-Signature"
	HeaderTimestamp = "X-Webhook-Timestamp"
	HeaderID        = "X-Webhook-ID"
)

// Sign returns the hex HMAC-SHA256 of "<timestamp>.<payload>".
func Sign(secret string, timestamp int64, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(strconv.FormatInt(timestamp, 10)))
	mac.Write([]byte{'.'})
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against payload. Timestamps older than maxAge, or
// more than a minute in the future, are rejected; maxAge 0 disables the check.
func Verify(secret string, timestamp int64, signature string, payload []byte, maxAge time.Duration) error {
	if maxAge > 0 {
		age := time.Since(time.Unix(timestamp, 0))
		if age > maxAge || age < -time.Minute {
			return fmt.Errorf("%w: timestamp outside tolerance", ErrInvalidSignature)
		}
	}
	expected := Sign(secret, timestamp, payload)
	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return fmt.Errorf("%w: mismatch", ErrInvalidSignature)
	}
	return nil
}

// VerifyRequest reads the body of a delivered webhook and verifies its headers.
// It returns the body on success.
func VerifyRequest(r *http.Request, secret string, maxAge time.Duration) ([]byte, error) {
	ts, err := strconv.ParseInt(r.Header.Get(HeaderTimestamp), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad timestamp", ErrInvalidSignature)
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		return nil, err
	}
	if err := Verify(secret, ts, r.Header.Get(HeaderSignature), body, maxAge); err != nil {
		return nil, err
	}
	return body, nil
}
