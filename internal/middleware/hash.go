package middleware

import (
	"bytes"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/a2sh3r/settlement/internal/hash"
	"github.com/a2sh3r/settlement/internal/logger"
)

const (
	HashHeader      = "HashSHA256"
	TimestampHeader = "X-Timestamp"

	// MaxClockSkew bounds how far X-Timestamp may drift from the server clock.
	MaxClockSkew = 5 * time.Minute
)

// RequireHash rejects requests whose HashSHA256 header is not the hex
// HMAC-SHA256 of SignedPayload, or whose X-Timestamp (unix seconds) is outside
// MaxClockSkew. With an empty key every request is rejected.
func RequireHash(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if key == "" {
				http.Error(w, "cron trigger is not configured", http.StatusForbidden)
				return
			}

			body, err := io.ReadAll(r.Body)
			if err != nil {
				http.Error(w, "failed to read body", http.StatusBadRequest)
				return
			}
			r.Body = io.NopCloser(bytes.NewReader(body))

			got := r.Header.Get(HashHeader)
			if got == "" {
				http.Error(w, "missing "+HashHeader+" header", http.StatusForbidden)
				return
			}

			ts := r.Header.Get(TimestampHeader)
			sec, err := strconv.ParseInt(ts, 10, 64)
			if err != nil {
				http.Error(w, "missing or invalid "+TimestampHeader+" header", http.StatusForbidden)
				return
			}
			if skew := time.Since(time.Unix(sec, 0)); skew > MaxClockSkew || skew < -MaxClockSkew {
				logger.Log.Warn("cron trigger timestamp out of window", zap.String("path", r.URL.Path), zap.Duration("skew", skew))
				http.Error(w, "stale request", http.StatusForbidden)
				return
			}

			if err := hash.VerifyHash(SignedPayload(ts, r.URL.RequestURI(), body), key, got); err != nil {
				logger.Log.Warn("cron trigger signature mismatch", zap.String("path", r.URL.Path))
				http.Error(w, "invalid signature", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// SignedPayload is the message a cron caller signs: the X-Timestamp value,
// a newline, the request URI, then the body.
func SignedPayload(timestamp, requestURI string, body []byte) string {
	return timestamp + "\n" + requestURI + string(body)
}
