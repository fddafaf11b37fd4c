// Package responder answers every HTTP request with the service identity payload.
package responder

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/janisto/pipeline-hello/internal/platform/logging"
	"github.com/janisto/pipeline-hello/internal/platform/timeutil"
)

// unknownHostname is reported when the host name cannot be resolved.
const unknownHostname = "unknown"

// Responder writes a Payload for any method and path.
// It holds no mutable state and is safe for concurrent use.
type Responder struct {
	version  string
	hostname func() (string, error)
	now      func() time.Time
}

// Option configures a Responder.
type Option func(*Responder)

// WithHostname replaces os.Hostname as the host name source.
func WithHostname(fn func() (string, error)) Option {
	return func(r *Responder) {
		if fn != nil {
			r.hostname = fn
		}
	}
}

// WithClock replaces time.Now as the timestamp source.
func WithClock(fn func() time.Time) Option {
	return func(r *Responder) {
		if fn != nil {
			r.now = fn
		}
	}
}

// New returns a Responder reporting version.
func New(version string, opts ...Option) *Responder {
	r := &Responder{
		version:  version,
		hostname: os.Hostname,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Payload builds a fresh payload for the current instant.
func (r *Responder) Payload(ctx context.Context) Payload {
	return Payload{
		Message:   Message,
		Version:   r.version,
		Timestamp: timeutil.FormatMillis(r.now()),
		Hostname:  r.resolveHostname(ctx),
	}
}

func (r *Responder) resolveHostname(ctx context.Context) string {
	name, err := r.hostname()
	if err != nil || name == "" {
		logging.LogWarn(ctx, "hostname lookup failed", zap.Error(err))
		return unknownHostname
	}
	return name
}

// ServeHTTP ignores the request and writes the payload as indented JSON.
// Write failures are left to net/http.
func (r *Responder) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	payload := r.Payload(req.Context())

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	_ = enc.Encode(payload)
}
