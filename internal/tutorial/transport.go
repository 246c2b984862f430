package tutorial

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader is the header the demo API echoes back on every response.
const RequestIDHeader = "X-Request-ID"

// RoundTripperFunc adapts a function to http.RoundTripper, mirroring
// http.HandlerFunc on the client side.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// RequestIDTransport decorates a RoundTripper so every outgoing request
// carries an X-Request-ID. An ID already set by the caller is kept.
type RequestIDTransport struct {
	Next http.RoundTripper

	// NewID generates request IDs; defaults to uuid.NewString.
	NewID func() string
}

func (t *RequestIDTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}

	// Clone before mutating: RoundTrippers must not modify the caller's request.
	out := req.Clone(req.Context())
	if out.Header.Get(RequestIDHeader) == "" {
		newID := t.NewID
		if newID == nil {
			newID = uuid.NewString
		}
		out.Header.Set(RequestIDHeader, newID())
	}
	return next.RoundTrip(out)
}

// LoggingTransport decorates a RoundTripper with a JSON log line per request,
// in the same shape the server-side request logger emits.
type LoggingTransport struct {
	Next http.RoundTripper
	Out  io.Writer
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	next := t.Next
	if next == nil {
		next = http.DefaultTransport
	}

	start := time.Now()
	resp, err := next.RoundTrip(req)

	entry := map[string]any{
		"method":  req.Method,
		"path":    req.URL.Path,
		"latency": float64(time.Since(start).Milliseconds()),
	}
	if err != nil {
		entry["error"] = err.Error()
	} else {
		entry["status"] = resp.StatusCode
	}
	if t.Out != nil {
		_ = json.NewEncoder(t.Out).Encode(entry)
	}

	return resp, err
}
