// Package decorator demonstrates stacking behavior onto an object that keeps
// its interface. The subject is http.RoundTripper, decorated exactly the way
// the tutorial client decorates its transport.
package decorator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"patternlab/internal/tutorial"
)

// Demo wraps a canned base transport with the tutorial's request-id
// decorator plus a transcript-logging decorator, then sends one request
// through the stack.
func Demo(ctx context.Context) ([]string, error) {
	out := []string{"decorator: base transport wrapped with request-id, then logging"}

	base := tutorial.RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		resp := &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{},
			Body:       io.NopCloser(strings.NewReader(`{"data":[],"total":0}`)),
			Request:    req,
		}
		resp.Header.Set(tutorial.RequestIDHeader, req.Header.Get(tutorial.RequestIDHeader))
		return resp, nil
	})

	var logBuf bytes.Buffer
	stack := &tutorial.LoggingTransport{
		Next: &tutorial.RequestIDTransport{
			Next:  base,
			NewID: func() string { return "demo-request-id" },
		},
		Out: &logBuf,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, "http://demo.local/todos", nil)
	if err != nil {
		return nil, err
	}
	resp, err := stack.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// The logging decorator wrote one JSON line; surface it in the transcript
	// without the non-deterministic latency field.
	var entry struct {
		Method string `json:"method"`
		Path   string `json:"path"`
		Status int    `json:"status"`
	}
	if err := json.Unmarshal(logBuf.Bytes(), &entry); err != nil {
		return nil, err
	}

	out = append(out,
		fmt.Sprintf("decorator: log: %s %s status %d", entry.Method, entry.Path, entry.Status),
		fmt.Sprintf("decorator: response %d with %s=%s",
			resp.StatusCode, tutorial.RequestIDHeader, resp.Header.Get(tutorial.RequestIDHeader)),
		"decorator: the base transport never changed, behavior stacked around it",
	)
	return out, nil
}
