package tutorial

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"patternlab/internal/model"
)

// APIError is the decoded form of the API's standardized error body.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// TodoList is the payload of GET /todos.
type TodoList struct {
	Items []model.Todo `json:"data"`
	Total int          `json:"total"`
}

// TodoUpdate carries partial changes for PUT /todos/:id; nil fields are omitted.
type TodoUpdate struct {
	Title     *string `json:"title,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// RunResult is the payload of POST /patterns/:slug/run.
type RunResult struct {
	Slug       string   `json:"slug"`
	Transcript []string `json:"transcript"`
}

// Client is a typed client for the demo todos API. The zero value is not
// usable; construct with New.
type Client struct {
	baseURL    string
	httpClient *http.Client
	transport  http.RoundTripper
	logOut     io.Writer
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client entirely.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithTransport replaces the default transport stack while keeping the
// default timeout. Useful for stacking decorators in a different order.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) { c.transport = rt }
}

// WithLogWriter redirects the per-request log lines emitted by the default
// transport stack. Defaults to stderr.
func WithLogWriter(w io.Writer) Option {
	return func(c *Client) { c.logOut = w }
}

// New builds a Client for the API at baseURL. The default transport stacks
// request-ID injection over logging, wrapped in otelhttp, so every call is
// traced, carries an X-Request-ID, and leaves one JSON log line.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		logOut:  os.Stderr,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.httpClient == nil {
		rt := c.transport
		if rt == nil {
			rt = otelhttp.NewTransport(&RequestIDTransport{
				Next: &LoggingTransport{Out: c.logOut},
			})
		}
		c.httpClient = &http.Client{
			Timeout:   10 * time.Second,
			Transport: rt,
		}
	}
	return c
}

// ListTodos fetches a page of todos.
func (c *Client) ListTodos(ctx context.Context, limit, offset int) (*TodoList, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))
	q.Set("offset", strconv.Itoa(offset))

	var out TodoList
	if err := c.do(ctx, http.MethodGet, "/todos?"+q.Encode(), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetTodo fetches a single todo by id.
func (c *Client) GetTodo(ctx context.Context, id string) (*model.Todo, error) {
	var out model.Todo
	if err := c.do(ctx, http.MethodGet, "/todos/"+url.PathEscape(id), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateTodo creates a todo for owner with the given title.
func (c *Client) CreateTodo(ctx context.Context, owner, title string) (*model.Todo, error) {
	body := map[string]string{"owner": owner, "title": title}
	var out model.Todo
	if err := c.do(ctx, http.MethodPost, "/todos", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTodo applies a partial update to a todo.
func (c *Client) UpdateTodo(ctx context.Context, id string, upd TodoUpdate) (*model.Todo, error) {
	var out model.Todo
	if err := c.do(ctx, http.MethodPut, "/todos/"+url.PathEscape(id), upd, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTodo removes a todo. Deleting an unknown id returns an APIError
// with code NOT_FOUND.
func (c *Client) DeleteTodo(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/todos/"+url.PathEscape(id), nil, nil)
}

// Patterns lists the pattern catalog.
func (c *Client) Patterns(ctx context.Context) ([]model.Pattern, error) {
	var out struct {
		Data []model.Pattern `json:"data"`
	}
	if err := c.do(ctx, http.MethodGet, "/patterns", nil, &out); err != nil {
		return nil, err
	}
	return out.Data, nil
}

// RunPattern executes a pattern demo server-side and returns its transcript.
func (c *Client) RunPattern(ctx context.Context, slug string) (*RunResult, error) {
	var out RunResult
	if err := c.do(ctx, http.MethodPost, "/patterns/"+url.PathEscape(slug)+"/run", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Article downloads the published markdown article for a pattern.
func (c *Client) Article(ctx context.Context, slug string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/patterns/"+url.PathEscape(slug)+"/article", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp)
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{
		StatusCode: resp.StatusCode,
		Code:       "UNKNOWN",
		RequestID:  resp.Header.Get(RequestIDHeader),
	}

	var payload struct {
		RequestID string `json:"request_id"`
		Error     struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err == nil {
		if payload.Error.Code != "" {
			apiErr.Code = payload.Error.Code
		}
		apiErr.Message = payload.Error.Message
		if payload.RequestID != "" {
			apiErr.RequestID = payload.RequestID
		}
	}
	return apiErr
}
