package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client talks to the tracker JSON API.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// New returns a client for the API rooted at baseURL. A nil httpClient uses a
// client without a timeout; callers bound requests through the context.
func New(baseURL string, httpClient *http.Client) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}
	if !u.IsAbs() || u.Host == "" {
		return nil, fmt.Errorf("api base url must be absolute, got %q", baseURL)
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{baseURL: u, httpClient: httpClient}, nil
}

// BaseURL returns the API root the client was built with.
func (c *Client) BaseURL() string { return c.baseURL.String() }

// Call describes one API request.
type Call struct {
	Method string
	Path   string // escaped, relative to the base url
	Query  url.Values
	Body   any
}

func (c Call) String() string {
	if len(c.Query) == 0 {
		return c.Method + " " + c.Path
	}
	return c.Method + " " + c.Path + "?" + c.Query.Encode()
}

// URL resolves the call against the client's base url.
func (c *Client) URL(call Call) string {
	u := c.baseURL.JoinPath(call.Path)
	if len(call.Query) > 0 {
		u.RawQuery = call.Query.Encode()
	}
	return u.String()
}

// Do sends the call and returns the raw response body of a 2xx response.
// Non-2xx responses come back as *Error.
func (c *Client) Do(ctx context.Context, call Call) ([]byte, error) {
	var body io.Reader
	if call.Body != nil {
		payload, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	method := call.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, c.URL(call), body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	if call.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", call, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", call, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &Error{StatusCode: resp.StatusCode, Message: extractMessage(raw)}
	}
	return raw, nil
}

// Fetch sends the call and decodes the JSON response into T.
func Fetch[T any](ctx context.Context, c *Client, call Call) (T, error) {
	var out T
	raw, err := c.Do(ctx, call)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, &DecodeError{Call: call.String(), Err: err}
	}
	return out, nil
}

// DecodeError reports a 2xx response whose body was not the expected JSON.
type DecodeError struct {
	Call string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s: malformed response: %v", e.Call, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
