// Package campus is the HTTP client for the remote campus API. The API
// owns all business rules and persistence; this package only shapes
// requests, attaches the bearer token, and decodes the response
// envelope into typed records.
package campus

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"campusnavigator/internal/domain"
)

// Client calls the campus REST API. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client rooted at baseURL (e.g.
// "http://localhost:5000/api"). A nil httpClient falls back to
// http.DefaultClient; callers wire tracing by passing a client with an
// instrumented transport.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{baseURL: baseURL, http: httpClient}
}

// envelope is the API's response wrapper: data on success, message on
// failure. Auth endpoints respond outside the envelope.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

// get issues a GET and decodes the envelope's data field into out.
func (c *Client) get(ctx context.Context, token, path string, query url.Values, out any) error {
	return c.do(ctx, token, http.MethodGet, path, query, nil, out, true)
}

// send issues a mutating request with a JSON body and decodes the
// envelope's data field into out when out is non-nil.
func (c *Client) send(ctx context.Context, token, method, path string, body, out any) error {
	return c.do(ctx, token, method, path, nil, body, out, true)
}

// doRaw is like send but decodes the whole response body into out,
// bypassing the envelope. Used by the auth endpoints.
func (c *Client) doRaw(ctx context.Context, token, method, path string, body, out any) error {
	return c.do(ctx, token, method, path, nil, body, out, false)
}

func (c *Client) do(ctx context.Context, token, method, path string, query url.Values, body, out any, unwrap bool) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("campus api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}

	if !unwrap {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decode campus api response: %w", err)
		}
		return nil
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("decode campus api response: %w", err)
	}
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("decode campus api data: %w", err)
	}
	return nil
}

// statusError maps an error response onto the domain sentinels while
// preserving the API's own message for display.
func statusError(resp *http.Response) error {
	var env envelope
	_ = json.NewDecoder(resp.Body).Decode(&env)
	ue := &domain.UpstreamError{StatusCode: resp.StatusCode, Message: env.Message}
	switch resp.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %w", domain.ErrUnauthorized, ue)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrNotFound, ue)
	}
	return ue
}
