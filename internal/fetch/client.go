package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"
)

// Client is the shared outbound HTTP client used by every fetcher. The
// underlying http.Client carries the process-wide timeout; there is no
// retry or backoff anywhere — each fetch is a single shot and a failure
// is terminal for that layer and cycle.
type Client struct {
	http *http.Client
}

// NewClient wraps the given http.Client for fetcher use.
func NewClient(h *http.Client) *Client {
	return &Client{http: h}
}

// newBreaker builds the per-endpoint circuit breaker. The breaker only
// ever fails fast; it never re-issues a request.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})
}

// getJSON issues one GET through the fetcher's circuit breaker and decodes
// the JSON body into out. Transport errors and an open circuit become
// KindTransport failures; non-2xx responses and undecodable bodies become
// KindUpstream failures.
func (c *Client) getJSON(
	ctx context.Context,
	cb *gobreaker.CircuitBreaker,
	op, url string,
	header http.Header,
	out any,
) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	result, err := cb.Execute(func() (interface{}, error) {
		resp, doErr := c.http.Do(req)
		if doErr != nil {
			return nil, &Error{Kind: KindTransport, Op: op, Err: doErr}
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, &Error{
				Kind: KindUpstream,
				Op:   op,
				Err:  fmt.Errorf("unexpected status %d", resp.StatusCode),
			}
		}
		return resp, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return &Error{Kind: KindTransport, Op: op, Err: err}
		}
		var fe *Error
		if errors.As(err, &fe) {
			return fe
		}
		return &Error{Kind: KindTransport, Op: op, Err: err}
	}

	resp, ok := result.(*http.Response)
	if !ok {
		return &Error{Kind: KindTransport, Op: op, Err: errors.New("unexpected result type from circuit breaker")}
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{Kind: KindUpstream, Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
