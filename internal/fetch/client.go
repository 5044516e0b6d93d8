// Package fetch loads the item list from the remote endpoint.
//
// The previous incarnation of this widget swallowed every failure and showed
// an empty list. Here each failure mode is its own error so callers can tell
// the user what actually went wrong: ErrUnreachable for transport problems,
// StatusError for a non-2xx response, ErrDecode for a body that isn't the
// expected JSON array.
package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/ferhatb/itemls/internal/model"
)

var (
	// ErrUnreachable wraps transport-level failures (DNS, refused
	// connection, timeout).
	ErrUnreachable = errors.New("endpoint unreachable")

	// ErrDecode wraps a response body that is not a JSON array of items.
	ErrDecode = errors.New("malformed response")
)

// StatusError is a non-2xx response from the endpoint.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d %s", e.Code, http.StatusText(e.Code))
}

const defaultTimeout = 10 * time.Second

// Client fetches the item list. Zero retries; one GET per call, as the
// original widget did on mount.
type Client struct {
	endpoint string
	hc       *http.Client
	log      zerolog.Logger
}

// New builds a Client for endpoint. A timeout below or equal to zero falls
// back to 10s.
func New(endpoint string, timeout time.Duration, log zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		hc:       &http.Client{Timeout: timeout},
		log:      log,
	}
}

// Endpoint returns the URL this client fetches from.
func (c *Client) Endpoint() string { return c.endpoint }

// Items performs the GET and decodes the JSON array. The returned slice is
// the whole dataset; paging happens in memory afterwards.
func (c *Client) Items(ctx context.Context) ([]model.Item, error) {
	start := time.Now()
	c.log.Debug().Str("endpoint", c.endpoint).Msg("fetching items")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.hc.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("endpoint", c.endpoint).Msg("request failed")
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error().Int("status", resp.StatusCode).Str("endpoint", c.endpoint).Msg("bad status")
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var items []model.Item
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		c.log.Error().Err(err).Str("endpoint", c.endpoint).Msg("decode failed")
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	c.log.Info().
		Int("items", len(items)).
		Dur("took", time.Since(start)).
		Msg("fetched items")
	return items, nil
}

// Describe turns a fetch error into a short human-readable cause, used by
// both front ends when rendering failures.
func Describe(err error) string {
	var se *StatusError
	switch {
	case errors.As(err, &se):
		return fmt.Sprintf("server answered %d %s", se.Code, http.StatusText(se.Code))
	case errors.Is(err, ErrDecode):
		return "response was not a valid item list"
	case errors.Is(err, ErrUnreachable):
		return "could not reach the endpoint"
	default:
		return err.Error()
	}
}
