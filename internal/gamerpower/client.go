package gamerpower

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/christ0s/freegames-reporter/internal/models"
)

// TransportError reports a failed catalog fetch: a network-level failure
// or a non-2xx HTTP status. It is fatal for the run.
type TransportError struct {
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("gamerpower request failed: %v", e.Err)
	}
	return fmt.Sprintf("gamerpower returned HTTP %d", e.StatusCode)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Client fetches the current giveaway catalog from the GamerPower API.
type Client struct {
	url        string
	httpClient *http.Client
	log        zerolog.Logger
}

func NewClient(url string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        logger,
	}
}

// Fetch returns the currently active giveaways. An empty catalog and an
// unrecognizable response body both yield an empty slice; only transport
// failures return an error.
func (c *Client) Fetch(ctx context.Context) ([]models.Giveaway, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %v", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	return c.decode(body), nil
}

// decode handles the two documented response shapes. The API returns a
// JSON array on success, or a status-message object when there are zero
// active giveaways. Anything else is logged and treated as empty.
func (c *Client) decode(body []byte) []models.Giveaway {
	var giveaways []models.Giveaway
	if err := json.Unmarshal(body, &giveaways); err == nil {
		return giveaways
	}

	var status struct {
		Status *int `json:"status"`
	}
	if err := json.Unmarshal(body, &status); err == nil && status.Status != nil && *status.Status == 0 {
		c.log.Info().Msg("gamerpower returned zero active giveaways")
		return nil
	}

	c.log.Warn().Str("body", truncate(string(body), 200)).Msg("unexpected gamerpower response")
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
