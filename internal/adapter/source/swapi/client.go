package swapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/reel/internal/domain"
)

const userAgent = "Reel/1.0"

// DefaultURL is the films endpoint of the public Star Wars API
const DefaultURL = "https://swapi.dev/api/films/?format=json"

// Client implements domain.FilmRepository for SWAPI
type Client struct {
	url        string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new SWAPI client. A zero timeout means requests are
// never cut short by the client.
func NewClient(url string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// ListFilms performs a single GET against the films endpoint.
// Every failure is reported as domain.ErrFetchFailed wrapping the cause.
func (c *Client) ListFilms(ctx context.Context) ([]domain.Film, error) {
	body, err := c.doRequest(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	resp, err := c.parseResponse(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrFetchFailed, err)
	}

	films := MapFilms(resp.Results, c.logger)

	c.logger.Debug("swapi films fetched", "count", len(films))
	return films, nil
}

// doRequest performs the GET and returns the body of a 2xx response
func (c *Client) doRequest(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug("swapi request", "method", http.MethodGet, "url", c.url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("swapi request failed", "error", err)
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Error("swapi request error", "status", resp.StatusCode, "bodyLen", len(body))
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return body, nil
}

// parseResponse decodes the films payload. A payload without a results
// array is treated as malformed.
func (c *Client) parseResponse(body []byte) (*FilmsResponse, error) {
	var raw struct {
		FilmsResponse
		Results *[]Film `json:"results"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	if raw.Results == nil {
		return nil, fmt.Errorf("failed to parse response: missing results array")
	}

	resp := raw.FilmsResponse
	resp.Results = *raw.Results
	return &resp, nil
}
