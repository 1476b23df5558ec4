// Package openexchange provides a client for the Open Exchange Rates API
package openexchange

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/moneyhiver/hiver/internal/calc"
	"github.com/moneyhiver/hiver/internal/common"
	"github.com/moneyhiver/hiver/internal/interfaces"
	"github.com/moneyhiver/hiver/internal/models"
)

const (
	DefaultBaseURL   = "https://openexchangerates.org/api"
	DefaultTimeout   = 10 * time.Second
	DefaultRateLimit = 5 // requests per second
)

// Client implements the RateProvider interface against
// openexchangerates.org. Rates are quoted with a USD base.
type Client struct {
	baseURL    string
	appID      string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Open Exchange Rates client
func NewClient(appID string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		appID:   appID,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("Open Exchange Rates API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

type latestResponse struct {
	Timestamp int64              `json:"timestamp"`
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
}

// GetLatestRates fetches the current USD exchange rate snapshot.
func (c *Client) GetLatestRates(ctx context.Context) (*models.RateSnapshot, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("app_id", c.appID)
	reqURL := fmt.Sprintf("%s/latest.json?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	c.logger.Debug().Str("url", c.baseURL+"/latest.json").Msg("Open Exchange Rates request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   "/latest.json",
		}
	}

	var latest latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&latest); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(latest.Rates) == 0 {
		return nil, fmt.Errorf("rate feed returned no rates")
	}

	fetchedAt := time.Now()
	if latest.Timestamp > 0 {
		fetchedAt = time.Unix(latest.Timestamp, 0)
	}

	return &models.RateSnapshot{
		Base:      latest.Base,
		FetchedAt: fetchedAt,
		Rates:     calc.RateTable(latest.Rates),
	}, nil
}

// Ensure Client implements RateProvider
var _ interfaces.RateProvider = (*Client)(nil)
