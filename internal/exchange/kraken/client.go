package kraken

import (
	"net/http"
	"time"

	krakenapi "github.com/Beldur/kraken-go-api-client"
)

// DefaultTimeout bounds every REST call. A timed-out request is reported
// as a failed fetch and never retried.
const DefaultTimeout = 4 * time.Second

// Config holds the connection settings for the Kraken REST API.
type Config struct {
	APIKey    string
	APISecret string
	Timeout   time.Duration
}

// Client wraps the Kraken API client. Market data calls go out
// unauthenticated; balance, order listing and order creation require
// credentials and fail server-side without them.
type Client struct {
	api     *krakenapi.KrakenApi
	timeout time.Duration
}

// NewClient creates a Kraken client. Empty credentials are valid for the
// public market data surface.
func NewClient(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	httpClient := &http.Client{Timeout: timeout}

	return &Client{
		api:     krakenapi.NewWithClient(cfg.APIKey, cfg.APISecret, httpClient),
		timeout: timeout,
	}
}
