// Package fetch provides the shared HTTP client every source scrapes
// through: browser-mimicking headers, a polite inter-request delay, and
// plain GETs with no retries.
package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	// DefaultDelay is the minimum gap between consecutive requests.
	DefaultDelay = 1 * time.Second

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// StatusError reports a non-2xx response. It is an ordinary fetch failure
// to callers; the type exists so logs and tests can see the code.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d fetching %s", e.Code, e.URL)
}

// Config carries the construction-time fetch settings. Zero fields are
// filled with defaults by NewClient.
type Config struct {
	Delay     time.Duration
	UserAgent string
	Logger    *slog.Logger
}

// DefaultConfig returns the stock politeness and header settings.
func DefaultConfig() Config {
	return Config{
		Delay:     DefaultDelay,
		UserAgent: defaultUserAgent,
		Logger:    slog.Default(),
	}
}

// Client is a sequential page fetcher. It keeps one cookie-carrying
// session across requests and enforces the configured delay between
// consecutive fetches. Not safe for concurrent use; the extraction run
// is single-threaded end to end.
type Client struct {
	http        *resty.Client
	delay       time.Duration
	lastRequest time.Time
	logger      *slog.Logger
}

// NewClient builds a Client from cfg, filling zero fields with defaults.
func NewClient(cfg Config) *Client {
	if cfg.Delay <= 0 {
		cfg.Delay = DefaultDelay
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	hc := resty.New()
	if jar, err := cookiejar.New(nil); err == nil {
		hc.SetCookieJar(jar)
	}
	// Accept-Encoding is left to the transport so bodies arrive decoded.
	hc.SetHeaders(map[string]string{
		"User-Agent":                cfg.UserAgent,
		"Accept":                    "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language":           "en-US,en;q=0.5",
		"Connection":                "keep-alive",
		"Upgrade-Insecure-Requests": "1",
	})

	return &Client{
		http:   hc,
		delay:  cfg.Delay,
		logger: cfg.Logger.With("component", "fetch"),
	}
}

// Get fetches url and returns the response body. Transport failures and
// non-2xx statuses come back as errors; there are no retries and no
// timeout beyond what the transport defaults to.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	c.throttle()

	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if !res.IsSuccess() {
		return nil, &StatusError{URL: url, Code: res.StatusCode()}
	}

	c.logger.Debug("fetched page", "url", url, "status", res.StatusCode(), "bytes", len(res.Body()))
	return res.Body(), nil
}

// throttle waits out the remainder of the delay window since the last
// request. The first request never waits.
func (c *Client) throttle() {
	if elapsed := time.Since(c.lastRequest); elapsed < c.delay {
		time.Sleep(c.delay - elapsed)
	}
	c.lastRequest = time.Now()
}
