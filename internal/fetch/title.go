// Package fetch retrieves page titles for converted URLs. Fetching is
// strictly best-effort: the watcher must keep running whatever the network
// does, so Title never returns an error.
package fetch

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"
)

// FallbackTitle is recorded when the page title cannot be determined.
const FallbackTitle = "Unknown Title"

// DefaultUserAgent mimics a browser; YouTube serves a minimal page to
// unknown agents.
const DefaultUserAgent = "Mozilla/5.0"

const youtubeTitleSuffix = " - YouTube"

// Client fetches page titles over HTTP. The rate limiter bounds how fast
// consecutive fetches go out; the http.Client timeout bounds how long a
// single fetch can stall the caller.
type Client struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the HTTP timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// WithRateLimit caps outbound requests per minute.
func WithRateLimit(perMinute int) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(float64(perMinute)/60.0), 1)
	}
}

// NewClient creates a title fetcher with a bounded timeout (10s default).
func NewClient(opts ...Option) *Client {
	c := &Client{
		http: &http.Client{
			Timeout: 10 * time.Second,
		},
		limiter:   rate.NewLimiter(rate.Limit(1), 3),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Title GETs url, extracts the first <title> element and trims a trailing
// " - YouTube" suffix. On any failure it returns FallbackTitle.
func (c *Client) Title(ctx context.Context, url string) string {
	if err := c.limiter.Wait(ctx); err != nil {
		return FallbackTitle
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return FallbackTitle
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := c.http.Do(req)
	if err != nil {
		return FallbackTitle
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return FallbackTitle
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return FallbackTitle
	}
	return strings.TrimSuffix(title, youtubeTitleSuffix)
}
