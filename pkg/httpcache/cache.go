// Package httpcache keeps successful GET responses in memory so repeated
// lookups of the same place do not hit remote APIs again.
package httpcache

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/maypok86/otter/v2"
	"golang.org/x/sync/singleflight"
)

// Entry is one cached response body.
type Entry struct {
	ExpiresAt time.Time
	ETag      string
	Data      []byte
}

// Cache is an in-memory, size bounded response cache with write expiry.
type Cache struct {
	cache  *otter.Cache[string, Entry]
	logger *slog.Logger
	ttl    time.Duration
}

// New creates a cache holding at most size entries for ttl each.
func New(size int, ttl time.Duration, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	if size <= 0 {
		size = 10_000
	}
	cache := otter.Must(&otter.Options[string, Entry]{
		MaximumSize:      size,
		ExpiryCalculator: otter.ExpiryWriting[string, Entry](ttl),
	})
	return &Cache{cache: cache, logger: logger, ttl: ttl}
}

// Key hashes a URL so secrets in query strings never become map keys.
func Key(url string) string {
	h := sha256.Sum256([]byte(url))
	return hex.EncodeToString(h[:])
}

// Get returns the cached body for url.
func (c *Cache) Get(url string) ([]byte, string, bool) {
	key := Key(url)
	entry, found := c.cache.GetIfPresent(key)
	if !found {
		return nil, "", false
	}
	if time.Now().After(entry.ExpiresAt) {
		c.cache.Invalidate(key)
		return nil, "", false
	}
	return entry.Data, entry.ETag, true
}

// Set stores body for url.
func (c *Cache) Set(url string, data []byte, etag string) {
	c.cache.Set(Key(url), Entry{
		Data:      data,
		ETag:      etag,
		ExpiresAt: time.Now().Add(c.ttl),
	})
}

// Len returns the approximate number of cached entries.
func (c *Cache) Len() int {
	return c.cache.EstimatedSize()
}

// HTTPClient is the subset of *http.Client used here.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client serves GET requests from the cache and stores fresh cacheable
// responses. Concurrent misses for the same URL share one upstream request.
type Client struct {
	cache     *Cache
	next      HTTPClient
	logger    *slog.Logger
	cacheable func(status int, body []byte) bool
	group     singleflight.Group
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithCacheable replaces the rule deciding which responses are stored.
// APIs that report failures inside 200 bodies use it to keep errors out.
func WithCacheable(fn func(status int, body []byte) bool) ClientOption {
	return func(c *Client) {
		if fn != nil {
			c.cacheable = fn
		}
	}
}

// StatusOK is the default cacheability rule: any 200 response.
func StatusOK(status int, _ []byte) bool {
	return status == http.StatusOK
}

// NewClient wraps next. A nil cache disables caching.
func NewClient(cache *Cache, next HTTPClient, logger *slog.Logger, opts ...ClientOption) *Client {
	if next == nil {
		next = http.DefaultClient
	}
	if logger == nil {
		logger = slog.Default()
	}
	c := &Client{cache: cache, next: next, logger: logger, cacheable: StatusOK}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type fetched struct {
	header http.Header
	body   []byte
	status int
}

// Do implements HTTPClient.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	if c.cache == nil || req.Method != http.MethodGet {
		return c.next.Do(req)
	}

	url := req.URL.String()
	if data, etag, found := c.cache.Get(url); found {
		c.logger.Debug("cache hit", "host", req.URL.Host, "path", req.URL.Path)
		header := make(http.Header)
		header.Set("X-From-Cache", "true")
		if etag != "" {
			header.Set("ETag", etag)
		}
		return response(req, fetched{status: http.StatusOK, header: header, body: data}), nil
	}

	v, err, shared := c.group.Do(Key(url), func() (any, error) {
		return c.fetch(req, url)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("shared in-flight request", "host", req.URL.Host, "path", req.URL.Path)
	}
	return response(req, v.(fetched)), nil
}

func (c *Client) fetch(req *http.Request, url string) (fetched, error) {
	resp, err := c.next.Do(req)
	if err != nil {
		return fetched{}, err
	}
	body, err := io.ReadAll(resp.Body)
	if closeErr := resp.Body.Close(); closeErr != nil {
		c.logger.Debug("failed to close response body", "error", closeErr)
	}
	if err != nil {
		return fetched{}, fmt.Errorf("reading response body: %w", err)
	}

	if c.cacheable(resp.StatusCode, body) {
		c.cache.Set(url, body, resp.Header.Get("ETag"))
		c.logger.Debug("cache set", "host", req.URL.Host, "path", req.URL.Path, "size", len(body))
	} else {
		c.logger.Debug("response not cacheable", "host", req.URL.Host, "path", req.URL.Path, "status", resp.StatusCode)
	}
	return fetched{status: resp.StatusCode, header: resp.Header.Clone(), body: body}, nil
}

func response(req *http.Request, f fetched) *http.Response {
	return &http.Response{
		StatusCode: f.status,
		Status:     fmt.Sprintf("%d %s", f.status, http.StatusText(f.status)),
		Header:     f.header.Clone(),
		Body:       io.NopCloser(bytes.NewReader(f.body)),
		Request:    req,
	}
}
