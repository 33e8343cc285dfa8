package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	apperrors "github.com/moharchaudhuri17/tidytuesday/pkg/errors"
	"github.com/moharchaudhuri17/tidytuesday/pkg/httputil"
	"github.com/moharchaudhuri17/tidytuesday/pkg/observability"
)

const httpTimeout = 30 * time.Second

var (
	// ErrNotFound is returned when a dataset doesn't exist at the source.
	ErrNotFound = errors.New("dataset not found")

	// ErrNetwork is returned for HTTP failures (timeouts, connection errors, 5xx responses).
	ErrNetwork = errors.New("network error")
)

// Dataset name constants.
const (
	Bechdel     = "bechdel"
	PostOffices = "postoffices"
)

// rawBase is the raw-content root of the TidyTuesday repository.
const rawBase = "https://raw.githubusercontent.com/rfordatascience/tidytuesday/master"

// sourceURLs maps dataset names to their TidyTuesday CSV locations.
var sourceURLs = map[string]string{
	Bechdel:     rawBase + "/data/2021/2021-03-09/raw_bechdel.csv",
	PostOffices: rawBase + "/data/2021/2021-04-13/post_offices.csv",
}

// SourceURL returns the download URL for a named dataset.
// The second return is false for unknown dataset names.
func SourceURL(name string) (string, bool) {
	u, ok := sourceURLs[name]
	return u, ok
}

// Names returns the known dataset names.
func Names() []string {
	return []string{Bechdel, PostOffices}
}

// Client downloads dataset CSVs with caching and automatic retries.
type Client struct {
	http  *http.Client
	cache *httputil.Cache
}

// NewClient creates a dataset client backed by the given cache.
// Pass nil to disable caching.
func NewClient(cache *httputil.Cache) *Client {
	return &Client{
		http:  &http.Client{Timeout: httpTimeout},
		cache: cache,
	}
}

// NewCache creates a file-based cache with the given TTL in the default
// cache directory. See [httputil.NewCache] for details.
func NewCache(ttl time.Duration) (*httputil.Cache, error) {
	return httputil.NewCache("", ttl)
}

// Fetch returns the raw CSV text for a named dataset.
//
// The result is cached; pass refresh=true to bypass the cache and
// re-download. Unknown names fail with [ErrNotFound] without a request.
func (c *Client) Fetch(ctx context.Context, name string, refresh bool) (string, error) {
	src, ok := SourceURL(name)
	if !ok {
		return "", fmt.Errorf("%w: unknown dataset %q", ErrNotFound, name)
	}
	if err := apperrors.ValidateURL(src); err != nil {
		return "", err
	}

	key := "dataset:" + name
	if c.cache != nil && !refresh {
		var csv string
		if ok, _ := c.cache.Get(key, &csv); ok {
			return csv, nil
		}
	}

	var csv string
	err := httputil.RetryWithBackoff(ctx, func() error {
		body, err := c.get(ctx, src)
		if err != nil {
			return err
		}
		csv = body
		return nil
	})
	if err != nil {
		return "", err
	}

	if c.cache != nil {
		_ = c.cache.Set(key, csv)
	}
	return csv, nil
}

// Load returns dataset CSV text from a local file path or, when path is
// empty, from the network via [Client.Fetch].
func (c *Client) Load(ctx context.Context, name, path string, refresh bool) (string, error) {
	if path == "" {
		return c.Fetch(ctx, name, refresh)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", err
	}
	return string(data), nil
}

func (c *Client) get(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", err
	}

	host, path := splitURL(rawURL)
	observability.HTTP().OnRequest(ctx, http.MethodGet, host, path)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		observability.HTTP().OnError(ctx, http.MethodGet, host, path, err)
		return "", &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	defer resp.Body.Close()
	observability.HTTP().OnResponse(ctx, http.MethodGet, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		return "", err
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &httputil.RetryableError{Err: fmt.Errorf("%w: %v", ErrNetwork, err)}
	}
	return string(data), nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return ErrNotFound
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("%w: status %d", ErrNetwork, code)}
	default:
		return fmt.Errorf("%w: status %d", ErrNetwork, code)
	}
}

func splitURL(rawURL string) (host, path string) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, ""
	}
	return u.Host, strings.TrimPrefix(u.Path, "/")
}
