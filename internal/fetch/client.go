package fetch

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/covlens/covlens/internal/cache"
	"github.com/covlens/covlens/internal/model"
)

// Page is the text a URL resolved to, ready for classification
type Page struct {
	URL        string    `json:"url"`
	FinalURL   string    `json:"final_url"`
	Title      string    `json:"title,omitempty"`
	Text       string    `json:"text"`
	StatusCode int       `json:"status_code"`
	FetchedAt  time.Time `json:"fetched_at"`
}

// Client fetches a page and reduces it to scoreable text. Robots.txt
// is checked before every network fetch; extracted text is cached so
// repeat classifications of the same URL stay local.
type Client struct {
	httpClient *http.Client
	userAgent  string
	maxBytes   int64
	robots     *RobotsChecker
	store      cache.Cache // nil disables caching
	cacheTTL   time.Duration
}

// NewClient creates a fetch client. Pass a nil store to disable the
// page cache.
func NewClient(cfg model.HTTPConfig, store cache.Cache, cacheTTL time.Duration) *Client {
	transport := &http.Transport{
		Proxy: newProxyFunc(cfg.HTTPProxy, cfg.HTTPSProxy),
	}
	if cfg.InsecureTLS {
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true}
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: transport,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 3 {
					return fmt.Errorf("stopped after 3 redirects")
				}
				return nil
			},
		},
		userAgent: cfg.UserAgent,
		maxBytes:  cfg.MaxBodyBytes,
		robots:    NewRobotsChecker(cfg.UserAgent, cfg.Timeout),
		store:     store,
		cacheTTL:  cacheTTL,
	}
}

// PageText fetches the URL and returns its extracted text
func (c *Client) PageText(ctx context.Context, rawURL string) (*Page, error) {
	if c.store != nil {
		if raw, found := c.store.Get(cache.Key(rawURL)); found {
			var page Page
			if err := json.Unmarshal(raw, &page); err == nil {
				return &page, nil
			}
		}
	}

	allowed, err := c.robots.Allowed(ctx, rawURL)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, fmt.Errorf("robots.txt disallows fetching %s", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status: %d %s", resp.StatusCode, resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	title, text, err := ExtractText(string(body))
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}

	page := &Page{
		URL:        rawURL,
		FinalURL:   resp.Request.URL.String(),
		Title:      title,
		Text:       text,
		StatusCode: resp.StatusCode,
		FetchedAt:  time.Now().UTC(),
	}

	if c.store != nil {
		if raw, err := json.Marshal(page); err == nil {
			_ = c.store.Set(cache.Key(rawURL), raw, c.cacheTTL)
		}
	}

	return page, nil
}

// newProxyFunc prefers explicit proxy settings over the environment
func newProxyFunc(httpProxy, httpsProxy string) func(*http.Request) (*url.URL, error) {
	if httpProxy == "" && httpsProxy == "" {
		return http.ProxyFromEnvironment
	}

	return func(req *http.Request) (*url.URL, error) {
		if req.URL.Scheme == "https" && httpsProxy != "" {
			return url.Parse(httpsProxy)
		}
		if httpProxy != "" {
			return url.Parse(httpProxy)
		}
		return http.ProxyFromEnvironment(req)
	}
}
