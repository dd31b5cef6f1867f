// Package fetch retrieves raw page content for a URL. Two
// implementations exist: a plain HTTP client for static pages and a
// browser-rendered fetcher for JS-driven pages, selected by the
// RENDER_JS config option.
package fetch

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// Fetcher retrieves the content of a page. Network errors, non-2xx
// statuses and empty bodies all surface as a single error kind;
// callers only need to know the page was unreachable.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// Client is the plain HTTP fetcher.
type Client struct {
	http *resty.Client
}

// NewClient creates an HTTP fetcher with the given per-request timeout.
func NewClient(timeout time.Duration) *Client {
	return &Client{
		http: resty.New().SetTimeout(timeout),
	}
}

// Fetch downloads the page body at url.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	res, err := c.http.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	if res.IsError() {
		return "", fmt.Errorf("failed to fetch %s: status %s", url, res.Status())
	}

	body := string(res.Body())
	if body == "" {
		return "", fmt.Errorf("failed to fetch %s: empty response body", url)
	}
	return body, nil
}
