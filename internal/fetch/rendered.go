package fetch

import (
	"context"
	"fmt"
	"time"

	"scrapewiz/internal/browser"

	"github.com/go-rod/rod/lib/proto"
)

// Rendered fetches pages through a headless browser so that JS-driven
// content is present in the returned HTML. Each Fetch launches a fresh
// browser and tears it down afterwards; the wizard fetches once per
// scenario run, so keeping a browser alive buys nothing.
type Rendered struct {
	cfg     browser.Config
	timeout time.Duration
}

// NewRendered creates a browser-rendered fetcher.
func NewRendered(cfg browser.Config, timeout time.Duration) *Rendered {
	return &Rendered{cfg: cfg, timeout: timeout}
}

// Fetch loads url in a headless browser, waits for the load event plus
// network idle, and returns the rendered document HTML.
func (r *Rendered) Fetch(ctx context.Context, url string) (string, error) {
	b, err := browser.New(r.cfg)
	if err != nil {
		return "", fmt.Errorf("failed to create browser: %w", err)
	}
	defer b.Close()

	page, err := b.NewPage()
	if err != nil {
		return "", fmt.Errorf("failed to create page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx).Timeout(r.timeout)

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("failed to load %s: %w", url, err)
	}

	// Give JS-driven pages a chance to finish populating dynamic
	// content before the HTML is captured.
	wait := page.WaitRequestIdle(500*time.Millisecond, nil, nil, []proto.NetworkResourceType{
		proto.NetworkResourceTypeWebSocket,
	})
	wait()

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to read HTML of %s: %w", url, err)
	}
	if html == "" {
		return "", fmt.Errorf("failed to fetch %s: empty document", url)
	}
	return html, nil
}
