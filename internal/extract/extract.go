// Package extract evaluates CSS-selector queries against fetched page
// content.
package extract

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// Mode selects what an extraction returns for each matched element.
type Mode int

const (
	// Text returns the element's text content.
	Text Mode = iota
	// WholeElement returns the full matched markup.
	WholeElement
)

// find compiles selector explicitly so a malformed expression comes
// back as an error instead of the panic goquery's own Find raises.
func find(content, selector string) (*goquery.Selection, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page content: %w", err)
	}

	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("failed to compile selector %q: %w", selector, err)
	}
	return doc.FindMatcher(matcher), nil
}

// Matches returns one entry per element matched by selector, in
// document order. The result may be empty; matching nothing is not an
// error.
func Matches(content, selector string, mode Mode) ([]string, error) {
	sel, err := find(content, selector)
	if err != nil {
		return nil, err
	}

	var out []string
	var iterErr error
	sel.Each(func(_ int, s *goquery.Selection) {
		switch mode {
		case WholeElement:
			html, err := goquery.OuterHtml(s)
			if err != nil {
				iterErr = fmt.Errorf("failed to render element: %w", err)
				return
			}
			out = append(out, strings.TrimSpace(html))
		default:
			out = append(out, strings.TrimSpace(s.Text()))
		}
	})
	if iterErr != nil {
		return nil, iterErr
	}
	return out, nil
}

// Count returns the number of elements matched by selector.
func Count(content, selector string) (int, error) {
	sel, err := find(content, selector)
	if err != nil {
		return 0, err
	}
	return sel.Length(), nil
}
