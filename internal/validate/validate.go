// Package validate holds the pure input predicates used by the wizard
// steps. Every check is side-effect free except File, which creates
// the target when absent so writability can actually be proven.
package validate

import (
	"fmt"
	"os"
	"regexp"
)

// urlPattern accepts http(s) URLs built from the usual URL character
// set. The final character is restricted to a structural subset so
// strings ending on a dangling separator ("https://x.com?") fail, and
// the body must be non-empty so a bare "http://" fails too.
var urlPattern = regexp.MustCompile(`^https?://[A-Za-z0-9._~:/?#@!$&'()*+,;=%-]*[A-Za-z0-9/]$`)

// selectorPattern is a permissive CSS-selector token charset: letters,
// digits, whitespace and ". # : -". Combinators beyond descent (e.g.
// attribute brackets) are deliberately rejected.
var selectorPattern = regexp.MustCompile(`^[A-Za-z0-9\s.#:-]+$`)

// URL reports whether raw is a syntactically plausible http(s) URL.
// Reachability is a separate concern checked by the fetch service.
func URL(raw string) error {
	if !urlPattern.MatchString(raw) {
		return fmt.Errorf("%q is not a valid http(s) URL", raw)
	}
	return nil
}

// Selector reports whether raw is a plausible CSS selector.
func Selector(raw string) error {
	if !selectorPattern.MatchString(raw) {
		return fmt.Errorf("%q is not a valid CSS selector", raw)
	}
	return nil
}

// File reports whether path is a writable regular file, creating it
// first when absent.
func File(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("cannot stat %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%q is not a regular file", path)
	}
	return nil
}
