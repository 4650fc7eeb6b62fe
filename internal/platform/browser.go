package platform

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cli/browser"
)

// Link schemes allowed for external links
const (
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

// openInBrowser is replaced in tests so no browser is launched
var openInBrowser = browser.OpenURL

// ParseLink validates an external link and returns the parsed URL
func ParseLink(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("link is empty")
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("invalid link %q: %w", rawURL, err)
	}

	if parsed.Scheme != SchemeHTTP && parsed.Scheme != SchemeHTTPS {
		return nil, fmt.Errorf("link must start with http:// or https://")
	}
	if parsed.Host == "" {
		return nil, fmt.Errorf("link %q has no host", rawURL)
	}

	return parsed, nil
}

// OpenURL opens an external http(s) link in the user's browser
func OpenURL(rawURL string) error {
	parsed, err := ParseLink(rawURL)
	if err != nil {
		return err
	}

	if err := openInBrowser(parsed.String()); err != nil {
		return fmt.Errorf("failed to open link in browser: %w", err)
	}
	return nil
}
