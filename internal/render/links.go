package render

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// linkLabel builds a compact domain-only label for a project URL so the
// rendered card shows "github.com" instead of the full address. Falls back
// to the raw string when the URL cannot be parsed.
func linkLabel(raw string) string {
	if raw == "" {
		return ""
	}
	candidate := raw
	if !strings.HasPrefix(candidate, "http://") && !strings.HasPrefix(candidate, "https://") {
		candidate = "https://" + candidate
	}
	parsed, err := url.Parse(candidate)
	if err != nil {
		return raw
	}
	host := parsed.Hostname()
	if host == "" {
		return raw
	}
	if etld, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return strings.TrimPrefix(etld, "www.")
	}
	return strings.TrimPrefix(host, "www.")
}
