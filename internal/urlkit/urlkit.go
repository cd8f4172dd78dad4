package urlkit

import (
	"net/url"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// Host extracts the hostname from a URL, tolerating bare domains without a scheme.
func Host(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	if !strings.HasPrefix(raw, "http:") && !strings.HasPrefix(raw, "https:") {
		raw = "http://" + raw
	}
	parsed, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return strings.ToLower(parsed.Hostname())
}

// TLD returns the last dot-separated label of the URL's host.
func TLD(raw string) string {
	host := Host(raw)
	if host == "" {
		return ""
	}
	parts := strings.Split(host, ".")
	return parts[len(parts)-1]
}

// RegisteredDomain returns the registrable domain (eTLD+1) for a URL,
// or "" when the host has no registrable part.
func RegisteredDomain(raw string) string {
	host := Host(raw)
	if host == "" || !strings.Contains(host, ".") {
		return ""
	}
	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return ""
	}
	return domain
}
