package report

import (
	"net/url"
	"strings"
)

// endpointLabel shortens an endpoint URL to its host for chart labels.
func endpointLabel(endpoint string) string {
	if u, err := url.Parse(endpoint); err == nil && u.Host != "" {
		return u.Host
	}
	return sanitizeLabel(endpoint)
}

// sanitizeLabel replaces characters that render poorly in chart labels
func sanitizeLabel(s string) string {
	replacer := strings.NewReplacer(
		"://", " ",
		"/", " ",
		"\\", " ",
	)
	return strings.TrimSpace(replacer.Replace(s))
}
