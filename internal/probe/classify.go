package probe

import (
	"context"
	"errors"
	"net"
	"strings"
)

// Classify maps a probe error to a human-readable cause for the failure
// report. The mapping is best-effort text matching; it only decides the
// wording attached to a failed endpoint, never control flow.
func Classify(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()

	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return "hostname resolution failed: " + dnsErr.Name
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded),
		strings.Contains(msg, "deadline exceeded"),
		strings.Contains(msg, "timeout"):
		return "timed out: " + msg
	case strings.Contains(msg, "no such host"):
		return "hostname resolution failed: " + msg
	case strings.Contains(msg, "certificate"), strings.Contains(msg, "x509"):
		return "certificate validation failed: " + msg
	case strings.Contains(msg, "connection refused"):
		return "connection refused: " + msg
	case strings.Contains(msg, "connection reset"):
		return "connection reset: " + msg
	default:
		return msg
	}
}
