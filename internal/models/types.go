package models

import "context"

// Prober issues one minimal round-trip request against an endpoint. The
// request must be idempotent and cheap for the remote side; the probe
// returns once the response has been read or ctx expires.
type Prober interface {
	Probe(ctx context.Context, endpoint string) error
}
