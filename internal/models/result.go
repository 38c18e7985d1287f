package models

import (
	"time"

	"github.com/google/uuid"
)

// Stats summarizes the latency observations collected for one endpoint.
type Stats struct {
	Count  int           `json:"count"`
	Mean   time.Duration `json:"mean"`
	Median time.Duration `json:"median"`
	Min    time.Duration `json:"min"`
	Max    time.Duration `json:"max"`
}

// EndpointResult is the terminal record for one tested endpoint. It is
// exactly one of two variants: Stats is set for a completed test, Cause for
// a failed one. Use the Success and Failure constructors.
type EndpointResult struct {
	Endpoint string `json:"endpoint"`
	Stats    *Stats `json:"stats,omitempty"`
	Cause    string `json:"cause,omitempty"`
}

// Success builds the success variant of a result.
func Success(endpoint string, stats Stats) EndpointResult {
	return EndpointResult{Endpoint: endpoint, Stats: &stats}
}

// Failure builds the failure variant of a result.
func Failure(endpoint, cause string) EndpointResult {
	return EndpointResult{Endpoint: endpoint, Cause: cause}
}

// OK reports whether the result carries statistics.
func (r EndpointResult) OK() bool {
	return r.Stats != nil
}

// TestRun collects per-endpoint results in the order the endpoints were
// tested. It is appended to by a single goroutine and read only after the
// last endpoint finished.
type TestRun struct {
	ID      string           `json:"id"`
	Started time.Time        `json:"started"`
	Results []EndpointResult `json:"results"`
}

// NewTestRun creates an empty run with a fresh identifier.
func NewTestRun() *TestRun {
	return &TestRun{
		ID:      uuid.NewString(),
		Started: time.Now(),
	}
}

// Append records the result for the next tested endpoint.
func (tr *TestRun) Append(r EndpointResult) {
	tr.Results = append(tr.Results, r)
}

// Report is the ranked comparison of one run. Ranked holds the successful
// endpoints ascending by mean latency; Failed keeps failed endpoints in the
// order they were tested.
type Report struct {
	Ranked []EndpointResult `json:"ranked"`
	Failed []EndpointResult `json:"failed"`
}
