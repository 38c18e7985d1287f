package report

import (
	"strings"
	"testing"
	"time"

	"rpcbench/internal/models"
)

func TestWrite(t *testing.T) {
	run := models.NewTestRun()
	rep := models.Report{
		Ranked: []models.EndpointResult{
			models.Success("https://fast.example", models.Stats{Count: 10, Mean: 20 * time.Millisecond, Median: 18 * time.Millisecond, Min: 9 * time.Millisecond, Max: 41 * time.Millisecond}),
			models.Success("https://slow.example", models.Stats{Count: 8, Mean: 90 * time.Millisecond, Median: 85 * time.Millisecond, Min: 60 * time.Millisecond, Max: 140 * time.Millisecond}),
		},
		Failed: []models.EndpointResult{
			models.Failure("wss://dead.example/ws", "connection refused: dial tcp"),
		},
	}

	var buf strings.Builder
	if err := Write(&buf, run, rep); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	out := buf.String()

	fast := strings.Index(out, "https://fast.example")
	slow := strings.Index(out, "https://slow.example")
	if fast == -1 || slow == -1 || fast > slow {
		t.Errorf("ranking order wrong in output:\n%s", out)
	}
	if !strings.Contains(out, "Mean RTT: 20.00 ms") {
		t.Errorf("mean missing from output:\n%s", out)
	}
	if !strings.Contains(out, "wss://dead.example/ws: connection refused") {
		t.Errorf("failure missing from output:\n%s", out)
	}
	if !strings.Contains(out, run.ID) {
		t.Errorf("run id missing from output:\n%s", out)
	}
}

func TestEndpointLabel(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"https://rpc.example:8545", "rpc.example:8545"},
		{"wss://rpc.example/ws", "rpc.example"},
		{"not a url", "not a url"},
	}

	for _, tt := range tests {
		if got := endpointLabel(tt.endpoint); got != tt.want {
			t.Errorf("endpointLabel(%q) = %q, want %q", tt.endpoint, got, tt.want)
		}
	}
}
