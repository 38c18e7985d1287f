package models

import (
	"testing"
	"time"
)

func TestResultVariants(t *testing.T) {
	ok := Success("https://rpc.example", Stats{Count: 3, Mean: 20 * time.Millisecond})
	if !ok.OK() || ok.Stats == nil || ok.Cause != "" {
		t.Errorf("success variant malformed: %+v", ok)
	}

	failed := Failure("https://rpc.example", "timed out: i/o timeout")
	if failed.OK() || failed.Stats != nil || failed.Cause == "" {
		t.Errorf("failure variant malformed: %+v", failed)
	}
}

func TestTestRunAppendKeepsOrder(t *testing.T) {
	run := NewTestRun()
	if run.ID == "" {
		t.Error("run has no identifier")
	}

	run.Append(Failure("a", "timed out"))
	run.Append(Success("b", Stats{Count: 1, Mean: time.Millisecond}))
	run.Append(Failure("c", "connection refused"))

	want := []string{"a", "b", "c"}
	if len(run.Results) != len(want) {
		t.Fatalf("got %d results, want %d", len(run.Results), len(want))
	}
	for i, w := range want {
		if run.Results[i].Endpoint != w {
			t.Errorf("results[%d] = %s, want %s", i, run.Results[i].Endpoint, w)
		}
	}
}
