package aggregate

import (
	"reflect"
	"testing"
	"time"

	"rpcbench/internal/models"
)

func success(endpoint string, mean time.Duration) models.EndpointResult {
	return models.Success(endpoint, models.Stats{
		Count:  5,
		Mean:   mean,
		Median: mean,
		Min:    mean / 2,
		Max:    mean * 2,
	})
}

func TestAggregateRanksByMeanLatency(t *testing.T) {
	results := []models.EndpointResult{
		success("http://a.example:8545", 50*time.Millisecond),
		models.Failure("http://b.example:8545", "connection refused: dial tcp"),
		success("http://c.example:8545", 20*time.Millisecond),
	}

	rep := Aggregate(results)

	wantRanked := []string{"http://c.example:8545", "http://a.example:8545"}
	if len(rep.Ranked) != len(wantRanked) {
		t.Fatalf("got %d ranked results, want %d", len(rep.Ranked), len(wantRanked))
	}
	for i, want := range wantRanked {
		if rep.Ranked[i].Endpoint != want {
			t.Errorf("ranked[%d] = %s, want %s", i, rep.Ranked[i].Endpoint, want)
		}
	}

	if len(rep.Failed) != 1 || rep.Failed[0].Endpoint != "http://b.example:8545" {
		t.Errorf("failed list = %+v, want only b", rep.Failed)
	}
}

func TestAggregateStableOnEqualMeans(t *testing.T) {
	results := []models.EndpointResult{
		success("http://first.example:8545", 30*time.Millisecond),
		success("http://second.example:8545", 30*time.Millisecond),
		success("http://third.example:8545", 10*time.Millisecond),
	}

	rep := Aggregate(results)

	want := []string{"http://third.example:8545", "http://first.example:8545", "http://second.example:8545"}
	for i, w := range want {
		if rep.Ranked[i].Endpoint != w {
			t.Errorf("ranked[%d] = %s, want %s", i, rep.Ranked[i].Endpoint, w)
		}
	}
}

func TestAggregateKeepsFailureOrder(t *testing.T) {
	results := []models.EndpointResult{
		models.Failure("http://z.example:8545", "timed out"),
		success("http://m.example:8545", 10*time.Millisecond),
		models.Failure("http://a.example:8545", "no successful requests completed"),
	}

	rep := Aggregate(results)

	want := []string{"http://z.example:8545", "http://a.example:8545"}
	if len(rep.Failed) != len(want) {
		t.Fatalf("got %d failures, want %d", len(rep.Failed), len(want))
	}
	for i, w := range want {
		if rep.Failed[i].Endpoint != w {
			t.Errorf("failed[%d] = %s, want %s", i, rep.Failed[i].Endpoint, w)
		}
	}
}

func TestAggregateIsPure(t *testing.T) {
	results := []models.EndpointResult{
		success("http://a.example:8545", 50*time.Millisecond),
		models.Failure("http://b.example:8545", "timed out"),
		success("http://c.example:8545", 20*time.Millisecond),
	}
	original := make([]models.EndpointResult, len(results))
	copy(original, results)

	first := Aggregate(results)
	second := Aggregate(results)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated aggregation differs:\n%+v\n%+v", first, second)
	}
	if !reflect.DeepEqual(results, original) {
		t.Errorf("Aggregate mutated its input: %+v", results)
	}
}

func TestAggregateEmpty(t *testing.T) {
	rep := Aggregate(nil)
	if len(rep.Ranked) != 0 || len(rep.Failed) != 0 {
		t.Errorf("aggregating no results produced %+v", rep)
	}
}
