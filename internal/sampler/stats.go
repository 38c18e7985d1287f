package sampler

import (
	"sort"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"rpcbench/internal/models"
)

// summarize folds a non-empty observation sequence into its summary
// statistics.
func summarize(observations []time.Duration) models.Stats {
	samples := make([]float64, len(observations))
	for i, d := range observations {
		samples[i] = float64(d)
	}
	sort.Float64s(samples)

	return models.Stats{
		Count:  len(samples),
		Mean:   time.Duration(stat.Mean(samples, nil)),
		Median: time.Duration(median(samples)),
		Min:    time.Duration(floats.Min(samples)),
		Max:    time.Duration(floats.Max(samples)),
	}
}

// median expects sorted input. Even-length sequences average the two middle
// values.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
