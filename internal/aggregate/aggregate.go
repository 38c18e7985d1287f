package aggregate

import (
	"sort"

	"rpcbench/internal/models"
)

// Aggregate ranks a completed run: successful endpoints ascending by mean
// latency, failed endpoints in the order they were tested. The sort is
// stable, so endpoints with identical means keep their test order. Aggregate
// is a pure function of its input and computes nothing across endpoints.
func Aggregate(results []models.EndpointResult) models.Report {
	var report models.Report

	for _, r := range results {
		if r.OK() {
			report.Ranked = append(report.Ranked, r)
		} else {
			report.Failed = append(report.Failed, r)
		}
	}

	sort.SliceStable(report.Ranked, func(i, j int) bool {
		return report.Ranked[i].Stats.Mean < report.Ranked[j].Stats.Mean
	})

	return report
}
