package report

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"rpcbench/internal/models"
)

// Generator writes run reports to disk
type Generator struct {
	outputDir string
}

// NewGenerator creates a new report generator
func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: outputDir}
}

// Generate writes the text summary and, optionally, a mean-latency chart
// into a per-run directory and returns that directory's path.
func (g *Generator) Generate(run *models.TestRun, rep models.Report, chart bool) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	runDir := filepath.Join(g.outputDir, fmt.Sprintf("rpcbench_%s", run.Started.Format("2006-01-02_15-04-05")))
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	if err := g.generateTextReport(runDir, run, rep); err != nil {
		return "", fmt.Errorf("failed to generate text report: %w", err)
	}

	if chart {
		if err := g.generateLatencyChart(runDir, rep); err != nil {
			log.Printf("Failed to generate latency chart: %v", err)
		}
	}

	return runDir, nil
}
