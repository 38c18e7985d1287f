package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"rpcbench/internal/models"
)

// Write renders the ranked comparison as plain text.
func Write(w io.Writer, run *models.TestRun, rep models.Report) error {
	fmt.Fprintf(w, "JSON-RPC Endpoint Latency Report\n")
	fmt.Fprintf(w, "Run: %s\n", run.ID)
	fmt.Fprintf(w, "Generated: %s\n\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintln(w, strings.Repeat("=", 60))

	fmt.Fprintln(w, "\nRANKING (mean round-trip latency, ascending)")
	if len(rep.Ranked) == 0 {
		fmt.Fprintln(w, "No endpoint completed any successful request.")
	}
	for i, r := range rep.Ranked {
		fmt.Fprintf(w, "%d. %s\n", i+1, r.Endpoint)
		fmt.Fprintf(w, "  Samples: %d\n", r.Stats.Count)
		fmt.Fprintf(w, "  Mean RTT: %.2f ms\n", millis(r.Stats.Mean))
		fmt.Fprintf(w, "  Median RTT: %.2f ms\n", millis(r.Stats.Median))
		fmt.Fprintf(w, "  Min RTT: %.2f ms\n", millis(r.Stats.Min))
		fmt.Fprintf(w, "  Max RTT: %.2f ms\n", millis(r.Stats.Max))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, "\nFAILED ENDPOINTS")
	if len(rep.Failed) == 0 {
		fmt.Fprintln(w, "None.")
	}
	for _, r := range rep.Failed {
		fmt.Fprintf(w, "- %s: %s\n", r.Endpoint, r.Cause)
	}

	return nil
}

func (g *Generator) generateTextReport(runDir string, run *models.TestRun, rep models.Report) error {
	file, err := os.Create(filepath.Join(runDir, "summary.txt"))
	if err != nil {
		return err
	}
	defer file.Close()

	return Write(file, run, rep)
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
