package report

import (
	"os"
	"path/filepath"
	"time"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rpcbench/internal/models"
)

func (g *Generator) generateLatencyChart(runDir string, rep models.Report) error {
	if len(rep.Ranked) == 0 {
		return nil
	}

	bars := make([]chart.Value, 0, len(rep.Ranked))
	for _, r := range rep.Ranked {
		bars = append(bars, chart.Value{
			Label: endpointLabel(r.Endpoint),
			Value: float64(r.Stats.Mean) / float64(time.Millisecond),
			Style: chart.Style{
				FillColor:   chart.GetDefaultColor(0),
				StrokeColor: drawing.ColorBlack,
				StrokeWidth: 1,
			},
		})
	}

	graph := chart.BarChart{
		Title: "Mean Round-Trip Latency (ms)",
		TitleStyle: chart.Style{
			FontSize: 16,
		},
		Background: chart.Style{
			Padding: chart.Box{
				Top:    40,
				Left:   20,
				Right:  20,
				Bottom: 20,
			},
		},
		Width:    200 * len(bars),
		Height:   400,
		BarWidth: 80,
		Bars:     bars,
	}

	file, err := os.Create(filepath.Join(runDir, "latency.png"))
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}
