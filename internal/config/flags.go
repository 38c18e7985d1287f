package config

import (
	"flag"
	"strings"
)

// ParseFlags parses command-line flags, layered over an optional config
// file, and returns a Config. Flags given explicitly win over the file.
func ParseFlags() (Config, error) {
	def := Default()
	var (
		configPath = flag.String("config", "", "Optional YAML config file")
		endpoints  = flag.String("endpoints", "", "Comma-separated JSON-RPC endpoint URLs")
		duration   = flag.Duration("duration", def.Duration, "Observation window per endpoint")
		timeout    = flag.Duration("timeout", def.Timeout, "Timeout for a single probe")
		delay      = flag.Duration("delay", def.Delay, "Pause between probes")
		reportDir  = flag.String("report-dir", def.ReportDir, "Directory for report files (empty: stdout only)")
		chart      = flag.Bool("chart", def.Chart, "Render a mean latency chart into the report directory")
	)
	flag.Parse()

	cfg := def
	if *configPath != "" {
		loaded, err := Load(*configPath)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "endpoints":
			cfg.Endpoints = splitEndpoints(*endpoints)
		case "duration":
			cfg.Duration = *duration
		case "timeout":
			cfg.Timeout = *timeout
		case "delay":
			cfg.Delay = *delay
		case "report-dir":
			cfg.ReportDir = *reportDir
		case "chart":
			cfg.Chart = *chart
		}
	})

	return cfg, nil
}

func splitEndpoints(s string) []string {
	parts := strings.Split(s, ",")
	endpoints := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			endpoints = append(endpoints, p)
		}
	}
	return endpoints
}
