package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"rpcbench/internal/aggregate"
	"rpcbench/internal/config"
	"rpcbench/internal/models"
	"rpcbench/internal/probe"
	"rpcbench/internal/report"
	"rpcbench/internal/sampler"
)

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := sampler.New(probe.New(), sampler.Config{
		Budget:       cfg.Duration,
		ProbeTimeout: cfg.Timeout,
		Delay:        cfg.Delay,
	})

	run := models.NewTestRun()
	log.Printf("Starting run %s: %d endpoints, %v window each", run.ID, len(cfg.Endpoints), cfg.Duration)

	// Endpoints are tested strictly one after another so they never compete
	// with each other for bandwidth. Per-endpoint failures are recorded as
	// results, not errors.
	for _, endpoint := range cfg.Endpoints {
		log.Printf("Testing %s", endpoint)
		run.Append(s.Sample(ctx, endpoint))

		if ctx.Err() != nil {
			log.Println("Interrupted, reporting partial results")
			break
		}
	}

	rep := aggregate.Aggregate(run.Results)

	if err := report.Write(os.Stdout, run, rep); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}

	if cfg.ReportDir != "" {
		gen := report.NewGenerator(cfg.ReportDir)
		runDir, err := gen.Generate(run, rep, cfg.Chart)
		if err != nil {
			log.Fatalf("Failed to generate report files: %v", err)
		}
		log.Printf("Report written to %s", runDir)
	}
}
