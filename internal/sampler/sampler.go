package sampler

import (
	"context"
	"log"
	"time"

	"rpcbench/internal/models"
	"rpcbench/internal/probe"
)

// Config holds the timing parameters of one endpoint test.
type Config struct {
	Budget       time.Duration // observation window per endpoint
	ProbeTimeout time.Duration // bound on any single probe
	Delay        time.Duration // pause between probes
}

// Sampler drives endpoints through a bounded observation window, one at a
// time. It is not safe for concurrent use; sessions are strictly sequential.
type Sampler struct {
	prober models.Prober
	cfg    Config

	now func() time.Time
}

// New creates a new Sampler
func New(prober models.Prober, cfg Config) *Sampler {
	return &Sampler{
		prober: prober,
		cfg:    cfg,
		now:    time.Now,
	}
}

const causeNoSamples = "no successful requests completed"

// Sample tests one endpoint: a reachability check, one warm-up probe, then
// timed probes until the observation window closes. It always returns a
// result; anything that goes wrong for the endpoint is folded into the
// failure variant rather than returned as an error.
func (s *Sampler) Sample(ctx context.Context, endpoint string) models.EndpointResult {
	// A dead endpoint would otherwise burn the whole window on retries.
	if _, err := s.timedProbe(ctx, endpoint); err != nil {
		log.Printf("%s: unreachable: %v", endpoint, err)
		return models.Failure(endpoint, probe.Classify(err))
	}

	// One throwaway probe so connection setup cost does not inflate the
	// first counted sample.
	if warm, err := s.timedProbe(ctx, endpoint); err != nil {
		log.Printf("%s: warm-up probe failed: %v", endpoint, err)
	} else {
		log.Printf("%s: warm-up took %v", endpoint, warm)
	}

	var observations []time.Duration
	deadline := s.now().Add(s.cfg.Budget)

	for s.now().Before(deadline) {
		elapsed, err := s.timedProbe(ctx, endpoint)
		switch {
		case err != nil:
			// One failed probe does not abort the session.
			log.Printf("%s: probe failed: %v", endpoint, err)
		case elapsed == 0:
			// Clock-resolution artifact. On a very fast local target this
			// can also swallow genuine sub-resolution samples; known
			// precision limitation.
			log.Printf("%s: discarding zero-duration sample", endpoint)
		default:
			observations = append(observations, elapsed)
		}

		if !s.pause(ctx) {
			break
		}
	}

	if len(observations) == 0 {
		return models.Failure(endpoint, causeNoSamples)
	}
	return models.Success(endpoint, summarize(observations))
}

// timedProbe runs one probe bounded by the configured timeout and returns
// its elapsed wall time. The probe runs in its own goroutine raced against
// the timeout, so the caller unblocks when the bound expires even if the
// underlying call cannot be interrupted.
func (s *Sampler) timedProbe(ctx context.Context, endpoint string) (time.Duration, error) {
	ctx, cancel := context.WithTimeout(ctx, s.cfg.ProbeTimeout)
	defer cancel()

	start := s.now()
	done := make(chan error, 1)
	go func() {
		done <- s.prober.Probe(ctx, endpoint)
	}()

	select {
	case err := <-done:
		return s.now().Sub(start), err
	case <-ctx.Done():
		return s.now().Sub(start), ctx.Err()
	}
}

// pause sleeps the inter-probe delay, returning false if the run was
// cancelled meanwhile.
func (s *Sampler) pause(ctx context.Context) bool {
	if s.cfg.Delay <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(s.cfg.Delay)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
