package diffcheck

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Config struct {
	Iterations  int
	Seed        int64
	Ops         []Op
	Workers     int
	Oracle      string
	MaxFailures int
}

// Count tallies the checks run for one op.
type Count struct {
	Checked      int
	Failed       int
	Overflow     int
	DivideByZero int
}

func (c *Count) add(o Count) {
	c.Checked += o.Checked
	c.Failed += o.Failed
	c.Overflow += o.Overflow
	c.DivideByZero += o.DivideByZero
}

type Report struct {
	Seed     int64
	Oracle   string
	Counts   map[Op]*Count
	Failures []Failure
	Elapsed  time.Duration
}

// Failed reports whether any check failed.
func (r Report) Failed() bool { return len(r.Failures) > 0 }

// Run checks each op in cfg.Ops cfg.Iterations times, spread over
// cfg.Workers goroutines. Worker w seeds its Source with cfg.Seed+w, so a
// run is reproducible for a given seed and worker count.
//
// Once cfg.MaxFailures failures are recorded (if it is above zero), the
// workers stop early. Failures are part of the Report, not the error; Run
// only fails on bad configuration or when ctx is cancelled.
func Run(ctx context.Context, cfg Config, log *slog.Logger) (Report, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if len(cfg.Ops) == 0 {
		cfg.Ops = AllOps
	}
	if cfg.Iterations < 0 {
		return Report{}, Error.New("iterations must not be negative, got %d", cfg.Iterations)
	}
	if _, err := NewOracle(cfg.Oracle); err != nil {
		return Report{}, err
	}

	start := time.Now()
	reports := make([]Report, cfg.Workers)
	var failures atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < cfg.Workers; w++ {
		w := w
		iterations := cfg.Iterations / cfg.Workers
		if w < cfg.Iterations%cfg.Workers {
			iterations++
		}

		g.Go(func() error {
			oracle, _ := NewOracle(cfg.Oracle)
			source := NewSource(cfg.Seed + int64(w))
			rep := Report{Counts: make(map[Op]*Count, len(cfg.Ops))}
			for _, op := range cfg.Ops {
				rep.Counts[op] = &Count{}
			}

			log.Debug("worker started", "worker", w, "iterations", iterations)
			for i := 0; i < iterations; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for _, op := range cfg.Ops {
					if cfg.MaxFailures > 0 && failures.Load() >= int64(cfg.MaxFailures) {
						log.Debug("worker stopped early", "worker", w, "iteration", i)
						reports[w] = rep
						return nil
					}

					outcome, fail := Check(op, source.Operands(), oracle)
					c := rep.Counts[op]
					c.Checked++
					switch outcome {
					case OutcomeOverflow:
						c.Overflow++
					case OutcomeDivideByZero:
						c.DivideByZero++
					}
					if fail != nil {
						c.Failed++
						failures.Add(1)
						rep.Failures = append(rep.Failures, *fail)
						log.Warn("check failed", "worker", w, "failure", fail.String())
					}
				}
			}
			log.Debug("worker done", "worker", w)
			reports[w] = rep
			return nil
		})
	}

	out := Report{
		Seed:   cfg.Seed,
		Oracle: cfg.Oracle,
		Counts: make(map[Op]*Count, len(cfg.Ops)),
	}
	if out.Oracle == "" {
		out.Oracle = "apd"
	}
	if err := g.Wait(); err != nil {
		return out, err
	}

	for _, op := range cfg.Ops {
		out.Counts[op] = &Count{}
	}
	for _, rep := range reports {
		for op, c := range rep.Counts {
			out.Counts[op].add(*c)
		}
		out.Failures = append(out.Failures, rep.Failures...)
	}
	out.Elapsed = time.Since(start)

	log.Info("differential check finished",
		"seed", out.Seed,
		"oracle", out.Oracle,
		"failures", len(out.Failures),
		"elapsed", out.Elapsed)
	return out, nil
}
