// Command quotecheck compares quote arithmetic with arbitrary-precision
// reference results over millions of random operands.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/samber/lo"

	"github.com/shabbyrobe/go-quote/internal/diffcheck"
)

const usage = `Quotation differential checker

Usage: quotecheck [--iterations N] [--seed S] [--ops add,mul] [--workers W]
                  [--oracle apd|decimal] [--max-failures F] [--dump] [--config file]
`

var errFailed = errors.New("quotecheck: failures found")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprint(stderr, usage)
		return err
	}

	ops, err := diffcheck.ParseOps(cfg.Ops)
	if err != nil {
		return err
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger.Info("starting", "seed", cfg.Seed, "iterations", cfg.Iterations, "ops", ops, "workers", cfg.Workers)
	rep, err := diffcheck.Run(ctx, diffcheck.Config{
		Iterations:  cfg.Iterations,
		Seed:        cfg.Seed,
		Ops:         ops,
		Workers:     cfg.Workers,
		Oracle:      cfg.Oracle,
		MaxFailures: cfg.MaxFailures,
	}, logger)
	if err != nil {
		return err
	}

	printReport(stdout, rep, cfg.Dump)
	if rep.Failed() {
		return errFailed
	}
	return nil
}

func printReport(w io.Writer, rep diffcheck.Report, dump bool) {
	ops := lo.Keys(rep.Counts)
	diffcheck.SortOps(ops)

	fmt.Fprintf(w, "seed %d, oracle %s, %s\n", rep.Seed, rep.Oracle, rep.Elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "%-10s %10s %10s %10s %10s\n", "op", "checked", "overflow", "divzero", "failed")
	for _, op := range ops {
		c := rep.Counts[op]
		fmt.Fprintf(w, "%-10s %10d %10d %10d %10d\n", op, c.Checked, c.Overflow, c.DivideByZero, c.Failed)
	}

	counts := lo.Values(rep.Counts)
	fmt.Fprintf(w, "%-10s %10d %10d %10d %10d\n", "total",
		lo.SumBy(counts, func(c *diffcheck.Count) int { return c.Checked }),
		lo.SumBy(counts, func(c *diffcheck.Count) int { return c.Overflow }),
		lo.SumBy(counts, func(c *diffcheck.Count) int { return c.DivideByZero }),
		lo.SumBy(counts, func(c *diffcheck.Count) int { return c.Failed }))

	for _, f := range rep.Failures {
		fmt.Fprintln(w, "FAIL", f.String())
		if dump {
			spew.Fdump(w, f)
		}
	}
}
