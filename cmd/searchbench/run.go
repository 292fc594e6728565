package main

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/bytelab/searchbench/harness"
	"github.com/bytelab/searchbench/internal/telemetry"
)

// sink absorbs every work-unit result so the benchmarked call cannot
// be elided.
var sink int

type runOptions struct {
	scenario  string
	shape     string
	algorithm string
	warmup    int
	count     int
	metrics   bool
}

func newRunCmd() *cobra.Command {
	opts := runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Measure one scenario x shape x algorithm combination",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBenchmark(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.scenario, "scenario", "", "input scenario (see `searchbench list`)")
	cmd.Flags().StringVar(&opts.shape, "shape", "", "haystack buffer shape")
	cmd.Flags().StringVar(&opts.algorithm, "algo", "", "search algorithm work unit")
	cmd.Flags().IntVar(&opts.warmup, "warmup", 1, "unreported warmup passes")
	cmd.Flags().IntVar(&opts.count, "count", 5, "reported measurement passes")
	cmd.Flags().BoolVar(&opts.metrics, "metrics", false, "emit OTel run metrics on stdout at exit")
	for _, f := range []string{"scenario", "shape", "algo"} {
		_ = cmd.MarkFlagRequired(f)
	}
	return cmd
}

func runBenchmark(ctx context.Context, cmd *cobra.Command, opts runOptions) error {
	scenario, err := harness.ParseScenario(opts.scenario)
	if err != nil {
		return err
	}
	shape, err := harness.ParseShape(opts.shape)
	if err != nil {
		return err
	}
	alg, err := harness.ParseAlgorithm(opts.algorithm)
	if err != nil {
		return err
	}

	var m telemetry.Metrics
	if opts.metrics {
		shutdown, instruments := telemetry.Init(ctx, "searchbench")
		m = instruments
		defer func() {
			flushCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			_ = shutdown(flushCtx)
		}()
	}

	c := harness.NewCase(scenario, shape)
	if err := c.Setup(); err != nil {
		return err
	}
	defer c.Teardown()

	// Every algorithm must agree on the match offset before anything
	// is timed; a disagreement means at least one result is wrong and
	// its timing meaningless.
	expected := c.Run(harness.AlgIndexOf)
	for _, a := range harness.Algorithms() {
		if got := c.Run(a); got != expected {
			return fmt.Errorf("algorithm disagreement on %s/%s: %s returned %d, baseline %d",
				scenario, shape, a, got, expected)
		}
	}
	slog.Info("case ready",
		"scenario", scenario.String(), "shape", shape.String(), "algorithm", alg.String(),
		"needle_len", c.NeedleLen(), "haystack_len", c.HaystackLen(), "match", expected)

	attrs := metric.WithAttributes(
		attribute.String("scenario", scenario.String()),
		attribute.String("shape", shape.String()),
		attribute.String("algorithm", alg.String()),
	)
	bench := func(b *testing.B) {
		b.SetBytes(int64(c.HaystackLen()))
		for i := 0; i < b.N; i++ {
			sink = c.Run(alg)
		}
	}

	for i := 0; i < opts.warmup; i++ {
		testing.Benchmark(bench)
	}

	out := cmd.OutOrStdout()
	name := fmt.Sprintf("%s/%s/%s", scenario, shape, alg)
	for i := 0; i < opts.count; i++ {
		r := testing.Benchmark(bench)
		perOp := float64(r.T.Nanoseconds()) / float64(r.N) / float64(time.Millisecond)
		rate := float64(r.Bytes) * float64(r.N) / r.T.Seconds()
		fmt.Fprintf(out, "%s\t%d iterations\t%.6f ms/op\t%s/s\n",
			name, r.N, perOp, humanize.IBytes(uint64(rate)))
		if opts.metrics {
			m.Runs.Add(ctx, 1, attrs)
			m.Iterations.Add(ctx, int64(r.N), attrs)
			m.BytesScanned.Add(ctx, int64(r.N)*int64(c.HaystackLen()), attrs)
		}
	}
	_ = sink
	return nil
}
