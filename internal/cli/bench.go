package cli

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/vlist/internal/config"
	"github.com/rshade/vlist/internal/logging"
	"github.com/rshade/vlist/internal/virtuallist"
)

// benchScrollSteps is the number of ScrollBy calls timed per list.
const benchScrollSteps = 1000

// BenchResult is the timing of one list size.
type BenchResult struct {
	Items         int           `json:"items"          yaml:"items"`
	Build         time.Duration `json:"build_ns"       yaml:"build"`
	Measure       time.Duration `json:"measure_ns"     yaml:"measure"`
	Measured      int           `json:"measured"       yaml:"measured"`
	Scroll        time.Duration `json:"scroll_ns"      yaml:"scroll"`
	ContentHeight float32       `json:"content_height" yaml:"content_height"`
}

// NewBenchCmd creates the bench command.
func NewBenchCmd() *cobra.Command {
	var (
		sizes   []int
		measure int
		output  string
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time layout and scrolling for several list sizes",
		Long: `Builds one list per size concurrently and reports how long the initial
layout, a measurement pass over the first --measure items and a sweep of
ScrollBy calls take, together with the resulting content height.`,
		Example: `  vlist bench
  vlist bench --sizes 1000,100000,1000000 --measure 500
  vlist bench --output json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := parseOutputFormat(output)
			if err != nil {
				return err
			}
			for _, n := range sizes {
				if n < 0 {
					return fmt.Errorf("sizes must be >= 0, got %d", n)
				}
			}
			if measure < 0 {
				return fmt.Errorf("measure must be >= 0, got %d", measure)
			}

			cfg := config.GetGlobalConfig()
			flags, err := readListFlags(cmd, cfg)
			if err != nil {
				return err
			}

			results, err := runBench(cmd.Context(), cfg.List, sizes, measure, flags.viewport)
			if err != nil {
				return err
			}
			return renderBench(cmd.OutOrStdout(), format, results)
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{1_000, 10_000, 100_000}, "list sizes to benchmark")
	cmd.Flags().IntVar(&measure, "measure", 100, "items to measure in the variable-height pass")
	cmd.Flags().StringVarP(&output, "output", "o", string(OutputTable), "output format: table, json, ndjson, yaml")

	return cmd
}

// runBench benchmarks every size in parallel. Each goroutine owns its list.
func runBench(
	ctx context.Context,
	listCfg config.ListConfig,
	sizes []int,
	measure int,
	viewport float32,
) ([]BenchResult, error) {
	log := logging.FromContext(ctx)
	results := make([]BenchResult, len(sizes))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, n := range sizes {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			res, err := benchOne(logging.ComponentLogger(*log, "bench"), listCfg, n, measure, viewport)
			if err != nil {
				return fmt.Errorf("benchmarking %d items: %w", n, err)
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func benchOne(
	logger zerolog.Logger,
	listCfg config.ListConfig,
	n, measure int,
	viewport float32,
) (BenchResult, error) {
	res := BenchResult{Items: n}

	start := time.Now()
	list := virtuallist.New()
	if err := listCfg.Apply(list); err != nil {
		return res, err
	}
	list.Items(n).ViewportHeight(viewport)
	res.Build = time.Since(start)

	estimate := list.Config().ItemHeight.Value
	res.Measured = min(measure, n)
	start = time.Now()
	if res.Measured > 0 {
		list.VariableHeight(estimate)
		for i := range res.Measured {
			// Alternate around the estimate so positions actually move.
			list.SetItemHeight(i, estimate*float32(1+i%3)/2)
		}
	}
	res.Measure = time.Since(start)

	step := list.MaxScrollOffset() / benchScrollSteps
	start = time.Now()
	for range benchScrollSteps {
		list.ScrollBy(step)
		_ = list.VisibleRange()
	}
	res.Scroll = time.Since(start)
	res.ContentHeight = list.ContentHeight()

	logger.Debug().
		Int("items", n).
		Dur("build", res.Build).
		Dur("measure", res.Measure).
		Dur("scroll", res.Scroll).
		Msg("bench finished")

	return res, nil
}

func renderBench(w io.Writer, format OutputFormat, results []BenchResult) error {
	switch format {
	case OutputJSON:
		return writeJSON(w, results)
	case OutputNDJSON:
		return writeNDJSON(w, results)
	case OutputYAML:
		return writeYAML(w, results)
	default:
		return renderBenchTable(w, results)
	}
}

func renderBenchTable(w io.Writer, results []BenchResult) error {
	p := newPrinter()
	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Items\tBuild\tMeasured\tMeasure\tScroll/step\tContent height\t")
	for _, r := range results {
		perStep := r.Scroll / benchScrollSteps
		p.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%.0f\t\n",
			r.Items, r.Build, r.Measured, r.Measure, perStep, r.ContentHeight)
	}
	return tw.Flush()
}
