// Package cmd provides the Cobra CLI command structure for crawl.
//
// It defines the root command and the handful of flags the reference
// driver exposes: which strategy to run, how many workers to give the pool
// strategy, and whether to print a terse run summary once the walk
// finishes.
package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/pelletier/go-toml"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	crawl "github.com/andysalerno/async-crawl"
	"github.com/andysalerno/async-crawl/pkg/report"
)

var (
	strategyFlag string
	workersFlag  int
	statsFlag    bool
	dedupeFlag   bool
	configFlag   string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "crawl <root>",
	Short: "Traverse a directory tree and print every entry it finds",
	Long: `crawl walks the subtree rooted at the given path using one of three
interchangeable strategies and prints every discovered entry, one path per
line.

Examples:
  crawl .
  crawl --strategy pool --workers 8 /var/log
  crawl --strategy recursive --stats /tmp`,
	Args: cobra.ExactArgs(1),
	RunE: runCrawl,
}

func init() {
	rootCmd.Flags().StringVarP(&strategyFlag, "strategy", "s", "",
		"Crawl strategy: single, pool, recursive (default: auto, based on --workers)")
	rootCmd.Flags().IntVarP(&workersFlag, "workers", "w", 1,
		"Worker count for the pool strategy")
	rootCmd.Flags().BoolVar(&statsFlag, "stats", false,
		"Print a run summary after the path stream")
	rootCmd.Flags().BoolVar(&dedupeFlag, "dedupe", false,
		"Deliver each hardlinked file only once (no effect on Windows)")
	rootCmd.Flags().StringVar(&configFlag, "config", ".crawlrc.toml",
		"Optional TOML file supplying default --workers/--strategy values")
}

// Execute adds all child commands to the root command and executes it.
func Execute() error {
	return rootCmd.Execute()
}

// applyConfigDefaults fills in any flag the user didn't explicitly set from
// the optional config file.
func applyConfigDefaults(cmd *cobra.Command) error {
	cfg, err := loadConfig(configFlag)
	if err != nil {
		return fmt.Errorf("load config %s: %w", configFlag, err)
	}
	if !cmd.Flags().Changed("workers") && cfg.Workers > 0 {
		workersFlag = cfg.Workers
	}
	if !cmd.Flags().Changed("strategy") && cfg.Strategy != "" {
		strategyFlag = cfg.Strategy
	}
	return nil
}

func parseStrategy(s string) (crawl.Strategy, error) {
	switch s {
	case "", "auto":
		return crawl.StrategyAuto, nil
	case "single":
		return crawl.StrategySingle, nil
	case "pool":
		return crawl.StrategyPool, nil
	case "recursive":
		return crawl.StrategyRecursive, nil
	default:
		return crawl.StrategyAuto, fmt.Errorf("unknown strategy %q: want single, pool, recursive, or auto", s)
	}
}

// runCrawl wires the crawl library's action callback to a bounded channel
// drained by its own printer goroutine, so stdout latency never throttles
// the workers doing the actual traversal. The crawl goroutine and the
// printer goroutine are coordinated with errgroup, matching the "spawn N,
// wait for all, propagate the first error" shape the corpus's own CLI
// tools use for this exact pattern.
func runCrawl(cmd *cobra.Command, args []string) error {
	if err := applyConfigDefaults(cmd); err != nil {
		return err
	}

	root := args[0]
	strategy, err := parseStrategy(strategyFlag)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	stats := crawl.NewRunStats(strategy, workersFlag)
	paths := make(chan string, 4096)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(paths)
		action := crawl.ActionFunc(func(item crawl.WorkItem) {
			select {
			case paths <- item.Path():
			case <-gctx.Done():
			}
		})
		opts := []crawl.Option{
			crawl.WithStrategy(strategy),
			crawl.WithWorkers(workersFlag),
			crawl.WithContext(gctx),
			crawl.WithStats(stats),
			crawl.WithErrorSink(func(err error) { fmt.Fprintln(os.Stderr, err) }),
		}
		if dedupeFlag {
			opts = append(opts, crawl.WithDedupeHardlinks())
		}
		return crawl.Crawl(root, action, opts...)
	})

	g.Go(func() error {
		w := bufio.NewWriter(os.Stdout)
		defer w.Flush()
		for p := range paths {
			if _, err := w.WriteString(p); err != nil {
				return err
			}
			if err := w.WriteByte('\n'); err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	if statsFlag {
		fmt.Print(report.Summary(stats))
	}

	return nil
}
