package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/danielpatrickdp/chaos-oracle/internal/console"
	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
	"github.com/danielpatrickdp/chaos-oracle/internal/pidigits"
	"github.com/danielpatrickdp/chaos-oracle/internal/stats"
)

// #region batch

func newBatchCmd(a *app) *cobra.Command {
	var (
		runs     int
		parallel int
		fromPi   bool
	)

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run many independent decisions and summarize them",
		RunE: func(cmd *cobra.Command, args []string) error {
			n := runs
			if fromPi {
				count, err := pidigits.RunCount(5)
				if err != nil {
					return err
				}
				n = count
				a.log.Debug("run count drawn from pi digits", zap.Int("runs", n))
			}
			if n < 1 {
				return fmt.Errorf("batch needs at least one run, got %d", n)
			}

			results, err := runBatch(a.cfg, n, parallel)
			if err != nil {
				return err
			}

			summary := stats.Summarize(results)
			a.log.Debug("batch complete",
				zap.Int("runs", summary.Total),
				zap.Float64("yes_fraction", summary.YesFraction),
			)
			fmt.Fprintln(cmd.OutOrStdout(), console.NewRenderer(!a.noColor).RenderSummary(summary))
			return nil
		},
	}
	cmd.Flags().IntVarP(&runs, "runs", "n", 10, "number of decisions")
	cmd.Flags().IntVarP(&parallel, "parallel", "p", 1, "concurrent workers")
	cmd.Flags().BoolVar(&fromPi, "pi", false, "derive the run count from five digits of pi")
	return cmd
}

// runBatch executes n independent decisions. Each call allocates its
// own sample and mix state, so workers share nothing but the system
// entropy source.
func runBatch(cfg oracle.Config, n, parallel int) ([]oracle.Result, error) {
	if parallel < 1 {
		parallel = 1
	}

	results := make([]oracle.Result, n)
	var g errgroup.Group
	g.SetLimit(parallel)
	for i := 0; i < n; i++ {
		g.Go(func() error {
			res, err := oracle.New().Decide(cfg)
			if err != nil {
				return err
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

// #endregion batch
