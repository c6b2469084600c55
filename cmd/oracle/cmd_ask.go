package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/chaos-oracle/internal/console"
	"github.com/danielpatrickdp/chaos-oracle/internal/history"
	"github.com/danielpatrickdp/chaos-oracle/internal/modulate"
	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
)

// #region ask

func newAskCmd(a *app) *cobra.Command {
	var noStore bool

	cmd := &cobra.Command{
		Use:   "ask",
		Short: "Run one decision",
		RunE: func(cmd *cobra.Command, args []string) error {
			o := oracle.New()
			res, err := o.Decide(a.cfg)
			if err != nil {
				return err
			}
			a.log.Debug("decision complete",
				zap.Int("decision", res.Decision),
				zap.Float64("raw_value", res.RawValue),
				zap.Int("entropy_sources", res.EntropySources),
				zap.Strings("stages", o.StageNames()),
				zap.Strings("modulation_constants", modulate.Names()),
			)

			if !noStore {
				if err := recordDecision(a, res); err != nil {
					a.log.Warn("history write failed", zap.Error(err))
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), console.NewRenderer(!a.noColor).Render(res, a.verbose))
			return nil
		},
	}
	cmd.Flags().BoolVar(&noStore, "no-store", false, "skip the history database")
	return cmd
}

// recordDecision appends the result to the history database.
func recordDecision(a *app, res oracle.Result) error {
	store, err := history.NewStore(a.dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	_, err = store.Record(res)
	return err
}

// #endregion ask
