package main

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/chaos-oracle/internal/console"
	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
	"github.com/danielpatrickdp/chaos-oracle/internal/stats"
)

// #region interactive

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Decide repeatedly until you are satisfied",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			renderer := console.NewRenderer(!a.noColor)
			o := oracle.New()

			var results []oracle.Result
			for {
				res, err := o.Decide(a.cfg)
				if err != nil {
					return err
				}
				results = append(results, res)
				fmt.Fprintln(out, renderer.Render(res, a.verbose))

				satisfied := false
				confirm := huh.NewConfirm().
					Title("Satisfied?").
					Affirmative("Yes, stop here").
					Negative("No, run again").
					Value(&satisfied)
				if err := confirm.Run(); err != nil {
					return fmt.Errorf("prompt: %w", err)
				}
				if satisfied {
					break
				}
			}

			a.log.Debug("interactive session done", zap.Int("runs", len(results)))
			fmt.Fprintln(out, renderer.RenderSummary(stats.Summarize(results)))
			fmt.Fprintln(out, "Have a nice day! Goodbye.")
			return nil
		},
	}
}

// #endregion interactive
