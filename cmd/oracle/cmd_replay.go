package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/chaos-oracle/internal/replay"
)

// #region replay

func newReplayCmd(a *app) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "replay <fixture.json>",
		Short: "Verify (or record) a golden decision fixture",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			fixture, err := replay.Load(path)
			if err != nil {
				return err
			}

			h := replay.NewHarness()
			if record {
				recorded, err := h.Record(fixture)
				if err != nil {
					return err
				}
				if err := replay.Save(path, recorded); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "recorded: raw_value=%v decision=%d\n",
					recorded.Expected.RawValue, recorded.Expected.Decision)
				return nil
			}

			if err := h.Verify(fixture); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "fixture verified")
			return nil
		},
	}
	cmd.Flags().BoolVar(&record, "record", false, "fill in the expected outcome from a reference run")
	return cmd
}

// #endregion replay
