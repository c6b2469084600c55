package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielpatrickdp/chaos-oracle/internal/history"
)

// #region stats

func newStatsCmd(a *app) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show totals and recent decisions from the history database",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.NewStore(a.dbPath)
			if err != nil {
				return err
			}
			defer store.Close()

			tally, err := store.Tally()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "total %d  yes %d  no %d\n", tally.Total, tally.Yes, tally.No)

			if recent > 0 {
				entries, err := store.Recent(recent)
				if err != nil {
					return err
				}
				for _, e := range entries {
					fmt.Fprintf(out, "%s  %-3s  raw=%.6f  %s\n",
						e.CreatedAt.Format("2006-01-02 15:04:05"), e.Answer, e.RawValue, e.ID)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&recent, "recent", "n", 10, "recent entries to list (0 to skip)")
	return cmd
}

// #endregion stats
