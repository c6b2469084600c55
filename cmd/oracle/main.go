package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/danielpatrickdp/chaos-oracle/internal/config"
	"github.com/danielpatrickdp/chaos-oracle/internal/logging"
	"github.com/danielpatrickdp/chaos-oracle/internal/oracle"
)

// #region app

// app carries the settings shared by every subcommand.
type app struct {
	log     *zap.Logger
	cfg     oracle.Config
	verbose bool
	noColor bool
	dbPath  string

	chaosIterations int
	primeTerms      int
	zetaTerms       int
}

// #endregion app

// #region root

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "oracle",
		Short: "Binary yes/no decisions from entropy and chaotic mixing",
		Long: "oracle draws system entropy and mixes it through chaotic maps,\n" +
			"prime sums, transcendental functions and constant modulation\n" +
			"before collapsing the result to a single Yes or No.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	flags := root.PersistentFlags()
	flags.IntVar(&a.chaosIterations, "chaos-iterations", 0, "chaos cascade rounds (default from ORACLE_CHAOS_ITERATIONS)")
	flags.IntVar(&a.primeTerms, "prime-terms", 0, "primes in the harmonic sum (default from ORACLE_PRIME_TERMS)")
	flags.IntVar(&a.zetaTerms, "zeta-terms", 0, "terms in the zeta partial sum (default from ORACLE_ZETA_TERMS)")
	flags.StringVar(&a.dbPath, "db", "", "history database path (default from ORACLE_DB)")
	flags.BoolVar(&a.noColor, "no-color", false, "plain text output")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "debug logging and pipeline details")

	root.AddCommand(
		newAskCmd(a),
		newBatchCmd(a),
		newInteractiveCmd(a),
		newStatsCmd(a),
		newReplayCmd(a),
	)
	return root
}

// setup resolves env and flags into the shared app state. Flags win
// over environment values. Bounds are not checked here: Decide
// validates before any entropy is drawn, and replay runs on the
// fixture's embedded config rather than a.cfg.
func (a *app) setup(cmd *cobra.Command) error {
	env, err := config.Load()
	if err != nil {
		return err
	}

	a.cfg = env.OracleConfig()
	if cmd.Flags().Changed("chaos-iterations") {
		a.cfg.ChaosIterations = a.chaosIterations
	}
	if cmd.Flags().Changed("prime-terms") {
		a.cfg.PrimeTerms = a.primeTerms
	}
	if cmd.Flags().Changed("zeta-terms") {
		a.cfg.ZetaTerms = a.zetaTerms
	}

	if a.dbPath == "" {
		a.dbPath = env.DBPath
	}
	if env.NoColor {
		a.noColor = true
	}

	log, err := logging.New(a.verbose)
	if err != nil {
		return err
	}
	a.log = log
	return nil
}

// #endregion root

// #region main

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// #endregion main
