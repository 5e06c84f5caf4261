package main

import (
	"fmt"
	"strings"

	"github.com/g-m-twostay/dast/internal/bench"
	"github.com/g-m-twostay/dast/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix of the environment variables mirroring the flags, e.g.
// DAST_LOG_LEVEL for --log-level.
const envPrefix = "DAST"

type rootConfig struct {
	Format    string
	LogLevel  string
	LogFormat string
	Seed      int64

	log zerolog.Logger
}

func newRootCmd() *cobra.Command {
	cfg := &rootConfig{}
	cmd := &cobra.Command{
		Use:          "dastbench",
		Short:        "Benchmark the depth-aware splay tree",
		Long:         `dastbench runs insert/query workloads against the depth-aware splay tree, a classical splay tree and balanced trees, and prints per-query latency, search depth and splay counts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := initializeConfig(cmd); err != nil {
				return err
			}
			log, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel, cfg.LogFormat)
			if err != nil {
				return err
			}
			cfg.log = log
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&cfg.Format, "format", "table", "output format: table or csv")
	cmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", "info", "log level: trace, debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&cfg.LogFormat, "log-format", logging.FormatAuto, "log format: auto, console or json")
	cmd.PersistentFlags().Int64Var(&cfg.Seed, "seed", 0, "seed of the workload generator")

	cmd.AddCommand(
		newCompareCmd(cfg),
		newSweepCmd(cfg),
		newRangesCmd(cfg),
		newSelectCmd(cfg),
	)
	return cmd
}

// runner and sink for a subcommand.
func (c *rootConfig) setup(cmd *cobra.Command) (*bench.Runner, bench.Sink, error) {
	sink, err := bench.NewSink(c.Format, cmd.OutOrStdout())
	if err != nil {
		return nil, nil, err
	}
	return &bench.Runner{Log: c.log.With().Str("cmd", cmd.Name()).Logger()}, sink, nil
}

// initializeConfig binds the flags of cmd to DAST_* environment variables.
// Flags given on the command line win.
func initializeConfig(cmd *cobra.Command) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	return bindFlags(cmd, v)
}

// Bind each cobra flag to its associated viper environment variable.
func bindFlags(cmd *cobra.Command, v *viper.Viper) error {
	var bindFlagErr error
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if bindFlagErr != nil {
			return
		}
		// Environment variables can't have dashes in them, so bind them to their equivalent
		// keys with underscores, e.g. --log-level to DAST_LOG_LEVEL
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			if err := v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix)); err != nil {
				bindFlagErr = fmt.Errorf("could not bind env to flag %s: %w", f.Name, err)
				return
			}
		}
		if !f.Changed && v.IsSet(f.Name) {
			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", v.Get(f.Name))); err != nil {
				bindFlagErr = fmt.Errorf("could not set flag %s from environment: %w", f.Name, err)
			}
		}
	})
	return bindFlagErr
}
