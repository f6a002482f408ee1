package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algotrace/internal/config"
	"github.com/katalvlaran/algotrace/internal/logging"
)

// app is the state shared by every subcommand once flags are parsed.
type app struct {
	cfg config.Config
	log *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{cfg: config.Default(), log: logging.NewNop()}

	root := &cobra.Command{
		Use:   "algotrace",
		Short: "Step-by-step traces of Karatsuba multiplication and closest-pair search",
		Long: `algotrace runs two educational algorithm engines and records every
intermediate step: the Karatsuba call tree and the closest-pair sweep.
Traces can be printed, exported (JSON, Mermaid), replayed in the terminal
or served over HTTP to a browser front end.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(path)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-level") {
				cfg.Log.Level, _ = cmd.Flags().GetString("log-level")
			}
			log, err := logging.FromConfig(cfg.Log.Level, cfg.Log.Format)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			a.log.Debug("config loaded", "path", path, "cache", cfg.Cache.Backend)

			return nil
		},
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	root.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")

	root.AddCommand(
		newKaratsubaCmd(a),
		newClosestPairCmd(a),
		newPlayCmd(a),
		newGenerateCmd(a),
		newServeCmd(a),
	)

	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
