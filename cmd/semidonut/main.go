// seehuhn.de/go/semidonut - semi-circular ring charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command semidonut renders the story status chart of a user metrics
// dashboard as SVG, PDF or PNG.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"seehuhn.de/go/semidonut/internal/config"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// app holds the state shared by all sub-commands.
type app struct {
	cfg *config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "semidonut",
		Short: "Render semi-circular ring charts",
		Long: `semidonut draws the story completion status of a user as a
semi-circular ring chart, with one segment per status, and prints the
derived productivity metrics of the user metrics dashboard.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}
	root.PersistentFlags().String("config", "", "config file path (default: ./semidonut.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		a.renderCmd(),
		a.legendCmd(),
		a.metricsCmd(),
		a.exportCmd(),
		versionCmd(),
	)
	return root
}

// setup loads the configuration and creates the logger.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	configFile, _ := cmd.Flags().GetString("config")
	if configFile != "" {
		a.cfg, err = config.LoadFromFile(configFile)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	levelName := a.cfg.Log.Level
	if override, _ := cmd.Flags().GetString("log-level"); override != "" {
		levelName = override
	}
	level, err := zapcore.ParseLevel(levelName)
	if err != nil {
		return err
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.Encoding = "console"
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	a.log, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.log.Debug("configuration loaded",
		zap.String("file", configFile),
		zap.Float64("radius", a.cfg.Chart.Radius),
		zap.Float64("inner_ratio", a.cfg.Chart.InnerRatio))
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "semidonut %s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit:  %s\n", commit)
		},
	}
}
