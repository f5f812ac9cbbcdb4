// Package main provides the textspan command line tool.
// It wires the pad, repeat, range and columns subcommands, loads
// configuration and initializes logging.
package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arozenfe/textspan/internal/config"
	"github.com/arozenfe/textspan/internal/logger"
)

// app holds state shared by all subcommands. cfg is loaded before any
// subcommand runs.
type app struct {
	configPath string
	cfg        *config.Config
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "textspan",
		Short:        "Pads, crops and aligns text to fixed widths",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger.Setup(cfg.Environment)
			ctx := logger.WithFields(cmd.Context(), zap.String("command", cmd.Name()))
			cmd.SetContext(ctx)
			logger.Debug(ctx, "config loaded", zap.String("path", a.configPath))

			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "Config file path (yaml)")

	cmd.AddCommand(
		padCommand(a),
		repeatCommand(),
		rangeCommand(),
		columnsCommand(a),
	)

	return cmd
}

func main() {
	ctx := context.Background()

	defer func() {
		if p := recover(); p != nil {
			logger.Error(ctx, "captured panic, exiting...", zap.Any("panic", p))
			_ = logger.Get(ctx).Sync()

			panic(p)
		}
	}()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		logger.Debug(ctx, "command failed", zap.Error(err))
	}
	_ = logger.Get(ctx).Sync()
	if err != nil {
		os.Exit(1) //nolint: gocritic
	}
}

// intFlag returns the named flag when set on the command line, fallback
// otherwise.
func intFlag(cmd *cobra.Command, name string, fallback int) int {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return fallback
	}
	return v
}

// stringFlag is intFlag for string flags.
func stringFlag(cmd *cobra.Command, name, fallback string) string {
	if !cmd.Flags().Changed(name) {
		return fallback
	}
	v, err := cmd.Flags().GetString(name)
	if err != nil {
		return fallback
	}
	return v
}
