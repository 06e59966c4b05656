// File: root.go
// Title: Root Command
// Description: Defines the lgsim root command, the persistent flags shared
//              by all subcommands and the runtime setup that loads the
//              configuration and installs the process-wide logger.
// Version: v0.1.0
// Created: 2026-08-25

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/YunfeiZhai703/logic-gate-simulator-2/core/config"
	lgslog "github.com/YunfeiZhai703/logic-gate-simulator-2/core/log"
)

var (
	cfgFile string
	verbose bool
	noColor bool
)

var rootCmd = &cobra.Command{
	Use:   "lgsim",
	Short: "Logic-gate circuit definition tools",
	Long: `lgsim works with logic-gate circuit definition files.

A definition file declares devices, wires their pins together and is
checked section by section:

  [devices]  device declarations (SWITCH, CLOCK, gates, DTYPE)
  [conns]    pin-to-pin connections

Commands:
  check    parse definition files and report every error found
  tokens   dump the token stream of a definition file
  version  show version information`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./configs/lgsim.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

// runtime holds everything a subcommand needs after setup
type runtime struct {
	cfg    *config.Config
	logger *lgslog.Logger
}

// initRuntime loads the configuration and installs the default logger.
// Log output goes to stderr so diagnostic rendering owns stdout.
func initRuntime() (*runtime, error) {
	path := cfgFile
	if path == "" {
		path = "configs/lgsim.toml"
	}

	cfg, err := config.LoadOrDefault(path)
	if err != nil {
		return nil, err
	}

	level, err := lgslog.ParseLevel(cfg.General.LogLevel)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = lgslog.LevelDebug
	}

	format, err := lgslog.ParseFormat(cfg.General.LogFormat)
	if err != nil {
		return nil, err
	}

	logger := lgslog.NewWithConfig(lgslog.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
		Name:   cfg.General.Name,
	})
	lgslog.SetDefault(logger)

	return &runtime{cfg: cfg, logger: logger}, nil
}

// colorEnabled folds the configuration and the --no-color flag
func (r *runtime) colorEnabled() bool {
	return r.cfg.Display.Color && !noColor
}
