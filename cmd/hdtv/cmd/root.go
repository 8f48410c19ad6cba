package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/hdtv/hdtv/internal/config"
	"github.com/hdtv/hdtv/internal/display"
)

var (
	// Global flags
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "hdtv",
	Short: "hdtv - nuclear spectrum viewer",
	Long: `hdtv displays gamma spectra with calibrated energy axes, analytic
functions and markers.

Examples:
  hdtv view co60.spc                           # Open a spectrum in a window
  hdtv view a.spc b.spc --log --mode solid     # Two spectra, log scale
  hdtv render co60.spc -o co60.png --xmin 1100 --xmax 1400
  hdtv info co60.spc                           # Bins, counts and maximum`,
	Version: "0.3.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			gg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		}
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.config/hdtv/config.json)")
}

// loadConfig reads the config file and applies the view flags shared by
// view and render.
func loadConfig(cmd *cobra.Command, logScale bool, mode string) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.LoadFrom(configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("log") {
		cfg.LogScale = logScale
	}
	if cmd.Flags().Changed("mode") {
		if _, err := display.ParseViewMode(mode); err != nil {
			return nil, err
		}
		cfg.ViewMode = mode
	}
	return cfg, nil
}
