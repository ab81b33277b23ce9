// Command contour generates decorative topographic contour lines as SVG, PNG
// or JSON, and serves them over HTTP.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/contourkit/contour/internal/config"
)

// app carries state shared by all subcommands.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	width      float64
	height     float64
	levels     int

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "contour",
		Short: "Generate decorative topographic contour lines",
		Long: `contour traces iso-lines of a synthetic terrain field with marching squares,
smooths them into cubic Bézier paths and writes them as SVG documents, PNG
images or JSON. Every fourth level is a major contour drawn with a heavier
stroke.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", "", "path to a YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	flags.Float64Var(&a.width, "width", 0, "canvas width (overrides config)")
	flags.Float64Var(&a.height, "height", 0, "canvas height (overrides config)")
	flags.IntVar(&a.levels, "levels", 0, "number of contour levels (overrides config)")

	rootCmd.AddCommand(
		a.svgCmd(),
		a.pngCmd(),
		a.pathsCmd(),
		a.levelsCmd(),
		a.serveCmd(),
		a.configCmd(),
	)
	return rootCmd
}

// init builds the logger and loads the configuration, applying flag
// overrides on top of the file and environment.
func (a *app) init(cmd *cobra.Command) error {
	zcfg := zap.NewProductionConfig()
	if a.verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	logger, err := zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("width") {
		cfg.Canvas.Width = a.width
	}
	if cmd.Flags().Changed("height") {
		cfg.Canvas.Height = a.height
	}
	if cmd.Flags().Changed("levels") {
		cfg.Canvas.Levels = a.levels
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	a.cfg = cfg

	a.logger.Debug("Configuration loaded",
		zap.String("path", a.configPath),
		zap.Float64("width", cfg.Canvas.Width),
		zap.Float64("height", cfg.Canvas.Height),
		zap.Int("levels", cfg.Canvas.Levels))
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
