// Command polyhedron shows a colored bipyramid that can be moved, turned and
// scaled from the keyboard.
//
//	W/S A/D   move up/down, left/right
//	I/K       rotate about x
//	J/L       rotate about y
//	U/O       rotate about z
//	E/Q       grow/shrink
//	R         reset
//	Escape    quit
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/paperboard/polyhedron/internal/config"
	"github.com/paperboard/polyhedron/internal/logging"
	"github.com/paperboard/polyhedron/internal/viewer"
)

var (
	verbose    bool
	configPath string
	watch      bool
	title      string
	width      int
	height     int
	writeTo    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "polyhedron",
	Short: "Interactive OpenGL bipyramid viewer",
	Long: `polyhedron opens a window and draws a colored bipyramid with a black
wireframe overlay. WASD moves it, IJKL/UO rotate it, E/Q scale it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = logging.New(verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runViewer,
}

var defaultsCmd = &cobra.Command{
	Use:   "defaults",
	Short: "Write the default configuration as YAML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if writeTo == "" {
			return fmt.Errorf("--out is required")
		}
		if err := config.Default().Save(writeTo); err != nil {
			return err
		}
		logger.Info("wrote default config", zap.String("path", writeTo))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.Flags().BoolVar(&watch, "watch", false, "Reload bindings and steps when the config file changes")
	rootCmd.Flags().StringVar(&title, "title", "", "Window title (overrides config)")
	rootCmd.Flags().IntVar(&width, "width", 0, "Window width (overrides config)")
	rootCmd.Flags().IntVar(&height, "height", 0, "Window height (overrides config)")

	defaultsCmd.Flags().StringVarP(&writeTo, "out", "o", "", "Destination file")
	rootCmd.AddCommand(defaultsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runViewer(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var opts []viewer.Option
	if watch {
		if configPath == "" {
			return fmt.Errorf("--watch needs --config")
		}
		w, err := config.Watch(ctx, configPath, logger)
		if err != nil {
			return err
		}
		defer w.Close()
		opts = append(opts, viewer.WithReloads(w.Updates()))
	}

	v, err := viewer.New(cfg, logger, opts...)
	if err != nil {
		return err
	}
	defer v.Close()

	logger.Info("viewer started",
		zap.String("title", cfg.Window.Title),
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height))

	err = v.Run(ctx)

	st := v.State()
	logger.Debug("final transform",
		zap.Any("rotation", st.Rotation()),
		zap.Float32("scale", st.Scale()))

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("title") {
		cfg.Window.Title = title
	}
	if cmd.Flags().Changed("width") {
		cfg.Window.Width = width
	}
	if cmd.Flags().Changed("height") {
		cfg.Window.Height = height
	}
}
