// Command padsnap-demo is an SDL2 testbed for the padsnap navigation engine.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/padsnap/padsnap/pkg/padsnap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var cfg runConfig
	var logLevel string

	rootCmd := &cobra.Command{
		Use:   "padsnap-demo",
		Short: "SDL2 testbed for the padsnap gamepad navigation engine",
		Long: "padsnap-demo opens a settings menu driven entirely by the padsnap engine:\n" +
			"gamepad or keyboard input moves a focus that warps the pointer, Confirm\n" +
			"mirrors clicks through the tap guard, and the tuning file reloads live.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cfg)
		},
	}
	rootCmd.Version = version + " (commit " + commit + ", built " + date + ")"

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "minimum log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&cfg.lang, "lang", "en", "UI language (en, es)")
	rootCmd.PersistentFlags().StringVar(&cfg.fontPath, "font", "", "path to a TTF font (default: first system font found)")
	rootCmd.PersistentFlags().StringVar(&cfg.tuningPath, "tuning", "", "path to the tuning TOML (default: XDG config location)")
	rootCmd.PersistentFlags().BoolVar(&cfg.useEvdev, "evdev", false, "also read gamepads directly from /dev/input")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		padsnap.SetRawLogLevel(logLevel)
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Open the demo window (the default command)",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cfg)
		},
	}

	rootCmd.AddCommand(runCmd, newProbeCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDemo(cfg runConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := newApp(cfg)
	if err != nil {
		return err
	}
	defer padsnap.CloseLogger()
	defer a.close()

	return a.run(ctx)
}
