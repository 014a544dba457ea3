package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/devchristian1337/wsreset/internal/config"
	"github.com/devchristian1337/wsreset/internal/reset"
	"github.com/devchristian1337/wsreset/internal/term"
	"github.com/devchristian1337/wsreset/internal/ui"
)

var version = "dev"

var noColor bool

var rootCmd = &cobra.Command{
	Use:   "wsreset",
	Short: "Reset Windsurf device IDs",
	Long: `wsreset resets the telemetry device identifiers stored in Windsurf's
storage.json, optionally keeping a timestamped backup of the prior file.

Run without arguments for the interactive menu, or use the reset and view
subcommands directly.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runMenu(newApp())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(viewCmd)
}

// app wires the collaborators once per process: config, logger, keypress
// reader, terminal UI, workflow.
type app struct {
	ui       *ui.Terminal
	workflow *reset.Workflow
}

func newApp() *app {
	cfg := config.Load()

	logLevel := slog.LevelInfo
	if strings.EqualFold(cfg.Log.Level, "debug") {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	plain := noColor || cfg.NoColor || !isatty.IsTerminal(os.Stdout.Fd())
	terminal := ui.NewTerminal(os.Stdout, term.NewReader(), plain)

	return &app{
		ui: terminal,
		workflow: &reset.Workflow{
			UI:          terminal,
			StoragePath: cfg.Storage.Path,
		},
	}
}

// reportErr renders one failure panel regardless of source. Cancellation
// gets a warning panel instead of an error panel.
func (a *app) reportErr(err error) {
	var resetErr *reset.Error
	if errors.As(err, &resetErr) && resetErr.Kind == reset.Cancelled {
		a.ui.Panel(ui.Warning, "Warning", "Operation cancelled by user")
		return
	}
	a.ui.Panel(ui.Error, "Error", err.Error())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
