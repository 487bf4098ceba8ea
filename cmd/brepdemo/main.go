// Command brepdemo builds a few sample parts with brepgo and prints their
// topology reports.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/hupe1980/brepgo"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel string
	json     bool
}

func newRootCmd() *cobra.Command {
	var gf globalFlags

	rootCmd := &cobra.Command{
		Use:           "brepdemo",
		Short:         "Build sample B-rep parts and check their topology",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&gf.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&gf.json, "json", false, "Emit JSON logs")

	rootCmd.AddCommand(newPartsCmd(&gf))
	rootCmd.AddCommand(newTransformsCmd())

	return rootCmd
}

// newLogger builds the demo logger writing to w.
func newLogger(w io.Writer, gf *globalFlags) (*brepgo.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(gf.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", gf.logLevel, err)
	}

	opts := &slog.HandlerOptions{Level: level}
	if gf.json {
		return brepgo.NewLogger(slog.NewJSONHandler(w, opts)), nil
	}
	return brepgo.NewLogger(slog.NewTextHandler(w, opts)), nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
