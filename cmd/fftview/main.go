// Command fftview turns delimited numeric time series into windowed FFT
// magnitude spectra.
//
// Usage:
//
//	fftview analyze [flags] FILE
//	fftview generate [flags]
//	fftview windows [flags] [window-name ...]
//
// Examples:
//
//	fftview analyze --rate 48000 --window hann recording.csv
//	fftview analyze --start 1000 --length 4096 --format json data.txt
//	fftview analyze --sheet Sheet2 --png plots/run1 capture.xlsx
//	fftview generate --channel sine:50 --channel "sine:120:0.5+noise:0.05" -o test.csv
//	fftview windows --size 4096 hann hamming
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

type globalOptions struct {
	logLevel  string
	logFormat string
	log       *logrus.Logger
}

func newRootCmd() *cobra.Command {
	g := &globalOptions{}

	root := &cobra.Command{
		Use:   "fftview",
		Short: "Inspect the spectrum of delimited time-series data",
		Long: `fftview reads newline-delimited rows of numbers separated by comma,
semicolon or tab and renders, per channel, the selected sample range
(oscillogram) and its windowed FFT magnitude spectrum.

Rows that contain any non-numeric field are skipped, which is how header
lines are tolerated. A varying first column is treated as a sample index
unless --index-column says otherwise.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := newLogger(g.logLevel, g.logFormat)
			if err != nil {
				return err
			}
			log.SetOutput(cmd.ErrOrStderr())
			g.log = log
			return nil
		},
	}

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	root.PersistentFlags().StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")

	root.AddCommand(newAnalyzeCmd(g), newGenerateCmd(g), newWindowsCmd())

	return root
}

func newLogger(level, format string) (*logrus.Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	log := logrus.New()
	log.SetLevel(lvl)

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("invalid --log-format %q (text, json)", format)
	}

	return log, nil
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
