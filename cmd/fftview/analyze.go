package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bblackyyyy/FFT-proj/dsp/channel"
	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/bblackyyyy/FFT-proj/dsp/spectrum"
	"github.com/bblackyyyy/FFT-proj/dsp/table"
	"github.com/bblackyyyy/FFT-proj/dsp/viewport"
	"github.com/bblackyyyy/FFT-proj/dsp/window"
	"github.com/bblackyyyy/FFT-proj/measure/view"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// dbFloor keeps silent bins finite in --db output.
const dbFloor = -240.0

type analyzeOptions struct {
	rate        float64
	start       int
	length      int
	window      string
	channels    int
	indexColumn string
	backend     string
	sheet       string
	format      string
	summary     bool
	db          bool
	png         string
}

func newAnalyzeCmd(g *globalOptions) *cobra.Command {
	o := &analyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze FILE",
		Short: "Compute the windowed spectrum of a range of samples",
		Long: `analyze loads FILE (.xlsx workbooks are read with --sheet, anything else
as delimited text), selects --start/--length samples of the first
--channels channels, applies --window and prints the magnitude spectrum
of each channel. The transform is zero-padded to the next power of two
and only bins below Nyquist are emitted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, g.log, o, args[0])
		},
	}

	f := cmd.Flags()
	f.Float64VarP(&o.rate, "rate", "r", core.DefaultSampleRate, "sampling rate in Hz")
	f.IntVarP(&o.start, "start", "s", 0, "first sample of the range")
	f.IntVarP(&o.length, "length", "n", 0, "number of samples, clamped to the data (0 = to the end)")
	f.StringVarP(&o.window, "window", "w", "rectangular", "window function (rectangular, hann, hamming)")
	f.IntVarP(&o.channels, "channels", "c", 0, "number of channels to analyze (0 = all loaded)")
	f.StringVar(&o.indexColumn, "index-column", "auto", "treat column 0 as a sample index (auto, yes, no)")
	f.StringVar(&o.backend, "backend", "recursive", "FFT implementation (recursive, algofft, gonum, godsp)")
	f.StringVar(&o.sheet, "sheet", "", "worksheet of an .xlsx input (default: first sheet)")
	f.StringVarP(&o.format, "format", "f", "table", "output format (table, csv, json)")
	f.BoolVar(&o.summary, "summary", false, "print time and frequency statistics per channel")
	f.BoolVar(&o.db, "db", false, "print magnitudes in dB")
	f.StringVar(&o.png, "png", "", "write PREFIX-time.png and PREFIX-spectrum.png charts")

	return cmd
}

func runAnalyze(cmd *cobra.Command, log logrus.FieldLogger, o *analyzeOptions, path string) error {
	if o.rate < core.MinSampleRate || o.rate > core.MaxSampleRate {
		return fmt.Errorf("%w: --rate %v outside [%v, %v]", core.ErrInvalidSampleRate, o.rate, core.MinSampleRate, core.MaxSampleRate)
	}

	role, err := parseRole(o.indexColumn)
	if err != nil {
		return err
	}
	winType, err := window.ParseType(o.window)
	if err != nil {
		return err
	}
	backend, err := spectrum.ParseBackend(o.backend)
	if err != nil {
		return err
	}
	format, err := parseFormat(o.format)
	if err != nil {
		return err
	}

	m, err := loadMatrix(path, o.sheet)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	fields := logrus.Fields{"file": path, "rows": m.Rows(), "columns": m.Cols()}
	if m.Dropped > 0 {
		log.WithFields(fields).WithField("dropped", m.Dropped).Warn("skipped rows that are not numeric or have a different width")
	} else {
		log.WithFields(fields).Debug("table parsed")
	}

	chans, err := channel.Extract(m, channel.WithRole(role))
	if err != nil {
		return err
	}

	session := view.NewSession(view.WithLogger(log), view.WithBackend(backend))
	if err := session.Load(chans, o.rate); err != nil {
		return err
	}

	length := o.length
	if length == 0 {
		length = viewport.MaxLength(len(chans[0]), o.start)
	}
	if err := session.SetRange(o.start, length); err != nil {
		return err
	}
	if err := session.SetWindow(winType); err != nil {
		return err
	}
	count := o.channels
	if count == 0 {
		count = len(chans)
	}
	if err := session.SetChannelCount(count); err != nil {
		return err
	}

	views, err := session.Refresh(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if err := writeViews(out, format, views, o.db); err != nil {
		return err
	}
	if o.summary {
		if err := writeSummary(out, views); err != nil {
			return err
		}
	}
	if o.png != "" {
		if err := writeCharts(o.png, views); err != nil {
			return err
		}
		log.WithField("prefix", o.png).Info("charts written")
	}

	return nil
}

func parseRole(s string) (channel.Role, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return channel.RoleAuto, nil
	case "yes", "true", "index":
		return channel.RoleIndex, nil
	case "no", "false", "data":
		return channel.RoleData, nil
	default:
		return channel.RoleAuto, fmt.Errorf("invalid --index-column %q (auto, yes, no)", s)
	}
}

func loadMatrix(path, sheet string) (*table.Matrix, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return table.ReadXLSX(path, sheet)
	}
	return table.ReadFile(path)
}
