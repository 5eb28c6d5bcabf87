package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/bblackyyyy/FFT-proj/measure/view"
	freqstats "github.com/bblackyyyy/FFT-proj/stats/frequency"
	timestats "github.com/bblackyyyy/FFT-proj/stats/time"
)

type outputFormat int

const (
	formatTable outputFormat = iota
	formatCSV
	formatJSON
)

func parseFormat(s string) (outputFormat, error) {
	switch strings.ToLower(s) {
	case "table", "":
		return formatTable, nil
	case "csv":
		return formatCSV, nil
	case "json":
		return formatJSON, nil
	default:
		return formatTable, fmt.Errorf("invalid --format %q (table, csv, json)", s)
	}
}

func writeViews(w io.Writer, format outputFormat, views []view.ChannelView, db bool) error {
	switch format {
	case formatCSV:
		return writeCSV(w, views, db)
	case formatJSON:
		return writeJSON(w, views, db)
	default:
		return writeTable(w, views, db)
	}
}

func magnitude(m float64, db bool) float64 {
	if db {
		return core.LinearToDBFloor(m, dbFloor)
	}
	return m
}

func magnitudeHeader(db bool) string {
	if db {
		return "magnitude_db"
	}
	return "magnitude"
}

func writeTable(w io.Writer, views []view.ChannelView, db bool) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, v := range views {
		fmt.Fprintf(tw, "# channel %d\trange %v\tP=%d\tresolution %.6g Hz\t\n",
			v.Channel, v.Viewport, v.PaddedLength, v.Spectrum.Resolution())
		fmt.Fprintf(tw, "bin\tfrequency_hz\t%s\t\n", magnitudeHeader(db))
		for k, p := range v.Frequency {
			fmt.Fprintf(tw, "%d\t%.6g\t%.6g\t\n", k, p.X, magnitude(p.Y, db))
		}
	}
	return tw.Flush()
}

func writeCSV(w io.Writer, views []view.ChannelView, db bool) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"channel", "bin", "frequency_hz", magnitudeHeader(db)}); err != nil {
		return err
	}
	for _, v := range views {
		ch := strconv.Itoa(v.Channel)
		for k, p := range v.Frequency {
			rec := []string{
				ch,
				strconv.Itoa(k),
				strconv.FormatFloat(p.X, 'g', -1, 64),
				strconv.FormatFloat(magnitude(p.Y, db), 'g', -1, 64),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonPoint [2]float64

type jsonView struct {
	Channel      int         `json:"channel"`
	Start        int         `json:"start"`
	Length       int         `json:"length"`
	PaddedLength int         `json:"padded_length"`
	SampleRate   float64     `json:"sample_rate"`
	Decibels     bool        `json:"decibels"`
	Time         []jsonPoint `json:"time"`
	Frequency    []jsonPoint `json:"frequency"`
}

func writeJSON(w io.Writer, views []view.ChannelView, db bool) error {
	out := make([]jsonView, len(views))
	for i, v := range views {
		jv := jsonView{
			Channel:      v.Channel,
			Start:        v.Viewport.Start,
			Length:       v.Viewport.Length,
			PaddedLength: v.PaddedLength,
			SampleRate:   v.Spectrum.SampleRate,
			Decibels:     db,
			Time:         make([]jsonPoint, len(v.Time)),
			Frequency:    make([]jsonPoint, len(v.Frequency)),
		}
		for j, p := range v.Time {
			jv.Time[j] = jsonPoint{p.X, p.Y}
		}
		for k, p := range v.Frequency {
			jv.Frequency[k] = jsonPoint{p.X, magnitude(p.Y, db)}
		}
		out[i] = jv
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func writeSummary(w io.Writer, views []view.ChannelView) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Channel\tSamples\tDC\tRMS\tPeak\tCrest\tZero X\tPeak [Hz]\tPeak mag\tCentroid [Hz]\tRolloff [Hz]\tFlatness")

	for _, v := range views {
		samples := make([]float64, len(v.Time))
		for i, p := range v.Time {
			samples[i] = p.Y
		}
		ts := timestats.Calculate(samples)
		fs := freqstats.Calculate(v.Spectrum)

		fmt.Fprintf(tw, "%d\t%d\t%.6g\t%.6g\t%.6g\t%.4f\t%d\t%.6g\t%.6g\t%.6g\t%.6g\t%.4f\n",
			v.Channel, ts.Length, ts.DC, ts.RMS, ts.Peak, ts.CrestFactor, ts.ZeroCrossings,
			fs.PeakFreq, fs.PeakMag, fs.Centroid, fs.Rolloff, fs.Flatness)
	}

	return tw.Flush()
}
