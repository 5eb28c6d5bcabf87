package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bblackyyyy/FFT-proj/measure/view"
	"github.com/wcharczuk/go-chart/v2"
)

const (
	chartWidth  = 1200
	chartHeight = 480
)

var errTooFewPoints = errors.New("chart needs at least two points per series")

func writeCharts(prefix string, views []view.ChannelView) error {
	if dir := filepath.Dir(prefix); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	timeSeries := func(v view.ChannelView) []view.Point { return v.Time }
	freqSeries := func(v view.ChannelView) []view.Point { return v.Frequency }

	if err := writeChartFile(prefix+"-time.png", "Oscillogram", "time [s]", "amplitude", views, timeSeries); err != nil {
		return err
	}
	return writeChartFile(prefix+"-spectrum.png", "Spectrum", "frequency [Hz]", "|X|", views, freqSeries)
}

func writeChartFile(path, title, xName, yName string, views []view.ChannelView, pick func(view.ChannelView) []view.Point) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := renderChart(f, title, xName, yName, views, pick); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}

// renderChart draws one line per channel.
func renderChart(w io.Writer, title, xName, yName string, views []view.ChannelView, pick func(view.ChannelView) []view.Point) error {
	series := make([]chart.Series, 0, len(views))
	minY, maxY := 0.0, 0.0

	for i, v := range views {
		pts := pick(v)
		if len(pts) < 2 {
			return errTooFewPoints
		}

		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for j, p := range pts {
			xs[j], ys[j] = p.X, p.Y
			if (i == 0 && j == 0) || p.Y < minY {
				minY = p.Y
			}
			if (i == 0 && j == 0) || p.Y > maxY {
				maxY = p.Y
			}
		}

		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("channel %d", v.Channel),
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 1.5,
			},
		})
	}

	// A flat series has no y range to scale against.
	var yRange *chart.ContinuousRange
	if minY == maxY {
		yRange = &chart.ContinuousRange{Min: minY - 1, Max: maxY + 1}
	}

	ch := chart.Chart{
		Title:      title,
		Width:      chartWidth,
		Height:     chartHeight,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 16, Bottom: 16}},
		XAxis:      chart.XAxis{Name: xName},
		YAxis:      chart.YAxis{Name: yName},
		Series:     series,
	}
	if yRange != nil {
		ch.YAxis.Range = yRange
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}

	return ch.Render(chart.PNG, w)
}
