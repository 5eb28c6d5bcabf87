package view

import (
	"context"
	"fmt"

	"github.com/bblackyyyy/FFT-proj/dsp/channel"
	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/bblackyyyy/FFT-proj/dsp/spectrum"
	"github.com/bblackyyyy/FFT-proj/dsp/viewport"
	"github.com/bblackyyyy/FFT-proj/dsp/window"
	"golang.org/x/sync/errgroup"
)

// Params selects what Compute renders.
type Params struct {
	SampleRate float64
	Start      int
	// Length is the requested sample count, clamped to what fits after
	// Start. It must be at least 1.
	Length int
	Window window.Type
	// ChannelCount is how many leading channels to render.
	ChannelCount int
	Backend      spectrum.Backend
}

// Point is one (x, y) pair of a plotted series.
type Point struct {
	X float64
	Y float64
}

// ChannelView is the rendered output for one channel.
type ChannelView struct {
	// Channel is 1-based.
	Channel int
	// Viewport is the clamped range that was analyzed.
	Viewport viewport.Viewport
	// PaddedLength is the transform size P.
	PaddedLength int
	// Time holds (seconds, raw sample) for the unwindowed segment.
	Time []Point
	// Frequency holds (Hz, |X_k|) for k in [0, P/2).
	Frequency []Point
	Spectrum  spectrum.Spectrum
}

// Resolve validates p against channels and returns the clamped viewport.
// The viewport is measured on channel 1 and must fit every selected channel.
func Resolve(channels []channel.Channel, p Params) (viewport.Viewport, error) {
	if err := core.ValidateSampleRate(p.SampleRate); err != nil {
		return viewport.Viewport{}, err
	}
	if err := core.ValidateChannelCount(p.ChannelCount); err != nil {
		return viewport.Viewport{}, err
	}
	if p.ChannelCount > len(channels) {
		return viewport.Viewport{}, fmt.Errorf("%w: %d requested, %d loaded",
			core.ErrUnsupportedChannelCount, p.ChannelCount, len(channels))
	}
	if err := window.Validate(p.Window); err != nil {
		return viewport.Viewport{}, err
	}

	vp, err := viewport.New(len(channels[0]), p.Start, p.Length)
	if err != nil {
		return viewport.Viewport{}, err
	}

	for i := 1; i < p.ChannelCount; i++ {
		if !vp.Fits(len(channels[i])) {
			return viewport.Viewport{}, fmt.Errorf("%w: %v exceeds channel %d (%d samples)",
				core.ErrOutOfRange, vp, i+1, len(channels[i]))
		}
	}

	return vp, nil
}

// Compute renders the first p.ChannelCount channels. Channels are processed
// concurrently; the result is ordered by channel and identical for identical
// inputs. channels are only read.
func Compute(ctx context.Context, channels []channel.Channel, p Params) ([]ChannelView, error) {
	vp, err := Resolve(channels, p)
	if err != nil {
		return nil, err
	}

	out := make([]ChannelView, p.ChannelCount)
	g, ctx := errgroup.WithContext(ctx)

	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			v, err := computeChannel(channels[i], vp, p)
			if err != nil {
				return fmt.Errorf("channel %d: %w", i+1, err)
			}
			v.Channel = i + 1
			out[i] = v

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func computeChannel(samples channel.Channel, vp viewport.Viewport, p Params) (ChannelView, error) {
	segment := vp.Slice(samples)

	spec, err := spectrum.Compute(window.Apply(p.Window, segment), p.SampleRate,
		spectrum.WithBackend(p.Backend))
	if err != nil {
		return ChannelView{}, err
	}

	v := ChannelView{
		Viewport:     vp,
		PaddedLength: spec.Size,
		Time:         make([]Point, len(segment)),
		Frequency:    make([]Point, spec.Len()),
		Spectrum:     spec,
	}
	for i, s := range segment {
		v.Time[i] = Point{X: float64(vp.Start+i) / p.SampleRate, Y: s}
	}
	for k := range v.Frequency {
		v.Frequency[k] = Point{X: spec.Frequencies[k], Y: spec.Magnitudes[k]}
	}

	return v, nil
}
