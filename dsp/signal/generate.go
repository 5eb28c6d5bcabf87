// Package signal synthesizes deterministic multi-channel test recordings.
package signal

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
)

// Kind identifies a signal component.
type Kind int

const (
	KindSine Kind = iota
	KindCosine
	KindNoise
	KindDC
)

var kindNames = map[Kind]string{
	KindSine:   "sine",
	KindCosine: "cos",
	KindNoise:  "noise",
	KindDC:     "dc",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Component is one additive term of a channel.
type Component struct {
	Kind      Kind
	FreqHz    float64 // ignored for noise and dc
	Amplitude float64
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets the random seed for noise. Channel i uses seed+i.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a generator with processor and signal options.
func NewGenerator(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Sine generates amplitude*sin(2*pi*freqHz*n/fs).
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	out := make([]float64, samples)
	addTone(out, math.Sin, freqHz, amplitude, g.cfg.SampleRate)
	return out, nil
}

// WhiteNoise generates uniform noise in [-amplitude, amplitude) from the
// generator seed.
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	addNoise(out, amplitude, rand.New(rand.NewSource(g.seed)))
	return out, nil
}

// Channels renders one channel per entry of specs, each the sum of its
// components. The number of channels must be one the analyzer accepts.
func (g *Generator) Channels(specs [][]Component, samples int) ([][]float64, error) {
	if err := core.ValidateChannelCount(len(specs)); err != nil {
		return nil, err
	}
	if samples <= 0 {
		return nil, fmt.Errorf("samples must be > 0: %d", samples)
	}

	out := make([][]float64, len(specs))
	for i, comps := range specs {
		if len(comps) == 0 {
			return nil, fmt.Errorf("channel %d has no components", i+1)
		}

		ch := make([]float64, samples)
		rng := rand.New(rand.NewSource(g.seed + int64(i)))
		for _, c := range comps {
			switch c.Kind {
			case KindSine:
				addTone(ch, math.Sin, c.FreqHz, c.Amplitude, g.cfg.SampleRate)
			case KindCosine:
				addTone(ch, math.Cos, c.FreqHz, c.Amplitude, g.cfg.SampleRate)
			case KindNoise:
				addNoise(ch, c.Amplitude, rng)
			case KindDC:
				for j := range ch {
					ch[j] += c.Amplitude
				}
			default:
				return nil, fmt.Errorf("channel %d: unknown component %v", i+1, c.Kind)
			}
		}
		out[i] = ch
	}

	return out, nil
}

func addTone(dst []float64, fn func(float64) float64, freqHz, amplitude, sampleRate float64) {
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range dst {
		dst[i] += amplitude * fn(step*float64(i))
	}
}

func addNoise(dst []float64, amplitude float64, rng *rand.Rand) {
	for i := range dst {
		dst[i] += (rng.Float64()*2 - 1) * amplitude
	}
}

// ParseChannel reads a channel description of '+'-joined components:
//
//	sine:FREQ[:AMP]   cos:FREQ[:AMP]   noise[:AMP]   dc:LEVEL
//
// Amplitudes default to 1.
func ParseChannel(s string) ([]Component, error) {
	var out []Component
	for _, term := range strings.Split(s, "+") {
		c, err := parseComponent(strings.TrimSpace(term))
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func parseComponent(term string) (Component, error) {
	parts := strings.Split(term, ":")
	name := strings.ToLower(parts[0])

	nums := make([]float64, len(parts)-1)
	for i, p := range parts[1:] {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Component{}, fmt.Errorf("component %q: invalid number %q", term, p)
		}
		nums[i] = v
	}

	switch {
	case (name == "sine" || name == "sin" || name == "cos") && (len(nums) == 1 || len(nums) == 2):
		c := Component{Kind: KindSine, FreqHz: nums[0], Amplitude: 1}
		if name == "cos" {
			c.Kind = KindCosine
		}
		if len(nums) == 2 {
			c.Amplitude = nums[1]
		}
		return c, nil
	case name == "noise" && len(nums) <= 1:
		c := Component{Kind: KindNoise, Amplitude: 1}
		if len(nums) == 1 {
			if nums[0] < 0 {
				return Component{}, fmt.Errorf("component %q: noise amplitude must be >= 0", term)
			}
			c.Amplitude = nums[0]
		}
		return c, nil
	case name == "dc" && len(nums) == 1:
		return Component{Kind: KindDC, Amplitude: nums[0]}, nil
	default:
		return Component{}, fmt.Errorf("invalid component %q", term)
	}
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	maxAbs := 0.0
	for _, v := range data {
		maxAbs = math.Max(maxAbs, math.Abs(v))
	}

	out := make([]float64, len(data))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	scale := targetPeak / maxAbs
	for i, v := range data {
		out[i] = v * scale
	}
	return out, nil
}
