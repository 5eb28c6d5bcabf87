package spectrum

import (
	"fmt"
	"sync"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

// Magnitude returns |X[k]| for each complex bin.
//
// The real and imaginary parts are unpacked into pooled scratch buffers and
// handed to the vecmath kernel, so steady-state calls allocate only the
// output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Magnitude(out, re, im)
	scratchPool.Put(buf)

	return out
}

// BinFrequency maps bin k of a size-point transform to Hz.
func BinFrequency(k, size int, sampleRate float64) float64 {
	return float64(k) * sampleRate / float64(size)
}

// Spectrum is the one-sided magnitude spectrum of a zero-padded segment.
type Spectrum struct {
	// Size is the padded transform length P, not the segment length.
	Size       int
	SampleRate float64
	// Frequencies[k] = k*SampleRate/Size for k in [0, Size/2).
	Frequencies []float64
	Magnitudes  []float64
}

// Len returns the number of emitted bins, Size/2.
func (s Spectrum) Len() int {
	return len(s.Magnitudes)
}

// Resolution returns the bin spacing in Hz.
func (s Spectrum) Resolution() float64 {
	if s.Size == 0 {
		return 0
	}
	return s.SampleRate / float64(s.Size)
}

// Option configures Compute.
type Option func(*config)

type config struct {
	backend Backend
}

// WithBackend selects the FFT implementation.
func WithBackend(b Backend) Option {
	return func(c *config) {
		c.backend = b
	}
}

// Compute zero-pads segment to a power of two, transforms it and returns
// bins [0, P/2). The segment is expected to be windowed already. Every call
// starts from scratch; nothing is cached between calls.
func Compute(segment []float64, sampleRate float64, opts ...Option) (Spectrum, error) {
	if len(segment) == 0 {
		return Spectrum{}, fmt.Errorf("%w: empty segment", core.ErrEmptyViewport)
	}
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return Spectrum{}, err
	}

	cfg := config{backend: BackendRecursive}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	padded := ZeroPad(segment)
	bins, err := Transform(padded, cfg.backend)
	if err != nil {
		return Spectrum{}, err
	}

	size := len(padded)
	half := size / 2

	s := Spectrum{
		Size:        size,
		SampleRate:  sampleRate,
		Frequencies: make([]float64, half),
		Magnitudes:  Magnitude(bins[:half]),
	}
	if s.Magnitudes == nil {
		s.Magnitudes = []float64{}
	}

	for k := range s.Frequencies {
		s.Frequencies[k] = BinFrequency(k, size, sampleRate)
	}

	return s, nil
}

// Peak returns the frequency and magnitude of the largest bin. DC counts.
// An empty spectrum reports (0, 0).
func (s Spectrum) Peak() (freq, mag float64) {
	if len(s.Magnitudes) == 0 {
		return 0, 0
	}
	idx := floats.MaxIdx(s.Magnitudes)
	return s.Frequencies[idx], s.Magnitudes[idx]
}
