package spectrum

import (
	"fmt"
	"strings"

	algofft "github.com/MeKo-Christian/algo-fft"
	godspfft "github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Backend selects the FFT implementation used by Compute.
type Backend int

const (
	// BackendRecursive is the package's recursive radix-2 FFT.
	BackendRecursive Backend = iota
	// BackendAlgoFFT plans the transform with github.com/MeKo-Christian/algo-fft.
	BackendAlgoFFT
	// BackendGonum uses gonum.org/v1/gonum/dsp/fourier.
	BackendGonum
	// BackendGoDSP uses github.com/mjibson/go-dsp/fft.
	BackendGoDSP
)

var backendNames = map[Backend]string{
	BackendRecursive: "recursive",
	BackendAlgoFFT:   "algofft",
	BackendGonum:     "gonum",
	BackendGoDSP:     "godsp",
}

// Backends lists every available backend.
func Backends() []Backend {
	return []Backend{BackendRecursive, BackendAlgoFFT, BackendGonum, BackendGoDSP}
}

func (b Backend) String() string {
	if name, ok := backendNames[b]; ok {
		return name
	}
	return fmt.Sprintf("Backend(%d)", int(b))
}

// ParseBackend resolves a case-insensitive backend name.
func ParseBackend(name string) (Backend, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return BackendRecursive, nil
	}
	for b, n := range backendNames {
		if n == key {
			return b, nil
		}
	}
	return BackendRecursive, fmt.Errorf("unknown fft backend %q", name)
}

// Transform computes the forward DFT of a power-of-two buffer with the
// chosen backend. buf is not modified.
func Transform(buf []complex128, b Backend) ([]complex128, error) {
	if !IsPowerOfTwo(len(buf)) {
		return nil, fmt.Errorf("fft length must be a power of two: %d", len(buf))
	}

	if len(buf) == 1 {
		return []complex128{buf[0]}, nil
	}

	switch b {
	case BackendRecursive:
		return FFT(buf)
	case BackendAlgoFFT:
		plan, err := algofft.NewPlan64(len(buf))
		if err != nil {
			return nil, fmt.Errorf("fft plan: %w", err)
		}
		out := make([]complex128, len(buf))
		if err := plan.Forward(out, buf); err != nil {
			return nil, fmt.Errorf("fft forward: %w", err)
		}
		return out, nil
	case BackendGonum:
		return fourier.NewCmplxFFT(len(buf)).Coefficients(nil, buf), nil
	case BackendGoDSP:
		in := make([]complex128, len(buf))
		copy(in, buf)
		return godspfft.FFT(in), nil
	default:
		return nil, fmt.Errorf("unknown fft backend %v", b)
	}
}
