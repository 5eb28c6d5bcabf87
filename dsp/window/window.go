// Package window generates spectral tapers and applies them to sample segments.
//
// All windows use the symmetric form, w(i) = f(i/(n-1)), so the first and
// last samples carry the same weight. A one-sample segment has no taper:
// every kind yields w(0) = 1.
package window

import (
	"fmt"
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeHann
	TypeHamming
)

// Metadata holds textbook spectral properties of a window type.
type Metadata struct {
	Name                string
	ENBW                float64
	HighestSidelobe     float64
	CoherentGain        float64
	CoherentGainSquared float64
}

var (
	hannCoeffs    = []float64{0.5, -0.5}
	hammingCoeffs = []float64{0.54, -0.46}
)

var metadataByType = map[Type]Metadata{
	TypeRectangular: {Name: "Rectangular", ENBW: 1, HighestSidelobe: -13.26, CoherentGain: 1, CoherentGainSquared: 1},
	TypeHann:        {Name: "Hann", ENBW: 1.5, HighestSidelobe: -31.47, CoherentGain: 0.5, CoherentGainSquared: 0.25},
	TypeHamming:     {Name: "Hamming", ENBW: 1.3628, HighestSidelobe: -42.68, CoherentGain: 0.54, CoherentGainSquared: 0.2916},
}

// Types lists the supported window types in display order.
func Types() []Type {
	return []Type{TypeRectangular, TypeHann, TypeHamming}
}

func (t Type) String() string {
	if m, ok := metadataByType[t]; ok {
		return m.Name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// ParseType resolves a case-insensitive window name.
func ParseType(name string) (Type, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "rectangular", "rect", "boxcar", "none", "":
		return TypeRectangular, nil
	case "hann", "hanning":
		return TypeHann, nil
	case "hamming":
		return TypeHamming, nil
	default:
		return TypeRectangular, fmt.Errorf("%w: %q", ErrUnknownType, name)
	}
}

// Validate reports whether t is one of Types().
func Validate(t Type) error {
	if _, ok := metadataByType[t]; !ok {
		return fmt.Errorf("%w: %d", ErrUnknownType, int(t))
	}
	return nil
}

// Info returns static metadata for a window type.
func Info(t Type) Metadata {
	return metadataByType[t]
}

// Generate returns window coefficients of the given length.
func Generate(t Type, length int) []float64 {
	if length <= 0 {
		return nil
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	den := float64(length - 1)
	for i := range out {
		out[i] = evalWindow(t, float64(i)/den)
	}

	return out
}

// Apply returns a new slice holding samples weighted by the window.
// The input is not modified.
func Apply(t Type, samples []float64) []float64 {
	if len(samples) == 0 {
		return []float64{}
	}

	out := make([]float64, len(samples))
	if t == TypeRectangular {
		copy(out, samples)
		return out
	}

	vecmath.MulBlock(out, samples, Generate(t, len(samples)))

	return out
}

// ApplyInPlace multiplies buf in place by the selected window.
func ApplyInPlace(t Type, buf []float64) {
	if len(buf) == 0 || t == TypeRectangular {
		return
	}

	vecmath.MulBlockInPlace(buf, Generate(t, len(buf)))
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// evalWindow evaluates the window at normalised position x in [0, 1].
func evalWindow(t Type, x float64) float64 {
	switch t {
	case TypeHann:
		return cosineFromCoeffs(x, hannCoeffs)
	case TypeHamming:
		return cosineFromCoeffs(x, hammingCoeffs)
	default:
		return 1
	}
}

func cosineFromCoeffs(x float64, coeffs []float64) float64 {
	phase := 2 * math.Pi * x

	sum := 0.0
	for k, c := range coeffs {
		sum += c * math.Cos(float64(k)*phase)
	}

	return sum
}
