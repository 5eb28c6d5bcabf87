package testutil

import (
	"math"
	"math/cmplx"
	"math/rand"
	"strconv"
)

// DeterministicSine generates amplitude*sin(2*pi*freqHz*n/sampleRate).
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise generates uniform noise in [-amplitude, amplitude)
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ramp returns 0, 1, ..., length-1.
func Ramp(length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = float64(i)
	}
	return out
}

// NaiveDFT evaluates the forward DFT by definition in O(n^2). It is the
// reference every FFT backend is checked against.
func NaiveDFT(x []complex128) []complex128 {
	n := len(x)
	out := make([]complex128, n)
	for k := range out {
		var sum complex128
		for j, v := range x {
			sum += v * cmplx.Exp(complex(0, -2*math.Pi*float64(k*j)/float64(n)))
		}
		out[k] = sum
	}
	return out
}

// CSV renders columns as comma-separated rows, one sample per row.
func CSV(columns ...[]float64) string {
	if len(columns) == 0 {
		return ""
	}
	buf := make([]byte, 0, 16*len(columns)*len(columns[0]))
	for i := range columns[0] {
		for c, col := range columns {
			if c > 0 {
				buf = append(buf, ',')
			}
			buf = strconv.AppendFloat(buf, col[i], 'g', -1, 64)
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
