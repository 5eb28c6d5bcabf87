// Package time summarizes the raw samples of a viewport.
package time

import (
	"math"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats holds time-domain statistics of one segment.
type Stats struct {
	Length int
	DC     float64 // mean
	RMS    float64
	RMSdB  float64
	Max    float64
	MaxPos int
	Min    float64
	MinPos int
	Peak   float64 // max(|max|, |min|)
	PeakdB float64
	// CrestFactor is Peak/RMS, 0 for a silent segment.
	CrestFactor   float64
	Energy        float64 // sum of squares
	Variance      float64 // population variance
	StdDev        float64
	ZeroCrossings int
}

// Calculate summarizes signal. An empty signal yields zero values with -Inf
// for the dB fields.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{RMSdB: math.Inf(-1), PeakdB: math.Inf(-1)}
	}

	s := Stats{
		Length: n,
		MaxPos: floats.MaxIdx(signal),
		MinPos: floats.MinIdx(signal),
		Energy: floats.Dot(signal, signal),
	}
	s.Max = signal[s.MaxPos]
	s.Min = signal[s.MinPos]
	s.Peak = math.Max(math.Abs(s.Max), math.Abs(s.Min))
	s.RMS = math.Sqrt(s.Energy / float64(n))
	s.DC, s.Variance = stat.PopMeanVariance(signal, nil)
	s.StdDev = math.Sqrt(s.Variance)
	s.RMSdB = core.LinearToDB(s.RMS)
	s.PeakdB = core.LinearToDB(s.Peak)
	if s.RMS > 0 {
		s.CrestFactor = s.Peak / s.RMS
	}
	s.ZeroCrossings = ZeroCrossings(signal)

	return s
}

// ZeroCrossings counts sign changes between consecutive samples. Zero is
// treated as positive.
func ZeroCrossings(signal []float64) int {
	count := 0
	for i := 1; i < len(signal); i++ {
		if (signal[i-1] >= 0) != (signal[i] >= 0) {
			count++
		}
	}
	return count
}
