// Package frequency summarizes a one-sided magnitude spectrum.
package frequency

import (
	"math"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/bblackyyyy/FFT-proj/dsp/spectrum"
	"gonum.org/v1/gonum/floats"
)

// DefaultRolloffPercent is the energy fraction used by Calculate.
const DefaultRolloffPercent = 0.85

// Stats holds frequency-domain statistics of one spectrum.
type Stats struct {
	BinCount   int
	Resolution float64 // Hz per bin
	DC         float64 // bin 0 magnitude
	PeakBin    int
	PeakFreq   float64
	PeakMag    float64
	PeakdB     float64
	Sum        float64 // sum of magnitudes
	Energy     float64 // sum of squared magnitudes
	// Spectral shape descriptors
	Centroid float64 // Hz
	Spread   float64 // Hz
	Flatness float64 // Wiener entropy, 0..1
	Rolloff  float64 // Hz below which 85% of the energy lies
}

// Calculate summarizes s. An empty spectrum yields zero values with -Inf
// for PeakdB.
func Calculate(s spectrum.Spectrum) Stats {
	mag := s.Magnitudes
	if len(mag) == 0 {
		return Stats{PeakdB: math.Inf(-1), Resolution: s.Resolution()}
	}

	st := Stats{
		BinCount:   len(mag),
		Resolution: s.Resolution(),
		DC:         mag[0],
		PeakBin:    floats.MaxIdx(mag),
		Sum:        floats.Sum(mag),
		Energy:     floats.Dot(mag, mag),
	}
	st.PeakFreq = s.Frequencies[st.PeakBin]
	st.PeakMag = mag[st.PeakBin]
	st.PeakdB = core.LinearToDB(st.PeakMag)
	st.Centroid = Centroid(s.Frequencies, mag)
	st.Spread = spread(s.Frequencies, mag, st.Centroid, st.Sum)
	st.Flatness = Flatness(mag)
	st.Rolloff = rolloff(s.Frequencies, mag, DefaultRolloffPercent, st.Energy)

	return st
}

// Centroid returns the magnitude-weighted mean frequency,
// sum(f_k*|X_k|) / sum(|X_k|), or 0 for a silent spectrum.
func Centroid(freqs, mag []float64) float64 {
	sum := floats.Sum(mag)
	if sum == 0 {
		return 0
	}
	return floats.Dot(freqs, mag) / sum
}

func spread(freqs, mag []float64, cent, sumMag float64) float64 {
	if sumMag == 0 {
		return 0
	}
	weighted := 0.0
	for k, v := range mag {
		d := freqs[k] - cent
		weighted += d * d * v
	}
	return math.Sqrt(weighted / sumMag)
}

// Flatness returns exp(mean(log|X_k|)) / mean(|X_k|) over bins 1..n-1.
// DC is excluded. Any zero bin makes the geometric mean, and the result, 0.
func Flatness(mag []float64) float64 {
	if len(mag) < 2 {
		return 0
	}

	ac := mag[1:]
	meanLin := floats.Sum(ac) / float64(len(ac))
	if meanLin == 0 {
		return 0
	}

	sumLog := 0.0
	for _, v := range ac {
		if v <= 0 {
			return 0
		}
		sumLog += math.Log(v)
	}

	return math.Exp(sumLog/float64(len(ac))) / meanLin
}

// Rolloff returns the lowest bin frequency at which the cumulative energy
// reaches percent of the total.
func Rolloff(freqs, mag []float64, percent float64) float64 {
	return rolloff(freqs, mag, percent, floats.Dot(mag, mag))
}

func rolloff(freqs, mag []float64, percent, total float64) float64 {
	if len(mag) == 0 || total == 0 {
		return 0
	}
	threshold := percent * total
	cum := 0.0
	for k, v := range mag {
		cum += v * v
		if cum >= threshold {
			return freqs[k]
		}
	}
	return freqs[len(freqs)-1]
}
