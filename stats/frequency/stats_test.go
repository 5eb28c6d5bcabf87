package frequency

import (
	"math"
	"testing"

	"github.com/bblackyyyy/FFT-proj/dsp/spectrum"
	"github.com/bblackyyyy/FFT-proj/internal/testutil"
)

const tolerance = 1e-9

// makeSpectrum builds a spectrum over bins 0..len(mag)-1 with 1 Hz spacing.
func makeSpectrum(mag ...float64) spectrum.Spectrum {
	freqs := make([]float64, len(mag))
	for k := range freqs {
		freqs[k] = float64(k)
	}
	return spectrum.Spectrum{
		Size:        2 * len(mag),
		SampleRate:  float64(2 * len(mag)),
		Frequencies: freqs,
		Magnitudes:  mag,
	}
}

func TestCalculateEmpty(t *testing.T) {
	s := Calculate(spectrum.Spectrum{})
	if s.BinCount != 0 || !math.IsInf(s.PeakdB, -1) {
		t.Fatalf("Calculate(empty) = %+v", s)
	}
}

func TestCalculateSingleBin(t *testing.T) {
	s := Calculate(makeSpectrum(0, 0, 0, 4, 0, 0, 0, 0))

	if s.PeakBin != 3 || s.PeakFreq != 3 || s.PeakMag != 4 {
		t.Fatalf("peak = bin %d, %v Hz, %v", s.PeakBin, s.PeakFreq, s.PeakMag)
	}
	if math.Abs(s.PeakdB-20*math.Log10(4)) > tolerance {
		t.Fatalf("PeakdB = %v", s.PeakdB)
	}
	if s.Centroid != 3 || s.Spread != 0 || s.Rolloff != 3 {
		t.Fatalf("Centroid=%v Spread=%v Rolloff=%v", s.Centroid, s.Spread, s.Rolloff)
	}
	if s.Flatness != 0 {
		t.Fatalf("Flatness = %v, want 0 for a tonal spectrum", s.Flatness)
	}
	if s.Energy != 16 || s.Sum != 4 || s.DC != 0 || s.Resolution != 1 {
		t.Fatalf("Energy=%v Sum=%v DC=%v Resolution=%v", s.Energy, s.Sum, s.DC, s.Resolution)
	}
}

func TestCalculateSymmetricShape(t *testing.T) {
	s := Calculate(makeSpectrum(0, 1, 2, 1, 0))

	if math.Abs(s.Centroid-2) > tolerance {
		t.Fatalf("Centroid = %v, want 2", s.Centroid)
	}
	if math.Abs(s.Spread-math.Sqrt(0.5)) > tolerance {
		t.Fatalf("Spread = %v, want sqrt(0.5)", s.Spread)
	}
	// Energies 0, 1, 4, 1: 85% of 6 is reached at bin 3.
	if s.Rolloff != 3 {
		t.Fatalf("Rolloff = %v, want 3", s.Rolloff)
	}
}

func TestFlatness(t *testing.T) {
	tests := []struct {
		name string
		mag  []float64
		want float64
	}{
		{"flat", []float64{9, 1, 1, 1, 1}, 1},
		{"zero bin", []float64{0, 1, 0, 1}, 0},
		{"silent", []float64{0, 0, 0}, 0},
		{"too short", []float64{1}, 0},
		{"two levels", []float64{0, 1, 4}, 2.0 / 2.5},
	}
	for _, tt := range tests {
		if got := Flatness(tt.mag); math.Abs(got-tt.want) > tolerance {
			t.Errorf("%s: Flatness = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestRolloff(t *testing.T) {
	freqs := []float64{0, 10, 20, 30}
	mag := []float64{1, 1, 1, 1}

	tests := []struct {
		percent float64
		want    float64
	}{
		{0.25, 0},
		{0.5, 10},
		{0.85, 30},
		{1, 30},
	}
	for _, tt := range tests {
		if got := Rolloff(freqs, mag, tt.percent); got != tt.want {
			t.Errorf("Rolloff(%v) = %v, want %v", tt.percent, got, tt.want)
		}
	}
	if got := Rolloff(freqs, make([]float64, 4), 0.85); got != 0 {
		t.Errorf("silent Rolloff = %v, want 0", got)
	}
}

func TestCalculateFromTransform(t *testing.T) {
	sp, err := spectrum.Compute(testutil.DeterministicSine(100, 800, 1, 64), 800)
	if err != nil {
		t.Fatal(err)
	}

	s := Calculate(sp)
	if s.PeakFreq != 100 || s.BinCount != 32 || s.Resolution != 12.5 {
		t.Fatalf("PeakFreq=%v BinCount=%d Resolution=%v", s.PeakFreq, s.BinCount, s.Resolution)
	}
	if math.Abs(s.Centroid-100) > 1e-6 {
		t.Fatalf("Centroid = %v, want 100", s.Centroid)
	}
}
