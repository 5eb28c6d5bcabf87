package window

import "math"

// Analysis holds spectral properties measured numerically from coefficients.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// FirstNullBins is the distance from DC to the first spectral minimum.
	FirstNullBins float64
	// HighestSidelobedB is the strongest sidelobe relative to DC.
	HighestSidelobedB float64
	// ScallopLossdB is the level of a tone half a bin off centre.
	ScallopLossdB float64
}

// searchSteps is the bisection and golden-section iteration count; 80
// halvings exhaust float64 precision on [0, 0.5].
const searchSteps = 80

// Analyze evaluates the window's DTFT on a continuous frequency axis
// (normalised to cycles per sample) and extracts its figures of merit.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	dc := response(coeffs, 0)
	if dc == 0 {
		return Analysis{}
	}

	var a Analysis

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}
	a.CoherentGain = sum / float64(n)
	a.ENBW, _ = EquivalentNoiseBandwidth(coeffs)

	nf := float64(n)
	a.ScallopLossdB = powerRatioDB(response(coeffs, 0.5/nf), dc)

	// Half-power point by bisection on [0, Nyquist].
	lo, hi := 0.0, 0.5
	for range searchSteps {
		mid := (lo + hi) / 2
		if response(coeffs, mid) > dc/2 {
			lo = mid
		} else {
			hi = mid
		}
	}
	a.Bandwidth3dB = 2 * lo * nf

	null := firstNull(coeffs, dc, nf)
	a.FirstNullBins = null * nf
	a.HighestSidelobedB = powerRatioDB(peakAfter(coeffs, null, nf), dc)

	return a
}

// response returns |W(f)|^2 at normalised frequency f.
func response(coeffs []float64, f float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * f
	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}
	return re*re + im*im
}

// firstNull scans outward from DC in 1/8-bin steps until the response turns
// upward after dropping below 10% of DC, then refines the minimum with a
// golden-section search.
func firstNull(coeffs []float64, dc, nf float64) float64 {
	step := 1 / (8 * nf)

	coarse := step
	prev := dc
	for f := step; f < 0.5; f += step {
		v := response(coeffs, f)
		if prev < 0.1*dc && v > prev {
			coarse = f - step
			break
		}
		prev = v
	}

	a := math.Max(0, coarse-2*step)
	b := math.Min(0.5, coarse+2*step)

	const invPhi = 0.6180339887498949
	for range searchSteps {
		c := b - invPhi*(b-a)
		d := a + invPhi*(b-a)
		if response(coeffs, c) < response(coeffs, d) {
			b = d
		} else {
			a = c
		}
	}

	return (a + b) / 2
}

// peakAfter returns the largest response between from and Nyquist.
func peakAfter(coeffs []float64, from, nf float64) float64 {
	step := 1 / (8 * nf)

	peak, at := 0.0, from
	for f := from; f < 0.5; f += step {
		if v := response(coeffs, f); v > peak {
			peak, at = v, f
		}
	}

	fine := step / 32
	for f := math.Max(0, at-step); f <= at+step; f += fine {
		peak = math.Max(peak, response(coeffs, f))
	}

	return peak
}

func powerRatioDB(p, ref float64) float64 {
	if p <= 0 || ref <= 0 {
		return math.Inf(-1)
	}
	return 10 * math.Log10(p/ref)
}
