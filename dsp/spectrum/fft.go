package spectrum

import (
	"fmt"
	"math"
	"math/bits"
	"math/cmplx"
)

// NextPowerOfTwo returns the smallest power of two >= n. Values below 2
// map to 1.
func NextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// ZeroPad copies segment into a complex buffer of length
// NextPowerOfTwo(len(segment)) with zero imaginary parts and zero tail.
func ZeroPad(segment []float64) []complex128 {
	out := make([]complex128, NextPowerOfTwo(len(segment)))
	for i, v := range segment {
		out[i] = complex(v, 0)
	}
	return out
}

// FFT returns the forward DFT of x using recursive radix-2
// decimation-in-time. len(x) must be a power of two. x is not modified.
func FFT(x []complex128) ([]complex128, error) {
	if !IsPowerOfTwo(len(x)) {
		return nil, fmt.Errorf("fft length must be a power of two: %d", len(x))
	}

	if len(x) == 1 {
		return []complex128{x[0]}, nil
	}

	return fftRecursive(x), nil
}

// fftRecursive splits x into even and odd samples, transforms both halves
// and combines them with the twiddles e^(-2*pi*i*k/n).
func fftRecursive(x []complex128) []complex128 {
	n := len(x)
	if n <= 1 {
		return x
	}

	half := n / 2
	even := make([]complex128, half)
	odd := make([]complex128, half)
	for i := range half {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}

	even = fftRecursive(even)
	odd = fftRecursive(odd)

	out := make([]complex128, n)
	step := -2 * math.Pi / float64(n)
	for k := range half {
		t := cmplx.Rect(1, step*float64(k)) * odd[k]
		out[k] = even[k] + t
		out[k+half] = even[k] - t
	}

	return out
}
