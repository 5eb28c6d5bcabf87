package spectrum_test

import (
	"fmt"

	"github.com/bblackyyyy/FFT-proj/dsp/spectrum"
)

func ExampleCompute() {
	s, _ := spectrum.Compute([]float64{1, 1, 1, 1}, 4)
	for k := range s.Len() {
		fmt.Printf("%.0f Hz: %.1f\n", s.Frequencies[k], s.Magnitudes[k])
	}
	// Output:
	// 0 Hz: 4.0
	// 1 Hz: 0.0
}

func ExampleNextPowerOfTwo() {
	fmt.Println(spectrum.NextPowerOfTwo(5), spectrum.NextPowerOfTwo(1000), spectrum.NextPowerOfTwo(1024))
	// Output:
	// 8 1024 1024
}

func ExampleMagnitude() {
	mag := spectrum.Magnitude([]complex128{3 + 4i, 0 + 1i})
	fmt.Printf("%.1f %.1f\n", mag[0], mag[1])
	// Output:
	// 5.0 1.0
}
