package viewport_test

import (
	"fmt"

	"github.com/bblackyyyy/FFT-proj/dsp/viewport"
)

func ExampleViewport_WithStart() {
	v, _ := viewport.Full(10)
	v, _ = v.WithStart(10, 8)
	fmt.Println(v.Start, v.Length)
	// Output:
	// 8 2
}
