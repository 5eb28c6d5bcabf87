package core_test

import (
	"errors"
	"fmt"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
)

func ExampleApplyProcessorOptions() {
	cfg := core.ApplyProcessorOptions(
		core.WithSampleRate(44100),
		core.WithChannelCount(2),
	)

	fmt.Printf("sampleRate=%.0f channels=%d\n", cfg.SampleRate, cfg.ChannelCount)

	// Output:
	// sampleRate=44100 channels=2
}

func ExampleValidateChannelCount() {
	err := core.ValidateChannelCount(5)
	fmt.Println(errors.Is(err, core.ErrUnsupportedChannelCount))

	// Output:
	// true
}
