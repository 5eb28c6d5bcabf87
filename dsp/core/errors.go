package core

import (
	"errors"
	"fmt"
	"math"
)

// Error kinds shared by the parsing, extraction and viewing stages.
// Callers match them with errors.Is; stages wrap them with context.
var (
	ErrEmptyOrInvalidInput     = errors.New("no row of the input parses as numbers")
	ErrUnsupportedChannelCount = errors.New("unsupported channel count")
	ErrEmptyViewport           = errors.New("viewport is empty")
	ErrOutOfRange              = errors.New("viewport out of range")
	ErrInvalidSampleRate       = errors.New("invalid sample rate")
)

// ValidateSampleRate reports whether fs can map sample indices to seconds.
func ValidateSampleRate(fs float64) error {
	if math.IsNaN(fs) || math.IsInf(fs, 0) || fs <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidSampleRate, fs)
	}
	return nil
}

// ValidateChannelCount reports whether n lies in [MinChannels, MaxChannels].
func ValidateChannelCount(n int) error {
	if n < MinChannels || n > MaxChannels {
		return fmt.Errorf("%w: %d (supported %d..%d)", ErrUnsupportedChannelCount, n, MinChannels, MaxChannels)
	}
	return nil
}
