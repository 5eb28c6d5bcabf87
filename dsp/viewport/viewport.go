// Package viewport selects the (start, length) sample range under analysis.
//
// A Viewport is a value: every change goes through a validating constructor
// that clamps the length against the pending start in one step, so callers
// never hold a half-updated range.
package viewport

import (
	"fmt"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
)

// Viewport is a sub-range of a channel. The zero value is not valid; build
// one with Full or New.
type Viewport struct {
	Start  int
	Length int
}

// Full covers all total samples.
func Full(total int) (Viewport, error) {
	if total <= 0 {
		return Viewport{}, fmt.Errorf("%w: channel has %d samples", core.ErrEmptyViewport, total)
	}
	return Viewport{Start: 0, Length: total}, nil
}

// New validates a requested range over total samples. The length is clamped
// down to total-start; a start outside [0, total) cannot be clamped.
func New(total, start, length int) (Viewport, error) {
	if total <= 0 {
		return Viewport{}, fmt.Errorf("%w: channel has %d samples", core.ErrEmptyViewport, total)
	}
	if start < 0 || start >= total {
		return Viewport{}, fmt.Errorf("%w: start %d not in [0, %d)", core.ErrOutOfRange, start, total)
	}
	if length < 1 {
		return Viewport{}, fmt.Errorf("%w: length %d", core.ErrEmptyViewport, length)
	}

	return Viewport{Start: start, Length: min(length, MaxLength(total, start))}, nil
}

// MaxLength is the longest range that fits after start, or 0 when start is
// out of bounds.
func MaxLength(total, start int) int {
	if start < 0 || start >= total {
		return 0
	}
	return total - start
}

// WithStart moves the range to start and shrinks the current length if it
// no longer fits. The length is never raised.
func (v Viewport) WithStart(total, start int) (Viewport, error) {
	return New(total, start, v.Length)
}

// WithLength changes the length, clamped to what fits after the current start.
func (v Viewport) WithLength(total, length int) (Viewport, error) {
	return New(total, v.Start, length)
}

// End returns the exclusive end index.
func (v Viewport) End() int {
	return v.Start + v.Length
}

// Slice returns the selected samples. It shares memory with samples and
// panics when the viewport does not fit, like any out-of-range slice.
func (v Viewport) Slice(samples []float64) []float64 {
	return samples[v.Start:v.End():v.End()]
}

// Fits reports whether v is a valid range over total samples.
func (v Viewport) Fits(total int) bool {
	return v.Start >= 0 && v.Length >= 1 && v.End() <= total
}

func (v Viewport) String() string {
	return fmt.Sprintf("[%d, %d)", v.Start, v.End())
}
