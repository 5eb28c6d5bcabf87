// Package channel projects a parsed sample matrix onto independent channels.
package channel

import (
	"fmt"

	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/bblackyyyy/FFT-proj/dsp/table"
	"gonum.org/v1/gonum/floats"
)

// Channel is one time-ordered sample sequence.
type Channel []float64

// Role tells Extract how to treat column 0.
type Role int

const (
	// RoleAuto drops column 0 when it looks like an index.
	RoleAuto Role = iota
	// RoleIndex always drops column 0 of a multi-column matrix.
	RoleIndex
	// RoleData treats every column as a channel.
	RoleData
)

func (r Role) String() string {
	switch r {
	case RoleAuto:
		return "auto"
	case RoleIndex:
		return "index"
	case RoleData:
		return "data"
	default:
		return "unknown"
	}
}

// Option configures Extract.
type Option func(*config)

type config struct {
	role Role
}

// WithRole sets the role of column 0.
func WithRole(r Role) Option {
	return func(c *config) {
		c.role = r
	}
}

// Extract splits m into channels, one per data column, preserving row
// order. The resulting count must lie in [core.MinChannels, core.MaxChannels].
func Extract(m *table.Matrix, opts ...Option) ([]Channel, error) {
	if m == nil {
		return nil, core.ErrEmptyOrInvalidInput
	}

	cfg := config{role: RoleAuto}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	first := 0
	switch cfg.role {
	case RoleIndex:
		if m.Cols() > 1 {
			first = 1
		}
	case RoleAuto:
		if IndexColumnDetected(m) {
			first = 1
		}
	}

	if err := core.ValidateChannelCount(m.Cols() - first); err != nil {
		return nil, fmt.Errorf("%d columns, %d used as channels: %w", m.Cols(), m.Cols()-first, err)
	}

	out := make([]Channel, 0, m.Cols()-first)
	for j := first; j < m.Cols(); j++ {
		out = append(out, Channel(m.Column(j)))
	}

	return out, nil
}

// IndexColumnDetected reports whether column 0 of a multi-column matrix
// varies within the first core.IndexProbeRows rows. A varying first column
// is taken to be a time or sample index.
func IndexColumnDetected(m *table.Matrix) bool {
	if m == nil || m.Cols() < 2 {
		return false
	}

	probe := min(m.Rows(), core.IndexProbeRows)
	head := m.Column(0)[:probe]

	return floats.Max(head) != floats.Min(head)
}
