package view

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/bblackyyyy/FFT-proj/dsp/channel"
	"github.com/bblackyyyy/FFT-proj/dsp/core"
	"github.com/bblackyyyy/FFT-proj/dsp/spectrum"
	"github.com/bblackyyyy/FFT-proj/dsp/viewport"
	"github.com/bblackyyyy/FFT-proj/dsp/window"
	"github.com/sirupsen/logrus"
)

// ErrSuperseded is returned by Refresh when the session changed while the
// refresh was computing. The stale result is discarded.
var ErrSuperseded = errors.New("view superseded by a newer request")

// ErrNotLoaded is returned when a session has no channels yet.
var ErrNotLoaded = errors.New("no channels loaded")

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger. The default is the logrus standard logger.
func WithLogger(log logrus.FieldLogger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log
		}
	}
}

// WithBackend selects the FFT backend for every refresh.
func WithBackend(b spectrum.Backend) SessionOption {
	return func(s *Session) {
		s.backend = b
	}
}

// Session holds the state of an interactive viewer: the loaded channels and
// the current sample rate, viewport, window and channel count. It is safe
// for concurrent use.
//
// Every mutation bumps a generation counter. Refresh computes from a
// snapshot and only publishes when no mutation happened in between.
type Session struct {
	log     logrus.FieldLogger
	backend spectrum.Backend
	compute func(context.Context, []channel.Channel, Params) ([]ChannelView, error)

	mu        sync.Mutex
	gen       uint64
	channels  []channel.Channel
	cfg       core.ProcessorConfig
	vp        viewport.Viewport
	win       window.Type
	latest    []ChannelView
	latestGen uint64
}

// NewSession returns an empty session using a rectangular window and the
// default sample rate.
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		log:     logrus.StandardLogger(),
		cfg:     core.DefaultProcessorConfig(),
		win:     window.TypeRectangular,
		compute: Compute,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Load replaces the channels with copies of channels. The viewport resets to
// the full range and only the first channel is selected; the window is kept.
// Previously published views are dropped.
func (s *Session) Load(channels []channel.Channel, sampleRate float64) error {
	if err := core.ValidateChannelCount(len(channels)); err != nil {
		return err
	}
	if err := core.ValidateSampleRate(sampleRate); err != nil {
		return err
	}
	vp, err := viewport.Full(len(channels[0]))
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	owned := make([]channel.Channel, len(channels))
	for i, ch := range channels {
		owned[i] = slices.Clone(ch)
	}

	s.channels = owned
	s.cfg = core.ApplyProcessorOptions(
		core.WithSampleRate(sampleRate),
		core.WithChannelCount(core.MinChannels),
	)
	s.vp = vp
	s.latest = nil
	s.bump()

	s.log.WithFields(logrus.Fields{
		"channels":    len(channels),
		"samples":     len(channels[0]),
		"sample_rate": sampleRate,
	}).Info("channels loaded")

	return nil
}

// SetSampleRate changes Fs.
func (s *Session) SetSampleRate(fs float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channels == nil {
		return ErrNotLoaded
	}
	if err := core.ValidateSampleRate(fs); err != nil {
		return err
	}

	s.cfg.SampleRate = fs
	s.bump()

	return nil
}

// SetStart moves the viewport. The length shrinks if it no longer fits.
func (s *Session) SetStart(start int) error {
	return s.updateViewport(func(total int, vp viewport.Viewport) (viewport.Viewport, error) {
		return vp.WithStart(total, start)
	})
}

// SetLength changes the viewport length, clamped to what fits after start.
func (s *Session) SetLength(length int) error {
	return s.updateViewport(func(total int, vp viewport.Viewport) (viewport.Viewport, error) {
		return vp.WithLength(total, length)
	})
}

// SetRange replaces start and length in one step.
func (s *Session) SetRange(start, length int) error {
	return s.updateViewport(func(total int, _ viewport.Viewport) (viewport.Viewport, error) {
		return viewport.New(total, start, length)
	})
}

func (s *Session) updateViewport(next func(total int, vp viewport.Viewport) (viewport.Viewport, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channels == nil {
		return ErrNotLoaded
	}

	vp, err := next(len(s.channels[0]), s.vp)
	if err != nil {
		return err
	}

	if vp != s.vp {
		s.log.WithFields(logrus.Fields{"from": s.vp.String(), "to": vp.String()}).Debug("viewport changed")
	}
	s.vp = vp
	s.bump()

	return nil
}

// SetWindow selects the window applied before the transform.
func (s *Session) SetWindow(t window.Type) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channels == nil {
		return ErrNotLoaded
	}
	if err := window.Validate(t); err != nil {
		return err
	}

	s.win = t
	s.bump()

	return nil
}

// SetChannelCount selects how many leading channels are rendered.
func (s *Session) SetChannelCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.channels == nil {
		return ErrNotLoaded
	}
	if err := core.ValidateChannelCount(n); err != nil {
		return err
	}
	if n > len(s.channels) {
		return fmt.Errorf("%w: %d requested, %d loaded", core.ErrUnsupportedChannelCount, n, len(s.channels))
	}
	s.cfg.ChannelCount = n
	s.bump()

	return nil
}

// Viewport returns the current range.
func (s *Session) Viewport() viewport.Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.vp
}

// Params returns the parameters the next Refresh will use.
func (s *Session) Params() Params {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.paramsLocked()
}

func (s *Session) paramsLocked() Params {
	return Params{
		SampleRate:   s.cfg.SampleRate,
		Start:        s.vp.Start,
		Length:       s.vp.Length,
		Window:       s.win,
		ChannelCount: s.cfg.ChannelCount,
		Backend:      s.backend,
	}
}

// Generation returns the mutation counter.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.gen
}

// Refresh recomputes the views from the current state. If the state changes
// before the computation finishes, the result is dropped and ErrSuperseded
// is returned; the in-flight work is not cancelled.
func (s *Session) Refresh(ctx context.Context) ([]ChannelView, error) {
	s.mu.Lock()
	if s.channels == nil {
		s.mu.Unlock()
		return nil, ErrNotLoaded
	}
	gen := s.gen
	channels := s.channels
	p := s.paramsLocked()
	s.mu.Unlock()

	views, err := s.compute(ctx, channels, p)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		s.log.WithFields(logrus.Fields{"generation": gen, "current": s.gen}).Debug("refresh superseded")
		return nil, ErrSuperseded
	}
	if err != nil {
		s.log.WithError(err).Warn("refresh failed")
		return nil, err
	}

	s.latest = views
	s.latestGen = gen
	s.log.WithFields(logrus.Fields{
		"generation": gen,
		"start":      p.Start,
		"length":     p.Length,
		"window":     p.Window.String(),
		"channels":   p.ChannelCount,
	}).Debug("views published")

	return views, nil
}

// Latest returns the most recently published views and their generation.
// A nil slice means nothing has been published since the last Load.
func (s *Session) Latest() ([]ChannelView, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest, s.latestGen
}

func (s *Session) bump() {
	s.gen++
}
