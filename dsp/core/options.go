package core

const (
	// MinChannels and MaxChannels bound the number of analysed channels.
	MinChannels = 1
	MaxChannels = 3

	// IndexProbeRows is the number of leading rows inspected when guessing
	// whether column 0 holds an index instead of samples.
	IndexProbeRows = 10

	DefaultSampleRate = 1000.0
	MinSampleRate     = 1.0
	MaxSampleRate     = 1_000_000.0
)

// ProcessorConfig defines the settings shared by one load of channels.
type ProcessorConfig struct {
	SampleRate   float64
	ChannelCount int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 1 kHz single-channel configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate:   DefaultSampleRate,
		ChannelCount: MinChannels,
	}
}

// WithSampleRate sets the sampling rate in Hz.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if ValidateSampleRate(sampleRate) == nil {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithChannelCount sets how many channels are shown.
func WithChannelCount(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if ValidateChannelCount(n) == nil {
			cfg.ChannelCount = n
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
