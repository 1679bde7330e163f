package dataset

import "github.com/cwbudde/algo-spiro/curve"

const (
	// DefaultMaxNumPoints is the fixed length of every model-input curve.
	// Shorter blows are right-padded, longer blows truncated.
	DefaultMaxNumPoints = 1000

	// DefaultMaxInterpVolume is the upper bound, in liters, of the volume
	// grid the flow-volume curve is interpolated onto.
	DefaultMaxInterpVolume = 6.58
)

// Config holds every scale and bound used while deriving a batch.
type Config struct {
	MaxNumPoints    int
	MinInterpVolume float64
	MaxInterpVolume float64
	VolumeScale     float64
	TimeScale       float64
}

// DefaultConfig returns the UK Biobank field-3066 derivation parameters.
func DefaultConfig() Config {
	return Config{
		MaxNumPoints:    DefaultMaxNumPoints,
		MinInterpVolume: 0,
		MaxInterpVolume: DefaultMaxInterpVolume,
		VolumeScale:     curve.DefaultVolumeScale,
		TimeScale:       curve.DefaultTimeScale,
	}
}

// Option mutates a Config.
type Option func(*Config)

// WithMaxNumPoints overrides the fixed model-input length.
func WithMaxNumPoints(n int) Option {
	return func(cfg *Config) {
		if n > 0 {
			cfg.MaxNumPoints = n
		}
	}
}

// WithInterpVolumeRange overrides the flow-volume interpolation range in
// liters.
func WithInterpVolumeRange(min, max float64) Option {
	return func(cfg *Config) {
		if min < max {
			cfg.MinInterpVolume = min
			cfg.MaxInterpVolume = max
		}
	}
}

// WithVolumeScale overrides the raw-unit to liter conversion factor.
func WithVolumeScale(scale float64) Option {
	return func(cfg *Config) {
		if scale > 0 {
			cfg.VolumeScale = scale
		}
	}
}

// WithTimeScale overrides the sampling interval in seconds.
func WithTimeScale(scale float64) Option {
	return func(cfg *Config) {
		if scale > 0 {
			cfg.TimeScale = scale
		}
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
