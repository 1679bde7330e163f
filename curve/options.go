package curve

const (
	// DefaultVolumeScale converts raw device units (milliliters) to liters.
	DefaultVolumeScale = 0.001

	// DefaultTimeScale is the sampling interval in seconds; 0.01 denotes
	// volume sampled every 10 milliseconds.
	DefaultTimeScale = 0.01
)

// Config holds the scales applied during curve derivation.
type Config struct {
	VolumeScale float64 // raw units per liter
	TimeScale   float64 // seconds per sample
}

// DefaultConfig returns the scales used by the UK Biobank field-3066 device.
func DefaultConfig() Config {
	return Config{
		VolumeScale: DefaultVolumeScale,
		TimeScale:   DefaultTimeScale,
	}
}

// Option mutates a Config.
type Option func(*Config)

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
