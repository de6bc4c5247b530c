package core

// Config holds the per-call numeric settings of a convolution.
type Config struct {
	// BitDepth is the sample bit depth, in [MinBitDepth, MaxBitDepth].
	BitDepth int

	// Round0 is the first-stage shift of the horizontal pass. A negative
	// value means DefaultRound0(BitDepth).
	Round0 int
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns 10-bit settings with the derived round_0.
func DefaultConfig() Config {
	return Config{
		BitDepth: 10,
		Round0:   -1,
	}
}

// WithBitDepth sets the sample bit depth. Out-of-range values are ignored.
func WithBitDepth(bd int) Option {
	return func(cfg *Config) {
		if ValidBitDepth(bd) {
			cfg.BitDepth = bd
		}
	}
}

// WithRound0 sets the first-stage horizontal shift. Values outside
// [0, FilterBits] are ignored.
func WithRound0(round0 int) Option {
	return func(cfg *Config) {
		if round0 >= 0 && round0 <= FilterBits {
			cfg.Round0 = round0
		}
	}
}

// ApplyOptions applies zero or more options to the default config and
// resolves the derived round_0.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Round0 < 0 {
		cfg.Round0 = DefaultRound0(cfg.BitDepth)
	}
	return cfg
}
