package ranklist

import (
	randv2 "math/rand/v2"
)

// Less reports whether a orders strictly before b. Keys compare equal
// when neither orders before the other; the list never needs more than
// this from the key type, so duplicates are first-class.
type Less[K any] func(a, b K) bool

// DefaultMaxHeight is the tower height ceiling used when no option
// overrides it. It comfortably covers collections far beyond practical
// in-memory sizes; exceeding it is a capacity sizing decision for the
// caller, not a runtime failure.
const DefaultMaxHeight = 32

// Config holds construction parameters for a List.
type Config struct {
	maxHeight int
	source    randv2.Source
}

// Option adjusts a Config.
type Option func(*Config)

// NewConfig returns a Config with default values.
func NewConfig() Config {
	return Config{maxHeight: DefaultMaxHeight}
}

// WithMaxHeight sets the fixed tower height ceiling. Values below 1
// are raised to 1 and values above 64 are lowered to 64.
func WithMaxHeight(h int) Option {
	return func(c *Config) {
		if h < 1 {
			h = 1
		}
		if h > 64 {
			h = 64
		}
		c.maxHeight = h
	}
}

// WithRandSource replaces the height sampler's randomness source.
// Tests use this to drive deterministic tower heights.
func WithRandSource(src randv2.Source) Option {
	return func(c *Config) { c.source = src }
}

// WithRandSeed seeds the default PCG source, making runs reproducible.
func WithRandSeed(seed uint64) Option {
	return func(c *Config) { c.source = randv2.NewPCG(seed, seed) }
}
