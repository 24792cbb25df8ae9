package rand

import (
	"math"

	"github.com/creasty/defaults"
	"github.com/pkg/errors"

	"github.com/canndrew/rand/internal/patch/toml"
)

// DefaultThreshold is the default number of generated bytes after
// which to reseed, 32 MiB.
const DefaultThreshold uint64 = 32 * 1024 * 1024

// Options contains options about ReseedingRand.
type Options struct {
	// Threshold is the number of generated bytes after which to
	// reseed the wrapped generator.
	Threshold uint64 `toml:"threshold" default:"33554432"`
}

// LoadOptions is used to load options from TOML data, absent fields
// get the default values.
func LoadOptions(data []byte) (*Options, error) {
	opts := new(Options)
	err := defaults.Set(opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to set default options")
	}
	err = toml.Unmarshal(data, opts)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load options")
	}
	return opts, nil
}

// Apply is used to create a ReseedingRand from options. Unlike
// NewReseedingRand it returns an error about invalid options instead
// of panicking, options usually come from external configuration.
func (opts *Options) Apply(r Rand, seed SeedFunc, source Rand) (*ReseedingRand, error) {
	const prefix = "failed to apply options"
	if r == nil {
		return nil, errors.New(prefix + ": no generator")
	}
	if seed == nil {
		return nil, errors.New(prefix + ": no seed function")
	}
	if source == nil {
		return nil, errors.New(prefix + ": no seed source")
	}
	if opts.Threshold > math.MaxInt64 {
		return nil, errors.Errorf("%s: threshold %d overflows the byte counter", prefix, opts.Threshold)
	}
	return NewReseedingRand(r, opts.Threshold, seed, source), nil
}
