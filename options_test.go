package rand

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadOptions(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		opts, err := LoadOptions(nil)
		require.NoError(t, err)
		require.Equal(t, DefaultThreshold, opts.Threshold)
	})

	t.Run("common", func(t *testing.T) {
		opts, err := LoadOptions([]byte("threshold = 1024"))
		require.NoError(t, err)
		require.Equal(t, uint64(1024), opts.Threshold)
	})

	t.Run("invalid data", func(t *testing.T) {
		_, err := LoadOptions([]byte{0x00})
		require.Error(t, err)
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := LoadOptions([]byte("foo = 1"))
		require.Error(t, err)
		t.Log(err)
	})
}

func TestOptions_Apply(t *testing.T) {
	seed := seedFail(KindTransient)

	t.Run("common", func(t *testing.T) {
		opts := &Options{Threshold: 1024}
		rr, err := opts.Apply(new(zeroRand), seed, new(zeroRand))
		require.NoError(t, err)
		require.Equal(t, int64(1024), rr.remaining)
	})

	t.Run("no generator", func(t *testing.T) {
		opts := &Options{Threshold: 1024}
		_, err := opts.Apply(nil, seed, new(zeroRand))
		require.EqualError(t, err, "failed to apply options: no generator")
	})

	t.Run("no seed function", func(t *testing.T) {
		opts := &Options{Threshold: 1024}
		_, err := opts.Apply(new(zeroRand), nil, new(zeroRand))
		require.EqualError(t, err, "failed to apply options: no seed function")
	})

	t.Run("no seed source", func(t *testing.T) {
		opts := &Options{Threshold: 1024}
		_, err := opts.Apply(new(zeroRand), seed, nil)
		require.EqualError(t, err, "failed to apply options: no seed source")
	})

	t.Run("threshold overflow", func(t *testing.T) {
		opts := &Options{Threshold: math.MaxInt64 + 1}
		_, err := opts.Apply(new(zeroRand), seed, new(zeroRand))
		require.Error(t, err)
	})
}
