package mock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/canndrew/rand"
)

func TestStepRand(t *testing.T) {
	t.Run("step", func(t *testing.T) {
		sr := NewStepRand(10, 2)
		require.Equal(t, uint64(10), sr.Uint64())
		require.Equal(t, uint64(12), sr.Uint64())
		require.Equal(t, uint32(14), sr.Uint32())
	})

	t.Run("constant", func(t *testing.T) {
		sr := NewStepRand(0, 0)
		b1 := make([]byte, 32)
		sr.Fill(b1)
		b2 := make([]byte, 32)
		require.NoError(t, sr.TryFill(b2))
		require.Equal(t, b1, b2)
	})

	t.Run("fill words", func(t *testing.T) {
		sr := NewStepRand(1, 1)
		b := make([]byte, 16)
		sr.Fill(b)
		expected := []byte{
			1, 0, 0, 0, 0, 0, 0, 0,
			2, 0, 0, 0, 0, 0, 0, 0,
		}
		require.Equal(t, expected, b)
	})

	t.Run("fill truncated tail", func(t *testing.T) {
		sr := NewStepRand(1, 1)
		b := make([]byte, 11)
		sr.Fill(b)
		expected := []byte{
			1, 0, 0, 0, 0, 0, 0, 0,
			2, 0, 0,
		}
		require.Equal(t, expected, b)
	})
}

func TestErrRand(t *testing.T) {
	er := NewErrRand(rand.KindNotReady)

	require.Equal(t, uint32(0), er.Uint32())
	require.Equal(t, uint64(0), er.Uint64())
	b := []byte{1, 2, 3}
	er.Fill(b)
	require.Equal(t, []byte{0, 0, 0}, b)

	for i := 1; i <= 3; i++ {
		err := er.TryFill(make([]byte, 8))
		require.Error(t, err)
		e, ok := err.(*rand.Error)
		require.True(t, ok)
		require.Equal(t, rand.KindNotReady, e.Kind)
		require.Equal(t, i, er.Calls())
	}
}
