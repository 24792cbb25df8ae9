package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testGenerator struct {
	Threshold uint64 `toml:"threshold"`
	Source    *testSource
}

type testSource struct {
	Name string `toml:"name"`
}

func TestMarshal(t *testing.T) {
	test := testGenerator{Threshold: 32}
	b, err := Marshal(test)
	require.NoError(t, err)
	t.Logf("\n%s", b)
}

func TestUnmarshal(t *testing.T) {
	test := testGenerator{}
	data := []byte(`
      threshold = 32

      [Source]
        name = "os"
`)
	err := Unmarshal(data, &test)
	require.NoError(t, err)

	require.Equal(t, uint64(32), test.Threshold)
	require.Equal(t, "os", test.Source.Name)

	err = Unmarshal([]byte{0x00}, &test)
	require.Error(t, err)
}

func TestUnmarshalWithUnknownField(t *testing.T) {
	a := testGenerator{Threshold: 32}
	a.Source = &testSource{Name: "os"}
	data, err := Marshal(&a)
	require.NoError(t, err)

	b := new(testSource)
	err = Unmarshal(data, b)
	require.Error(t, err)
	t.Log(err)
}
