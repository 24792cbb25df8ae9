package monkey

import (
	"errors"
	"testing"

	"github.com/bouk/monkey"
	"github.com/stretchr/testify/require"
)

// PatchGuard is a type alias.
type PatchGuard = monkey.PatchGuard

// ErrMonkey is used to return an error in patch function.
var ErrMonkey = errors.New("monkey error")

// IsMonkeyError is used to confirm ErrMonkey is in the error chain.
func IsMonkeyError(t testing.TB, err error) {
	require.True(t, errors.Is(err, ErrMonkey), "not a monkey error: %v", err)
}

// Patch is a wrapper about monkey.Patch.
func Patch(target, replacement interface{}) *PatchGuard {
	return monkey.Patch(target, replacement)
}
