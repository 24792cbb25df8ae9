// Package rand implements a wrapper around a pseudo random byte
// generator that reseeds it after it has produced a certain number
// of bytes.
package rand

// Rand is the capability set of a pseudo random byte generator.
// Implementations are not required to be safe for concurrent use,
// callers that share one generator must lock around it.
type Rand interface {
	// Uint32 is used to generate a random uint32.
	Uint32() uint32

	// Uint64 is used to generate a random uint64.
	Uint64() uint64

	// Fill is used to fill b with random bytes, implementations
	// must handle their own failures.
	Fill(b []byte)

	// TryFill is used to fill b with random bytes, it reports
	// the failure to the caller instead of handling it.
	TryFill(b []byte) error
}

// SeedFunc is used to construct a fresh generator instance, it
// consumes seed bytes from source. Any generator that can be built
// this way can be wrapped by ReseedingRand.
type SeedFunc func(source Rand) (Rand, error)
