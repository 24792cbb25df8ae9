// Package mock provides deterministic generators for tests, both for
// this module and for consumers that wrap their own generators.
package mock

import (
	"encoding/binary"

	"github.com/canndrew/rand"
)

// StepRand is a generator that returns value and then adds increment
// on every call, output bytes are the little endian words. It never
// fails, a zero increment gives a constant stream.
type StepRand struct {
	value     uint64
	increment uint64
}

// NewStepRand is used to create a counting generator.
func NewStepRand(value, increment uint64) *StepRand {
	return &StepRand{value: value, increment: increment}
}

func (sr *StepRand) next() uint64 {
	value := sr.value
	sr.value += sr.increment
	return value
}

// Uint32 is used to generate the low half of the next step.
func (sr *StepRand) Uint32() uint32 {
	return uint32(sr.next())
}

// Uint64 is used to generate the next step.
func (sr *StepRand) Uint64() uint64 {
	return sr.next()
}

// Fill is used to fill b with little endian steps, the last word is
// truncated if b is not a multiple of eight bytes.
func (sr *StepRand) Fill(b []byte) {
	for len(b) >= 8 {
		binary.LittleEndian.PutUint64(b, sr.next())
		b = b[8:]
	}
	if len(b) > 0 {
		word := make([]byte, 8)
		binary.LittleEndian.PutUint64(word, sr.next())
		copy(b, word)
	}
}

// TryFill is used to fill b with little endian steps, it never fails.
func (sr *StepRand) TryFill(b []byte) error {
	sr.Fill(b)
	return nil
}

// ErrRand is a generator whose fallible operations always fail with
// the configured kind, the infallible operations return zeros.
type ErrRand struct {
	kind  rand.Kind
	calls int
}

// NewErrRand is used to create an always failing generator.
func NewErrRand(kind rand.Kind) *ErrRand {
	return &ErrRand{kind: kind}
}

// Uint32 is used to generate zero.
func (er *ErrRand) Uint32() uint32 {
	return 0
}

// Uint64 is used to generate zero.
func (er *ErrRand) Uint64() uint64 {
	return 0
}

// Fill is used to fill b with zeros.
func (er *ErrRand) Fill(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0
	}
}

// TryFill always fails with the configured kind, every call returns
// a fresh error value.
func (er *ErrRand) TryFill(b []byte) error {
	er.calls++
	return rand.NewError(er.kind, "mock generator error")
}

// Calls is used to count the failed TryFill calls.
func (er *ErrRand) Calls() int {
	return er.calls
}
