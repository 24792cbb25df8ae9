// Package entropy implements a generator that reads the operating
// system entropy pool, it is the usual seed source for ReseedingRand.
package entropy

import (
	cr "crypto/rand"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/canndrew/rand"
)

// Source is a generator backed by the OS entropy pool. It holds no
// state, all instances read the same pool.
type Source struct{}

// NewSource is used to create an OS entropy source.
func NewSource() *Source {
	return new(Source)
}

// Uint32 is used to generate a random uint32, it panics if the
// entropy pool is unreadable.
func (s *Source) Uint32() uint32 {
	b := make([]byte, 4)
	s.Fill(b)
	return binary.LittleEndian.Uint32(b)
}

// Uint64 is used to generate a random uint64, it panics if the
// entropy pool is unreadable.
func (s *Source) Uint64() uint64 {
	b := make([]byte, 8)
	s.Fill(b)
	return binary.LittleEndian.Uint64(b)
}

// Fill is used to fill b with entropy. An unreadable entropy pool
// has no useful fallback for a seed source, so it panics.
func (s *Source) Fill(b []byte) {
	err := s.TryFill(b)
	if err != nil {
		panic(fmt.Sprintf("entropy: %s", err))
	}
}

// TryFill is used to fill b with entropy, failures are classified
// rand.KindUnavailable.
func (s *Source) TryFill(b []byte) error {
	_, err := io.ReadFull(cr.Reader, b)
	if err != nil {
		return rand.WrapError(rand.KindUnavailable, err, "failed to read OS entropy pool")
	}
	return nil
}
