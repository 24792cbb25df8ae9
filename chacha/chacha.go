// Package chacha implements a deterministic generator that outputs
// the ChaCha20 keystream for a seed. Equal seeds always produce equal
// byte streams, which makes it a good wrapped generator for
// ReseedingRand: reseeding from the same seed bytes reproduces the
// same internal state.
package chacha

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20"

	"github.com/canndrew/rand"
)

// SeedSize is the seed size that NewRand needs.
const SeedSize = 32

// Rand is a ChaCha20 keystream generator, it is not safe for
// concurrent use.
type Rand struct {
	cipher *chacha20.Cipher
}

// NewRand is used to create a ChaCha20 generator from a seed.
func NewRand(seed [SeedSize]byte) (*Rand, error) {
	nonce := make([]byte, chacha20.NonceSize)
	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create chacha20 cipher")
	}
	return &Rand{cipher: cipher}, nil
}

// FromSource is a rand.SeedFunc, it builds a generator from seed
// bytes drawn from source. A classified source error is passed
// through unchanged so the caller can read its kind.
func FromSource(source rand.Rand) (rand.Rand, error) {
	seed := [SeedSize]byte{}
	err := source.TryFill(seed[:])
	if err != nil {
		return nil, err
	}
	return NewRand(seed)
}

// Uint32 is used to generate a random uint32 from the keystream.
func (r *Rand) Uint32() uint32 {
	b := make([]byte, 4)
	r.cipher.XORKeyStream(b, b)
	return binary.LittleEndian.Uint32(b)
}

// Uint64 is used to generate a random uint64 from the keystream.
func (r *Rand) Uint64() uint64 {
	b := make([]byte, 8)
	r.cipher.XORKeyStream(b, b)
	return binary.LittleEndian.Uint64(b)
}

// Fill is used to fill b with keystream bytes, existing content in
// b is discarded.
func (r *Rand) Fill(b []byte) {
	for i := 0; i < len(b); i++ {
		b[i] = 0
	}
	r.cipher.XORKeyStream(b, b)
}

// TryFill is used to fill b with keystream bytes, it never fails.
func (r *Rand) TryFill(b []byte) error {
	r.Fill(b)
	return nil
}
