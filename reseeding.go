package rand

import (
	"math"

	"github.com/canndrew/rand/logger"
)

const logSrc = "reseeding"

// ReseedingRand is a wrapper around any generator which reseeds the
// underlying generator after it has produced a certain number of
// random bytes.
//
// Reseeding is a form of security in depth: it bounds the amount of
// output that can ever be attributed to a single internal state, even
// if a weakness is found in the wrapped generator later.
//
// If reseeding fails, TryFill is the only method that reports it. The
// other methods never fail, they keep producing output from the
// current state and delay the next reseed attempt depending on how
// serious the failure was. Use Uint32, Uint64 and Fill unless reseed
// errors must be handled explicitly.
//
// ReseedingRand is not safe for concurrent use.
type ReseedingRand struct {
	rand      Rand
	seed      SeedFunc
	source    Rand
	threshold int64
	remaining int64 // bytes until the next reseed, may go negative
	logger    logger.Logger
}

// NewReseedingRand is used to create a reseeding generator. r is the
// generator whose output is returned to callers, seed is used to build
// the replacement instances of r, source provides the seed bytes and
// threshold is the number of generated bytes after which to reseed.
// It panics if threshold overflows the byte counter.
func NewReseedingRand(r Rand, threshold uint64, seed SeedFunc, source Rand) *ReseedingRand {
	if threshold > math.MaxInt64 {
		panic("rand: reseed threshold overflows the byte counter")
	}
	return &ReseedingRand{
		rand:      r,
		seed:      seed,
		source:    source,
		threshold: int64(threshold),
		remaining: int64(threshold),
		logger:    logger.Discard,
	}
}

// SetLogger is used to set the logger about reseed events, nil
// restores the default discard logger.
func (rr *ReseedingRand) SetLogger(lg logger.Logger) {
	if lg == nil {
		lg = logger.Discard
	}
	rr.logger = lg
}

// Reseed is used to reseed the wrapped generator. Behaviour is
// identical to TryReseed, the error is squelched: failures from the
// seed source are not fatal, they only delay the next attempt.
func (rr *ReseedingRand) Reseed() {
	_ = rr.TryReseed()
}

// TryReseed is used to reseed the wrapped generator, a fresh instance
// built from the seed source replaces the current one. On failure the
// current instance is kept and the next attempt is delayed by an
// amount that depends on the error kind; because reseeding is retried
// later the returned kind is always KindTransient, the original cause
// is preserved.
func (rr *ReseedingRand) TryReseed() error {
	rr.logf(logger.Debug, "reseed after %d generated bytes", rr.threshold-rr.remaining)
	r, err := rr.seed(rr.source)
	if err == nil {
		rr.rand = r
		rr.remaining = rr.threshold
		return nil
	}
	e := asError(err)
	var delay int64
	switch {
	case e.Kind == KindTransient:
		delay = 0
	case e.Kind.ShouldRetry():
		delay = rr.threshold >> 8
	default:
		delay = rr.threshold
	}
	rr.logf(logger.Warning, "delay reseed by %d bytes, seed source: %s", delay, e)
	rr.remaining = delay
	return &Error{Kind: KindTransient, Err: e.Err}
}

// Uint32 is used to generate a random uint32, reseed errors are
// handled by delaying the next attempt.
func (rr *ReseedingRand) Uint32() uint32 {
	value := rr.rand.Uint32()
	rr.remaining -= 4
	if rr.remaining <= 0 {
		rr.Reseed()
	}
	return value
}

// Uint64 is used to generate a random uint64, reseed errors are
// handled by delaying the next attempt.
func (rr *ReseedingRand) Uint64() uint64 {
	value := rr.rand.Uint64()
	rr.remaining -= 8
	if rr.remaining <= 0 {
		rr.Reseed()
	}
	return value
}

// Fill is used to fill b with random bytes, reseed errors are handled
// by delaying the next attempt.
func (rr *ReseedingRand) Fill(b []byte) {
	rr.rand.Fill(b)
	rr.remaining -= int64(len(b))
	if rr.remaining <= 0 {
		rr.Reseed()
	}
}

// TryFill is used to fill b with random bytes and report reseed
// errors to the caller. A failure of the wrapped generator itself is
// the more serious condition: it forces a reseed attempt on the next
// call and takes priority over any reseed error from the same call.
func (rr *ReseedingRand) TryFill(b []byte) error {
	fillErr := rr.rand.TryFill(b)
	rr.remaining -= int64(len(b))
	var reseedErr error
	if rr.remaining <= 0 {
		reseedErr = rr.TryReseed()
	}
	if fillErr != nil {
		rr.remaining = 0
		return fillErr
	}
	return reseedErr
}

func (rr *ReseedingRand) logf(lv logger.Level, format string, log ...interface{}) {
	rr.logger.Printf(lv, logSrc, format, log...)
}
