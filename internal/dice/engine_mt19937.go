package dice

import (
	"crypto/rand"
	"encoding/binary"
)

// mt19937Engine is a from-scratch implementation of the classical
// 32-bit Mersenne Twister (MT19937). No packaged MT19937 dependency
// appears anywhere in the retrieved reference corpus, so this is
// written as core domain logic for the "deterministic, well-known
// PRNG" engine kind spec §4.1 names explicitly, not as a stand-in for
// a library concern another component already owns.
type mt19937Engine struct {
	state [624]uint32
	index int
	span  uint64
}

const (
	mtN         = 624
	mtM         = 397
	mtMatrixA   = 0x9908b0df
	mtUpperMask = 0x80000000
	mtLowerMask = 0x7fffffff
)

// NewMT19937Engine returns an Engine backed by the Mersenne Twister,
// seeded from a cryptographically random 32-bit value.
func NewMT19937Engine() Engine {
	var b [4]byte
	_, _ = rand.Read(b[:])
	e := &mt19937Engine{index: mtN}
	e.seed(binary.LittleEndian.Uint32(b[:]))
	return e
}

// NewMT19937EngineSeeded returns a Mersenne Twister engine seeded
// deterministically, for reproducible test fixtures.
func NewMT19937EngineSeeded(seed uint32) Engine {
	e := &mt19937Engine{index: mtN}
	e.seed(seed)
	return e
}

func (e *mt19937Engine) seed(s uint32) {
	e.state[0] = s
	for i := 1; i < mtN; i++ {
		prev := e.state[i-1]
		e.state[i] = uint32(1812433253*uint64(prev^(prev>>30)) + uint64(i))
	}
	e.index = mtN
}

func (e *mt19937Engine) twist() {
	for i := 0; i < mtN; i++ {
		y := (e.state[i] & mtUpperMask) | (e.state[(i+1)%mtN] & mtLowerMask)
		next := e.state[(i+mtM)%mtN] ^ (y >> 1)
		if y&1 != 0 {
			next ^= mtMatrixA
		}
		e.state[i] = next
	}
	e.index = 0
}

func (e *mt19937Engine) nextUint32() uint32 {
	if e.index >= mtN {
		e.twist()
	}
	y := e.state[e.index]
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18
	e.index++
	return y
}

func (e *mt19937Engine) next() uint64 {
	// Combine two 32-bit draws for a full 64-bit word so ranges wider
	// than 2^32 (unlikely for dice, routine for Real) still have
	// uniform coverage.
	hi := uint64(e.nextUint32())
	lo := uint64(e.nextUint32())
	return hi<<32 | lo
}

func (e *mt19937Engine) setRange(n uint64) { e.span = n }
func (e *mt19937Engine) name() string      { return "mt19937" }
