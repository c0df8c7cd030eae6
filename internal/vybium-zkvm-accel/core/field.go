package core

import (
	"errors"
	"fmt"
	"math/bits"
)

// P is the base field modulus, 2^32 - 5.
const P uint64 = 4294967291

// Montgomery parameters for radix R = 2^32.
const (
	rModP  uint64 = 5          // R mod P
	r2ModP uint64 = 25         // R^2 mod P
	nPrime uint64 = 0xCCCCCCCD // -P^-1 mod R
)

// ErrOutOfRange reports a word outside the canonical range [0, P).
var ErrOutOfRange = errors.New("field element out of range")

// Reduce returns x mod P.
func Reduce(x uint64) uint64 {
	return x % P
}

// addMod returns a + b mod P. Both operands must be canonical.
func addMod(a, b uint64) uint64 {
	s := a + b
	if s >= P {
		s -= P
	}
	return s
}

// montMul returns a * b * R^-1 mod P. Both operands must be below 2^32;
// canonical operands yield a canonical result.
func montMul(a, b uint64) uint64 {
	t := a * b
	// m = (t mod R) * nPrime mod R; the masked product only sees the low half of t.
	m := (t * nPrime) & 0xFFFFFFFF
	// t + m*P is a multiple of R; divide by R keeping the 65th bit.
	lo, carry := bits.Add64(t, m*P, 0)
	u := (lo >> 32) | (carry << 32)
	if u >= P {
		u -= P
	}
	return u
}

// montify maps a canonical word into Montgomery form, x*R mod P.
func montify(x uint64) uint64 {
	return montMul(x, r2ModP)
}

// montReduce maps a Montgomery-form word back to canonical form, x*R^-1 mod P.
func montReduce(x uint64) uint64 {
	return montMul(x, 1)
}

// MontMul returns a * b * R^-1 mod P, rejecting non-canonical operands.
func MontMul(a, b uint64) (uint64, error) {
	if a >= P {
		return 0, fmt.Errorf("montgomery multiply lhs %d: %w", a, ErrOutOfRange)
	}
	if b >= P {
		return 0, fmt.Errorf("montgomery multiply rhs %d: %w", b, ErrOutOfRange)
	}
	return montMul(a, b), nil
}

// Montify converts x into Montgomery form. It is the exact inverse of
// MontReduce over [0, P).
func Montify(x uint64) (uint64, error) {
	if x >= P {
		return 0, fmt.Errorf("montify %d: %w", x, ErrOutOfRange)
	}
	return montify(x), nil
}

// MontReduce converts x out of Montgomery form. It is the exact inverse of
// Montify over [0, P).
func MontReduce(x uint64) (uint64, error) {
	if x >= P {
		return 0, fmt.Errorf("montgomery reduction of %d: %w", x, ErrOutOfRange)
	}
	return montReduce(x), nil
}
