// Package noun models the interpreter's universal tree values: a noun is
// either an atom (an arbitrary-precision unsigned integer) or a cell (an
// ordered pair of nouns). Nouns are immutable after construction; the
// constructors copy atom values so callers cannot alias internal state.
package noun

import (
	"errors"
	"fmt"
	"math/big"
	"math/bits"
)

// Noun is a tree value, either an Atom or a Cell.
type Noun interface {
	isNoun()
}

// Atom is a leaf noun holding an unsigned integer of arbitrary magnitude.
type Atom struct {
	value *big.Int
}

// Cell is an ordered pair of nouns.
type Cell struct {
	head Noun
	tail Noun
}

func (Atom) isNoun() {}
func (Cell) isNoun() {}

// ErrAxis reports an axis lookup that descends into an atom.
var ErrAxis = errors.New("axis descends into an atom")

// ErrNegativeAtom reports an attempt to build an atom from a negative value.
var ErrNegativeAtom = errors.New("atom value is negative")

// D builds an atom from a machine word.
func D(v uint64) Atom {
	return Atom{value: new(big.Int).SetUint64(v)}
}

// FromBig builds an atom from an arbitrary-precision value.
func FromBig(v *big.Int) (Atom, error) {
	if v.Sign() < 0 {
		return Atom{}, fmt.Errorf("atom from %s: %w", v, ErrNegativeAtom)
	}
	return Atom{value: new(big.Int).Set(v)}, nil
}

// T builds a cell from head and tail.
func T(head, tail Noun) Cell {
	return Cell{head: head, tail: tail}
}

// Big returns a copy of the atom's value.
func (a Atom) Big() *big.Int {
	return new(big.Int).Set(a.value)
}

// Uint64 returns the atom's value as a machine word. The second result is
// false when the value does not fit in 64 bits.
func (a Atom) Uint64() (uint64, bool) {
	if !a.value.IsUint64() {
		return 0, false
	}
	return a.value.Uint64(), true
}

// IsZero reports whether the atom is the zero atom.
func (a Atom) IsZero() bool {
	return a.value.Sign() == 0
}

// Head returns the left noun of the pair.
func (c Cell) Head() Noun {
	return c.head
}

// Tail returns the right noun of the pair.
func (c Cell) Tail() Noun {
	return c.tail
}

// List builds a right-nested list of word atoms terminated by the zero atom,
// so that List(a, b, c) decodes back to [a, b, c].
func List(words ...uint64) Noun {
	list := Noun(D(0))
	for i := len(words) - 1; i >= 0; i-- {
		list = T(D(words[i]), list)
	}
	return list
}

// Slot returns the subtree of n at the given axis: axis 1 is n itself, axis
// 2a is the head of axis a, and axis 2a+1 its tail. Axis 0 is invalid, and
// descending into an atom fails with ErrAxis.
func Slot(n Noun, axis uint64) (Noun, error) {
	if axis == 0 {
		return nil, fmt.Errorf("axis 0: %w", ErrAxis)
	}
	// Walk the axis bits below the leading one, most significant first.
	for shift := bits.Len64(axis) - 2; shift >= 0; shift-- {
		cell, ok := n.(Cell)
		if !ok {
			return nil, fmt.Errorf("axis %d: %w", axis, ErrAxis)
		}
		if axis>>uint(shift)&1 == 0 {
			n = cell.head
		} else {
			n = cell.tail
		}
	}
	return n, nil
}
