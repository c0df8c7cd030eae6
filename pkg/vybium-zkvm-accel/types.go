package vybiumzkvmaccel

import (
	"math/big"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/jets"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/noun"
)

// FieldModulus is the base field modulus, 2^32 - 5.
const FieldModulus uint64 = core.P

// Sponge geometry of the tip5 permutation and its hash-10 mode.
const (
	// StateSize is the permutation width in field words
	StateSize = core.StateSize

	// Rate is the number of state words exposed to input
	Rate = core.Rate

	// DigestLength is the number of words in a hash-10 digest
	DigestLength = core.DigestLength
)

// State represents one 16-word permutation state
type State = core.State

// Digest represents a 5-word hash-10 output
type Digest = core.Digest

// Noun represents a tree value, either an Atom or a Cell
type Noun = noun.Noun

// Atom represents a leaf noun holding an arbitrary-precision unsigned integer
type Atom = noun.Atom

// Cell represents an ordered pair of nouns
type Cell = noun.Cell

// Kernel represents one execution strategy for the tip5 primitives
type Kernel = jets.Kernel

// Dispatcher routes tree-encoded calls to one kernel
type Dispatcher = jets.Dispatcher

// NewAtom builds an atom from a machine word.
func NewAtom(v uint64) Atom {
	return noun.D(v)
}

// NewBigAtom builds an atom from an arbitrary-precision value.
func NewBigAtom(v *big.Int) (Atom, error) {
	a, err := noun.FromBig(v)
	if err != nil {
		return Atom{}, wrapError("building atom", err)
	}
	return a, nil
}

// NewCell builds a cell from head and tail.
func NewCell(head, tail Noun) Cell {
	return noun.T(head, tail)
}

// NewList builds a right-nested list of word atoms terminated by the zero atom.
func NewList(words ...uint64) Noun {
	return noun.List(words...)
}

// NewCallSubject wraps a sample the way the interpreter builds a gate
// subject, [battery [sample context]], placing the argument at axis 6 where
// the dispatchers look for it.
func NewCallSubject(sample Noun) Noun {
	return noun.T(noun.D(0), noun.T(sample, noun.D(0)))
}

// Slot returns the subtree of n at the given axis.
func Slot(n Noun, axis uint64) (Noun, error) {
	s, err := noun.Slot(n, axis)
	if err != nil {
		return nil, wrapError("axis lookup", err)
	}
	return s, nil
}
