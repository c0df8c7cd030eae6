package jets

import (
	"errors"
	"fmt"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/noun"
)

// ErrArityMismatch reports a word list with the wrong element count.
var ErrArityMismatch = errors.New("list has wrong element count")

// ErrShapeMismatch reports an atom where a cell was expected, or vice versa.
var ErrShapeMismatch = errors.New("noun has wrong shape")

// DecodeWords reads a right-nested list of exactly count word atoms
// terminated by the zero atom. It only walks the caller's tree; no
// references into it survive the call.
func DecodeWords(n noun.Noun, count int) ([]uint64, error) {
	out := make([]uint64, 0, count)
	cur := n
	for i := 0; i < count; i++ {
		cell, ok := cur.(noun.Cell)
		if !ok {
			return nil, fmt.Errorf("list ends after %d of %d elements: %w", i, count, ErrArityMismatch)
		}
		atom, ok := cell.Head().(noun.Atom)
		if !ok {
			return nil, fmt.Errorf("element %d is a cell, want an atom: %w", i, ErrShapeMismatch)
		}
		w, ok := atom.Uint64()
		if !ok {
			return nil, fmt.Errorf("element %d exceeds 64 bits: %w", i, core.ErrOutOfRange)
		}
		out = append(out, w)
		cur = cell.Tail()
	}
	term, ok := cur.(noun.Atom)
	if !ok {
		return nil, fmt.Errorf("list continues past %d elements: %w", count, ErrArityMismatch)
	}
	if !term.IsZero() {
		return nil, fmt.Errorf("list terminator is %s, want 0: %w", term.Big(), ErrShapeMismatch)
	}
	return out, nil
}

// EncodeWords builds the list in reverse, last element adjacent to the zero
// terminator, so the decoded order matches the array order.
func EncodeWords(words []uint64) noun.Noun {
	return noun.List(words...)
}
