// Package jets holds the acceleration boundary: it receives tree-encoded
// calls from the interpreter, marshals them into native arrays, invokes a
// kernel, and marshals the result back. Decode failures always surface to
// the caller; there is no silent fallback to a partial or default result.
package jets

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/noun"
)

// sampleAxis locates the argument within the call subject: a gate subject
// is [battery [sample context]], so the sample sits at axis 6.
const sampleAxis = 6

// Dispatcher routes tree-encoded calls to one kernel.
type Dispatcher struct {
	kernel Kernel
}

// NewDispatcher builds a dispatcher over the given kernel.
func NewDispatcher(kernel Kernel) *Dispatcher {
	return &Dispatcher{kernel: kernel}
}

// Kernel returns the kernel this dispatcher routes to.
func (d *Dispatcher) Kernel() Kernel {
	return d.kernel
}

// sample fetches the argument noun from the call subject.
func sample(subject noun.Noun) (noun.Noun, error) {
	s, err := noun.Slot(subject, sampleAxis)
	if err != nil {
		return nil, fmt.Errorf("sample at axis %d: %w", sampleAxis, ErrShapeMismatch)
	}
	return s, nil
}

// Permutation accelerates the full 16-word permutation: the sample is a
// 16-element word list, and the result is the permuted list.
func (d *Dispatcher) Permutation(subject noun.Noun) (noun.Noun, error) {
	arg, err := sample(subject)
	if err != nil {
		return nil, err
	}
	words, err := DecodeWords(arg, core.StateSize)
	if err != nil {
		return nil, fmt.Errorf("permutation argument: %w", err)
	}

	var state core.State
	copy(state[:], words)
	if err := d.kernel.Permute(&state); err != nil {
		return nil, fmt.Errorf("%s permutation: %w", d.kernel.Name(), err)
	}
	return EncodeWords(state[:]), nil
}

// Hash10 accelerates hash-10: the sample is a 10-element word list, and the
// result is the 5-element digest list.
func (d *Dispatcher) Hash10(subject noun.Noun) (noun.Noun, error) {
	arg, err := sample(subject)
	if err != nil {
		return nil, err
	}
	words, err := DecodeWords(arg, core.Rate)
	if err != nil {
		return nil, fmt.Errorf("hash-10 argument: %w", err)
	}

	var input [core.Rate]uint64
	copy(input[:], words)
	digest, err := d.kernel.Hash10(input)
	if err != nil {
		return nil, fmt.Errorf("%s hash-10: %w", d.kernel.Name(), err)
	}
	return EncodeWords(digest[:]), nil
}
