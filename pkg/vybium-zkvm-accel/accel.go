package vybiumzkvmaccel

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/jets"
)

// Accelerated returns the native uint64 kernel.
func Accelerated() Kernel {
	return jets.NewAcceleratedKernel()
}

// Reference returns the slow big.Int kernel the accelerated path stands in for.
func Reference() Kernel {
	return jets.NewReferenceKernel()
}

// NewDispatcher builds a dispatcher over the given kernel.
func NewDispatcher(kernel Kernel) *Dispatcher {
	return jets.NewDispatcher(kernel)
}

// Permute applies the tip5 permutation to state in place using the
// accelerated kernel. Every word must be a canonical field element.
func Permute(state *State) error {
	return wrapError("permutation", core.Permute(state))
}

// Hash10 hashes exactly ten field words into a five-word digest using the
// accelerated kernel.
func Hash10(input [Rate]uint64) (Digest, error) {
	digest, err := core.Hash10(input)
	if err != nil {
		return Digest{}, wrapError("hash-10", err)
	}
	return digest, nil
}

// PermutationCall accelerates a tree-encoded permutation call: the subject
// carries a 16-element word list at the sample axis, and the result is the
// permuted list.
func PermutationCall(subject Noun) (Noun, error) {
	result, err := jets.NewDispatcher(jets.NewAcceleratedKernel()).Permutation(subject)
	if err != nil {
		return nil, wrapError("permutation call", err)
	}
	return result, nil
}

// Hash10Call accelerates a tree-encoded hash-10 call: the subject carries a
// 10-element word list at the sample axis, and the result is the digest list.
func Hash10Call(subject Noun) (Noun, error) {
	result, err := jets.NewDispatcher(jets.NewAcceleratedKernel()).Hash10(subject)
	if err != nil {
		return nil, wrapError("hash-10 call", err)
	}
	return result, nil
}

// VerifyPermuteParity runs every state through both kernels and fails on the
// first divergence. A divergence is a correctness defect in the accelerated
// path, not a recoverable condition.
func VerifyPermuteParity(states []State) error {
	accelerated, reference := Accelerated(), Reference()
	for n, s := range states {
		fast, slow := s, s
		if err := accelerated.Permute(&fast); err != nil {
			return wrapError(fmt.Sprintf("parity case %d (%s)", n, accelerated.Name()), err)
		}
		if err := reference.Permute(&slow); err != nil {
			return wrapError(fmt.Sprintf("parity case %d (%s)", n, reference.Name()), err)
		}
		if fast != slow {
			return &AccelError{
				Code:    ErrUnknown,
				Message: fmt.Sprintf("parity case %d: permutation diverged: accelerated %v, reference %v", n, fast, slow),
			}
		}
	}
	return nil
}

// VerifyHash10Parity runs every input through both kernels and fails on the
// first divergence.
func VerifyHash10Parity(inputs [][Rate]uint64) error {
	accelerated, reference := Accelerated(), Reference()
	for n, input := range inputs {
		fast, err := accelerated.Hash10(input)
		if err != nil {
			return wrapError(fmt.Sprintf("parity case %d (%s)", n, accelerated.Name()), err)
		}
		slow, err := reference.Hash10(input)
		if err != nil {
			return wrapError(fmt.Sprintf("parity case %d (%s)", n, reference.Name()), err)
		}
		if fast != slow {
			return &AccelError{
				Code:    ErrUnknown,
				Message: fmt.Sprintf("parity case %d: hash-10 diverged: accelerated %v, reference %v", n, fast, slow),
			}
		}
	}
	return nil
}
