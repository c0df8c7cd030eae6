package jets

import (
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/ref"
)

// Kernel is one execution strategy for the tip5 primitives. The accelerated
// and reference kernels compute the identical function; any divergence
// between their decoded outputs is a correctness defect, never a tolerable
// approximation.
type Kernel interface {
	// Name identifies the kernel in parity reports.
	Name() string
	// Permute applies the tip5 permutation to state in place.
	Permute(state *core.State) error
	// Hash10 hashes ten field words into a five-word digest.
	Hash10(input [core.Rate]uint64) (core.Digest, error)
}

type acceleratedKernel struct{}

// NewAcceleratedKernel returns the native uint64 kernel.
func NewAcceleratedKernel() Kernel {
	return acceleratedKernel{}
}

func (acceleratedKernel) Name() string { return "accelerated" }

func (acceleratedKernel) Permute(state *core.State) error {
	return core.Permute(state)
}

func (acceleratedKernel) Hash10(input [core.Rate]uint64) (core.Digest, error) {
	return core.Hash10(input)
}

type referenceKernel struct{}

// NewReferenceKernel returns the slow big.Int kernel the accelerated path
// substitutes for.
func NewReferenceKernel() Kernel {
	return referenceKernel{}
}

func (referenceKernel) Name() string { return "reference" }

func (referenceKernel) Permute(state *core.State) error {
	return ref.Permute(state)
}

func (referenceKernel) Hash10(input [core.Rate]uint64) (core.Digest, error) {
	return ref.Hash10(input)
}
