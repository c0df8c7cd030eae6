// Package ref carries the slow reference rendition of the tip5 primitives.
// It computes the same round schedule as the accelerated kernel but over
// math/big, standing in for the interpreted implementation the accelerated
// path substitutes. The two kernels share nothing beyond the canonical
// constant tables, so cross-kernel equality tests exercise two independent
// arithmetic machineries.
package ref

import (
	"fmt"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
)

// defaultField is shared, immutable after construction.
var defaultField = NewField()

// sbox raises x to the 7th power under Montgomery products.
func sbox(x *FieldElement) *FieldElement {
	x2 := x.MontMul(x)
	x3 := x2.MontMul(x)
	x6 := x3.MontMul(x3)
	return x6.MontMul(x)
}

// permute runs the full round schedule over canonical elements.
func permute(s []*FieldElement) {
	constants := core.RoundConstants()
	row := core.MDSRow()

	for r := 0; r < core.Rounds; r++ {
		for i := range s {
			s[i] = sbox(s[i])
		}
		mixed := make([]*FieldElement, core.StateSize)
		for i := 0; i < core.StateSize; i++ {
			acc := defaultField.Zero()
			for j := 0; j < core.StateSize; j++ {
				m := defaultField.NewElementFromUint64(row[(j-i+core.StateSize)%core.StateSize])
				acc = acc.Add(m.MontMul(s[j]))
			}
			mixed[i] = acc
		}
		for i := range s {
			c := defaultField.NewElementFromUint64(constants[r][i]).Montify()
			s[i] = mixed[i].Add(c)
		}
	}
}

// Permute applies the tip5 permutation to state in place.
func Permute(state *core.State) error {
	for i, w := range state {
		if err := defaultField.CheckWord(w); err != nil {
			return fmt.Errorf("permutation state word %d: %w", i, err)
		}
	}

	elems := make([]*FieldElement, core.StateSize)
	for i, w := range state {
		elems[i] = defaultField.NewElementFromUint64(w)
	}
	permute(elems)
	for i, e := range elems {
		state[i] = e.Uint64()
	}
	return nil
}

// Hash10 hashes ten field words into a five-word digest, mirroring the
// fixed-input-length sponge mode of the accelerated kernel.
func Hash10(input [core.Rate]uint64) (core.Digest, error) {
	for i, w := range input {
		if err := defaultField.CheckWord(w); err != nil {
			return core.Digest{}, fmt.Errorf("hash-10 input word %d: %w", i, err)
		}
	}

	elems := make([]*FieldElement, core.StateSize)
	for i, w := range input {
		elems[i] = defaultField.NewElementFromUint64(w).Montify()
	}
	one := defaultField.NewElementFromUint64(1).Montify()
	for i := core.Rate; i < core.StateSize; i++ {
		elems[i] = one
	}

	permute(elems)

	var d core.Digest
	for i := range d {
		d[i] = elems[i].MontReduce().Uint64()
	}
	return d, nil
}
