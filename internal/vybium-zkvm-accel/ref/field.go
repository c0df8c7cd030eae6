package ref

import (
	"fmt"
	"math/big"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
)

// Field carries the big.Int machinery for the reference kernel: the fixed
// modulus 2^32 - 5 together with the precomputed Montgomery radix values.
type Field struct {
	modulus *big.Int
	r       *big.Int // Montgomery radix, 2^32
	rInv    *big.Int // R^-1 mod P
}

// FieldElement represents one element of the field in canonical form.
type FieldElement struct {
	field *Field
	value *big.Int
}

// NewField constructs the reference field for the tip5 modulus.
func NewField() *Field {
	modulus := new(big.Int).SetUint64(core.P)
	r := new(big.Int).Lsh(big.NewInt(1), 32)
	rInv := new(big.Int).ModInverse(new(big.Int).Set(r), modulus)
	return &Field{modulus: modulus, r: r, rInv: rInv}
}

// Modulus returns the field modulus.
func (f *Field) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

// NewElement creates a field element, reducing value modulo the modulus.
func (f *Field) NewElement(value *big.Int) *FieldElement {
	normalized := new(big.Int).Mod(value, f.modulus)
	return &FieldElement{field: f, value: normalized}
}

// NewElementFromUint64 creates a field element from a uint64.
func (f *Field) NewElementFromUint64(value uint64) *FieldElement {
	return f.NewElement(new(big.Int).SetUint64(value))
}

// CheckWord rejects words outside the canonical range [0, P).
func (f *Field) CheckWord(w uint64) error {
	if w >= core.P {
		return fmt.Errorf("reference field word %d: %w", w, core.ErrOutOfRange)
	}
	return nil
}

// Zero returns the additive identity.
func (f *Field) Zero() *FieldElement {
	return f.NewElement(big.NewInt(0))
}

// Uint64 returns the canonical value of the element.
func (fe *FieldElement) Uint64() uint64 {
	return fe.value.Uint64()
}

// Add performs field addition.
func (fe *FieldElement) Add(other *FieldElement) *FieldElement {
	result := new(big.Int).Add(fe.value, other.value)
	return fe.field.NewElement(result)
}

// MontMul performs a Montgomery product, a * b * R^-1 mod P.
func (fe *FieldElement) MontMul(other *FieldElement) *FieldElement {
	result := new(big.Int).Mul(fe.value, other.value)
	result.Mul(result, fe.field.rInv)
	return fe.field.NewElement(result)
}

// Montify converts the element into Montgomery form, x * R mod P.
func (fe *FieldElement) Montify() *FieldElement {
	result := new(big.Int).Mul(fe.value, fe.field.r)
	return fe.field.NewElement(result)
}

// MontReduce converts the element out of Montgomery form, x * R^-1 mod P.
func (fe *FieldElement) MontReduce() *FieldElement {
	result := new(big.Int).Mul(fe.value, fe.field.rInv)
	return fe.field.NewElement(result)
}

// Equal checks if two field elements are equal.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	return fe.value.Cmp(other.value) == 0
}

// String returns a string representation of the field element.
func (fe *FieldElement) String() string {
	return fe.value.String()
}
