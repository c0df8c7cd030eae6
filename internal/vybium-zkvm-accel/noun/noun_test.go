package noun

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAtoms(t *testing.T) {
	a := D(42)
	v, ok := a.Uint64()
	require.True(t, ok)
	assert.Equal(t, uint64(42), v)
	assert.False(t, a.IsZero())
	assert.True(t, D(0).IsZero())

	big1 := new(big.Int).Lsh(big.NewInt(1), 100)
	wide, err := FromBig(big1)
	require.NoError(t, err)
	_, ok = wide.Uint64()
	assert.False(t, ok, "a 101-bit atom must not fit a machine word")

	_, err = FromBig(big.NewInt(-1))
	require.ErrorIs(t, err, ErrNegativeAtom)
}

func TestAtomValueIsCopied(t *testing.T) {
	src := big.NewInt(7)
	a, err := FromBig(src)
	require.NoError(t, err)

	src.SetInt64(99)
	assert.Equal(t, "7", a.Big().String(), "atom must not alias the caller's value")

	a.Big().SetInt64(55)
	assert.Equal(t, "7", a.Big().String(), "Big must return a copy")
}

func TestCells(t *testing.T) {
	c := T(D(1), D(2))
	head, ok := c.Head().(Atom)
	require.True(t, ok)
	v, _ := head.Uint64()
	assert.Equal(t, uint64(1), v)

	tail, ok := c.Tail().(Atom)
	require.True(t, ok)
	v, _ = tail.Uint64()
	assert.Equal(t, uint64(2), v)
}

func TestListShape(t *testing.T) {
	// List(a, b) is [a [b 0]]: right-nested, zero-terminated.
	n := List(10, 20)

	first, ok := n.(Cell)
	require.True(t, ok)
	w, _ := first.Head().(Atom).Uint64()
	assert.Equal(t, uint64(10), w)

	second, ok := first.Tail().(Cell)
	require.True(t, ok)
	w, _ = second.Head().(Atom).Uint64()
	assert.Equal(t, uint64(20), w)

	term, ok := second.Tail().(Atom)
	require.True(t, ok)
	assert.True(t, term.IsZero())

	// The empty list is the bare zero atom.
	empty, ok := List().(Atom)
	require.True(t, ok)
	assert.True(t, empty.IsZero())
}

func TestSlot(t *testing.T) {
	// subject = [[1 2] 3]
	subject := T(T(D(1), D(2)), D(3))

	self, err := Slot(subject, 1)
	require.NoError(t, err)
	assert.Equal(t, subject, self)

	head, err := Slot(subject, 2)
	require.NoError(t, err)
	assert.Equal(t, T(D(1), D(2)), head)

	tail, err := Slot(subject, 3)
	require.NoError(t, err)
	w, _ := tail.(Atom).Uint64()
	assert.Equal(t, uint64(3), w)

	five, err := Slot(subject, 5)
	require.NoError(t, err)
	w, _ = five.(Atom).Uint64()
	assert.Equal(t, uint64(2), w)

	_, err = Slot(subject, 0)
	require.ErrorIs(t, err, ErrAxis)

	// Axis 6 needs a cell at axis 3, but there is an atom.
	_, err = Slot(subject, 6)
	require.ErrorIs(t, err, ErrAxis)
}
