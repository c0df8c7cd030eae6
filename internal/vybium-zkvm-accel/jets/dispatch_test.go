package jets

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/core"
	"github.com/vybium/vybium-zkvm-accel/internal/vybium-zkvm-accel/noun"
)

// callSubject wraps a sample list the way the interpreter builds a gate
// subject, [battery [sample context]], putting the argument at axis 6.
func callSubject(words ...uint64) noun.Noun {
	return noun.T(noun.D(0), noun.T(noun.List(words...), noun.D(0)))
}

func permuteCorpus() []core.State {
	corpus := []core.State{
		{},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	}
	var max core.State
	for i := range max {
		max[i] = core.P - 1
	}
	corpus = append(corpus, max)

	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 25; i++ {
		var s core.State
		for j := range s {
			s[j] = rng.Uint64() % core.P
		}
		corpus = append(corpus, s)
	}
	return corpus
}

func hash10Corpus() [][core.Rate]uint64 {
	corpus := [][core.Rate]uint64{
		{},
		{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
	}
	var max [core.Rate]uint64
	for i := range max {
		max[i] = core.P - 1
	}
	corpus = append(corpus, max)

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 25; i++ {
		var in [core.Rate]uint64
		for j := range in {
			in[j] = rng.Uint64() % core.P
		}
		corpus = append(corpus, in)
	}
	return corpus
}

func TestPermutationParity(t *testing.T) {
	accelerated := NewDispatcher(NewAcceleratedKernel())
	reference := NewDispatcher(NewReferenceKernel())

	for _, s := range permuteCorpus() {
		subject := callSubject(s[:]...)

		fast, err := accelerated.Permutation(subject)
		require.NoError(t, err)
		slow, err := reference.Permutation(subject)
		require.NoError(t, err)

		fastWords, err := DecodeWords(fast, core.StateSize)
		require.NoError(t, err)
		slowWords, err := DecodeWords(slow, core.StateSize)
		require.NoError(t, err)
		require.Equal(t, slowWords, fastWords,
			"accelerated and reference permutation diverged on %v", s)
	}
}

func TestHash10Parity(t *testing.T) {
	accelerated := NewDispatcher(NewAcceleratedKernel())
	reference := NewDispatcher(NewReferenceKernel())

	for _, in := range hash10Corpus() {
		subject := callSubject(in[:]...)

		fast, err := accelerated.Hash10(subject)
		require.NoError(t, err)
		slow, err := reference.Hash10(subject)
		require.NoError(t, err)

		fastWords, err := DecodeWords(fast, core.DigestLength)
		require.NoError(t, err)
		slowWords, err := DecodeWords(slow, core.DigestLength)
		require.NoError(t, err)
		require.Equal(t, slowWords, fastWords,
			"accelerated and reference hash-10 diverged on %v", in)
	}
}

func TestKernelParityDirect(t *testing.T) {
	accelerated := NewAcceleratedKernel()
	reference := NewReferenceKernel()

	for _, s := range permuteCorpus() {
		fast, slow := s, s
		require.NoError(t, accelerated.Permute(&fast))
		require.NoError(t, reference.Permute(&slow))
		require.Equal(t, slow, fast, "permutation diverged on %v", s)
	}
	for _, in := range hash10Corpus() {
		fast, err := accelerated.Hash10(in)
		require.NoError(t, err)
		slow, err := reference.Hash10(in)
		require.NoError(t, err)
		require.Equal(t, slow, fast, "hash-10 diverged on %v", in)
	}
}

func TestDispatchMatchesDirectCall(t *testing.T) {
	d := NewDispatcher(NewAcceleratedKernel())

	input := [core.Rate]uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	direct, err := core.Hash10(input)
	require.NoError(t, err)

	viaTree, err := d.Hash10(callSubject(input[:]...))
	require.NoError(t, err)
	words, err := DecodeWords(viaTree, core.DigestLength)
	require.NoError(t, err)
	assert.Equal(t, direct[:], words)
}

func TestDispatchFailsVisibly(t *testing.T) {
	d := NewDispatcher(NewAcceleratedKernel())

	// Subject with no sample: axis 6 descends into an atom.
	_, err := d.Permutation(noun.D(0))
	require.ErrorIs(t, err, ErrShapeMismatch)

	// Wrong arity: 10 words where the permutation wants 16.
	_, err = d.Permutation(callSubject(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	require.ErrorIs(t, err, ErrArityMismatch)

	// Wrong arity for hash-10.
	_, err = d.Hash10(callSubject(1, 2, 3))
	require.ErrorIs(t, err, ErrArityMismatch)

	// Out-of-range word: decode succeeds, the kernel rejects.
	words := make([]uint64, core.Rate)
	words[3] = core.P
	_, err = d.Hash10(callSubject(words...))
	require.ErrorIs(t, err, core.ErrOutOfRange)
}

func TestDispatchDoesNotMutateSubject(t *testing.T) {
	d := NewDispatcher(NewAcceleratedKernel())
	subject := callSubject(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)

	_, err := d.Hash10(subject)
	require.NoError(t, err)

	sampleNoun, err := noun.Slot(subject, 6)
	require.NoError(t, err)
	words, err := DecodeWords(sampleNoun, core.Rate)
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, words)
}
