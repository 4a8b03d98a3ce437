package extern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtomList_RoundTripOwnsItsStorage(t *testing.T) {
	src := []Atom{FloatAtom(1), FloatAtom(2), StringAtom("x")}
	l := NewAtomList(src...)

	// Mutate the source after construction; the list must not see it.
	src[0] = FloatAtom(99)

	require.Equal(t, 3, l.Count())
	require.Equal(t, 1.0, l.At(0).Float())
	require.Equal(t, 2.0, l.At(1).Float())
	require.Equal(t, "x", l.At(2).Sym().String())
}

func TestAtomList_AppendPrependPart(t *testing.T) {
	l := NewAtomList(FloatAtom(2))
	l.Append(FloatAtom(3), FloatAtom(4)).Prepend(FloatAtom(1))

	require.Equal(t, 4, l.Count())
	require.Equal(t, 1.0, l.At(0).Float())
	require.Equal(t, 4.0, l.At(3).Float())

	mid := l.GetPart(1, 2)
	require.Equal(t, 2, mid.Count())
	require.Equal(t, 2.0, mid.At(0).Float())
	require.Equal(t, 3.0, mid.At(1).Float())

	// GetPart owns a copy.
	mid.SetAt(0, FloatAtom(42))
	require.Equal(t, 2.0, l.At(1).Float())

	require.Equal(t, 0, l.GetPart(10, 5).Count(), "out-of-range part clamps empty")
}

func TestAtomList_CopyIsDeep(t *testing.T) {
	l := NewAtomList(FloatAtom(1))
	c := l.Copy()
	l.SetAt(0, FloatAtom(2))
	require.Equal(t, 1.0, c.At(0).Float())
}

func TestAtomAnything_Header(t *testing.T) {
	a := NewAtomAnything(MakeSymbol("freq"), FloatAtom(440))
	require.Equal(t, "freq", a.Header().String())
	require.Equal(t, 1, a.Count())
	require.Equal(t, 440.0, a.At(0).Float())

	a.SetHeader(MakeSymbol("amp"))
	require.Equal(t, "amp", a.Header().String())
}
