package extern

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtom_IntRequestTruncatesOnFloatOnlyHost(t *testing.T) {
	// Pd family: no integer atom, int requests are float-sourced.
	a := FloatAtom(3.7)
	v, ok := a.AsInt(PlatformPd)
	require.True(t, ok)
	require.Equal(t, 3, v, "truncation toward zero")

	neg := FloatAtom(-3.7)
	v, ok = neg.AsInt(PlatformPd)
	require.True(t, ok)
	require.Equal(t, -3, v, "truncation toward zero, not flooring")
}

func TestAtom_FloatRequestWidensIntExactly(t *testing.T) {
	a := IntAtom(5)
	v, ok := a.AsFloat(PlatformMax)
	require.True(t, ok)
	require.Equal(t, 5.0, v)
}

func TestAtom_MakeIntFollowsPlatform(t *testing.T) {
	require.Equal(t, KindInt, PlatformMax.MakeInt(7).Kind())
	require.Equal(t, KindFloat, PlatformPd.MakeInt(7).Kind(),
		"hosts without an int atom store ints as floats")
	require.Equal(t, 7.0, PlatformPd.MakeInt(7).Float())
}

func TestAtom_KindMismatches(t *testing.T) {
	s := StringAtom("freq")
	_, ok := s.AsFloat(PlatformMax)
	require.False(t, ok)
	_, ok = s.AsInt(PlatformPd)
	require.False(t, ok)

	require.False(t, PointerAtom(&struct{}{}).CanBeFloat(PlatformPd))
	require.False(t, Nothing.CanBeInt(PlatformMax))
}

func TestAtom_Bool(t *testing.T) {
	b, ok := FloatAtom(0.4).AsBool(PlatformPd)
	require.True(t, ok)
	require.False(t, b, "0.4 truncates to 0")

	b, ok = IntAtom(2).AsBool(PlatformMax)
	require.True(t, ok)
	require.True(t, b)
}

func TestSymbol_InterningIdentity(t *testing.T) {
	a := MakeSymbol("freq")
	b := MakeSymbol("fr" + "eq")
	require.Equal(t, a, b)
	require.True(t, a == b, "interned symbols compare with ==")
	require.Equal(t, "freq", a.String())
	require.True(t, Symbol{}.IsNil())
	require.False(t, SymBang.IsNil())
}
