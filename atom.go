package extern

// AtomKind discriminates the value held by an Atom.
type AtomKind uint8

const (
	KindNothing AtomKind = iota
	KindFloat
	KindInt
	KindSymbol
	KindPointer
)

func (k AtomKind) String() string {
	switch k {
	case KindFloat:
		return "float"
	case KindInt:
		return "int"
	case KindSymbol:
		return "symbol"
	case KindPointer:
		return "pointer"
	default:
		return "nothing"
	}
}

// Platform describes which atom kinds a host family actually has. It is an
// explicit runtime value instead of build-time branching: set it once when
// the object is created, read-only afterwards.
type Platform struct {
	Name string

	// HasInt is true when the host has a distinct integer atom. Where it
	// is false, integer values are stored and transported as floats and
	// an int request is float-sourced.
	HasInt bool

	// HasPointer is true when the host has pointer atoms.
	HasPointer bool
}

var (
	PlatformMax = Platform{Name: "max", HasInt: true, HasPointer: false}
	PlatformPd  = Platform{Name: "pd", HasInt: false, HasPointer: true}
)

// Atom is the tagged value type for a single message argument.
type Atom struct {
	kind AtomKind
	f    float64
	i    int
	sym  Symbol
	ptr  any
}

// Nothing is the empty atom.
var Nothing = Atom{}

func FloatAtom(v float64) Atom { return Atom{kind: KindFloat, f: v} }
func IntAtom(v int) Atom       { return Atom{kind: KindInt, i: v} }
func SymbolAtom(s Symbol) Atom { return Atom{kind: KindSymbol, sym: s} }
func StringAtom(s string) Atom { return SymbolAtom(MakeSymbol(s)) }
func PointerAtom(p any) Atom   { return Atom{kind: KindPointer, ptr: p} }

// MakeInt builds an integer-valued atom the way the platform would: hosts
// without a distinct int type get a float atom.
func (pl Platform) MakeInt(v int) Atom {
	if !pl.HasInt {
		return FloatAtom(float64(v))
	}
	return IntAtom(v)
}

func (a Atom) Kind() AtomKind  { return a.kind }
func (a Atom) IsNothing() bool { return a.kind == KindNothing }
func (a Atom) IsFloat() bool   { return a.kind == KindFloat }
func (a Atom) IsInt() bool     { return a.kind == KindInt }
func (a Atom) IsSymbol() bool  { return a.kind == KindSymbol }
func (a Atom) IsPointer() bool { return a.kind == KindPointer }

// Float returns the float payload without a kind check.
func (a Atom) Float() float64 { return a.f }

// Int returns the int payload without a kind check.
func (a Atom) Int() int { return a.i }

// Sym returns the symbol payload without a kind check.
func (a Atom) Sym() Symbol { return a.sym }

// Ptr returns the pointer payload without a kind check.
func (a Atom) Ptr() any { return a.ptr }

// CanBeFloat reports whether the atom converts to a float on this platform.
func (a Atom) CanBeFloat(pl Platform) bool {
	return a.kind == KindFloat || (a.kind == KindInt && pl.HasInt)
}

// CanBeInt reports whether the atom converts to an int on this platform.
func (a Atom) CanBeInt(pl Platform) bool {
	return a.kind == KindFloat || (a.kind == KindInt && pl.HasInt)
}

// AsFloat converts the atom to a float. Integer atoms widen exactly.
func (a Atom) AsFloat(pl Platform) (float64, bool) {
	switch a.kind {
	case KindFloat:
		return a.f, true
	case KindInt:
		if pl.HasInt {
			return float64(a.i), true
		}
	}
	return 0, false
}

// AsInt converts the atom to an int. Float atoms truncate toward zero,
// which is also the behavior of hosts that have no integer atom and treat
// int requests as float-sourced.
func (a Atom) AsInt(pl Platform) (int, bool) {
	switch a.kind {
	case KindFloat:
		return int(a.f), true
	case KindInt:
		if pl.HasInt {
			return a.i, true
		}
	}
	return 0, false
}

// AsBool converts like AsInt and tests against zero.
func (a Atom) AsBool(pl Platform) (bool, bool) {
	v, ok := a.AsInt(pl)
	return v != 0, ok
}

// selectorFor maps a single atom to the selector a host would use when
// sending it alone.
func (a Atom) selectorFor(pl Platform) Symbol {
	switch a.kind {
	case KindInt:
		if pl.HasInt {
			return SymInt
		}
		return SymFloat
	case KindSymbol:
		return SymSymbol
	case KindPointer:
		return SymPointer
	default:
		return SymFloat
	}
}
