package extern

import "fmt"

// ArgKind describes one expected argument slot of a handler, or one of the
// two variable-length forms.
type ArgKind uint8

const (
	ArgNothing ArgKind = iota
	ArgFloat
	ArgInt
	ArgSymbol
	ArgPointer

	// ArgGimme accepts the raw argument vector at any arity.
	ArgGimme

	// ArgXGimme accepts the raw argument vector plus the selector itself,
	// the shape used by anything-style handlers.
	ArgXGimme
)

// Typed handler signatures. Every handler reports whether it consumed the
// message; returning false lets dispatch fall through.
type (
	BangFunc     func() bool
	FloatFunc    func(v float64) bool
	Float2Func   func(a, b float64) bool
	Float3Func   func(a, b, c float64) bool
	IntFunc      func(v int) bool
	Int2Func     func(a, b int) bool
	Int3Func     func(a, b, c int) bool
	SymbolFunc   func(s Symbol) bool
	PointerFunc  func(p any) bool
	GimmeFunc    func(args []Atom) bool
	AnythingFunc func(sel Symbol, args []Atom) bool
)

// methodEntry binds a selector tag and an argument descriptor to a handler
// for one inlet. Entries are tried in registration order: tagged entries
// first, untagged (default) entries after all tagged ones failed. When two
// entries could structurally match the same message, the first registered
// wins — overlapping registrations are order-sensitive by contract.
type methodEntry struct {
	inlet  int
	tag    Symbol
	tagged bool
	kinds  []ArgKind
	invoke func(sel Symbol, coerced []Atom) bool
}

func (o *Object) addEntry(inlet int, tag Symbol, tagged bool, kinds []ArgKind, nilHandler bool, invoke func(Symbol, []Atom) bool) error {
	if o.frozen {
		return o.setupFail(ErrFrozen)
	}
	if inlet < 0 {
		return o.setupFail(fmt.Errorf("%w: %d", ErrBadInlet, inlet))
	}
	if nilHandler {
		return o.setupFail(ErrBadHandler)
	}
	o.methods[inlet] = append(o.methods[inlet], &methodEntry{
		inlet:  inlet,
		tag:    tag,
		tagged: tagged,
		kinds:  kinds,
		invoke: invoke,
	})
	return nil
}

// AddMethodBang registers a no-argument handler for a tag.
func (o *Object) AddMethodBang(inlet int, tag string, h BangFunc) error {
	return o.addEntry(inlet, MakeSymbol(tag), true, nil, h == nil,
		func(Symbol, []Atom) bool { return h() })
}

// AddMethodFloat registers a single-float handler for a tag.
func (o *Object) AddMethodFloat(inlet int, tag string, h FloatFunc) error {
	return o.addEntry(inlet, MakeSymbol(tag), true, []ArgKind{ArgFloat}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Float()) })
}

// AddMethodInt registers a single-int handler for a tag.
func (o *Object) AddMethodInt(inlet int, tag string, h IntFunc) error {
	return o.addEntry(inlet, MakeSymbol(tag), true, []ArgKind{ArgInt}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Int()) })
}

// AddMethodSymbol registers a single-symbol handler for a tag.
func (o *Object) AddMethodSymbol(inlet int, tag string, h SymbolFunc) error {
	return o.addEntry(inlet, MakeSymbol(tag), true, []ArgKind{ArgSymbol}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Sym()) })
}

// AddMethodPointer registers a single-pointer handler for a tag. Only
// meaningful on platforms with pointer atoms.
func (o *Object) AddMethodPointer(inlet int, tag string, h PointerFunc) error {
	return o.addEntry(inlet, MakeSymbol(tag), true, []ArgKind{ArgPointer}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Ptr()) })
}

// AddMethodGimme registers a variable-length handler for a tag.
func (o *Object) AddMethodGimme(inlet int, tag string, h GimmeFunc) error {
	return o.addEntry(inlet, MakeSymbol(tag), true, []ArgKind{ArgGimme}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a) })
}

// AddMethodAnything registers a variable-length handler for a tag that also
// receives the selector.
func (o *Object) AddMethodAnything(inlet int, tag string, h AnythingFunc) error {
	return o.addEntry(inlet, MakeSymbol(tag), true, []ArgKind{ArgXGimme}, h == nil,
		func(s Symbol, a []Atom) bool { return h(s, a) })
}

// Untagged conveniences for the selectors hosts emit themselves. The int
// form registers under "float" on platforms without an integer atom.

// AddBang registers the handler for plain bangs on an inlet.
func (o *Object) AddBang(inlet int, h BangFunc) error {
	return o.AddMethodBang(inlet, SymBang.String(), h)
}

// AddFloat registers the handler for single floats on an inlet.
func (o *Object) AddFloat(inlet int, h FloatFunc) error {
	return o.AddMethodFloat(inlet, SymFloat.String(), h)
}

// AddInt registers the handler for single ints on an inlet.
func (o *Object) AddInt(inlet int, h IntFunc) error {
	tag := SymInt
	if !o.platform.HasInt {
		tag = SymFloat
	}
	return o.AddMethodInt(inlet, tag.String(), h)
}

// AddSymbol registers the handler for single symbols on an inlet.
func (o *Object) AddSymbol(inlet int, h SymbolFunc) error {
	return o.AddMethodSymbol(inlet, SymSymbol.String(), h)
}

// AddList registers the variable-length list handler on an inlet.
func (o *Object) AddList(inlet int, h GimmeFunc) error {
	return o.AddMethodGimme(inlet, SymList.String(), h)
}

// AddList2Float registers a fixed list handler of two floats.
func (o *Object) AddList2Float(inlet int, h Float2Func) error {
	return o.addEntry(inlet, SymList, true, []ArgKind{ArgFloat, ArgFloat}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Float(), a[1].Float()) })
}

// AddList3Float registers a fixed list handler of three floats.
func (o *Object) AddList3Float(inlet int, h Float3Func) error {
	return o.addEntry(inlet, SymList, true, []ArgKind{ArgFloat, ArgFloat, ArgFloat}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Float(), a[1].Float(), a[2].Float()) })
}

// AddList2Int registers a fixed list handler of two ints.
func (o *Object) AddList2Int(inlet int, h Int2Func) error {
	return o.addEntry(inlet, SymList, true, []ArgKind{ArgInt, ArgInt}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Int(), a[1].Int()) })
}

// AddList3Int registers a fixed list handler of three ints.
func (o *Object) AddList3Int(inlet int, h Int3Func) error {
	return o.addEntry(inlet, SymList, true, []ArgKind{ArgInt, ArgInt, ArgInt}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a[0].Int(), a[1].Int(), a[2].Int()) })
}

// AddDefault registers an untagged variable-length handler: it is tried,
// in registration order, after every tagged entry of the inlet failed.
// Several defaults on the same inlet stack — a later one is tried only when
// all earlier ones declined.
func (o *Object) AddDefault(inlet int, h GimmeFunc) error {
	return o.addEntry(inlet, Symbol{}, false, []ArgKind{ArgGimme}, h == nil,
		func(_ Symbol, a []Atom) bool { return h(a) })
}

// AddDefaultAnything registers an untagged default that also receives the
// selector.
func (o *Object) AddDefaultAnything(inlet int, h AnythingFunc) error {
	return o.addEntry(inlet, Symbol{}, false, []ArgKind{ArgXGimme}, h == nil,
		func(s Symbol, a []Atom) bool { return h(s, a) })
}

// coerce validates args against kinds and returns the converted vector.
// Fixed-arity descriptors require an exact length match; each slot must be
// convertible on the given platform (float<->int per platform rules, symbol
// and pointer kinds exactly). Gimme forms accept any arity unconverted.
func coerce(kinds []ArgKind, args []Atom, pl Platform) ([]Atom, bool) {
	if len(kinds) == 1 {
		switch kinds[0] {
		case ArgGimme, ArgXGimme:
			return args, true
		}
	}
	if len(kinds) == 0 || (len(kinds) == 1 && kinds[0] == ArgNothing) {
		if len(args) != 0 {
			return nil, false
		}
		return nil, true
	}
	if len(args) != len(kinds) {
		return nil, false
	}

	out := make([]Atom, len(args))
	for i, k := range kinds {
		a := args[i]
		switch k {
		case ArgFloat:
			v, ok := a.AsFloat(pl)
			if !ok {
				return nil, false
			}
			out[i] = FloatAtom(v)
		case ArgInt:
			v, ok := a.AsInt(pl)
			if !ok {
				return nil, false
			}
			out[i] = IntAtom(v)
		case ArgSymbol:
			if !a.IsSymbol() {
				return nil, false
			}
			out[i] = a
		case ArgPointer:
			if !pl.HasPointer || !a.IsPointer() {
				return nil, false
			}
			out[i] = a
		default:
			return nil, false
		}
	}
	return out, true
}
