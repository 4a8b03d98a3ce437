package extern

import "sync"

// Symbol is an interned selector or name. Two symbols made from the same
// string compare equal with ==, so dispatch never compares strings.
//
// The zero value is the nil symbol.
type Symbol struct {
	name *string
}

// symtab is the process-wide intern table. Append-only, safe for
// concurrent use (modeled after classic selector tables: fast read path,
// double-checked write path).
var symtab = struct {
	lk sync.RWMutex
	m  map[string]Symbol
}{m: make(map[string]Symbol)}

// MakeSymbol interns a string and returns its Symbol.
func MakeSymbol(name string) Symbol {
	symtab.lk.RLock()
	s, ok := symtab.m[name]
	symtab.lk.RUnlock()
	if ok {
		return s
	}

	symtab.lk.Lock()
	defer symtab.lk.Unlock()
	if s, ok := symtab.m[name]; ok {
		return s
	}
	owned := name
	s = Symbol{name: &owned}
	symtab.m[name] = s
	return s
}

func (s Symbol) String() string {
	if s.name == nil {
		return ""
	}
	return *s.name
}

// IsNil reports whether the symbol is the zero value.
func (s Symbol) IsNil() bool { return s.name == nil }

// Symbols every host and this package agree on.
var (
	SymBang     = MakeSymbol("bang")
	SymFloat    = MakeSymbol("float")
	SymInt      = MakeSymbol("int")
	SymSymbol   = MakeSymbol("symbol")
	SymList     = MakeSymbol("list")
	SymAnything = MakeSymbol("anything")
	SymPointer  = MakeSymbol("pointer")
	SymSignal   = MakeSymbol("signal")
)
