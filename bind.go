package extern

import (
	"strings"
	"sync"
)

// The bind registry maps receive symbols to the objects listening on them,
// the way hosts let an object receive messages sent to a named destination.
// It is process-wide: externals loaded in one host process share the name
// space, like they share the host's symbol table.
//
// The host families disagree here too: the Pd family stacks any number of
// listeners on one symbol, the Max family wires one object per symbol. In
// compatibility mode the stricter rule wins.
var bindings = struct {
	lk sync.RWMutex
	m  map[Symbol][]*Object
}{m: make(map[Symbol][]*Object)}

// Bind registers the object as a listener on the symbol. On the Max family
// (or in compatibility mode) a second bind on an occupied symbol fails with
// ErrAlreadyBound.
func (o *Object) Bind(s Symbol) error {
	if s.IsNil() {
		return ErrNotBound
	}

	exclusive := o.cfg.compat || o.platform.Name == PlatformMax.Name

	bindings.lk.Lock()
	defer bindings.lk.Unlock()
	cur := bindings.m[s]
	if exclusive && len(cur) > 0 {
		return ErrAlreadyBound
	}
	for _, b := range cur {
		if b == o {
			return nil
		}
	}
	bindings.m[s] = append(cur, o)
	o.logger.Debug("bound to symbol", LabelSymbol.L(s.String()))
	return nil
}

// BindString interns the string and binds to it.
func (o *Object) BindString(name string) error { return o.Bind(MakeSymbol(name)) }

// Unbind removes the object from the symbol's listeners.
func (o *Object) Unbind(s Symbol) error {
	bindings.lk.Lock()
	defer bindings.lk.Unlock()
	cur := bindings.m[s]
	for i, b := range cur {
		if b == o {
			bindings.m[s] = append(cur[:i:i], cur[i+1:]...)
			if len(bindings.m[s]) == 0 {
				delete(bindings.m, s)
			}
			o.logger.Debug("unbound from symbol", LabelSymbol.L(s.String()))
			return nil
		}
	}
	return ErrNotBound
}

// unbindAll drops every binding of the object; Stop calls it so a stopped
// object can no longer receive.
func (o *Object) unbindAll() {
	bindings.lk.Lock()
	defer bindings.lk.Unlock()
	for s, cur := range bindings.m {
		for i, b := range cur {
			if b == o {
				bindings.m[s] = append(cur[:i:i], cur[i+1:]...)
				if len(bindings.m[s]) == 0 {
					delete(bindings.m, s)
				}
				break
			}
		}
	}
}

// Bound returns the objects currently listening on a symbol.
func Bound(s Symbol) []*Object {
	bindings.lk.RLock()
	defer bindings.lk.RUnlock()
	return append([]*Object(nil), bindings.m[s]...)
}

// ScanBound returns the names of bound symbols starting with prefix.
func ScanBound(prefix string) (found []string) {
	bindings.lk.RLock()
	defer bindings.lk.RUnlock()
	for s := range bindings.m {
		if strings.HasPrefix(s.String(), prefix) {
			found = append(found, s.String())
		}
	}
	return
}

// SendTo dispatches a message on inlet 0 of every object bound to the
// symbol and reports whether any of them consumed it.
func SendTo(s Symbol, sel Symbol, args []Atom) bool {
	consumed := false
	for _, o := range Bound(s) {
		if o.Dispatch(0, sel, args) {
			consumed = true
		}
	}
	return consumed
}
