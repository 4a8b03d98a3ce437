package extern

// Outlet is the host-side send primitive for one outlet slot. The host glue
// returns one per declared outlet from its HostBinder. Direct sends must only
// happen on the host thread; worker goroutines go through the Queue* calls.
type Outlet interface {
	Bang()
	Float(v float64)
	Int(v int)
	Symbol(s Symbol)
	List(atoms []Atom)
	Anything(sel Symbol, atoms []Atom)
}

// GetOut returns the outlet handle at index n, or nil if n is out of range
// or SetupInOut has not run yet.
func (o *Object) GetOut(n int) Outlet {
	if n < 0 || n >= len(o.outlets) {
		return nil
	}
	return o.outlets[n]
}

// ToOutBang sends a bang to outlet n.
func (o *Object) ToOutBang(n int) {
	if out := o.GetOut(n); out != nil {
		out.Bang()
	} else {
		o.badOutlet(n)
	}
}

// ToOutFloat sends a float to outlet n.
func (o *Object) ToOutFloat(n int, v float64) {
	if out := o.GetOut(n); out != nil {
		out.Float(v)
	} else {
		o.badOutlet(n)
	}
}

// ToOutInt sends an int to outlet n.
func (o *Object) ToOutInt(n int, v int) {
	if out := o.GetOut(n); out != nil {
		out.Int(v)
	} else {
		o.badOutlet(n)
	}
}

// ToOutSymbol sends a symbol to outlet n.
func (o *Object) ToOutSymbol(n int, s Symbol) {
	if out := o.GetOut(n); out != nil {
		out.Symbol(s)
	} else {
		o.badOutlet(n)
	}
}

// ToOutString sends a string to outlet n as an interned symbol.
func (o *Object) ToOutString(n int, s string) { o.ToOutSymbol(n, MakeSymbol(s)) }

// ToOutList sends an atom vector to outlet n as a list.
func (o *Object) ToOutList(n int, atoms []Atom) {
	if out := o.GetOut(n); out != nil {
		out.List(atoms)
	} else {
		o.badOutlet(n)
	}
}

// ToOutAtomList sends an AtomList to outlet n. This is a count+pointer
// projection over ToOutList, not a second semantic.
func (o *Object) ToOutAtomList(n int, l *AtomList) { o.ToOutList(n, l.Atoms()) }

// ToOutAnything sends a tagged message to outlet n.
func (o *Object) ToOutAnything(n int, sel Symbol, atoms []Atom) {
	if out := o.GetOut(n); out != nil {
		out.Anything(sel, atoms)
	} else {
		o.badOutlet(n)
	}
}

// ToOutAtomAnything sends an AtomAnything to outlet n.
func (o *Object) ToOutAtomAnything(n int, a *AtomAnything) {
	o.ToOutAnything(n, a.Header(), a.Atoms())
}

func (o *Object) badOutlet(n int) {
	o.logger.Debug("send to unknown outlet dropped", LabelOutlet.L(n))
}
