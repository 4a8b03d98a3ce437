package extern

import "fmt"

// XletType tags one declared inlet or outlet slot.
type XletType uint8

const (
	XletNone XletType = iota
	XletFloat
	XletInt
	XletSymbol
	XletList
	XletSignal
	XletAny
)

func (t XletType) String() string {
	switch t {
	case XletFloat:
		return "float"
	case XletInt:
		return "int"
	case XletSymbol:
		return "symbol"
	case XletList:
		return "list"
	case XletSignal:
		return "signal"
	case XletAny:
		return "anything"
	default:
		return "none"
	}
}

// xlet is one declared slot. Declaration order defines the slot index.
type xlet struct {
	tp   XletType
	desc string
}

// HostBinder materializes declared slots on the host side. SetupInOut walks
// the declarations exactly once and calls it per slot, in index order.
type HostBinder interface {
	// BindInlet creates the host inlet at the given index. Index 0 is the
	// default inlet most hosts create implicitly; binders may no-op there.
	BindInlet(index int, tp XletType, desc string) error

	// BindOutlet creates the host outlet at the given index and returns
	// its send handle.
	BindOutlet(index int, tp XletType, desc string) (Outlet, error)
}

// AddInlet appends mult inlet slots of the given type. Must be called before
// SetupInOut; afterwards the declaration list is frozen.
func (o *Object) AddInlet(tp XletType, mult int, desc string) error {
	return o.addXlet(tp, mult, desc, &o.inlist)
}

// AddOutlet appends mult outlet slots of the given type.
func (o *Object) AddOutlet(tp XletType, mult int, desc string) error {
	return o.addXlet(tp, mult, desc, &o.outlist)
}

func (o *Object) addXlet(tp XletType, mult int, desc string, root *[]xlet) error {
	if o.frozen {
		return o.setupFail(ErrFrozen)
	}
	if mult < 1 {
		return o.setupFail(fmt.Errorf("%w: multiplicity %d", ErrBadXlet, mult))
	}
	for i := 0; i < mult; i++ {
		*root = append(*root, xlet{tp: tp, desc: desc})
	}
	return nil
}

// Convenience declarations, mirroring the message types hosts know about.
// Anything is the one to choose for the left-most inlet unless it carries
// signal.

func (o *Object) AddInAnything(mult int) error { return o.AddInlet(XletAny, mult, "") }
func (o *Object) AddInFloat(mult int) error    { return o.AddInlet(XletFloat, mult, "") }
func (o *Object) AddInInt(mult int) error      { return o.AddInlet(XletInt, mult, "") }
func (o *Object) AddInSymbol(mult int) error   { return o.AddInlet(XletSymbol, mult, "") }
func (o *Object) AddInBang(mult int) error     { return o.AddInlet(XletSymbol, mult, "") }
func (o *Object) AddInList(mult int) error     { return o.AddInlet(XletList, mult, "") }
func (o *Object) AddInSignal(mult int) error   { return o.AddInlet(XletSignal, mult, "") }

func (o *Object) AddOutAnything(mult int) error { return o.AddOutlet(XletAny, mult, "") }
func (o *Object) AddOutFloat(mult int) error    { return o.AddOutlet(XletFloat, mult, "") }
func (o *Object) AddOutInt(mult int) error      { return o.AddOutlet(XletInt, mult, "") }
func (o *Object) AddOutSymbol(mult int) error   { return o.AddOutlet(XletSymbol, mult, "") }
func (o *Object) AddOutBang(mult int) error     { return o.AddOutlet(XletSymbol, mult, "") }
func (o *Object) AddOutList(mult int) error     { return o.AddOutlet(XletList, mult, "") }
func (o *Object) AddOutSignal(mult int) error   { return o.AddOutlet(XletSignal, mult, "") }

// DescInlet sets the description of an already declared inlet.
func (o *Object) DescInlet(ix int, desc string) error {
	return o.descXlet(ix, desc, o.inlist)
}

// DescOutlet sets the description of an already declared outlet.
func (o *Object) DescOutlet(ix int, desc string) error {
	return o.descXlet(ix, desc, o.outlist)
}

func (o *Object) descXlet(ix int, desc string, root []xlet) error {
	if o.frozen {
		return ErrFrozen
	}
	if ix < 0 || ix >= len(root) {
		return ErrBadInlet
	}
	root[ix].desc = desc
	return nil
}

// SetupInOut materializes the declared slots against the host binder. It
// must be called exactly once; the declaration lists are frozen afterwards
// and the registries become safe for lock-free concurrent reads.
func (o *Object) SetupInOut(binder HostBinder) error {
	if o.frozen {
		return ErrFrozen
	}
	if binder == nil {
		return ErrNoBinder
	}

	for ix, xl := range o.inlist {
		if err := binder.BindInlet(ix, xl.tp, xl.desc); err != nil {
			return o.setupFail(fmt.Errorf("%w: inlet %d: %w", ErrSlotRefused, ix, err))
		}
		if xl.tp == XletSignal {
			o.insigs++
		}
	}

	o.outlets = make([]Outlet, 0, len(o.outlist))
	for ix, xl := range o.outlist {
		out, err := binder.BindOutlet(ix, xl.tp, xl.desc)
		if err != nil {
			return o.setupFail(fmt.Errorf("%w: outlet %d: %w", ErrSlotRefused, ix, err))
		}
		o.outlets = append(o.outlets, out)
		if xl.tp == XletSignal {
			o.outsigs++
		}
	}

	o.incnt = len(o.inlist)
	o.outcnt = len(o.outlist)
	o.frozen = true

	o.logger.Debug(
		"xlets materialized",
		"inlets", o.incnt,
		"outlets", o.outcnt,
		"signal_inlets", o.insigs,
		"signal_outlets", o.outsigs,
	)
	return nil
}

// CntIn returns the number of inlets after setup.
func (o *Object) CntIn() int { return o.incnt }

// CntOut returns the number of outlets after setup.
func (o *Object) CntOut() int { return o.outcnt }

// CntInSig returns the number of signal inlets after setup.
func (o *Object) CntInSig() int { return o.insigs }

// CntOutSig returns the number of signal outlets after setup.
func (o *Object) CntOutSig() int { return o.outsigs }
