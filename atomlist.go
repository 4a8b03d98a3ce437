package extern

// AtomList is an owned, independently allocated sequence of atoms. Its
// backing storage never aliases the vector it was built from, so the source
// may be reused or freed by the host right after construction. Identity is
// structural: two lists with equal content are interchangeable.
type AtomList struct {
	lst []Atom
}

// NewAtomList builds a list from a copy of the given atoms.
func NewAtomList(atoms ...Atom) *AtomList {
	l := &AtomList{}
	return l.Set(atoms...)
}

// Set replaces the content of the list with a copy of the given atoms.
func (l *AtomList) Set(atoms ...Atom) *AtomList {
	l.lst = append(l.lst[:0:0], atoms...)
	return l
}

// Clear empties the list.
func (l *AtomList) Clear() *AtomList { return l.Set() }

// Count returns the number of atoms in the list.
func (l *AtomList) Count() int { return len(l.lst) }

// Atoms exposes the backing atoms as a count+pointer projection for sends.
// Callers must not retain the slice across mutations of the list.
func (l *AtomList) Atoms() []Atom { return l.lst }

// At returns the atom at index ix.
func (l *AtomList) At(ix int) Atom { return l.lst[ix] }

// SetAt replaces the atom at index ix.
func (l *AtomList) SetAt(ix int, a Atom) { l.lst[ix] = a }

// Append adds atoms at the end of the list.
func (l *AtomList) Append(atoms ...Atom) *AtomList {
	l.lst = append(l.lst, atoms...)
	return l
}

// AppendList adds another list's content at the end of the list.
func (l *AtomList) AppendList(a *AtomList) *AtomList { return l.Append(a.lst...) }

// Prepend inserts atoms at the front of the list.
func (l *AtomList) Prepend(atoms ...Atom) *AtomList {
	out := make([]Atom, 0, len(atoms)+len(l.lst))
	out = append(out, atoms...)
	out = append(out, l.lst...)
	l.lst = out
	return l
}

// PrependList inserts another list's content at the front of the list.
func (l *AtomList) PrependList(a *AtomList) *AtomList { return l.Prepend(a.lst...) }

// GetPart returns a new list holding len atoms starting at offs. The range
// is clamped to the list bounds.
func (l *AtomList) GetPart(offs, n int) *AtomList {
	if offs < 0 {
		offs = 0
	}
	if offs > len(l.lst) {
		offs = len(l.lst)
	}
	if n < 0 || offs+n > len(l.lst) {
		n = len(l.lst) - offs
	}
	return NewAtomList(l.lst[offs : offs+n]...)
}

// Part reduces the list to a part of itself.
func (l *AtomList) Part(offs, n int) *AtomList {
	p := l.GetPart(offs, n)
	l.lst = p.lst
	return l
}

// Copy returns a deep copy of the list.
func (l *AtomList) Copy() *AtomList { return NewAtomList(l.lst...) }

// AtomAnything is a tagged list: a header selector plus a payload.
type AtomAnything struct {
	AtomList
	hdr Symbol
}

// NewAtomAnything builds an anything from a header and a copy of the atoms.
func NewAtomAnything(hdr Symbol, atoms ...Atom) *AtomAnything {
	a := &AtomAnything{hdr: hdr}
	a.Set(atoms...)
	return a
}

// Header returns the selector of the anything.
func (a *AtomAnything) Header() Symbol { return a.hdr }

// SetHeader replaces the selector of the anything.
func (a *AtomAnything) SetHeader(h Symbol) *AtomAnything {
	a.hdr = h
	return a
}

// CopyAtoms returns an owned copy of an atom vector. Queued deliveries use
// it so a worker can keep mutating its staging buffer after the enqueue.
func CopyAtoms(atoms []Atom) []Atom {
	return append([]Atom(nil), atoms...)
}
