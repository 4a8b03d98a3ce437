package extern

// The cross-thread delivery queue. Worker goroutines must never call an
// outlet directly: they enqueue, and the host thread drains from its tick
// callback. The queue is a singly-linked FIFO; nodes are appended at the
// tail under the queue mutex and detached wholesale by Drain, which then
// delivers without holding any lock so a slow or reentrant host send can
// never block producers.

// Ticker is the host's lightweight tick primitive (qelem/clock analog):
// Trigger must arrange for Drain to run on the host thread soon. Triggers
// may coalesce.
type Ticker interface {
	Trigger()
}

type qKind uint8

const (
	qBang qKind = iota
	qFloat
	qInt
	qSymbol
	qList
	qAnything
)

type qmsg struct {
	out  Outlet
	kind qKind

	f     float64
	i     int
	sym   Symbol
	sel   Symbol
	atoms []Atom

	nxt *qmsg
}

// QueueBang schedules a bang on outlet n for delivery on the host thread.
func (o *Object) QueueBang(n int) {
	o.enqueue(&qmsg{out: o.GetOut(n), kind: qBang})
}

// QueueFloat schedules a float on outlet n.
func (o *Object) QueueFloat(n int, v float64) {
	o.enqueue(&qmsg{out: o.GetOut(n), kind: qFloat, f: v})
}

// QueueInt schedules an int on outlet n.
func (o *Object) QueueInt(n int, v int) {
	o.enqueue(&qmsg{out: o.GetOut(n), kind: qInt, i: v})
}

// QueueSymbol schedules a symbol on outlet n.
func (o *Object) QueueSymbol(n int, s Symbol) {
	o.enqueue(&qmsg{out: o.GetOut(n), kind: qSymbol, sym: s})
}

// QueueString schedules a string on outlet n as an interned symbol.
func (o *Object) QueueString(n int, s string) { o.QueueSymbol(n, MakeSymbol(s)) }

// QueueList schedules a list on outlet n. The atoms are copied, so the
// caller may keep mutating its staging buffer.
func (o *Object) QueueList(n int, atoms []Atom) {
	o.enqueue(&qmsg{out: o.GetOut(n), kind: qList, atoms: CopyAtoms(atoms)})
}

// QueueAtomList schedules an AtomList on outlet n.
func (o *Object) QueueAtomList(n int, l *AtomList) { o.QueueList(n, l.Atoms()) }

// QueueAnything schedules a tagged message on outlet n. The atoms are
// copied.
func (o *Object) QueueAnything(n int, sel Symbol, atoms []Atom) {
	o.enqueue(&qmsg{out: o.GetOut(n), kind: qAnything, sel: sel, atoms: CopyAtoms(atoms)})
}

// QueueAtomAnything schedules an AtomAnything on outlet n.
func (o *Object) QueueAtomAnything(n int, a *AtomAnything) {
	o.QueueAnything(n, a.Header(), a.Atoms())
}

func (o *Object) enqueue(m *qmsg) {
	if m.out == nil {
		o.logger.Debug("queued send to unknown outlet dropped")
		return
	}

	o.qmu.Lock()
	if o.qtail == nil {
		o.qhead = m
	} else {
		o.qtail.nxt = m
	}
	o.qtail = m
	o.qmu.Unlock()

	o.cfg.msink.IncrCounterWithLabels(MetricQueueInCount, 1.0, o.cfg.metricLabels)
	if o.ticker != nil {
		o.ticker.Trigger()
	}
}

// Drain delivers every pending queued send in FIFO order. It must run on
// the host thread; the host glue schedules it through the Ticker. The whole
// pending list is detached under the lock first, then delivered unlocked,
// so producers never wait on host sends and no lock spans a host callback.
//
// Ordering holds per producer; deliveries from Drain are not ordered
// against direct ToOut* sends issued by the host thread itself.
func (o *Object) Drain() {
	o.qmu.Lock()
	head := o.qhead
	o.qhead = nil
	o.qtail = nil
	o.qmu.Unlock()

	n := 0
	for m := head; m != nil; {
		switch m.kind {
		case qBang:
			m.out.Bang()
		case qFloat:
			m.out.Float(m.f)
		case qInt:
			m.out.Int(m.i)
		case qSymbol:
			m.out.Symbol(m.sym)
		case qList:
			m.out.List(m.atoms)
		case qAnything:
			m.out.Anything(m.sel, m.atoms)
		}
		n++
		nxt := m.nxt
		m.nxt = nil
		m = nxt
	}

	if n > 0 {
		o.cfg.msink.IncrCounterWithLabels(MetricQueueOutCount, float32(n), o.cfg.metricLabels)
		o.cfg.msink.AddSampleWithLabels(MetricQueueDrainBatchSize, float32(n), o.cfg.metricLabels)
	}
}

// Pending reports whether queued deliveries are waiting for a drain.
func (o *Object) Pending() bool {
	o.qmu.Lock()
	defer o.qmu.Unlock()
	return o.qhead != nil
}
