package extern

import (
	"strconv"

	"github.com/hashicorp/go-metrics"
)

// FallbackFunc is consulted when no registered entry consumed a message.
type FallbackFunc func(inlet int, sel Symbol, args []Atom) bool

// Dispatch routes one inbound message to the first matching handler of the
// target inlet and reports whether it was consumed.
//
// The scan order is: tagged entries in registration order, then untagged
// default entries in registration order, then the object's fallback. A
// message whose inlet is outside the declared range goes straight to the
// fallback without touching the registries.
//
// Dispatch is safe to invoke reentrantly from inside a handler: the
// registries are immutable once SetupInOut ran, so the read path takes no
// locks.
func (o *Object) Dispatch(inlet int, sel Symbol, args []Atom) bool {
	if inlet < 0 || inlet >= o.incnt {
		return o.unhandled(inlet, sel, args)
	}

	if o.distList && inlet == 0 && sel == SymList && len(args) > 1 {
		return o.distribute(args)
	}

	entries := o.methods[inlet]
	for _, ent := range entries {
		if !ent.tagged || ent.tag != sel {
			continue
		}
		if coerced, ok := coerce(ent.kinds, args, o.platform); ok {
			if ent.invoke(sel, coerced) {
				return o.handled(inlet, sel)
			}
		}
	}
	for _, ent := range entries {
		if ent.tagged {
			continue
		}
		if coerced, ok := coerce(ent.kinds, args, o.platform); ok {
			if ent.invoke(sel, coerced) {
				return o.handled(inlet, sel)
			}
		}
	}

	return o.unhandled(inlet, sel, args)
}

// distribute spreads the elements of a list arriving at inlet 0 over
// consecutive message inlets, right to left, so the inlet-0 element is
// delivered last and triggers output with every other inlet already set.
// Elements beyond the inlet count are dropped. Enabled via SetDist or
// WithListDistribution.
func (o *Object) distribute(args []Atom) bool {
	n := len(args)
	if n > o.incnt {
		o.logger.Debug("list distribution dropped extra elements",
			"elements", n, "inlets", o.incnt)
		n = o.incnt
	}
	o.cfg.msink.IncrCounterWithLabels(MetricDispatchDistribCount, 1.0, o.cfg.metricLabels)

	consumed := false
	for i := n - 1; i >= 0; i-- {
		el := args[i]
		res := o.Dispatch(i, el.selectorFor(o.platform), []Atom{el})
		if i == 0 {
			consumed = res
		}
	}
	return consumed
}

// SetDist toggles Max-style distribution of inlet-0 lists over the message
// inlets.
func (o *Object) SetDist(d bool) { o.distList = d }

func (o *Object) handled(inlet int, sel Symbol) bool {
	o.cfg.msink.IncrCounterWithLabels(MetricDispatchHandledCount, 1.0,
		append([]metrics.Label{
			LabelInlet.M(strconv.Itoa(inlet)),
			LabelSelector.M(sel.String()),
		}, o.cfg.metricLabels...))
	return true
}

func (o *Object) unhandled(inlet int, sel Symbol, args []Atom) bool {
	o.cfg.msink.IncrCounterWithLabels(MetricDispatchUnhandledCount, 1.0,
		append([]metrics.Label{
			LabelInlet.M(strconv.Itoa(inlet)),
			LabelSelector.M(sel.String()),
		}, o.cfg.metricLabels...))
	return o.fallback(inlet, sel, args)
}

func (o *Object) defaultFallback(inlet int, sel Symbol, args []Atom) bool {
	o.logger.Warn(
		"unhandled message",
		LabelInlet.L(inlet),
		LabelSelector.L(sel.String()),
		"argc", len(args),
	)
	return false
}
