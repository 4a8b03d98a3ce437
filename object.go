package extern

import (
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/hashicorp/go-metrics"

	"github.com/flowext/extern/pkg/thr"
)

// Object is one external instance: its xlet declarations, its method
// registry, its outlets, and the queue bridging worker goroutines back to
// the host thread.
//
// Lifecycle: construct with New, declare xlets and methods, materialize
// once with SetupInOut, then let the host glue feed Dispatch and schedule
// Drain. Everything declared before SetupInOut is immutable afterwards.
type Object struct {
	cfg      config
	logger   *slog.Logger
	platform Platform

	// declarations, frozen by SetupInOut
	inlist, outlist []xlet
	frozen          bool
	setupErr        error

	incnt, outcnt, insigs, outsigs int
	outlets                        []Outlet

	methods  map[int][]*methodEntry
	fallback FallbackFunc
	distList bool

	// cross-thread queue
	qhead, qtail *qmsg
	qmu          thr.Mutex
	ticker       Ticker

	// worker management
	shouldExit atomic.Bool
	wcond      *thr.Cond
	workers    int
}

// New builds an Object.
func New(opts ...Option) (*Object, error) {
	o := &Object{
		methods: make(map[int][]*methodEntry),
		wcond:   thr.NewCond(),
	}

	o.cfg.platform = PlatformPd
	o.cfg.compat = true

	for _, opt := range opts {
		if err := opt(&o.cfg); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidCfg, err)
		}
	}

	if o.cfg.logHandler != nil {
		o.logger = slog.New(o.cfg.logHandler)
	} else {
		o.logger = slog.Default()
	}

	if o.cfg.msink == nil {
		o.cfg.msink = metrics.Default()
	}

	o.platform = o.cfg.platform
	o.ticker = o.cfg.ticker
	o.distList = o.cfg.distList
	if o.cfg.fallback != nil {
		o.fallback = o.cfg.fallback
	} else {
		o.fallback = o.defaultFallback
	}

	return o, nil
}

// Platform returns the host family descriptor the object was built with.
func (o *Object) Platform() Platform { return o.platform }

// Compatibility reports whether cross-platform compatibility mode is on.
func (o *Object) Compatibility() bool { return o.cfg.compat }

// setupFail latches a declaration error: the first one is kept and every
// later one joined, so a constructor can declare everything and check once.
func (o *Object) setupFail(err error) error {
	o.setupErr = errors.Join(o.setupErr, err)
	return err
}

// SetupErr returns the accumulated declaration errors, nil if none. A
// non-nil result is fatal to the object's construction.
func (o *Object) SetupErr() error { return o.setupErr }

// ShouldExit is the cooperative cancellation flag workers must poll.
func (o *Object) ShouldExit() bool { return o.shouldExit.Load() }

// Workers returns the number of live worker goroutines.
func (o *Object) Workers() int {
	o.wcond.Lock()
	defer o.wcond.Unlock()
	return o.workers
}

// StartWorker runs fn on its own goroutine and tracks it until it returns.
// Long-running handlers go here; they emit through the Queue* calls and
// poll ShouldExit.
func (o *Object) StartWorker(name string, fn func(*Object)) error {
	if o.ShouldExit() {
		return ErrStopped
	}

	o.wcond.Lock()
	o.workers++
	o.wcond.Unlock()

	o.cfg.msink.IncrCounterWithLabels(MetricWorkerStartCount, 1.0,
		append([]metrics.Label{LabelWorker.M(name)}, o.cfg.metricLabels...))
	o.logger.Debug("worker started", LabelWorker.L(name))

	go func() {
		defer func() {
			o.wcond.Lock()
			o.workers--
			o.wcond.Signal()
			o.wcond.Unlock()
			o.logger.Debug("worker finished", LabelWorker.L(name))
		}()
		fn(o)
	}()
	return nil
}

// Stop raises the exit flag and waits for every worker to finish, polling
// with a timed wait so a stuck worker surfaces in the logs instead of
// hanging the teardown silently.
func (o *Object) Stop() {
	if o.shouldExit.Swap(true) {
		return
	}

	start := time.Now()
	o.logger.Info("stopping...")

	o.wcond.Lock()
	for o.workers > 0 {
		if o.wcond.TimedWait(1.0) {
			o.logger.Warn("still waiting for workers", "workers", o.workers)
		}
	}
	o.wcond.Unlock()

	o.unbindAll()

	o.logger.Info("stopped", LabelDuration.L(time.Since(start)))
}
