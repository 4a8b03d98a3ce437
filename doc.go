// Package extern is a host-independent core for building *externals*:
// loadable objects for real-time patching environments of the Max/MSP and
// Pure Data family.
//
// An external declares *inlets* and *outlets* (together: *xlets*), registers
// typed message handlers per inlet, and lets the host feed it messages. The
// hard part this package owns is the middle of that pipeline:
//
//   - The xlet registry: an ordered declaration of inlet/outlet slots,
//     materialized exactly once against a `HostBinder`.
//   - The method registry: per-inlet ordered handler entries, each binding a
//     selector tag plus an argument-kind descriptor to a typed Go function.
//   - The dispatcher: given `(inlet, selector, args)`, it scans tagged entries
//     first, then untagged defaults, coercing the raw atom vector against each
//     candidate's descriptor; the first full match wins.
//   - Outlet delivery: typed sends translated to the host's native primitives
//     through the `Outlet` interface.
//   - The cross-thread queue: worker goroutines must never touch an outlet
//     directly; they enqueue deliveries which the host thread drains in FIFO
//     order from its tick callback.
//
// ## Atoms and platforms
//
// The two host families disagree on the atom model: one has a true integer
// atom and no pointer atom, the other has pointer atoms and represents every
// number as a float. Instead of conditional compilation, those facts are a
// runtime `Platform` descriptor (`PlatformMax`, `PlatformPd`) carried by the
// object; coercion consults it when a handler asks for an int where the host
// only has floats (truncation toward zero) or for a float where the host
// handed us an int (exact widening).
//
// ## Concurrency model
//
// Registries are write-once: frozen at `SetupInOut`, read without locks
// afterwards, so dispatch is safe under reentrant message delivery. The only
// concurrently mutated structure is the delivery queue, a singly-linked FIFO
// guarded by a `thr.Mutex`; `Drain` detaches the whole list under the lock
// and delivers unlocked, so a slow host send can never block producers and no
// lock is ever held across a host callback.
//
// Dependencies are kept minimal:
//
//   - `log/slog`, to let you choose how to treat structured logs.
//   - [`hashicorp/go-metrics`][dep-met], for dispatch and queue telemetry.
//
// [dep-met]: https://pkg.go.dev/github.com/hashicorp/go-metrics
package extern
