// Package thr provides the synchronization primitives used between an
// external's worker goroutines and the host thread: a mutex with a counted
// Push/Pop discipline for nested acquisition within one logical owner, and a
// monitor-style condition variable with a float-seconds timed wait.
package thr

import (
	"sync"
	"time"
)

// Mutex wraps a non-recursive mutex and adds a counted Push/Pop pair: the
// first Push performs the real Lock, nested Pushes only increment the
// counter, and the matching outermost Pop performs the real Unlock.
//
// The counter assumes a single logical owner chain. It is a nesting
// discipline, not a recursive lock: two goroutines must not contend for the
// same counted region through Push/Pop — use Lock/Unlock for that.
type Mutex struct {
	mu  sync.Mutex
	cnt int
}

// Lock acquires the mutex, blocking until it is available.
func (m *Mutex) Lock() { m.mu.Lock() }

// TryLock acquires the mutex if it is free and reports whether it did.
func (m *Mutex) TryLock() bool { return m.mu.TryLock() }

// Unlock releases the mutex.
func (m *Mutex) Unlock() { m.mu.Unlock() }

// Push acquires the mutex on the first call of a nesting chain and counts
// every further call.
func (m *Mutex) Push() {
	if m.cnt == 0 {
		m.mu.Lock()
	}
	m.cnt++
}

// Pop undoes one Push and releases the mutex when the chain unwinds fully.
func (m *Mutex) Pop() {
	m.cnt--
	if m.cnt == 0 {
		m.mu.Unlock()
	}
}

// Cond extends Mutex with monitor semantics. The caller must hold the mutex
// around Wait and TimedWait; both re-acquire it before returning.
type Cond struct {
	Mutex
	cond *sync.Cond
}

// NewCond builds a condition variable bound to its own mutex.
func NewCond() *Cond {
	c := &Cond{}
	c.cond = sync.NewCond(&c.mu)
	return c
}

// Wait blocks until the condition is signaled.
func (c *Cond) Wait() { c.cond.Wait() }

// TimedWait blocks until the condition is signaled or the given number of
// seconds elapsed, and reports whether it timed out. The duration is
// decomposed into whole seconds plus a nanosecond remainder.
func (c *Cond) TimedWait(secs float64) bool {
	sec := int64(secs)
	nsec := int64((secs - float64(sec)) * 1e9)
	d := time.Duration(sec)*time.Second + time.Duration(nsec)*time.Nanosecond

	timedout := false
	t := time.AfterFunc(d, func() {
		c.mu.Lock()
		timedout = true
		c.cond.Broadcast()
		c.mu.Unlock()
	})
	c.cond.Wait()
	t.Stop()
	return timedout
}

// Signal wakes one waiter.
func (c *Cond) Signal() { c.cond.Signal() }

// Broadcast wakes all waiters.
func (c *Cond) Broadcast() { c.cond.Broadcast() }
