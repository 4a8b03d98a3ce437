package thr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMutex_PushPopSingleRealLockPair(t *testing.T) {
	m := &Mutex{}

	const depth = 5
	for i := 0; i < depth; i++ {
		m.Push()
		// The underlying lock must be held from the first Push on.
		require.False(t, m.TryLock(), "lock must be held at depth %d", i+1)
	}
	for i := 0; i < depth-1; i++ {
		m.Pop()
		require.False(t, m.TryLock(), "lock must stay held until the last Pop")
	}
	m.Pop()

	require.True(t, m.TryLock(), "last Pop must release the lock")
	m.Unlock()
}

func TestMutex_LockBlocksOtherGoroutine(t *testing.T) {
	m := &Mutex{}
	m.Lock()

	acquired := make(chan struct{})
	go func() {
		m.Lock()
		close(acquired)
		m.Unlock()
	}()

	select {
	case <-acquired:
		t.Fatal("lock acquired while held")
	case <-time.After(50 * time.Millisecond):
	}

	m.Unlock()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock never acquired after release")
	}
}

func TestCond_SignalWakesWaiter(t *testing.T) {
	c := NewCond()
	ready := make(chan struct{})
	woken := make(chan struct{})

	go func() {
		c.Lock()
		close(ready)
		c.Wait()
		c.Unlock()
		close(woken)
	}()

	<-ready
	// The waiter released the mutex inside Wait; we can take it to signal.
	c.Lock()
	c.Signal()
	c.Unlock()

	select {
	case <-woken:
	case <-time.After(time.Second):
		t.Fatal("waiter never woke up")
	}
}

func TestCond_TimedWaitTimesOut(t *testing.T) {
	c := NewCond()
	c.Lock()
	start := time.Now()
	timedout := c.TimedWait(0.05)
	c.Unlock()

	require.True(t, timedout)
	require.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)
}

func TestCond_TimedWaitSignaledEarly(t *testing.T) {
	c := NewCond()

	go func() {
		time.Sleep(10 * time.Millisecond)
		c.Lock()
		c.Signal()
		c.Unlock()
	}()

	c.Lock()
	timedout := c.TimedWait(5.0)
	c.Unlock()
	require.False(t, timedout)
}

func TestCond_BroadcastWakesAll(t *testing.T) {
	c := NewCond()
	const waiters = 3
	woken := make(chan struct{}, waiters)

	for i := 0; i < waiters; i++ {
		go func() {
			c.Lock()
			c.Wait()
			c.Unlock()
			woken <- struct{}{}
		}()
	}

	// Give the waiters a moment to park.
	time.Sleep(20 * time.Millisecond)
	c.Lock()
	c.Broadcast()
	c.Unlock()

	for i := 0; i < waiters; i++ {
		select {
		case <-woken:
		case <-time.After(time.Second):
			t.Fatal("not all waiters woken")
		}
	}
}
