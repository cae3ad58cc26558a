// Package leaktest provides a goroutine leak check for tests of the
// long-running pieces: the worker pool, the scheduler, and the retrying
// event publisher.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// GoroutineChecker records the goroutine count at construction and
// compares against it later.
type GoroutineChecker struct {
	before int
	t      testing.TB
}

// NewGoroutineChecker creates a checker and records the current goroutine count
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let background goroutines from earlier tests settle first
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		before: runtime.NumGoroutine(),
		t:      t,
	}
}

// Check fails the test when more than tolerance goroutines outlived the
// checked code.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	runtime.Gosched()
	time.Sleep(50 * time.Millisecond)
	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	after := runtime.NumGoroutine()
	leaked := after - g.before
	if leaked > tolerance {
		g.t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			g.before, after, leaked, tolerance)
	}
}
