// Package memory provides in-memory implementations of the repository
// contracts for deterministic tests. Each fake records per-operation call
// counts and last arguments, and supports configurable fault and latency
// injection.
package memory

import (
	"context"
	"sync"
	"time"
)

// FaultConfig controls failure and latency injection on a fake. A non-nil
// Err makes every operation fail with it; a positive Delay suspends every
// operation for that duration first.
type FaultConfig struct {
	Err   error
	Delay time.Duration
}

// fakeCore is the shared recording and fault-injection machinery embedded by
// every fake repository.
type fakeCore struct {
	mu       sync.Mutex
	calls    map[string]int
	lastArgs map[string][]any
	fault    FaultConfig
}

// SetFault replaces the fault configuration.
func (f *fakeCore) SetFault(cfg FaultConfig) {
	f.mu.Lock()
	f.fault = cfg
	f.mu.Unlock()
}

// FailWith makes every subsequent operation fail with err. Pass nil to
// disable fault injection.
func (f *fakeCore) FailWith(err error) {
	f.mu.Lock()
	f.fault.Err = err
	f.mu.Unlock()
}

// SetDelay makes every subsequent operation suspend for d before proceeding
// or failing.
func (f *fakeCore) SetDelay(d time.Duration) {
	f.mu.Lock()
	f.fault.Delay = d
	f.mu.Unlock()
}

// CallCount returns how many times op was attempted, successful or not.
func (f *fakeCore) CallCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op]
}

// LastArgs returns the arguments of the most recent call to op.
func (f *fakeCore) LastArgs(op string) []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.lastArgs[op]
}

// begin records the attempt, applies the configured delay as a genuine
// suspension, then reports the injected fault if any. It runs before any
// state mutation so a faulted call leaves the backing store untouched.
func (f *fakeCore) begin(ctx context.Context, op string, args ...any) error {
	f.mu.Lock()
	f.recordLocked(op, args)
	cfg := f.fault
	f.mu.Unlock()

	if cfg.Delay > 0 {
		t := time.NewTimer(cfg.Delay)
		defer t.Stop()
		select {
		case <-t.C:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return cfg.Err
}

// record tracks a call without delay or fault injection; used by the
// synchronous non-failing operations.
func (f *fakeCore) record(op string, args ...any) {
	f.mu.Lock()
	f.recordLocked(op, args)
	f.mu.Unlock()
}

func (f *fakeCore) recordLocked(op string, args []any) {
	if f.calls == nil {
		f.calls = map[string]int{}
		f.lastArgs = map[string][]any{}
	}
	f.calls[op]++
	f.lastArgs[op] = args
}

// resetCore zeroes counters, captured arguments, and fault configuration.
func (f *fakeCore) resetCore() {
	f.mu.Lock()
	f.calls = nil
	f.lastArgs = nil
	f.fault = FaultConfig{}
	f.mu.Unlock()
}
