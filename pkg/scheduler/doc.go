// Package scheduler provides small, cancellable delayed-execution
// primitives: a one-shot Schedule helper returning an idempotent CancelFunc,
// and a trailing-edge Debouncer that coalesces call bursts into a single
// execution of the most recently supplied callback.
//
// The package exists so that consumers depend on an explicit, testable
// contract (schedule, cancel, last-write-wins) instead of spreading raw
// time.Timer bookkeeping through their state handling.
//
//	deb := scheduler.NewDebouncer(500 * time.Millisecond)
//	deb.Call(func() { validate("s1") })
//	deb.Call(func() { validate("s2") }) // resets the delay; only s2 runs
//	deb.Cancel()                        // or nothing runs at all
package scheduler
