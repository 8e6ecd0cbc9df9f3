// Package guard makes creation and release of the engine's top-level handle
// race-free. The native library documents that creating or releasing a system
// races with every other call into the library, and that a release
// invalidates all dependent handles. Rather than serializing the whole API
// behind a lock, this package serializes only the create/release edge:
//
//   - a write lock is held across native system create and release,
//   - a read lock is taken by the handful of global free functions (Hold)
//     that the header documents as racing create/release, and by Retain so
//     that resource construction is ordered against release,
//   - everything else runs lock-free, relying on the native library's own
//     post-init thread-safety guarantees.
//
// A process-wide flag refuses a second safe-path system while one is live,
// and a strong-reference counter on the Lifetime keeps release refused while
// any dependent resource wrapper exists.
package guard

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrAlreadyInitialized reports a safe-path system creation attempt
	// while a system is live. Recoverable; the existing system keeps working.
	ErrAlreadyInitialized = errors.New("fmod: a system already exists; only one may be created safely")

	// ErrResourcesStillLive reports a release attempt while dependent
	// resource wrappers still hold strong references. Recoverable; release
	// the resources first.
	ErrResourcesStillLive = errors.New("fmod: system still has live resource handles")

	// ErrEngineReleased reports resource construction against a lifetime
	// whose system has already been released.
	ErrEngineReleased = errors.New("fmod: system has been released")
)

var (
	// stateMu serializes system create/release against each other and
	// against guarded free functions. Never held during ordinary resource
	// calls.
	stateMu sync.RWMutex

	// singleton is the safe-path existence flag, guarded by stateMu.
	singleton bool
)

// Lifetime tracks one live system connection: its strong-reference count and
// terminal released flag. Every resource wrapper retains on construction and
// releases on destruction; the system can only be destroyed at zero.
type Lifetime struct {
	refs     atomic.Int64
	released atomic.Bool
	gated    bool
}

// Create runs the native system creation under the write lock, refusing with
// ErrAlreadyInitialized when a safe-path system is already live. On native
// failure the flag is left absent and the error is returned unchanged.
func Create(create func() error) (*Lifetime, error) {
	stateMu.Lock()
	defer stateMu.Unlock()
	if singleton {
		return nil, ErrAlreadyInitialized
	}
	if err := create(); err != nil {
		return nil, err
	}
	singleton = true
	return &Lifetime{gated: true}, nil
}

// CreateUnchecked runs the native system creation under the write lock but
// skips the singleton refusal, deliberately permitting additional concurrent
// systems. The write lock still keeps the creation itself from racing guarded
// free functions and other create/release calls, but every other race
// obligation shifts to the caller: releasing any system while another
// system's calls are in flight is undefined behavior, not a reported error.
func CreateUnchecked(create func() error) (*Lifetime, error) {
	stateMu.Lock()
	defer stateMu.Unlock()
	if err := create(); err != nil {
		return nil, err
	}
	return &Lifetime{}, nil
}

// Retain takes a strong reference for a resource wrapper under construction.
// Fails once the system is released; a failed Retain leaves the count
// untouched. The read lock keeps Retain ordered against Destroy: a Retain
// either completes before Destroy inspects the count, or observes the
// released flag afterwards.
func (l *Lifetime) Retain() error {
	stateMu.RLock()
	defer stateMu.RUnlock()
	if l.released.Load() {
		return ErrEngineReleased
	}
	l.refs.Add(1)
	return nil
}

// Release drops a strong reference. Must pair with exactly one successful
// Retain.
func (l *Lifetime) Release() {
	if n := l.refs.Add(-1); n < 0 {
		panic("fmod: lifetime reference count underflow")
	}
}

// Refs returns the current strong-reference count.
func (l *Lifetime) Refs() int64 { return l.refs.Load() }

// Destroy runs the native system release under the write lock. It refuses
// with ErrResourcesStillLive while strong references remain, and is terminal
// on success: later Retain and Destroy calls fail. A native release error is
// returned but the lifetime stays terminal; the native handle must be
// presumed gone.
func (l *Lifetime) Destroy(destroy func() error) error {
	stateMu.Lock()
	defer stateMu.Unlock()
	if l.released.Load() {
		return ErrEngineReleased
	}
	// Refusals are decided before the flag flips: a concurrent Retain never
	// observes a transient released state from a Destroy that then refuses.
	if l.refs.Load() != 0 {
		return ErrResourcesStillLive
	}
	l.released.Store(true)
	err := destroy()
	if l.gated {
		singleton = false
	}
	return err
}

// Released reports whether Destroy has completed for this lifetime.
func (l *Lifetime) Released() bool { return l.released.Load() }

// Hold runs fn under the read lock, preventing system create or release for
// its duration. Used by the global free functions (memory statistics, disk
// busy state) that the native header documents as racing system create.
func Hold(fn func() error) error {
	stateMu.RLock()
	defer stateMu.RUnlock()
	return fn()
}
