package fmod

import "sync/atomic"

// Resource wrappers move through a one-way state machine:
//
//	live -> released   (explicit Release, or Stop for channels)
//	live -> stale      (native object invalidated underneath the wrapper)
//
// Both end states are terminal. The word is atomic so concurrent operations
// observe a consistent state, and the transition helpers return whether the
// caller won the transition (exactly-once cleanup).
const (
	stateLive int32 = iota
	stateReleased
	stateStale
)

type res struct {
	handle uintptr
	state  atomic.Int32
}

// raw returns the native handle, or the terminal-state error.
func (r *res) raw() (uintptr, error) {
	switch r.state.Load() {
	case stateReleased:
		return 0, ErrReleasedHandle
	case stateStale:
		return 0, ErrStaleHandle
	}
	return r.handle, nil
}

func (r *res) release() bool { return r.state.CompareAndSwap(stateLive, stateReleased) }
func (r *res) invalidate() bool { return r.state.CompareAndSwap(stateLive, stateStale) }
