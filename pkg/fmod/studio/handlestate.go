package studio

import (
	"sync/atomic"

	"github.com/velora-audio/fmod-go/pkg/fmod"
)

// Studio wrappers share the core facade's one-way state machine
// (live -> released | stale, both terminal), with one difference: Studio
// objects have native liveness queries, so staleness is detected eagerly on
// every access instead of reactively from failure codes.
const (
	stateLive int32 = iota
	stateReleased
	stateStale
)

type res struct {
	handle uintptr
	state  atomic.Int32

	// onTerminal runs exactly once, on the winning transition out of the
	// live state. Wrappers holding a strong system reference drop it here.
	onTerminal func()
}

// raw returns the native handle after consulting the wrapper state and the
// native liveness query. A false IsValid flips the wrapper stale.
func (r *res) raw(op string, isValid func(uintptr) bool) (uintptr, error) {
	switch r.state.Load() {
	case stateReleased:
		return 0, fmod.ErrReleasedHandle
	case stateStale:
		return 0, fmod.ErrStaleHandle
	}
	if !isValid(r.handle) {
		r.terminate(stateStale)
		return 0, staleErr(op)
	}
	return r.handle, nil
}

func (r *res) terminate(to int32) bool {
	if !r.state.CompareAndSwap(stateLive, to) {
		return false
	}
	if r.onTerminal != nil {
		r.onTerminal()
	}
	return true
}
