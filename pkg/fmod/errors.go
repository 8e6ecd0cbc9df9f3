package fmod

import (
	"errors"
	"fmt"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/guard"
)

var (
	// ErrAlreadyInitialized is returned by NewSystem when a system created
	// through the safe path is still alive.
	ErrAlreadyInitialized = guard.ErrAlreadyInitialized

	// ErrResourcesStillLive is returned by System.Release while sounds,
	// channels, or other derived resources still hold the system.
	ErrResourcesStillLive = guard.ErrResourcesStillLive

	// ErrReleasedHandle is returned by operations on a wrapper whose
	// Release has already run.
	ErrReleasedHandle = errors.New("fmod: handle has been released")

	// ErrStaleHandle is returned by operations on a wrapper whose native
	// object was invalidated out from under it (voice stealing, bank
	// unload, system teardown). It wraps the provoking native error.
	ErrStaleHandle = errors.New("fmod: handle is stale")

	// ErrNotLoaded is returned when the native library has not been loaded.
	ErrNotLoaded = bindings.ErrNotLoaded

	// ErrNotBuilt is returned on platforms the loader does not support.
	ErrNotBuilt = bindings.ErrNotBuilt
)

// Error wraps a native FMOD_RESULT failure. Op names the wrapper operation
// that hit it; Code is the verbatim native code.
type Error struct {
	Op   string
	Code bindings.Result
}

func (e *Error) Error() string {
	return fmt.Sprintf("fmod: %s: %s (FMOD_RESULT %d)", e.Op, e.Code.String(), int32(e.Code))
}

// Is matches another *Error on code alone, so sentinel values with an empty
// Op compare against any operation that produced the same native code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Code == e.Code && (t.Op == "" || t.Op == e.Op)
}

// Sentinels for the native codes the facade and its callers branch on.
var (
	ErrBadCommand     = &Error{Code: bindings.ErrBadCommand}
	ErrChannelAlloc   = &Error{Code: bindings.ErrChannelAlloc}
	ErrChannelStolen  = &Error{Code: bindings.ErrChannelStolen}
	ErrFileNotFound   = &Error{Code: bindings.ErrFileNotFound}
	ErrFormat         = &Error{Code: bindings.ErrFormat}
	ErrHeaderMismatch = &Error{Code: bindings.ErrHeaderMismatch}
	ErrInvalidHandle  = &Error{Code: bindings.ErrInvalidHandle}
	ErrInvalidParam   = &Error{Code: bindings.ErrInvalidParam}
	ErrMemory         = &Error{Code: bindings.ErrMemory}
	ErrNeeds3D        = &Error{Code: bindings.ErrNeeds3D}
	ErrNotReady       = &Error{Code: bindings.ErrNotReady}
	ErrTruncated      = &Error{Code: bindings.ErrTruncated}
	ErrUninitialized  = &Error{Code: bindings.ErrUninitialized}
	ErrEventNotFound  = &Error{Code: bindings.ErrEventNotFound}
)

// resultErr converts a native result into a wrapper error, nil for OK.
func resultErr(op string, r bindings.Result) error {
	if r == bindings.OK {
		return nil
	}
	return &Error{Op: op, Code: r}
}

// staleErr builds the terminal-state error for an invalidated handle. Both
// errors.Is(err, ErrStaleHandle) and errors.Is(err, ErrChannelStolen) (or
// whichever native code provoked it) hold on the result.
func staleErr(op string, r bindings.Result) error {
	return fmt.Errorf("%w: %w", ErrStaleHandle, &Error{Op: op, Code: r})
}

// stolen reports whether a native code means the handle is gone for good.
func stolen(r bindings.Result) bool {
	return r == bindings.ErrInvalidHandle || r == bindings.ErrChannelStolen
}
