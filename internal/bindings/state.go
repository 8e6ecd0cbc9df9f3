package bindings

import (
	"errors"
	"sync"
	"sync/atomic"
)

var (
	// ErrNotLoaded reports that no backend has populated the entry-point
	// table yet. Callers see this from every facade operation attempted
	// before Load (or a test install) succeeds.
	ErrNotLoaded = errors.New("fmod/bindings: native library not loaded")

	// ErrNotBuilt reports that this platform has no loader; the entry-point
	// table can only be populated by an in-process backend.
	ErrNotBuilt = errors.New("fmod/bindings: no dynamic loader for this platform")

	// ErrLibraryNotFound reports that the shared libraries could not be
	// resolved from the explicit paths or the default search names.
	ErrLibraryNotFound = errors.New("fmod/bindings: shared library not found")
)

var (
	loadMu       sync.Mutex
	loaded       atomic.Bool
	studioLoaded atomic.Bool
)

// Load resolves the FMOD shared libraries and populates the entry-point
// table. Core and Studio paths may be empty to use the default library names
// on the system search path. Load is idempotent; concurrent callers observe a
// single resolution attempt at a time and a successful load is never redone.
func Load(corePath, studioPath string) error {
	loadMu.Lock()
	defer loadMu.Unlock()
	if loaded.Load() {
		return nil
	}
	if err := loadLibraries(corePath, studioPath); err != nil {
		return err
	}
	loaded.Store(true)
	return nil
}

// Loaded reports whether the entry-point table is populated.
func Loaded() bool { return loaded.Load() }

// StudioLoaded reports whether the Studio library entry points are populated.
// The Studio library is optional at load time.
func StudioLoaded() bool { return studioLoaded.Load() }

// InstallBackend populates the entry-point table from an in-process backend
// instead of a shared library. fill assigns the function variables; markStudio
// declares whether the backend serves the Studio surface too. Intended for
// internal/enginefake and tests only; installing over a loaded library is not
// supported.
func InstallBackend(fill func(), withStudio bool) {
	loadMu.Lock()
	defer loadMu.Unlock()
	fill()
	loaded.Store(true)
	studioLoaded.Store(withStudio)
}
