package bindings_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/pkg/fmod"
	"github.com/velora-audio/fmod-go/pkg/fmod/studio"
)

// This test binary never installs a backend, so the package-level loaded
// state stays false and the refusal paths are observable.

func TestLoadMissingLibrary(t *testing.T) {
	err := bindings.Load("/nonexistent/libfmod.so", "")
	require.Error(t, err)
	if !errors.Is(err, bindings.ErrLibraryNotFound) && !errors.Is(err, bindings.ErrNotBuilt) {
		t.Fatalf("Load error = %v, want ErrLibraryNotFound or ErrNotBuilt", err)
	}
	require.False(t, bindings.Loaded())
	require.False(t, bindings.StudioLoaded())

	// A failed attempt must not latch; the next call tries again and fails
	// the same way.
	require.Error(t, bindings.Load("/nonexistent/libfmod.so", ""))
	require.False(t, bindings.Loaded())
}

func TestLoadConcurrentFailuresAreSerialized(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := bindings.Load("/nonexistent/libfmod.so", ""); err == nil {
				t.Error("Load of a nonexistent library succeeded")
			}
		}()
	}
	wg.Wait()
	require.False(t, bindings.Loaded())
}

func TestFacadeRefusesBeforeLoad(t *testing.T) {
	_, err := fmod.NewSystem(fmod.Config{})
	require.ErrorIs(t, err, fmod.ErrNotLoaded)

	_, err = fmod.NewSystemUnchecked(fmod.Config{})
	require.ErrorIs(t, err, fmod.ErrNotLoaded)

	_, err = studio.New(studio.Config{})
	require.ErrorIs(t, err, fmod.ErrNotLoaded)
}
