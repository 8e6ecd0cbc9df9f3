package studio_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/enginefake"
	"github.com/velora-audio/fmod-go/pkg/fmod"
	"github.com/velora-audio/fmod-go/pkg/fmod/studio"
)

func newTestSystem(t *testing.T, cfg studio.Config) (*studio.System, *enginefake.Engine) {
	t.Helper()
	e := enginefake.New()
	e.Install()
	sys, err := studio.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := sys.Release(); err != nil && !errors.Is(err, fmod.ErrReleasedHandle) {
			t.Fatalf("cleanup release: %v", err)
		}
	})
	return sys, e
}

func TestStudioSharesSingletonGate(t *testing.T) {
	sys, _ := newTestSystem(t, studio.Config{})

	// A Studio system implicitly creates a core system, so the safe core
	// path must refuse while it is alive, and vice versa.
	_, err := fmod.NewSystem(fmod.Config{})
	require.ErrorIs(t, err, fmod.ErrAlreadyInitialized)
	_, err = studio.New(studio.Config{})
	require.ErrorIs(t, err, fmod.ErrAlreadyInitialized)

	require.NoError(t, sys.Release())

	core, err := fmod.NewSystem(fmod.Config{})
	require.NoError(t, err)
	require.NoError(t, core.Release())
}

func TestCoreSystemIsBorrowed(t *testing.T) {
	sys, _ := newTestSystem(t, studio.Config{})

	core, err := sys.CoreSystem()
	require.NoError(t, err)

	_, err = core.ChannelsPlaying()
	require.NoError(t, err)

	// The Studio system drives the shared lifetime.
	require.Error(t, core.Release())
	require.NoError(t, sys.Release())
}

func TestReleaseRefusedWhileBankLoaded(t *testing.T) {
	sys, e := newTestSystem(t, studio.Config{})
	e.BankEvents["Master.bank"] = []string{"event:/UI/Click"}

	bank, err := sys.LoadBankFile("Master.bank", studio.LoadBankNormal)
	require.NoError(t, err)

	require.ErrorIs(t, sys.Release(), fmod.ErrResourcesStillLive)

	require.NoError(t, bank.Unload())
	require.NoError(t, sys.Release())
}

func TestNonBlockingBankLoad(t *testing.T) {
	sys, e := newTestSystem(t, studio.Config{})
	e.BankEvents["SFX.bank"] = []string{"event:/Explosion"}

	bank, err := sys.LoadBankFile("SFX.bank", studio.LoadBankNonBlocking)
	require.NoError(t, err)
	defer bank.Unload()

	state, err := bank.LoadingState()
	require.NoError(t, err)
	require.Equal(t, studio.LoadingStateLoading, state)

	_, err = sys.Event("event:/Explosion")
	require.ErrorIs(t, err, fmod.ErrNotReady)

	require.NoError(t, sys.Update())

	state, err = bank.LoadingState()
	require.NoError(t, err)
	require.Equal(t, studio.LoadingStateLoaded, state)

	desc, err := sys.Event("event:/Explosion")
	require.NoError(t, err)
	require.True(t, desc.IsValid())
}

func TestLoadBankMemory(t *testing.T) {
	sys, e := newTestSystem(t, studio.Config{})
	image := []byte("Music.bank")
	e.BankEvents[string(image)] = []string{"event:/Music/Theme"}

	bank, err := sys.LoadBankMemory(image, studio.LoadBankNormal)
	require.NoError(t, err)

	n, err := bank.EventCount()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	descs, err := bank.Events()
	require.NoError(t, err)
	require.Len(t, descs, 1)
	path, err := descs[0].Path()
	require.NoError(t, err)
	require.Equal(t, "event:/Music/Theme", path)

	require.NoError(t, bank.Unload())

	_, err = sys.LoadBankMemory(nil, studio.LoadBankNormal)
	require.ErrorIs(t, err, fmod.ErrInvalidParam)
}

func TestBankUnloadInvalidatesEverything(t *testing.T) {
	sys, e := newTestSystem(t, studio.Config{})
	e.BankEvents["Master.bank"] = []string{"event:/UI/Click"}

	bank, err := sys.LoadBankFile("Master.bank", studio.LoadBankNormal)
	require.NoError(t, err)

	desc, err := sys.Event("event:/UI/Click")
	require.NoError(t, err)
	inst, err := desc.CreateInstance()
	require.NoError(t, err)
	require.True(t, inst.IsValid())

	require.NoError(t, bank.Unload())

	// Descriptions and instances go stale, not undefined.
	require.False(t, desc.IsValid())
	require.False(t, inst.IsValid())
	_, err = desc.Path()
	require.ErrorIs(t, err, fmod.ErrStaleHandle)
	require.ErrorIs(t, inst.Start(), fmod.ErrStaleHandle)

	// The stale instance dropped its hold, so release succeeds.
	require.NoError(t, sys.Release())
}

func TestDescriptionStaleAfterSystemRelease(t *testing.T) {
	sys, e := newTestSystem(t, studio.Config{})
	e.BankEvents["Master.bank"] = []string{"event:/UI/Click"}

	bank, err := sys.LoadBankFile("Master.bank", studio.LoadBankNormal)
	require.NoError(t, err)
	desc, err := sys.Event("event:/UI/Click")
	require.NoError(t, err)

	require.NoError(t, bank.Unload())
	require.NoError(t, sys.Release())

	// A description is borrowed from its bank; once the engine is gone even
	// the native liveness query must not be forwarded.
	reached := false
	prev := bindings.StudioEventDescriptionIsValid
	bindings.StudioEventDescriptionIsValid = func(h uintptr) bindings.Bool {
		reached = true
		return prev(h)
	}
	t.Cleanup(func() { bindings.StudioEventDescriptionIsValid = prev })

	_, err = desc.Path()
	require.ErrorIs(t, err, fmod.ErrStaleHandle)
	require.False(t, desc.IsValid())
	require.False(t, reached)
}

func TestEventInstanceLifecycle(t *testing.T) {
	sys, e := newTestSystem(t, studio.Config{})
	e.BankEvents["SFX.bank"] = []string{"event:/Explosion"}
	e.Event3D["event:/Explosion"] = true
	e.EventOneshot["event:/Explosion"] = true

	bank, err := sys.LoadBankFile("SFX.bank", studio.LoadBankNormal)
	require.NoError(t, err)
	defer bank.Unload()

	desc, err := sys.Event("event:/Explosion")
	require.NoError(t, err)

	is3D, err := desc.Is3D()
	require.NoError(t, err)
	require.True(t, is3D)
	oneshot, err := desc.IsOneshot()
	require.NoError(t, err)
	require.True(t, oneshot)

	inst, err := desc.CreateInstance()
	require.NoError(t, err)

	require.NoError(t, inst.Start())
	state, err := inst.PlaybackState()
	require.NoError(t, err)
	require.Equal(t, studio.PlaybackPlaying, state)

	require.NoError(t, inst.SetVolume(0.8))
	require.NoError(t, inst.SetParameterByName("Size", 3))
	require.NoError(t, inst.Set3DAttributes(studio.Attributes3D{
		Position: fmod.Vector{X: 4},
		Forward:  fmod.Vector{Z: 1},
		Up:       fmod.Vector{Y: 1},
	}))

	// Fadeout stop settles on the next update.
	require.NoError(t, inst.Stop(studio.StopAllowFadeout))
	state, err = inst.PlaybackState()
	require.NoError(t, err)
	require.Equal(t, studio.PlaybackStopping, state)
	require.NoError(t, sys.Update())
	state, err = inst.PlaybackState()
	require.NoError(t, err)
	require.Equal(t, studio.PlaybackStopped, state)

	require.NoError(t, inst.Release())
	require.ErrorIs(t, inst.Start(), fmod.ErrReleasedHandle)
}
