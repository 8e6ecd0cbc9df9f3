package fmod_test

import (
	"errors"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/enginefake"
	"github.com/velora-audio/fmod-go/internal/handles"
	"github.com/velora-audio/fmod-go/pkg/fmod"
)

// newTestSystem installs a fresh fake engine and opens a system against it.
// Cleanup releases the system so the process-wide singleton gate is free for
// the next test.
func newTestSystem(t *testing.T, cfg fmod.Config) (*fmod.System, *enginefake.Engine) {
	t.Helper()
	e := enginefake.New()
	e.Install()
	sys, err := fmod.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := sys.Release(); err != nil && !errors.Is(err, fmod.ErrReleasedHandle) {
			t.Fatalf("cleanup release: %v", err)
		}
	})
	return sys, e
}

func TestNewSystemRefusesSecond(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	_, err := fmod.NewSystem(fmod.Config{})
	require.ErrorIs(t, err, fmod.ErrAlreadyInitialized)

	require.NoError(t, sys.Release())

	// Released systems free the slot for a new one.
	sys2, err := fmod.NewSystem(fmod.Config{})
	require.NoError(t, err)
	require.NoError(t, sys2.Release())
}

func TestNewSystemUncheckedBypassesGate(t *testing.T) {
	sys, e := newTestSystem(t, fmod.Config{})

	second, err := fmod.NewSystemUnchecked(fmod.Config{})
	require.NoError(t, err)
	require.Equal(t, 2, e.SystemCount())

	require.NoError(t, second.Release())
	require.NoError(t, sys.Release())
	require.Equal(t, 0, e.SystemCount())
}

func TestReleaseRefusedWhileResourcesLive(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)

	err = sys.Release()
	require.ErrorIs(t, err, fmod.ErrResourcesStillLive)

	// The refused release must not have torn anything down.
	_, err = snd.Length(fmod.TimeUnitMS)
	require.NoError(t, err)

	require.NoError(t, snd.Release())
	require.NoError(t, sys.Release())
}

func TestReleaseIsTerminal(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})
	require.NoError(t, sys.Release())

	require.ErrorIs(t, sys.Release(), fmod.ErrReleasedHandle)
	require.ErrorIs(t, sys.Update(), fmod.ErrReleasedHandle)
	_, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.ErrorIs(t, err, fmod.ErrReleasedHandle)
	_, err = sys.ChannelsPlaying()
	require.ErrorIs(t, err, fmod.ErrReleasedHandle)
}

func TestConcurrentNewSystemOneWinner(t *testing.T) {
	e := enginefake.New()
	e.Install()

	const racers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*fmod.System
		losers  int
	)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sys, err := fmod.NewSystem(fmod.Config{})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				winners = append(winners, sys)
				return
			}
			if errors.Is(err, fmod.ErrAlreadyInitialized) {
				losers++
			}
		}()
	}
	wg.Wait()

	require.Len(t, winners, 1)
	require.Equal(t, racers-1, losers)
	require.Equal(t, 1, e.SystemCount())
	require.NoError(t, winners[0].Release())
}

func TestVersion(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	v, err := sys.Version()
	require.NoError(t, err)
	require.Equal(t, 2, v.Major)
}

func TestCreateSoundNativeFailureReleasesRef(t *testing.T) {
	sys, e := newTestSystem(t, fmod.Config{})

	e.FailNext("SystemCreateSound", bindings.ErrFormat)
	_, err := sys.CreateSound("broken.wav", fmod.ModeDefault)
	require.ErrorIs(t, err, fmod.ErrFormat)

	// The failed creation must not leave a stray reference behind.
	require.NoError(t, sys.Release())
}

func TestNonBlockingSoundLoad(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	snd, err := sys.CreateSound("music.ogg", fmod.ModeNonBlocking)
	require.NoError(t, err)
	defer snd.Release()

	state, _, err := snd.OpenState()
	require.NoError(t, err)
	require.Equal(t, fmod.OpenStateLoading, state)

	_, err = sys.PlaySound(snd, nil, false)
	require.ErrorIs(t, err, fmod.ErrNotReady)

	require.NoError(t, sys.Update())

	state, percent, err := snd.OpenState()
	require.NoError(t, err)
	require.Equal(t, fmod.OpenStateReady, state)
	require.Equal(t, uint32(100), percent)

	_, err = sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
}

func TestCreateSoundFromMemory(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	snd, err := sys.CreateSoundFromMemory([]byte("RIFF...."), fmod.ModeDefault)
	require.NoError(t, err)
	require.NoError(t, snd.Release())

	_, err = sys.CreateSoundFromMemory(nil, fmod.ModeDefault)
	require.ErrorIs(t, err, fmod.ErrInvalidParam)
}

func TestCreateSoundNameReachesEngine(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	// The filename crosses the FFI boundary as a pointer into a Go buffer;
	// the engine must read the exact bytes the caller passed, GC or not.
	const name = "assets/music/combat-theme-loop.ogg"
	snd, err := sys.CreateSound(name, fmod.ModeDefault)
	require.NoError(t, err)
	defer snd.Release()

	runtime.GC()

	got, err := snd.Name()
	require.NoError(t, err)
	require.Equal(t, name, got)
}

func TestSoundUserDataLifecycle(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	before := handles.Count()

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)

	type tag struct{ name string }
	require.NoError(t, snd.SetUserData(&tag{name: "ui"}))

	got, err := snd.UserData()
	require.NoError(t, err)
	require.Equal(t, "ui", got.(*tag).name)

	// Replacing drops the old entry.
	require.NoError(t, snd.SetUserData(&tag{name: "music"}))
	require.Equal(t, before+1, handles.Count())

	require.NoError(t, snd.Release())
	require.Equal(t, before, handles.Count())

	_, err = snd.UserData()
	require.ErrorIs(t, err, fmod.ErrReleasedHandle)
}

func TestChannelGroupRouting(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	sfx, err := sys.CreateChannelGroup("sfx")
	require.NoError(t, err)
	music, err := sys.CreateChannelGroup("music")
	require.NoError(t, err)

	require.NoError(t, sfx.AddGroup(music))
	require.NoError(t, sfx.SetVolume(0.5))
	vol, err := sfx.Volume()
	require.NoError(t, err)
	require.Equal(t, float32(0.5), vol)

	master, err := sys.MasterChannelGroup()
	require.NoError(t, err)
	require.ErrorIs(t, master.Release(), fmod.ErrInvalidParam)

	require.NoError(t, music.Release())
	require.NoError(t, sfx.Release())
}

func TestMasterGroupStaleAfterSystemRelease(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	master, err := sys.MasterChannelGroup()
	require.NoError(t, err)
	require.NoError(t, sys.Release())

	// The borrowed wrapper must refuse before the call reaches the released
	// engine.
	reached := false
	prev := bindings.ChannelGroupSetVolume
	bindings.ChannelGroupSetVolume = func(g uintptr, volume float32) bindings.Result {
		reached = true
		return prev(g, volume)
	}
	t.Cleanup(func() { bindings.ChannelGroupSetVolume = prev })

	require.ErrorIs(t, master.SetVolume(0.5), fmod.ErrStaleHandle)
	require.False(t, reached)
}

func TestDSPParameters(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	echo, err := sys.CreateDSPByType(fmod.DSPTypeEcho)
	require.NoError(t, err)

	dspType, err := echo.Type()
	require.NoError(t, err)
	require.Equal(t, fmod.DSPTypeEcho, dspType)

	require.NoError(t, echo.SetParameterFloat(0, 250))
	v, err := echo.ParameterFloat(0)
	require.NoError(t, err)
	require.Equal(t, float32(250), v)

	require.NoError(t, echo.SetActive(true))
	active, err := echo.Active()
	require.NoError(t, err)
	require.True(t, active)

	require.NoError(t, echo.Release())
	require.ErrorIs(t, echo.SetActive(false), fmod.ErrReleasedHandle)
}

func TestGeometryCapacity(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	geo, err := sys.CreateGeometry(1, 16)
	require.NoError(t, err)

	quad := []fmod.Vector{{X: 0}, {X: 1}, {X: 1, Z: 1}, {Z: 1}}
	idx, err := geo.AddPolygon(1, 0.5, true, quad)
	require.NoError(t, err)
	require.Equal(t, 0, idx)

	_, err = geo.AddPolygon(1, 0.5, true, quad)
	require.ErrorIs(t, err, fmod.ErrMemory)

	n, err := geo.PolygonCount()
	require.NoError(t, err)
	require.Equal(t, 1, n)

	require.NoError(t, geo.Release())
}

func TestReverbZone(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	zone, err := sys.CreateReverb3D()
	require.NoError(t, err)

	require.NoError(t, zone.Set3DAttributes(fmod.Vector{X: 10}, 5, 20))
	err = zone.Set3DAttributes(fmod.Vector{}, 20, 5)
	require.ErrorIs(t, err, fmod.ErrInvalidParam)

	require.NoError(t, zone.SetProperties(fmod.ReverbProperties{DecayTime: 1500}))
	require.NoError(t, zone.SetActive(false))
	require.NoError(t, zone.Release())
}

func TestGlobalsUnderHold(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})
	_ = sys

	cur, max, err := fmod.MemoryStats()
	require.NoError(t, err)
	require.GreaterOrEqual(t, max, cur)

	unlock, err := fmod.LockDiskBusy()
	require.NoError(t, err)
	busy, err := fmod.DiskBusy()
	require.NoError(t, err)
	require.True(t, busy)
	require.NoError(t, unlock())
	busy, err = fmod.DiskBusy()
	require.NoError(t, err)
	require.False(t, busy)
}
