package fmod_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/handles"
	"github.com/velora-audio/fmod-go/pkg/fmod"
)

func TestChannelPlaybackControls(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)
	defer snd.Release()

	ch, err := sys.PlaySound(snd, nil, true)
	require.NoError(t, err)

	paused, err := ch.Paused()
	require.NoError(t, err)
	require.True(t, paused)

	require.NoError(t, ch.SetPaused(false))
	playing, err := ch.IsPlaying()
	require.NoError(t, err)
	require.True(t, playing)

	require.NoError(t, ch.SetVolume(0.25))
	vol, err := ch.Volume()
	require.NoError(t, err)
	require.Equal(t, float32(0.25), vol)

	require.NoError(t, ch.SetPitch(2))
	pitch, err := ch.Pitch()
	require.NoError(t, err)
	require.Equal(t, float32(2), pitch)
}

func TestChannelStopIsTerminal(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)
	defer snd.Release()

	ch, err := sys.PlaySound(snd, nil, false)
	require.NoError(t, err)

	require.NoError(t, ch.Stop())
	require.ErrorIs(t, ch.Stop(), fmod.ErrReleasedHandle)
	_, err = ch.IsPlaying()
	require.ErrorIs(t, err, fmod.ErrReleasedHandle)
}

func TestChannelStaleAfterSystemRelease(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)
	ch, err := sys.PlaySound(snd, nil, false)
	require.NoError(t, err)

	require.NoError(t, snd.Release())
	require.NoError(t, sys.Release())

	// A channel is a borrowed view: once the engine is released the wrapper
	// must go stale without forwarding the call into the dead library.
	reached := false
	prev := bindings.ChannelIsPlaying
	bindings.ChannelIsPlaying = func(h uintptr, playing *bindings.Bool) bindings.Result {
		reached = true
		return prev(h, playing)
	}
	t.Cleanup(func() { bindings.ChannelIsPlaying = prev })

	_, err = ch.IsPlaying()
	require.ErrorIs(t, err, fmod.ErrStaleHandle)
	require.False(t, reached)

	// Terminal from then on.
	_, err = ch.Volume()
	require.ErrorIs(t, err, fmod.ErrStaleHandle)
}

func TestVoiceStealingMakesChannelStale(t *testing.T) {
	sys, e := newTestSystem(t, fmod.Config{MaxChannels: 2})

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)
	defer snd.Release()

	first, err := sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
	_, err = sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
	_, err = sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
	require.Equal(t, 1, e.StolenChannels())

	// The first operation on the stolen wrapper observes staleness; both
	// the stale sentinel and the native code are visible.
	_, err = first.Volume()
	require.ErrorIs(t, err, fmod.ErrStaleHandle)
	require.ErrorIs(t, err, fmod.ErrChannelStolen)

	// Stale is terminal: later operations fail the same way without
	// touching the engine.
	require.ErrorIs(t, first.SetVolume(1), fmod.ErrStaleHandle)
}

func TestChannelNeeds3D(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	flat, err := sys.CreateSound("ui.wav", fmod.ModeDefault)
	require.NoError(t, err)
	defer flat.Release()

	ch, err := sys.PlaySound(flat, nil, false)
	require.NoError(t, err)
	err = ch.Set3DAttributes(fmod.Vector{X: 1}, fmod.Vector{})
	require.ErrorIs(t, err, fmod.ErrNeeds3D)

	spatial, err := sys.CreateSound("step.wav", fmod.Mode3D)
	require.NoError(t, err)
	defer spatial.Release()

	ch3d, err := sys.PlaySound(spatial, nil, false)
	require.NoError(t, err)
	require.NoError(t, ch3d.Set3DAttributes(fmod.Vector{X: 1}, fmod.Vector{}))
}

func TestChannelUserDataReclaimedOnStaleness(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{MaxChannels: 1})

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)
	defer snd.Release()

	before := handles.Count()

	first, err := sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
	require.NoError(t, first.SetUserData("emitter-17"))
	require.Equal(t, before+1, handles.Count())

	got, err := first.UserData()
	require.NoError(t, err)
	require.Equal(t, "emitter-17", got)

	// Steal the voice; the borrowed entry is reclaimed when staleness is
	// first observed.
	_, err = sys.PlaySound(snd, nil, false)
	require.NoError(t, err)
	_, err = first.UserData()
	require.ErrorIs(t, err, fmod.ErrStaleHandle)
	require.Equal(t, before, handles.Count())
}

func TestChannelGroupAssignment(t *testing.T) {
	sys, _ := newTestSystem(t, fmod.Config{})

	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
	require.NoError(t, err)
	defer snd.Release()

	sfx, err := sys.CreateChannelGroup("sfx")
	require.NoError(t, err)
	defer sfx.Release()

	ch, err := sys.PlaySound(snd, sfx, false)
	require.NoError(t, err)
	require.NoError(t, ch.SetChannelGroup(sfx))

	// Stopping the group kills its channels; the wrapper observes it as
	// staleness on next use.
	require.NoError(t, sfx.Stop())
	_, err = ch.IsPlaying()
	require.ErrorIs(t, err, fmod.ErrStaleHandle)
}
