package enginefake

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/velora-audio/fmod-go/internal/bindings"
)

func install(t *testing.T) *Engine {
	t.Helper()
	e := New()
	e.Install()
	return e
}

func createSystem(t *testing.T, e *Engine) uintptr {
	t.Helper()
	var sys uintptr
	require.Equal(t, bindings.OK, bindings.SystemCreate(&sys, bindings.HeaderVersion))
	return sys
}

func TestSystemLifecycle(t *testing.T) {
	e := install(t)

	var sys uintptr
	require.Equal(t, bindings.ErrHeaderMismatch, bindings.SystemCreate(&sys, 0x00010000))

	sys = createSystem(t, e)
	require.Equal(t, 1, e.SystemCount())

	var snd uintptr
	require.Equal(t, bindings.ErrUninitialized,
		bindings.SystemPlaySound(sys, snd, 0, bindings.False, new(uintptr)))

	require.Equal(t, bindings.OK, bindings.SystemInit(sys, 32, 0, 0))
	require.Equal(t, bindings.OK, bindings.SystemRelease(sys))
	require.Equal(t, 0, e.LiveObjects())

	require.Equal(t, bindings.ErrInvalidHandle, bindings.SystemUpdate(sys))
}

func TestReleaseDropsOwnedObjects(t *testing.T) {
	e := install(t)
	sys := createSystem(t, e)
	require.Equal(t, bindings.OK, bindings.SystemInit(sys, 32, 0, 0))

	var group, dsp uintptr
	require.Equal(t, bindings.OK, bindings.SystemCreateChannelGroup(sys, "sfx", &group))
	require.Equal(t, bindings.OK, bindings.SystemCreateDSPByType(sys, bindings.DSPTypeEcho, &dsp))
	require.Equal(t, 3, e.LiveObjects())

	require.Equal(t, bindings.OK, bindings.SystemRelease(sys))
	require.Equal(t, 0, e.LiveObjects())
	require.Equal(t, bindings.ErrInvalidHandle, bindings.ChannelGroupSetVolume(group, 0.5))
}

func TestVoiceStealing(t *testing.T) {
	e := install(t)
	sys := createSystem(t, e)
	require.Equal(t, bindings.OK, bindings.SystemInit(sys, 2, 0, 0))

	name := append([]byte("beep.wav"), 0)
	var snd uintptr
	require.Equal(t, bindings.OK,
		bindings.SystemCreateSound(sys, &name[0], bindings.ModeDefault, nil, &snd))

	var first, second, third uintptr
	require.Equal(t, bindings.OK, bindings.SystemPlaySound(sys, snd, 0, bindings.False, &first))
	require.Equal(t, bindings.OK, bindings.SystemPlaySound(sys, snd, 0, bindings.False, &second))
	require.Equal(t, bindings.OK, bindings.SystemPlaySound(sys, snd, 0, bindings.False, &third))

	require.Equal(t, 1, e.StolenChannels())
	require.Equal(t, bindings.ErrChannelStolen, bindings.ChannelStop(first))

	var playing int32
	require.Equal(t, bindings.OK, bindings.SystemGetChannelsPlaying(sys, &playing, nil))
	require.Equal(t, int32(2), playing)
}

func TestNonBlockingLoadCompletesOnUpdate(t *testing.T) {
	e := install(t)
	sys := createSystem(t, e)
	require.Equal(t, bindings.OK, bindings.SystemInit(sys, 8, 0, 0))

	name := append([]byte("music.ogg"), 0)
	var snd uintptr
	require.Equal(t, bindings.OK,
		bindings.SystemCreateSound(sys, &name[0], bindings.ModeNonBlocking, nil, &snd))

	require.Equal(t, bindings.ErrNotReady,
		bindings.SystemPlaySound(sys, snd, 0, bindings.False, new(uintptr)))

	var state bindings.OpenState
	require.Equal(t, bindings.OK, bindings.SoundGetOpenState(snd, &state, nil, nil, nil))
	require.Equal(t, bindings.OpenStateLoading, state)

	require.Equal(t, bindings.OK, bindings.SystemUpdate(sys))
	require.Equal(t, bindings.OK, bindings.SoundGetOpenState(snd, &state, nil, nil, nil))
	require.Equal(t, bindings.OpenStateReady, state)
	require.Equal(t, bindings.OK,
		bindings.SystemPlaySound(sys, snd, 0, bindings.False, new(uintptr)))
}

func TestBankUnloadInvalidatesDescendants(t *testing.T) {
	e := install(t)
	e.BankEvents["Master.bank"] = []string{"event:/UI/Click"}

	var studio uintptr
	require.Equal(t, bindings.OK, bindings.StudioSystemCreate(&studio, bindings.HeaderVersion))
	require.Equal(t, bindings.OK, bindings.StudioSystemInitialize(studio, 32, 0, 0, 0))

	var bank uintptr
	require.Equal(t, bindings.OK,
		bindings.StudioSystemLoadBankFile(studio, "Master.bank", bindings.LoadBankNormal, &bank))

	var desc uintptr
	require.Equal(t, bindings.OK, bindings.StudioSystemGetEvent(studio, "event:/UI/Click", &desc))
	var inst uintptr
	require.Equal(t, bindings.OK, bindings.StudioEventDescriptionCreateInstance(desc, &inst))
	require.Equal(t, bindings.True, bindings.StudioEventInstanceIsValid(inst))

	require.Equal(t, bindings.OK, bindings.StudioBankUnload(bank))
	require.Equal(t, bindings.False, bindings.StudioBankIsValid(bank))
	require.Equal(t, bindings.False, bindings.StudioEventDescriptionIsValid(desc))
	require.Equal(t, bindings.False, bindings.StudioEventInstanceIsValid(inst))

	require.Equal(t, bindings.OK, bindings.StudioSystemRelease(studio))
	require.Equal(t, 0, e.LiveObjects())
}

func TestNonBlockingBankLoad(t *testing.T) {
	e := install(t)
	e.BankEvents["SFX.bank"] = []string{"event:/Explosion"}

	var studio uintptr
	require.Equal(t, bindings.OK, bindings.StudioSystemCreate(&studio, bindings.HeaderVersion))
	require.Equal(t, bindings.OK, bindings.StudioSystemInitialize(studio, 32, 0, 0, 0))

	var bank uintptr
	require.Equal(t, bindings.OK,
		bindings.StudioSystemLoadBankFile(studio, "SFX.bank", bindings.LoadBankNonBlocking, &bank))

	var state bindings.LoadingState
	require.Equal(t, bindings.OK, bindings.StudioBankGetLoadingState(bank, &state))
	require.Equal(t, bindings.LoadingStateLoading, state)

	var desc uintptr
	require.Equal(t, bindings.ErrNotReady,
		bindings.StudioSystemGetEvent(studio, "event:/Explosion", &desc))

	require.Equal(t, bindings.OK, bindings.StudioSystemUpdate(studio))
	require.Equal(t, bindings.OK, bindings.StudioBankGetLoadingState(bank, &state))
	require.Equal(t, bindings.LoadingStateLoaded, state)
	require.Equal(t, bindings.OK, bindings.StudioSystemGetEvent(studio, "event:/Explosion", &desc))
}

func TestFailNext(t *testing.T) {
	e := install(t)
	sys := createSystem(t, e)
	e.FailNext("SystemCreateChannelGroup", bindings.ErrMemory)

	var group uintptr
	require.Equal(t, bindings.ErrMemory, bindings.SystemCreateChannelGroup(sys, "sfx", &group))
	require.Equal(t, bindings.OK, bindings.SystemCreateChannelGroup(sys, "sfx", &group))
}
