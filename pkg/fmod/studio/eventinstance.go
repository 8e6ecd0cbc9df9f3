package studio

import (
	"context"
	"runtime"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// EventInstance is one playable occurrence of an event. It holds the
// Studio system alive until Release; unloading the owning bank or tearing
// down the system flips it stale, which also drops the hold.
type EventInstance struct {
	res
	sys *System
}

func newEventInstance(sys *System, handle uintptr) *EventInstance {
	i := &EventInstance{sys: sys}
	i.handle = handle
	i.onTerminal = sys.life.Release
	runtime.SetFinalizer(i, func(i *EventInstance) {
		if i.state.Load() == stateLive {
			i.sys.log.Warn(context.Background(), "event instance leaked without Release",
				logging.Handle("instance", i.handle))
		}
	})
	return i
}

func instanceValid(h uintptr) bool {
	return bindings.StudioEventInstanceIsValid(h) == bindings.True
}

// IsValid reports whether the native instance is still alive. False flips
// the wrapper to its terminal stale state.
func (i *EventInstance) IsValid() bool {
	_, err := i.raw("StudioEventInstanceIsValid", instanceValid)
	return err == nil
}

// Start begins (or restarts) playback.
func (i *EventInstance) Start() error {
	h, err := i.raw("StudioEventInstanceStart", instanceValid)
	if err != nil {
		return err
	}
	return resultErr("StudioEventInstanceStart", bindings.StudioEventInstanceStart(h))
}

// Stop stops playback; StopAllowFadeout lets AHDSR releases run out,
// settling to stopped on a later Update.
func (i *EventInstance) Stop(mode StopMode) error {
	h, err := i.raw("StudioEventInstanceStop", instanceValid)
	if err != nil {
		return err
	}
	return resultErr("StudioEventInstanceStop", bindings.StudioEventInstanceStop(h, mode))
}

// Release frees the native instance and drops the hold on the system. The
// wrapper is terminal afterwards.
func (i *EventInstance) Release() error {
	h, err := i.raw("StudioEventInstanceRelease", instanceValid)
	if err != nil {
		return err
	}
	if err := resultErr("StudioEventInstanceRelease", bindings.StudioEventInstanceRelease(h)); err != nil {
		return err
	}
	runtime.SetFinalizer(i, nil)
	i.terminate(stateReleased)
	return nil
}

// SetParameterByName sets an event parameter by its authored name.
func (i *EventInstance) SetParameterByName(name string, value float32) error {
	h, err := i.raw("StudioEventInstanceSetParameterByName", instanceValid)
	if err != nil {
		return err
	}
	r := bindings.StudioEventInstanceSetParameterByName(h, name, value, bindings.False)
	return resultErr("StudioEventInstanceSetParameterByName", r)
}

// SetVolume scales the instance's output.
func (i *EventInstance) SetVolume(volume float32) error {
	h, err := i.raw("StudioEventInstanceSetVolume", instanceValid)
	if err != nil {
		return err
	}
	return resultErr("StudioEventInstanceSetVolume", bindings.StudioEventInstanceSetVolume(h, volume))
}

// PlaybackState reports where the instance is in its lifecycle.
func (i *EventInstance) PlaybackState() (PlaybackState, error) {
	h, err := i.raw("StudioEventInstanceGetPlaybackState", instanceValid)
	if err != nil {
		return 0, err
	}
	var state bindings.PlaybackState
	r := bindings.StudioEventInstanceGetPlaybackState(h, &state)
	if err := resultErr("StudioEventInstanceGetPlaybackState", r); err != nil {
		return 0, err
	}
	return state, nil
}

// Set3DAttributes positions the instance for its spatializer. Events
// without one are refused with ErrNeeds3D.
func (i *EventInstance) Set3DAttributes(attrs Attributes3D) error {
	h, err := i.raw("StudioEventInstanceSet3DAttributes", instanceValid)
	if err != nil {
		return err
	}
	return resultErr("StudioEventInstanceSet3DAttributes", bindings.StudioEventInstanceSet3DAttributes(h, &attrs))
}
