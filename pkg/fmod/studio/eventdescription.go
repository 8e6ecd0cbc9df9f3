package studio

import (
	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/pkg/fmod"
)

// EventDescription is the blueprint of an authored event. It is a borrowed
// view owned by its bank: it does not hold the system alive, and unloading
// the bank flips it stale.
type EventDescription struct {
	res
	sys *System
}

func newEventDescription(sys *System, handle uintptr) *EventDescription {
	d := &EventDescription{sys: sys}
	d.handle = handle
	return d
}

func descValid(h uintptr) bool {
	return bindings.StudioEventDescriptionIsValid(h) == bindings.True
}

// live returns the native handle. A description is borrowed from its bank
// and does not hold the system alive, so the released-system check must come
// before the native liveness query: once the engine is gone, even IsValid
// must not be forwarded.
func (d *EventDescription) live(op string) (uintptr, error) {
	if d.sys.life.Released() {
		d.terminate(stateStale)
		return 0, staleErr(op)
	}
	return d.raw(op, descValid)
}

// IsValid reports whether the native description is still alive. False
// flips the wrapper to its terminal stale state.
func (d *EventDescription) IsValid() bool {
	_, err := d.live("StudioEventDescriptionIsValid")
	return err == nil
}

// CreateInstance creates a playable instance of the event. The instance
// holds the system alive until Release (or until bank unload invalidates
// it).
func (d *EventDescription) CreateInstance() (*EventInstance, error) {
	h, err := d.live("StudioEventDescriptionCreateInstance")
	if err != nil {
		return nil, err
	}
	if err := d.sys.life.Retain(); err != nil {
		return nil, fmod.ErrReleasedHandle
	}
	var instance uintptr
	r := bindings.StudioEventDescriptionCreateInstance(h, &instance)
	if err := resultErr("StudioEventDescriptionCreateInstance", r); err != nil {
		d.sys.life.Release()
		return nil, err
	}
	return newEventInstance(d.sys, instance), nil
}

// Path reports the event's authored path ("event:/...").
func (d *EventDescription) Path() (string, error) {
	h, err := d.live("StudioEventDescriptionGetPath")
	if err != nil {
		return "", err
	}
	return getPath(func(buf []byte, size int32, retrieved *int32) bindings.Result {
		return bindings.StudioEventDescriptionGetPath(h, buf, size, retrieved)
	}, "StudioEventDescriptionGetPath")
}

// ParameterCount reports how many parameters the event exposes.
func (d *EventDescription) ParameterCount() (int, error) {
	h, err := d.live("StudioEventDescriptionGetParameterCount")
	if err != nil {
		return 0, err
	}
	var n int32
	r := bindings.StudioEventDescriptionGetParameterCount(h, &n)
	if err := resultErr("StudioEventDescriptionGetParameterCount", r); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Is3D reports whether the event has a spatializer on its master track.
func (d *EventDescription) Is3D() (bool, error) {
	h, err := d.live("StudioEventDescriptionIs3D")
	if err != nil {
		return false, err
	}
	var is3D bindings.Bool
	if err := resultErr("StudioEventDescriptionIs3D", bindings.StudioEventDescriptionIs3D(h, &is3D)); err != nil {
		return false, err
	}
	return is3D == bindings.True, nil
}

// IsOneshot reports whether the event plays once and stops on its own.
func (d *EventDescription) IsOneshot() (bool, error) {
	h, err := d.live("StudioEventDescriptionIsOneshot")
	if err != nil {
		return false, err
	}
	var oneshot bindings.Bool
	if err := resultErr("StudioEventDescriptionIsOneshot", bindings.StudioEventDescriptionIsOneshot(h, &oneshot)); err != nil {
		return false, err
	}
	return oneshot == bindings.True, nil
}
