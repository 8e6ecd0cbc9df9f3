package fmod

import (
	"context"
	"runtime"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Reverb3D is a positional reverb zone. It holds its System alive until
// Release.
type Reverb3D struct {
	res
	sys *System
}

func newReverb3D(sys *System, handle uintptr) *Reverb3D {
	rv := &Reverb3D{sys: sys}
	rv.handle = handle
	runtime.SetFinalizer(rv, func(rv *Reverb3D) {
		if rv.state.Load() == stateLive {
			rv.sys.log.Warn(context.Background(), "reverb zone leaked without Release",
				logging.Handle("reverb", rv.handle))
		}
	})
	return rv
}

// Release frees the zone and drops the strong reference on the system.
func (rv *Reverb3D) Release() error {
	if !rv.release() {
		_, err := rv.raw()
		return err
	}
	runtime.SetFinalizer(rv, nil)
	err := resultErr("Reverb3DRelease", bindings.Reverb3DRelease(rv.handle))
	rv.sys.life.Release()
	return err
}

// Set3DAttributes places the zone: full effect inside minDistance, fading
// out to none at maxDistance.
func (rv *Reverb3D) Set3DAttributes(pos Vector, minDistance, maxDistance float32) error {
	h, err := rv.raw()
	if err != nil {
		return err
	}
	r := bindings.Reverb3DSet3DAttributes(h, &pos, minDistance, maxDistance)
	return resultErr("Reverb3DSet3DAttributes", r)
}

// SetProperties applies a reverb preset to the zone.
func (rv *Reverb3D) SetProperties(props ReverbProperties) error {
	h, err := rv.raw()
	if err != nil {
		return err
	}
	return resultErr("Reverb3DSetProperties", bindings.Reverb3DSetProperties(h, &props))
}

// SetActive switches the zone on or off.
func (rv *Reverb3D) SetActive(active bool) error {
	h, err := rv.raw()
	if err != nil {
		return err
	}
	return resultErr("Reverb3DSetActive", bindings.Reverb3DSetActive(h, bindings.FromBool(active)))
}
