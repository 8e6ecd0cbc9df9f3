package fmod

import (
	"context"
	"runtime"
	"sync"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/handles"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// DSP is an instantiated effect unit. It holds its System alive until
// Release.
type DSP struct {
	res
	sys *System

	mu      sync.Mutex
	userKey uintptr
}

func newDSP(sys *System, handle uintptr) *DSP {
	d := &DSP{sys: sys}
	d.handle = handle
	runtime.SetFinalizer(d, func(d *DSP) {
		if d.state.Load() == stateLive {
			d.sys.log.Warn(context.Background(), "dsp leaked without Release",
				logging.Handle("dsp", d.handle))
		}
	})
	return d
}

// Release frees the unit and drops the strong reference on the system.
func (d *DSP) Release() error {
	if !d.release() {
		_, err := d.raw()
		return err
	}
	runtime.SetFinalizer(d, nil)
	d.dropUserData()
	err := resultErr("DSPRelease", bindings.DSPRelease(d.handle))
	d.sys.life.Release()
	return err
}

// SetActive switches the unit's processing on or off.
func (d *DSP) SetActive(active bool) error {
	h, err := d.raw()
	if err != nil {
		return err
	}
	return resultErr("DSPSetActive", bindings.DSPSetActive(h, bindings.FromBool(active)))
}

// Active reports whether the unit is processing.
func (d *DSP) Active() (bool, error) {
	h, err := d.raw()
	if err != nil {
		return false, err
	}
	var active bindings.Bool
	if err := resultErr("DSPGetActive", bindings.DSPGetActive(h, &active)); err != nil {
		return false, err
	}
	return active == bindings.True, nil
}

// SetBypass passes audio through the unit unprocessed.
func (d *DSP) SetBypass(bypass bool) error {
	h, err := d.raw()
	if err != nil {
		return err
	}
	return resultErr("DSPSetBypass", bindings.DSPSetBypass(h, bindings.FromBool(bypass)))
}

// SetParameterFloat sets one of the unit's float parameters by index.
func (d *DSP) SetParameterFloat(index int, value float32) error {
	h, err := d.raw()
	if err != nil {
		return err
	}
	return resultErr("DSPSetParameterFloat", bindings.DSPSetParameterFloat(h, int32(index), value))
}

// ParameterFloat reads one of the unit's float parameters by index.
func (d *DSP) ParameterFloat(index int) (float32, error) {
	h, err := d.raw()
	if err != nil {
		return 0, err
	}
	var value float32
	r := bindings.DSPGetParameterFloat(h, int32(index), &value, nil, 0)
	if err := resultErr("DSPGetParameterFloat", r); err != nil {
		return 0, err
	}
	return value, nil
}

// Type reports which built-in effect this unit is.
func (d *DSP) Type() (DSPType, error) {
	h, err := d.raw()
	if err != nil {
		return 0, err
	}
	var t bindings.DSPType
	if err := resultErr("DSPGetType", bindings.DSPGetType(h, &t)); err != nil {
		return 0, err
	}
	return t, nil
}

// SetUserData attaches an arbitrary Go value to the unit; it lives until
// replaced or the unit is released.
func (d *DSP) SetUserData(v any) error {
	h, err := d.raw()
	if err != nil {
		return err
	}
	var key uintptr
	if v != nil {
		key = handles.Register(v)
	}
	if err := resultErr("DSPSetUserData", bindings.DSPSetUserData(h, key)); err != nil {
		handles.Unregister(key)
		return err
	}
	d.mu.Lock()
	old := d.userKey
	d.userKey = key
	d.mu.Unlock()
	handles.Unregister(old)
	return nil
}

// UserData returns the value attached with SetUserData, nil when unset.
func (d *DSP) UserData() (any, error) {
	h, err := d.raw()
	if err != nil {
		return nil, err
	}
	var key uintptr
	if err := resultErr("DSPGetUserData", bindings.DSPGetUserData(h, &key)); err != nil {
		return nil, err
	}
	return handles.Lookup(key), nil
}

func (d *DSP) dropUserData() {
	d.mu.Lock()
	key := d.userKey
	d.userKey = 0
	d.mu.Unlock()
	handles.Unregister(key)
}
