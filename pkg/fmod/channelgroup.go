package fmod

import (
	"context"
	"runtime"
	"sync"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/handles"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// ChannelGroup is a submix bucket. Groups created with CreateChannelGroup
// hold the System alive until Release; the master group wrapper is borrowed
// and refuses Release (the engine owns it).
type ChannelGroup struct {
	res
	sys      *System
	borrowed bool

	mu      sync.Mutex
	userKey uintptr
}

func newChannelGroup(sys *System, handle uintptr, borrowed bool) *ChannelGroup {
	g := &ChannelGroup{sys: sys, borrowed: borrowed}
	g.handle = handle
	if !borrowed {
		runtime.SetFinalizer(g, func(g *ChannelGroup) {
			if g.state.Load() == stateLive {
				g.sys.log.Warn(context.Background(), "channel group leaked without Release",
					logging.Handle("group", g.handle))
			}
		})
	}
	return g
}

// live returns the native handle after consulting the system lifetime. The
// master group wrapper is borrowed and does not hold the System alive, so it
// must not forward into a released engine; it flips stale instead. Owned
// groups hold a strong reference, which keeps the system alive while they
// are live.
func (g *ChannelGroup) live(op string) (uintptr, error) {
	h, err := g.raw()
	if err != nil {
		return 0, err
	}
	if g.borrowed && g.sys.life.Released() {
		g.invalidate()
		return 0, staleErr(op, bindings.ErrInvalidHandle)
	}
	return h, nil
}

// Release frees the group and drops the strong reference on the system.
func (g *ChannelGroup) Release() error {
	if g.borrowed {
		return &Error{Op: "ChannelGroupRelease", Code: bindings.ErrInvalidParam}
	}
	if !g.release() {
		_, err := g.raw()
		return err
	}
	runtime.SetFinalizer(g, nil)
	g.dropUserData()
	err := resultErr("ChannelGroupRelease", bindings.ChannelGroupRelease(g.handle))
	g.sys.life.Release()
	return err
}

// AddGroup nests child under this group in the submix graph.
func (g *ChannelGroup) AddGroup(child *ChannelGroup) error {
	h, err := g.live("ChannelGroupAddGroup")
	if err != nil {
		return err
	}
	ch, err := child.live("ChannelGroupAddGroup")
	if err != nil {
		return err
	}
	return resultErr("ChannelGroupAddGroup", bindings.ChannelGroupAddGroup(h, ch, bindings.True, nil))
}

// SetVolume sets the group's linear gain, scaling every routed voice.
func (g *ChannelGroup) SetVolume(volume float32) error {
	h, err := g.live("ChannelGroupSetVolume")
	if err != nil {
		return err
	}
	return resultErr("ChannelGroupSetVolume", bindings.ChannelGroupSetVolume(h, volume))
}

// Volume reports the group's linear gain.
func (g *ChannelGroup) Volume() (float32, error) {
	h, err := g.live("ChannelGroupGetVolume")
	if err != nil {
		return 0, err
	}
	var volume float32
	if err := resultErr("ChannelGroupGetVolume", bindings.ChannelGroupGetVolume(h, &volume)); err != nil {
		return 0, err
	}
	return volume, nil
}

// Stop stops every voice routed through this group.
func (g *ChannelGroup) Stop() error {
	h, err := g.live("ChannelGroupStop")
	if err != nil {
		return err
	}
	return resultErr("ChannelGroupStop", bindings.ChannelGroupStop(h))
}

// SetPaused pauses or resumes every voice routed through this group.
func (g *ChannelGroup) SetPaused(paused bool) error {
	h, err := g.live("ChannelGroupSetPaused")
	if err != nil {
		return err
	}
	return resultErr("ChannelGroupSetPaused", bindings.ChannelGroupSetPaused(h, bindings.FromBool(paused)))
}

// SetUserData attaches an arbitrary Go value to the group; it lives until
// replaced or the group is released.
func (g *ChannelGroup) SetUserData(v any) error {
	h, err := g.live("ChannelGroupSetUserData")
	if err != nil {
		return err
	}
	var key uintptr
	if v != nil {
		key = handles.Register(v)
	}
	if err := resultErr("ChannelGroupSetUserData", bindings.ChannelGroupSetUserData(h, key)); err != nil {
		handles.Unregister(key)
		return err
	}
	g.mu.Lock()
	old := g.userKey
	g.userKey = key
	g.mu.Unlock()
	handles.Unregister(old)
	return nil
}

// UserData returns the value attached with SetUserData, nil when unset.
func (g *ChannelGroup) UserData() (any, error) {
	h, err := g.live("ChannelGroupGetUserData")
	if err != nil {
		return nil, err
	}
	var key uintptr
	if err := resultErr("ChannelGroupGetUserData", bindings.ChannelGroupGetUserData(h, &key)); err != nil {
		return nil, err
	}
	return handles.Lookup(key), nil
}

func (g *ChannelGroup) dropUserData() {
	g.mu.Lock()
	key := g.userKey
	g.userKey = 0
	g.mu.Unlock()
	handles.Unregister(key)
}
