package fmod

import (
	"context"
	"sync"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/handles"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Channel is a borrowed view into the engine's voice pool; it does not hold
// the System alive and has no Release. The engine may reclaim the voice at
// any time (voice stealing, playback ending), and core FMOD exposes no
// liveness query, so staleness is observed reactively: the first operation
// that hits FMOD_ERR_INVALID_HANDLE or FMOD_ERR_CHANNEL_STOLEN moves the
// wrapper to its terminal stale state and every operation from then on
// returns ErrStaleHandle.
//
// Because the reclaim is asynchronous, user data on a channel is borrowed
// only: the wrapper reclaims its registry entry when staleness is first
// observed, but callers must not rely on a channel to keep a value alive.
type Channel struct {
	res
	sys  *System
	mode Mode // mode of the sound this voice was started with

	mu      sync.Mutex
	userKey uintptr
}

func newChannel(sys *System, handle uintptr, mode Mode) *Channel {
	c := &Channel{sys: sys, mode: mode}
	c.handle = handle
	return c
}

// live returns the native handle after consulting both the wrapper state and
// the system lifetime. A channel does not hold the System alive, so once the
// engine has been released the call must not reach the native library; the
// wrapper flips stale without forwarding.
func (c *Channel) live(op string) (uintptr, error) {
	h, err := c.raw()
	if err != nil {
		return 0, err
	}
	if c.sys.life.Released() {
		if c.invalidate() {
			c.dropUserData()
			c.sys.log.Debug(context.Background(), "channel went stale",
				logging.Handle("channel", c.handle), "reason", "system released")
		}
		return 0, staleErr(op, bindings.ErrInvalidHandle)
	}
	return h, nil
}

// check inspects a native result, flipping the wrapper to stale when the
// voice has been reclaimed underneath it.
func (c *Channel) check(op string, r bindings.Result) error {
	if r == bindings.OK {
		return nil
	}
	if stolen(r) {
		if c.invalidate() {
			c.dropUserData()
			c.sys.log.Debug(context.Background(), "channel went stale",
				logging.Handle("channel", c.handle), "result", int32(r))
		}
		return staleErr(op, r)
	}
	return &Error{Op: op, Code: r}
}

// IsPlaying reports whether the voice is still audible or pending.
func (c *Channel) IsPlaying() (bool, error) {
	h, err := c.live("ChannelIsPlaying")
	if err != nil {
		return false, err
	}
	var playing bindings.Bool
	if err := c.check("ChannelIsPlaying", bindings.ChannelIsPlaying(h, &playing)); err != nil {
		return false, err
	}
	return playing == bindings.True, nil
}

// Stop ends playback and returns the voice to the pool. The wrapper is
// terminal afterwards.
func (c *Channel) Stop() error {
	h, err := c.live("ChannelStop")
	if err != nil {
		return err
	}
	if err := c.check("ChannelStop", bindings.ChannelStop(h)); err != nil {
		return err
	}
	if c.release() {
		c.dropUserData()
	}
	return nil
}

// SetPaused pauses or resumes the voice.
func (c *Channel) SetPaused(paused bool) error {
	h, err := c.live("ChannelSetPaused")
	if err != nil {
		return err
	}
	return c.check("ChannelSetPaused", bindings.ChannelSetPaused(h, bindings.FromBool(paused)))
}

// Paused reports the pause flag.
func (c *Channel) Paused() (bool, error) {
	h, err := c.live("ChannelGetPaused")
	if err != nil {
		return false, err
	}
	var paused bindings.Bool
	if err := c.check("ChannelGetPaused", bindings.ChannelGetPaused(h, &paused)); err != nil {
		return false, err
	}
	return paused == bindings.True, nil
}

// SetVolume sets the channel's linear gain.
func (c *Channel) SetVolume(volume float32) error {
	h, err := c.live("ChannelSetVolume")
	if err != nil {
		return err
	}
	return c.check("ChannelSetVolume", bindings.ChannelSetVolume(h, volume))
}

// Volume reports the channel's linear gain.
func (c *Channel) Volume() (float32, error) {
	h, err := c.live("ChannelGetVolume")
	if err != nil {
		return 0, err
	}
	var volume float32
	if err := c.check("ChannelGetVolume", bindings.ChannelGetVolume(h, &volume)); err != nil {
		return 0, err
	}
	return volume, nil
}

// SetPitch scales the playback rate.
func (c *Channel) SetPitch(pitch float32) error {
	h, err := c.live("ChannelSetPitch")
	if err != nil {
		return err
	}
	return c.check("ChannelSetPitch", bindings.ChannelSetPitch(h, pitch))
}

// Pitch reports the playback rate scale.
func (c *Channel) Pitch() (float32, error) {
	h, err := c.live("ChannelGetPitch")
	if err != nil {
		return 0, err
	}
	var pitch float32
	if err := c.check("ChannelGetPitch", bindings.ChannelGetPitch(h, &pitch)); err != nil {
		return 0, err
	}
	return pitch, nil
}

// Set3DAttributes positions the voice in 3D space. The sound must have been
// created with Mode3D; 2D voices are refused with ErrNeeds3D.
func (c *Channel) Set3DAttributes(pos, vel Vector) error {
	h, err := c.live("ChannelSet3DAttributes")
	if err != nil {
		return err
	}
	if c.mode&Mode3D == 0 {
		return &Error{Op: "ChannelSet3DAttributes", Code: bindings.ErrNeeds3D}
	}
	return c.check("ChannelSet3DAttributes", bindings.ChannelSet3DAttributes(h, &pos, &vel))
}

// SetChannelGroup routes the voice into a submix group.
func (c *Channel) SetChannelGroup(group *ChannelGroup) error {
	h, err := c.live("ChannelSetChannelGroup")
	if err != nil {
		return err
	}
	gh, err := group.live("ChannelSetChannelGroup")
	if err != nil {
		return err
	}
	return c.check("ChannelSetChannelGroup", bindings.ChannelSetChannelGroup(h, gh))
}

// CurrentSound reports the raw handle of the sound the voice is playing.
func (c *Channel) CurrentSound() (uintptr, error) {
	h, err := c.live("ChannelGetCurrentSound")
	if err != nil {
		return 0, err
	}
	var snd uintptr
	if err := c.check("ChannelGetCurrentSound", bindings.ChannelGetCurrentSound(h, &snd)); err != nil {
		return 0, err
	}
	return snd, nil
}

// SetUserData attaches a borrowed Go value to the voice. The entry is
// reclaimed when the wrapper observes staleness or Stop; a stolen voice may
// orphan the native slot, so the slot only ever stores a registry key.
func (c *Channel) SetUserData(v any) error {
	h, err := c.live("ChannelSetUserData")
	if err != nil {
		return err
	}
	var key uintptr
	if v != nil {
		key = handles.Register(v)
	}
	if err := c.check("ChannelSetUserData", bindings.ChannelSetUserData(h, key)); err != nil {
		handles.Unregister(key)
		return err
	}
	c.mu.Lock()
	old := c.userKey
	c.userKey = key
	c.mu.Unlock()
	handles.Unregister(old)
	return nil
}

// UserData returns the value attached with SetUserData, nil when unset.
func (c *Channel) UserData() (any, error) {
	h, err := c.live("ChannelGetUserData")
	if err != nil {
		return nil, err
	}
	var key uintptr
	if err := c.check("ChannelGetUserData", bindings.ChannelGetUserData(h, &key)); err != nil {
		return nil, err
	}
	return handles.Lookup(key), nil
}

func (c *Channel) dropUserData() {
	c.mu.Lock()
	key := c.userKey
	c.userKey = 0
	c.mu.Unlock()
	handles.Unregister(key)
}
