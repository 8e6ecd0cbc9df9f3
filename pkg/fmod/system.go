package fmod

import (
	"context"
	"unsafe"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/guard"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// System is the engine handle. All resources are created from it and hold it
// alive; Release refuses while any of them is live.
type System struct {
	handle uintptr
	life   *guard.Lifetime
	cfg    Config
	log    logging.Logger

	// borrowed marks a core system owned by a Studio system; releasing it
	// directly is refused, the Studio system drives its lifetime.
	borrowed bool

	initialized bool
}

// NewSystem creates the engine instance through the safe single-instance
// path. It fails with ErrAlreadyInitialized while another safely created
// system (core or Studio) is alive. The system is created but not
// initialized; call Init, or use Open for both at once.
func NewSystem(cfg Config) (*System, error) {
	return newSystem(cfg, guard.Create)
}

// NewSystemUnchecked creates an engine instance without the single-instance
// refusal. Creation and release still serialize against the safe path and
// the guarded global functions, but the caller assumes the native library's
// documented obligations for running multiple systems.
func NewSystemUnchecked(cfg Config) (*System, error) {
	return newSystem(cfg, guard.CreateUnchecked)
}

// Open is NewSystem followed by Init, releasing the half-built system if
// initialization fails.
func Open(cfg Config) (*System, error) {
	sys, err := NewSystem(cfg)
	if err != nil {
		return nil, err
	}
	if err := sys.Init(); err != nil {
		_ = sys.Release()
		return nil, err
	}
	return sys, nil
}

func newSystem(cfg Config, gate func(func() error) (*guard.Lifetime, error)) (*System, error) {
	if !bindings.Loaded() {
		return nil, ErrNotLoaded
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var handle uintptr
	life, err := gate(func() error {
		return resultErr("SystemCreate", bindings.SystemCreate(&handle, bindings.HeaderVersion))
	})
	if err != nil {
		return nil, err
	}

	s := &System{handle: handle, life: life, cfg: cfg, log: cfg.logger()}
	s.log.Debug(context.Background(), "system created", logging.Handle("system", handle))
	return s, nil
}

// NewBorrowedSystem wraps a native core system owned by a Studio system.
// Only the studio subpackage can call it: *guard.Lifetime lives in an
// internal package, so code outside this module cannot produce the
// arguments. The wrapper refuses Release; the Studio system drives the
// lifetime.
func NewBorrowedSystem(handle uintptr, life *guard.Lifetime, cfg Config) *System {
	return &System{handle: handle, life: life, cfg: cfg, log: cfg.logger(), borrowed: true, initialized: true}
}

// Init initializes the engine with the configured voice pool and flags.
func (s *System) Init() error {
	if s.life.Released() {
		return ErrReleasedHandle
	}
	r := bindings.SystemInit(s.handle, int32(s.cfg.MaxChannels), s.cfg.Flags, 0)
	if err := resultErr("SystemInit", r); err != nil {
		return err
	}
	s.initialized = true
	s.log.Debug(context.Background(), "system initialized",
		logging.Handle("system", s.handle), "max_channels", s.cfg.MaxChannels)
	return nil
}

// Close shuts down the mixer without destroying the system; resources stay
// valid and Init may be called again.
func (s *System) Close() error {
	if s.life.Released() {
		return ErrReleasedHandle
	}
	if err := resultErr("SystemClose", bindings.SystemClose(s.handle)); err != nil {
		return err
	}
	s.initialized = false
	return nil
}

// Release destroys the engine instance. It refuses with ErrResourcesStillLive
// while any resource created from this system is alive, and with
// ErrReleasedHandle after a successful release. Borrowed core systems (from
// a Studio system) refuse; release the Studio system instead.
func (s *System) Release() error {
	if s.borrowed {
		return &Error{Op: "SystemRelease", Code: bindings.ErrInvalidParam}
	}
	err := s.life.Destroy(func() error {
		return resultErr("SystemRelease", bindings.SystemRelease(s.handle))
	})
	if err == guard.ErrEngineReleased {
		return ErrReleasedHandle
	}
	if err != nil {
		return err
	}
	s.log.Debug(context.Background(), "system released", logging.Handle("system", s.handle))
	return nil
}

// Update pumps the engine: advances non-blocking loads, virtual voice
// management, and callbacks. Call once per frame.
func (s *System) Update() error {
	if s.life.Released() {
		return ErrReleasedHandle
	}
	return resultErr("SystemUpdate", bindings.SystemUpdate(s.handle))
}

// Version reports the native library's product version.
func (s *System) Version() (Version, error) {
	if s.life.Released() {
		return Version{}, ErrReleasedHandle
	}
	var raw uint32
	if err := resultErr("SystemGetVersion", bindings.SystemGetVersion(s.handle, &raw)); err != nil {
		return Version{}, err
	}
	return decodeVersion(raw), nil
}

// Handle exposes the raw native pointer for diagnostics. Do not release it.
func (s *System) Handle() uintptr { return s.handle }

// CreateSound loads an audio file. Mode bits control looping, 2D/3D, and
// blocking behavior; with ModeNonBlocking the sound comes back immediately
// and must be polled via OpenState before playing.
func (s *System) CreateSound(name string, mode Mode) (*Sound, error) {
	return s.createSound("SystemCreateSound", bindings.SystemCreateSound, name, nil, mode, nil)
}

// CreateStream is CreateSound with streaming decode (ModeCreateStream).
func (s *System) CreateStream(name string, mode Mode) (*Sound, error) {
	return s.createSound("SystemCreateStream", bindings.SystemCreateStream, name, nil, mode, nil)
}

// CreateSoundFromMemory loads an encoded audio file image from memory. The
// engine copies the buffer during the call; data may be reused afterwards.
func (s *System) CreateSoundFromMemory(data []byte, mode Mode) (*Sound, error) {
	if len(data) == 0 {
		return nil, &Error{Op: "SystemCreateSound", Code: bindings.ErrInvalidParam}
	}
	exInfo := &bindings.CreateSoundExInfo{Length: uint32(len(data))}
	return s.createSound("SystemCreateSound", bindings.SystemCreateSound, "", data, mode|ModeOpenMemory, exInfo)
}

// CreateSoundFromPCM wraps raw interleaved PCM samples as a playable sound.
func (s *System) CreateSoundFromPCM(data []byte, channels, sampleRate int32, format SoundFormat) (*Sound, error) {
	if len(data) == 0 || channels <= 0 || sampleRate <= 0 {
		return nil, &Error{Op: "SystemCreateSound", Code: bindings.ErrInvalidParam}
	}
	exInfo := &bindings.CreateSoundExInfo{
		Length:           uint32(len(data)),
		NumChannels:      channels,
		DefaultFrequency: sampleRate,
		Format:           format,
	}
	return s.createSound("SystemCreateSound", bindings.SystemCreateSound,
		"", data, ModeOpenMemory|ModeOpenRaw, exInfo)
}

func (s *System) createSound(op string, create func(uintptr, *byte, bindings.Mode, *bindings.CreateSoundExInfo, *uintptr) bindings.Result, name string, data []byte, mode Mode, exInfo *bindings.CreateSoundExInfo) (*Sound, error) {
	if err := s.life.Retain(); err != nil {
		return nil, ErrReleasedHandle
	}
	if exInfo != nil {
		exInfo.CBSize = int32(unsafe.Sizeof(*exInfo))
	}

	// nameOrData is a NUL-terminated filename unless the mode opens from
	// memory. Passed as *byte, never uintptr, so the buffer stays visible to
	// the runtime for the duration of the call.
	var nameOrData *byte
	if data != nil {
		nameOrData = &data[0]
	} else {
		nameBuf := append([]byte(name), 0)
		nameOrData = &nameBuf[0]
	}

	var handle uintptr
	r := create(s.handle, nameOrData, mode, exInfo, &handle)
	if err := resultErr(op, r); err != nil {
		s.life.Release()
		return nil, err
	}
	return newSound(s, handle, name, mode), nil
}

// CreateChannelGroup creates a named submix bucket.
func (s *System) CreateChannelGroup(name string) (*ChannelGroup, error) {
	if err := s.life.Retain(); err != nil {
		return nil, ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.SystemCreateChannelGroup(s.handle, name, &handle)
	if err := resultErr("SystemCreateChannelGroup", r); err != nil {
		s.life.Release()
		return nil, err
	}
	return newChannelGroup(s, handle, false), nil
}

// MasterChannelGroup returns the root submix. The wrapper is borrowed: it
// has no Release and does not hold the system.
func (s *System) MasterChannelGroup() (*ChannelGroup, error) {
	if s.life.Released() {
		return nil, ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.SystemGetMasterChannelGroup(s.handle, &handle)
	if err := resultErr("SystemGetMasterChannelGroup", r); err != nil {
		return nil, err
	}
	return newChannelGroup(s, handle, true), nil
}

// CreateDSPByType instantiates one of the built-in effect units.
func (s *System) CreateDSPByType(dspType DSPType) (*DSP, error) {
	if err := s.life.Retain(); err != nil {
		return nil, ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.SystemCreateDSPByType(s.handle, dspType, &handle)
	if err := resultErr("SystemCreateDSPByType", r); err != nil {
		s.life.Release()
		return nil, err
	}
	return newDSP(s, handle), nil
}

// CreateGeometry allocates an occlusion mesh with the given capacity.
func (s *System) CreateGeometry(maxPolygons, maxVertices int) (*Geometry, error) {
	if err := s.life.Retain(); err != nil {
		return nil, ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.SystemCreateGeometry(s.handle, int32(maxPolygons), int32(maxVertices), &handle)
	if err := resultErr("SystemCreateGeometry", r); err != nil {
		s.life.Release()
		return nil, err
	}
	return newGeometry(s, handle), nil
}

// CreateReverb3D creates a positional reverb zone.
func (s *System) CreateReverb3D() (*Reverb3D, error) {
	if err := s.life.Retain(); err != nil {
		return nil, ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.SystemCreateReverb3D(s.handle, &handle)
	if err := resultErr("SystemCreateReverb3D", r); err != nil {
		s.life.Release()
		return nil, err
	}
	return newReverb3D(s, handle), nil
}

// PlaySound starts a sound on a free voice and returns the Channel driving
// it. A nil group routes to the master channel group. The Channel is a
// borrowed view into the voice pool and may go stale at any time; see the
// Channel docs.
func (s *System) PlaySound(snd *Sound, group *ChannelGroup, paused bool) (*Channel, error) {
	if s.life.Released() {
		return nil, ErrReleasedHandle
	}
	sndHandle, err := snd.raw()
	if err != nil {
		return nil, err
	}
	var groupHandle uintptr
	if group != nil {
		groupHandle, err = group.raw()
		if err != nil {
			return nil, err
		}
	}
	var handle uintptr
	r := bindings.SystemPlaySound(s.handle, sndHandle, groupHandle, bindings.FromBool(paused), &handle)
	if err := resultErr("SystemPlaySound", r); err != nil {
		return nil, err
	}
	return newChannel(s, handle, snd.mode), nil
}

// Set3DSettings tunes the global doppler, distance, and rolloff scales.
func (s *System) Set3DSettings(dopplerScale, distanceFactor, rolloffScale float32) error {
	if s.life.Released() {
		return ErrReleasedHandle
	}
	r := bindings.SystemSet3DSettings(s.handle, dopplerScale, distanceFactor, rolloffScale)
	return resultErr("SystemSet3DSettings", r)
}

// SetListenerAttributes positions one listener in 3D space.
func (s *System) SetListenerAttributes(listener int, pos, vel, forward, up Vector) error {
	if s.life.Released() {
		return ErrReleasedHandle
	}
	r := bindings.SystemSet3DListenerAttributes(s.handle, int32(listener), &pos, &vel, &forward, &up)
	return resultErr("SystemSet3DListenerAttributes", r)
}

// ChannelsPlaying reports the number of voices currently audible.
func (s *System) ChannelsPlaying() (int, error) {
	if s.life.Released() {
		return 0, ErrReleasedHandle
	}
	var n int32
	r := bindings.SystemGetChannelsPlaying(s.handle, &n, nil)
	if err := resultErr("SystemGetChannelsPlaying", r); err != nil {
		return 0, err
	}
	return int(n), nil
}

// CPUUsage reports the engine's per-subsystem CPU consumption.
func (s *System) CPUUsage() (CPUUsage, error) {
	if s.life.Released() {
		return CPUUsage{}, ErrReleasedHandle
	}
	var usage bindings.CPUUsage
	r := bindings.SystemGetCPUUsage(s.handle, &usage)
	if err := resultErr("SystemGetCPUUsage", r); err != nil {
		return CPUUsage{}, err
	}
	return usage, nil
}

// Refs reports the number of live resources holding this system, exposed
// for diagnostics and tests.
func (s *System) Refs() int64 { return s.life.Refs() }
