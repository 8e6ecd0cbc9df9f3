// Package fmod provides Go bindings for the FMOD Engine core API.
//
// The package wraps the closed-source native library behind typed handle
// wrappers. The native library is loaded at runtime with Load or LoadPath;
// nothing in this package works before a successful load.
//
// # System lifetime
//
// FMOD supports a single engine instance per process when used through the
// safe API. NewSystem enforces that: a second call fails with
// ErrAlreadyInitialized until the first system is released. Every resource
// created from a System (Sound, Channel, ChannelGroup, DSP, Geometry,
// Reverb3D) holds a strong reference on the system; System.Release refuses
// with ErrResourcesStillLive while any of them is alive, so a release can
// never pull the engine out from under a live handle.
//
//	sys, err := fmod.NewSystem(fmod.Config{MaxChannels: 64})
//	if err != nil { ... }
//	defer sys.Release()
//
//	snd, err := sys.CreateSound("beep.wav", fmod.ModeDefault)
//	if err != nil { ... }
//	defer snd.Release()
//
//	ch, err := sys.PlaySound(snd, nil, false)
//
// NewSystemUnchecked skips the single-instance refusal for callers who
// accept the native library's documented thread-safety obligations for
// multiple systems. It still serializes creation and release against the
// guarded global functions; everything else is on the caller.
//
// # Stale handles
//
// Channels are views into a fixed voice pool: when the pool is exhausted the
// engine reuses the oldest voice and the old Channel goes stale. Core FMOD
// has no liveness query, so staleness is observed reactively: the first
// operation that hits FMOD_ERR_INVALID_HANDLE or FMOD_ERR_CHANNEL_STOLEN
// moves the wrapper to a terminal stale state and returns ErrStaleHandle
// wrapping the native code. Subsequent operations keep returning
// ErrStaleHandle without touching the engine.
//
// # Errors
//
// Native failures surface as *Error carrying the verbatim FMOD_RESULT and
// the header's error string. Sentinel values (ErrChannelStolen, ErrNeeds3D,
// ErrNotReady, ...) support errors.Is for the codes callers branch on.
package fmod
