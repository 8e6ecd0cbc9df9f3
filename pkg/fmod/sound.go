package fmod

import (
	"context"
	"runtime"
	"sync"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/handles"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Sound is a loaded audio asset. It holds its System alive until Release.
type Sound struct {
	res
	sys  *System
	name string
	mode Mode

	mu      sync.Mutex
	userKey uintptr
}

func newSound(sys *System, handle uintptr, name string, mode Mode) *Sound {
	s := &Sound{sys: sys, name: name, mode: mode}
	s.handle = handle
	runtime.SetFinalizer(s, func(s *Sound) {
		if s.state.Load() == stateLive {
			s.sys.log.Warn(context.Background(), "sound leaked without Release",
				logging.Handle("sound", s.handle), "name", s.name)
		}
	})
	return s
}

// Release frees the native sound and drops the strong reference on the
// system. Further operations return ErrReleasedHandle.
func (s *Sound) Release() error {
	if !s.release() {
		_, err := s.raw()
		return err
	}
	runtime.SetFinalizer(s, nil)
	s.dropUserData()
	err := resultErr("SoundRelease", bindings.SoundRelease(s.handle))
	s.sys.life.Release()
	return err
}

// Length reports the sound's length in the given unit. Non-blocking loads
// return ErrNotReady until the load completes.
func (s *Sound) Length(unit TimeUnit) (uint32, error) {
	h, err := s.raw()
	if err != nil {
		return 0, err
	}
	var length uint32
	if err := resultErr("SoundGetLength", bindings.SoundGetLength(h, &length, unit)); err != nil {
		return 0, err
	}
	return length, nil
}

// Name reports the name the engine recorded at load time.
func (s *Sound) Name() (string, error) {
	h, err := s.raw()
	if err != nil {
		return "", err
	}
	buf := make([]byte, 256)
	if err := resultErr("SoundGetName", bindings.SoundGetName(h, buf, int32(len(buf)))); err != nil {
		return "", err
	}
	return cString(buf), nil
}

// Mode reports the current mode bits.
func (s *Sound) Mode() (Mode, error) {
	h, err := s.raw()
	if err != nil {
		return 0, err
	}
	var mode bindings.Mode
	if err := resultErr("SoundGetMode", bindings.SoundGetMode(h, &mode)); err != nil {
		return 0, err
	}
	return mode, nil
}

// SetMode rewrites the mode bits that are mutable after load (looping,
// rolloff selection).
func (s *Sound) SetMode(mode Mode) error {
	h, err := s.raw()
	if err != nil {
		return err
	}
	if err := resultErr("SoundSetMode", bindings.SoundSetMode(h, mode)); err != nil {
		return err
	}
	s.mode = mode
	return nil
}

// LoopCount reports the loop count (-1 loops forever).
func (s *Sound) LoopCount() (int, error) {
	h, err := s.raw()
	if err != nil {
		return 0, err
	}
	var n int32
	if err := resultErr("SoundGetLoopCount", bindings.SoundGetLoopCount(h, &n)); err != nil {
		return 0, err
	}
	return int(n), nil
}

// SetLoopCount sets how many times playback loops; -1 loops forever.
func (s *Sound) SetLoopCount(n int) error {
	h, err := s.raw()
	if err != nil {
		return err
	}
	return resultErr("SoundSetLoopCount", bindings.SoundSetLoopCount(h, int32(n)))
}

// OpenState polls a non-blocking load: the open state plus the percent
// buffered for streams.
func (s *Sound) OpenState() (OpenState, uint32, error) {
	h, err := s.raw()
	if err != nil {
		return 0, 0, err
	}
	var state bindings.OpenState
	var percent uint32
	r := bindings.SoundGetOpenState(h, &state, &percent, nil, nil)
	if err := resultErr("SoundGetOpenState", r); err != nil {
		return 0, 0, err
	}
	return state, percent, nil
}

// Format reports the decoded sample format.
func (s *Sound) Format() (SoundType, SoundFormat, int, int, error) {
	h, err := s.raw()
	if err != nil {
		return 0, 0, 0, 0, err
	}
	var (
		soundType bindings.SoundType
		format    bindings.SoundFormat
		channels  int32
		bits      int32
	)
	r := bindings.SoundGetFormat(h, &soundType, &format, &channels, &bits)
	if err := resultErr("SoundGetFormat", r); err != nil {
		return 0, 0, 0, 0, err
	}
	return soundType, format, int(channels), int(bits), nil
}

// SetUserData attaches an arbitrary Go value to the native object. The
// value lives until replaced or the sound is released; the native slot only
// ever stores a registry key, never a Go pointer.
func (s *Sound) SetUserData(v any) error {
	h, err := s.raw()
	if err != nil {
		return err
	}
	var key uintptr
	if v != nil {
		key = handles.Register(v)
	}
	if err := resultErr("SoundSetUserData", bindings.SoundSetUserData(h, key)); err != nil {
		handles.Unregister(key)
		return err
	}
	s.mu.Lock()
	old := s.userKey
	s.userKey = key
	s.mu.Unlock()
	handles.Unregister(old)
	return nil
}

// UserData returns the value attached with SetUserData, nil when unset.
func (s *Sound) UserData() (any, error) {
	h, err := s.raw()
	if err != nil {
		return nil, err
	}
	var key uintptr
	if err := resultErr("SoundGetUserData", bindings.SoundGetUserData(h, &key)); err != nil {
		return nil, err
	}
	return handles.Lookup(key), nil
}

func (s *Sound) dropUserData() {
	s.mu.Lock()
	key := s.userKey
	s.userKey = 0
	s.mu.Unlock()
	handles.Unregister(key)
}

// cString trims a NUL-terminated buffer to a Go string.
func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
