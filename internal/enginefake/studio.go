package enginefake

import (
	"github.com/velora-audio/fmod-go/internal/bindings"
)

// descSource is where an event instance keeps the handle of the description
// it was created from; invalidating the description cascades to instances.
func descSource(o *object) uintptr { return o.sound }

func (e *Engine) fillStudio() {
	bindings.StudioSystemCreate = func(out *uintptr, headerVersion uint32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if r, ok := e.fail("StudioSystemCreate"); ok {
			return r
		}
		if headerVersion != bindings.HeaderVersion {
			return bindings.ErrHeaderMismatch
		}
		studio := e.alloc(&object{kind: kindStudioSystem, valid: true})
		// The studio system owns an implicit core system.
		e.alloc(&object{kind: kindSystem, system: studio})
		*out = studio
		return bindings.OK
	}
	bindings.StudioSystemInitialize = func(sys uintptr, maxChannels int32, studioFlags bindings.StudioInitFlags, flags bindings.InitFlags, extra uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindStudioSystem); r != bindings.OK {
			return r
		}
		if maxChannels <= 0 {
			return bindings.ErrInvalidParam
		}
		e.initialized[sys] = maxChannels
		if core := e.coreFor(sys); core != 0 {
			e.initialized[core] = maxChannels
		}
		return bindings.OK
	}
	bindings.StudioSystemRelease = func(sys uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindStudioSystem); r != bindings.OK {
			return r
		}
		core := e.coreFor(sys)
		e.releaseOwned(sys)
		if core != 0 {
			e.releaseOwned(core)
			delete(e.initialized, core)
		}
		delete(e.objects, sys)
		delete(e.initialized, sys)
		return bindings.OK
	}
	bindings.StudioSystemUpdate = func(sys uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindStudioSystem); r != bindings.OK {
			return r
		}
		e.advance(sys)
		return bindings.OK
	}
	bindings.StudioSystemFlushCommands = func(sys uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindStudioSystem); r != bindings.OK {
			return r
		}
		e.advance(sys)
		return bindings.OK
	}
	bindings.StudioSystemGetCoreSystem = func(sys uintptr, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindStudioSystem); r != bindings.OK {
			return r
		}
		core := e.coreFor(sys)
		if core == 0 {
			return bindings.ErrInternal
		}
		*out = core
		return bindings.OK
	}
	bindings.StudioSystemLoadBankFile = func(sys uintptr, filename string, flags bindings.LoadBankFlags, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if r, ok := e.fail("StudioSystemLoadBankFile"); ok {
			return r
		}
		return e.loadBank(sys, filename, flags, out)
	}
	bindings.StudioSystemLoadBankMemory = func(sys uintptr, buffer []byte, length int32, mode bindings.LoadMemoryMode, flags bindings.LoadBankFlags, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if r, ok := e.fail("StudioSystemLoadBankMemory"); ok {
			return r
		}
		if length <= 0 || int(length) > len(buffer) {
			return bindings.ErrInvalidParam
		}
		// The buffer contents double as the bank name so tests can key
		// BankEvents off the bytes they load.
		return e.loadBank(sys, string(buffer[:length]), flags, out)
	}
	bindings.StudioSystemGetEvent = func(sys uintptr, path string, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindStudioSystem); r != bindings.OK {
			return r
		}
		for h, o := range e.objects {
			if o.kind != kindEventDescription || o.system != sys || o.path != path {
				continue
			}
			if bank := e.bankOf(h); bank != nil && bank.loading != bindings.LoadingStateLoaded {
				return bindings.ErrNotReady
			}
			*out = h
			return bindings.OK
		}
		return bindings.ErrEventNotFound
	}

	e.fillBank()
	e.fillEventDescription()
	e.fillEventInstance()
}

// coreFor returns the implicit core system owned by a studio system.
func (e *Engine) coreFor(studio uintptr) uintptr {
	for h, o := range e.objects {
		if o.kind == kindSystem && o.system == studio {
			return h
		}
	}
	return 0
}

// bankOf finds the bank listing an event description.
func (e *Engine) bankOf(desc uintptr) *object {
	for _, o := range e.objects {
		if o.kind != kindBank {
			continue
		}
		for _, d := range o.events {
			if d == desc {
				return o
			}
		}
	}
	return nil
}

// advance completes pending asynchronous work for one studio system: bank
// loads finish and stopping event instances reach the stopped state.
func (e *Engine) advance(sys uintptr) {
	for _, o := range e.objects {
		switch o.kind {
		case kindBank:
			if o.system == sys && o.loading == bindings.LoadingStateLoading {
				o.loading = bindings.LoadingStateLoaded
			}
		case kindEventInstance:
			if o.system == sys && o.playback == bindings.PlaybackStopping {
				o.playback = bindings.PlaybackStopped
			}
		}
	}
}

func (e *Engine) fillBank() {
	bindings.StudioBankIsValid = func(bank uintptr) bindings.Bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, ok := e.objects[bank]
		return bindings.FromBool(ok && o.kind == kindBank && o.valid)
	}
	bindings.StudioBankUnload = func(bank uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(bank, kindBank)
		if r != bindings.OK {
			return r
		}
		// Unloading takes the bank's event descriptions and their live
		// instances down with it.
		for _, desc := range o.events {
			for h, inst := range e.objects {
				if inst.kind == kindEventInstance && descSource(inst) == desc {
					delete(e.objects, h)
				}
			}
			delete(e.objects, desc)
		}
		delete(e.objects, bank)
		return bindings.OK
	}
	bindings.StudioBankGetLoadingState = func(bank uintptr, state *bindings.LoadingState) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(bank, kindBank)
		if r != bindings.OK {
			return r
		}
		*state = o.loading
		return bindings.OK
	}
	bindings.StudioBankLoadSampleData = func(bank uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(bank, kindBank)
		if r != bindings.OK {
			return r
		}
		if o.loading != bindings.LoadingStateLoaded {
			return bindings.ErrNotReady
		}
		return bindings.OK
	}
	bindings.StudioBankGetEventCount = func(bank uintptr, count *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(bank, kindBank)
		if r != bindings.OK {
			return r
		}
		*count = int32(len(o.events))
		return bindings.OK
	}
	bindings.StudioBankGetEventList = func(bank uintptr, array []uintptr, capacity int32, count *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(bank, kindBank)
		if r != bindings.OK {
			return r
		}
		n := int32(len(o.events))
		if n > capacity {
			n = capacity
		}
		copy(array, o.events[:n])
		*count = n
		return bindings.OK
	}
	bindings.StudioBankGetPath = func(bank uintptr, path []byte, size int32, retrieved *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(bank, kindBank)
		if r != bindings.OK {
			return r
		}
		if retrieved != nil {
			*retrieved = int32(len(o.path)) + 1
		}
		return putString(path, size, o.path)
	}
}

func (e *Engine) fillEventDescription() {
	bindings.StudioEventDescriptionIsValid = func(desc uintptr) bindings.Bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, ok := e.objects[desc]
		return bindings.FromBool(ok && o.kind == kindEventDescription && o.valid)
	}
	bindings.StudioEventDescriptionCreateInstance = func(desc uintptr, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(desc, kindEventDescription)
		if r != bindings.OK {
			return r
		}
		if bank := e.bankOf(desc); bank != nil && bank.loading != bindings.LoadingStateLoaded {
			return bindings.ErrNotReady
		}
		*out = e.alloc(&object{
			kind:     kindEventInstance,
			system:   o.system,
			sound:    desc,
			playback: bindings.PlaybackStopped,
			volume:   1,
			valid:    true,
		})
		return bindings.OK
	}
	bindings.StudioEventDescriptionGetPath = func(desc uintptr, path []byte, size int32, retrieved *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(desc, kindEventDescription)
		if r != bindings.OK {
			return r
		}
		if retrieved != nil {
			*retrieved = int32(len(o.path)) + 1
		}
		return putString(path, size, o.path)
	}
	bindings.StudioEventDescriptionGetParameterCount = func(desc uintptr, count *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(desc, kindEventDescription); r != bindings.OK {
			return r
		}
		*count = 0
		return bindings.OK
	}
	bindings.StudioEventDescriptionIs3D = func(desc uintptr, is3D *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(desc, kindEventDescription)
		if r != bindings.OK {
			return r
		}
		*is3D = bindings.FromBool(o.is3D)
		return bindings.OK
	}
	bindings.StudioEventDescriptionIsOneshot = func(desc uintptr, oneshot *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(desc, kindEventDescription)
		if r != bindings.OK {
			return r
		}
		*oneshot = bindings.FromBool(o.oneshot)
		return bindings.OK
	}
}

func (e *Engine) fillEventInstance() {
	bindings.StudioEventInstanceIsValid = func(inst uintptr) bindings.Bool {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, ok := e.objects[inst]
		return bindings.FromBool(ok && o.kind == kindEventInstance && o.valid)
	}
	bindings.StudioEventInstanceStart = func(inst uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(inst, kindEventInstance)
		if r != bindings.OK {
			return r
		}
		o.playback = bindings.PlaybackPlaying
		return bindings.OK
	}
	bindings.StudioEventInstanceStop = func(inst uintptr, mode bindings.StopMode) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(inst, kindEventInstance)
		if r != bindings.OK {
			return r
		}
		if mode == bindings.StopAllowFadeout && o.playback == bindings.PlaybackPlaying {
			o.playback = bindings.PlaybackStopping
		} else {
			o.playback = bindings.PlaybackStopped
		}
		return bindings.OK
	}
	bindings.StudioEventInstanceRelease = func(inst uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(inst, kindEventInstance); r != bindings.OK {
			return r
		}
		delete(e.objects, inst)
		return bindings.OK
	}
	bindings.StudioEventInstanceSetParameterByName = func(inst uintptr, name string, value float32, ignoreSeekSpeed bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(inst, kindEventInstance); r != bindings.OK {
			return r
		}
		if name == "" {
			return bindings.ErrEventNotFound
		}
		return bindings.OK
	}
	bindings.StudioEventInstanceSetVolume = func(inst uintptr, volume float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(inst, kindEventInstance)
		if r != bindings.OK {
			return r
		}
		if volume < 0 {
			return bindings.ErrInvalidParam
		}
		o.volume = volume
		return bindings.OK
	}
	bindings.StudioEventInstanceGetPlaybackState = func(inst uintptr, state *bindings.PlaybackState) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(inst, kindEventInstance)
		if r != bindings.OK {
			return r
		}
		*state = o.playback
		return bindings.OK
	}
	bindings.StudioEventInstanceSet3DAttributes = func(inst uintptr, attributes *bindings.Attributes3D) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(inst, kindEventInstance)
		if r != bindings.OK {
			return r
		}
		if attributes == nil {
			return bindings.ErrInvalidParam
		}
		if src, ok := e.objects[descSource(o)]; ok && !src.is3D {
			return bindings.ErrNeeds3D
		}
		return bindings.OK
	}
}
