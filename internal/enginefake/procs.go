package enginefake

import (
	"github.com/velora-audio/fmod-go/internal/bindings"
)

// fill assigns every bindings entry point to a closure over this engine.
func (e *Engine) fill() {
	e.fillGlobals()
	e.fillSystem()
	e.fillSound()
	e.fillChannel()
	e.fillChannelGroup()
	e.fillDSP()
	e.fillGeometry()
	e.fillReverb3D()
	e.fillStudio()
}

func (e *Engine) fillGlobals() {
	bindings.MemoryGetStats = func(current, max *int32, blocking bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		*current = int32(len(e.objects)) * 512
		*max = *current
		return bindings.OK
	}
	bindings.FileGetDiskBusy = func(busy *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		*busy = e.diskBusy
		return bindings.OK
	}
	bindings.FileSetDiskBusy = func(busy int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		e.diskBusy = busy
		return bindings.OK
	}
}

func (e *Engine) fillSystem() {
	bindings.SystemCreate = e.systemCreate
	bindings.SystemRelease = e.systemRelease
	bindings.SystemInit = func(sys uintptr, maxChannels int32, flags bindings.InitFlags, extra uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		if maxChannels <= 0 {
			return bindings.ErrInvalidParam
		}
		e.initialized[sys] = maxChannels
		return bindings.OK
	}
	bindings.SystemClose = func(sys uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		delete(e.initialized, sys)
		return bindings.OK
	}
	bindings.SystemUpdate = func(sys uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		// Non-blocking loads complete on update.
		for _, o := range e.objects {
			if o.kind == kindSound && o.system == sys && o.openState == bindings.OpenStateLoading {
				o.openState = bindings.OpenStateReady
			}
		}
		return bindings.OK
	}
	bindings.SystemGetVersion = func(sys uintptr, version *uint32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		*version = bindings.HeaderVersion
		return bindings.OK
	}
	createSound := func(op string) func(uintptr, *byte, bindings.Mode, *bindings.CreateSoundExInfo, *uintptr) bindings.Result {
		return func(sys uintptr, nameOrData *byte, mode bindings.Mode, exInfo *bindings.CreateSoundExInfo, out *uintptr) bindings.Result {
			e.mu.Lock()
			defer e.mu.Unlock()
			if r, ok := e.fail(op); ok {
				return r
			}
			if _, r := e.get(sys, kindSystem); r != bindings.OK {
				return r
			}
			name := ""
			if mode&(bindings.ModeOpenMemory|bindings.ModeOpenRaw|bindings.ModeOpenUser) == 0 {
				name = goString(nameOrData)
			} else if exInfo == nil || exInfo.Length == 0 {
				// Memory and raw opens require the buffer length up front.
				return bindings.ErrInvalidParam
			}
			state := bindings.OpenStateReady
			if mode&bindings.ModeNonBlocking != 0 {
				state = bindings.OpenStateLoading
			}
			*out = e.alloc(&object{
				kind:      kindSound,
				system:    sys,
				name:      name,
				mode:      mode,
				loopCount: -1,
				openState: state,
			})
			return bindings.OK
		}
	}
	bindings.SystemCreateSound = createSound("SystemCreateSound")
	bindings.SystemCreateStream = func(sys uintptr, nameOrData *byte, mode bindings.Mode, exInfo *bindings.CreateSoundExInfo, out *uintptr) bindings.Result {
		return createSound("SystemCreateStream")(sys, nameOrData, mode|bindings.ModeCreateStream, exInfo, out)
	}
	bindings.SystemCreateChannelGroup = func(sys uintptr, name string, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if r, ok := e.fail("SystemCreateChannelGroup"); ok {
			return r
		}
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		*out = e.alloc(&object{kind: kindChannelGroup, system: sys, name: name, volume: 1})
		return bindings.OK
	}
	bindings.SystemCreateDSPByType = func(sys uintptr, dspType bindings.DSPType, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if r, ok := e.fail("SystemCreateDSPByType"); ok {
			return r
		}
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		if dspType <= bindings.DSPTypeUnknown || dspType > bindings.DSPTypeMultibandEQ {
			return bindings.ErrPluginMissing
		}
		*out = e.alloc(&object{kind: kindDSP, system: sys, dspType: dspType, active: bindings.False, params: map[int32]float32{}})
		return bindings.OK
	}
	bindings.SystemCreateGeometry = func(sys uintptr, maxPolygons, maxVertices int32, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		if maxPolygons <= 0 || maxVertices <= 0 {
			return bindings.ErrInvalidParam
		}
		*out = e.alloc(&object{kind: kindGeometry, system: sys, maxPolygons: maxPolygons, active: bindings.True})
		return bindings.OK
	}
	bindings.SystemCreateReverb3D = func(sys uintptr, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		*out = e.alloc(&object{kind: kindReverb3D, system: sys, active: bindings.True})
		return bindings.OK
	}
	bindings.SystemPlaySound = e.playSound
	bindings.SystemSet3DSettings = func(sys uintptr, doppler, distance, rolloff float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		_, r := e.get(sys, kindSystem)
		return r
	}
	bindings.SystemSet3DListenerAttributes = func(sys uintptr, listener int32, pos, vel, forward, up *bindings.Vector) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		if listener < 0 {
			return bindings.ErrInvalidParam
		}
		return bindings.OK
	}
	bindings.SystemGetChannelsPlaying = func(sys uintptr, channels, real *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		n := int32(0)
		for _, o := range e.objects {
			if o.kind == kindChannel && o.system == sys && o.playing && !o.stolen {
				n++
			}
		}
		*channels = n
		if real != nil {
			*real = n
		}
		return bindings.OK
	}
	bindings.SystemGetCPUUsage = func(sys uintptr, usage *bindings.CPUUsage) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		*usage = bindings.CPUUsage{}
		return bindings.OK
	}
	bindings.SystemGetMasterChannelGroup = func(sys uintptr, out *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(sys, kindSystem); r != bindings.OK {
			return r
		}
		// One master group per system, allocated lazily.
		for h, o := range e.objects {
			if o.kind == kindChannelGroup && o.system == sys && o.name == "master" {
				*out = h
				return bindings.OK
			}
		}
		*out = e.alloc(&object{kind: kindChannelGroup, system: sys, name: "master", volume: 1})
		return bindings.OK
	}
}

func (e *Engine) fillSound() {
	bindings.SoundRelease = func(snd uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(snd, kindSound); r != bindings.OK {
			return r
		}
		delete(e.objects, snd)
		return bindings.OK
	}
	bindings.SoundGetLength = func(snd uintptr, length *uint32, unit bindings.TimeUnit) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		if o.openState == bindings.OpenStateLoading {
			return bindings.ErrNotReady
		}
		// Fixed fake duration; unit conversion is the real engine's concern.
		*length = 1000
		return bindings.OK
	}
	bindings.SoundGetName = func(snd uintptr, name []byte, nameLen int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		return putString(name, nameLen, o.name)
	}
	bindings.SoundGetMode = func(snd uintptr, mode *bindings.Mode) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		*mode = o.mode
		return bindings.OK
	}
	bindings.SoundSetMode = func(snd uintptr, mode bindings.Mode) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		o.mode = mode
		return bindings.OK
	}
	bindings.SoundGetLoopCount = func(snd uintptr, loopCount *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		*loopCount = o.loopCount
		return bindings.OK
	}
	bindings.SoundSetLoopCount = func(snd uintptr, loopCount int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		if loopCount < -1 {
			return bindings.ErrInvalidParam
		}
		o.loopCount = loopCount
		return bindings.OK
	}
	bindings.SoundGetOpenState = func(snd uintptr, state *bindings.OpenState, percent *uint32, starving, diskBusy *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		*state = o.openState
		if percent != nil {
			if o.openState == bindings.OpenStateReady {
				*percent = 100
			} else {
				*percent = 0
			}
		}
		if starving != nil {
			*starving = bindings.False
		}
		if diskBusy != nil {
			*diskBusy = bindings.False
		}
		return bindings.OK
	}
	bindings.SoundGetFormat = func(snd uintptr, soundType *bindings.SoundType, format *bindings.SoundFormat, channels, bits *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		if soundType != nil {
			if o.mode&bindings.ModeOpenRaw != 0 {
				*soundType = bindings.SoundTypeRaw
			} else {
				*soundType = bindings.SoundTypeWAV
			}
		}
		if format != nil {
			*format = bindings.SoundFormatPCM16
		}
		if channels != nil {
			*channels = 2
		}
		if bits != nil {
			*bits = 16
		}
		return bindings.OK
	}
	bindings.SoundSetUserData = func(snd uintptr, userData uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		o.userData = userData
		return bindings.OK
	}
	bindings.SoundGetUserData = func(snd uintptr, userData *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(snd, kindSound)
		if r != bindings.OK {
			return r
		}
		*userData = o.userData
		return bindings.OK
	}
}

func (e *Engine) fillChannel() {
	bindings.ChannelIsPlaying = func(ch uintptr, isPlaying *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		*isPlaying = bindings.FromBool(o.playing)
		return bindings.OK
	}
	bindings.ChannelStop = func(ch uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.channel(ch); r != bindings.OK {
			return r
		}
		// A stopped channel handle is dead; the slot returns to the pool.
		delete(e.objects, ch)
		return bindings.OK
	}
	bindings.ChannelSetPaused = func(ch uintptr, paused bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		o.paused = paused == bindings.True
		o.playing = paused == bindings.False
		return bindings.OK
	}
	bindings.ChannelGetPaused = func(ch uintptr, paused *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		*paused = bindings.FromBool(o.paused)
		return bindings.OK
	}
	bindings.ChannelSetVolume = func(ch uintptr, volume float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		o.volume = volume
		return bindings.OK
	}
	bindings.ChannelGetVolume = func(ch uintptr, volume *float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		*volume = o.volume
		return bindings.OK
	}
	bindings.ChannelSetPitch = func(ch uintptr, pitch float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		o.pitch = pitch
		return bindings.OK
	}
	bindings.ChannelGetPitch = func(ch uintptr, pitch *float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		*pitch = o.pitch
		return bindings.OK
	}
	bindings.ChannelSet3DAttributes = func(ch uintptr, pos, vel *bindings.Vector) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		snd, ok := e.objects[o.sound]
		if ok && snd.mode&bindings.Mode3D == 0 {
			return bindings.ErrNeeds3D
		}
		return bindings.OK
	}
	bindings.ChannelSetChannelGroup = func(ch uintptr, group uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		if _, r := e.get(group, kindChannelGroup); r != bindings.OK {
			return r
		}
		o.group = group
		return bindings.OK
	}
	bindings.ChannelGetCurrentSound = func(ch uintptr, sound *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		*sound = o.sound
		return bindings.OK
	}
	bindings.ChannelSetUserData = func(ch uintptr, userData uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		o.userData = userData
		return bindings.OK
	}
	bindings.ChannelGetUserData = func(ch uintptr, userData *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.channel(ch)
		if r != bindings.OK {
			return r
		}
		*userData = o.userData
		return bindings.OK
	}
}

func (e *Engine) fillChannelGroup() {
	bindings.ChannelGroupRelease = func(g uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(g, kindChannelGroup); r != bindings.OK {
			return r
		}
		delete(e.objects, g)
		return bindings.OK
	}
	bindings.ChannelGroupAddGroup = func(g, child uintptr, propagate bindings.Bool, connection *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(g, kindChannelGroup); r != bindings.OK {
			return r
		}
		c, r := e.get(child, kindChannelGroup)
		if r != bindings.OK {
			return r
		}
		c.group = g
		if connection != nil {
			*connection = 0
		}
		return bindings.OK
	}
	bindings.ChannelGroupSetVolume = func(g uintptr, volume float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindChannelGroup)
		if r != bindings.OK {
			return r
		}
		o.volume = volume
		return bindings.OK
	}
	bindings.ChannelGroupGetVolume = func(g uintptr, volume *float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindChannelGroup)
		if r != bindings.OK {
			return r
		}
		*volume = o.volume
		return bindings.OK
	}
	bindings.ChannelGroupStop = func(g uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(g, kindChannelGroup); r != bindings.OK {
			return r
		}
		for h, o := range e.objects {
			if o.kind == kindChannel && o.group == g {
				delete(e.objects, h)
			}
		}
		return bindings.OK
	}
	bindings.ChannelGroupSetPaused = func(g uintptr, paused bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(g, kindChannelGroup); r != bindings.OK {
			return r
		}
		for _, o := range e.objects {
			if o.kind == kindChannel && o.group == g && !o.stolen {
				o.paused = paused == bindings.True
				o.playing = paused == bindings.False
			}
		}
		return bindings.OK
	}
	bindings.ChannelGroupSetUserData = func(g uintptr, userData uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindChannelGroup)
		if r != bindings.OK {
			return r
		}
		o.userData = userData
		return bindings.OK
	}
	bindings.ChannelGroupGetUserData = func(g uintptr, userData *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindChannelGroup)
		if r != bindings.OK {
			return r
		}
		*userData = o.userData
		return bindings.OK
	}
}

func (e *Engine) fillDSP() {
	bindings.DSPRelease = func(d uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(d, kindDSP); r != bindings.OK {
			return r
		}
		delete(e.objects, d)
		return bindings.OK
	}
	bindings.DSPSetActive = func(d uintptr, active bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		o.active = active
		return bindings.OK
	}
	bindings.DSPGetActive = func(d uintptr, active *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		*active = o.active
		return bindings.OK
	}
	bindings.DSPSetBypass = func(d uintptr, bypass bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		o.bypass = bypass
		return bindings.OK
	}
	bindings.DSPGetBypass = func(d uintptr, bypass *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		*bypass = o.bypass
		return bindings.OK
	}
	bindings.DSPSetParameterFloat = func(d uintptr, index int32, value float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		if index < 0 {
			return bindings.ErrInvalidParam
		}
		o.params[index] = value
		return bindings.OK
	}
	bindings.DSPGetParameterFloat = func(d uintptr, index int32, value *float32, valueStr []byte, valueStrLen int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		v, ok := o.params[index]
		if !ok {
			return bindings.ErrInvalidParam
		}
		*value = v
		return bindings.OK
	}
	bindings.DSPGetType = func(d uintptr, dspType *bindings.DSPType) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		*dspType = o.dspType
		return bindings.OK
	}
	bindings.DSPSetUserData = func(d uintptr, userData uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		o.userData = userData
		return bindings.OK
	}
	bindings.DSPGetUserData = func(d uintptr, userData *uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(d, kindDSP)
		if r != bindings.OK {
			return r
		}
		*userData = o.userData
		return bindings.OK
	}
}

func (e *Engine) fillGeometry() {
	bindings.GeometryRelease = func(g uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(g, kindGeometry); r != bindings.OK {
			return r
		}
		delete(e.objects, g)
		return bindings.OK
	}
	bindings.GeometryAddPolygon = func(g uintptr, direct, reverb float32, doubleSided bindings.Bool, numVertices int32, vertices *bindings.Vector, index *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindGeometry)
		if r != bindings.OK {
			return r
		}
		if numVertices < 3 || vertices == nil {
			return bindings.ErrInvalidParam
		}
		if o.polygons >= o.maxPolygons {
			return bindings.ErrMemory
		}
		if index != nil {
			*index = o.polygons
		}
		o.polygons++
		return bindings.OK
	}
	bindings.GeometrySetActive = func(g uintptr, active bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindGeometry)
		if r != bindings.OK {
			return r
		}
		o.active = active
		return bindings.OK
	}
	bindings.GeometryGetActive = func(g uintptr, active *bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindGeometry)
		if r != bindings.OK {
			return r
		}
		*active = o.active
		return bindings.OK
	}
	bindings.GeometryGetNumPolygons = func(g uintptr, numPolygons *int32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(g, kindGeometry)
		if r != bindings.OK {
			return r
		}
		*numPolygons = o.polygons
		return bindings.OK
	}
}

func (e *Engine) fillReverb3D() {
	bindings.Reverb3DRelease = func(rv uintptr) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(rv, kindReverb3D); r != bindings.OK {
			return r
		}
		delete(e.objects, rv)
		return bindings.OK
	}
	bindings.Reverb3DSet3DAttributes = func(rv uintptr, pos *bindings.Vector, minDistance, maxDistance float32) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(rv, kindReverb3D); r != bindings.OK {
			return r
		}
		if minDistance < 0 || maxDistance < minDistance {
			return bindings.ErrInvalidParam
		}
		return bindings.OK
	}
	bindings.Reverb3DSetProperties = func(rv uintptr, properties *bindings.ReverbProperties) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		if _, r := e.get(rv, kindReverb3D); r != bindings.OK {
			return r
		}
		if properties == nil {
			return bindings.ErrInvalidParam
		}
		return bindings.OK
	}
	bindings.Reverb3DSetActive = func(rv uintptr, active bindings.Bool) bindings.Result {
		e.mu.Lock()
		defer e.mu.Unlock()
		o, r := e.get(rv, kindReverb3D)
		if r != bindings.OK {
			return r
		}
		o.active = active
		return bindings.OK
	}
}
