package bindings

// Function variables mirroring the FMOD C entry points, one per native
// function, in header order. Load fills them from the shared libraries via
// purego; internal/enginefake fills them with an in-process backend for
// tests. Opaque native object pointers travel as uintptr.
var (
	// Global free functions (fmod_common.h). These race System create and
	// release inside the native library; callers go through guard.Hold.
	MemoryGetStats func(currentAlloced, maxAlloced *int32, blocking Bool) Result
	FileGetDiskBusy func(busy *int32) Result
	FileSetDiskBusy func(busy int32) Result

	// System (fmod.h, FMOD_System_*).
	SystemCreate                  func(system *uintptr, headerVersion uint32) Result
	SystemRelease                 func(system uintptr) Result
	SystemInit                    func(system uintptr, maxChannels int32, flags InitFlags, extraDriverData uintptr) Result
	SystemClose                   func(system uintptr) Result
	SystemUpdate                  func(system uintptr) Result
	SystemGetVersion              func(system uintptr, version *uint32) Result
	SystemCreateSound             func(system uintptr, nameOrData *byte, mode Mode, exInfo *CreateSoundExInfo, sound *uintptr) Result
	SystemCreateStream            func(system uintptr, nameOrData *byte, mode Mode, exInfo *CreateSoundExInfo, sound *uintptr) Result
	SystemCreateChannelGroup      func(system uintptr, name string, group *uintptr) Result
	SystemCreateDSPByType         func(system uintptr, dspType DSPType, dsp *uintptr) Result
	SystemCreateGeometry          func(system uintptr, maxPolygons, maxVertices int32, geometry *uintptr) Result
	SystemCreateReverb3D          func(system uintptr, reverb *uintptr) Result
	SystemPlaySound               func(system uintptr, sound uintptr, group uintptr, paused Bool, channel *uintptr) Result
	SystemSet3DSettings           func(system uintptr, dopplerScale, distanceFactor, rolloffScale float32) Result
	SystemSet3DListenerAttributes func(system uintptr, listener int32, pos, vel, forward, up *Vector) Result
	SystemGetChannelsPlaying      func(system uintptr, channels, realChannels *int32) Result
	SystemGetCPUUsage             func(system uintptr, usage *CPUUsage) Result
	SystemGetMasterChannelGroup   func(system uintptr, group *uintptr) Result

	// Sound (FMOD_Sound_*).
	SoundRelease      func(sound uintptr) Result
	SoundGetLength    func(sound uintptr, length *uint32, lengthType TimeUnit) Result
	SoundGetName      func(sound uintptr, name []byte, nameLen int32) Result
	SoundGetMode      func(sound uintptr, mode *Mode) Result
	SoundSetMode      func(sound uintptr, mode Mode) Result
	SoundGetLoopCount func(sound uintptr, loopCount *int32) Result
	SoundSetLoopCount func(sound uintptr, loopCount int32) Result
	SoundGetOpenState func(sound uintptr, openState *OpenState, percentBuffered *uint32, starving, diskBusy *Bool) Result
	SoundGetFormat    func(sound uintptr, soundType *SoundType, format *SoundFormat, channels, bits *int32) Result
	SoundSetUserData  func(sound uintptr, userData uintptr) Result
	SoundGetUserData  func(sound uintptr, userData *uintptr) Result

	// Channel (FMOD_Channel_*).
	ChannelIsPlaying       func(channel uintptr, isPlaying *Bool) Result
	ChannelStop            func(channel uintptr) Result
	ChannelSetPaused       func(channel uintptr, paused Bool) Result
	ChannelGetPaused       func(channel uintptr, paused *Bool) Result
	ChannelSetVolume       func(channel uintptr, volume float32) Result
	ChannelGetVolume       func(channel uintptr, volume *float32) Result
	ChannelSetPitch        func(channel uintptr, pitch float32) Result
	ChannelGetPitch        func(channel uintptr, pitch *float32) Result
	ChannelSet3DAttributes func(channel uintptr, pos, vel *Vector) Result
	ChannelSetChannelGroup func(channel uintptr, group uintptr) Result
	ChannelGetCurrentSound func(channel uintptr, sound *uintptr) Result
	ChannelSetUserData     func(channel uintptr, userData uintptr) Result
	ChannelGetUserData     func(channel uintptr, userData *uintptr) Result

	// ChannelGroup (FMOD_ChannelGroup_*).
	ChannelGroupRelease     func(group uintptr) Result
	ChannelGroupAddGroup    func(group, child uintptr, propagateDSPClock Bool, connection *uintptr) Result
	ChannelGroupSetVolume   func(group uintptr, volume float32) Result
	ChannelGroupGetVolume   func(group uintptr, volume *float32) Result
	ChannelGroupStop        func(group uintptr) Result
	ChannelGroupSetPaused   func(group uintptr, paused Bool) Result
	ChannelGroupSetUserData func(group uintptr, userData uintptr) Result
	ChannelGroupGetUserData func(group uintptr, userData *uintptr) Result

	// DSP (FMOD_DSP_*).
	DSPRelease           func(dsp uintptr) Result
	DSPSetActive         func(dsp uintptr, active Bool) Result
	DSPGetActive         func(dsp uintptr, active *Bool) Result
	DSPSetBypass         func(dsp uintptr, bypass Bool) Result
	DSPGetBypass         func(dsp uintptr, bypass *Bool) Result
	DSPSetParameterFloat func(dsp uintptr, index int32, value float32) Result
	DSPGetParameterFloat func(dsp uintptr, index int32, value *float32, valueStr []byte, valueStrLen int32) Result
	DSPGetType           func(dsp uintptr, dspType *DSPType) Result
	DSPSetUserData       func(dsp uintptr, userData uintptr) Result
	DSPGetUserData       func(dsp uintptr, userData *uintptr) Result

	// Geometry (FMOD_Geometry_*).
	GeometryRelease        func(geometry uintptr) Result
	GeometryAddPolygon     func(geometry uintptr, directOcclusion, reverbOcclusion float32, doubleSided Bool, numVertices int32, vertices *Vector, polygonIndex *int32) Result
	GeometrySetActive      func(geometry uintptr, active Bool) Result
	GeometryGetActive      func(geometry uintptr, active *Bool) Result
	GeometryGetNumPolygons func(geometry uintptr, numPolygons *int32) Result

	// Reverb3D (FMOD_Reverb3D_*).
	Reverb3DRelease         func(reverb uintptr) Result
	Reverb3DSet3DAttributes func(reverb uintptr, pos *Vector, minDistance, maxDistance float32) Result
	Reverb3DSetProperties   func(reverb uintptr, properties *ReverbProperties) Result
	Reverb3DSetActive       func(reverb uintptr, active Bool) Result

	// Studio system (fmod_studio.h, FMOD_Studio_System_*).
	StudioSystemCreate         func(system *uintptr, headerVersion uint32) Result
	StudioSystemInitialize     func(system uintptr, maxChannels int32, studioFlags StudioInitFlags, flags InitFlags, extraDriverData uintptr) Result
	StudioSystemRelease        func(system uintptr) Result
	StudioSystemUpdate         func(system uintptr) Result
	StudioSystemFlushCommands  func(system uintptr) Result
	StudioSystemGetCoreSystem  func(system uintptr, coreSystem *uintptr) Result
	StudioSystemLoadBankFile   func(system uintptr, filename string, flags LoadBankFlags, bank *uintptr) Result
	StudioSystemLoadBankMemory func(system uintptr, buffer []byte, length int32, mode LoadMemoryMode, flags LoadBankFlags, bank *uintptr) Result
	StudioSystemGetEvent       func(system uintptr, path string, description *uintptr) Result

	// Bank (FMOD_Studio_Bank_*).
	StudioBankIsValid         func(bank uintptr) Bool
	StudioBankUnload          func(bank uintptr) Result
	StudioBankGetLoadingState func(bank uintptr, state *LoadingState) Result
	StudioBankLoadSampleData  func(bank uintptr) Result
	StudioBankGetEventCount   func(bank uintptr, count *int32) Result
	StudioBankGetEventList    func(bank uintptr, array []uintptr, capacity int32, count *int32) Result
	StudioBankGetPath         func(bank uintptr, path []byte, size int32, retrieved *int32) Result

	// EventDescription (FMOD_Studio_EventDescription_*).
	StudioEventDescriptionIsValid           func(description uintptr) Bool
	StudioEventDescriptionCreateInstance    func(description uintptr, instance *uintptr) Result
	StudioEventDescriptionGetPath           func(description uintptr, path []byte, size int32, retrieved *int32) Result
	StudioEventDescriptionGetParameterCount func(description uintptr, count *int32) Result
	StudioEventDescriptionIs3D              func(description uintptr, is3D *Bool) Result
	StudioEventDescriptionIsOneshot         func(description uintptr, oneshot *Bool) Result

	// EventInstance (FMOD_Studio_EventInstance_*).
	StudioEventInstanceIsValid            func(instance uintptr) Bool
	StudioEventInstanceStart              func(instance uintptr) Result
	StudioEventInstanceStop               func(instance uintptr, mode StopMode) Result
	StudioEventInstanceRelease            func(instance uintptr) Result
	StudioEventInstanceSetParameterByName func(instance uintptr, name string, value float32, ignoreSeekSpeed Bool) Result
	StudioEventInstanceSetVolume          func(instance uintptr, volume float32) Result
	StudioEventInstanceGetPlaybackState   func(instance uintptr, state *PlaybackState) Result
	StudioEventInstanceSet3DAttributes    func(instance uintptr, attributes *Attributes3D) Result
)
