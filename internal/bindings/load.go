//go:build darwin || linux || freebsd

package bindings

import (
	"fmt"
	"runtime"

	"github.com/ebitengine/purego"
)

func coreLibraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libfmod.dylib", "libfmodL.dylib"}
	}
	return []string{"libfmod.so", "libfmod.so.13", "libfmodL.so"}
}

func studioLibraryNames() []string {
	if runtime.GOOS == "darwin" {
		return []string{"libfmodstudio.dylib", "libfmodstudioL.dylib"}
	}
	return []string{"libfmodstudio.so", "libfmodstudio.so.13", "libfmodstudioL.so"}
}

func dlopenFirst(names []string) (uintptr, error) {
	var firstErr error
	for _, name := range names {
		h, err := purego.Dlopen(name, purego.RTLD_NOW|purego.RTLD_GLOBAL)
		if err == nil {
			return h, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return 0, firstErr
}

func loadLibraries(corePath, studioPath string) error {
	var (
		core uintptr
		err  error
	)
	if corePath != "" {
		core, err = purego.Dlopen(corePath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	} else {
		core, err = dlopenFirst(coreLibraryNames())
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrLibraryNotFound, err)
	}
	registerCore(core)

	// The Studio library is optional; installations that only ship the core
	// library still get a fully working core surface.
	var studio uintptr
	if studioPath != "" {
		studio, err = purego.Dlopen(studioPath, purego.RTLD_NOW|purego.RTLD_GLOBAL)
	} else {
		studio, err = dlopenFirst(studioLibraryNames())
	}
	if err == nil {
		registerStudio(studio)
		studioLoaded.Store(true)
	}
	return nil
}

func registerCore(lib uintptr) {
	purego.RegisterLibFunc(&MemoryGetStats, lib, "FMOD_Memory_GetStats")
	purego.RegisterLibFunc(&FileGetDiskBusy, lib, "FMOD_File_GetDiskBusy")
	purego.RegisterLibFunc(&FileSetDiskBusy, lib, "FMOD_File_SetDiskBusy")

	purego.RegisterLibFunc(&SystemCreate, lib, "FMOD_System_Create")
	purego.RegisterLibFunc(&SystemRelease, lib, "FMOD_System_Release")
	purego.RegisterLibFunc(&SystemInit, lib, "FMOD_System_Init")
	purego.RegisterLibFunc(&SystemClose, lib, "FMOD_System_Close")
	purego.RegisterLibFunc(&SystemUpdate, lib, "FMOD_System_Update")
	purego.RegisterLibFunc(&SystemGetVersion, lib, "FMOD_System_GetVersion")
	purego.RegisterLibFunc(&SystemCreateSound, lib, "FMOD_System_CreateSound")
	purego.RegisterLibFunc(&SystemCreateStream, lib, "FMOD_System_CreateStream")
	purego.RegisterLibFunc(&SystemCreateChannelGroup, lib, "FMOD_System_CreateChannelGroup")
	purego.RegisterLibFunc(&SystemCreateDSPByType, lib, "FMOD_System_CreateDSPByType")
	purego.RegisterLibFunc(&SystemCreateGeometry, lib, "FMOD_System_CreateGeometry")
	purego.RegisterLibFunc(&SystemCreateReverb3D, lib, "FMOD_System_CreateReverb3D")
	purego.RegisterLibFunc(&SystemPlaySound, lib, "FMOD_System_PlaySound")
	purego.RegisterLibFunc(&SystemSet3DSettings, lib, "FMOD_System_Set3DSettings")
	purego.RegisterLibFunc(&SystemSet3DListenerAttributes, lib, "FMOD_System_Set3DListenerAttributes")
	purego.RegisterLibFunc(&SystemGetChannelsPlaying, lib, "FMOD_System_GetChannelsPlaying")
	purego.RegisterLibFunc(&SystemGetCPUUsage, lib, "FMOD_System_GetCPUUsage")
	purego.RegisterLibFunc(&SystemGetMasterChannelGroup, lib, "FMOD_System_GetMasterChannelGroup")

	purego.RegisterLibFunc(&SoundRelease, lib, "FMOD_Sound_Release")
	purego.RegisterLibFunc(&SoundGetLength, lib, "FMOD_Sound_GetLength")
	purego.RegisterLibFunc(&SoundGetName, lib, "FMOD_Sound_GetName")
	purego.RegisterLibFunc(&SoundGetMode, lib, "FMOD_Sound_GetMode")
	purego.RegisterLibFunc(&SoundSetMode, lib, "FMOD_Sound_SetMode")
	purego.RegisterLibFunc(&SoundGetLoopCount, lib, "FMOD_Sound_GetLoopCount")
	purego.RegisterLibFunc(&SoundSetLoopCount, lib, "FMOD_Sound_SetLoopCount")
	purego.RegisterLibFunc(&SoundGetOpenState, lib, "FMOD_Sound_GetOpenState")
	purego.RegisterLibFunc(&SoundGetFormat, lib, "FMOD_Sound_GetFormat")
	purego.RegisterLibFunc(&SoundSetUserData, lib, "FMOD_Sound_SetUserData")
	purego.RegisterLibFunc(&SoundGetUserData, lib, "FMOD_Sound_GetUserData")

	purego.RegisterLibFunc(&ChannelIsPlaying, lib, "FMOD_Channel_IsPlaying")
	purego.RegisterLibFunc(&ChannelStop, lib, "FMOD_Channel_Stop")
	purego.RegisterLibFunc(&ChannelSetPaused, lib, "FMOD_Channel_SetPaused")
	purego.RegisterLibFunc(&ChannelGetPaused, lib, "FMOD_Channel_GetPaused")
	purego.RegisterLibFunc(&ChannelSetVolume, lib, "FMOD_Channel_SetVolume")
	purego.RegisterLibFunc(&ChannelGetVolume, lib, "FMOD_Channel_GetVolume")
	purego.RegisterLibFunc(&ChannelSetPitch, lib, "FMOD_Channel_SetPitch")
	purego.RegisterLibFunc(&ChannelGetPitch, lib, "FMOD_Channel_GetPitch")
	purego.RegisterLibFunc(&ChannelSet3DAttributes, lib, "FMOD_Channel_Set3DAttributes")
	purego.RegisterLibFunc(&ChannelSetChannelGroup, lib, "FMOD_Channel_SetChannelGroup")
	purego.RegisterLibFunc(&ChannelGetCurrentSound, lib, "FMOD_Channel_GetCurrentSound")
	purego.RegisterLibFunc(&ChannelSetUserData, lib, "FMOD_Channel_SetUserData")
	purego.RegisterLibFunc(&ChannelGetUserData, lib, "FMOD_Channel_GetUserData")

	purego.RegisterLibFunc(&ChannelGroupRelease, lib, "FMOD_ChannelGroup_Release")
	purego.RegisterLibFunc(&ChannelGroupAddGroup, lib, "FMOD_ChannelGroup_AddGroup")
	purego.RegisterLibFunc(&ChannelGroupSetVolume, lib, "FMOD_ChannelGroup_SetVolume")
	purego.RegisterLibFunc(&ChannelGroupGetVolume, lib, "FMOD_ChannelGroup_GetVolume")
	purego.RegisterLibFunc(&ChannelGroupStop, lib, "FMOD_ChannelGroup_Stop")
	purego.RegisterLibFunc(&ChannelGroupSetPaused, lib, "FMOD_ChannelGroup_SetPaused")
	purego.RegisterLibFunc(&ChannelGroupSetUserData, lib, "FMOD_ChannelGroup_SetUserData")
	purego.RegisterLibFunc(&ChannelGroupGetUserData, lib, "FMOD_ChannelGroup_GetUserData")

	purego.RegisterLibFunc(&DSPRelease, lib, "FMOD_DSP_Release")
	purego.RegisterLibFunc(&DSPSetActive, lib, "FMOD_DSP_SetActive")
	purego.RegisterLibFunc(&DSPGetActive, lib, "FMOD_DSP_GetActive")
	purego.RegisterLibFunc(&DSPSetBypass, lib, "FMOD_DSP_SetBypass")
	purego.RegisterLibFunc(&DSPGetBypass, lib, "FMOD_DSP_GetBypass")
	purego.RegisterLibFunc(&DSPSetParameterFloat, lib, "FMOD_DSP_SetParameterFloat")
	purego.RegisterLibFunc(&DSPGetParameterFloat, lib, "FMOD_DSP_GetParameterFloat")
	purego.RegisterLibFunc(&DSPGetType, lib, "FMOD_DSP_GetType")
	purego.RegisterLibFunc(&DSPSetUserData, lib, "FMOD_DSP_SetUserData")
	purego.RegisterLibFunc(&DSPGetUserData, lib, "FMOD_DSP_GetUserData")

	purego.RegisterLibFunc(&GeometryRelease, lib, "FMOD_Geometry_Release")
	purego.RegisterLibFunc(&GeometryAddPolygon, lib, "FMOD_Geometry_AddPolygon")
	purego.RegisterLibFunc(&GeometrySetActive, lib, "FMOD_Geometry_SetActive")
	purego.RegisterLibFunc(&GeometryGetActive, lib, "FMOD_Geometry_GetActive")
	purego.RegisterLibFunc(&GeometryGetNumPolygons, lib, "FMOD_Geometry_GetNumPolygons")

	purego.RegisterLibFunc(&Reverb3DRelease, lib, "FMOD_Reverb3D_Release")
	purego.RegisterLibFunc(&Reverb3DSet3DAttributes, lib, "FMOD_Reverb3D_Set3DAttributes")
	purego.RegisterLibFunc(&Reverb3DSetProperties, lib, "FMOD_Reverb3D_SetProperties")
	purego.RegisterLibFunc(&Reverb3DSetActive, lib, "FMOD_Reverb3D_SetActive")
}

func registerStudio(lib uintptr) {
	purego.RegisterLibFunc(&StudioSystemCreate, lib, "FMOD_Studio_System_Create")
	purego.RegisterLibFunc(&StudioSystemInitialize, lib, "FMOD_Studio_System_Initialize")
	purego.RegisterLibFunc(&StudioSystemRelease, lib, "FMOD_Studio_System_Release")
	purego.RegisterLibFunc(&StudioSystemUpdate, lib, "FMOD_Studio_System_Update")
	purego.RegisterLibFunc(&StudioSystemFlushCommands, lib, "FMOD_Studio_System_FlushCommands")
	purego.RegisterLibFunc(&StudioSystemGetCoreSystem, lib, "FMOD_Studio_System_GetCoreSystem")
	purego.RegisterLibFunc(&StudioSystemLoadBankFile, lib, "FMOD_Studio_System_LoadBankFile")
	purego.RegisterLibFunc(&StudioSystemLoadBankMemory, lib, "FMOD_Studio_System_LoadBankMemory")
	purego.RegisterLibFunc(&StudioSystemGetEvent, lib, "FMOD_Studio_System_GetEvent")

	purego.RegisterLibFunc(&StudioBankIsValid, lib, "FMOD_Studio_Bank_IsValid")
	purego.RegisterLibFunc(&StudioBankUnload, lib, "FMOD_Studio_Bank_Unload")
	purego.RegisterLibFunc(&StudioBankGetLoadingState, lib, "FMOD_Studio_Bank_GetLoadingState")
	purego.RegisterLibFunc(&StudioBankLoadSampleData, lib, "FMOD_Studio_Bank_LoadSampleData")
	purego.RegisterLibFunc(&StudioBankGetEventCount, lib, "FMOD_Studio_Bank_GetEventCount")
	purego.RegisterLibFunc(&StudioBankGetEventList, lib, "FMOD_Studio_Bank_GetEventList")
	purego.RegisterLibFunc(&StudioBankGetPath, lib, "FMOD_Studio_Bank_GetPath")

	purego.RegisterLibFunc(&StudioEventDescriptionIsValid, lib, "FMOD_Studio_EventDescription_IsValid")
	purego.RegisterLibFunc(&StudioEventDescriptionCreateInstance, lib, "FMOD_Studio_EventDescription_CreateInstance")
	purego.RegisterLibFunc(&StudioEventDescriptionGetPath, lib, "FMOD_Studio_EventDescription_GetPath")
	purego.RegisterLibFunc(&StudioEventDescriptionGetParameterCount, lib, "FMOD_Studio_EventDescription_GetParameterDescriptionCount")
	purego.RegisterLibFunc(&StudioEventDescriptionIs3D, lib, "FMOD_Studio_EventDescription_Is3D")
	purego.RegisterLibFunc(&StudioEventDescriptionIsOneshot, lib, "FMOD_Studio_EventDescription_IsOneshot")

	purego.RegisterLibFunc(&StudioEventInstanceIsValid, lib, "FMOD_Studio_EventInstance_IsValid")
	purego.RegisterLibFunc(&StudioEventInstanceStart, lib, "FMOD_Studio_EventInstance_Start")
	purego.RegisterLibFunc(&StudioEventInstanceStop, lib, "FMOD_Studio_EventInstance_Stop")
	purego.RegisterLibFunc(&StudioEventInstanceRelease, lib, "FMOD_Studio_EventInstance_Release")
	purego.RegisterLibFunc(&StudioEventInstanceSetParameterByName, lib, "FMOD_Studio_EventInstance_SetParameterByName")
	purego.RegisterLibFunc(&StudioEventInstanceSetVolume, lib, "FMOD_Studio_EventInstance_SetVolume")
	purego.RegisterLibFunc(&StudioEventInstanceGetPlaybackState, lib, "FMOD_Studio_EventInstance_GetPlaybackState")
	purego.RegisterLibFunc(&StudioEventInstanceSet3DAttributes, lib, "FMOD_Studio_EventInstance_Set3DAttributes")
}
