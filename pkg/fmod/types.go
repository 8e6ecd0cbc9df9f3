package fmod

import "github.com/velora-audio/fmod-go/internal/bindings"

// Aliases over the raw binding types so callers never import the bindings
// package directly. Values are the verbatim native constants.
type (
	Mode             = bindings.Mode
	InitFlags        = bindings.InitFlags
	TimeUnit         = bindings.TimeUnit
	OpenState        = bindings.OpenState
	SoundFormat      = bindings.SoundFormat
	SoundType        = bindings.SoundType
	DSPType          = bindings.DSPType
	Vector           = bindings.Vector
	ReverbProperties = bindings.ReverbProperties
	CPUUsage         = bindings.CPUUsage
)

const (
	ModeDefault                Mode = bindings.ModeDefault
	ModeLoopOff                Mode = bindings.ModeLoopOff
	ModeLoopNormal             Mode = bindings.ModeLoopNormal
	ModeLoopBidi               Mode = bindings.ModeLoopBidi
	Mode2D                     Mode = bindings.Mode2D
	Mode3D                     Mode = bindings.Mode3D
	ModeCreateStream           Mode = bindings.ModeCreateStream
	ModeCreateSample           Mode = bindings.ModeCreateSample
	ModeCreateCompressedSample Mode = bindings.ModeCreateCompressedSample
	ModeOpenMemory             Mode = bindings.ModeOpenMemory
	ModeOpenRaw                Mode = bindings.ModeOpenRaw
	ModeNonBlocking            Mode = bindings.ModeNonBlocking
)

const (
	InitNormal           InitFlags = bindings.InitNormal
	InitStreamFromUpdate InitFlags = bindings.InitStreamFromUpdate
	Init3DRightHanded    InitFlags = bindings.Init3DRightHanded
	InitProfileEnable    InitFlags = bindings.InitProfileEnable
)

const (
	TimeUnitMS       TimeUnit = bindings.TimeUnitMS
	TimeUnitPCM      TimeUnit = bindings.TimeUnitPCM
	TimeUnitPCMBytes TimeUnit = bindings.TimeUnitPCMBytes
	TimeUnitRawBytes TimeUnit = bindings.TimeUnitRawBytes
)

const (
	OpenStateReady      OpenState = bindings.OpenStateReady
	OpenStateLoading    OpenState = bindings.OpenStateLoading
	OpenStateError      OpenState = bindings.OpenStateError
	OpenStateConnecting OpenState = bindings.OpenStateConnecting
	OpenStateBuffering  OpenState = bindings.OpenStateBuffering
	OpenStatePlaying    OpenState = bindings.OpenStatePlaying
)

const (
	SoundFormatPCM8     SoundFormat = bindings.SoundFormatPCM8
	SoundFormatPCM16    SoundFormat = bindings.SoundFormatPCM16
	SoundFormatPCM24    SoundFormat = bindings.SoundFormatPCM24
	SoundFormatPCM32    SoundFormat = bindings.SoundFormatPCM32
	SoundFormatPCMFloat SoundFormat = bindings.SoundFormatPCMFloat
)

const (
	DSPTypeMixer             DSPType = bindings.DSPTypeMixer
	DSPTypeOscillator        DSPType = bindings.DSPTypeOscillator
	DSPTypeLowpass           DSPType = bindings.DSPTypeLowpass
	DSPTypeHighpass          DSPType = bindings.DSPTypeHighpass
	DSPTypeEcho              DSPType = bindings.DSPTypeEcho
	DSPTypeFader             DSPType = bindings.DSPTypeFader
	DSPTypeFlange            DSPType = bindings.DSPTypeFlange
	DSPTypeDistortion        DSPType = bindings.DSPTypeDistortion
	DSPTypeNormalize         DSPType = bindings.DSPTypeNormalize
	DSPTypeLimiter           DSPType = bindings.DSPTypeLimiter
	DSPTypeParamEQ           DSPType = bindings.DSPTypeParamEQ
	DSPTypePitchShift        DSPType = bindings.DSPTypePitchShift
	DSPTypeChorus            DSPType = bindings.DSPTypeChorus
	DSPTypeCompressor        DSPType = bindings.DSPTypeCompressor
	DSPTypeSFXReverb         DSPType = bindings.DSPTypeSFXReverb
	DSPTypeTremolo           DSPType = bindings.DSPTypeTremolo
	DSPTypeConvolutionReverb DSPType = bindings.DSPTypeConvolutionReverb
	DSPTypeMultibandEQ       DSPType = bindings.DSPTypeMultibandEQ
)

// Version is the decoded native product version, a BCD-packed uint32 in the
// header (0x00010203 is 1.02.03).
type Version struct {
	Major int
	Minor int
	Patch int
}

func decodeVersion(v uint32) Version {
	return Version{
		Major: int(v >> 16),
		Minor: fromBCD(uint8(v >> 8)),
		Patch: fromBCD(uint8(v)),
	}
}

func fromBCD(b uint8) int {
	return int(b>>4)*10 + int(b&0xf)
}
