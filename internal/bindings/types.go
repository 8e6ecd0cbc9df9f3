package bindings

// HeaderVersion is the FMOD_VERSION constant the wrapper was written against
// (product.major.minor in hexadecimal). FMOD_System_Create verifies it against
// the linked library and fails with ErrHeaderMismatch on disagreement.
const HeaderVersion uint32 = 0x00020221

// Bool mirrors FMOD_BOOL.
type Bool int32

const (
	False Bool = 0
	True  Bool = 1
)

// FromBool converts a Go bool to a native FMOD_BOOL.
func FromBool(b bool) Bool {
	if b {
		return True
	}
	return False
}

// Mode mirrors FMOD_MODE, the sound creation and playback behavior bitfield.
type Mode uint32

const (
	ModeDefault                 Mode = 0x00000000
	ModeLoopOff                 Mode = 0x00000001
	ModeLoopNormal              Mode = 0x00000002
	ModeLoopBidi                Mode = 0x00000004
	Mode2D                      Mode = 0x00000008
	Mode3D                      Mode = 0x00000010
	ModeCreateStream            Mode = 0x00000080
	ModeCreateSample            Mode = 0x00000100
	ModeCreateCompressedSample  Mode = 0x00000200
	ModeOpenUser                Mode = 0x00000400
	ModeOpenMemory              Mode = 0x00000800
	ModeOpenRaw                 Mode = 0x00001000
	ModeOpenOnly                Mode = 0x00002000
	ModeAccurateTime            Mode = 0x00004000
	ModeMPEGSearch              Mode = 0x00008000
	ModeNonBlocking             Mode = 0x00010000
	ModeUnique                  Mode = 0x00020000
	Mode3DHeadRelative          Mode = 0x00040000
	Mode3DWorldRelative         Mode = 0x00080000
	Mode3DInverseRolloff        Mode = 0x00100000
	Mode3DLinearRolloff         Mode = 0x00200000
	Mode3DLinearSquareRolloff   Mode = 0x00400000
	Mode3DInverseTaperedRolloff Mode = 0x00800000
	ModeIgnoreTags              Mode = 0x02000000
	Mode3DCustomRolloff         Mode = 0x04000000
	ModeLowMem                  Mode = 0x08000000
	ModeOpenMemoryPoint         Mode = 0x10000000
	Mode3DIgnoreGeometry        Mode = 0x40000000
	ModeVirtualPlayFromStart    Mode = 0x80000000
)

// InitFlags mirrors FMOD_INITFLAGS.
type InitFlags uint32

const (
	InitNormal                InitFlags = 0x00000000
	InitStreamFromUpdate      InitFlags = 0x00000001
	InitMixFromUpdate         InitFlags = 0x00000002
	Init3DRightHanded         InitFlags = 0x00000004
	InitClipOutput            InitFlags = 0x00000008
	InitChannelLowpass        InitFlags = 0x00000100
	InitChannelDistanceFilter InitFlags = 0x00000200
	InitProfileEnable         InitFlags = 0x00010000
	InitVol0BecomesVirtual    InitFlags = 0x00020000
	InitGeometryUseClosest    InitFlags = 0x00040000
	InitPreferDolbyDownmix    InitFlags = 0x00080000
	InitThreadUnsafe          InitFlags = 0x00100000
	InitProfileMeterAll       InitFlags = 0x00200000
	InitMemoryTracking        InitFlags = 0x00400000
)

// TimeUnit mirrors FMOD_TIMEUNIT.
type TimeUnit uint32

const (
	TimeUnitMS          TimeUnit = 0x00000001
	TimeUnitPCM         TimeUnit = 0x00000002
	TimeUnitPCMBytes    TimeUnit = 0x00000004
	TimeUnitRawBytes    TimeUnit = 0x00000008
	TimeUnitPCMFraction TimeUnit = 0x00000010
	TimeUnitModOrder    TimeUnit = 0x00000100
	TimeUnitModRow      TimeUnit = 0x00000200
	TimeUnitModPattern  TimeUnit = 0x00000400
)

// OpenState mirrors FMOD_OPENSTATE, reported by FMOD_Sound_GetOpenState for
// non-blocking loads.
type OpenState int32

const (
	OpenStateReady       OpenState = 0
	OpenStateLoading     OpenState = 1
	OpenStateError       OpenState = 2
	OpenStateConnecting  OpenState = 3
	OpenStateBuffering   OpenState = 4
	OpenStateSeeking     OpenState = 5
	OpenStatePlaying     OpenState = 6
	OpenStateSetPosition OpenState = 7
)

// SoundFormat mirrors FMOD_SOUND_FORMAT.
type SoundFormat int32

const (
	SoundFormatNone      SoundFormat = 0
	SoundFormatPCM8      SoundFormat = 1
	SoundFormatPCM16     SoundFormat = 2
	SoundFormatPCM24     SoundFormat = 3
	SoundFormatPCM32     SoundFormat = 4
	SoundFormatPCMFloat  SoundFormat = 5
	SoundFormatBitstream SoundFormat = 6
)

// SoundType mirrors FMOD_SOUND_TYPE. Only a subset has named constants; the
// native library may report values outside this list for exotic codecs.
type SoundType int32

const (
	SoundTypeUnknown   SoundType = 0
	SoundTypeAIFF      SoundType = 1
	SoundTypeASF       SoundType = 2
	SoundTypeDLS       SoundType = 3
	SoundTypeFLAC      SoundType = 4
	SoundTypeFSB       SoundType = 5
	SoundTypeIT        SoundType = 6
	SoundTypeMIDI      SoundType = 7
	SoundTypeMOD       SoundType = 8
	SoundTypeMPEG      SoundType = 9
	SoundTypeOggVorbis SoundType = 10
	SoundTypePlaylist  SoundType = 11
	SoundTypeRaw       SoundType = 12
	SoundTypeS3M       SoundType = 13
	SoundTypeUser      SoundType = 14
	SoundTypeWAV       SoundType = 15
	SoundTypeXM        SoundType = 16
)

// DSPType mirrors FMOD_DSP_TYPE.
type DSPType int32

const (
	DSPTypeUnknown           DSPType = 0
	DSPTypeMixer             DSPType = 1
	DSPTypeOscillator        DSPType = 2
	DSPTypeLowpass           DSPType = 3
	DSPTypeITLowpass         DSPType = 4
	DSPTypeHighpass          DSPType = 5
	DSPTypeEcho              DSPType = 6
	DSPTypeFader             DSPType = 7
	DSPTypeFlange            DSPType = 8
	DSPTypeDistortion        DSPType = 9
	DSPTypeNormalize         DSPType = 10
	DSPTypeLimiter           DSPType = 11
	DSPTypeParamEQ           DSPType = 12
	DSPTypePitchShift        DSPType = 13
	DSPTypeChorus            DSPType = 14
	DSPTypeVSTPlugin         DSPType = 15
	DSPTypeWinampPlugin      DSPType = 16
	DSPTypeITEcho            DSPType = 17
	DSPTypeCompressor        DSPType = 18
	DSPTypeSFXReverb         DSPType = 19
	DSPTypeLowpassSimple     DSPType = 20
	DSPTypeDelay             DSPType = 21
	DSPTypeTremolo           DSPType = 22
	DSPTypeLADSPAPlugin      DSPType = 23
	DSPTypeSend              DSPType = 24
	DSPTypeReturn            DSPType = 25
	DSPTypeHighpassSimple    DSPType = 26
	DSPTypePan               DSPType = 27
	DSPTypeThreeEQ           DSPType = 28
	DSPTypeFFT               DSPType = 29
	DSPTypeLoudnessMeter     DSPType = 30
	DSPTypeEnvelopeFollower  DSPType = 31
	DSPTypeConvolutionReverb DSPType = 32
	DSPTypeChannelMix        DSPType = 33
	DSPTypeTransceiver       DSPType = 34
	DSPTypeObjectPan         DSPType = 35
	DSPTypeMultibandEQ       DSPType = 36
)

// StudioInitFlags mirrors FMOD_STUDIO_INITFLAGS.
type StudioInitFlags uint32

const (
	StudioInitNormal              StudioInitFlags = 0x00000000
	StudioInitLiveUpdate          StudioInitFlags = 0x00000001
	StudioInitAllowMissingPlugins StudioInitFlags = 0x00000002
	StudioInitSynchronousUpdate   StudioInitFlags = 0x00000004
	StudioInitDeferredCallbacks   StudioInitFlags = 0x00000008
	StudioInitLoadFromUpdate      StudioInitFlags = 0x00000010
	StudioInitMemoryTracking      StudioInitFlags = 0x00000020
)

// LoadBankFlags mirrors FMOD_STUDIO_LOAD_BANK_FLAGS.
type LoadBankFlags uint32

const (
	LoadBankNormal            LoadBankFlags = 0x00000000
	LoadBankNonBlocking       LoadBankFlags = 0x00000001
	LoadBankDecompressSamples LoadBankFlags = 0x00000002
	LoadBankUnencrypted       LoadBankFlags = 0x00000004
)

// LoadMemoryMode mirrors FMOD_STUDIO_LOAD_MEMORY_MODE.
type LoadMemoryMode int32

const (
	LoadMemory      LoadMemoryMode = 0
	LoadMemoryPoint LoadMemoryMode = 1
)

// LoadingState mirrors FMOD_STUDIO_LOADING_STATE.
type LoadingState int32

const (
	LoadingStateUnloading LoadingState = 0
	LoadingStateUnloaded  LoadingState = 1
	LoadingStateLoading   LoadingState = 2
	LoadingStateLoaded    LoadingState = 3
	LoadingStateError     LoadingState = 4
)

// PlaybackState mirrors FMOD_STUDIO_PLAYBACK_STATE.
type PlaybackState int32

const (
	PlaybackPlaying    PlaybackState = 0
	PlaybackSustaining PlaybackState = 1
	PlaybackStopped    PlaybackState = 2
	PlaybackStarting   PlaybackState = 3
	PlaybackStopping   PlaybackState = 4
)

// StopMode mirrors FMOD_STUDIO_STOP_MODE.
type StopMode int32

const (
	StopAllowFadeout StopMode = 0
	StopImmediate    StopMode = 1
)

// Vector mirrors FMOD_VECTOR. Layout-sensitive; always passed by pointer.
type Vector struct {
	X, Y, Z float32
}

// Attributes3D mirrors FMOD_3D_ATTRIBUTES.
type Attributes3D struct {
	Position Vector
	Velocity Vector
	Forward  Vector
	Up       Vector
}

// ReverbProperties mirrors FMOD_REVERB_PROPERTIES.
type ReverbProperties struct {
	DecayTime         float32
	EarlyDelay        float32
	LateDelay         float32
	HFReference       float32
	HFDecayRatio      float32
	Diffusion         float32
	Density           float32
	LowShelfFrequency float32
	LowShelfGain      float32
	HighCut           float32
	EarlyLateMix      float32
	WetLevel          float32
}

// CPUUsage mirrors FMOD_CPU_USAGE (percentages of a mix frame, per subsystem).
type CPUUsage struct {
	DSP          float32
	Stream       float32
	Geometry     float32
	Update       float32
	Convolution1 float32
	Convolution2 float32
}

// CreateSoundExInfo mirrors FMOD_CREATESOUNDEXINFO. Field order and widths
// must track the header exactly; CBSize must be set to
// unsafe.Sizeof(CreateSoundExInfo{}) before the struct crosses the ABI.
// Callback and pointer slots are declared as uintptr because only the memory
// and raw-PCM creation paths populate them from Go.
type CreateSoundExInfo struct {
	CBSize              int32
	Length              uint32
	FileOffset          uint32
	NumChannels         int32
	DefaultFrequency    int32
	Format              SoundFormat
	DecodeBufferSize    uint32
	InitialSubsound     int32
	NumSubsounds        int32
	InclusionList       uintptr
	InclusionListNum    int32
	PCMReadCallback     uintptr
	PCMSetPosCallback   uintptr
	NonBlockCallback    uintptr
	DLSName             uintptr
	EncryptionKey       uintptr
	MaxPolyphony        int32
	UserData            uintptr
	SuggestedSoundType  SoundType
	FileUserOpen        uintptr
	FileUserClose       uintptr
	FileUserRead        uintptr
	FileUserSeek        uintptr
	FileUserAsyncRead   uintptr
	FileUserAsyncCancel uintptr
	FileUserData        uintptr
	FileBufferSize      int32
	ChannelOrder        int32
	InitialSoundGroup   uintptr
	InitialSeekPosition uint32
	InitialSeekPosType  TimeUnit
	IgnoreSetFilesystem int32
	AudioQueuePolicy    uint32
	MinMIDIGranularity  uint32
	NonBlockThreadID    int32
	FSBGUID             uintptr
}
