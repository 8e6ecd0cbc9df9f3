package studio

import "github.com/velora-audio/fmod-go/internal/bindings"

// Aliases over the raw binding types so callers never import the bindings
// package directly.
type (
	InitFlags     = bindings.StudioInitFlags
	LoadBankFlags = bindings.LoadBankFlags
	LoadingState  = bindings.LoadingState
	PlaybackState = bindings.PlaybackState
	StopMode      = bindings.StopMode
	Attributes3D  = bindings.Attributes3D
)

const (
	InitNormal            InitFlags = bindings.StudioInitNormal
	InitLiveUpdate        InitFlags = bindings.StudioInitLiveUpdate
	InitSynchronousUpdate InitFlags = bindings.StudioInitSynchronousUpdate
	InitLoadFromUpdate    InitFlags = bindings.StudioInitLoadFromUpdate
)

const (
	LoadBankNormal            LoadBankFlags = bindings.LoadBankNormal
	LoadBankNonBlocking       LoadBankFlags = bindings.LoadBankNonBlocking
	LoadBankDecompressSamples LoadBankFlags = bindings.LoadBankDecompressSamples
)

const (
	LoadingStateUnloading LoadingState = bindings.LoadingStateUnloading
	LoadingStateUnloaded  LoadingState = bindings.LoadingStateUnloaded
	LoadingStateLoading   LoadingState = bindings.LoadingStateLoading
	LoadingStateLoaded    LoadingState = bindings.LoadingStateLoaded
	LoadingStateError     LoadingState = bindings.LoadingStateError
)

const (
	PlaybackPlaying    PlaybackState = bindings.PlaybackPlaying
	PlaybackSustaining PlaybackState = bindings.PlaybackSustaining
	PlaybackStopped    PlaybackState = bindings.PlaybackStopped
	PlaybackStarting   PlaybackState = bindings.PlaybackStarting
	PlaybackStopping   PlaybackState = bindings.PlaybackStopping
)

const (
	StopAllowFadeout StopMode = bindings.StopAllowFadeout
	StopImmediate    StopMode = bindings.StopImmediate
)
