package bindings

import "fmt"

// Result mirrors FMOD_RESULT. Zero is success; every other value is an error
// code defined by the native header.
type Result int32

const (
	OK                          Result = 0
	ErrBadCommand               Result = 1
	ErrChannelAlloc             Result = 2
	ErrChannelStolen            Result = 3
	ErrDMA                      Result = 4
	ErrDSPConnection            Result = 5
	ErrDSPDontProcess           Result = 6
	ErrDSPFormat                Result = 7
	ErrDSPInUse                 Result = 8
	ErrDSPNotFound              Result = 9
	ErrDSPReserved              Result = 10
	ErrDSPSilence               Result = 11
	ErrDSPType                  Result = 12
	ErrFileBad                  Result = 13
	ErrFileCouldNotSeek         Result = 14
	ErrFileDiskEjected          Result = 15
	ErrFileEOF                  Result = 16
	ErrFileEndOfData            Result = 17
	ErrFileNotFound             Result = 18
	ErrFormat                   Result = 19
	ErrHeaderMismatch           Result = 20
	ErrHTTP                     Result = 21
	ErrHTTPAccess               Result = 22
	ErrHTTPProxyAuth            Result = 23
	ErrHTTPServerError          Result = 24
	ErrHTTPTimeout              Result = 25
	ErrInitialization           Result = 26
	ErrInitialized              Result = 27
	ErrInternal                 Result = 28
	ErrInvalidFloat             Result = 29
	ErrInvalidHandle            Result = 30
	ErrInvalidParam             Result = 31
	ErrInvalidPosition          Result = 32
	ErrInvalidSpeaker           Result = 33
	ErrInvalidSyncPoint         Result = 34
	ErrInvalidThread            Result = 35
	ErrInvalidVector            Result = 36
	ErrMaxAudible               Result = 37
	ErrMemory                   Result = 38
	ErrMemoryCantPoint          Result = 39
	ErrNeeds3D                  Result = 40
	ErrNeedsHardware            Result = 41
	ErrNetConnect               Result = 42
	ErrNetSocketError           Result = 43
	ErrNetURL                   Result = 44
	ErrNetWouldBlock            Result = 45
	ErrNotReady                 Result = 46
	ErrOutputAllocated          Result = 47
	ErrOutputCreateBuffer       Result = 48
	ErrOutputDriverCall         Result = 49
	ErrOutputFormat             Result = 50
	ErrOutputInit               Result = 51
	ErrOutputNoDrivers          Result = 52
	ErrPlugin                   Result = 53
	ErrPluginMissing            Result = 54
	ErrPluginResource           Result = 55
	ErrPluginVersion            Result = 56
	ErrRecord                   Result = 57
	ErrReverbChannelGroup       Result = 58
	ErrReverbInstance           Result = 59
	ErrSubSounds                Result = 60
	ErrSubSoundAllocated        Result = 61
	ErrSubSoundCantMove         Result = 62
	ErrTagNotFound              Result = 63
	ErrTooManyChannels          Result = 64
	ErrTruncated                Result = 65
	ErrUnimplemented            Result = 66
	ErrUninitialized            Result = 67
	ErrUnsupported              Result = 68
	ErrVersion                  Result = 69
	ErrEventAlreadyLoaded       Result = 70
	ErrEventLiveUpdateBusy      Result = 71
	ErrEventLiveUpdateMismatch  Result = 72
	ErrEventLiveUpdateTimeout   Result = 73
	ErrEventNotFound            Result = 74
	ErrStudioUninitialized      Result = 75
	ErrStudioNotLoaded          Result = 76
	ErrInvalidString            Result = 77
	ErrAlreadyLocked            Result = 78
	ErrNotLocked                Result = 79
	ErrRecordDisconnected       Result = 80
	ErrTooManySamples           Result = 81
)

// resultStrings is a port of the FMOD_ErrorString table from fmod_errors.h.
var resultStrings = map[Result]string{
	OK:                         "No errors.",
	ErrBadCommand:              "Tried to call a function on a data type that does not allow this type of functionality (ie calling Sound::lock on a streaming sound).",
	ErrChannelAlloc:            "Error trying to allocate a channel.",
	ErrChannelStolen:           "The specified channel has been reused to play another sound.",
	ErrDMA:                     "DMA Failure. See debug output for more information.",
	ErrDSPConnection:           "DSP connection error. Connection possibly caused a cyclic dependency or connected dsps with incompatible buffer counts.",
	ErrDSPDontProcess:          "DSP return code from a DSP process query callback. Tells mixer not to call the process callback and therefore not consume CPU. Use this to optimize the DSP graph.",
	ErrDSPFormat:               "DSP Format error. A DSP unit may have attempted to connect to this network with the wrong format, or a matrix may have been set with the wrong size if the target unit has a specified channel map.",
	ErrDSPInUse:                "DSP is already in the mixer's DSP network. It must be removed before being reinserted or released.",
	ErrDSPNotFound:             "DSP connection error. Couldn't find the DSP unit specified.",
	ErrDSPReserved:             "DSP operation error. Cannot perform operation on this DSP as it is reserved by the system.",
	ErrDSPSilence:              "DSP return code from a DSP process query callback. Tells mixer silence would be produced from read, so go idle and not consume CPU. Use this to optimize the DSP graph.",
	ErrDSPType:                 "DSP operation cannot be performed on a DSP of this type.",
	ErrFileBad:                 "Error loading file.",
	ErrFileCouldNotSeek:        "Couldn't perform seek operation. This is a limitation of the medium (ie netstreams) or the file format.",
	ErrFileDiskEjected:         "Media was ejected while reading.",
	ErrFileEOF:                 "End of file unexpectedly reached while trying to read essential data (truncated?).",
	ErrFileEndOfData:           "End of current chunk reached while trying to read data.",
	ErrFileNotFound:            "File not found.",
	ErrFormat:                  "Unsupported file or audio format.",
	ErrHeaderMismatch:          "There is a version mismatch between the FMOD header and either the FMOD Studio library or the FMOD Low Level library.",
	ErrHTTP:                    "A HTTP error occurred. This is a catch-all for HTTP errors not listed elsewhere.",
	ErrHTTPAccess:              "The specified resource requires authentication or is forbidden.",
	ErrHTTPProxyAuth:           "Proxy authentication is required to access the specified resource.",
	ErrHTTPServerError:         "A HTTP server error occurred.",
	ErrHTTPTimeout:             "The HTTP request timed out.",
	ErrInitialization:          "FMOD was not initialized correctly to support this function.",
	ErrInitialized:             "Cannot call this command after System::init.",
	ErrInternal:                "An error occurred in the FMOD system. Use the logging version of FMOD for more information.",
	ErrInvalidFloat:            "Value passed in was a NaN, Inf or denormalized float.",
	ErrInvalidHandle:           "An invalid object handle was used.",
	ErrInvalidParam:            "An invalid parameter was passed to this function.",
	ErrInvalidPosition:         "An invalid seek position was passed to this function.",
	ErrInvalidSpeaker:          "An invalid speaker was passed to this function based on the current speaker mode.",
	ErrInvalidSyncPoint:        "The syncpoint did not come from this sound handle.",
	ErrInvalidThread:           "Tried to call a function on a thread that is not supported.",
	ErrInvalidVector:           "The vectors passed in are not unit length, or perpendicular.",
	ErrMaxAudible:              "Reached maximum audible playback count for this sound's soundgroup.",
	ErrMemory:                  "Not enough memory or resources.",
	ErrMemoryCantPoint:         "Can't use FMOD_OPENMEMORY_POINT on non PCM source data, or non mp3/xma/adpcm data if FMOD_CREATECOMPRESSEDSAMPLE was used.",
	ErrNeeds3D:                 "Tried to call a command on a 2d sound when the command was meant for 3d sound.",
	ErrNeedsHardware:           "Tried to use a feature that requires hardware support.",
	ErrNetConnect:              "Couldn't connect to the specified host.",
	ErrNetSocketError:          "A socket error occurred. This is a catch-all for socket-related errors not listed elsewhere.",
	ErrNetURL:                  "The specified URL couldn't be resolved.",
	ErrNetWouldBlock:           "Operation on a non-blocking socket could not complete immediately.",
	ErrNotReady:                "Operation could not be performed because specified sound/DSP connection is not ready.",
	ErrOutputAllocated:         "Error initializing output device, but more specifically, the output device is already in use and cannot be reused.",
	ErrOutputCreateBuffer:      "Error creating hardware sound buffer.",
	ErrOutputDriverCall:        "A call to a standard soundcard driver failed, which could possibly mean a bug in the driver or resources were missing or exhausted.",
	ErrOutputFormat:            "Soundcard does not support the specified format.",
	ErrOutputInit:              "Error initializing output device.",
	ErrOutputNoDrivers:         "The output device has no drivers installed. If pre-init, FMOD_OUTPUT_NOSOUND is selected as the output mode. If post-init, the function just fails.",
	ErrPlugin:                  "An unspecified error has been returned from a plugin.",
	ErrPluginMissing:           "A requested output, dsp unit type or codec was not available.",
	ErrPluginResource:          "A resource that the plugin requires cannot be found. (ie the DLS file for MIDI playback)",
	ErrPluginVersion:           "A plugin was built with an unsupported SDK version.",
	ErrRecord:                  "An error occurred trying to initialize the recording device.",
	ErrReverbChannelGroup:      "Reverb properties cannot be set on this channel because a parent channelgroup owns the reverb connection.",
	ErrReverbInstance:          "Specified instance in FMOD_REVERB_PROPERTIES couldn't be set. Most likely because it is an invalid instance number or the reverb doesn't exist.",
	ErrSubSounds:               "The error occurred because the sound referenced contains subsounds when it shouldn't have, or it doesn't contain subsounds when it should have. The operation may also not be able to be performed on a parent sound.",
	ErrSubSoundAllocated:       "This subsound is already being used by another sound, you cannot have more than one parent to a sound. Null out the other parent's entry first.",
	ErrSubSoundCantMove:        "Shared subsounds cannot be replaced or moved from their parent stream, such as when the parent stream is an FSB file.",
	ErrTagNotFound:             "The specified tag could not be found or there are no tags.",
	ErrTooManyChannels:         "The sound created exceeds the allowable input channel count. This can be increased using the 'maxinputchannels' parameter in System::setSoftwareFormat.",
	ErrTruncated:               "The retrieved string is too long to fit in the supplied buffer and has been truncated.",
	ErrUnimplemented:           "Something in FMOD hasn't been implemented when it should be. Contact support.",
	ErrUninitialized:           "This command failed because System::init or System::setDriver was not called.",
	ErrUnsupported:             "A command issued was not supported by this object. Possibly a plugin without certain callbacks specified.",
	ErrVersion:                 "The version number of this file format is not supported.",
	ErrEventAlreadyLoaded:      "The specified bank has already been loaded.",
	ErrEventLiveUpdateBusy:     "The live update connection failed due to the game already being connected.",
	ErrEventLiveUpdateMismatch: "The live update connection failed due to the game data being out of sync with the tool.",
	ErrEventLiveUpdateTimeout:  "The live update connection timed out.",
	ErrEventNotFound:           "The requested event, parameter, bus or vca could not be found.",
	ErrStudioUninitialized:     "The Studio::System object is not yet initialized.",
	ErrStudioNotLoaded:         "The specified resource is not loaded, so it can't be unloaded.",
	ErrInvalidString:           "An invalid string was passed to this function.",
	ErrAlreadyLocked:           "The specified resource is already locked.",
	ErrNotLocked:               "The specified resource is not locked, so it can't be unlocked.",
	ErrRecordDisconnected:      "The specified recording driver has been disconnected.",
	ErrTooManySamples:          "The length provided exceeds the allowable limit.",
}

// String returns the header's error string for the result code.
func (r Result) String() string {
	if s, ok := resultStrings[r]; ok {
		return s
	}
	return fmt.Sprintf("Unknown error. (%d)", int32(r))
}
