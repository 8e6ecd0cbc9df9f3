package bindings

import "testing"

func TestResultStrings(t *testing.T) {
	cases := []struct {
		r    Result
		want string
	}{
		{OK, "No errors."},
		{ErrChannelStolen, "The specified channel has been reused to play another sound."},
		{ErrInvalidHandle, "An invalid object handle was used."},
		{ErrEventNotFound, "The requested event, parameter, bus or vca could not be found."},
	}
	for _, tc := range cases {
		if got := tc.r.String(); got != tc.want {
			t.Errorf("Result(%d).String() = %q, want %q", int32(tc.r), got, tc.want)
		}
	}
}

func TestResultStringUnknownCode(t *testing.T) {
	if got := Result(9999).String(); got == "" {
		t.Error("unknown result code must still produce a string")
	}
}

func TestFromBool(t *testing.T) {
	if FromBool(true) != True || FromBool(false) != False {
		t.Error("FromBool must map onto the native FMOD_BOOL values")
	}
}
