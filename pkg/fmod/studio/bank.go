package studio

import (
	"context"
	"runtime"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Bank is a loaded bank of authored events and sample data. It holds the
// Studio system alive until Unload or until invalidated by system teardown.
type Bank struct {
	res
	sys *System
}

func newBank(sys *System, handle uintptr) *Bank {
	b := &Bank{sys: sys}
	b.handle = handle
	b.onTerminal = sys.life.Release
	runtime.SetFinalizer(b, func(b *Bank) {
		if b.state.Load() == stateLive {
			b.sys.log.Warn(context.Background(), "bank leaked without Unload",
				logging.Handle("bank", b.handle))
		}
	})
	return b
}

func bankValid(h uintptr) bool {
	return bindings.StudioBankIsValid(h) == bindings.True
}

// IsValid reports whether the native bank is still alive. False flips the
// wrapper to its terminal stale state.
func (b *Bank) IsValid() bool {
	_, err := b.raw("StudioBankIsValid", bankValid)
	return err == nil
}

// Unload unloads the bank. Every event description from this bank and
// every instance created from them go stale. The wrapper is terminal
// afterwards and drops its hold on the system.
func (b *Bank) Unload() error {
	h, err := b.raw("StudioBankUnload", bankValid)
	if err != nil {
		return err
	}
	if err := resultErr("StudioBankUnload", bindings.StudioBankUnload(h)); err != nil {
		return err
	}
	runtime.SetFinalizer(b, nil)
	b.terminate(stateReleased)
	return nil
}

// LoadingState polls the bank's load progress; non-blocking loads report
// LoadingStateLoading until a System.Update completes them.
func (b *Bank) LoadingState() (LoadingState, error) {
	h, err := b.raw("StudioBankGetLoadingState", bankValid)
	if err != nil {
		return 0, err
	}
	var state bindings.LoadingState
	if err := resultErr("StudioBankGetLoadingState", bindings.StudioBankGetLoadingState(h, &state)); err != nil {
		return 0, err
	}
	return state, nil
}

// LoadSampleData preloads the bank's sample data instead of streaming it on
// first use. The bank must have finished loading.
func (b *Bank) LoadSampleData() error {
	h, err := b.raw("StudioBankLoadSampleData", bankValid)
	if err != nil {
		return err
	}
	return resultErr("StudioBankLoadSampleData", bindings.StudioBankLoadSampleData(h))
}

// EventCount reports how many event descriptions the bank contains.
func (b *Bank) EventCount() (int, error) {
	h, err := b.raw("StudioBankGetEventCount", bankValid)
	if err != nil {
		return 0, err
	}
	var n int32
	if err := resultErr("StudioBankGetEventCount", bindings.StudioBankGetEventCount(h, &n)); err != nil {
		return 0, err
	}
	return int(n), nil
}

// Events lists the bank's event descriptions.
func (b *Bank) Events() ([]*EventDescription, error) {
	n, err := b.EventCount()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	h, err := b.raw("StudioBankGetEventList", bankValid)
	if err != nil {
		return nil, err
	}
	raw := make([]uintptr, n)
	var count int32
	r := bindings.StudioBankGetEventList(h, raw, int32(n), &count)
	if err := resultErr("StudioBankGetEventList", r); err != nil {
		return nil, err
	}
	out := make([]*EventDescription, 0, count)
	for _, dh := range raw[:count] {
		out = append(out, newEventDescription(b.sys, dh))
	}
	return out, nil
}

// Path reports the bank's authored path ("bank:/...").
func (b *Bank) Path() (string, error) {
	h, err := b.raw("StudioBankGetPath", bankValid)
	if err != nil {
		return "", err
	}
	return getPath(func(buf []byte, size int32, retrieved *int32) bindings.Result {
		return bindings.StudioBankGetPath(h, buf, size, retrieved)
	}, "StudioBankGetPath")
}

// getPath drives the two-call native string protocol: ask once with a
// reasonable buffer, retry with the exact size on truncation.
func getPath(get func([]byte, int32, *int32) bindings.Result, op string) (string, error) {
	buf := make([]byte, 256)
	var retrieved int32
	r := get(buf, int32(len(buf)), &retrieved)
	if r == bindings.ErrTruncated && retrieved > int32(len(buf)) {
		buf = make([]byte, retrieved)
		r = get(buf, int32(len(buf)), &retrieved)
	}
	if err := resultErr(op, r); err != nil {
		return "", err
	}
	return cString(buf), nil
}

func cString(b []byte) string {
	for i, c := range b {
		if c == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}
