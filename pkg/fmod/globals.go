package fmod

import (
	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/guard"
)

// The native library documents its global free functions as racing system
// creation and release. Every call here runs under the guard's read lock so
// it can never overlap a create or release, while still running concurrently
// with other global calls.

// MemoryStats reports the native allocator's current and high-water usage
// in bytes.
func MemoryStats() (current, maximum int, err error) {
	if !bindings.Loaded() {
		return 0, 0, ErrNotLoaded
	}
	var cur, max int32
	err = guard.Hold(func() error {
		return resultErr("MemoryGetStats", bindings.MemoryGetStats(&cur, &max, bindings.False))
	})
	return int(cur), int(max), err
}

// DiskBusy reports the global disk-busy flag streaming code checks before
// touching the disk.
func DiskBusy() (bool, error) {
	if !bindings.Loaded() {
		return false, ErrNotLoaded
	}
	var busy int32
	err := guard.Hold(func() error {
		return resultErr("FileGetDiskBusy", bindings.FileGetDiskBusy(&busy))
	})
	return busy != 0, err
}

// SetDiskBusy sets or clears the global disk-busy flag.
func SetDiskBusy(busy bool) error {
	if !bindings.Loaded() {
		return ErrNotLoaded
	}
	v := int32(0)
	if busy {
		v = 1
	}
	return guard.Hold(func() error {
		return resultErr("FileSetDiskBusy", bindings.FileSetDiskBusy(v))
	})
}

// LockDiskBusy raises the disk-busy flag and returns the closure that
// lowers it, for bracketing caller disk work:
//
//	unlock, err := fmod.LockDiskBusy()
//	if err != nil { ... }
//	defer unlock()
func LockDiskBusy() (func() error, error) {
	if err := SetDiskBusy(true); err != nil {
		return nil, err
	}
	return func() error { return SetDiskBusy(false) }, nil
}
