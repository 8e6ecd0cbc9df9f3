// Package bindings exposes the raw C entry points of the FMOD Engine to the
// rest of the module. This package should ONLY be imported by internal/guard,
// internal/enginefake and the pkg/fmod facade packages. All FFI complexity is
// isolated here.
//
// Every native function is declared as a package-level function variable with
// a Go-native signature. The variables are populated either by Load, which
// resolves the closed-source shared libraries at runtime, or by an in-process
// test backend (see internal/enginefake). Calling any entry point before the
// table is populated fails with ErrNotLoaded rather than crashing.
//
// All constants and struct layouts in this package mirror the FMOD C header
// contract exactly and must not be redesigned.
package bindings
