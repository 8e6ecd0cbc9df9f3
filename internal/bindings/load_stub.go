//go:build !(darwin || linux || freebsd)

package bindings

// Platforms without a purego loader can still compile the module; the
// entry-point table stays empty until a test backend installs itself.
func loadLibraries(corePath, studioPath string) error {
	return ErrNotBuilt
}
