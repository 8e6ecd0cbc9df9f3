package fmod

import (
	"sync/atomic"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Load resolves the FMOD core and Studio shared libraries under their
// default names for the current platform and populates the native call
// table. The Studio library is optional; core-only installs still load.
// Load is idempotent and safe for concurrent use.
func Load() error {
	return bindings.Load("", "")
}

// LoadPath is Load with explicit library paths. An empty studioPath loads
// the core library only.
func LoadPath(corePath, studioPath string) error {
	return bindings.Load(corePath, studioPath)
}

// Loaded reports whether the core library has been loaded.
func Loaded() bool {
	return bindings.Loaded()
}

// loggerHolder keeps atomic.Value happy: the stored concrete type must not
// change between Store calls.
type loggerHolder struct{ l logging.Logger }

var pkgLogger atomic.Value

func init() {
	pkgLogger.Store(loggerHolder{logging.Nop()})
}

// SetLogger installs the logger used for lifecycle and leak diagnostics.
// Passing nil restores the no-op logger.
func SetLogger(l logging.Logger) {
	if l == nil {
		l = logging.Nop()
	}
	pkgLogger.Store(loggerHolder{l})
}

func log() logging.Logger {
	return pkgLogger.Load().(loggerHolder).l
}
