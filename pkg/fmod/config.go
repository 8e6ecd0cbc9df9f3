package fmod

import (
	"fmt"

	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Config expresses the knobs for spinning up an engine instance. The zero
// value is usable: Validate fills in defaults.
type Config struct {
	// MaxChannels is the size of the virtual voice pool. Zero means 32.
	// Once the pool is exhausted the engine steals the quietest voice and
	// the stolen Channel wrapper goes stale.
	MaxChannels int

	// Flags are passed to the native initialization verbatim.
	Flags InitFlags

	// Logger receives lifecycle and leak diagnostics for this system.
	// Nil falls back to the package logger (SetLogger).
	Logger logging.Logger
}

const maxChannelLimit = 4095 // native FMOD_MAX_CHANNEL_WIDTH bound

// Validate normalizes the config, filling defaults and rejecting values the
// native library would refuse anyway.
func (c *Config) Validate() error {
	if c.MaxChannels == 0 {
		c.MaxChannels = 32
	}
	if c.MaxChannels < 0 || c.MaxChannels > maxChannelLimit {
		return fmt.Errorf("fmod: max channels %d out of range [1,%d]", c.MaxChannels, maxChannelLimit)
	}
	return nil
}

func (c *Config) logger() logging.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log()
}
