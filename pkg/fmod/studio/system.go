package studio

import (
	"context"
	"fmt"

	"github.com/velora-audio/fmod-go/internal/bindings"
	"github.com/velora-audio/fmod-go/internal/guard"
	"github.com/velora-audio/fmod-go/pkg/fmod"
	"github.com/velora-audio/fmod-go/pkg/fmod/logging"
)

// Config expresses the knobs for spinning up a Studio system. The zero
// value is usable.
type Config struct {
	// MaxChannels sizes the core voice pool. Zero means 32.
	MaxChannels int

	// StudioFlags are passed to the Studio initialization verbatim.
	StudioFlags InitFlags

	// Flags are passed through to the core system initialization.
	Flags fmod.InitFlags

	// Logger receives lifecycle diagnostics. Nil falls back to the fmod
	// package logger.
	Logger logging.Logger
}

func (c *Config) core() fmod.Config {
	return fmod.Config{MaxChannels: c.MaxChannels, Flags: c.Flags, Logger: c.Logger}
}

// System is the Studio engine handle. It owns an implicit core system, so
// creation goes through the same single-instance gate as fmod.NewSystem.
type System struct {
	handle uintptr
	life   *guard.Lifetime
	cfg    Config
	log    logging.Logger
}

// New creates a Studio system through the safe single-instance path. It
// fails with fmod.ErrAlreadyInitialized while another safely created system
// (core or Studio) is alive. Call Initialize before loading banks, or use
// Open for both at once.
func New(cfg Config) (*System, error) {
	return newSystem(cfg, guard.Create)
}

// NewUnchecked creates a Studio system without the single-instance refusal;
// see fmod.NewSystemUnchecked for the obligations this shifts to the caller.
func NewUnchecked(cfg Config) (*System, error) {
	return newSystem(cfg, guard.CreateUnchecked)
}

// Open is New followed by Initialize, releasing the half-built system if
// initialization fails.
func Open(cfg Config) (*System, error) {
	sys, err := New(cfg)
	if err != nil {
		return nil, err
	}
	if err := sys.Initialize(); err != nil {
		_ = sys.Release()
		return nil, err
	}
	return sys, nil
}

func newSystem(cfg Config, gate func(func() error) (*guard.Lifetime, error)) (*System, error) {
	if !bindings.StudioLoaded() {
		return nil, fmod.ErrNotLoaded
	}
	coreCfg := cfg.core()
	if err := coreCfg.Validate(); err != nil {
		return nil, err
	}
	cfg.MaxChannels = coreCfg.MaxChannels

	var handle uintptr
	life, err := gate(func() error {
		return resultErr("StudioSystemCreate", bindings.StudioSystemCreate(&handle, bindings.HeaderVersion))
	})
	if err != nil {
		return nil, err
	}

	s := &System{handle: handle, life: life, cfg: cfg, log: coreCfg.Logger}
	if s.log == nil {
		s.log = logging.Nop()
	}
	s.log.Debug(context.Background(), "studio system created", logging.Handle("system", handle))
	return s, nil
}

// Initialize initializes the Studio system and its core system.
func (s *System) Initialize() error {
	if s.life.Released() {
		return fmod.ErrReleasedHandle
	}
	r := bindings.StudioSystemInitialize(s.handle, int32(s.cfg.MaxChannels), s.cfg.StudioFlags, s.cfg.Flags, 0)
	return resultErr("StudioSystemInitialize", r)
}

// Release destroys the Studio system and its implicit core system. It
// refuses with fmod.ErrResourcesStillLive while banks or event instances
// still hold it.
func (s *System) Release() error {
	err := s.life.Destroy(func() error {
		return resultErr("StudioSystemRelease", bindings.StudioSystemRelease(s.handle))
	})
	if err == guard.ErrEngineReleased {
		return fmod.ErrReleasedHandle
	}
	if err != nil {
		return err
	}
	s.log.Debug(context.Background(), "studio system released", logging.Handle("system", s.handle))
	return nil
}

// Update pumps the Studio command queue: asynchronous bank loads complete
// and deferred stops settle. Call once per frame.
func (s *System) Update() error {
	if s.life.Released() {
		return fmod.ErrReleasedHandle
	}
	return resultErr("StudioSystemUpdate", bindings.StudioSystemUpdate(s.handle))
}

// FlushCommands blocks until every queued command has been processed.
func (s *System) FlushCommands() error {
	if s.life.Released() {
		return fmod.ErrReleasedHandle
	}
	return resultErr("StudioSystemFlushCommands", bindings.StudioSystemFlushCommands(s.handle))
}

// CoreSystem returns the core system this Studio system owns. The wrapper
// is borrowed: it refuses Release, and goes away with the Studio system.
func (s *System) CoreSystem() (*fmod.System, error) {
	if s.life.Released() {
		return nil, fmod.ErrReleasedHandle
	}
	var core uintptr
	r := bindings.StudioSystemGetCoreSystem(s.handle, &core)
	if err := resultErr("StudioSystemGetCoreSystem", r); err != nil {
		return nil, err
	}
	return fmod.NewBorrowedSystem(core, s.life, s.cfg.core()), nil
}

// LoadBankFile loads a bank from disk. With LoadBankNonBlocking the Bank
// returns immediately; poll LoadingState (pumping Update) until loaded.
// The Bank holds the system alive until Unload.
func (s *System) LoadBankFile(filename string, flags LoadBankFlags) (*Bank, error) {
	if err := s.life.Retain(); err != nil {
		return nil, fmod.ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.StudioSystemLoadBankFile(s.handle, filename, flags, &handle)
	if err := resultErr("StudioSystemLoadBankFile", r); err != nil {
		s.life.Release()
		return nil, err
	}
	return newBank(s, handle), nil
}

// LoadBankMemory loads a bank from an in-memory image. The engine copies
// the buffer during the call.
func (s *System) LoadBankMemory(data []byte, flags LoadBankFlags) (*Bank, error) {
	if len(data) == 0 {
		return nil, &fmod.Error{Op: "StudioSystemLoadBankMemory", Code: bindings.ErrInvalidParam}
	}
	if err := s.life.Retain(); err != nil {
		return nil, fmod.ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.StudioSystemLoadBankMemory(s.handle, data, int32(len(data)), bindings.LoadMemory, flags, &handle)
	if err := resultErr("StudioSystemLoadBankMemory", r); err != nil {
		s.life.Release()
		return nil, err
	}
	return newBank(s, handle), nil
}

// Event looks up an event description by its full path ("event:/..."). The
// bank containing it must be loaded; non-blocking loads still in flight
// return fmod.ErrNotReady.
func (s *System) Event(path string) (*EventDescription, error) {
	if s.life.Released() {
		return nil, fmod.ErrReleasedHandle
	}
	var handle uintptr
	r := bindings.StudioSystemGetEvent(s.handle, path, &handle)
	if err := resultErr("StudioSystemGetEvent", r); err != nil {
		return nil, err
	}
	return newEventDescription(s, handle), nil
}

func resultErr(op string, r bindings.Result) error {
	if r == bindings.OK {
		return nil
	}
	return &fmod.Error{Op: op, Code: r}
}

// staleErr is the terminal-state error for a Studio object whose native
// IsValid went false (bank unload, system teardown).
func staleErr(op string) error {
	return fmt.Errorf("%w: %w", fmod.ErrStaleHandle, &fmod.Error{Op: op, Code: bindings.ErrInvalidHandle})
}
