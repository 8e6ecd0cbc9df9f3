// Package logging provides a minimal logging facade for the fmod-go wrapper.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing or
// integration with existing logging systems.
//
// # Logger Interface
//
// The Logger interface provides context-aware logging methods:
//
//	type Logger interface {
//	    Debug(ctx context.Context, msg string, args ...any)
//	    Info(ctx context.Context, msg string, args ...any)
//	    Warn(ctx context.Context, msg string, args ...any)
//	    Error(ctx context.Context, msg string, args ...any)
//	    With(args ...any) Logger
//	}
//
// # Default Implementation
//
// The package provides a default slog-backed implementation:
//
//	import (
//	    "log/slog"
//	    "github.com/velora-audio/fmod-go/pkg/fmod/logging"
//	)
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// Use custom slog.Logger
//	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})
//	customLogger := logging.New(slog.New(handler))
//
// # Usage in Wrapper Code
//
// Loggers are attached to a System via fmod.Config and used by the wrapper
// for lifecycle and leak diagnostics:
//
//	logger := logging.New(nil)
//	logger.Info(ctx, "engine initialized", "max_channels", 64)
//
//	// Handle attributes format native handles consistently
//	logger.Debug(ctx, "sound created", logging.Handle("sound", h))
package logging
