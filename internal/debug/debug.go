// Package debug provides optional file-based debug logging.
//
// When the ANCHOR_DEBUG environment variable or the --log flag names a file,
// log entries are appended to it. Otherwise logging is a no-op.
package debug

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvVar names the environment variable holding the default log path.
const EnvVar = "ANCHOR_DEBUG"

var (
	mu      sync.Mutex
	logFile *os.File
	logger  = zap.NewNop()
)

// Init starts debug logging to path. An empty path falls back to $ANCHOR_DEBUG;
// if that is also empty, logging stays disabled.
func Init(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return nil
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open debug log: %w", err)
	}

	closeLocked()
	logFile = f
	logger = zap.New(newCore(f))
	return nil
}

func newCore(w *os.File) zapcore.Core {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
	return zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), zapcore.Lock(w), zapcore.DebugLevel)
}

// Logger returns the current logger. It is a no-op logger until Init succeeds.
func Logger() *zap.Logger {
	mu.Lock()
	defer mu.Unlock()
	return logger
}

// Close flushes and closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	return closeLocked()
}

// closeLocked does the actual close work. Caller must hold mu.
func closeLocked() error {
	if logFile == nil {
		return nil
	}
	_ = logger.Sync()
	err := logFile.Close()
	logFile = nil
	logger = zap.NewNop()
	return err
}
