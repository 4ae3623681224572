package debug

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "anchor.log")

	if err := Init(path); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Logger().Named("test").Debug("hello")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file = %q, want it to contain hello", data)
	}
}

func TestInit_EmptyPathIsNoop(t *testing.T) {
	t.Setenv(EnvVar, "")

	if err := Init(""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	// Must not panic with logging disabled.
	Logger().Debug("dropped")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
}

func TestInit_FallsBackToEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.log")
	t.Setenv(EnvVar, path)

	if err := Init(""); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	Logger().Info("from env")
	if err := Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Stat(%s) error = %v", path, err)
	}
}
