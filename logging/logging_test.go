package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/unicorn-clicker/constants"
)

func TestNew_DisabledByDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := New(false, dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer closeFn()

	logger.Info("discarded")
	if logger.Core().Enabled(-1) {
		t.Error("Expected no-op logger when debug=false")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Error("Expected no log directory when debug=false")
	}
}

func TestNew_EnabledWithDebug(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, closeFn, err := New(true, dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("test log message")
	closeFn()

	info, err := os.Stat(filepath.Join(dir, constants.LogFileName))
	if err != nil {
		t.Fatalf("Failed to stat log file: %v", err)
	}
	if info.Size() == 0 {
		t.Error("Expected log file to contain content")
	}
}

func TestNew_Rotation(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, constants.LogFileName)

	if err := os.WriteFile(logPath, make([]byte, MaxLogSize+1), 0644); err != nil {
		t.Fatalf("Failed to create large log file: %v", err)
	}

	_, closeFn, err := New(true, dir)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	closeFn()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("Failed to read logs directory: %v", err)
	}
	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != constants.LogFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
		}
	}
	if !rotatedFound {
		t.Error("Expected to find rotated log file")
	}

	info, err := os.Stat(logPath)
	if err == nil && info.Size() > MaxLogSize {
		t.Errorf("Expected new log file to be smaller than %d bytes, got %d", MaxLogSize, info.Size())
	}
}
