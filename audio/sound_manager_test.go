package audio

import (
	"testing"
)

// TestSoundManagerGracefulDegradation verifies operations don't panic without initialization
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Sound operations panicked without initialization: %v", r)
		}
	}()

	sm.Play(SoundCoin)
	sm.Play(SoundBell)
	sm.Play(SoundFanfare)
	sm.Cleanup()

	if sm.Played(SoundCoin) != 0 {
		t.Error("Expected nothing played before initialization")
	}
	if sm.Ready() {
		t.Error("Expected manager not ready")
	}
}

func TestSoundManagerDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Enabled = false
	sm := NewSoundManager(cfg, nil)

	if err := sm.Initialize(); err != ErrAudioDisabled {
		t.Errorf("Expected ErrAudioDisabled, got %v", err)
	}
}

// TestSoundManagerInitialization verifies init/cleanup where a device exists
func TestSoundManagerInitialization(t *testing.T) {
	sm := NewSoundManager(nil, nil)

	// Speaker initialization fails in CI without audio devices; audio is optional
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}

	if err := sm.Initialize(); err != nil {
		t.Errorf("Second initialization should be a no-op, got: %v", err)
	}
	sm.Play(SoundBell)
	if sm.Played(SoundBell) != 1 {
		t.Errorf("Expected bell played once, got %d", sm.Played(SoundBell))
	}
	sm.Cleanup()
	if sm.Ready() {
		t.Error("Expected manager closed after cleanup")
	}
}
