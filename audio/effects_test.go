package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
)

func drain(s beep.Streamer) int {
	total := 0
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		total += n
		if !ok {
			return total
		}
	}
}

// TestOscillatorSine verifies sine samples stay within [-1, 1]
func TestOscillatorSine(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(440.0, 100*time.Millisecond, WaveSine, rate)

	samples := make([][2]float64, 100)
	n, ok := osc.Stream(samples)
	if !ok || n != 100 {
		t.Fatalf("Expected 100 samples ok, got n=%d ok=%v", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Errorf("Sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Errorf("Sample %d channels differ", i)
		}
	}
	if osc.Err() != nil {
		t.Errorf("Expected no error, got: %v", osc.Err())
	}
}

// TestOscillatorSquare verifies square samples are exactly ±1
func TestOscillatorSquare(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(220.0, 50*time.Millisecond, WaveSquare, rate)

	samples := make([][2]float64, 50)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if v := samples[i][0]; v != -1.0 && v != 1.0 {
			t.Errorf("Square sample %d should be ±1, got %f", i, v)
		}
	}
}

func TestOscillatorTriangle(t *testing.T) {
	rate := beep.SampleRate(44100)
	osc := NewOscillator(330.0, 50*time.Millisecond, WaveTriangle, rate)

	samples := make([][2]float64, 200)
	n, _ := osc.Stream(samples)
	for i := 0; i < n; i++ {
		if math.Abs(samples[i][0]) > 1.0 {
			t.Errorf("Triangle sample %d out of range: %f", i, samples[i][0])
		}
	}
}

// TestOscillatorDuration verifies the stream ends after the requested duration
func TestOscillatorDuration(t *testing.T) {
	rate := beep.SampleRate(1000)
	osc := NewOscillator(100.0, 250*time.Millisecond, WaveSine, rate)

	if got := drain(osc); got != 250 {
		t.Errorf("Expected 250 samples, got %d", got)
	}
}

// TestEnvelopeAttackPhase verifies attack ramp-up
func TestEnvelopeAttackPhase(t *testing.T) {
	rate := beep.SampleRate(44100)
	duration := 100 * time.Millisecond
	attack := 50 * time.Millisecond

	osc := NewOscillator(100.0, duration, WaveSquare, rate)
	env := NewEnvelope(osc, duration, attack, 10*time.Millisecond, rate)

	samples := make([][2]float64, rate.N(attack))
	n, ok := env.Stream(samples)
	if !ok {
		t.Fatal("Expected envelope to stream successfully")
	}

	first := math.Abs(samples[0][0])
	last := math.Abs(samples[n-1][0])
	if first >= last {
		t.Errorf("Expected attack ramp-up, first=%f >= last=%f", first, last)
	}
}

func TestSoundEffects(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SampleRate = 8000

	tests := []struct {
		st      SoundType
		minimum time.Duration
	}{
		{SoundCoin, 350 * time.Millisecond},
		{SoundBell, 600 * time.Millisecond},
		{SoundFanfare, 1100 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.st.String(), func(t *testing.T) {
			s := GetSoundEffect(tt.st, cfg)
			if s == nil {
				t.Fatal("Expected non-nil streamer")
			}
			got := drain(s)
			want := beep.SampleRate(cfg.SampleRate).N(tt.minimum)
			if got < want-2 {
				t.Errorf("Expected at least %d samples, got %d", want, got)
			}
		})
	}
}

func TestGetSoundEffectUnknown(t *testing.T) {
	if GetSoundEffect(SoundType(42), DefaultConfig()) != nil {
		t.Error("Expected nil streamer for unknown sound type")
	}
}

// TestZeroVolumeSilent verifies a zero master volume produces silence
func TestZeroVolumeSilent(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MasterVolume = 0

	s := CreateBellSound(cfg)
	buf := make([][2]float64, 1000)
	n, _ := s.Stream(buf)
	for i := 0; i < n; i++ {
		if buf[i][0] != 0 {
			t.Fatalf("Expected silence, sample %d = %f", i, buf[i][0])
		}
	}
}
