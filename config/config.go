// Package config loads host settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/lixenwraith/unicorn-clicker/audio"
)

// Config holds host settings; the game rules themselves live in the tables
type Config struct {
	Debug         bool          `env:"UNICORN_DEBUG"          envDefault:"false"`
	LogDir        string        `env:"UNICORN_LOG_DIR"        envDefault:"logs"`
	TablesPath    string        `env:"UNICORN_TABLES"`
	AudioEnabled  bool          `env:"UNICORN_AUDIO_ENABLED"  envDefault:"true"`
	MasterVolume  float64       `env:"UNICORN_MASTER_VOLUME"  envDefault:"0.6"`
	SampleRate    int           `env:"UNICORN_SAMPLE_RATE"    envDefault:"44100"`
	FrameInterval time.Duration `env:"UNICORN_FRAME_INTERVAL" envDefault:"33ms"`
}

// Load parses the process environment
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom parses the given variables instead of the process environment
func LoadFrom(vars map[string]string) (*Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.MasterVolume < 0 || c.MasterVolume > 1 {
		return fmt.Errorf("UNICORN_MASTER_VOLUME %.2f outside [0, 1]", c.MasterVolume)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("UNICORN_SAMPLE_RATE %d must be positive", c.SampleRate)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("UNICORN_FRAME_INTERVAL %v must be positive", c.FrameInterval)
	}
	return nil
}

// Audio converts the audio settings for the sound manager
func (c *Config) Audio() *audio.Config {
	a := audio.DefaultConfig()
	a.Enabled = c.AudioEnabled
	a.MasterVolume = c.MasterVolume
	a.SampleRate = c.SampleRate
	return a
}
