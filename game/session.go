// Package game wires progression, effects and sound into one serialized session.
package game

import (
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/lixenwraith/unicorn-clicker/audio"
	"github.com/lixenwraith/unicorn-clicker/clock"
	"github.com/lixenwraith/unicorn-clicker/effects"
	"github.com/lixenwraith/unicorn-clicker/engine"
	"github.com/lixenwraith/unicorn-clicker/events"
	"github.com/lixenwraith/unicorn-clicker/status"
	"github.com/lixenwraith/unicorn-clicker/tables"
)

// SoundPlayer plays a cue; audio.SoundManager satisfies it
type SoundPlayer interface {
	Play(audio.SoundType)
}

type silentPlayer struct{}

func (silentPlayer) Play(audio.SoundType) {}

// Session is the single execution context of a game
// Taps, resets, snapshots and effect timer callbacks all run under mu
type Session struct {
	mu sync.Mutex

	clock       clock.Clock
	tables      *tables.Tables
	progression *engine.Progression
	scheduler   *effects.Scheduler
	router      *events.Router[*Session]
	sound       SoundPlayer
	logger      *zap.Logger
	metrics     *status.Registry

	closed bool

	statTaps      *atomic.Int64
	statResets    *atomic.Int64
	statAwards    *atomic.Int64
	statLevels    *atomic.Int64
	statCompleted *atomic.Int64
}

// Option configures a Session
type Option func(*sessionConfig)

type sessionConfig struct {
	logger     *zap.Logger
	metrics    *status.Registry
	sound      SoundPlayer
	schedOpts  []effects.Option
	extraHooks []events.Handler[*Session]
}

// WithLogger sets the session logger; components get named children
func WithLogger(l *zap.Logger) Option {
	return func(c *sessionConfig) { c.logger = l }
}

// WithMetrics records session and effect counters in reg
func WithMetrics(reg *status.Registry) Option {
	return func(c *sessionConfig) { c.metrics = reg }
}

// WithSound routes cues to p
func WithSound(p SoundPlayer) Option {
	return func(c *sessionConfig) { c.sound = p }
}

// WithSchedulerOptions forwards options to the effects scheduler
func WithSchedulerOptions(opts ...effects.Option) Option {
	return func(c *sessionConfig) { c.schedOpts = append(c.schedOpts, opts...) }
}

// WithHandler registers an additional event handler after the built-in ones
func WithHandler(h events.Handler[*Session]) Option {
	return func(c *sessionConfig) { c.extraHooks = append(c.extraHooks, h) }
}

// NewSession builds a session on tables t; call Start to emit the intro effects
func NewSession(t *tables.Tables, clk clock.Clock, opts ...Option) *Session {
	cfg := sessionConfig{
		logger:  zap.NewNop(),
		metrics: status.NewRegistry(),
		sound:   silentPlayer{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	s := &Session{
		clock:         clk,
		tables:        t,
		sound:         cfg.sound,
		logger:        cfg.logger.Named("session"),
		metrics:       cfg.metrics,
		router:        events.NewRouter[*Session](),
		statTaps:      cfg.metrics.Ints.Get(status.KeyTaps),
		statResets:    cfg.metrics.Ints.Get(status.KeyResets),
		statAwards:    cfg.metrics.Ints.Get(status.KeyAwardsUnlocked),
		statLevels:    cfg.metrics.Ints.Get(status.KeyLevelsEntered),
		statCompleted: cfg.metrics.Ints.Get(status.KeyCompleted),
	}

	// Timer callbacks re-enter the session lock so they serialize with taps
	serial := clock.Wrap(clk, s.runLocked)

	schedOpts := append([]effects.Option{
		effects.WithLogger(cfg.logger),
		effects.WithMetrics(cfg.metrics),
	}, cfg.schedOpts...)

	s.progression = engine.NewProgression(t, cfg.logger)
	s.scheduler = effects.NewScheduler(serial, schedOpts...)

	s.router.Register(effectsDirector{})
	s.router.Register(soundCues{})
	s.router.Register(counters{})
	for _, h := range cfg.extraHooks {
		s.router.Register(h)
	}
	return s
}

func (s *Session) runLocked(f func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	f()
}

// Start resets to the first level and shows the intro banner and rain
func (s *Session) Start() []events.GameEvent {
	return s.Reset()
}

// Tap registers one tap and fires the resulting effects
func (s *Session) Tap() []events.GameEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	evs := s.progression.RegisterTap()
	s.statTaps.Add(1)
	s.scheduler.Jump()
	s.logger.Debug("tap", zap.Int("count", s.progression.State().TapCount), zap.Int("events", len(evs)))

	s.router.Dispatch(s, evs)
	return evs
}

// Reset zeroes progression and replays the intro effects
func (s *Session) Reset() []events.GameEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}

	evs := s.progression.Reset()
	s.statResets.Add(1)
	s.router.Dispatch(s, evs)
	return evs
}

// Snapshot returns the progression view plus current signals
func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		Snapshot: s.progression.Snapshot(),
		Title:    s.tables.Title(),
		Mascot:   s.tables.Mascot(),
		Now:      s.clock.Now(),
	}
	if sig, ok := s.scheduler.Active(effects.KindBanner); ok {
		v.Banner = &sig
	}
	if sig, ok := s.scheduler.Active(effects.KindRain); ok {
		v.Rain = &sig
	}
	v.Jumping = s.scheduler.Jumping()
	return v
}

// Metrics returns the registry the session writes to
func (s *Session) Metrics() *status.Registry { return s.metrics }

// Scheduler exposes the effects scheduler to handlers running under the session lock
func (s *Session) Scheduler() *effects.Scheduler { return s.scheduler }

// Close clears every signal; later taps, resets and timer callbacks are no-ops
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.scheduler.Clear()
	s.closed = true
}
