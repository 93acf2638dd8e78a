package effects

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lixenwraith/unicorn-clicker/clock"
	"github.com/lixenwraith/unicorn-clicker/constants"
	"github.com/lixenwraith/unicorn-clicker/status"
)

// Scheduler owns the active signal per kind and its auto-clear timer
//
// Not safe for concurrent use: the caller must run every method and every timer
// callback on one execution context (see clock.Wrap)
type Scheduler struct {
	clock  clock.Clock
	logger *zap.Logger

	bannerDuration time.Duration
	jumpDuration   time.Duration
	rainParams     RainParams
	newBurstID     func() uuid.UUID

	slots [kindCount]slot
	seq   uint64

	statBanners   *atomic.Int64
	statBursts    *atomic.Int64
	statExpired   *atomic.Int64
	statPreempted *atomic.Int64
	statStale     *atomic.Int64
	statLast      *status.AtomicString
}

type slot struct {
	signal *Signal
	timer  clock.Timer
}

// Option configures a Scheduler
type Option func(*Scheduler)

// WithLogger sets the scheduler logger
func WithLogger(l *zap.Logger) Option {
	return func(s *Scheduler) { s.logger = l }
}

// WithMetrics records signal counts in reg
func WithMetrics(reg *status.Registry) Option {
	return func(s *Scheduler) { s.bindMetrics(reg) }
}

// WithBurstIDs replaces the burst identifier source
func WithBurstIDs(gen func() uuid.UUID) Option {
	return func(s *Scheduler) { s.newBurstID = gen }
}

// WithRainParams sets the burst shape used by TriggerRain
func WithRainParams(p RainParams) Option {
	return func(s *Scheduler) { s.rainParams = p }
}

// WithBannerDuration sets the duration used by ShowBanner
func WithBannerDuration(d time.Duration) Option {
	return func(s *Scheduler) { s.bannerDuration = d }
}

// NewScheduler creates a scheduler with every kind inactive
func NewScheduler(clk clock.Clock, opts ...Option) *Scheduler {
	s := &Scheduler{
		clock:          clk,
		logger:         zap.NewNop(),
		bannerDuration: constants.BannerDuration,
		jumpDuration:   constants.JumpDuration,
		rainParams:     DefaultRainParams(),
		newBurstID:     uuid.New,
	}
	s.bindMetrics(status.NewRegistry())
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("effects")
	return s
}

func (s *Scheduler) bindMetrics(reg *status.Registry) {
	s.statBanners = reg.Ints.Get(status.KeyBannersShown)
	s.statBursts = reg.Ints.Get(status.KeyBurstsTriggered)
	s.statExpired = reg.Ints.Get(status.KeyExpired)
	s.statPreempted = reg.Ints.Get(status.KeyPreempted)
	s.statStale = reg.Ints.Get(status.KeyStaleFires)
	s.statLast = reg.Strings.Get(status.KeyLastBanner)
}

// ShowBanner shows text for the default banner duration
func (s *Scheduler) ShowBanner(text string) Signal {
	return s.ShowBannerFor(text, s.bannerDuration)
}

// ShowBannerFor replaces any active banner and restarts the duration from now
func (s *Scheduler) ShowBannerFor(text string, d time.Duration) Signal {
	s.statBanners.Add(1)
	s.statLast.Store(text)
	return s.activate(Signal{
		Kind:         KindBanner,
		Payload:      text,
		ExpiresAfter: d,
	})
}

// TriggerRain starts a burst of symbol with the configured shape and returns its id
func (s *Scheduler) TriggerRain(symbol string) uuid.UUID {
	return s.TriggerRainWith(symbol, s.rainParams)
}

// TriggerRainWith starts a burst with an explicit shape
// A prior burst loses its visibility flag and auto-clear; drops already falling are the renderer's business
func (s *Scheduler) TriggerRainWith(symbol string, p RainParams) uuid.UUID {
	s.statBursts.Add(1)
	sig := s.activate(Signal{
		Kind:         KindRain,
		Payload:      symbol,
		BurstID:      s.newBurstID(),
		ExpiresAfter: p.Lifetime(),
		Rain:         p,
	})
	return sig.BurstID
}

// Jump starts or restarts the tap pulse
func (s *Scheduler) Jump() Signal {
	return s.activate(Signal{
		Kind:         KindJump,
		ExpiresAfter: s.jumpDuration,
	})
}

// activate installs sig as the current signal of its kind and arms its expiry
func (s *Scheduler) activate(sig Signal) Signal {
	s.seq++
	sig.seq = s.seq
	sig.ActivatedAt = s.clock.Now()

	sl := &s.slots[sig.Kind]
	if sl.signal != nil {
		s.statPreempted.Add(1)
		s.logger.Debug("signal preempted",
			zap.Stringer("kind", sig.Kind),
			zap.String("previous", sl.signal.Payload),
			zap.String("next", sig.Payload))
	}
	if sl.timer != nil {
		sl.timer.Stop()
	}

	current := sig
	sl.signal = &current
	kind, seq := sig.Kind, sig.seq
	sl.timer = s.clock.AfterFunc(sig.ExpiresAfter, func() { s.expire(kind, seq) })

	s.logger.Debug("signal activated",
		zap.Stringer("kind", sig.Kind),
		zap.String("payload", sig.Payload),
		zap.Duration("expires_after", sig.ExpiresAfter))
	return current
}

// expire clears the slot only if seq is still its current signal
// A timer that lost a Stop race against preemption lands here as a no-op
func (s *Scheduler) expire(kind Kind, seq uint64) {
	sl := &s.slots[kind]
	if sl.signal == nil || sl.signal.seq != seq {
		s.statStale.Add(1)
		s.logger.Debug("stale expiry ignored", zap.Stringer("kind", kind), zap.Uint64("seq", seq))
		return
	}
	s.logger.Debug("signal expired", zap.Stringer("kind", kind), zap.String("payload", sl.signal.Payload))
	sl.signal = nil
	sl.timer = nil
	s.statExpired.Add(1)
}

// Active returns the current signal of kind
func (s *Scheduler) Active(kind Kind) (Signal, bool) {
	if kind < 0 || kind >= kindCount {
		return Signal{}, false
	}
	sl := s.slots[kind]
	if sl.signal == nil {
		return Signal{}, false
	}
	return *sl.signal, true
}

// Banner returns the current banner text
func (s *Scheduler) Banner() (string, bool) {
	sig, ok := s.Active(KindBanner)
	return sig.Payload, ok
}

// Rain returns the current burst
func (s *Scheduler) Rain() (Signal, bool) {
	return s.Active(KindRain)
}

// Jumping reports whether the tap pulse is active
func (s *Scheduler) Jumping() bool {
	_, ok := s.Active(KindJump)
	return ok
}

// Clear deactivates every signal and cancels pending timers
func (s *Scheduler) Clear() {
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.timer != nil {
			sl.timer.Stop()
		}
		sl.signal = nil
		sl.timer = nil
	}
}
