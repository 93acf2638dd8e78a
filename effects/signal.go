// Package effects schedules self-expiring notifications: banner text, symbol rain bursts and the tap jump pulse.
package effects

import (
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/unicorn-clicker/constants"
)

// Kind identifies a signal slot; each kind holds at most one active signal
type Kind int

const (
	KindBanner Kind = iota
	KindRain
	KindJump
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindBanner:
		return "banner"
	case KindRain:
		return "rain"
	case KindJump:
		return "jump"
	default:
		return "unknown"
	}
}

// RainParams shapes a burst: drop i starts falling at i*DelayStep
type RainParams struct {
	DropCount    int
	DelayStep    time.Duration
	FallDuration time.Duration
	FadeDuration time.Duration
}

// DefaultRainParams returns the reference burst: 50 drops, 0.1s apart, 6s fall, 1.5s fade
func DefaultRainParams() RainParams {
	return RainParams{
		DropCount:    constants.RainDropCount,
		DelayStep:    constants.RainDelayStep,
		FallDuration: constants.RainFallDuration,
		FadeDuration: constants.RainFadeDuration,
	}
}

// Lifetime is the burst-level visibility window including the settle margin
func (p RainParams) Lifetime() time.Duration {
	drops := p.DropCount
	if drops < 1 {
		drops = 1
	}
	return p.DelayStep*time.Duration(drops-1) + p.FallDuration + p.FadeDuration + constants.RainSettleMargin
}

// Signal is one activation of an effect
type Signal struct {
	Kind         Kind
	Payload      string    // Banner text or rain symbol
	BurstID      uuid.UUID // Rain only; fresh per trigger
	ActivatedAt  time.Time
	ExpiresAfter time.Duration
	Rain         RainParams // Rain only

	seq uint64
}

// ExpiresAt returns when the signal clears unless preempted
func (s Signal) ExpiresAt() time.Time {
	return s.ActivatedAt.Add(s.ExpiresAfter)
}
