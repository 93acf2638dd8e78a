package render

import (
	"encoding/binary"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/unicorn-clicker/constants"
	"github.com/lixenwraith/unicorn-clicker/effects"
)

// Drop is one falling symbol at a point in time
type Drop struct {
	Symbol   string
	Column   float64 // 0..1 across the screen width
	Progress float64 // eased 0..1 from above the top edge to below the bottom edge
	Alpha    float64 // 1 opaque, 0 gone
}

type burst struct {
	id      uuid.UUID
	symbol  string
	start   time.Time
	params  effects.RainParams
	columns []float64
}

// end is when the last drop of the burst has finished falling and fading
func (b *burst) end() time.Time {
	last := b.params.DelayStep * time.Duration(len(b.columns)-1)
	return b.start.Add(last + dropLife(b.params))
}

// RainField animates drops independently of the scheduler's burst flag.
// Once started, a burst keeps falling until its own drops finish, even after
// a newer burst has replaced it as the current one.
type RainField struct {
	bursts []*burst
}

// NewRainField creates an empty field
func NewRainField() *RainField {
	return &RainField{}
}

// Observe registers sig if it is a rain burst not seen before
func (f *RainField) Observe(sig *effects.Signal) {
	if sig == nil || sig.Kind != effects.KindRain {
		return
	}
	for _, b := range f.bursts {
		if b.id == sig.BurstID {
			return
		}
	}

	n := sig.Rain.DropCount
	if n < 1 {
		n = 1
	}
	// Columns are seeded by the burst id so redraws are stable
	rng := rand.New(rand.NewSource(int64(binary.BigEndian.Uint64(sig.BurstID[:8]))))
	columns := make([]float64, n)
	for i := range columns {
		columns[i] = rng.Float64()
	}

	f.bursts = append(f.bursts, &burst{
		id:      sig.BurstID,
		symbol:  sig.Payload,
		start:   sig.ActivatedAt,
		params:  sig.Rain,
		columns: columns,
	})
}

// Drops prunes finished bursts and returns every visible drop at now, oldest burst first
func (f *RainField) Drops(now time.Time) []Drop {
	live := f.bursts[:0]
	var drops []Drop
	for _, b := range f.bursts {
		if !now.Before(b.end()) {
			continue
		}
		live = append(live, b)
		for i, col := range b.columns {
			elapsed := now.Sub(b.start) - b.params.DelayStep*time.Duration(i)
			progress, alpha, ok := dropAt(elapsed, b.params)
			if !ok {
				continue
			}
			drops = append(drops, Drop{Symbol: b.symbol, Column: col, Progress: progress, Alpha: alpha})
		}
	}
	for i := len(live); i < len(f.bursts); i++ {
		f.bursts[i] = nil
	}
	f.bursts = live
	return drops
}

// Bursts returns the number of bursts still animating after the last Drops call
func (f *RainField) Bursts() int {
	return len(f.bursts)
}

// Reset drops every burst
func (f *RainField) Reset() {
	f.bursts = nil
}

// fadeStart is when a drop begins fading, relative to its own start
func fadeStart(p effects.RainParams) time.Duration {
	return max(0, p.FallDuration-constants.RainFadeLead)
}

// dropLife is how long a single drop stays visible
func dropLife(p effects.RainParams) time.Duration {
	return max(p.FallDuration, fadeStart(p)+p.FadeDuration)
}

// dropAt returns a drop's eased position and opacity after elapsed
func dropAt(elapsed time.Duration, p effects.RainParams) (progress, alpha float64, ok bool) {
	if elapsed < 0 || elapsed >= dropLife(p) {
		return 0, 0, false
	}

	progress = 1
	if p.FallDuration > 0 && elapsed < p.FallDuration {
		progress = easeInOut(float64(elapsed) / float64(p.FallDuration))
	}

	alpha = 1
	if fs := fadeStart(p); elapsed >= fs {
		if p.FadeDuration <= 0 {
			return progress, 0, false
		}
		t := float64(elapsed-fs) / float64(p.FadeDuration)
		if t >= 1 {
			return progress, 0, false
		}
		alpha = (1 - t) * (1 - t)
	}
	return progress, alpha, true
}

func easeInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	u := -2*t + 2
	return 1 - u*u/2
}
