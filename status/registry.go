package status

import (
	"fmt"
	"io"
	"sync/atomic"
)

// Metric keys shared by the session, scheduler and host
const (
	KeyTaps            = "game.taps"
	KeyResets          = "game.resets"
	KeyAwardsUnlocked  = "game.awards_unlocked"
	KeyLevelsEntered   = "game.levels_entered"
	KeyCompleted       = "game.completed"
	KeyBannersShown    = "effects.banners"
	KeyBurstsTriggered = "effects.bursts"
	KeyExpired         = "effects.expired"
	KeyPreempted       = "effects.preempted"
	KeyStaleFires      = "effects.stale_fires"
	KeyLastBanner      = "effects.last_banner"
	KeyAudioReady      = "audio.ready"
)

// Registry is the central metrics facade
// Components cache pointers during init; hot paths write directly to atomics
type Registry struct {
	Bools   *MetricMap[atomic.Bool]
	Ints    *MetricMap[atomic.Int64]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:   NewMetricMap[atomic.Bool](),
		Ints:    NewMetricMap[atomic.Int64](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Strings.Count()
}

// Dump writes every metric as "key = value", ints first, each group sorted by key
func (r *Registry) Dump(w io.Writer) error {
	var err error
	write := func(key string, val any) {
		if err == nil {
			_, err = fmt.Fprintf(w, "%s = %v\n", key, val)
		}
	}
	r.Ints.Range(func(k string, v *atomic.Int64) { write(k, v.Load()) })
	r.Bools.Range(func(k string, v *atomic.Bool) { write(k, v.Load()) })
	r.Strings.Range(func(k string, v *AtomicString) { write(k, fmt.Sprintf("%q", v.Load())) })
	return err
}
