package engine

import (
	"sort"

	"go.uber.org/zap"

	"github.com/lixenwraith/unicorn-clicker/events"
	"github.com/lixenwraith/unicorn-clicker/tables"
)

// Progression applies the tap-transition rule and the award/level unlock rules
// Not safe for concurrent use; the owning session serializes calls
type Progression struct {
	tables *tables.Tables
	state  GameState
	logger *zap.Logger
}

// NewProgression creates a progression at tap zero on the first level
// Unlike Reset, construction emits nothing
func NewProgression(t *tables.Tables, logger *zap.Logger) *Progression {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Progression{
		tables: t,
		logger: logger.Named("progression"),
	}
}

// Tables returns the threshold tables this progression runs on
func (p *Progression) Tables() *tables.Tables { return p.tables }

// Reset zeroes the state and emits LevelEntered for the first level
func (p *Progression) Reset() []events.GameEvent {
	p.state = GameState{}
	p.logger.Debug("reset")

	return []events.GameEvent{{
		Type: events.EventLevelEntered,
		Payload: &events.LevelEnteredPayload{
			Index:   0,
			Level:   p.tables.Level(0),
			Initial: true,
		},
	}}
}

// RegisterTap advances the counter by one and evaluates, in order:
// award unlock, completion, then level-up (skipped when completion fired)
func (p *Progression) RegisterTap() []events.GameEvent {
	return p.advance(1)
}

// advance adds n taps at once; unlocks match exact thresholds only,
// so n > 1 skips any award whose threshold is jumped over
func (p *Progression) advance(n int) []events.GameEvent {
	p.state.TapCount += n
	tap := p.state.TapCount

	var evs []events.GameEvent

	// 1. Award unlock on exact match
	awards := p.tables.Awards()
	unlocked := false
	for i, a := range awards {
		if a.Threshold != tap || p.hasAward(a.ID) {
			continue
		}
		p.state.UnlockedAwards = append(p.state.UnlockedAwards, a)
		unlocked = true
		evs = append(evs, events.GameEvent{
			Type:    events.EventAwardUnlocked,
			Payload: &events.AwardUnlockedPayload{Award: a, Position: i},
			Tap:     tap,
		})
		p.logger.Debug("award unlocked", zap.String("award", a.ID), zap.Int("tap", tap))
	}
	if unlocked {
		p.sortAwards()
	}

	// 2. Completion takes priority over level-up on the same tap
	total := p.tables.AwardCount()
	if !p.state.AllAwardsCollected && len(p.state.UnlockedAwards) >= total {
		p.state.AllAwardsCollected = true
		p.logger.Info("all awards collected", zap.Int("tap", tap))
		return append(evs, events.GameEvent{
			Type:    events.EventGameCompleted,
			Payload: &events.GameCompletedPayload{Awards: total},
			Tap:     tap,
		})
	}

	// 3. Level-up, one level per tap
	next := p.state.CurrentLevelIndex + 1
	if next < p.tables.LevelCount() && tap >= p.tables.Level(next).Goal {
		p.state.CurrentLevelIndex = next
		level := p.tables.Level(next)
		p.logger.Info("level entered", zap.String("level", level.ID), zap.Int("tap", tap))
		evs = append(evs, events.GameEvent{
			Type:    events.EventLevelEntered,
			Payload: &events.LevelEnteredPayload{Index: next, Level: level},
			Tap:     tap,
		})
	}

	return evs
}

func (p *Progression) hasAward(id string) bool {
	for _, a := range p.state.UnlockedAwards {
		if a.ID == id {
			return true
		}
	}
	return false
}

// sortAwards orders unlocked awards by fixed table position, not unlock time
func (p *Progression) sortAwards() {
	sort.SliceStable(p.state.UnlockedAwards, func(i, j int) bool {
		pi, _ := p.tables.Position(p.state.UnlockedAwards[i].ID)
		pj, _ := p.tables.Position(p.state.UnlockedAwards[j].ID)
		return pi < pj
	})
}

// NextAward returns the award with the smallest threshold strictly above the tap count
func (p *Progression) NextAward() (tables.Award, bool) {
	var best tables.Award
	found := false
	for _, a := range p.tables.Awards() {
		if a.Threshold <= p.state.TapCount {
			continue
		}
		if !found || a.Threshold < best.Threshold {
			best = a
			found = true
		}
	}
	return best, found
}

// NextLevel returns the level after the current one, if any
func (p *Progression) NextLevel() (tables.Level, bool) {
	next := p.state.CurrentLevelIndex + 1
	if next >= p.tables.LevelCount() {
		return tables.Level{}, false
	}
	return p.tables.Level(next), true
}

// CurrentLevel returns the level at the current index
func (p *Progression) CurrentLevel() tables.Level {
	return p.tables.Level(p.state.CurrentLevelIndex)
}

// State returns a deep copy of the current state
func (p *Progression) State() GameState {
	return p.state.clone()
}

// Snapshot returns the state with derived display fields
func (p *Progression) Snapshot() Snapshot {
	s := Snapshot{
		GameState:    p.state.clone(),
		TotalAwards:  p.tables.AwardCount(),
		CurrentLevel: p.CurrentLevel(),
	}
	if a, ok := p.NextAward(); ok {
		s.NextAward = &a
	}
	if l, ok := p.NextLevel(); ok {
		s.NextLevel = &l
	}
	return s
}
