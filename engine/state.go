package engine

import (
	"github.com/lixenwraith/unicorn-clicker/tables"
)

// GameState is the mutable progression state owned by Progression
//
// Invariants until the next reset:
//   - TapCount only increases, by exactly one per tap
//   - UnlockedAwards only grows and stays in award table order
//   - CurrentLevelIndex only increases, within [0, levelCount-1]
//   - AllAwardsCollected flips to true once and stays true
type GameState struct {
	TapCount           int
	UnlockedAwards     []tables.Award
	CurrentLevelIndex  int
	AllAwardsCollected bool
}

// clone returns a deep copy safe to hand to other goroutines
func (s GameState) clone() GameState {
	s.UnlockedAwards = append([]tables.Award(nil), s.UnlockedAwards...)
	return s
}

// Snapshot is a read-only view of the state plus derived display fields
type Snapshot struct {
	GameState

	TotalAwards  int
	CurrentLevel tables.Level
	NextAward    *tables.Award // nil once the counter reached the last threshold
	NextLevel    *tables.Level // nil on the last level
}

// Unlocked reports whether the award with the given id is unlocked
func (s Snapshot) Unlocked(id string) bool {
	for _, a := range s.UnlockedAwards {
		if a.ID == id {
			return true
		}
	}
	return false
}
