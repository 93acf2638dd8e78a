package events

import (
	"fmt"

	"github.com/lixenwraith/unicorn-clicker/tables"
)

// EventType represents the type of progression event
type EventType int

const (
	// EventLevelEntered signals the current level changed
	// Trigger: Progression.Reset (initial level), Progression.RegisterTap (level-up)
	// Consumer: effects director (banner + rain), audio | Payload: *LevelEnteredPayload
	EventLevelEntered EventType = iota

	// EventGameCompleted signals every award has been collected
	// Trigger: Progression.RegisterTap, at most once per reset; suppresses level-up on the same tap
	// Consumer: effects director (banner + mascot rain), audio | Payload: *GameCompletedPayload
	EventGameCompleted

	// EventAwardUnlocked signals an award reached its exact threshold
	// Trigger: Progression.RegisterTap, emitted before completion/level-up events of the same tap
	// Consumer: audio | Payload: *AwardUnlockedPayload
	EventAwardUnlocked
)

var typeToName = map[EventType]string{
	EventLevelEntered:  "LevelEntered",
	EventGameCompleted: "GameCompleted",
	EventAwardUnlocked: "AwardUnlocked",
}

func (t EventType) String() string {
	if name, ok := typeToName[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GameEvent represents a single progression event
type GameEvent struct {
	Type    EventType
	Payload any
	Tap     int // Tap count at emission
}

// LevelEnteredPayload carries the level that became current
type LevelEnteredPayload struct {
	Index   int
	Level   tables.Level
	Initial bool // True when produced by a reset rather than a level-up
}

// GameCompletedPayload carries the completion context
type GameCompletedPayload struct {
	Awards int
}

// AwardUnlockedPayload carries the newly unlocked award and its table position
type AwardUnlockedPayload struct {
	Award    tables.Award
	Position int
}
