// Package tables holds the static award and level thresholds that drive progression.
package tables

import (
	"errors"
	"fmt"
)

// ErrInvalidTables is wrapped by every validation failure
var ErrInvalidTables = errors.New("invalid threshold tables")

// Award is a collectible symbol unlocked when the tap count equals Threshold exactly
type Award struct {
	ID        string `yaml:"id"`
	Threshold int    `yaml:"threshold"`
	Symbol    string `yaml:"symbol"`
}

// Level is a named tier; Goal is the cumulative tap count, not an increment
type Level struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Goal  int    `yaml:"goal"`
	Badge string `yaml:"badge"`
}

// Tables is the immutable award and level configuration
// Accessors return copies so callers cannot mutate the loaded set
type Tables struct {
	title    string
	mascot   string
	awards   []Award
	levels   []Level
	position map[string]int
}

// Default titles used when a tables file leaves them empty
const (
	DefaultTitle  = "Unicorn Clicker"
	DefaultMascot = "🦄"
)

// Default returns the reference configuration: 10 awards and 3 levels
func Default() *Tables {
	t, err := New(DefaultTitle, DefaultMascot, defaultAwards(), defaultLevels())
	if err != nil {
		panic(fmt.Errorf("reference tables failed validation: %w", err))
	}
	return t
}

func defaultAwards() []Award {
	return []Award{
		{ID: "sparkles", Threshold: 3, Symbol: "✨"},
		{ID: "glowing-star", Threshold: 6, Symbol: "🌟"},
		{ID: "rainbow", Threshold: 10, Symbol: "🌈"},
		{ID: "butterfly", Threshold: 15, Symbol: "🦋"},
		{ID: "cupcake", Threshold: 20, Symbol: "🧁"},
		{ID: "strawberry", Threshold: 25, Symbol: "🍓"},
		{ID: "gem", Threshold: 30, Symbol: "💎"},
		{ID: "magic-wand", Threshold: 40, Symbol: "🪄"},
		{ID: "ribbon", Threshold: 50, Symbol: "🎀"},
		{ID: "crown", Threshold: 60, Symbol: "👑"},
	}
}

func defaultLevels() []Level {
	return []Level{
		{ID: "cloudy", Name: "Cloudy", Goal: 15, Badge: "☁️"},
		{ID: "rainbow-rider", Name: "Rainbow Rider", Goal: 20, Badge: "🌈"},
		{ID: "queen", Name: "Queen", Goal: 30, Badge: "👑"},
	}
}

// New validates and freezes a table set
// Empty title or mascot fall back to the defaults
func New(title, mascot string, awards []Award, levels []Level) (*Tables, error) {
	if err := validate(awards, levels); err != nil {
		return nil, err
	}
	if title == "" {
		title = DefaultTitle
	}
	if mascot == "" {
		mascot = DefaultMascot
	}

	t := &Tables{
		title:    title,
		mascot:   mascot,
		awards:   append([]Award(nil), awards...),
		levels:   append([]Level(nil), levels...),
		position: make(map[string]int, len(awards)),
	}
	for i, a := range t.awards {
		t.position[a.ID] = i
	}
	return t, nil
}

func validate(awards []Award, levels []Level) error {
	if len(awards) == 0 {
		return fmt.Errorf("%w: no awards", ErrInvalidTables)
	}
	if len(levels) == 0 {
		return fmt.Errorf("%w: no levels", ErrInvalidTables)
	}

	ids := make(map[string]struct{}, len(awards))
	thresholds := make(map[int]string, len(awards))
	for i, a := range awards {
		if a.ID == "" {
			return fmt.Errorf("%w: award %d has empty id", ErrInvalidTables, i)
		}
		if _, dup := ids[a.ID]; dup {
			return fmt.Errorf("%w: duplicate award id %q", ErrInvalidTables, a.ID)
		}
		ids[a.ID] = struct{}{}

		if a.Threshold <= 0 {
			return fmt.Errorf("%w: award %q threshold %d must be positive", ErrInvalidTables, a.ID, a.Threshold)
		}
		if other, dup := thresholds[a.Threshold]; dup {
			return fmt.Errorf("%w: awards %q and %q share threshold %d", ErrInvalidTables, other, a.ID, a.Threshold)
		}
		thresholds[a.Threshold] = a.ID

		if a.Symbol == "" {
			return fmt.Errorf("%w: award %q has empty symbol", ErrInvalidTables, a.ID)
		}
	}

	levelIDs := make(map[string]struct{}, len(levels))
	prevGoal := 0
	for i, l := range levels {
		if l.ID == "" {
			return fmt.Errorf("%w: level %d has empty id", ErrInvalidTables, i)
		}
		if _, dup := levelIDs[l.ID]; dup {
			return fmt.Errorf("%w: duplicate level id %q", ErrInvalidTables, l.ID)
		}
		levelIDs[l.ID] = struct{}{}

		if l.Goal <= 0 {
			return fmt.Errorf("%w: level %q goal %d must be positive", ErrInvalidTables, l.ID, l.Goal)
		}
		if i > 0 && l.Goal <= prevGoal {
			return fmt.Errorf("%w: level %q goal %d must exceed previous goal %d", ErrInvalidTables, l.ID, l.Goal, prevGoal)
		}
		prevGoal = l.Goal

		if l.Name == "" || l.Badge == "" {
			return fmt.Errorf("%w: level %q needs a name and a badge", ErrInvalidTables, l.ID)
		}
	}
	return nil
}

// Title returns the game title shown by the host
func (t *Tables) Title() string { return t.title }

// Mascot returns the symbol rained on completion
func (t *Tables) Mascot() string { return t.mascot }

// Awards returns the awards in table order
func (t *Tables) Awards() []Award {
	return append([]Award(nil), t.awards...)
}

// Levels returns the levels in ascending goal order
func (t *Tables) Levels() []Level {
	return append([]Level(nil), t.levels...)
}

func (t *Tables) AwardCount() int { return len(t.awards) }

func (t *Tables) LevelCount() int { return len(t.levels) }

// Award returns the award at table position i
func (t *Tables) Award(i int) Award { return t.awards[i] }

// Level returns the level at index i, clamped to the last level
func (t *Tables) Level(i int) Level {
	if i < 0 {
		i = 0
	}
	if i >= len(t.levels) {
		i = len(t.levels) - 1
	}
	return t.levels[i]
}

// Position returns the fixed table position of an award id
func (t *Tables) Position(id string) (int, bool) {
	p, ok := t.position[id]
	return p, ok
}
