package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/lixenwraith/unicorn-clicker/audio"
	"github.com/lixenwraith/unicorn-clicker/events"
)

// effectsDirector turns progression events into banners and rain bursts
type effectsDirector struct{}

func (effectsDirector) EventTypes() []events.EventType {
	return []events.EventType{events.EventLevelEntered, events.EventGameCompleted}
}

func (effectsDirector) HandleEvent(s *Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventLevelEntered:
		p, ok := ev.Payload.(*events.LevelEnteredPayload)
		if !ok {
			return
		}
		s.scheduler.ShowBanner(LevelBanner(p))
		s.scheduler.TriggerRain(p.Level.Badge)

	case events.EventGameCompleted:
		s.scheduler.ShowBanner(CompletionBanner(s.tables.Mascot()))
		s.scheduler.TriggerRain(s.tables.Mascot())
	}
}

// LevelBanner formats the banner for an entered level
func LevelBanner(p *events.LevelEnteredPayload) string {
	if p.Initial {
		return fmt.Sprintf("Starting Level: %s %s", p.Level.Name, p.Level.Badge)
	}
	return fmt.Sprintf("Level Up: %s %s", p.Level.Name, p.Level.Badge)
}

// CompletionBanner formats the completion banner
func CompletionBanner(mascot string) string {
	return "Completed all levels! " + mascot
}

// soundCues maps events to audio cues; the intro level plays nothing
type soundCues struct{}

func (soundCues) EventTypes() []events.EventType {
	return []events.EventType{events.EventAwardUnlocked, events.EventLevelEntered, events.EventGameCompleted}
}

func (soundCues) HandleEvent(s *Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventAwardUnlocked:
		s.sound.Play(audio.SoundCoin)
	case events.EventLevelEntered:
		if p, ok := ev.Payload.(*events.LevelEnteredPayload); ok && !p.Initial {
			s.sound.Play(audio.SoundBell)
		}
	case events.EventGameCompleted:
		s.sound.Play(audio.SoundFanfare)
	}
}

// counters records progression milestones in the metrics registry
type counters struct{}

func (counters) EventTypes() []events.EventType {
	return []events.EventType{events.EventAwardUnlocked, events.EventLevelEntered, events.EventGameCompleted}
}

func (counters) HandleEvent(s *Session, ev events.GameEvent) {
	switch ev.Type {
	case events.EventAwardUnlocked:
		s.statAwards.Add(1)
	case events.EventLevelEntered:
		s.statLevels.Add(1)
	case events.EventGameCompleted:
		s.statCompleted.Add(1)
		s.logger.Info("game completed", zap.Int("tap", ev.Tap))
	}
}
