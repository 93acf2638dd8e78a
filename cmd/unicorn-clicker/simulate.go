package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/unicorn-clicker/audio"
	"github.com/lixenwraith/unicorn-clicker/clock"
	"github.com/lixenwraith/unicorn-clicker/events"
	"github.com/lixenwraith/unicorn-clicker/game"
	"github.com/lixenwraith/unicorn-clicker/status"
	"github.com/lixenwraith/unicorn-clicker/tables"
)

const defaultSimStep = 250 * time.Millisecond

var (
	simTaps  int
	simStep  time.Duration
	simQuiet bool
)

// simEpoch anchors the virtual clock so traces are reproducible
var simEpoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

// cueCounter stands in for the speaker and counts cues
type cueCounter map[audio.SoundType]int

func (c cueCounter) Play(st audio.SoundType) { c[st]++ }

func runSimulate(cmd *cobra.Command, args []string) error {
	if simTaps < 0 {
		return fmt.Errorf("--taps must not be negative, got %d", simTaps)
	}
	if simStep < 0 {
		return fmt.Errorf("--step must not be negative, got %v", simStep)
	}

	t, err := loadTables()
	if err != nil {
		return err
	}
	l := logger
	if l == nil {
		l = zap.NewNop()
	}
	return simulate(cmd.OutOrStdout(), t, simTaps, simStep, simQuiet, l)
}

// simulate drives a session on a manual clock and writes the trace to w
func simulate(w io.Writer, t *tables.Tables, taps int, step time.Duration, quiet bool, l *zap.Logger) error {
	clk := clock.NewManual(simEpoch)
	metrics := status.NewRegistry()
	cues := cueCounter{}
	sess := game.NewSession(t, clk,
		game.WithLogger(l),
		game.WithMetrics(metrics),
		game.WithSound(cues),
	)
	defer sess.Close()

	p := &printer{w: w, quiet: quiet}
	p.events(sess.Start())
	for i := 0; i < taps; i++ {
		clk.Advance(step)
		p.events(sess.Tap())
	}

	v := sess.Snapshot()
	p.line("--")
	p.linef("elapsed: %v", clk.Now().Sub(simEpoch))
	p.linef("clicks: %d", v.TapCount)
	p.linef("level: %s %s (%d/%d)", v.CurrentLevel.Name, v.CurrentLevel.Badge, v.CurrentLevelIndex+1, t.LevelCount())

	collected := make([]string, len(v.UnlockedAwards))
	for i, a := range v.UnlockedAwards {
		collected[i] = a.Symbol
	}
	p.linef("awards: %d/%d %s", len(v.UnlockedAwards), v.TotalAwards, strings.Join(collected, " "))

	if v.NextAward != nil {
		p.linef("next: %s at %d clicks", v.NextAward.Symbol, v.NextAward.Threshold)
	} else {
		p.linef("next: all %d collected", v.TotalAwards)
	}
	if text := v.BannerText(); text != "" {
		p.linef("banner: %q", text)
	}
	if v.Rain != nil {
		p.linef("rain: %s until %v", v.Rain.Payload, v.Rain.ExpiresAt().Sub(simEpoch))
	}
	p.linef("sounds: coin=%d bell=%d fanfare=%d", cues[audio.SoundCoin], cues[audio.SoundBell], cues[audio.SoundFanfare])
	p.line("--")
	if p.err != nil {
		return p.err
	}
	return metrics.Dump(w)
}

// printer keeps the first write error
type printer struct {
	w     io.Writer
	quiet bool
	err   error
}

func (p *printer) line(s string) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, s)
	}
}

func (p *printer) linef(format string, args ...any) {
	p.line(fmt.Sprintf(format, args...))
}

func (p *printer) events(evs []events.GameEvent) {
	if p.quiet {
		return
	}
	for _, ev := range evs {
		p.linef("tap %3d  %-14s %s", ev.Tap, ev.Type, describe(ev))
	}
}

func describe(ev events.GameEvent) string {
	switch pl := ev.Payload.(type) {
	case *events.LevelEnteredPayload:
		if pl.Initial {
			return fmt.Sprintf("%s %s (start)", pl.Level.Name, pl.Level.Badge)
		}
		return fmt.Sprintf("%s %s", pl.Level.Name, pl.Level.Badge)
	case *events.AwardUnlockedPayload:
		return fmt.Sprintf("%s %s #%d", pl.Award.Symbol, pl.Award.ID, pl.Position+1)
	case *events.GameCompletedPayload:
		return fmt.Sprintf("%d awards", pl.Awards)
	default:
		return ""
	}
}
