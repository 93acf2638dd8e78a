package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/unicorn-clicker/audio"
	"github.com/lixenwraith/unicorn-clicker/clock"
	"github.com/lixenwraith/unicorn-clicker/config"
	"github.com/lixenwraith/unicorn-clicker/game"
	"github.com/lixenwraith/unicorn-clicker/render"
	"github.com/lixenwraith/unicorn-clicker/status"
	"github.com/lixenwraith/unicorn-clicker/tables"
)

// host couples a session with a terminal screen and the speaker
type host struct {
	screen   tcell.Screen
	session  *game.Session
	renderer *render.Renderer
	sound    *audio.SoundManager
	clock    clock.Clock
	interval time.Duration
	logger   *zap.Logger

	mouseDown bool // Button1 held; a click taps once on press
}

func runPlay(cmd *cobra.Command, args []string) error {
	t, err := loadTables()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}

	h := newHost(screen, t, clock.NewReal(), cfg, logger)
	defer h.cleanup()

	h.session.Start()
	h.run()
	return nil
}

func newHost(screen tcell.Screen, t *tables.Tables, clk clock.Clock, c *config.Config, l *zap.Logger) *host {
	metrics := status.NewRegistry()
	sound := audio.NewSoundManager(c.Audio(), l)

	// Non-fatal, game can run without sound
	if err := sound.Initialize(); err != nil {
		if errors.Is(err, audio.ErrAudioDisabled) {
			l.Info("audio disabled")
		} else {
			l.Warn("audio initialization failed", zap.Error(err))
		}
	}
	metrics.Bools.Get(status.KeyAudioReady).Store(sound.Ready())

	screen.EnableMouse()
	screen.HideCursor()

	return &host{
		screen: screen,
		session: game.NewSession(t, clk,
			game.WithLogger(l),
			game.WithMetrics(metrics),
			game.WithSound(sound),
		),
		renderer: render.NewRenderer(),
		sound:    sound,
		clock:    clk,
		interval: c.FrameInterval,
		logger:   l,
	}
}

// handleInput applies one terminal event; false means quit
func (h *host) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyEnter:
			h.session.Tap()
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q', 'Q':
				return false
			case ' ':
				h.session.Tap()
			case 'r', 'R':
				h.session.Reset()
				h.renderer.Rain().Reset()
			}
		}

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !h.mouseDown {
			x, y := ev.Position()
			if h.renderer.HitMascot(x, y) {
				h.session.Tap()
			}
		}
		h.mouseDown = pressed

	case *tcell.EventResize:
		h.screen.Sync()
	}

	return true
}

func (h *host) draw() {
	h.renderer.Draw(h.screen, h.session.Snapshot(), h.clock.Now())
}

func (h *host) run() {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				// Screen finalized
				close(eventChan)
				return
			}
			eventChan <- ev
		}
	}()

	h.draw()
	for {
		select {
		case ev, ok := <-eventChan:
			if !ok || !h.handleInput(ev) {
				return
			}
			h.draw()

		case <-ticker.C:
			h.draw()
		}
	}
}

func (h *host) cleanup() {
	h.session.Close()
	h.sound.Cleanup()
	h.screen.Fini()
	h.logger.Info("session ended", zap.Int64("taps", h.session.Metrics().Ints.Get(status.KeyTaps).Load()))
}
