package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/unicorn-clicker/clock"
	"github.com/lixenwraith/unicorn-clicker/game"
	"github.com/lixenwraith/unicorn-clicker/tables"
)

func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	screen.SetSize(80, 24)
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	screen.SetSize(80, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func newTestSession(t *testing.T) (*game.Session, *clock.Manual) {
	t.Helper()
	clk := clock.NewManual(epoch)
	s := game.NewSession(tables.Default(), clk)
	t.Cleanup(s.Close)
	s.Start()
	return s, clk
}

func rowText(s tcell.SimulationScreen, y int) string {
	w, _ := s.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		mainc, comb, _, _ := s.GetContent(x, y)
		b.WriteRune(mainc)
		for _, r := range comb {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func findRow(s tcell.SimulationScreen, needle string) int {
	_, h := s.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(s, y), needle) {
			return y
		}
	}
	return -1
}

func TestDraw_IntroFrame(t *testing.T) {
	screen := newTestScreen(t)
	sess, clk := newTestSession(t)
	r := NewRenderer()

	r.Draw(screen, sess.Snapshot(), clk.Now())

	if !strings.Contains(rowText(screen, 0), "Unicorn Clicker") {
		t.Errorf("Expected title on row 0, got %q", rowText(screen, 0))
	}
	if !strings.Contains(rowText(screen, 2), "Level: Cloudy  Clicks: 0") {
		t.Errorf("Expected HUD on row 2, got %q", rowText(screen, 2))
	}
	if !strings.Contains(rowText(screen, 4), " at 3 clicks") {
		t.Errorf("Expected next award hint, got %q", rowText(screen, 4))
	}
	if findRow(screen, "Starting Level: Cloudy") < 0 {
		t.Error("Expected intro banner")
	}
	if r.Rain().Bursts() != 1 {
		t.Errorf("Expected intro burst tracked, got %d", r.Rain().Bursts())
	}
}

func TestDraw_BannerClears(t *testing.T) {
	screen := newTestScreen(t)
	sess, clk := newTestSession(t)
	r := NewRenderer()

	clk.Advance(2 * time.Second)
	r.Draw(screen, sess.Snapshot(), clk.Now())

	if findRow(screen, "Starting Level") >= 0 {
		t.Error("Expected banner cleared after 2s")
	}
}

func TestDraw_CompletedFrame(t *testing.T) {
	screen := newTestScreen(t)
	sess, clk := newTestSession(t)
	r := NewRenderer()

	for i := 0; i < 60; i++ {
		sess.Tap()
	}
	r.Draw(screen, sess.Snapshot(), clk.Now())

	if !strings.Contains(rowText(screen, 2), "Level: Queen  Clicks: 60") {
		t.Errorf("Expected HUD on row 2, got %q", rowText(screen, 2))
	}
	if !strings.Contains(rowText(screen, 4), "All 10 emojis collected!") {
		t.Errorf("Expected completion line, got %q", rowText(screen, 4))
	}
	if findRow(screen, "Completed all levels!") < 0 {
		t.Error("Expected completion banner")
	}

	// Two grid rows of five awards
	for _, y := range []int{6, 7} {
		if got := strings.Count(rowText(screen, y), "["); got != gridMaxCols {
			t.Errorf("Expected %d grid cells on row %d, got %d", gridMaxCols, y, got)
		}
	}
}

func TestDraw_MascotJumps(t *testing.T) {
	screen := newTestScreen(t)
	sess, clk := newTestSession(t)
	r := NewRenderer()

	r.Draw(screen, sess.Snapshot(), clk.Now())
	rest := findRow(screen, tables.DefaultMascot)

	sess.Tap()
	r.Draw(screen, sess.Snapshot(), clk.Now())
	up := findRow(screen, tables.DefaultMascot)
	if up != rest-1 {
		t.Errorf("Expected mascot raised to row %d, got %d", rest-1, up)
	}
	if !r.HitMascot(r.mascotX, up) {
		t.Error("Expected click on mascot to hit")
	}
	if r.HitMascot(0, 0) {
		t.Error("Expected click on corner to miss")
	}

	clk.Advance(200 * time.Millisecond)
	r.Draw(screen, sess.Snapshot(), clk.Now())
	if got := findRow(screen, tables.DefaultMascot); got != rest {
		t.Errorf("Expected mascot back on row %d, got %d", rest, got)
	}
}

func TestDraw_RainVisible(t *testing.T) {
	screen := newTestScreen(t)
	sess, clk := newTestSession(t)
	r := NewRenderer()

	r.Draw(screen, sess.Snapshot(), clk.Now())
	clk.Advance(3 * time.Second)
	r.Draw(screen, sess.Snapshot(), clk.Now())

	found := false
	_, h := screen.Size()
	for y := 0; y < h && !found; y++ {
		found = strings.ContainsRune(rowText(screen, y), '☁')
	}
	if !found {
		t.Error("Expected cloud drops on screen mid-burst")
	}
}

func TestDraw_TinyScreen(t *testing.T) {
	screen := newTestScreen(t)
	screen.SetSize(10, 3)
	sess, clk := newTestSession(t)

	NewRenderer().Draw(screen, sess.Snapshot(), clk.Now())
}
