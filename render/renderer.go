// Package render draws a game view onto a tcell screen.
package render

import (
	"fmt"
	"math"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"

	"github.com/lixenwraith/unicorn-clicker/game"
)

const (
	gridCellWidth = 4
	gridMaxCols   = 5
	hintText      = "space/enter/click: tap   r: reset   q: quit"
	minAlpha      = 0.15
	dimAlpha      = 0.5
)

// Renderer draws frames; it keeps the rain field between frames
type Renderer struct {
	rain *RainField

	// Mascot hit box from the last frame, screen coordinates
	mascotX, mascotY, mascotW int
}

// NewRenderer creates a renderer with an empty rain field
func NewRenderer() *Renderer {
	return &Renderer{rain: NewRainField()}
}

// Rain exposes the rain field
func (r *Renderer) Rain() *RainField {
	return r.rain
}

// Draw renders v at now and shows the screen
func (r *Renderer) Draw(screen tcell.Screen, v game.View, now time.Time) {
	defaultStyle := tcell.StyleDefault.Background(RgbBackground)
	screen.SetStyle(defaultStyle)
	screen.Clear()

	w, h := screen.Size()
	if w <= 0 || h <= 0 {
		return
	}

	r.drawTitle(screen, v, defaultStyle)
	r.drawHUD(screen, v, defaultStyle)
	gridEnd := r.drawGrid(screen, v, 6, defaultStyle)
	r.drawMascot(screen, v, gridEnd, h, defaultStyle)

	r.rain.Observe(v.Rain)
	r.drawRain(screen, now, defaultStyle)

	r.drawBanner(screen, v, h, defaultStyle)
	drawCentered(screen, h-1, hintText, defaultStyle.Foreground(RgbHint))

	screen.Show()
}

// HitMascot reports whether a click at x, y lands on the mascot drawn last frame
func (r *Renderer) HitMascot(x, y int) bool {
	if r.mascotW == 0 {
		return false
	}
	return y >= r.mascotY-1 && y <= r.mascotY+1 && x >= r.mascotX-1 && x < r.mascotX+r.mascotW+1
}

func (r *Renderer) drawTitle(s tcell.Screen, v game.View, style tcell.Style) {
	title := fmt.Sprintf("%s %s", v.Title, v.CurrentLevel.Badge)
	x := drawCentered(s, 0, title, style.Foreground(RgbTitle).Bold(true))

	// Rainbow underline
	w, _ := s.Size()
	for i := 0; i < uniseg.StringWidth(v.Title) && x+i < w; i++ {
		s.SetContent(x+i, 1, '▀', nil, style.Foreground(rainbow[i%len(rainbow)]))
	}
}

func (r *Renderer) drawHUD(s tcell.Screen, v game.View, style tcell.Style) {
	drawCentered(s, 2, fmt.Sprintf("Level: %s  Clicks: %d", v.CurrentLevel.Name, v.TapCount), style.Foreground(RgbHUD))

	if v.NextAward != nil {
		drawCentered(s, 4, fmt.Sprintf("Next: %s at %d clicks", v.NextAward.Symbol, v.NextAward.Threshold), style.Foreground(RgbNext))
	} else {
		drawCentered(s, 4, fmt.Sprintf("All %d emojis collected! 🎉", v.TotalAwards), style.Foreground(RgbCollected).Bold(true))
	}
}

// drawGrid lays unlocked awards out in table order and returns the first free row
func (r *Renderer) drawGrid(s tcell.Screen, v game.View, top int, style tcell.Style) int {
	n := len(v.UnlockedAwards)
	if n == 0 {
		return top
	}

	w, _ := s.Size()
	cols := min(gridMaxCols, max(1, w/gridCellWidth))
	width := cols * gridCellWidth
	left := max(0, (w-width)/2)

	frame := style.Foreground(RgbGridFrame)
	for i, a := range v.UnlockedAwards {
		row := top + i/cols
		col := left + (i%cols)*gridCellWidth
		s.SetContent(col, row, '[', nil, frame)
		drawText(s, col+1, row, a.Symbol, style)
		s.SetContent(col+3, row, ']', nil, frame)
	}
	return top + (n+cols-1)/cols + 1
}

func (r *Renderer) drawMascot(s tcell.Screen, v game.View, top, h int, style tcell.Style) {
	y := max(top+1, h/2+1)
	if v.Jumping {
		y--
	}
	r.mascotY = y
	r.mascotX = drawCentered(s, y, v.Mascot, style)
	r.mascotW = max(1, uniseg.StringWidth(v.Mascot))
}

func (r *Renderer) drawRain(s tcell.Screen, now time.Time, style tcell.Style) {
	w, h := s.Size()
	for _, d := range r.rain.Drops(now) {
		if d.Alpha < minAlpha {
			continue
		}
		// Drops enter above the top edge and leave below the bottom edge
		row := int(math.Round(-1 + d.Progress*float64(h+1)))
		if row < 0 || row >= h {
			continue
		}
		col := int(d.Column * float64(max(1, w-2)))
		drawText(s, col, row, d.Symbol, style.Dim(d.Alpha < dimAlpha))
	}
}

func (r *Renderer) drawBanner(s tcell.Screen, v game.View, h int, style tcell.Style) {
	text := v.BannerText()
	if text == "" {
		return
	}
	drawCentered(s, h/2-2, " "+text+" ", style.Foreground(RgbBannerFg).Background(RgbBannerBg).Bold(true))
}
