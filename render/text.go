package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// drawText writes text one grapheme cluster per cell group so emoji with
// variation selectors keep their combining runes. Returns columns used.
func drawText(s tcell.Screen, x, y int, text string, style tcell.Style) int {
	w, h := s.Size()
	if y < 0 || y >= h {
		return uniseg.StringWidth(text)
	}

	col := x
	state := -1
	for len(text) > 0 {
		var cluster string
		var width int
		cluster, text, width, state = uniseg.FirstGraphemeClusterInString(text, state)
		if width == 0 {
			continue
		}
		if col >= 0 && col+width <= w {
			runes := []rune(cluster)
			s.SetContent(col, y, runes[0], runes[1:], style)
		}
		col += width
	}
	return col - x
}

// drawCentered writes text centred on row y
func drawCentered(s tcell.Screen, y int, text string, style tcell.Style) int {
	w, _ := s.Size()
	x := (w - uniseg.StringWidth(text)) / 2
	if x < 0 {
		x = 0
	}
	drawText(s, x, y, text, style)
	return x
}
