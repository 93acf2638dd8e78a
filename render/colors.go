package render

import "github.com/gdamore/tcell/v2"

// Palette loosely follows the rainbow gradient behind the mascot
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbTitle      = tcell.NewRGBColor(255, 255, 255) // White
	RgbHUD        = tcell.NewRGBColor(200, 200, 255) // Pale lavender
	RgbNext       = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbCollected  = tcell.NewRGBColor(144, 238, 144) // Light green for the completion line
	RgbGridFrame  = tcell.NewRGBColor(90, 90, 120)   // Muted slate
	RgbBannerFg   = tcell.NewRGBColor(255, 255, 255) // White
	RgbBannerBg   = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbHint       = tcell.NewRGBColor(120, 120, 140) // Dim gray
)

// rainbow cycles behind the title row
var rainbow = []tcell.Color{
	tcell.NewRGBColor(255, 80, 80),
	tcell.NewRGBColor(255, 165, 0),
	tcell.NewRGBColor(255, 255, 0),
	tcell.NewRGBColor(0, 200, 0),
	tcell.NewRGBColor(100, 150, 255),
	tcell.NewRGBColor(75, 0, 130),
	tcell.NewRGBColor(128, 0, 128),
}
