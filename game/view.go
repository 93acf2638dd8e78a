package game

import (
	"time"

	"github.com/lixenwraith/unicorn-clicker/effects"
	"github.com/lixenwraith/unicorn-clicker/engine"
)

// View is everything a renderer needs for one frame
type View struct {
	engine.Snapshot

	Title  string
	Mascot string
	Now    time.Time

	Banner  *effects.Signal // nil when no banner is up
	Rain    *effects.Signal // nil when no burst is current
	Jumping bool
}

// BannerText returns the banner text, empty when absent
func (v View) BannerText() string {
	if v.Banner == nil {
		return ""
	}
	return v.Banner.Payload
}
