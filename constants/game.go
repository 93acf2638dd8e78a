package constants

import "time"

// Banner
const (
	// BannerDuration is how long a banner stays up unless replaced
	BannerDuration = 2 * time.Second
)

// Jump pulse shown on every tap
const (
	JumpDuration = 200 * time.Millisecond
)

// Rain burst
// Visible lifetime = RainDelayStep*(RainDropCount-1) + RainFallDuration + RainFadeDuration + RainSettleMargin
const (
	RainDropCount    = 50
	RainDelayStep    = 100 * time.Millisecond
	RainFallDuration = 6 * time.Second
	RainFadeDuration = 1500 * time.Millisecond
	RainSettleMargin = 500 * time.Millisecond

	// RainFadeLead is how long before the end of its fall a drop starts fading
	RainFadeLead = 1 * time.Second
)

// Host
const (
	AppName     = "unicorn-clicker"
	LogFileName = "unicorn-clicker.log"
)
