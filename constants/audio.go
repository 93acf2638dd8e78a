package constants

import "time"

// DefaultSampleRate is used when no sample rate is configured
const DefaultSampleRate = 44100

// SpeakerBuffer is the speaker buffer length handed to speaker.Init
const SpeakerBuffer = 100 * time.Millisecond

// Coin Sound Timing (award unlocked)
const (
	CoinSoundNote1Duration = 80 * time.Millisecond
	CoinSoundNote2Duration = 280 * time.Millisecond
	CoinSoundAttack        = 5 * time.Millisecond
	CoinSoundNote1Release  = 40 * time.Millisecond
	CoinSoundNote2Release  = 200 * time.Millisecond
)

// Bell Sound Timing (level entered)
const (
	BellSoundDuration           = 600 * time.Millisecond
	BellSoundAttack             = 5 * time.Millisecond
	BellSoundFundamentalRelease = 550 * time.Millisecond
	BellSoundOvertoneRelease    = 200 * time.Millisecond
)

// Fanfare Sound Timing (all awards collected)
const (
	FanfareNoteDuration  = 140 * time.Millisecond
	FanfareFinalDuration = 700 * time.Millisecond
	FanfareAttack        = 10 * time.Millisecond
	FanfareNoteRelease   = 60 * time.Millisecond
	FanfareFinalRelease  = 500 * time.Millisecond
)
