package effects

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/unicorn-clicker/clock"
	"github.com/lixenwraith/unicorn-clicker/status"
)

var epoch = time.Date(2025, 9, 2, 12, 0, 0, 0, time.UTC)

// leakyClock wraps a manual clock but ignores Stop, so every armed callback fires.
// It stands in for a runtime timer whose callback was already dispatched when preempted.
type leakyClock struct {
	*clock.Manual
}

type leakyTimer struct{}

func (leakyTimer) Stop() bool { return false }

func (c leakyClock) AfterFunc(d time.Duration, f func()) clock.Timer {
	c.Manual.AfterFunc(d, f)
	return leakyTimer{}
}

func newTestScheduler(t *testing.T, opts ...Option) (*Scheduler, *clock.Manual, *status.Registry) {
	t.Helper()
	clk := clock.NewManual(epoch)
	reg := status.NewRegistry()
	opts = append([]Option{WithMetrics(reg)}, opts...)
	return NewScheduler(clk, opts...), clk, reg
}

func TestRainParams_Lifetime(t *testing.T) {
	p := DefaultRainParams()
	// 0.1*49 + 6 + 1.5 + 0.5
	assert.Equal(t, 12900*time.Millisecond, p.Lifetime())

	single := RainParams{DropCount: 1, DelayStep: time.Second, FallDuration: 2 * time.Second, FadeDuration: time.Second}
	assert.Equal(t, 3500*time.Millisecond, single.Lifetime())
}

func TestShowBanner_ExpiresAfterDefault(t *testing.T) {
	s, clk, reg := newTestScheduler(t)

	s.ShowBanner("Starting Level: Cloudy ☁️")
	text, ok := s.Banner()
	require.True(t, ok)
	assert.Equal(t, "Starting Level: Cloudy ☁️", text)

	clk.Advance(1999 * time.Millisecond)
	_, ok = s.Banner()
	assert.True(t, ok, "still visible just before 2s")

	clk.Advance(time.Millisecond)
	_, ok = s.Banner()
	assert.False(t, ok, "cleared at 2s")
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyExpired).Load())
}

// TestShowBanner_ReplacementRestartsDuration: A at 0, B at 0.5, B visible until 2.5
func TestShowBanner_ReplacementRestartsDuration(t *testing.T) {
	s, clk, reg := newTestScheduler(t)

	s.ShowBannerFor("A", 2*time.Second)
	clk.Advance(500 * time.Millisecond)
	sig := s.ShowBannerFor("B", 2*time.Second)
	assert.Equal(t, epoch.Add(500*time.Millisecond), sig.ActivatedAt)

	text, ok := s.Banner()
	require.True(t, ok)
	assert.Equal(t, "B", text)

	clk.Advance(1500 * time.Millisecond) // t = 2.0
	text, ok = s.Banner()
	require.True(t, ok, "A's timer must not clear B")
	assert.Equal(t, "B", text)

	clk.Advance(499 * time.Millisecond) // t = 2.499
	_, ok = s.Banner()
	assert.True(t, ok)

	clk.Advance(time.Millisecond) // t = 2.5
	_, ok = s.Banner()
	assert.False(t, ok)

	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyPreempted).Load())
	assert.Equal(t, int64(2), reg.Ints.Get(status.KeyBannersShown).Load())
	assert.Equal(t, 0, clk.Pending())
}

func TestTriggerRain_DistinctBurstIDs(t *testing.T) {
	s, clk, _ := newTestScheduler(t)

	first := s.TriggerRain("☁️")
	clk.Advance(100 * time.Millisecond)
	second := s.TriggerRain("☁️")

	assert.NotEqual(t, first, second, "same symbol must still get a new burst")
	sig, ok := s.Rain()
	require.True(t, ok)
	assert.Equal(t, second, sig.BurstID)
	assert.Equal(t, "☁️", sig.Payload)
	assert.Equal(t, DefaultRainParams(), sig.Rain)
}

// TestTriggerRain_NoStaleClear verifies the first burst's expiry never clears the second
func TestTriggerRain_NoStaleClear(t *testing.T) {
	s, clk, _ := newTestScheduler(t)
	lifetime := DefaultRainParams().Lifetime()

	s.TriggerRain("🌈")
	clk.Advance(3 * time.Second)
	second := s.TriggerRain("👑")

	clk.Advance(lifetime - 3*time.Second) // first burst's original deadline
	sig, ok := s.Rain()
	require.True(t, ok)
	assert.Equal(t, second, sig.BurstID)

	clk.Advance(3*time.Second - time.Millisecond)
	_, ok = s.Rain()
	assert.True(t, ok)

	clk.Advance(time.Millisecond)
	_, ok = s.Rain()
	assert.False(t, ok)
}

// TestExpire_CheckBeforeClear drives callbacks that survive Stop and checks they are no-ops
func TestExpire_CheckBeforeClear(t *testing.T) {
	clk := clock.NewManual(epoch)
	reg := status.NewRegistry()
	s := NewScheduler(leakyClock{clk}, WithMetrics(reg))

	s.ShowBannerFor("A", 2*time.Second)
	first := s.TriggerRainWith("x", RainParams{DropCount: 1, FallDuration: time.Second})
	clk.Advance(500 * time.Millisecond)
	s.ShowBannerFor("B", 2*time.Second)
	second := s.TriggerRainWith("y", RainParams{DropCount: 1, FallDuration: time.Second})
	require.NotEqual(t, first, second)

	// Rain lifetime is 1s + 0.5s settle: first fires at 1.5, second at 2.0
	clk.Advance(time.Second) // t = 1.5
	sig, ok := s.Rain()
	require.True(t, ok)
	assert.Equal(t, second, sig.BurstID)
	assert.Equal(t, int64(1), reg.Ints.Get(status.KeyStaleFires).Load())

	clk.Advance(500 * time.Millisecond) // t = 2.0: A's leaked timer + second burst expiry
	text, ok := s.Banner()
	require.True(t, ok)
	assert.Equal(t, "B", text)
	_, ok = s.Rain()
	assert.False(t, ok)
	assert.Equal(t, int64(2), reg.Ints.Get(status.KeyStaleFires).Load())

	clk.Advance(500 * time.Millisecond) // t = 2.5
	_, ok = s.Banner()
	assert.False(t, ok)
}

func TestJump_Restarts(t *testing.T) {
	s, clk, _ := newTestScheduler(t)

	s.Jump()
	assert.True(t, s.Jumping())
	clk.Advance(150 * time.Millisecond)
	s.Jump()
	clk.Advance(150 * time.Millisecond)
	assert.True(t, s.Jumping(), "second tap restarted the pulse")
	clk.Advance(50 * time.Millisecond)
	assert.False(t, s.Jumping())
}

// TestKinds_Independent verifies preempting one kind leaves the others alone
func TestKinds_Independent(t *testing.T) {
	s, clk, _ := newTestScheduler(t)

	s.TriggerRain("☁️")
	s.ShowBanner("one")
	s.Jump()
	clk.Advance(time.Second)
	s.ShowBanner("two")

	rain, ok := s.Rain()
	require.True(t, ok)
	assert.Equal(t, epoch, rain.ActivatedAt)
	assert.False(t, s.Jumping())

	text, _ := s.Banner()
	assert.Equal(t, "two", text)
}

func TestWithBurstIDs(t *testing.T) {
	ids := []uuid.UUID{uuid.MustParse("00000000-0000-0000-0000-000000000001"), uuid.MustParse("00000000-0000-0000-0000-000000000002")}
	n := 0
	s, _, _ := newTestScheduler(t, WithBurstIDs(func() uuid.UUID {
		id := ids[n]
		n++
		return id
	}))

	assert.Equal(t, ids[0], s.TriggerRain("a"))
	assert.Equal(t, ids[1], s.TriggerRain("b"))
}

func TestWithOverrides(t *testing.T) {
	p := RainParams{DropCount: 3, DelayStep: time.Second, FallDuration: time.Second}
	s, clk, _ := newTestScheduler(t, WithRainParams(p), WithBannerDuration(time.Second))

	s.ShowBanner("short")
	s.TriggerRain("r")
	sig, _ := s.Rain()
	assert.Equal(t, 3500*time.Millisecond, sig.ExpiresAfter)
	assert.Equal(t, epoch.Add(3500*time.Millisecond), sig.ExpiresAt())

	clk.Advance(time.Second)
	_, ok := s.Banner()
	assert.False(t, ok)
	_, ok = s.Rain()
	assert.True(t, ok)
}

func TestClear(t *testing.T) {
	s, clk, _ := newTestScheduler(t)

	s.ShowBanner("x")
	s.TriggerRain("y")
	s.Jump()
	s.Clear()

	_, ok := s.Banner()
	assert.False(t, ok)
	_, ok = s.Rain()
	assert.False(t, ok)
	assert.False(t, s.Jumping())
	assert.Equal(t, 0, clk.Pending())
}

func TestActive_UnknownKind(t *testing.T) {
	s, _, _ := newTestScheduler(t)
	_, ok := s.Active(Kind(99))
	assert.False(t, ok)
	assert.Equal(t, "unknown", Kind(99).String())
}
