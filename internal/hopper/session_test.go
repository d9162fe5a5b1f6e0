package hopper

import (
	"math"
	"testing"

	"github.com/skyhop-dev/skyhop/internal/config"
	"github.com/skyhop-dev/skyhop/internal/core"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ViewW:    80,
		ViewH:    24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestSession(seed int64) *Session {
	return NewSession(config.DefaultConfig(), testRuntime(seed), nil)
}

func TestSessionDeterminism(t *testing.T) {
	// Same seed and inputs must produce identical runs
	run := func() Snapshot {
		s := newTestSession(12345)
		s.Start()

		in := core.NewInput()
		for i := 0; i < 400; i++ {
			if i%20 == 0 {
				in.ArmLeft()
			}
			if i%35 == 0 {
				in.ArmRight()
			}
			s.Step(&in, 16)
			in.EndFrame()
			if s.Phase() == PhaseGameOver {
				break
			}
		}
		return s.Snapshot()
	}

	s1 := run()
	s2 := run()

	if s1.Score != s2.Score {
		t.Errorf("Determinism failed: scores differ. Run1=%d, Run2=%d", s1.Score, s2.Score)
	}
	if s1.Tick != s2.Tick {
		t.Errorf("Determinism failed: tick counts differ. Run1=%d, Run2=%d", s1.Tick, s2.Tick)
	}
	if s1.Player != s2.Player {
		t.Errorf("Determinism failed: players differ. Run1=%+v, Run2=%+v", s1.Player, s2.Player)
	}
	if len(s1.Platforms) != len(s2.Platforms) {
		t.Errorf("Determinism failed: platform counts differ. Run1=%d, Run2=%d",
			len(s1.Platforms), len(s2.Platforms))
	}
}

func TestSessionReset(t *testing.T) {
	s := newTestSession(42)
	s.Start()

	in := core.NewInput()
	for i := 0; i < 100; i++ {
		s.Step(&in, 16)
		in.EndFrame()
	}

	s.Reset(testRuntime(42))

	if s.score != 0 {
		t.Errorf("Reset should clear score, got %d", s.score)
	}
	if s.scroll != 0 {
		t.Errorf("Reset should clear scroll accumulator, got %f", s.scroll)
	}
	if s.phase != PhaseIdle {
		t.Errorf("Reset should return to Idle, got %v", s.phase)
	}
	if s.paused {
		t.Error("Reset should clear paused flag")
	}
	if s.tick != 0 {
		t.Errorf("Reset should clear tick count, got %d", s.tick)
	}
	if len(s.platforms) == 0 {
		t.Error("Reset should reseed the world with platforms")
	}
}

func TestSessionStartFromIdle(t *testing.T) {
	s := newTestSession(1)

	if s.Phase() != PhaseIdle {
		t.Fatalf("new session should be Idle, got %v", s.Phase())
	}

	s.Start()
	if s.Phase() != PhaseRunning {
		t.Errorf("Start from Idle should run, got %v", s.Phase())
	}
}

func TestSessionStepNoOpWhenIdle(t *testing.T) {
	s := newTestSession(7)
	before := s.player

	in := core.NewInput()
	s.Step(&in, 16)

	if s.player != before {
		t.Errorf("Step in Idle must not mutate the player: before=%+v after=%+v", before, s.player)
	}
	if s.tick != 0 {
		t.Errorf("Step in Idle must not advance ticks, got %d", s.tick)
	}
}

func TestSessionPause(t *testing.T) {
	s := newTestSession(7)
	s.Start()
	s.TogglePause()

	before := s.player
	in := core.NewInput()
	s.Step(&in, 16)

	if s.player != before {
		t.Error("Step while paused must not mutate the player")
	}

	s.TogglePause()
	s.Step(&in, 16)
	if s.tick != 1 {
		t.Errorf("unpaused Step should advance, tick=%d", s.tick)
	}
}

func TestClampDelta(t *testing.T) {
	s := newTestSession(1)
	maxDelta := s.cfg.Physics.MaxFrameDelta

	cases := []struct {
		in   float64
		want float64
	}{
		{16, 16},
		{1, 1},
		{maxDelta, maxDelta},
		{maxDelta + 50, maxDelta},
		{0, NominalTickMs},
		{-5, NominalTickMs},
		{math.NaN(), NominalTickMs},
		{math.Inf(1), NominalTickMs},
	}

	for _, tc := range cases {
		if got := s.clampDelta(tc.in); got != tc.want {
			t.Errorf("clampDelta(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestRadiusStaysBounded(t *testing.T) {
	// Force hazards everywhere and generous pellets, then run a long session
	// checking the radius invariant every frame
	cfg := config.DefaultConfig()
	cfg.Platforms.HazardChance = 1.0
	cfg.Pellets.Chance = 1.0
	cfg.Darts.Chance = 0.5

	s := NewSession(cfg, testRuntime(99), nil)
	s.Start()

	in := core.NewInput()
	for i := 0; i < 1000; i++ {
		s.Step(&in, 16)
		in.EndFrame()

		r := s.player.R
		if r < cfg.Player.MinRadius || r > cfg.Player.MaxRadius {
			t.Fatalf("tick %d: radius %f outside [%f, %f]",
				i, r, cfg.Player.MinRadius, cfg.Player.MaxRadius)
		}
		if s.Phase() == PhaseGameOver {
			break
		}
	}
}

func TestScoreNeverRegresses(t *testing.T) {
	s := newTestSession(5)
	s.Start()

	in := core.NewInput()
	prev := 0
	for i := 0; i < 600; i++ {
		s.Step(&in, 16)
		in.EndFrame()

		if s.Score() < prev {
			t.Fatalf("tick %d: score regressed from %d to %d", i, prev, s.Score())
		}
		prev = s.Score()
		if s.Phase() == PhaseGameOver {
			break
		}
	}
}

func TestDegenerateViewportFallsBackToDefaults(t *testing.T) {
	def := core.DefaultRuntimeConfig()

	cases := []core.RuntimeConfig{
		{ViewW: 0, ViewH: 24, TickRate: 60},
		{ViewW: 80, ViewH: -3, TickRate: 60},
		{ViewW: math.NaN(), ViewH: 24, TickRate: 60},
		{ViewW: 80, ViewH: math.Inf(1), TickRate: 60},
	}

	for _, rt := range cases {
		s := NewSession(config.DefaultConfig(), rt, nil)
		if s.view.ViewW != def.ViewW || s.view.ViewH != def.ViewH {
			t.Errorf("viewport %+v should fall back to %gx%g, got %gx%g",
				rt, def.ViewW, def.ViewH, s.view.ViewW, s.view.ViewH)
		}
	}
}

func TestSeedWorldPlacesPlatformUnderPlayer(t *testing.T) {
	s := newTestSession(3)

	p := s.platforms[0]
	pl := s.player
	if pl.X < p.X || pl.X > p.Right() {
		t.Errorf("start platform [%f, %f] does not span player x=%f", p.X, p.Right(), pl.X)
	}
	if p.Y <= pl.Y {
		t.Errorf("start platform y=%f should be below player y=%f", p.Y, pl.Y)
	}
}

func TestSnapshotCopiesPools(t *testing.T) {
	s := newTestSession(11)
	snap := s.Snapshot()

	if len(snap.Platforms) != len(s.platforms) {
		t.Fatalf("snapshot has %d platforms, session has %d", len(snap.Platforms), len(s.platforms))
	}

	snap.Platforms[0].X = -9999
	if s.platforms[0].X == -9999 {
		t.Error("mutating a snapshot must not affect the session")
	}
}
