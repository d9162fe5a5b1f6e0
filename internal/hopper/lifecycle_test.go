package hopper

import (
	"errors"
	"testing"

	"github.com/skyhop-dev/skyhop/internal/config"
	"github.com/skyhop-dev/skyhop/internal/core"
)

// fakeSink records calls for assertions about persistence behavior.
type fakeSink struct {
	best      int
	bestErr   error
	recorded  []int
	recordErr error
}

func (f *fakeSink) Best() (int, error) {
	return f.best, f.bestErr
}

func (f *fakeSink) Record(score int) error {
	f.recorded = append(f.recorded, score)
	return f.recordErr
}

func TestBestLoadedFromSink(t *testing.T) {
	sink := &fakeSink{best: 42}
	s := NewSession(config.DefaultConfig(), testRuntime(1), sink)

	if s.Best() != 42 {
		t.Errorf("session should adopt the sink's best, got %d", s.Best())
	}
}

func TestBestLoadFailureFallsBackToZero(t *testing.T) {
	sink := &fakeSink{best: 42, bestErr: errors.New("db locked")}
	s := NewSession(config.DefaultConfig(), testRuntime(1), sink)

	if s.Best() != 0 {
		t.Errorf("a failing sink should yield best=0, got %d", s.Best())
	}
}

func TestGameOverWhenPlayerFallsBelowViewport(t *testing.T) {
	s := newTestSession(51)
	s.Start()

	// Drop the player past the bottom edge with no platforms to save it
	s.platforms = s.platforms[:0]
	s.player.Y = s.view.ViewH + s.player.R + 1

	in := core.NewInput()
	s.Step(&in, 16)

	if s.Phase() != PhaseGameOver {
		t.Errorf("falling off the bottom should end the run, phase=%v", s.Phase())
	}
}

func TestNewBestRecordedExactlyOnce(t *testing.T) {
	sink := &fakeSink{best: 5}
	s := NewSession(config.DefaultConfig(), testRuntime(51), sink)
	s.Start()

	s.score = 10
	s.platforms = s.platforms[:0]
	s.player.Y = s.view.ViewH + s.player.R + 1

	in := core.NewInput()
	for i := 0; i < 5; i++ {
		s.Step(&in, 16)
	}

	if len(sink.recorded) != 1 {
		t.Fatalf("new best should be recorded exactly once, got %d calls", len(sink.recorded))
	}
	if sink.recorded[0] != 10 {
		t.Errorf("recorded score should be 10, got %d", sink.recorded[0])
	}
	if !s.NewBest() {
		t.Error("NewBest should report true after beating the best")
	}
	if s.Best() != 10 {
		t.Errorf("session best should update to 10, got %d", s.Best())
	}
}

func TestNoRecordWhenBestNotBeaten(t *testing.T) {
	sink := &fakeSink{best: 100}
	s := NewSession(config.DefaultConfig(), testRuntime(51), sink)
	s.Start()

	s.score = 10
	s.platforms = s.platforms[:0]
	s.player.Y = s.view.ViewH + s.player.R + 1

	in := core.NewInput()
	s.Step(&in, 16)

	if len(sink.recorded) != 0 {
		t.Errorf("no record expected when the best stands, got %d calls", len(sink.recorded))
	}
	if s.NewBest() {
		t.Error("NewBest should report false")
	}
	if s.Best() != 100 {
		t.Errorf("best should remain 100, got %d", s.Best())
	}
}

func TestRecordErrorDoesNotFailTheRun(t *testing.T) {
	sink := &fakeSink{recordErr: errors.New("disk full")}
	s := NewSession(config.DefaultConfig(), testRuntime(51), sink)
	s.Start()

	s.score = 10
	s.platforms = s.platforms[:0]
	s.player.Y = s.view.ViewH + s.player.R + 1

	in := core.NewInput()
	s.Step(&in, 16)

	if s.Phase() != PhaseGameOver {
		t.Errorf("a failing sink must not block the transition, phase=%v", s.Phase())
	}
	if s.Best() != 10 {
		t.Errorf("in-memory best should still update, got %d", s.Best())
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newTestSession(51)
	s.Start()

	s.score = 10
	s.scroll = 10.5
	s.platforms = s.platforms[:0]
	s.player.Y = s.view.ViewH + s.player.R + 1

	in := core.NewInput()
	s.Step(&in, 16)
	if s.Phase() != PhaseGameOver {
		t.Fatalf("expected game over, got %v", s.Phase())
	}

	s.Start()

	if s.Phase() != PhaseRunning {
		t.Errorf("Start from GameOver should run, got %v", s.Phase())
	}
	if s.score != 0 {
		t.Errorf("restart should clear the score, got %d", s.score)
	}
	if len(s.platforms) == 0 {
		t.Error("restart should reseed the world")
	}

	pc := s.cfg.Player
	wantX := s.view.ViewW * pc.StartXFactor
	wantY := s.view.ViewH * pc.StartYFactor
	if s.player.X != wantX || s.player.Y != wantY {
		t.Errorf("restart should reposition the player to (%f, %f), got (%f, %f)",
			wantX, wantY, s.player.X, s.player.Y)
	}
	if s.player.R != pc.BaseRadius {
		t.Errorf("restart should restore the base radius, got %f", s.player.R)
	}
}

func TestStepIsNoOpAfterGameOver(t *testing.T) {
	s := newTestSession(51)
	s.Start()

	s.platforms = s.platforms[:0]
	s.player.Y = s.view.ViewH + s.player.R + 1

	in := core.NewInput()
	s.Step(&in, 16)

	tick := s.tick
	player := s.player
	s.Step(&in, 16)

	if s.tick != tick || s.player != player {
		t.Error("Step after game over must not mutate state")
	}
}

func TestScoreFrozenAtGameOver(t *testing.T) {
	s := newTestSession(51)
	s.Start()

	s.score = 7
	s.platforms = s.platforms[:0]
	s.player.Y = s.view.ViewH + s.player.R + 1

	in := core.NewInput()
	s.Step(&in, 16)

	snap := s.Snapshot()
	if snap.Score != 7 {
		t.Errorf("final score should freeze at 7, got %d", snap.Score)
	}
	if snap.Phase != PhaseGameOver {
		t.Errorf("snapshot should carry the terminal phase, got %v", snap.Phase)
	}
}
