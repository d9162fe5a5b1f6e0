// Package hopper implements the Sky Hopper simulation: an endless vertical
// platformer where a bouncing character ascends a procedurally generated
// field of platforms, pellets, and darts, scored by distance climbed.
//
// The package is pure logic with no external dependencies. All mutable
// state lives in a Session; a single Step call per frame mutates it, so no
// synchronization is needed. Platforms (input, rendering, persistence)
// interact only through core.Input, Snapshot, and the ScoreSink port.
package hopper

import (
	"math/rand"

	"github.com/skyhop-dev/skyhop/internal/config"
	"github.com/skyhop-dev/skyhop/internal/core"
)

// NominalTickMs is the reference tick duration. All per-tick tuning values
// are scaled by dt/NominalTickMs during integration.
const NominalTickMs = 16.0

// Phase is the lifecycle state of a session.
type Phase int

const (
	// PhaseIdle awaits user start input.
	PhaseIdle Phase = iota
	// PhaseRunning steps the simulation each frame.
	PhaseRunning
	// PhaseGameOver is terminal until an explicit restart.
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhaseGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// ScoreSink persists the single best-score scalar. Implementations must be
// cheap to call; errors are tolerated by the session (a broken backend
// never fails a run).
type ScoreSink interface {
	// Best returns the persisted best score, 0 when none exists.
	Best() (int, error)
	// Record persists a new best score.
	Record(score int) error
}

// Session owns all simulation state for one player: entity pools, the
// scroll accumulator, scoring, and the lifecycle state machine. A restart
// rebuilds everything from scratch; nothing is reused across runs.
type Session struct {
	cfg  config.HopperConfig
	diff *config.DifficultyManager
	view core.RuntimeConfig
	rng  *rand.Rand
	sink ScoreSink

	player    Player
	platforms []Platform
	pellets   []Pellet
	darts     []Dart

	scroll   float64 // Monotonic world-scroll accumulator
	score    int
	best     int
	newBest  bool
	recorded bool
	phase    Phase
	paused   bool
	tick     uint64
}

// NewSession creates a session in the Idle phase. The best score is read
// from the sink once; a missing or failing sink falls back to zero.
func NewSession(cfg config.HopperConfig, rt core.RuntimeConfig, sink ScoreSink) *Session {
	s := &Session{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
		sink: sink,
	}
	s.setViewport(rt)

	if sink != nil {
		if best, err := sink.Best(); err == nil {
			s.best = best
		}
	}

	s.rebuild()
	return s
}

// setViewport adopts new viewport geometry, guarding against degenerate
// dimensions that would corrupt all subsequent spawn placement.
func (s *Session) setViewport(rt core.RuntimeConfig) {
	if !core.IsFinite(rt.ViewW) || !core.IsFinite(rt.ViewH) || rt.ViewW <= 0 || rt.ViewH <= 0 {
		def := core.DefaultRuntimeConfig()
		rt.ViewW, rt.ViewH = def.ViewW, def.ViewH
	}
	s.view = rt
}

// rebuild reconstructs all entity pools and scalars for a fresh run.
func (s *Session) rebuild() {
	s.rng = rand.New(rand.NewSource(s.view.Seed))

	pc := s.cfg.Player
	s.player = Player{
		X: s.view.ViewW * pc.StartXFactor,
		Y: s.view.ViewH * pc.StartYFactor,
		R: pc.BaseRadius,
	}

	s.platforms = s.platforms[:0]
	s.pellets = s.pellets[:0]
	s.darts = s.darts[:0]

	s.scroll = 0
	s.score = 0
	s.newBest = false
	s.recorded = false
	s.paused = false
	s.tick = 0
	s.phase = PhaseIdle

	s.seedWorld()
}

// seedWorld places a guaranteed platform under the start position, then
// runs a generator pass to fill the lookahead buffer.
func (s *Session) seedWorld() {
	w := s.cfg.Platforms.MaxWidth
	s.platforms = append(s.platforms, Platform{
		X:    s.player.X - w/2,
		Y:    s.player.Y + s.player.R + 1,
		W:    w,
		H:    s.cfg.Platforms.Height,
		Kind: PlatformNormal,
	})
	s.generate()
}

// Start begins a run. From Idle the current world is used as-is; from
// GameOver the session is rebuilt first (hard reset, no carryover).
func (s *Session) Start() {
	switch s.phase {
	case PhaseIdle:
		s.phase = PhaseRunning
	case PhaseGameOver:
		s.rebuild()
		s.phase = PhaseRunning
	}
}

// Reset re-seeds the session with new runtime geometry and returns it to
// the Idle phase.
func (s *Session) Reset(rt core.RuntimeConfig) {
	s.setViewport(rt)
	s.rebuild()
}

// TogglePause flips the pause flag while running.
func (s *Session) TogglePause() {
	if s.phase == PhaseRunning {
		s.paused = !s.paused
	}
}

// Phase returns the lifecycle state.
func (s *Session) Phase() Phase {
	return s.phase
}

// Paused reports whether the running simulation is paused.
func (s *Session) Paused() bool {
	return s.paused
}

// Score returns the current run score.
func (s *Session) Score() int {
	return s.score
}

// Best returns the best score known to the session.
func (s *Session) Best() int {
	return s.best
}

// NewBest reports whether the just-ended run set a new best.
func (s *Session) NewBest() bool {
	return s.newBest
}

// Step advances the simulation by one frame. dt is the wall-clock frame
// delta in milliseconds; it is clamped to the configured ceiling so frame
// hitches cannot produce catastrophic integration steps. Outside the
// Running phase (or while paused) the call is a no-op.
func (s *Session) Step(in *core.Input, dt float64) {
	if s.phase != PhaseRunning || s.paused {
		return
	}

	dt = s.clampDelta(dt)
	scale := dt / NominalTickMs
	s.tick++

	s.integratePlayer(in, scale)
	s.advancePlatforms(scale)
	s.advanceDarts(scale)
	s.collidePlatforms(scale)
	s.collidePellets()
	s.collideDarts()
	s.applyScroll()
	s.generate()
	s.checkGameOver()
	s.prune()
}

// clampDelta bounds a frame delta to (0, MaxFrameDelta], falling back to
// the nominal tick for non-finite or non-positive values.
func (s *Session) clampDelta(dt float64) float64 {
	if !core.IsFinite(dt) || dt <= 0 {
		return NominalTickMs
	}
	if max := s.cfg.Physics.MaxFrameDelta; dt > max {
		return max
	}
	return dt
}

// checkGameOver transitions Running -> GameOver when the player's top edge
// falls below the viewport. The score freezes; a new best is persisted
// exactly once, best-effort.
func (s *Session) checkGameOver() {
	if s.player.Y-s.player.R <= s.view.ViewH {
		return
	}

	s.phase = PhaseGameOver
	if s.score > s.best {
		s.best = s.score
		s.newBest = true
		if s.sink != nil && !s.recorded {
			_ = s.sink.Record(s.score)
		}
	}
	s.recorded = true
}

// prune removes entities that left the tracked margins. Uses in-place
// compaction to avoid reallocating pools every frame.
func (s *Session) prune() {
	limit := s.view.ViewH + s.cfg.Platforms.PruneMargin

	kept := s.platforms[:0]
	for _, p := range s.platforms {
		if p.Y <= limit {
			kept = append(kept, p)
		}
	}
	s.platforms = kept

	keptPel := s.pellets[:0]
	for _, pe := range s.pellets {
		if pe.Y-pe.R <= limit {
			keptPel = append(keptPel, pe)
		}
	}
	s.pellets = keptPel

	margin := s.cfg.Platforms.PruneMargin
	keptDarts := s.darts[:0]
	for _, d := range s.darts {
		if d.X+d.R >= -margin && d.X-d.R <= s.view.ViewW+margin && d.Y-d.R <= limit {
			keptDarts = append(keptDarts, d)
		}
	}
	s.darts = keptDarts
}
