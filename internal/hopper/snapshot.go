package hopper

// Snapshot is a read-only view of one frame, sufficient for a renderer to
// draw without touching simulation internals. Uses primitive types only.
type Snapshot struct {
	Tick uint64

	Player    PlayerView
	Platforms []PlatformView
	Pellets   []PelletView
	Darts     []DartView

	Score   int
	Best    int
	NewBest bool
	Phase   Phase
	Paused  bool
}

// PlayerView is the renderable player state. VY is exposed so renderers can
// derive squash/stretch from vertical motion.
type PlayerView struct {
	X, Y, R, VY float64
}

// PlatformView is the renderable platform state.
type PlatformView struct {
	X, Y, W, H float64
	Kind       PlatformKind
}

// PelletView is the renderable pellet state.
type PelletView struct {
	X, Y, R float64
}

// DartView is the renderable dart state. VX carries the travel direction.
type DartView struct {
	X, Y, R, VX float64
}

// Snapshot captures the current frame. The returned slices are copies; the
// caller may hold them across frames.
func (s *Session) Snapshot() Snapshot {
	platforms := make([]PlatformView, len(s.platforms))
	for i, p := range s.platforms {
		platforms[i] = PlatformView{X: p.X, Y: p.Y, W: p.W, H: p.H, Kind: p.Kind}
	}

	pellets := make([]PelletView, len(s.pellets))
	for i, pe := range s.pellets {
		pellets[i] = PelletView{X: pe.X, Y: pe.Y, R: pe.R}
	}

	darts := make([]DartView, len(s.darts))
	for i, d := range s.darts {
		darts[i] = DartView{X: d.X, Y: d.Y, R: d.R, VX: d.VX}
	}

	return Snapshot{
		Tick:      s.tick,
		Player:    PlayerView{X: s.player.X, Y: s.player.Y, R: s.player.R, VY: s.player.VY},
		Platforms: platforms,
		Pellets:   pellets,
		Darts:     darts,
		Score:     s.score,
		Best:      s.best,
		NewBest:   s.newBest,
		Phase:     s.phase,
		Paused:    s.paused,
	}
}
