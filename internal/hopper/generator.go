package hopper

import "github.com/skyhop-dev/skyhop/internal/core"

// World generation keeps unbroken platform coverage from the highest
// generated platform down to a lookahead distance above the viewport.
// Per-frame work is bounded: the lookahead pass has a spawn cap that grows
// with the player's ascent speed (so rapid climbs do not outrun
// generation), and a separate top-up pass pre-fills the pool with a looser
// spacing range. The pool can never exceed PoolTarget+TopUpCap after a
// single pass.

// generate runs one generator pass: lookahead coverage first, pool top-up
// second.
func (s *Session) generate() {
	pc := s.cfg.Platforms

	highest := s.view.ViewH
	for _, p := range s.platforms {
		if p.Y < highest {
			highest = p.Y
		}
	}

	desiredTop := -s.cfg.Generator.LookaheadFactor * s.view.ViewH
	hardPool := pc.PoolTarget + pc.TopUpCap

	minSp := s.diff.Spacing(pc.MinSpacing, s.score, int(s.tick))
	maxSp := s.diff.Spacing(pc.MaxSpacing, s.score, int(s.tick))
	if maxSp < minSp {
		maxSp = minSp
	}

	budget := s.spawnCap()
	spawned := 0
	for highest > desiredTop && spawned < budget && len(s.platforms) < hardPool {
		spacing := core.Lerp(minSp, maxSp, s.rng.Float64())
		highest -= spacing
		s.spawnPlatform(highest)
		spawned++
	}

	extra := 0
	for len(s.platforms) < pc.PoolTarget && extra < pc.TopUpCap {
		spacing := core.Lerp(minSp, maxSp+pc.TopUpSlack, s.rng.Float64())
		highest -= spacing
		s.spawnPlatform(highest)
		extra++
	}
}

// spawnCap returns the per-frame lookahead spawn budget, scaled by the
// player's current upward speed and bounded by the hard ceiling.
func (s *Session) spawnCap() int {
	pc := s.cfg.Platforms

	up := -s.player.VY
	if up < 0 {
		up = 0
	}

	budget := pc.SpawnCapBase + int(up/s.cfg.Generator.SpeedCapDiv)
	if budget > pc.SpawnCapMax {
		budget = pc.SpawnCapMax
	}
	return budget
}

// spawnPlatform creates one platform at the given y and independently rolls
// its width, position, category, and riders (pellet, dart).
func (s *Session) spawnPlatform(y float64) {
	pc := s.cfg.Platforms

	w := core.Lerp(pc.MinWidth, pc.MaxWidth, s.rng.Float64())
	if w > s.view.ViewW {
		w = s.view.ViewW
	}
	x := s.rng.Float64() * (s.view.ViewW - w)

	kind := PlatformNormal
	hazardChance := s.diff.HazardChance(pc.HazardChance, s.score, int(s.tick))
	if s.rng.Float64() < hazardChance {
		kind = PlatformHazard
	}

	drift := 0.0
	if y < 0 {
		drift = pc.Drift
	}

	s.platforms = append(s.platforms, Platform{
		X:    x,
		Y:    y,
		W:    w,
		H:    pc.Height,
		VY:   drift,
		Kind: kind,
	})

	// Only normal platforms carry pellets.
	if kind == PlatformNormal && s.rng.Float64() < s.cfg.Pellets.Chance {
		jitter := (s.rng.Float64() - 0.5) * w / 2
		s.pellets = append(s.pellets, Pellet{
			X: x + w/2 + jitter,
			Y: y - s.cfg.Pellets.Offset,
			R: s.cfg.Pellets.Radius,
		})
	}

	dartChance := s.diff.DartChance(s.cfg.Darts.Chance, s.score, int(s.tick))
	if s.rng.Float64() < dartChance {
		s.spawnDart(y)
	}
}

// spawnDart launches a dart from a random side, vertically offset near the
// reference platform, traversing the full viewport at constant speed.
func (s *Session) spawnDart(platformY float64) {
	dc := s.cfg.Darts

	d := Dart{
		Y: platformY - dc.Offset,
		R: dc.Radius,
	}
	if s.rng.Float64() < 0.5 {
		d.X = -dc.Radius
		d.VX = dc.Speed
	} else {
		d.X = s.view.ViewW + dc.Radius
		d.VX = -dc.Speed
	}
	s.darts = append(s.darts, d)
}
