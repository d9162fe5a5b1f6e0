package hopper

import (
	"math"

	"github.com/skyhop-dev/skyhop/internal/core"
)

// integratePlayer applies control acceleration, friction, gravity, and the
// horizontal torus wrap. All motion is scaled by dt/NominalTickMs.
func (s *Session) integratePlayer(in *core.Input, scale float64) {
	phy := s.cfg.Physics
	pl := &s.player

	axis := 0.0
	if in != nil {
		axis = in.Axis()
		// A live pointer target overrides key intent: steer toward it
		// unless the player is already within the dead zone.
		if target, ok := in.Pointer(); ok {
			d := target - pl.X
			switch {
			case d > phy.PointerDeadZone:
				axis = 1
			case d < -phy.PointerDeadZone:
				axis = -1
			default:
				axis = 0
			}
		}
	}

	pl.VX += axis * phy.Accel * scale
	pl.VX *= math.Pow(phy.Friction, scale)
	pl.X += pl.VX * scale

	// Torus topology on the x-axis only. The boundary itself belongs to
	// the far side: x = -r maps to viewW + r and vice versa.
	switch {
	case pl.X <= -pl.R:
		pl.X = s.view.ViewW + pl.R
	case pl.X >= s.view.ViewW+pl.R:
		pl.X = -pl.R
	}

	pl.VY += phy.Gravity * scale
	if pl.VY > phy.MaxFallSpeed {
		pl.VY = phy.MaxFallSpeed
	}
	pl.Y += pl.VY * scale
}

// advancePlatforms applies drift to platforms still sliding into the
// lookahead region. Drift stops permanently once a platform enters the
// viewport.
func (s *Session) advancePlatforms(scale float64) {
	for i := range s.platforms {
		p := &s.platforms[i]
		if p.VY == 0 {
			continue
		}
		p.Y += p.VY * scale
		if p.Y >= 0 {
			p.VY = 0
		}
	}
}

// advanceDarts moves darts horizontally across the viewport.
func (s *Session) advanceDarts(scale float64) {
	for i := range s.darts {
		s.darts[i].X += s.darts[i].VX * scale
	}
}

// collidePlatforms resolves a downward landing. The check is swept: a
// platform qualifies when the player's horizontal extent overlaps it and
// the player's bottom edge sits within [p.Y, p.Y+p.H+vy*scale], so a fast
// fall cannot tunnel through a thin platform. Qualification is evaluated
// against the velocity the player carried into this frame; when several
// platforms qualify, the last one in pool iteration order wins and exactly
// one landing is applied.
func (s *Session) collidePlatforms(scale float64) {
	pl := &s.player
	if pl.VY <= 0 {
		return
	}

	vy := pl.VY
	bottom := pl.Y + pl.R
	landing := -1
	for i, p := range s.platforms {
		body := core.NewRectF(p.X, p.Y, p.W, p.H)
		if !body.OverlapsX(pl.X-pl.R, pl.X+pl.R) {
			continue
		}
		if bottom >= body.Y && bottom <= body.Bottom()+vy*scale {
			landing = i
		}
	}
	if landing >= 0 {
		s.applyLanding(&s.platforms[landing])
	}
}

// applyLanding snaps the player to rest atop the platform and assigns the
// bounce velocity. The bounce scales with the player's size relative to its
// base radius; hazardous platforms shrink the player and dampen the bounce.
func (s *Session) applyLanding(p *Platform) {
	phy := s.cfg.Physics
	pc := s.cfg.Player
	pl := &s.player

	bounce := phy.BaseBounce
	if p.Kind == PlatformHazard {
		pl.R = core.ClampF(pl.R-s.cfg.Platforms.HazardShrink, pc.MinRadius, pc.MaxRadius)
		bounce *= phy.HazardBounceFactor
	}

	pl.Y = p.Y - pl.R - pc.RestEpsilon
	pl.VY = -bounce * (pl.R / pc.BaseRadius)
}

// collidePellets picks up overlapping pellets: the player grows (bounded
// above) and vertical velocity is clamped to a small upward boost.
func (s *Session) collidePellets() {
	pl := &s.player
	body := core.CircleF{X: pl.X, Y: pl.Y, R: pl.R}

	kept := s.pellets[:0]
	for _, pe := range s.pellets {
		if core.CirclesOverlap(body, core.CircleF{X: pe.X, Y: pe.Y, R: pe.R}) {
			pl.R = core.ClampF(pl.R+s.cfg.Pellets.Growth, s.cfg.Player.MinRadius, s.cfg.Player.MaxRadius)
			if pl.VY > s.cfg.Pellets.Boost {
				pl.VY = s.cfg.Pellets.Boost
			}
			continue
		}
		kept = append(kept, pe)
	}
	s.pellets = kept
}

// collideDarts resolves dart hits: the player shrinks (bounded below) and
// takes a horizontal knockback impulse away from the dart. A dart is
// consumed on hit.
func (s *Session) collideDarts() {
	pl := &s.player
	body := core.CircleF{X: pl.X, Y: pl.Y, R: pl.R}

	kept := s.darts[:0]
	for _, d := range s.darts {
		if core.CirclesOverlap(body, core.CircleF{X: d.X, Y: d.Y, R: d.R}) {
			pl.R = core.ClampF(pl.R-s.cfg.Darts.Shrink, s.cfg.Player.MinRadius, s.cfg.Player.MaxRadius)
			if pl.X >= d.X {
				pl.VX += s.cfg.Physics.Knockback
			} else {
				pl.VX -= s.cfg.Physics.Knockback
			}
			continue
		}
		kept = append(kept, d)
	}
	s.darts = kept
}

// applyScroll shifts the world downward when the player crosses the upper
// scroll threshold, keeping the player anchored while accumulating the
// shift into the monotonic scroll total. Score is the floor of the maximum
// of the previous score and the accumulator, so it never regresses.
func (s *Session) applyScroll() {
	threshold := s.view.ViewH * s.cfg.Scroll.ThresholdFactor
	if s.player.Y >= threshold {
		return
	}

	shift := threshold - s.player.Y
	s.player.Y = threshold

	for i := range s.platforms {
		s.platforms[i].Y += shift
	}
	for i := range s.pellets {
		s.pellets[i].Y += shift
	}
	for i := range s.darts {
		s.darts[i].Y += shift
	}

	s.scroll += shift
	if sc := int(math.Floor(s.scroll)); sc > s.score {
		s.score = sc
	}
}
