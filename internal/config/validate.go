package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfig wraps all validation failures.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration cannot produce a degenerate
// simulation. A misconfigured generator (non-positive spacing or
// dimensions) risks infinite spawn loops, so a violation here is a fatal
// startup condition, not something to patch up at runtime.
func (c HopperConfig) Validate() error {
	checks := []struct {
		ok  bool
		msg string
	}{
		{c.Physics.Gravity > 0, "physics.gravity must be positive"},
		{c.Physics.Friction > 0 && c.Physics.Friction < 1, "physics.friction must be in (0, 1)"},
		{c.Physics.Accel > 0, "physics.accel must be positive"},
		{c.Physics.MaxFallSpeed > 0, "physics.max_fall_speed must be positive"},
		{c.Physics.MaxFrameDelta > 0, "physics.max_frame_delta must be positive"},
		{c.Physics.BaseBounce > 0, "physics.base_bounce must be positive"},
		{c.Physics.HazardBounceFactor > 0 && c.Physics.HazardBounceFactor < 1, "physics.hazard_bounce_factor must be in (0, 1)"},
		{c.Physics.Knockback >= 0, "physics.knockback must be non-negative"},
		{c.Physics.PointerDeadZone >= 0, "physics.pointer_dead_zone must be non-negative"},

		{c.Player.MinRadius > 0, "player.min_radius must be positive"},
		{c.Player.MinRadius <= c.Player.BaseRadius, "player.min_radius must not exceed player.base_radius"},
		{c.Player.BaseRadius <= c.Player.MaxRadius, "player.base_radius must not exceed player.max_radius"},
		{c.Player.StartXFactor > 0 && c.Player.StartXFactor < 1, "player.start_x_factor must be in (0, 1)"},
		{c.Player.StartYFactor > 0 && c.Player.StartYFactor < 1, "player.start_y_factor must be in (0, 1)"},
		{c.Player.RestEpsilon >= 0, "player.rest_epsilon must be non-negative"},

		{c.Platforms.MinWidth > 0, "platforms.min_width must be positive"},
		{c.Platforms.MinWidth <= c.Platforms.MaxWidth, "platforms.min_width must not exceed platforms.max_width"},
		{c.Platforms.Height > 0, "platforms.height must be positive"},
		{c.Platforms.MinSpacing > 0, "platforms.min_spacing must be strictly positive"},
		{c.Platforms.MinSpacing <= c.Platforms.MaxSpacing, "platforms.min_spacing must not exceed platforms.max_spacing"},
		{c.Platforms.TopUpSlack >= 0, "platforms.top_up_slack must be non-negative"},
		{c.Platforms.PoolTarget >= 1, "platforms.pool_target must be at least 1"},
		{c.Platforms.SpawnCapBase >= 1, "platforms.spawn_cap_base must be at least 1"},
		{c.Platforms.SpawnCapMax >= c.Platforms.SpawnCapBase, "platforms.spawn_cap_max must not be below platforms.spawn_cap_base"},
		{c.Platforms.TopUpCap >= 0, "platforms.top_up_cap must be non-negative"},
		{c.Platforms.PruneMargin >= 0, "platforms.prune_margin must be non-negative"},
		{c.Platforms.Drift >= 0, "platforms.drift must be non-negative"},
		{isProbability(c.Platforms.HazardChance), "platforms.hazard_chance must be in [0, 1]"},
		{c.Platforms.HazardShrink >= 0, "platforms.hazard_shrink must be non-negative"},

		{c.Pellets.Radius > 0, "pellets.radius must be positive"},
		{isProbability(c.Pellets.Chance), "pellets.chance must be in [0, 1]"},
		{c.Pellets.Growth >= 0, "pellets.growth must be non-negative"},
		{c.Pellets.Boost <= 0, "pellets.boost must be non-positive (upward)"},
		{c.Pellets.Offset > 0, "pellets.offset must be positive"},

		{c.Darts.Radius > 0, "darts.radius must be positive"},
		{c.Darts.Speed > 0, "darts.speed must be positive"},
		{isProbability(c.Darts.Chance), "darts.chance must be in [0, 1]"},
		{c.Darts.Shrink >= 0, "darts.shrink must be non-negative"},

		{c.Scroll.ThresholdFactor > 0 && c.Scroll.ThresholdFactor < 1, "scroll.threshold_factor must be in (0, 1)"},

		{c.Generator.LookaheadFactor >= 1, "generator.lookahead_factor must be at least 1"},
		{c.Generator.SpeedCapDiv > 0, "generator.speed_cap_div must be positive"},

		{c.Difficulty.InitialLevel >= 0 && c.Difficulty.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1]"},
		{c.Difficulty.Scaling.SpacingReduction < c.Platforms.MinSpacing, "difficulty.scaling.spacing_reduction must be below platforms.min_spacing"},
	}

	for _, check := range checks {
		if !check.ok {
			return fmt.Errorf("%w: %s", ErrInvalidConfig, check.msg)
		}
	}
	return nil
}

// ValidateWorld checks the configuration against the viewport it will
// actually run in. The generator tracks platforms from the top of the
// lookahead band down to the prune limit; if the pool capacity
// (pool_target + top_up_cap) cannot hold that whole band at minimum
// spacing, generation stalls with the pool full and the lookahead stays
// permanently uncovered. Like Validate, a violation is a fatal startup
// condition.
func (c HopperConfig) ValidateWorld(viewH float64) error {
	span := (1+c.Generator.LookaheadFactor)*viewH + c.Platforms.PruneMargin
	required := int(math.Ceil(span / c.Platforms.MinSpacing))
	capacity := c.Platforms.PoolTarget + c.Platforms.TopUpCap
	if required > capacity {
		return fmt.Errorf("%w: platform pool capacity %d cannot span %.0f rows of tracked world (%d platforms needed at min spacing); raise platforms.pool_target",
			ErrInvalidConfig, capacity, span, required)
	}
	return nil
}

func isProbability(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v <= 1
}
