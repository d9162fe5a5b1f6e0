// Package config provides YAML-based tuning and difficulty management for
// the hopper simulation.
package config

// HopperConfig contains all tuning for the Sky Hopper game.
// Distances are in world units (terminal cells); velocities and
// accelerations are per nominal 16ms tick.
type HopperConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Platforms  PlatformConfig   `yaml:"platforms"`
	Pellets    PelletConfig     `yaml:"pellets"`
	Darts      DartConfig       `yaml:"darts"`
	Scroll     ScrollConfig     `yaml:"scroll"`
	Generator  GeneratorConfig  `yaml:"generator"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines integration parameters.
type PhysicsConfig struct {
	Gravity            float64 `yaml:"gravity"`              // Downward acceleration per tick
	Friction           float64 `yaml:"friction"`             // Horizontal velocity multiplier per tick, in (0, 1)
	Accel              float64 `yaml:"accel"`                // Horizontal control acceleration per tick
	MaxFallSpeed       float64 `yaml:"max_fall_speed"`       // Terminal downward velocity
	MaxFrameDelta      float64 `yaml:"max_frame_delta"`      // Delta-time ceiling in milliseconds
	BaseBounce         float64 `yaml:"base_bounce"`          // Upward landing velocity magnitude at base radius
	HazardBounceFactor float64 `yaml:"hazard_bounce_factor"` // Bounce multiplier on hazardous landings, in (0, 1)
	Knockback          float64 `yaml:"knockback"`            // Horizontal impulse applied by a dart hit
	PointerDeadZone    float64 `yaml:"pointer_dead_zone"`    // Steering dead zone around the pointer target
}

// PlayerConfig defines the player body.
type PlayerConfig struct {
	BaseRadius   float64 `yaml:"base_radius"`
	MinRadius    float64 `yaml:"min_radius"`
	MaxRadius    float64 `yaml:"max_radius"`
	StartXFactor float64 `yaml:"start_x_factor"` // Start x as a fraction of viewport width
	StartYFactor float64 `yaml:"start_y_factor"` // Start y as a fraction of viewport height
	RestEpsilon  float64 `yaml:"rest_epsilon"`   // Gap left between player bottom and platform top on landing
}

// PlatformConfig defines platform spawning and lifecycle parameters.
type PlatformConfig struct {
	MinWidth     float64 `yaml:"min_width"`
	MaxWidth     float64 `yaml:"max_width"`
	Height       float64 `yaml:"height"`
	MinSpacing   float64 `yaml:"min_spacing"`   // Minimum vertical gap between spawns
	MaxSpacing   float64 `yaml:"max_spacing"`   // Maximum vertical gap between spawns
	TopUpSlack   float64 `yaml:"top_up_slack"`  // Extra spacing allowed during top-up spawning
	PoolTarget   int     `yaml:"pool_target"`   // Desired platform pool size
	SpawnCapBase int     `yaml:"spawn_cap_base"` // Per-frame spawn budget at zero ascent speed
	SpawnCapMax  int     `yaml:"spawn_cap_max"`  // Hard ceiling on the per-frame spawn budget
	TopUpCap     int     `yaml:"top_up_cap"`     // Per-frame top-up spawn budget
	PruneMargin  float64 `yaml:"prune_margin"`   // Distance below the viewport before destruction
	Drift        float64 `yaml:"drift"`          // Downward drift while sliding into the lookahead region
	HazardChance float64 `yaml:"hazard_chance"`  // Probability a spawn is hazardous
	HazardShrink float64 `yaml:"hazard_shrink"`  // Radius lost on a hazardous landing
}

// PelletConfig defines collectible parameters.
type PelletConfig struct {
	Radius float64 `yaml:"radius"`
	Chance float64 `yaml:"chance"` // Probability a normal platform carries a pellet
	Growth float64 `yaml:"growth"` // Radius gained on pickup
	Boost  float64 `yaml:"boost"`  // Upward velocity clamp on pickup (negative = up)
	Offset float64 `yaml:"offset"` // Vertical distance above the carrying platform
}

// DartConfig defines hazard projectile parameters.
type DartConfig struct {
	Radius float64 `yaml:"radius"`
	Speed  float64 `yaml:"speed"`  // Horizontal traversal speed per tick
	Chance float64 `yaml:"chance"` // Probability a platform spawn launches a dart
	Offset float64 `yaml:"offset"` // Vertical distance above the reference platform
	Shrink float64 `yaml:"shrink"` // Radius lost on a dart hit
}

// ScrollConfig defines the scroll-window behavior.
type ScrollConfig struct {
	ThresholdFactor float64 `yaml:"threshold_factor"` // Scroll anchor as a fraction of viewport height
}

// GeneratorConfig defines lookahead guarantees.
type GeneratorConfig struct {
	LookaheadFactor float64 `yaml:"lookahead_factor"` // Lookahead distance in viewport heights
	SpeedCapDiv     float64 `yaml:"speed_cap_div"`    // Ascent speed per extra spawn-budget unit
}
