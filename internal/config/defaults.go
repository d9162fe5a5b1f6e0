package config

import (
	_ "embed"
)

//go:embed defaults/skyhop.yaml
var defaultHopperYAML []byte

// DefaultConfig returns the default Sky Hopper configuration.
func DefaultConfig() HopperConfig {
	return HopperConfig{
		Physics: PhysicsConfig{
			Gravity:            0.018,
			Friction:           0.9,
			Accel:              0.06,
			MaxFallSpeed:       1.5,
			MaxFrameDelta:      32.0,
			BaseBounce:         0.62,
			HazardBounceFactor: 0.45,
			Knockback:          0.8,
			PointerDeadZone:    1.5,
		},
		Player: PlayerConfig{
			BaseRadius:   0.9,
			MinRadius:    0.45,
			MaxRadius:    1.8,
			StartXFactor: 0.5,
			StartYFactor: 0.7,
			RestEpsilon:  0.01,
		},
		Platforms: PlatformConfig{
			MinWidth:     6.0,
			MaxWidth:     12.0,
			Height:       1.0,
			MinSpacing:   2.5,
			MaxSpacing:   4.5,
			TopUpSlack:   1.5,
			PoolTarget:   120,
			SpawnCapBase: 3,
			SpawnCapMax:  10,
			TopUpCap:     8,
			PruneMargin:  4.0,
			Drift:        0.08,
			HazardChance: 0.10,
			HazardShrink: 0.15,
		},
		Pellets: PelletConfig{
			Radius: 0.5,
			Chance: 0.18,
			Growth: 0.12,
			Boost:  -0.35,
			Offset: 1.2,
		},
		Darts: DartConfig{
			Radius: 0.6,
			Speed:  0.45,
			Chance: 0.06,
			Offset: 1.5,
			Shrink: 0.18,
		},
		Scroll: ScrollConfig{
			ThresholdFactor: 0.3333,
		},
		Generator: GeneratorConfig{
			LookaheadFactor: 2.0,
			SpeedCapDiv:     0.2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				HazardChanceAdd:  0.15,
				DartChanceAdd:    0.08,
				SpacingReduction: 1.0,
			},
		},
	}
}
