package config

import "math"

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes at max level.
type ScalingConfig struct {
	HazardChanceAdd  float64 `yaml:"hazard_chance_add"` // Added to hazardous-platform probability
	DartChanceAdd    float64 `yaml:"dart_chance_add"`   // Added to dart-spawn probability
	SpacingReduction float64 `yaml:"spacing_reduction"` // Subtracted from platform spacing bounds
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// DifficultyManager calculates dynamic generation parameters based on
// score/time progression. Presets are baked into the config via
// ApplyPreset before construction.
type DifficultyManager struct {
	cfg DifficultyConfig
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	cfg.InitialLevel = clampF(cfg.InitialLevel, 0.0, 1.0)
	return &DifficultyManager{cfg: cfg}
}

// Level returns the current difficulty level (0.0 to 1.0) based on
// score/ticks.
func (d *DifficultyManager) Level(score int, ticks int) float64 {
	if !d.cfg.Enabled || d.cfg.Progression.Type == "none" {
		return d.cfg.InitialLevel
	}

	var progress float64
	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "time":
		progress = float64(ticks) / maxAt
	default:
		return d.cfg.InitialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.cfg.InitialLevel + progress*(1.0-d.cfg.InitialLevel)
}

// HazardChance returns the hazardous-platform probability at the current
// level, clamped to [0, 1].
func (d *DifficultyManager) HazardChance(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base+level*d.cfg.Scaling.HazardChanceAdd, 0.0, 1.0)
}

// DartChance returns the dart-spawn probability at the current level,
// clamped to [0, 1].
func (d *DifficultyManager) DartChance(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	return clampF(base+level*d.cfg.Scaling.DartChanceAdd, 0.0, 1.0)
}

// Spacing returns a spacing bound reduced by the current level. The result
// never drops below half the base so spacing stays strictly positive.
func (d *DifficultyManager) Spacing(base float64, score, ticks int) float64 {
	level := d.Level(score, ticks)
	reduced := base - level*d.cfg.Scaling.SpacingReduction
	floor := base / 2
	if reduced < floor {
		return floor
	}
	return reduced
}

func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
