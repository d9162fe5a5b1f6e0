package core

// RuntimeConfig contains configuration passed to the simulation at
// initialization. The viewport is measured in terminal cells but treated as
// continuous world units; all spawn and boundary math is relative to it.
type RuntimeConfig struct {
	ViewW    float64 // Viewport width in world units
	ViewH    float64 // Viewport height in world units
	TickRate int     // Simulation ticks per second (default 60)
	Seed     int64   // RNG seed for deterministic generation (0 = time-based per platform layer)
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ViewW:    80,
		ViewH:    24,
		TickRate: 60,
		Seed:     0,
	}
}
