package hopper

// PlatformKind categorizes platforms.
type PlatformKind int

const (
	// PlatformNormal bounces the player upward on landing.
	PlatformNormal PlatformKind = iota
	// PlatformHazard shrinks the player and dampens the bounce.
	PlatformHazard
)

// String returns a human-readable name for the platform kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformNormal:
		return "normal"
	case PlatformHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

// Player is the controllable body. Position is the circle center; radius is
// bounded by the configured [min, max] at all times.
type Player struct {
	X, Y   float64
	R      float64
	VX, VY float64
}

// Platform is a landable rectangle. VY is a downward drift applied only
// while the platform slides into the lookahead region; it is zeroed once
// the platform enters the viewport, after which the platform is value-like.
type Platform struct {
	X, Y float64
	W, H float64
	VY   float64
	Kind PlatformKind
}

// Right returns the x-coordinate of the platform's right edge.
func (p Platform) Right() float64 {
	return p.X + p.W
}

// Pellet is a collectible circle attached above a normal platform at spawn.
type Pellet struct {
	X, Y float64
	R    float64
}

// Dart is a hazard projectile traversing the viewport horizontally.
type Dart struct {
	X, Y float64
	R    float64
	VX   float64
}
