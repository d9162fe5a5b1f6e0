package core

// Action represents a semantic one-shot game action, abstracted from
// physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionStart          // Space, Enter - start a run from Idle or GameOver
	ActionPause          // P, Escape - pause/unpause the running simulation
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit the session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Hold durations in ticks for latched signals. Terminals deliver key and
// mouse events without release notifications, so held intent is modeled as
// a decaying latch re-armed by each event.
const (
	KeyHoldTicks     = 6
	PointerHoldTicks = 10
)

// Input is the latched input state consumed by the simulation once per
// frame. Event handlers arm latches asynchronously; the step function only
// reads, never the other way around.
type Input struct {
	leftTicks    int
	rightTicks   int
	pointerX     float64
	pointerTicks int
	actions      map[Action]bool
}

// NewInput creates an empty input state.
func NewInput() Input {
	return Input{actions: make(map[Action]bool)}
}

// ArmLeft latches leftward intent for KeyHoldTicks frames.
func (in *Input) ArmLeft() {
	in.leftTicks = KeyHoldTicks
}

// ArmRight latches rightward intent for KeyHoldTicks frames.
func (in *Input) ArmRight() {
	in.rightTicks = KeyHoldTicks
}

// SetPointer latches a horizontal steering target for PointerHoldTicks
// frames. The target is a world x-coordinate.
func (in *Input) SetPointer(x float64) {
	in.pointerX = x
	in.pointerTicks = PointerHoldTicks
}

// Set marks a one-shot action as triggered for this frame.
func (in *Input) Set(a Action) {
	if in.actions == nil {
		in.actions = make(map[Action]bool)
	}
	in.actions[a] = true
}

// Has returns true if the given one-shot action is pending.
func (in *Input) Has(a Action) bool {
	return in.actions[a]
}

// Axis returns the current horizontal intent: -1 (left), 0, or +1 (right).
// Opposing latches cancel out.
func (in *Input) Axis() float64 {
	axis := 0.0
	if in.leftTicks > 0 {
		axis -= 1
	}
	if in.rightTicks > 0 {
		axis += 1
	}
	return axis
}

// Pointer returns the latched steering target and whether it is active.
func (in *Input) Pointer() (float64, bool) {
	return in.pointerX, in.pointerTicks > 0
}

// EndFrame decays held latches and clears one-shot actions. Called by the
// platform after each simulation step.
func (in *Input) EndFrame() {
	if in.leftTicks > 0 {
		in.leftTicks--
	}
	if in.rightTicks > 0 {
		in.rightTicks--
	}
	if in.pointerTicks > 0 {
		in.pointerTicks--
	}
	for k := range in.actions {
		delete(in.actions, k)
	}
}

// Clear resets all latches and actions.
func (in *Input) Clear() {
	in.leftTicks = 0
	in.rightTicks = 0
	in.pointerTicks = 0
	for k := range in.actions {
		delete(in.actions, k)
	}
}
