package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/skyhop-dev/skyhop/internal/config"
	"github.com/skyhop-dev/skyhop/internal/core"
	"github.com/skyhop-dev/skyhop/internal/hopper"
	"github.com/skyhop-dev/skyhop/internal/storage"
)

// Model is the Bubble Tea model that drives a Sky Hopper session. It acts
// as the input adapter (key/mouse events latch into core.Input) and the
// frame clock (TickMsg timestamps become clamped frame deltas).
type Model struct {
	session  *hopper.Session
	screen   *core.Screen
	cfg      core.RuntimeConfig
	input    core.Input
	keys     *KeyMapper
	lastTick time.Time
	quitting bool
}

// NewModel creates a model for the given tuning and runtime configuration.
// store may be nil; the game then runs without persistence.
func NewModel(hcfg config.HopperConfig, cfg core.RuntimeConfig, store *storage.Store) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	var sink hopper.ScoreSink
	if store != nil {
		sink = store
	}

	return Model{
		session: hopper.NewSession(hcfg, cfg, sink),
		screen:  core.NewScreen(int(cfg.ViewW), int(cfg.ViewH)),
		cfg:     cfg,
		input:   core.NewInput(),
		keys:    NewKeyMapper(),
	}
}

// Init starts the frame clock.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.cfg.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.keys.MapKey(msg, &m.input) {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil

	case tea.MouseMsg:
		m.keys.MapMouse(msg, &m.input)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleResize re-queries viewport geometry. A mid-run resize restarts the
// session with the new dimensions; a finished run keeps its final screen.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width <= 0 || msg.Height <= 0 {
		return m, nil
	}

	m.cfg.ViewW = float64(msg.Width)
	m.cfg.ViewH = float64(msg.Height)
	m.screen.Resize(msg.Width, msg.Height)

	if m.session.Phase() != hopper.PhaseGameOver {
		m.session.Reset(m.cfg)
	}

	return m, nil
}

// handleTick runs one simulation frame and re-arms the clock. A stale tick
// arriving after quit is dropped, so teardown can never be followed by a
// state mutation.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	dt := hopper.NominalTickMs
	if !m.lastTick.IsZero() {
		dt = float64(now.Sub(m.lastTick).Microseconds()) / 1000.0
	}
	m.lastTick = now

	// Lifecycle controls are consumed here, outside the step, so the
	// simulation itself never sees start/restart intents mid-run.
	switch m.session.Phase() {
	case hopper.PhaseIdle:
		if m.input.Has(core.ActionStart) {
			m.session.Start()
		}
	case hopper.PhaseGameOver:
		if m.input.Has(core.ActionRestart) || m.input.Has(core.ActionStart) {
			m.cfg.Seed = time.Now().UnixNano()
			m.session.Reset(m.cfg)
			m.session.Start()
		}
	case hopper.PhaseRunning:
		if m.input.Has(core.ActionPause) {
			m.session.TogglePause()
		}
	}

	m.session.Step(&m.input, dt)
	m.input.EndFrame()

	return m, tickCmd(m.cfg.TickRate)
}

// View renders the current snapshot to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hopper.DrawSnapshot(m.screen, m.session.Snapshot())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(hcfg config.HopperConfig, cfg core.RuntimeConfig, store *storage.Store) error {
	model := NewModel(hcfg, cfg, store)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Pointer steering
	)

	_, err := p.Run()
	return err
}
