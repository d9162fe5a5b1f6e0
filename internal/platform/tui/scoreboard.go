package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/skyhop-dev/skyhop/internal/storage"
)

var scoreboardStyle = lipgloss.NewStyle().
	BorderStyle(lipgloss.NormalBorder()).
	BorderForeground(lipgloss.Color("240"))

type scoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func (k scoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit}
}

func (k scoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down, k.Quit}}
}

var scoreboardKeys = scoreboardKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "down"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "esc", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// ScoreboardModel shows recorded runs in an interactive table.
type ScoreboardModel struct {
	tbl  table.Model
	help help.Model
	best int
}

// NewScoreboardModel builds a scoreboard from the store's top runs.
func NewScoreboardModel(store *storage.Store, limit int) (ScoreboardModel, error) {
	runs, err := store.TopRuns(limit)
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("load runs: %w", err)
	}
	best, err := store.BestScore()
	if err != nil {
		return ScoreboardModel{}, fmt.Errorf("load best: %w", err)
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 8},
		{Title: "When", Width: 20},
	}

	rows := make([]table.Row, 0, len(runs))
	for i, r := range runs {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			r.CreatedAt.Format(time.DateTime),
		})
	}

	height := len(rows)
	if height > 15 {
		height = 15
	}
	if height < 1 {
		height = 1
	}

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	tbl.SetStyles(styles)

	return ScoreboardModel{
		tbl:  tbl,
		help: help.New(),
		best: best,
	}, nil
}

func (m ScoreboardModel) Init() tea.Cmd { return nil }

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, scoreboardKeys.Quit) {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	header := lipgloss.NewStyle().Bold(true).Render(
		fmt.Sprintf("Sky Hopper — best score %d", m.best))
	return header + "\n" +
		scoreboardStyle.Render(m.tbl.View()) + "\n" +
		m.help.View(scoreboardKeys) + "\n"
}

// RunScoreboard opens the interactive scoreboard.
func RunScoreboard(store *storage.Store, limit int) error {
	model, err := NewScoreboardModel(store, limit)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(model).Run()
	return err
}
