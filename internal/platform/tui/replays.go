package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/registry"
	"github.com/vovakirdan/boxarcade/internal/replay"
	"github.com/vovakirdan/boxarcade/internal/storage"
)

// Replay browser layout constants
const (
	maxReplays = 100 // Max replays to load per filter
)

// ReplaysKeyMap defines the key bindings for the replay browser.
type ReplaysKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Run      key.Binding
	Delete   key.Binding
	NextGame key.Binding
	PrevGame key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ReplaysKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Run, k.Delete, k.NextGame, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ReplaysKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextGame, k.PrevGame},
		{k.Run, k.Delete, k.Back, k.Quit},
	}
}

// DefaultReplaysKeyMap returns default key bindings.
func DefaultReplaysKeyMap() ReplaysKeyMap {
	return ReplaysKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Run: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "replay"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete"),
		),
		NextGame: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next game"),
		),
		PrevGame: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev game"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ReplaysModel is the Bubble Tea model for browsing stored replays.
// The first filter tab shows every game.
type ReplaysModel struct {
	filters   []registry.GameInfo
	filter    int
	store     *storage.Store
	cfgPath   string
	entries   []storage.ReplayEntry
	table     table.Model
	help      help.Model
	keys      ReplaysKeyMap
	status    string
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewReplaysModel creates a new replay browser. Replays are re-run with
// games configured from configPath.
func NewReplaysModel(store *storage.Store, configPath string, width, height int) ReplaysModel {
	filters := append([]registry.GameInfo{{Title: "All"}}, registry.List()...)

	h := help.New()
	h.ShowAll = false

	m := ReplaysModel{
		filters: filters,
		store:   store,
		cfgPath: configPath,
		keys:    DefaultReplaysKeyMap(),
		help:    h,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.loadReplays()
	return m
}

// createTable creates a new table sized to the window.
func (m *ReplaysModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Game", Width: 12},
		{Title: "Ticks", Width: 8},
		{Title: "Keys", Width: 6},
		{Title: "Date", Width: 14},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-9)), // Leave room for header, status and help
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadReplays reloads the table for the current filter.
func (m *ReplaysModel) loadReplays() {
	m.entries = nil
	if m.store != nil {
		entries, err := m.store.ListReplays(context.Background(), m.filters[m.filter].ID, maxReplays)
		if err != nil {
			m.status = fmt.Sprintf("error: %v", err)
		}
		m.entries = entries
	}

	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{
			fmt.Sprintf("%d", e.ID),
			e.GameID,
			fmt.Sprintf("%d", e.Ticks),
			fmt.Sprintf("%d", e.Events),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// selected returns the entry under the cursor.
func (m ReplaysModel) selected() (storage.ReplayEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return storage.ReplayEntry{}, false
	}
	return m.entries[i], true
}

// Init initializes the replay browser.
func (m ReplaysModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the replay browser.
func (m ReplaysModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextGame):
			m.filter = (m.filter + 1) % len(m.filters)
			m.status = ""
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.PrevGame):
			m.filter = (m.filter - 1 + len(m.filters)) % len(m.filters)
			m.status = ""
			m.loadReplays()
			return m, nil

		case key.Matches(msg, m.keys.Run):
			if e, ok := m.selected(); ok {
				m.status = m.simulate(e.ID)
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			if e, ok := m.selected(); ok && m.store != nil {
				if err := m.store.DeleteReplay(context.Background(), e.ID); err != nil {
					m.status = fmt.Sprintf("error: %v", err)
				} else {
					m.status = fmt.Sprintf("deleted replay %d", e.ID)
				}
				m.loadReplays()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.loadReplays()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// simulate replays id headlessly and describes the final state.
func (m ReplaysModel) simulate(id int64) string {
	state, _, err := SimulateStored(context.Background(), m.store, id, m.cfgPath)
	if err != nil {
		return fmt.Sprintf("error: %v", err)
	}
	return fmt.Sprintf("replay %d: %s after %d ticks", id, FormatScores(state.Scores), state.Tick)
}

// View renders the replay browser.
func (m ReplaysModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))
	b.WriteString(titleStyle.Render(centerText("REPLAYS", m.width)))
	b.WriteString("\n\n")

	tabStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	activeTabStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Padding(0, 1)

	tabs := make([]string, len(m.filters))
	for i, f := range m.filters {
		if i == m.filter {
			tabs[i] = activeTabStyle.Render(f.Title)
		} else {
			tabs[i] = tabStyle.Render(" " + f.Title + " ")
		}
	}
	b.WriteString(centerText(strings.Join(tabs, " "), m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	b.WriteString(tableStyle.Render(m.renderTableContent()))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.status)
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderTableContent renders the table or empty message.
func (m ReplaysModel) renderTableContent() string {
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("No replays recorded yet.\nPlay with --record to save one.")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ReplaysModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ReplaysModel) IsQuitting() bool {
	return m.quitting
}

// Status returns the message shown under the table.
func (m ReplaysModel) Status() string {
	return m.status
}

// RunReplays runs the replay browser.
// Returns true if user wants to go back to menu, false if quitting.
func RunReplays(store *storage.Store, configPath string, width, height int) (goBack bool, err error) {
	model := NewReplaysModel(store, configPath, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ReplaysModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}

// errNoStore is returned when replays are requested without a database.
var errNoStore = errors.New("tui: replay database unavailable")

// SimulateStored loads replay id and re-runs it on a fresh game instance
// configured from configPath. The game is returned so callers can inspect
// its final entities.
func SimulateStored(ctx context.Context, store *storage.Store, id int64, configPath string) (core.GameState, registry.Game, error) {
	if store == nil {
		return core.GameState{}, nil, errNoStore
	}
	rec, err := store.LoadReplay(ctx, id)
	if err != nil {
		return core.GameState{}, nil, err
	}
	game, err := registry.CreateConfigured(rec.GameID, configPath)
	if err != nil {
		return core.GameState{}, nil, err
	}
	state, err := replay.Simulate(game, rec, core.DefaultConfig())
	return state, game, err
}

// FormatScores renders scores as "12" or "3 - 5".
func FormatScores(scores []int) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%d", s)
	}
	return strings.Join(parts, " - ")
}
