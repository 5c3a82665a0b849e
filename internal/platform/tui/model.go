package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/boxarcade/internal/core"
	"github.com/vovakirdan/boxarcade/internal/registry"
	"github.com/vovakirdan/boxarcade/internal/replay"
	"github.com/vovakirdan/boxarcade/internal/storage"
)

// Halter is implemented by games that can end their own frame loop.
type Halter interface {
	Halt()
}

// Options controls host behaviour around a game.
type Options struct {
	// Hold is the key hold window in ticks; see HeldKeys.
	Hold int
	// Record saves each session's inputs to Store when it ends.
	Record bool
	Store  *storage.Store
	// Logger receives replay save results. Nil disables logging, which is
	// what a local session wants while the alternate screen is active.
	Logger *log.Logger
	// Embedded makes Back return to a parent menu instead of quitting.
	Embedded bool
	// Palette styles the frame; nil uses the local terminal's profile.
	Palette *Palette
}

// Model is the Bubble Tea model for running a single game.
// It owns the tick loop and key sampling; the game owns everything else.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	opts      Options
	keyMapper *KeyMapper
	keys      *HeldKeys
	recorder  *replay.Recorder
	state     core.GameState
	gen       int64 // current tick loop

	paused     bool
	ticking    bool
	quitting   bool
	backToMenu bool

	// Saved replay IDs and the last save error, reported after exit.
	saved   *[]int64
	saveErr *error
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		opts:      opts,
		keyMapper: NewKeyMapper(),
		keys:      NewHeldKeys(opts.Hold),
		saved:     new([]int64),
		saveErr:   new(error),
	}
	// Init has a value receiver and cannot keep changes, so the first
	// session starts here.
	m.start()
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate, m.gen)
}

// start resets the game for a new session with the current seed and
// claims a new tick loop, orphaning any tick still in flight.
func (m *Model) start() {
	m.game.Reset(m.config)
	m.state = m.game.State()
	m.keys.ReleaseAll()
	m.recorder = nil
	if m.opts.Record && m.opts.Store != nil {
		m.recorder = replay.NewRecorder(m.game.ID(), m.config.Seed)
	}
	m.gen = nextGen()
	m.ticking = true
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// Games simulate in world units, so a resize only changes the buffer.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if key, ok := m.keyMapper.MapKey(msg); ok {
		if !m.paused {
			m.keys.Press(key)
		}
		return m, nil
	}

	switch m.keyMapper.MapAction(msg) {
	case core.ActionQuit:
		m.finish()
		m.quitting = true
		return m, tea.Quit

	case core.ActionPause:
		if m.state.Running {
			m.paused = !m.paused
			m.keys.ReleaseAll()
		}

	case core.ActionRestart:
		m.finish()
		m.config.Seed = time.Now().UnixNano()
		m.paused = false
		m.start()
		return m, tickCmd(m.config.TickRate, m.gen)

	case core.ActionBack:
		// First Back ends a running game; the second leaves it.
		if h, ok := m.game.(Halter); ok && m.state.Running {
			h.Halt()
			m.state = m.game.State()
			m.paused = false
			return m, nil
		}
		m.finish()
		if m.opts.Embedded {
			m.backToMenu = true
			return m, nil
		}
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

// handleTick samples keys, runs one Step and schedules the next tick.
// Ticks stop once the game reports it is no longer running.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.ticking {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate, m.gen)
	}
	if !m.state.Running {
		m.ticking = false
		return m, nil
	}

	keys := m.keys.State()
	if m.recorder != nil {
		m.recorder.Observe(keys)
	}
	m.state = m.game.Step(keys).State
	m.keys.Advance()

	if !m.state.Running {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.config.TickRate, m.gen)
}

// finish stores the current recording, if any.
func (m *Model) finish() {
	rec := m.recorder
	m.recorder = nil
	if rec == nil || rec.Ticks() == 0 || m.opts.Store == nil {
		return
	}

	id, err := m.opts.Store.SaveReplay(context.Background(), rec.Recording())
	if err != nil {
		*m.saveErr = err
		if m.opts.Logger != nil {
			m.opts.Logger.Warn("could not save replay", "game", m.game.ID(), "error", err)
		}
		return
	}
	*m.saved = append(*m.saved, id)
	if m.opts.Logger != nil {
		m.opts.Logger.Info("replay saved", "game", m.game.ID(), "id", id, "ticks", rec.Ticks())
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.paused {
		h := m.screen.Height()
		m.screen.DrawTextCentered(h/2, " PAUSED ")
		m.screen.DrawTextCentered(h/2+1, " P resume  Q quit ")
	} else if !m.state.Running {
		m.screen.DrawTextCentered(m.screen.Height()/2+1, " R restart  Esc leave ")
	}
	if m.opts.Palette != nil {
		return m.opts.Palette.Render(m.screen)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Paused reports whether the host has frozen the simulation.
func (m Model) Paused() bool {
	return m.paused
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// Result summarises a finished session.
type Result struct {
	State   core.GameState
	Replays []int64 // IDs of replays saved during the session
	SaveErr error   // Last replay save failure, if any
}

// Run starts the Bubble Tea program with the given game and blocks until
// the player quits.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (Result, error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	res := Result{Replays: *model.saved, SaveErr: *model.saveErr}
	if m, ok := final.(Model); ok {
		res.State = m.state
	}
	return res, err
}
