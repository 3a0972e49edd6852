package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/termsnake/internal/core"
	"github.com/vovakirdan/termsnake/internal/game"
)

// Model is the Bubble Tea model running one or more game sessions.
// The frame loop runs at the configured frame rate; game-logic ticks
// fire from the fixed-step accumulator at the tick interval, so gameplay
// speed does not depend on rendering performance.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	cfg      core.RuntimeConfig
	style    game.Style
	step     *core.FixedStep
	keys     KeyMap
	help     help.Model
	pending  core.Key // Last directional key seen; sampled at tick boundary
	quitting bool
}

// Result reports the outcome of the last session after the program exits.
type Result struct {
	Score   int
	Outcome game.Outcome
}

// NewModel creates a model with a fresh session.
func NewModel(cfg core.RuntimeConfig, style game.Style) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return Model{
		session: game.NewSession(game.FieldWidth, game.FieldHeight, cfg.Seed),
		screen:  core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)), // Last line holds the help view
		cfg:     cfg,
		style:   style,
		step:    core.NewFixedStep(cfg.TickInterval),
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.cfg.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.cfg.ScreenW = msg.Width
		m.cfg.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case FrameMsg:
		return m.handleFrame()
	}

	return m, nil
}

// handleKey processes keyboard input. Directional keys only buffer the
// pending input; the session consumes it at the next tick boundary.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// Quit terminates the session unconditionally, mid-interval.
		m.session.Tick(core.Input{Quit: true})
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Restart):
		if m.session.Status() == game.StatusTerminated {
			m.session = game.NewSession(game.FieldWidth, game.FieldHeight, time.Now().UnixNano())
			m.pending = core.KeyNone
			m.step = core.NewFixedStep(m.cfg.TickInterval)
		}
		return m, nil
	}

	if k := m.keys.MapKey(msg); k != core.KeyNone {
		m.pending = k
	}
	return m, nil
}

// handleFrame advances the fixed-step accumulator and fires at most one
// game tick per frame.
func (m Model) handleFrame() (tea.Model, tea.Cmd) {
	if m.step.ShouldStep() {
		m.session.Tick(core.Input{Key: m.pending})
	}
	return m, frameCmd(m.cfg.FrameRate)
}

// View renders the current game state.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen, m.style)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
// Returns the final session result for the caller to display.
func Run(cfg core.RuntimeConfig, style game.Style) (Result, error) {
	p := tea.NewProgram(
		NewModel(cfg, style),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return Result{}, err
	}

	m, ok := finalModel.(Model)
	if !ok {
		return Result{}, fmt.Errorf("tui: unexpected final model type %T", finalModel)
	}

	return Result{
		Score:   m.session.Score(),
		Outcome: m.session.Outcome(),
	}, nil
}
