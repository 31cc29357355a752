package tui

import (
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dodge/internal/config"
	"github.com/vovakirdan/dodge/internal/core"
	"github.com/vovakirdan/dodge/internal/games/dodge"
)

// Model is the Bubble Tea model driving one dodge session.
// The last terminal row is reserved for the help line; the rest shows the
// whole playfield scaled to fit.
type Model struct {
	game      *dodge.Game
	clock     *core.Clock
	sampler   *core.Sampler
	held      *KeyTracker
	keys      KeyMap
	help      help.Model
	presenter *Presenter
	screen    *core.Screen
	logger    *log.Logger
	quitting  bool
}

// NewModel creates a model that reads frame timing from the wall clock.
func NewModel(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	return newModel(cfg, rt, logger, core.SystemTime{})
}

func newModel(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger, src core.TimeSource) Model {
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game := dodge.New(cfg, rt.Seed)
	sampler := core.NewSampler()
	sampler.SetHitRegion(game.MenuButton())

	rows := playRows(rt.ScreenH)
	logger.Debug("session created", "seed", rt.Seed, "cols", rt.ScreenW, "rows", rows)

	return Model{
		game:      game,
		clock:     core.NewClock(src, cfg.Timing.FPS, cfg.Timing.MaxDelta),
		sampler:   sampler,
		held:      NewKeyTracker(cfg.Input.InitialHold, cfg.Input.RepeatHold, src),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		presenter: NewPresenter(game.Field(), rt.ScreenW, rows),
		screen:    core.NewScreen(rt.ScreenW, rows),
		logger:    logger,
	}
}

// playRows returns the rows left for the playfield under the help line.
func playRows(height int) int {
	return core.Max(height-1, 1)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.clock.Reset()
	return tickCmd(m.clock.FrameInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues discrete actions and refreshes held movement keys.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	a := m.keys.MapKey(msg, m.game.Phase())
	switch {
	case a == core.ActionNone:
	case isMovement(a):
		m.held.Press(a)
	default:
		m.sampler.Press(a)
	}
	return m, nil
}

// handleMouse tracks the pointer for hover and clicks on the start button.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := m.presenter.ToWorld(msg.X, msg.Y)
	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		m.sampler.Click(p)
	case msg.Action == tea.MouseActionMotion:
		m.sampler.MovePointer(p)
	}
	return m, nil
}

// handleResize rescales the view. The world keeps its size, so a running
// round is not affected.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	rows := playRows(msg.Height)
	m.screen.Resize(msg.Width, rows)
	m.presenter.Resize(msg.Width, rows)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: measure, sample, step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	dt := m.clock.Tick()
	in := m.sampler.Sample(m.held)

	res := m.game.Step(in, dt)
	if res.Quit {
		m.quitting = true
		m.logger.Info("session ended", "phase", res.Phase)
		return m, tea.Quit
	}

	if res.Started {
		m.held.ReleaseAll()
		m.logger.Debug("round started")
	}
	if res.Crashed {
		m.logger.Debug("player crashed",
			"survived", m.game.Elapsed().Round(time.Millisecond),
			"obstacles", len(m.game.Store().Obstacles()))
	}

	return m, tickCmd(m.clock.FrameInterval())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.presenter.Draw(m.screen, m.game.Render())

	var sb strings.Builder
	sb.WriteString(RenderScreen(m.screen))
	sb.WriteString("\n")
	sb.WriteString(m.help.View(phaseHelp{keys: m.keys, phase: m.game.Phase()}))
	return sb.String()
}

// Run starts the Bubble Tea program for a dodge session.
func Run(cfg config.DodgeConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(cfg, rt, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Hover needs motion without a button held
	)

	_, err := p.Run()
	return err
}
