package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ninja-killers/internal/core"
	"github.com/vovakirdan/ninja-killers/internal/leaderboard"
	"github.com/vovakirdan/ninja-killers/internal/registry"
	"github.com/vovakirdan/ninja-killers/internal/storage"
)

// Options tunes a Model beyond the runtime config.
type Options struct {
	// Logger receives platform events. Nil discards them.
	Logger *log.Logger

	// PlayerName pre-fills the game's name field when the game asks for one.
	PlayerName string

	// HoldTicks overrides DefaultHoldTicks.
	HoldTicks int

	// ScreenshotDir is where ctrl+s writes screens. Empty uses ~/.ninja/screenshots.
	ScreenshotDir string
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	log        *log.Logger
	keys       *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	scoreboard *ScoreboardModel
	quitting   bool
}

// NewModel creates a model for game. A nil store disables persistence.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	if opts.PlayerName != "" {
		if namer, ok := game.(registry.PlayerNamer); ok {
			namer.SetPlayerName(opts.PlayerName)
		}
	}
	seedScores(game, store, logger)

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		opts:       opts,
		log:        logger,
		keys:       NewKeyMapper(),
		held:       NewHeldKeys(opts.HoldTicks),
		inputFrame: core.NewInputFrame(),
	}
}

// seedScores loads the stored top runs into games with a leaderboard.
func seedScores(game registry.Game, store *storage.Store, logger *log.Logger) {
	seeder, ok := game.(registry.ScoreSeeder)
	if !ok || store == nil {
		return
	}
	top, err := store.TopScores(game.ID(), leaderboard.Capacity)
	if err != nil {
		logger.Warn("could not load leaderboard", "game", game.ID(), "err", err)
		return
	}
	runs := make([]core.RunRecord, len(top))
	for i, s := range top {
		runs[i] = core.RunRecord{Player: s.Player, Score: s.Score}
	}
	seeder.SeedScores(runs)
	logger.Debug("leaderboard seeded", "game", game.ID(), "runs", len(runs))
}

// Init resets the game and starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.scoreboard != nil {
		switch msg.(type) {
		case tea.KeyMsg, tea.WindowSizeMsg:
			return m.updateScoreboard(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case closeScoreboardMsg:
		m.scoreboard = nil
		return m, nil
	}

	return m, nil
}

func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m = m.resize(wsm.Width, wsm.Height)
	}
	updated, cmd := m.scoreboard.Update(msg)
	sb := updated.(ScoreboardModel)
	m.scoreboard = &sb
	if sb.IsQuitting() {
		m.quitting = true
	}
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if runes := m.keys.TypedRunes(msg); len(runes) > 0 {
		m.inputFrame.Type(runes...)
	}

	switch {
	case action == core.ActionScoreboard:
		if m.gameState.Phase == core.PhaseMenu {
			sb := NewScoreboardModel(m.store, m.game.ID(), m.game.Title(), m.config.ScreenW, m.config.ScreenH)
			sb.embedded = true
			m.scoreboard = &sb
		}
	case IsHeld(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	return m.resize(msg.Width, msg.Height), nil
}

func (m Model) resize(w, h int) Model {
	m.config.ScreenW = w
	m.config.ScreenH = h
	m.screen.Resize(w, h)

	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(w, h)
	} else {
		m.game.Reset(m.config)
	}
	return m
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.inputFrame)
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	if m.gameState.Phase != core.PhasePlaying {
		m.held.Release()
	}

	m.saveRuns(result.Runs)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveRuns persists finished runs. Scoreless runs are not stored.
func (m Model) saveRuns(runs []core.RunRecord) {
	for _, r := range runs {
		if r.Score <= 0 || m.store == nil {
			continue
		}
		id, err := m.store.SaveScore(m.game.ID(), r.Player, r.Score)
		if err != nil {
			m.log.Error("could not save score", "game", m.game.ID(), "player", r.Player, "score", r.Score, "err", err)
			continue
		}
		m.log.Info("score saved", "id", id, "player", r.Player, "score", r.Score)
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			m.log.Warn("screenshot skipped", "err", err)
			return
		}
		dir = filepath.Join(home, ".ninja", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), time.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.log.Warn("screenshot skipped", "err", err)
		return
	}
	m.log.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for game and blocks until it exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(game, store, cfg, opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
