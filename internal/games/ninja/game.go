// Package ninja implements Ninja Killers, a top-down arcade shooter.
//
// The player runs around an arena throwing shurikens, grenades and homing
// missiles at ninjas that spawn faster and faster. Standing still turns the
// player into a cactus that ninjas lose track of. A run ends when a ninja
// touches the player; its score goes into a ranked top-10 leaderboard.
//
// Gameplay lives in a donburi world: components are plain structs, the
// Resources struct holds singletons, and systems run per tick for the
// active State.
package ninja

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"

	"github.com/vovakirdan/ninja-killers/internal/config"
	"github.com/vovakirdan/ninja-killers/internal/core"
	"github.com/vovakirdan/ninja-killers/internal/leaderboard"
	"github.com/vovakirdan/ninja-killers/internal/registry"
)

// GameID keys the game in the registry and in score storage.
const GameID = "ninja"

// Minimum arena size that still leaves room to dodge.
const (
	minArenaW = 24
	minArenaH = 8
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// assetsPath stores the custom sprite sheet path set via CLI
var assetsPath string

// pkgLogger is shared by every Game created after SetLogger.
var pkgLogger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetAssetsPath sets a custom sprite sheet. Empty uses the embedded one.
func SetAssetsPath(path string) {
	assetsPath = path
}

// SetLogger sets the logger used by games created afterwards.
func SetLogger(l *log.Logger) {
	pkgLogger = l
}

// Game implements Ninja Killers.
type Game struct {
	cfg   config.NinjaConfig
	dm    *config.DifficultyManager
	world donburi.World
	res   *Resources
	sched *schedule
	q     *queries
	ev    *gameEvents

	state   State
	next    State
	hasNext bool

	// Kept across Reset so a resize or new world keeps past runs.
	board *leaderboard.Leaderboard
	name  []rune

	log  *log.Logger
	tick uint64
	dt   time.Duration

	runtime  core.RuntimeConfig
	offsetX  int
	offsetY  int
	tooSmall bool
}

// New creates a new Ninja Killers game.
func New() *Game {
	return &Game{
		board: leaderboard.New(),
		sched: newSchedule(),
		q:     newQueries(),
		ev:    newGameEvents(),
		log:   pkgLogger,
	}
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Ninja Killers"
}

// Reset builds a fresh world in the Loading state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = g.loadConfig()
	g.dm = config.NewDifficultyManager(g.cfg.Difficulty)

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = 60
	}
	g.dt = time.Second / time.Duration(tickRate)
	g.tick = 0

	if g.res != nil {
		g.name = g.res.PlayerName
	}

	g.world = newWorld()
	g.res = &Resources{
		Leaderboard:   g.board,
		PlayerName:    g.name,
		Rand:          rand.New(rand.NewSource(runtime.Seed)),
		SpawnTimer:    NewSpawnTimer(g.dm),
		SpawnModifier: core.TimerFromSeconds(g.dm.HalvingPeriod(), core.TimerRepeating),
		Cooldowns:     newCooldowns(g.cfg.Weapons.CooldownMS),
		Level:         LevelInfo{Value: 1, ExpMax: g.cfg.Progression.ExpMax},
	}
	g.subscribe(g.world)

	g.state = StateLoading
	g.hasNext = false
	g.layout(runtime.ScreenW, runtime.ScreenH)
}

// loadConfig resolves the game config, falling back to defaults on error.
func (g *Game) loadConfig() config.NinjaConfig {
	cfg, err := config.LoadNinja(configPath)
	if err != nil {
		g.logger().Warn("using default config", "err", err)
		cfg = config.DefaultNinjaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyNinjaPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Resize adapts the arena to a new screen size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	if g.res == nil {
		return
	}
	g.layout(w, h)
	if g.tooSmall {
		return
	}
	arena := g.res.Arena
	for _, e := range collect(g.world, g.q.positioned) {
		entry := g.world.Entry(e)
		half := core.Vec2{}
		if entry.HasComponent(Collider) {
			half = Collider.Get(entry).Half
		}
		t := Transform.Get(entry)
		t.Pos = arena.Clamp(t.Pos, half)
		if entry.HasComponent(Grenade) {
			gr := Grenade.Get(entry)
			gr.Target = arena.Clamp(gr.Target, half)
		}
	}
}

// layout sizes the arena for the screen and centres it below the HUD.
func (g *Game) layout(screenW, screenH int) {
	hud := g.cfg.Arena.HUDRows
	w, h := g.cfg.Arena.Width, g.cfg.Arena.Height
	if w <= 0 {
		w = screenW
	}
	if h <= 0 {
		h = screenH - hud
	}

	g.tooSmall = w < minArenaW || h < minArenaH || w > screenW || h+hud > screenH
	g.offsetX = max(0, (screenW-w)/2)
	g.offsetY = hud
	g.res.Arena = Arena{Width: float64(w), Height: float64(h)}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.res.runs = nil

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.state == StatePlaying && (in.Has(core.ActionPause) || in.Has(core.ActionBack)) {
		g.res.Paused = !g.res.Paused
	}

	if g.state != StatePlaying || !g.res.Paused {
		for _, sys := range g.sched.update[g.state] {
			sys(g, in, g.dt)
		}
	}

	g.processEvents()
	g.applyTransition()

	return core.StepResult{State: g.State(), Runs: g.res.runs}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.res == nil {
		return core.GameState{Phase: core.PhaseLoading}
	}
	return core.GameState{
		Score:  g.res.Score,
		Paused: g.res.Paused,
		Phase:  g.state.Phase(),
	}
}

// SeedScores rebuilds the leaderboard from persisted runs.
func (g *Game) SeedScores(runs []core.RunRecord) {
	entries := make([]leaderboard.Entry, 0, len(runs))
	for _, r := range runs {
		entries = append(entries, leaderboard.Entry{Name: r.Player, Score: r.Score})
	}
	g.board.Seed(entries)
}

// SetPlayerName pre-fills the name field, truncated to the field width.
func (g *Game) SetPlayerName(name string) {
	runes := []rune(trimName(name))
	if len(runes) > maxNameLen {
		runes = runes[:maxNameLen]
	}
	g.name = runes
	if g.res != nil {
		g.res.PlayerName = append([]rune(nil), runes...)
	}
}

func (g *Game) logger() *log.Logger {
	if g.log == nil {
		return log.Default()
	}
	return g.log
}
