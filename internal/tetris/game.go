package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects the rotation rules.
type Mode string

const (
	ModeKicks   Mode = "kicks"   // Blocked rotations try the kick table
	ModeClassic Mode = "classic" // Blocked rotations are reverted
)

// Package-level settings applied on the next Reset, set from the CLI.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = parsePreset(preset)
}

func parsePreset(preset string) config.DifficultyPreset {
	switch p := config.DifficultyPreset(preset); p {
	case config.DifficultyEasy, config.DifficultyNormal, config.DifficultyHard, config.DifficultyFixed:
		return p
	default:
		return ""
	}
}

// SetLogger routes engine logs to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game adapts an Engine to the registry.Game interface. Time is virtual:
// every Step advances the clock by one tick, so runs with the same seed and
// inputs are identical regardless of wall-clock jitter.
type Game struct {
	mode   Mode
	preset config.DifficultyPreset // Overrides the package preset when set
	cfg    config.TetrisConfig
	engine *Engine
	rng    *rand.Rand

	clock    time.Time
	tickDur  time.Duration
	tick     uint64
	paused   bool
	tooSmall bool

	screenW int
	screenH int
}

// New creates a game with wall kicks.
func New() *Game {
	return &Game{mode: ModeKicks}
}

// NewClassic creates a game that reverts blocked rotations.
func NewClassic() *Game {
	return &Game{mode: ModeClassic}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_classic", func() registry.Game {
		return NewClassic()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "tetris_classic"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeClassic {
		return "Tetris (Classic Rotation)"
	}
	return "Tetris"
}

// SetDifficulty selects a preset for this instance only, taking precedence
// over SetDifficultyPreset. It applies on the next Reset.
func (g *Game) SetDifficulty(preset string) {
	g.preset = parsePreset(preset)
}

// Reset loads configuration and starts a new game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadTetris(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultTetrisConfig()
	}
	preset := difficultyPreset
	if g.preset != "" {
		preset = g.preset
	}
	if preset != "" {
		config.ApplyTetrisPreset(&cfg, preset)
	}
	g.cfg = cfg

	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDur = time.Second / time.Duration(tickRate)
	g.clock = time.Unix(0, 0)
	g.tick = 0
	g.paused = false
	g.rng = rand.New(rand.NewSource(runtime.Seed))

	g.engine = NewEngine(g.engineConfig())
	g.engine.Start(g.clock)

	g.resize(runtime.ScreenW, runtime.ScreenH)

	logger.Debug("game reset",
		"mode", g.mode,
		"seed", runtime.Seed,
		"width", g.engine.Board().Width(),
		"height", g.engine.Board().Height(),
		"gravity", g.engine.Gravity(),
	)
}

func (g *Game) engineConfig() EngineConfig {
	ec := NewEngineConfig(g.cfg, g.mode)
	ec.Rand = g.rng
	ec.Logger = logger
	return ec
}

// NewEngineConfig translates a loaded configuration into engine settings
// for the given mode. An out-of-range spawn column is clamped so the
// bounding box stays on the board.
func NewEngineConfig(cfg config.TetrisConfig, mode Mode) EngineConfig {
	ec := DefaultEngineConfig()
	ec.Width = cfg.Board.Width
	ec.Height = cfg.Board.Height
	ec.Gravity = time.Duration(cfg.Gravity.IntervalMS) * time.Millisecond

	ec.SpawnColumn = cfg.Spawn.Column
	if ec.SpawnColumn >= 0 {
		w := ec.Width
		if w <= 0 {
			w = DefaultWidth
		}
		ec.SpawnColumn = core.Clamp(ec.SpawnColumn, 0, max(0, w-MaxMatrixSize))
	}

	if mode == ModeClassic {
		ec.Kicks = nil
	} else {
		ec.Kicks = cfg.Rotation.Kicks
	}
	return ec
}

// Resize updates the screen dimensions used for layout.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.engine == nil {
		return
	}
	minW, minH := MinScreenSize(g.engine.Board())
	g.tooSmall = w < minW || h < minH
}

// Step advances the game by one tick. Inputs are applied in a fixed order
// before gravity: pause, rotate, left, right, soft drop, hard drop.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.clock = g.clock.Add(g.tickDur)

	if in.Has(core.ActionRestart) && g.engine.IsGameOver() {
		g.paused = false
		g.engine.Restart(g.clock)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.engine.IsGameOver() {
		g.paused = !g.paused
		if !g.paused {
			// Resume gravity from now instead of dropping immediately.
			g.engine.Start(g.clock)
		}
	}

	if g.tooSmall {
		// Hold gravity until the board fits on screen again.
		g.engine.Start(g.clock)
	}
	if g.paused || g.tooSmall || g.engine.IsGameOver() {
		return core.StepResult{State: g.State()}
	}

	locks := g.engine.Locks()

	if in.Has(core.ActionRotate) {
		g.engine.Rotate()
	}
	if in.Has(core.ActionLeft) {
		g.engine.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		g.engine.MoveRight()
	}
	if in.Has(core.ActionSoftDrop) {
		g.engine.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		g.engine.HardDrop()
	}
	g.engine.Tick(g.clock)

	res := core.StepResult{State: g.State()}
	if g.engine.Locks() != locks {
		res.Locked = true
		res.Cleared = g.engine.LastCleared()
	}
	return res
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Lines:    g.engine.LinesCleared(),
		GameOver: g.engine.IsGameOver(),
		Paused:   g.paused,
	}
}

// Engine exposes the underlying engine for front ends that draw the board
// themselves.
func (g *Game) Engine() *Engine {
	return g.engine
}
