package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultGravity is the interval between gravity steps.
const DefaultGravity = 500 * time.Millisecond

// DefaultKicks are the horizontal offsets tried, in order, when a rotation
// collides in place.
var DefaultKicks = []int{1, -1, 2, -2}

// State is the engine's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateGameOver
)

// String returns the state name.
func (s State) String() string {
	if s == StateGameOver {
		return "game_over"
	}
	return "running"
}

// LockEvent describes a piece settling into the board.
type LockEvent struct {
	Kind      Kind
	X, Y      int
	Lines     int  // Rows cleared by this lock
	LockedOut bool // Part of the piece was still above row 0
	GameOver  bool
}

// EngineConfig configures a new Engine. Zero values select defaults, with two
// exceptions. SpawnColumn 0 is column 0; only a negative value derives the
// column from the width. A nil or empty Kicks list disables wall kicks, so a
// colliding rotation is simply reverted. Start from DefaultEngineConfig to
// get both defaults.
type EngineConfig struct {
	Width       int
	Height      int
	Gravity     time.Duration
	SpawnColumn int // <0 selects (Width-4)/2
	Kicks       []int

	Rand   Randomizer
	Logger *log.Logger

	// OnLock is called after every lock, once lines are cleared and the next
	// piece is spawned.
	OnLock func(LockEvent)
	// OnGameOver is called once when the engine enters StateGameOver.
	OnGameOver func()
}

// DefaultEngineConfig returns a 10×20 board, 500ms gravity and wall kicks.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		Gravity:     DefaultGravity,
		SpawnColumn: -1,
		Kicks:       DefaultKicks,
	}
}

// Engine owns the board and the current and next pieces and applies all
// game rules. It is not safe for concurrent use; hosts serialise input and
// ticks onto one goroutine.
type Engine struct {
	board   *Board
	current *Piece
	next    *Piece

	rng      Randomizer
	gravity  time.Duration
	lastDrop time.Time
	spawnX   int
	kicks    []int

	state        State
	linesCleared int
	lastCleared  int
	locks        int

	logger     *log.Logger
	onLock     func(LockEvent)
	onGameOver func()
}

// NewEngine creates a running engine with an empty board and both pieces
// selected. Gravity timing starts from the zero time until Start is called.
func NewEngine(cfg EngineConfig) *Engine {
	board := NewBoard(cfg.Width, cfg.Height)

	gravity := cfg.Gravity
	if gravity <= 0 {
		gravity = DefaultGravity
	}

	spawnX := cfg.SpawnColumn
	if spawnX < 0 {
		spawnX = max(0, (board.Width()-4)/2)
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	e := &Engine{
		board:      board,
		rng:        rng,
		gravity:    gravity,
		spawnX:     spawnX,
		kicks:      append([]int(nil), cfg.Kicks...),
		logger:     logger,
		onLock:     cfg.OnLock,
		onGameOver: cfg.OnGameOver,
	}
	e.reset()
	return e
}

func (e *Engine) reset() {
	e.board.Reset()
	e.state = StateRunning
	e.linesCleared = 0
	e.lastCleared = 0
	e.locks = 0
	e.current = e.spawn()
	e.next = e.spawn()
}

func (e *Engine) spawn() *Piece {
	p := NewRandomPiece(e.rng)
	p.X = e.spawnX
	return p
}

// Start begins gravity timing at now without touching the board.
func (e *Engine) Start(now time.Time) {
	e.lastDrop = now
}

// Restart discards all state and begins a new game at now.
func (e *Engine) Restart(now time.Time) {
	e.reset()
	e.lastDrop = now
	e.logger.Debug("game restarted", "current", e.current.Kind, "next", e.next.Kind)
}

// Tick applies gravity when more than one interval has passed since the
// last drop. It reports whether a gravity step was taken.
func (e *Engine) Tick(now time.Time) bool {
	if e.state != StateRunning {
		return false
	}
	if now.Sub(e.lastDrop) <= e.gravity {
		return false
	}
	e.Move(0, 1)
	e.lastDrop = now
	return true
}

// Move translates the current piece by (dx, dy) when the target is clear
// and reports whether it moved. A blocked downward move locks the piece;
// a blocked sideways move does nothing.
func (e *Engine) Move(dx, dy int) bool {
	if e.state != StateRunning {
		return false
	}
	if !e.board.Collides(*e.current, dx, dy) {
		e.current.X += dx
		e.current.Y += dy
		return true
	}
	if dy > 0 {
		e.lock()
	}
	return false
}

// MoveLeft shifts the current piece one column left.
func (e *Engine) MoveLeft() bool { return e.Move(-1, 0) }

// MoveRight shifts the current piece one column right.
func (e *Engine) MoveRight() bool { return e.Move(1, 0) }

// SoftDrop moves the current piece one row down, locking it if it has landed.
func (e *Engine) SoftDrop() bool { return e.Move(0, 1) }

// HardDrop drops the current piece until it locks and returns the number of
// rows it fell.
func (e *Engine) HardDrop() int {
	rows := 0
	for e.Move(0, 1) {
		rows++
	}
	return rows
}

// Rotate turns the current piece clockwise. When the rotated piece collides
// in place, the kick offsets are tried in order and the first clear one is
// applied. If none fits the rotation is undone and it reports false.
func (e *Engine) Rotate() bool {
	if e.state != StateRunning {
		return false
	}
	p := e.current
	original := p.Matrix
	p.Rotate()

	if !e.board.Collides(*p, 0, 0) {
		return true
	}
	for _, k := range e.kicks {
		if k == 0 {
			continue
		}
		if !e.board.Collides(*p, k, 0) {
			p.X += k
			return true
		}
	}
	p.Matrix = original
	return false
}

func (e *Engine) lock() {
	p := e.current
	skipped := e.board.Merge(*p)
	cleared := e.board.ClearLines()

	e.locks++
	e.lastCleared = cleared
	e.linesCleared += cleared

	e.current = e.next
	e.next = e.spawn()

	spawnBlocked := e.board.Collides(*e.current, 0, 0)
	ev := LockEvent{
		Kind:      p.Kind,
		X:         p.X,
		Y:         p.Y,
		Lines:     cleared,
		LockedOut: skipped > 0,
		GameOver:  skipped > 0 || spawnBlocked,
	}

	e.logger.Debug("piece locked",
		"kind", p.Kind,
		"x", p.X,
		"y", p.Y,
		"lines", cleared,
		"locked_out", ev.LockedOut,
		"next", e.current.Kind,
	)

	if ev.GameOver {
		e.state = StateGameOver
	}
	if e.onLock != nil {
		e.onLock(ev)
	}
	if ev.GameOver {
		e.logger.Info("game over",
			"lines", e.linesCleared,
			"locks", e.locks,
			"spawn_blocked", spawnBlocked,
			"locked_out", ev.LockedOut,
		)
		if e.onGameOver != nil {
			e.onGameOver()
		}
	}
}

// IsGameOver reports whether the engine is in its terminal state.
func (e *Engine) IsGameOver() bool {
	return e.state == StateGameOver
}

// State returns the lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// LinesCleared returns the total rows cleared since the last restart.
func (e *Engine) LinesCleared() int {
	return e.linesCleared
}

// LastCleared returns the rows cleared by the most recent lock.
func (e *Engine) LastCleared() int {
	return e.lastCleared
}

// Locks returns how many pieces have locked since the last restart.
func (e *Engine) Locks() int {
	return e.locks
}

// Current returns a copy of the falling piece.
func (e *Engine) Current() Piece {
	return *e.current
}

// Next returns a copy of the queued piece for preview.
func (e *Engine) Next() Piece {
	return *e.next
}

// Board exposes the board for rendering. Callers must not modify it while
// the game is running.
func (e *Engine) Board() *Board {
	return e.board
}

// Gravity returns the gravity interval.
func (e *Engine) Gravity() time.Duration {
	return e.gravity
}

// Kicks returns a copy of the wall-kick offsets in use.
func (e *Engine) Kicks() []int {
	return append([]int(nil), e.kicks...)
}
