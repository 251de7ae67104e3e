package tetris

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTestEngine(t *testing.T, w, h int, kinds ...Kind) *Engine {
	t.Helper()
	cfg := DefaultEngineConfig()
	cfg.Width = w
	cfg.Height = h
	cfg.Rand = kindsRand(kinds...)
	return NewEngine(cfg)
}

func TestNewEngineSpawnsCurrentAndNext(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindT, KindS)

	assert.Equal(t, StateRunning, e.State())
	assert.Equal(t, KindT, e.Current().Kind)
	assert.Equal(t, KindS, e.Next().Kind)
	assert.Equal(t, 3, e.Current().X)
	assert.Equal(t, -3, e.Current().Y)
	assert.Equal(t, DefaultGravity, e.Gravity())
	assert.Equal(t, DefaultKicks, e.Kicks())
}

func TestSpawnColumnDerivedFromWidth(t *testing.T) {
	e := newTestEngine(t, 16, 20, KindO)
	assert.Equal(t, 6, e.Current().X)
}

func TestZeroEngineConfig(t *testing.T) {
	e := NewEngine(EngineConfig{Rand: kindsRand(KindO)})

	assert.Equal(t, DefaultWidth, e.Board().Width())
	assert.Equal(t, DefaultHeight, e.Board().Height())
	assert.Equal(t, DefaultGravity, e.Gravity())
	assert.Equal(t, 0, e.Current().X, "spawn column 0 is used as given")
	assert.Empty(t, e.Kicks())
}

func TestTickGravity(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindO)
	t0 := time.Unix(100, 0)
	e.Start(t0)
	y := e.Current().Y

	assert.False(t, e.Tick(t0.Add(DefaultGravity)), "exactly one interval is not enough")
	assert.Equal(t, y, e.Current().Y)

	assert.True(t, e.Tick(t0.Add(DefaultGravity+time.Millisecond)))
	assert.Equal(t, y+1, e.Current().Y)

	assert.False(t, e.Tick(t0.Add(DefaultGravity+2*time.Millisecond)))
}

func TestMoveBlockedByWall(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindO)
	for range 10 {
		e.MoveLeft()
	}
	assert.Equal(t, 0, e.Current().X)
	assert.False(t, e.MoveLeft())
	assert.Equal(t, 0, e.Locks(), "sideways block never locks")

	for range 10 {
		e.MoveRight()
	}
	assert.Equal(t, 8, e.Current().X)
	assert.False(t, e.MoveRight())
}

func TestHardDropLocksAtFloor(t *testing.T) {
	var events []LockEvent
	cfg := DefaultEngineConfig()
	cfg.Rand = kindsRand(KindO)
	cfg.OnLock = func(ev LockEvent) { events = append(events, ev) }
	e := NewEngine(cfg)

	rows := e.HardDrop()
	assert.Equal(t, 20, rows)
	assert.Equal(t, 1, e.Locks())

	b := e.Board()
	for _, xy := range [][2]int{{3, 18}, {4, 18}, {3, 19}, {4, 19}} {
		assert.Equal(t, core.ColorYellow, b.At(xy[0], xy[1]))
	}

	require.Len(t, events, 1)
	assert.Equal(t, LockEvent{Kind: KindO, X: 3, Y: 18}, events[0])

	assert.Equal(t, -2, e.Current().Y, "next piece promoted and spawned above board")
}

func TestLockTakesOneBlockedStep(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindO)
	e.current.X, e.current.Y = 3, 17

	require.True(t, e.Move(0, 1), "row 19 is still free")
	assert.Equal(t, 18, e.Current().Y)
	assert.Equal(t, 0, e.Locks())

	assert.False(t, e.Move(0, 1))
	assert.Equal(t, 1, e.Locks())

	b := e.Board()
	assert.Equal(t, Shape(KindO).Color, b.At(3, 18))
	assert.Equal(t, Shape(KindO).Color, b.At(4, 19))
	assert.Equal(t, Empty, b.At(3, 17))
}

func TestSoftDropLocksWhenLanded(t *testing.T) {
	e := newTestEngine(t, 10, 4, KindO)
	for e.SoftDrop() {
	}
	assert.Equal(t, 1, e.Locks())
}

func TestLockClearsLines(t *testing.T) {
	e := newTestEngine(t, 4, 20, KindO)
	b := e.Board()
	for _, y := range []int{18, 19} {
		b.Set(2, y, core.ColorRed)
		b.Set(3, y, core.ColorRed)
	}
	b.Set(3, 17, core.ColorBlue)

	e.HardDrop()

	assert.Equal(t, 2, e.LastCleared())
	assert.Equal(t, 2, e.LinesCleared())
	assert.Equal(t, core.ColorBlue, b.At(3, 19))
	assert.False(t, e.IsGameOver())
}

func TestRotateInPlace(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindT)
	e.Move(0, 5)
	before := e.Current()

	require.True(t, e.Rotate())
	after := e.Current()
	assert.Equal(t, before.Matrix.Rotated(), after.Matrix)
	assert.Equal(t, before.X, after.X)
	assert.Equal(t, before.Y, after.Y)
}

func TestRotateOIsNoOpInEngine(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindO)
	before := e.Current()
	assert.True(t, e.Rotate())
	assert.Equal(t, before, e.Current())
}

// placeVerticalI puts a vertical I against the left wall at rows 5..8.
func placeVerticalI(e *Engine) {
	e.current.X = -1
	e.current.Y = 5
}

func TestRotateWallKick(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindI)
	placeVerticalI(e)
	require.False(t, e.Board().Collides(e.Current(), 0, 0))

	require.True(t, e.Rotate())
	assert.Equal(t, 0, e.Current().X, "kicked one column right")
	assert.Equal(t, Shape(KindI).Matrix.Rotated(), e.Current().Matrix)
}

func TestRotateRevertsWhenNoKickFits(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindI)
	placeVerticalI(e)
	e.Board().Set(2, 6, core.ColorRed)
	before := e.Current()

	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.Current())
}

func TestRotateWithoutKicksReverts(t *testing.T) {
	cfg := DefaultEngineConfig()
	cfg.Kicks = nil
	cfg.Rand = kindsRand(KindI)
	e := NewEngine(cfg)
	placeVerticalI(e)
	before := e.Current()

	assert.False(t, e.Rotate())
	assert.Equal(t, before, e.Current())
	assert.Empty(t, e.Kicks())
}

func TestGameOverWhenPieceLocksAboveBoard(t *testing.T) {
	overs := 0
	var last LockEvent
	cfg := DefaultEngineConfig()
	cfg.Height = 2
	cfg.Rand = kindsRand(KindO)
	cfg.OnLock = func(ev LockEvent) { last = ev }
	cfg.OnGameOver = func() { overs++ }
	e := NewEngine(cfg)

	e.HardDrop()
	require.False(t, e.IsGameOver(), "first piece fits exactly")

	e.HardDrop()
	assert.True(t, e.IsGameOver())
	assert.Equal(t, StateGameOver, e.State())
	assert.Equal(t, "game_over", e.State().String())
	assert.True(t, last.LockedOut)
	assert.True(t, last.GameOver)
	assert.Equal(t, 1, overs)

	locks := e.Locks()
	current := e.Current()
	assert.False(t, e.MoveLeft())
	assert.False(t, e.Rotate())
	assert.Equal(t, 0, e.HardDrop())
	assert.False(t, e.Tick(time.Now().Add(time.Hour)))
	assert.Equal(t, locks, e.Locks())
	assert.Equal(t, current, e.Current())
	assert.Equal(t, 1, overs)
}

func TestGameOverWhenSpawnBlocked(t *testing.T) {
	var last LockEvent
	cfg := DefaultEngineConfig()
	cfg.Rand = kindsRand(KindI, KindS)
	cfg.OnLock = func(ev LockEvent) { last = ev }
	e := NewEngine(cfg)

	// Spawned pieces start above the board, so park the queued piece on
	// row 0 over an occupied cell.
	e.next.Y = 0
	e.board.Set(5, 0, core.ColorRed)

	e.HardDrop()
	assert.True(t, e.IsGameOver())
	assert.False(t, last.LockedOut)
	assert.True(t, last.GameOver)
}

func TestRestart(t *testing.T) {
	e := newTestEngine(t, 10, 2, KindO)
	e.HardDrop()
	e.HardDrop()
	require.True(t, e.IsGameOver())

	e.Restart(time.Unix(5, 0))
	assert.False(t, e.IsGameOver())
	assert.Equal(t, 0, e.LinesCleared())
	assert.Equal(t, 0, e.Locks())
	for y := range e.Board().Height() {
		assert.Equal(t, make([]core.Color, 10), e.Board().Row(y))
	}
}

func TestCurrentReturnsCopy(t *testing.T) {
	e := newTestEngine(t, 10, 20, KindT)
	p := e.Current()
	p.X = 99
	assert.Equal(t, 3, e.Current().X)
}
