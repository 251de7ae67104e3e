package tetris

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// isolate keeps the user's own config files out of the test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	SetConfigPath("")
	SetDifficultyPreset("")
	t.Cleanup(func() {
		SetConfigPath("")
		SetDifficultyPreset("")
	})
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	isolate(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed})
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, 12345)
	g2 := newTestGame(t, 12345)

	script := map[int]core.Action{
		10:  core.ActionLeft,
		20:  core.ActionRotate,
		40:  core.ActionHardDrop,
		70:  core.ActionRight,
		71:  core.ActionRight,
		90:  core.ActionSoftDrop,
		120: core.ActionHardDrop,
		200: core.ActionHardDrop,
	}

	for i := range 400 {
		in := core.NewInputFrame()
		if a, ok := script[i]; ok {
			in.Set(a)
		}
		g1.Step(in)
		g2.Step(in)
	}

	assert.Equal(t, g1.Snapshot(), g2.Snapshot())
	assert.Equal(t, uint64(400), g1.Snapshot().Tick)
}

func TestGravityFollowsVirtualClock(t *testing.T) {
	g := newTestGame(t, 1)
	y := g.Snapshot().Y

	// 1/60s per tick: 30 ticks stay under 500ms, the 31st passes it.
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, y, g.Snapshot().Y)

	g.Step(core.NewInputFrame())
	assert.Equal(t, y+1, g.Snapshot().Y)
}

func TestPauseFreezesGame(t *testing.T) {
	g := newTestGame(t, 1)
	y := g.Snapshot().Y

	res := g.Step(frame(core.ActionPause))
	require.True(t, res.State.Paused)

	for range 100 {
		g.Step(frame(core.ActionHardDrop, core.ActionLeft))
	}
	assert.Equal(t, y, g.Snapshot().Y)
	assert.Equal(t, 0, g.Snapshot().Locks)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	for range 30 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, y, g.Snapshot().Y, "gravity restarts from the moment of resume")
}

func TestHardDropReportsLock(t *testing.T) {
	g := newTestGame(t, 7)

	res := g.Step(frame(core.ActionHardDrop))
	assert.True(t, res.Locked)
	assert.Equal(t, 0, res.Cleared)
	assert.Equal(t, 1, g.Snapshot().Locks)

	res = g.Step(core.NewInputFrame())
	assert.False(t, res.Locked)
}

func TestRotateAndMoveSameTick(t *testing.T) {
	g := newTestGame(t, 3)
	before := g.Snapshot()

	g.Step(frame(core.ActionRotate, core.ActionLeft))
	after := g.Snapshot()
	assert.Equal(t, before.X-1, after.X)
}

func TestGameOverAndRestart(t *testing.T) {
	g := newTestGame(t, 99)

	for range 200 {
		if g.State().GameOver {
			break
		}
		g.Step(frame(core.ActionHardDrop))
	}
	require.True(t, g.State().GameOver)
	assert.Equal(t, StateGameOver, g.Snapshot().State)

	before := g.Snapshot()
	res := g.Step(frame(core.ActionLeft, core.ActionHardDrop, core.ActionPause))
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Paused, "pause is ignored after game over")
	after := g.Snapshot()
	before.Tick = after.Tick
	assert.Equal(t, before, after)

	res = g.Step(frame(core.ActionRestart))
	assert.False(t, res.State.GameOver)
	assert.Equal(t, 0, g.Snapshot().Locks)
	assert.Equal(t, DefaultWidth*DefaultHeight, strings.Count(g.Snapshot().Board, "."))
}

func TestModesAndRotationRules(t *testing.T) {
	isolate(t)
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}

	g := New()
	g.Reset(cfg)
	assert.Equal(t, "tetris", g.ID())
	assert.Equal(t, "Tetris", g.Title())
	assert.Equal(t, DefaultKicks, g.Engine().Kicks())

	c := NewClassic()
	c.Reset(cfg)
	assert.Equal(t, "tetris_classic", c.ID())
	assert.Equal(t, "Tetris (Classic Rotation)", c.Title())
	assert.Empty(t, c.Engine().Kicks())
	assert.Equal(t, ModeClassic, c.Snapshot().Mode)
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_classic"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestDifficultyPreset(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("hard")

	g := New()
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 250*time.Millisecond, g.Engine().Gravity())

	SetDifficultyPreset("bogus")
	g.Reset(core.DefaultConfig())
	assert.Equal(t, DefaultGravity, g.Engine().Gravity())
}

func TestConfigPath(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "tetris.yaml")
	data := "board:\n  width: 12\n  height: 16\nspawn:\n  column: 40\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	SetConfigPath(path)

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	assert.Equal(t, 12, g.Engine().Board().Width())
	assert.Equal(t, 16, g.Engine().Board().Height())
	assert.Equal(t, 8, g.Engine().Current().X, "spawn column clamped inside the board")
}

func TestBadConfigPathFallsBack(t *testing.T) {
	isolate(t)
	SetConfigPath(filepath.Join(t.TempDir(), "missing.yaml"))

	g := New()
	g.Reset(core.DefaultConfig())
	assert.Equal(t, DefaultWidth, g.Engine().Board().Width())
}

func TestWindowTooSmall(t *testing.T) {
	isolate(t)
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})

	y := g.Snapshot().Y
	for range 60 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, y, g.Snapshot().Y)

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.String(), "Window too small")

	g.Resize(80, 24)
	for range 31 {
		g.Step(core.NewInputFrame())
	}
	assert.Equal(t, y+1, g.Snapshot().Y)
}

func TestRender(t *testing.T) {
	g := newTestGame(t, 5)
	for range 40 {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	assert.Contains(t, out, "Tetris")
	assert.Contains(t, out, "NEXT")
	assert.Contains(t, out, "LINES")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, string(filledRune))

	minW, _ := MinScreenSize(g.Engine().Board())
	left := (80 - minW) / 2
	cur := g.Engine().Current()
	for x, y := range cur.BoardCells {
		if y < 0 {
			continue
		}
		cell := screen.GetCell(left+1+x*cellW, 1+1+y)
		assert.Equal(t, filledRune, cell.Rune)
		assert.Equal(t, cur.Color, cell.Color)
	}
}

func TestRenderOverlays(t *testing.T) {
	g := newTestGame(t, 5)
	screen := core.NewScreen(80, 24)

	g.Step(frame(core.ActionPause))
	g.Render(screen)
	assert.Contains(t, screen.String(), "Paused")

	g.Step(frame(core.ActionPause))
	for range 200 {
		if g.State().GameOver {
			break
		}
		g.Step(frame(core.ActionHardDrop))
	}
	g.Render(screen)
	out := screen.String()
	assert.Contains(t, out, "Game Over")
	assert.Contains(t, out, "R to restart")
}

func TestInstanceDifficultyOverridesPackagePreset(t *testing.T) {
	isolate(t)
	SetDifficultyPreset("hard")

	g := New()
	g.SetDifficulty("easy")
	g.Reset(core.DefaultConfig())
	assert.Equal(t, 800*time.Millisecond, g.Engine().Gravity())

	other := New()
	other.Reset(core.DefaultConfig())
	assert.Equal(t, 250*time.Millisecond, other.Engine().Gravity())
}

func TestNewEngineConfig(t *testing.T) {
	cfg := config.DefaultTetrisConfig()
	cfg.Gravity.IntervalMS = 120
	cfg.Spawn.Column = -1

	ec := NewEngineConfig(cfg, ModeKicks)
	assert.Equal(t, 120*time.Millisecond, ec.Gravity)
	assert.Equal(t, -1, ec.SpawnColumn)
	assert.Equal(t, []int{1, -1, 2, -2}, ec.Kicks)

	classic := NewEngineConfig(cfg, ModeClassic)
	assert.Nil(t, classic.Kicks)
}
