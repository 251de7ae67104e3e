// Package gui is an ebiten front end for the falling-block engine. It reads
// the keyboard, the mouse and touch screens, and draws the board with plain
// rectangles so it runs the same on desktop, mobile and WebAssembly.
package gui

import (
	"fmt"
	"image/color"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/gesture"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Layout in logical pixels.
const (
	CellSize = 24
	margin   = 16
	panelW   = 6 * CellSize
)

// Key repeat for held movement keys, in ticks at the default 60 TPS.
const (
	repeatDelay    = 10
	repeatInterval = 3
)

// Options configures an App.
type Options struct {
	Config config.TetrisConfig
	Mode   tetris.Mode
	Seed   int64 // 0 selects a time-based seed
	Logger *log.Logger
}

// App implements ebiten.Game around a tetris.Engine driven by wall-clock time.
type App struct {
	engine   *tetris.Engine
	gestures *gesture.Recognizer
	logger   *log.Logger
	now      func() time.Time

	touchID  ebiten.TouchID
	touching bool
	paused   bool

	width, height int
}

// NewApp creates the app and starts the first game.
func NewApp(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ec := tetris.NewEngineConfig(opts.Config, opts.Mode)
	ec.Rand = rand.New(rand.NewSource(seed))
	ec.Logger = logger

	a := &App{
		engine:   tetris.NewEngine(ec),
		gestures: gesture.New(),
		logger:   logger,
		now:      time.Now,
	}
	b := a.engine.Board()
	a.width = margin*3 + b.Width()*CellSize + panelW
	a.height = margin*2 + b.Height()*CellSize

	a.engine.Start(a.now())
	logger.Info("gui game started", "mode", opts.Mode, "seed", seed)
	return a
}

// WindowSize returns the logical screen size in pixels.
func (a *App) WindowSize() (int, int) {
	return a.width, a.height
}

// Update reads input and advances the engine by wall-clock time.
func (a *App) Update() error {
	now := a.now()

	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if a.engine.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			a.engine.Restart(now)
			a.gestures.Reset()
		}
		a.readPointer(now, true)
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.paused = !a.paused
		if !a.paused {
			a.engine.Start(now)
		}
	}
	if a.paused {
		return nil
	}

	for _, act := range a.readKeys() {
		a.apply(act)
	}
	a.readPointer(now, false)
	if act := a.gestures.Poll(now); act != core.ActionNone {
		a.apply(act)
	}

	a.engine.Tick(now)
	return nil
}

// readKeys returns the actions triggered by the keyboard this tick.
func (a *App) readKeys() []core.Action {
	var acts []core.Action
	if justPressedAny(ebiten.KeyUp, ebiten.KeyW, ebiten.KeyK, ebiten.KeyX) {
		acts = append(acts, core.ActionRotate)
	}
	if repeatingAny(ebiten.KeyLeft, ebiten.KeyA, ebiten.KeyH) {
		acts = append(acts, core.ActionLeft)
	}
	if repeatingAny(ebiten.KeyRight, ebiten.KeyD, ebiten.KeyL) {
		acts = append(acts, core.ActionRight)
	}
	if repeatingAny(ebiten.KeyDown, ebiten.KeyS, ebiten.KeyJ) {
		acts = append(acts, core.ActionSoftDrop)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		acts = append(acts, core.ActionHardDrop)
	}
	return acts
}

// readPointer feeds the first touch, or the left mouse button when no touch
// is active, into the gesture recognizer. After game over any tap restarts.
func (a *App) readPointer(now time.Time, restartOnTap bool) {
	if a.touching {
		for _, id := range inpututil.AppendJustReleasedTouchIDs(nil) {
			if id != a.touchID {
				continue
			}
			a.touching = false
			x, y := inpututil.TouchPositionInPreviousTick(id)
			a.release(now, x, y, restartOnTap)
		}
	} else if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		a.touchID = ids[0]
		a.touching = true
		x, y := ebiten.TouchPosition(a.touchID)
		a.gestures.Begin(x, y, now)
	}
	if a.touching {
		return
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if core.NewRect(0, 0, a.width, a.height).Contains(x, y) {
			a.gestures.Begin(x, y, now)
		}
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		a.release(now, x, y, restartOnTap)
	}
}

func (a *App) release(now time.Time, x, y int, restartOnTap bool) {
	if restartOnTap {
		a.engine.Restart(now)
		a.gestures.Reset()
		return
	}
	if act := a.gestures.End(x, y, now); act != core.ActionNone {
		a.apply(act)
	}
}

// apply runs one logical command against the engine.
func (a *App) apply(act core.Action) {
	switch act {
	case core.ActionLeft:
		a.engine.MoveLeft()
	case core.ActionRight:
		a.engine.MoveRight()
	case core.ActionSoftDrop:
		a.engine.SoftDrop()
	case core.ActionRotate:
		a.engine.Rotate()
	case core.ActionHardDrop:
		a.engine.HardDrop()
	}
}

func justPressedAny(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

func repeatingAny(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if shouldRepeat(inpututil.KeyPressDuration(k)) {
			return true
		}
	}
	return false
}

// shouldRepeat reports whether a key held for d ticks fires this tick.
func shouldRepeat(d int) bool {
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// Draw renders the well, pieces, side panel and overlays.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	b := a.engine.Board()
	wx, wy := float32(margin), float32(margin)
	ww, wh := float32(b.Width()*CellSize), float32(b.Height()*CellSize)

	vector.FillRect(screen, wx, wy, ww, wh, wellColor, false)
	for y := range b.Height() {
		for x := range b.Width() {
			if c := b.At(x, y); c != tetris.Empty {
				drawCell(screen, wx, wy, x, y, cellColor(c))
			} else {
				vector.StrokeRect(screen, wx+float32(x*CellSize), wy+float32(y*CellSize),
					CellSize, CellSize, 1, gridColor, false)
			}
		}
	}

	if !a.engine.IsGameOver() {
		cur := a.engine.Current()
		for x, y := range cur.BoardCells {
			if y >= 0 {
				drawCell(screen, wx, wy, x, y, cellColor(cur.Color))
			}
		}
	}
	vector.StrokeRect(screen, wx-1, wy-1, ww+2, wh+2, 2, borderColor, false)

	a.drawPanel(screen, int(wx+ww)+margin, int(wy))

	switch {
	case a.engine.IsGameOver():
		a.drawOverlay(screen, "GAME OVER", "tap or press R")
	case a.paused:
		a.drawOverlay(screen, "PAUSED", "press P")
	}
}

func drawCell(screen *ebiten.Image, ox, oy float32, x, y int, c color.Color) {
	px := ox + float32(x*CellSize)
	py := oy + float32(y*CellSize)
	vector.FillRect(screen, px+1, py+1, CellSize-2, CellSize-2, c, false)
}

func (a *App) drawPanel(screen *ebiten.Image, x, y int) {
	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)

	next := a.engine.Next()
	size := float32(CellSize * 3 / 4)
	for r, c := range next.Matrix.Cells() {
		px := float32(x) + float32(c)*size
		py := float32(y+20) + float32(r)*size
		vector.FillRect(screen, px+1, py+1, size-2, size-2, cellColor(next.Color), false)
	}

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LINES  %d", a.engine.LinesCleared()), x, y+120)
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("PIECES %d", a.engine.Locks()), x, y+140)
}

func (a *App) drawOverlay(screen *ebiten.Image, title, hint string) {
	vector.FillRect(screen, 0, float32(a.height/2-30), float32(a.width), 60, overlayColor, false)
	ebitenutil.DebugPrintAt(screen, title, a.width/2-len(title)*3, a.height/2-16)
	ebitenutil.DebugPrintAt(screen, hint, a.width/2-len(hint)*3, a.height/2+2)
}

// Layout reports a fixed logical size; ebiten scales it to the window.
func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}
