package gui

import (
	"image/color"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

var (
	backgroundColor = color.RGBA{R: 16, G: 18, B: 24, A: 255}
	wellColor       = color.RGBA{R: 28, G: 31, B: 40, A: 255}
	gridColor       = color.RGBA{R: 40, G: 44, B: 56, A: 255}
	borderColor     = color.RGBA{R: 180, G: 180, B: 190, A: 255}
	overlayColor    = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// palette maps core colors to screen colors.
var palette = map[core.Color]color.RGBA{
	core.ColorRed:     {R: 230, G: 60, B: 60, A: 255},
	core.ColorGreen:   {R: 80, G: 200, B: 90, A: 255},
	core.ColorYellow:  {R: 240, G: 210, B: 60, A: 255},
	core.ColorBlue:    {R: 60, G: 110, B: 230, A: 255},
	core.ColorMagenta: {R: 170, G: 80, B: 210, A: 255},
	core.ColorCyan:    {R: 70, G: 210, B: 220, A: 255},
	core.ColorWhite:   {R: 235, G: 235, B: 235, A: 255},
	core.ColorOrange:  {R: 240, G: 150, B: 50, A: 255},
	core.ColorGray:    {R: 120, G: 120, B: 130, A: 255},
}

// cellColor returns the RGBA for a board cell color, falling back to white.
func cellColor(c core.Color) color.RGBA {
	if rgba, ok := palette[c]; ok {
		return rgba
	}
	return palette[core.ColorWhite]
}
