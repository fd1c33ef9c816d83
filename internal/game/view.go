package game

import (
	"math"

	"github.com/vovakirdan/tui-suika/internal/engine"
)

// Layout constants, in terminal cells.
const (
	hudRows      = 1  // Title and score row above the pit
	sidebarWidth = 22 // HUD column right of the pit
	minPitCols   = 8
	minPitRows   = 6
)

// viewport maps the world-unit pit onto terminal cells. Cells are roughly
// twice as tall as they are wide, so one row spans two columns of world.
type viewport struct {
	left  int     // Column of the left wall
	top   int     // Row of the first pit row
	cols  int     // Interior width in cells
	rows  int     // Interior height in cells
	scale float64 // World units per column; a row is 2*scale
}

func newViewport(cfg engine.Config, screenW, screenH int) viewport {
	maxCols := screenW - 2 - sidebarWidth
	maxRows := screenH - hudRows - 1 // Floor row
	if maxCols < minPitCols {
		maxCols = minPitCols
	}
	if maxRows < minPitRows {
		maxRows = minPitRows
	}

	scale := math.Max(cfg.PitWidth/float64(maxCols), cfg.PitHeight/(2*float64(maxRows)))
	return viewport{
		left:  0,
		top:   hudRows,
		cols:  cellsFor(cfg.PitWidth / scale),
		rows:  cellsFor(cfg.PitHeight / (2 * scale)),
		scale: scale,
	}
}

// right returns the column of the right wall.
func (v viewport) right() int {
	return v.left + v.cols + 1
}

// floor returns the row of the floor line.
func (v viewport) floor() int {
	return v.top + v.rows
}

// cell converts world coordinates to a screen cell.
func (v viewport) cell(x, y float64) (int, int) {
	return v.left + 1 + int(math.Floor(x/v.scale)), v.top + int(math.Floor(y/(2*v.scale)))
}

// center returns the world coordinates of the center of a screen cell.
func (v viewport) center(col, row int) (float64, float64) {
	x := (float64(col-v.left-1) + 0.5) * v.scale
	y := (float64(row-v.top) + 0.5) * 2 * v.scale
	return x, y
}

// worldX converts a pointer column into a world x. Columns outside the pit
// map past the walls; the engine clamps them.
func (v viewport) worldX(col int) float64 {
	x, _ := v.center(col, v.top)
	return x
}

// cellsFor rounds a fractional cell count up, ignoring float noise from the
// scale division.
func cellsFor(n float64) int {
	return int(math.Ceil(n - 1e-9))
}
