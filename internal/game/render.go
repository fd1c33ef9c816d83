package game

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-suika/internal/core"
	"github.com/vovakirdan/tui-suika/internal/engine"
)

// Visual characters for rendering
const (
	FruitChar   = '█'
	AimingChar  = '▓'
	WallChar    = '│'
	FloorChar   = '═'
	CeilingChar = '╌'
	GuideChar   = '┊'
	NextChar    = '●'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() != g.runtime.ScreenW || dst.Height() != g.runtime.ScreenH {
		g.runtime.ScreenW, g.runtime.ScreenH = dst.Width(), dst.Height()
		g.view = newViewport(g.cfg, dst.Width(), dst.Height())
	}

	snap := g.session.Snapshot()
	g.drawPit(dst)
	if snap.Active != nil && snap.Active.Aiming() {
		g.drawGuide(dst, *snap.Active, snap.Settled)
	}
	for _, f := range snap.Settled {
		g.drawFruit(dst, f, FruitChar)
	}
	if snap.Active != nil {
		r := FruitChar
		if snap.Active.Aiming() {
			r = AimingChar
		}
		g.drawFruit(dst, *snap.Active, r)
	}
	g.drawSidebar(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.GameOver {
		g.drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  R restart", snap.Score))
	}
}

// drawPit renders the walls, the floor and the ceiling line.
func (g *Game) drawPit(dst *core.Screen) {
	v := g.view

	title := " SUIKA "
	dst.DrawTextColor(v.left+(v.cols+2-len(title))/2, 0, title, core.ColorGreen)

	dst.DrawVLine(v.left, v.top, v.rows, WallChar, core.ColorGray)
	dst.DrawVLine(v.right(), v.top, v.rows, WallChar, core.ColorGray)
	dst.DrawHLine(v.left, v.floor(), v.cols+2, FloorChar, core.ColorGray)
	dst.SetColor(v.left, v.floor(), '╚', core.ColorGray)
	dst.SetColor(v.right(), v.floor(), '╝', core.ColorGray)

	ceiling := core.ColorDarkGray
	if g.session.Danger() > 0 {
		ceiling = core.ColorBrightRed
	}
	_, row := v.cell(0, g.cfg.CeilingY)
	dst.DrawHLine(v.left+1, row, v.cols, CeilingChar, ceiling)
}

// drawGuide draws a dotted drop line from the aiming fruit down to the
// first settled fruit or the floor.
func (g *Game) drawGuide(dst *core.Screen, a engine.Fruit, settled []engine.Fruit) {
	v := g.view
	col, start := v.cell(a.X, a.Y+a.Radius)
	for row := start + 1; row < v.floor(); row++ {
		x, y := v.center(col, row)
		for _, f := range settled {
			if core.InCircle(x, y, f.X, f.Y, f.Radius) {
				return
			}
		}
		dst.SetColor(col, row, GuideChar, core.ColorDarkGray)
	}
}

// drawFruit fills every cell whose center lies inside the fruit's disc.
// A fruit smaller than one cell still marks the cell under its center.
func (g *Game) drawFruit(dst *core.Screen, f engine.Fruit, r rune) {
	v := g.view
	color := core.Color(g.catalog.MustTierAt(f.Tier).Color)

	c0, r0 := v.cell(f.X-f.Radius, f.Y-f.Radius)
	c1, r1 := v.cell(f.X+f.Radius, f.Y+f.Radius)
	c0, c1 = core.Max(c0, v.left+1), core.Min(c1, v.right()-1)
	r0, r1 = core.Max(r0, v.top), core.Min(r1, v.floor()-1)

	drawn := false
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			x, y := v.center(col, row)
			if core.InCircle(x, y, f.X, f.Y, f.Radius) {
				dst.SetColor(col, row, r, color)
				drawn = true
			}
		}
	}
	if !drawn {
		col, row := v.cell(f.X, f.Y)
		dst.SetColor(core.Clamp(col, v.left+1, v.right()-1), core.Clamp(row, v.top, v.floor()-1), r, color)
	}
}

// drawSidebar renders score, best, next fruit, danger and controls.
func (g *Game) drawSidebar(dst *core.Screen, snap engine.Snapshot) {
	x := g.view.right() + 3
	y := g.view.top

	scoreColor := core.ColorWhite
	if g.flash > 0 {
		scoreColor = core.ColorYellow
	}
	dst.DrawTextColor(x, y, fmt.Sprintf("Score  %d", snap.Score), scoreColor)
	best := core.Max(g.best, snap.Score)
	dst.DrawTextColor(x, y+1, fmt.Sprintf("Best   %d", best), core.ColorGray)

	next := g.catalog.MustTierAt(snap.Next)
	dst.DrawText(x, y+3, "Next")
	dst.SetColor(x+7, y+3, NextChar, core.Color(next.Color))
	dst.DrawText(x+9, y+3, next.Name)

	top := g.catalog.MustTierAt(snap.MaxTier)
	dst.DrawTextColor(x, y+4, fmt.Sprintf("Merges %d", snap.Merges), core.ColorGray)
	dst.DrawText(x, y+5, "Top")
	dst.SetColor(x+7, y+5, NextChar, core.Color(top.Color))
	dst.DrawText(x+9, y+5, top.Name)

	if danger := g.session.Danger(); danger > 0 && !snap.GameOver {
		const bar = 10
		filled := core.Clamp(core.Round(danger*bar), 1, bar)
		dst.DrawTextColor(x, y+7, "Danger "+strings.Repeat("▮", filled)+strings.Repeat("▯", bar-filled), core.ColorBrightRed)
	}

	if snap.GameOver && len(g.board) > 0 {
		dst.DrawTextColor(x, y+7, "TOP 10", core.ColorYellow)
		for i, line := range g.board {
			dst.DrawText(x, y+8+i, line)
		}
		return
	}

	help := []string{
		"←/→  aim",
		"space drop",
		"mouse aim+click",
		"p pause  r restart",
		"b menu   q quit",
	}
	hy := core.Max(y+9, g.view.floor()-len(help)+1)
	for i, line := range help {
		dst.DrawTextColor(x, hy+i, line, core.ColorDarkGray)
	}
}

// drawCenteredMessage draws a message box in the center of the pit.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	v := g.view

	// Calculate box dimensions
	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := core.Max(0, v.left+(v.cols+2-boxW)/2)
	boxY := v.top + (v.rows-boxH)/2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	// Draw text
	dst.DrawTextColor(boxX+(boxW-len([]rune(title)))/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}
