package hopper

import (
	"fmt"
	"math"

	"github.com/skyhop-dev/skyhop/internal/core"
)

// Visual characters for rendering
const (
	PlatformChar = '▀'
	HazardChar   = '▒'
	PelletChar   = '◦'
	DartRight    = '»'
	DartLeft     = '«'
)

// DrawSnapshot renders a frame snapshot into the screen buffer. World units
// map 1:1 to cells; coordinates are rounded to the nearest cell.
func DrawSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()

	for _, p := range snap.Platforms {
		x := int(math.Round(p.X))
		y := int(math.Round(p.Y))
		w := core.Max(1, int(math.Round(p.W)))
		if p.Kind == PlatformHazard {
			dst.DrawHLine(x, y, w, HazardChar, core.ColorBrightRed)
		} else {
			dst.DrawHLine(x, y, w, PlatformChar, core.ColorBrightGreen)
		}
	}

	for _, pe := range snap.Pellets {
		dst.SetColor(int(math.Round(pe.X)), int(math.Round(pe.Y)), PelletChar, core.ColorBrightYellow)
	}

	for _, d := range snap.Darts {
		ch := DartRight
		if d.VX < 0 {
			ch = DartLeft
		}
		dst.SetColor(int(math.Round(d.X)), int(math.Round(d.Y)), ch, core.ColorMagenta)
	}

	drawPlayer(dst, snap.Player)
	drawHUD(dst, snap)
	drawOverlay(dst, snap)
}

// drawPlayer picks a glyph by size so radius damage reads at a glance.
func drawPlayer(dst *core.Screen, p PlayerView) {
	x := int(math.Round(p.X))
	y := int(math.Round(p.Y))

	ch := '●'
	switch {
	case p.R < 0.6:
		ch = '•'
	case p.R > 1.3:
		ch = '◉'
	}
	dst.SetColor(x, y, ch, core.ColorBrightWhite)

	// Wide players spill into neighbor cells.
	if p.R > 1.3 {
		dst.SetColor(x-1, y, '(', core.ColorGray)
		dst.SetColor(x+1, y, ')', core.ColorGray)
	}
}

func drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColor(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)
	best := fmt.Sprintf(" Best: %d ", snap.Best)
	dst.DrawTextColor(dst.Width()-len(best)-2, 0, best, core.ColorGray)
}

func drawOverlay(dst *core.Screen, snap Snapshot) {
	switch {
	case snap.Phase == PhaseIdle:
		drawCenteredMessage(dst, "SKY HOPPER", "Press Space to start  |  A/D or mouse to steer")
	case snap.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case snap.Phase == PhaseGameOver:
		sub := fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score)
		if snap.NewBest {
			sub = fmt.Sprintf("NEW BEST: %d  |  Press R to restart", snap.Score)
		}
		drawCenteredMessage(dst, "GAME OVER", sub)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	dst.DrawTextCentered(boxY+1, title)
	dst.DrawTextCentered(boxY+3, subtitle)
}
