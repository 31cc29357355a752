package dodge

import (
	"fmt"

	"github.com/vovakirdan/dodge/internal/core"
)

// Menu texts.
const (
	Title      = "Dodge the Blocks"
	MenuTip    = "Click Start or press Enter • ESC quits"
	StartLabel = "Start"
)

// hudOffset is the top-left inset of the HUD line.
var hudOffset = core.V(10, 10)

// Render builds the frame's draw intents, back to front.
func (g *Game) Render() core.RenderList {
	var l core.RenderList
	l.Fill(core.BoxAt(g.field.Scale(0.5), g.field.X, g.field.Y), core.ColorBackground)

	if g.phase == PhaseMenu {
		g.renderMenu(&l)
		return l
	}

	for _, o := range g.store.Obstacles() {
		l.Rect(o.Box(), core.ColorObstacle)
	}
	l.Rect(g.store.Player().Box(), core.ColorPlayer)

	l.Text(hudOffset, g.HUD(), core.AnchorTopLeft, core.ColorWhite)
	return l
}

// HUD returns the status line for the current phase.
func (g *Game) HUD() string {
	secs := g.elapsed.Seconds()
	if g.phase == PhaseDead {
		return fmt.Sprintf("You crashed! Survived %.1fs. Press R to retry.", secs)
	}
	return fmt.Sprintf("Time: %.1fs   Enemies: %d", secs, len(g.store.Obstacles()))
}

func (g *Game) renderMenu(l *core.RenderList) {
	cx, cy := g.field.X/2, g.field.Y/2
	l.Text(core.V(cx, cy-40), Title, core.AnchorCenter, core.ColorWhite)
	l.Text(core.V(cx, cy), MenuTip, core.AnchorCenter, core.ColorTip)

	border := core.ColorWhite
	if g.hover {
		border = core.ColorButtonHover
	}
	btn := g.MenuButton()
	l.Rect(btn, core.ColorButton)
	l.Frame(btn, border)
	l.Text(btn.Center, StartLabel, core.AnchorCenter, border)
}
