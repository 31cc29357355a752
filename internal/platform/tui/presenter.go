package tui

import (
	"math"

	"github.com/vovakirdan/dodge/internal/core"
)

// Presenter rasterizes world-space draw intents into a cell Screen.
// The whole playfield is stretched over cols x rows cells.
type Presenter struct {
	field core.Vec2
	cols  int
	rows  int
}

// NewPresenter creates a presenter for a playfield of the given size.
func NewPresenter(field core.Vec2, cols, rows int) *Presenter {
	p := &Presenter{field: field}
	p.Resize(cols, rows)
	return p
}

// Resize changes the target cell grid.
func (p *Presenter) Resize(cols, rows int) {
	p.cols = core.Max(cols, 1)
	p.rows = core.Max(rows, 1)
}

// scale returns cells per world unit on each axis.
func (p *Presenter) scale() (sx, sy float64) {
	return float64(p.cols) / p.field.X, float64(p.rows) / p.field.Y
}

// ToCell maps a world point to the cell that contains it.
func (p *Presenter) ToCell(v core.Vec2) (int, int) {
	sx, sy := p.scale()
	return int(math.Floor(v.X * sx)), int(math.Floor(v.Y * sy))
}

// ToWorld maps a cell to the world point at its center.
func (p *Presenter) ToWorld(cx, cy int) core.Vec2 {
	sx, sy := p.scale()
	return core.V((float64(cx)+0.5)/sx, (float64(cy)+0.5)/sy)
}

// CellRect maps a world box to the cells it covers. Any visible box covers
// at least one cell so small obstacles never vanish.
func (p *Presenter) CellRect(b core.Box) core.Rect {
	sx, sy := p.scale()
	x0 := int(math.Floor(b.Left() * sx))
	y0 := int(math.Floor(b.Top() * sy))
	x1 := int(math.Ceil(b.Right() * sx))
	y1 := int(math.Ceil(b.Bottom() * sy))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// Draw renders the intents into dst, back to front.
func (p *Presenter) Draw(dst *core.Screen, l core.RenderList) {
	dst.Clear()
	for _, d := range l {
		switch d.Shape {
		case core.ShapeFill:
			dst.Fill(d.Color)
		case core.ShapeRect:
			dst.FillRect(p.CellRect(d.Box), d.Color)
		case core.ShapeFrame:
			dst.DrawBox(p.CellRect(d.Box), d.Color)
		case core.ShapeText:
			cx, cy := p.ToCell(d.Pos)
			if d.Anchor == core.AnchorCenter {
				dst.DrawTextCentered(cx, cy, d.Text, d.Color)
			} else {
				dst.DrawText(cx, cy, d.Text, d.Color)
			}
		}
	}
}
