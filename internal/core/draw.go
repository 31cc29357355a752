package core

// Shape selects how a DrawIntent is presented.
type Shape uint8

const (
	ShapeFill  Shape = iota // Background color of the whole frame
	ShapeRect               // Solid rectangle
	ShapeFrame              // Rectangle outline
	ShapeText               // Text at Pos
)

// Anchor tells the presenter how text is positioned relative to Pos.
type Anchor uint8

const (
	AnchorTopLeft Anchor = iota
	AnchorCenter
)

// DrawIntent is an abstract "draw this at that position" request in world units.
// The simulation never touches pixels or cells; presenters consume intents.
type DrawIntent struct {
	Shape  Shape
	Box    Box
	Pos    Vec2
	Text   string
	Anchor Anchor
	Color  Color
}

// RenderList is the ordered list of intents for one frame, back to front.
type RenderList []DrawIntent

// Fill appends a background fill of box.
func (l *RenderList) Fill(box Box, c Color) {
	*l = append(*l, DrawIntent{Shape: ShapeFill, Box: box, Color: c})
}

// Rect appends a solid rectangle.
func (l *RenderList) Rect(box Box, c Color) {
	*l = append(*l, DrawIntent{Shape: ShapeRect, Box: box, Color: c})
}

// Frame appends a rectangle outline.
func (l *RenderList) Frame(box Box, c Color) {
	*l = append(*l, DrawIntent{Shape: ShapeFrame, Box: box, Color: c})
}

// Text appends a line of text.
func (l *RenderList) Text(pos Vec2, text string, anchor Anchor, c Color) {
	*l = append(*l, DrawIntent{Shape: ShapeText, Pos: pos, Text: text, Anchor: anchor, Color: c})
}

// Texts returns the text of every text intent, in order.
func (l RenderList) Texts() []string {
	var out []string
	for _, d := range l {
		if d.Shape == ShapeText {
			out = append(out, d.Text)
		}
	}
	return out
}
