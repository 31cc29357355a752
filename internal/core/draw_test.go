package core

import "testing"

func TestRenderListOrder(t *testing.T) {
	var l RenderList
	l.Fill(BoxAt(V(50, 50), 100, 100), ColorBackground)
	l.Rect(BoxAt(V(10, 10), 4, 4), ColorPlayer)
	l.Frame(BoxAt(V(20, 20), 4, 4), ColorWhite)
	l.Text(V(1, 1), "hello", AnchorTopLeft, ColorWhite)

	wantShapes := []Shape{ShapeFill, ShapeRect, ShapeFrame, ShapeText}
	if len(l) != len(wantShapes) {
		t.Fatalf("len = %d, expected %d", len(l), len(wantShapes))
	}
	for i, s := range wantShapes {
		if l[i].Shape != s {
			t.Errorf("intent %d shape = %v, expected %v", i, l[i].Shape, s)
		}
	}

	texts := l.Texts()
	if len(texts) != 1 || texts[0] != "hello" {
		t.Errorf("Texts() = %v, expected [hello]", texts)
	}
}
