package scene

import (
	"math"
	"testing"

	"github.com/pensool/pensool"
	"github.com/pensool/pensool/render"
)

func TestPickReturnsGlyphOwner(t *testing.T) {
	f := newFixture()
	rect := f.addRect(0, 0)
	f.draw()

	tests := []struct {
		name string
		p    pensool.Vec2
		want *Node
	}{
		{"on edge", pensool.V2(50, 0), rect},
		{"within pick pen", pensool.V2(50, 1), rect},
		{"left edge", pensool.V2(-1.5, 40), rect},
		{"interior", pensool.V2(50, 50), nil},
		{"outside pick pen", pensool.V2(50, 3), nil},
		{"far away", pensool.V2(300, 300), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := f.view.Pick(tt.p); got != tt.want {
				t.Errorf("Pick(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
	if hit := f.view.Pick(pensool.V2(50, 0)); hit.Parent() != f.view.Root() {
		t.Error("picked node should belong to the root")
	}
}

func TestPickPenWidthOption(t *testing.T) {
	f := newFixture(WithPickPenWidth(10))
	rect := f.addRect(0, 0)
	f.draw()
	if got := f.view.Pick(pensool.V2(50, 4)); got != rect {
		t.Errorf("Pick with wide pen = %v, want rect", got)
	}
}

func TestPickOrder(t *testing.T) {
	f := newFixture()
	first := f.addRect(0, 0)
	second := f.addRect(0, 0)
	f.draw()

	p := pensool.V2(0, 50)
	if got := f.view.Pick(p); got != first {
		t.Errorf("Pick = %v, want the first appended", got)
	}
	if got := f.view.PickTopmost(p); got != second {
		t.Errorf("PickTopmost = %v, want the last appended", got)
	}
}

func TestPickThroughNestedTransforms(t *testing.T) {
	f := newFixture()
	g := NewGroup()
	f.view.Root().Append(g)
	g.MoveAbsolute(pensool.V2(100, 100))
	rect := NewRect()
	g.Append(rect)
	rect.SetFromRect(0, 0, 50, 50)
	f.draw()

	if got := f.view.Pick(pensool.V2(125, 100)); got != rect {
		t.Errorf("Pick = %v, want nested rect", got)
	}
	if got := f.view.Pick(pensool.V2(25, 0)); got != nil {
		t.Errorf("Pick at untransformed position = %v, want nil", got)
	}

	// Picking a subtree walked before works with a context carrying the
	// ancestors' transforms.
	ctx := render.NewCanvas(nil)
	ctx.SetMatrix(f.view.Root().Transform())
	if got := g.Pick(ctx, pensool.V2(150, 125)); got != rect {
		t.Errorf("g.Pick = %v, want rect", got)
	}
}

func TestHitTestFlavors(t *testing.T) {
	f := newFixture()
	rect := f.addRect(0, 0)
	f.draw()

	tests := []struct {
		flavor HitFlavor
		p      pensool.Vec2
		want   bool
	}{
		{HitPath, pensool.V2(50, 0.4), true},
		{HitPath, pensool.V2(50, 1), false},
		{HitStroke, pensool.V2(50, 0.4), true},
		{HitStroke, pensool.V2(50, 1.5), false},
		{HitFill, pensool.V2(50, 50), true},
		{HitFill, pensool.V2(150, 50), false},
	}
	for _, tt := range tests {
		if got := rect.HitTest(tt.flavor, tt.p); got != tt.want {
			t.Errorf("HitTest(%v, %v) = %v, want %v", tt.flavor, tt.p, got, tt.want)
		}
	}

	rect.SetPenWidth(4)
	if !rect.HitTest(HitStroke, pensool.V2(50, 1.5)) {
		t.Error("HitStroke should follow the node's pen width")
	}
	if rect.HitTest(HitPath, pensool.V2(50, 1.5)) {
		t.Error("HitPath should ignore the node's pen width")
	}
	if !f.view.Root().HitTest(HitFill, pensool.V2(50, 50)) {
		t.Error("group HitFill should test the union of its children")
	}
}

func TestHitFlavorString(t *testing.T) {
	if HitPath.String() != "Path" || HitStroke.String() != "Stroke" || HitFill.String() != "Fill" {
		t.Error("unexpected HitFlavor names")
	}
	if HitFlavor(9).String() != "Unknown" {
		t.Error("out of range flavor should be Unknown")
	}
}

func TestOrthogonalRect(t *testing.T) {
	f := newFixture()
	rect := f.addRect(0, 0)
	f.draw()

	tests := []struct {
		p    pensool.Vec2
		want pensool.Vec2
	}{
		{pensool.V2(50, -5), pensool.V2(0, -1)},
		{pensool.V2(50, 110), pensool.V2(0, 1)},
		{pensool.V2(-5, 50), pensool.V2(-1, 0)},
		{pensool.V2(110, 50), pensool.V2(1, 0)},
	}
	for _, tt := range tests {
		if got := rect.Orthogonal(tt.p); got != tt.want {
			t.Errorf("Orthogonal(%v) = %v, want %v", tt.p, got, tt.want)
		}
		// A group with a single child defers to it.
		if got := f.view.Root().Orthogonal(tt.p); got != tt.want {
			t.Errorf("root Orthogonal(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestOrthogonalRotatedRect(t *testing.T) {
	f := newFixture()
	rect := NewRect()
	f.view.Root().Append(rect)
	rect.SetTransform(pensool.V2(200, 100), pensool.V2(100, 100), math.Pi/4)
	f.draw()

	frame := rect.Accumulated()
	r := math.Sqrt2 / 2
	tests := []struct {
		name  string
		local pensool.Vec2
		want  pensool.Vec2
	}{
		{"top", pensool.V2(0.5, -0.1), pensool.V2(r, -r)},
		{"right", pensool.V2(1.1, 0.5), pensool.V2(r, r)},
		{"bottom", pensool.V2(0.5, 1.1), pensool.V2(-r, r)},
		{"left", pensool.V2(-0.1, 0.5), pensool.V2(-r, -r)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := frame.TransformPoint(tt.local)
			if got := rect.Orthogonal(p); !got.Approx(tt.want, 1e-9) {
				t.Errorf("Orthogonal(%v) = %v, want %v", p, got, tt.want)
			}
		})
	}
}

func TestOrthogonalStretchedRect(t *testing.T) {
	f := newFixture()
	rect := NewRect()
	f.view.Root().Append(rect)
	rect.SetTransform(pensool.V2(0, 0), pensool.V2(200, 50), math.Pi/2)
	f.draw()

	// Rotation comes first, so the stretched box is still axis aligned
	// and its sides keep axis-aligned normals.
	frame := rect.Accumulated()
	p := frame.TransformPoint(pensool.V2(0.5, -0.1))
	got := rect.Orthogonal(p)
	want := frame.TransformDistance(pensool.V2(0, -1)).Normalize()
	if !got.Approx(want, 1e-9) {
		t.Errorf("Orthogonal(%v) = %v, want %v", p, got, want)
	}
}

func TestOrthogonalByKind(t *testing.T) {
	f := newFixture()
	root := f.view.Root()

	line := NewLine()
	root.Append(line)
	line.SetTransform(pensool.V2(0, 0), pensool.V2(100, 100), 0)

	circle := NewCircle()
	root.Append(circle)
	circle.SetFromRect(0, 0, 100, 100)

	point := NewPoint()
	root.Append(point)
	f.draw()

	if got := line.Orthogonal(pensool.V2(30, 10)); !got.Approx(pensool.V2(0, -1), 1e-12) {
		t.Errorf("line Orthogonal = %v, want (0,-1)", got)
	}
	if got := circle.Orthogonal(pensool.V2(150, 50)); !got.Approx(pensool.V2(1, 0), 1e-12) {
		t.Errorf("circle Orthogonal = %v, want (1,0)", got)
	}
	if got := circle.Orthogonal(pensool.V2(50, 50)); !got.IsZero() {
		t.Errorf("circle Orthogonal at center = %v, want zero", got)
	}
	if got := point.Orthogonal(pensool.V2(5, 5)); got != pensool.V2(0, 1) {
		t.Errorf("point Orthogonal = %v, want (0,1)", got)
	}
	if got := NewGroup().Orthogonal(pensool.V2(5, 5)); got != pensool.V2(0, 1) {
		t.Errorf("empty group Orthogonal = %v, want (0,1)", got)
	}
}

func TestOrthogonalRotatedLine(t *testing.T) {
	f := newFixture()
	line := NewLine()
	f.view.Root().Append(line)
	line.SetTransform(pensool.V2(0, 0), pensool.V2(100, 100), math.Pi/2)
	f.draw()

	if got := line.Orthogonal(pensool.V2(0, 50)); !got.Approx(pensool.V2(1, 0), 1e-12) {
		t.Errorf("Orthogonal = %v, want (1,0)", got)
	}
}

func TestOrthogonalGroupUsesBoundingBox(t *testing.T) {
	f := newFixture()
	f.addRect(0, 0)
	f.addRect(200, 0)
	f.draw()

	if got := f.view.Root().Orthogonal(pensool.V2(150, -20)); got != pensool.V2(0, -1) {
		t.Errorf("Orthogonal = %v, want (0,-1)", got)
	}
	if got := f.view.Root().Orthogonal(pensool.V2(320, 50)); got != pensool.V2(1, 0) {
		t.Errorf("Orthogonal = %v, want (1,0)", got)
	}
}

type fakeControls struct {
	calls []bool
	last  *Node
}

func (c *fakeControls) RouseFeedback(n *Node, on bool) {
	c.last = n
	c.calls = append(c.calls, on)
}

func TestActivateAssociatedControls(t *testing.T) {
	ctl := &fakeControls{}
	f := newFixture(WithControls(ctl))
	line := NewLine()
	f.view.Root().Append(line)

	line.ActivateAssociatedControls(true)
	line.ActivateAssociatedControls(false)
	if ctl.last != line || len(ctl.calls) != 2 || !ctl.calls[0] || ctl.calls[1] {
		t.Errorf("controls got %v for %v", ctl.calls, ctl.last)
	}

	// Without a view nothing happens.
	NewLine().ActivateAssociatedControls(true)
	if len(ctl.calls) != 2 {
		t.Error("detached node reached the view's controls")
	}
}

func TestHandleSets(t *testing.T) {
	lh := HandlesFor(NewLine())
	if lh == nil || lh.Len() != 2 {
		t.Fatalf("line handles = %v, want two points", lh)
	}
	for i := range lh.Len() {
		h := lh.Child(i)
		if k, _ := h.Kind(); k != KindPoint || h.Style().PenWidth != HandlePenWidth {
			t.Errorf("handle %d: kind %v pen %v", i, k, h.Style().PenWidth)
		}
	}
	if got := lh.Child(1).Translation(); got != pensool.V2(1, 0) {
		t.Errorf("far handle at %v, want (1,0)", got)
	}

	ch := HandlesFor(NewCircle())
	if ch == nil || ch.Len() != 1 || math.Abs(ch.Child(0).Rotation()-math.Pi/4) > 1e-12 {
		t.Errorf("circle handles = %v", ch)
	}
	if HandlesFor(NewRect()) != nil || HandlesFor(NewGroup()) != nil {
		t.Error("rects and groups have no handles")
	}
}

func TestWantsBoundingBox(t *testing.T) {
	pair := NewGroup()
	pair.Append(NewRect())
	single := NewGroup()
	single.Append(NewRect())
	pair.Append(NewRect())

	tests := []struct {
		name string
		n    *Node
		want bool
	}{
		{"line", NewLine(), true},
		{"circle", NewCircle(), true},
		{"rect", NewRect(), false},
		{"group of two", pair, true},
		{"group of one", single, false},
	}
	for _, tt := range tests {
		if got := WantsBoundingBox(tt.n); got != tt.want {
			t.Errorf("WantsBoundingBox(%s) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestHandlesPickInNodeFrame(t *testing.T) {
	f := newFixture()
	line := NewLine()
	f.view.Root().Append(line)
	line.SetTransform(pensool.V2(20, 20), pensool.V2(100, 100), 0)
	f.draw()

	handles := HandlesFor(line)
	ctx := render.NewCanvas(nil)
	ctx.SetMatrix(line.Accumulated())
	if b := handles.Draw(ctx); b.IsNull() {
		t.Fatal("handles drew nothing")
	}

	ctx = render.NewCanvas(nil)
	ctx.SetMatrix(line.Accumulated())
	if got := handles.Pick(ctx, pensool.V2(120, 20)); got != handles.Child(1) {
		t.Errorf("Pick far end = %v, want far handle", got)
	}
	ctx = render.NewCanvas(nil)
	ctx.SetMatrix(line.Accumulated())
	if got := handles.Pick(ctx, pensool.V2(20, 20)); got != handles.Child(0) {
		t.Errorf("Pick near end = %v, want near handle", got)
	}
}
