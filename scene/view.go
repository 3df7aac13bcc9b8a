package scene

import (
	"github.com/pensool/pensool"
	"github.com/pensool/pensool/damage"
	"github.com/pensool/pensool/render"
	"github.com/pensool/pensool/text"
)

// Default tunables of a View.
const (
	// DefaultPickPenWidth is the pen width, in device pixels, primitives
	// are picked with.
	DefaultPickPenWidth = 4

	// DefaultZoomRate is the fraction one zoom step scales by.
	DefaultZoomRate = 0.5
)

// Controls shows and hides the controls associated with a focused node,
// such as its handles and bounding box.
type Controls interface {
	RouseFeedback(n *Node, on bool)
}

// View owns a scene tree and the collaborators its nodes report to. The
// root node's transform is the viewing transform.
type View struct {
	root *Node

	sink         damage.Sink
	newContext   render.Factory
	measurer     *text.Measurer
	controls     Controls
	pickPenWidth float64
	zoomRate     float64
}

// Option configures a View.
type Option func(*View)

// WithSink sends repaint requests to s.
func WithSink(s damage.Sink) Option {
	return func(v *View) {
		v.sink = s
	}
}

// WithContextFactory sets the factory of contexts used for queries made
// outside a walk.
func WithContextFactory(f render.Factory) Option {
	return func(v *View) {
		v.newContext = f
	}
}

// WithMeasurer sets the text measurer of text glyphs.
func WithMeasurer(m *text.Measurer) Option {
	return func(v *View) {
		v.measurer = m
	}
}

// WithControls sets the receiver of associated-control activation.
func WithControls(c Controls) Option {
	return func(v *View) {
		v.controls = c
	}
}

// WithPickPenWidth sets the pick pen width in device pixels.
func WithPickPenWidth(w float64) Option {
	return func(v *View) {
		if w > 0 {
			v.pickPenWidth = w
		}
	}
}

// WithZoomRate sets the fraction one zoom step scales by.
func WithZoomRate(r float64) Option {
	return func(v *View) {
		if r > 0 && r < 1 {
			v.zoomRate = r
		}
	}
}

// NewView creates a view with an empty root group.
func NewView(opts ...Option) *View {
	v := &View{
		sink:         damage.Discard,
		newContext:   render.MeasureFactory(),
		pickPenWidth: DefaultPickPenWidth,
		zoomRate:     DefaultZoomRate,
	}
	for _, opt := range opts {
		opt(v)
	}
	v.root = NewGroup()
	v.root.view = v
	return v
}

// Root returns the root group.
func (v *View) Root() *Node {
	return v.root
}

// SetControls replaces the receiver of associated-control activation.
func (v *View) SetControls(c Controls) {
	v.controls = c
}

// Invalidate forwards a repaint request to the view's sink.
func (v *View) Invalidate(b pensool.Bounds) {
	v.sink.Invalidate(b)
}

// NewContext returns a fresh context from the view's factory.
func (v *View) NewContext() render.Context {
	return v.newContext()
}

// Draw draws the whole tree into ctx.
func (v *View) Draw(ctx render.Context) pensool.Bounds {
	return v.root.Draw(ctx)
}

// Pick returns the primitive at the device point p, trying children in
// child-list order, or nil.
func (v *View) Pick(p pensool.Vec2) *Node {
	return v.root.Pick(v.newContext(), p)
}

// PickTopmost returns the primitive at the device point p, trying children
// last-appended first, so the node drawn on top wins.
func (v *View) PickTopmost(p pensool.Vec2) *Node {
	return v.root.pick(v.newContext(), p, true)
}

// Zoom scales the view about the device point center by one zoom step, in
// or out.
func (v *View) Zoom(center pensool.Vec2, in bool) {
	k := 1 + v.zoomRate
	if !in {
		k = 1 - v.zoomRate
	}
	r := v.root
	r.Alter(func() {
		r.st.Translation = center.Add(r.st.Translation.Sub(center).Mul(k))
		r.st.Scale = r.st.Scale.Mul(k)
	})
	pensool.Logger().Debug("scene: zoom", "center", center, "in", in, "scale", r.st.Scale)
}

func (n *Node) sink() damage.Sink {
	if v := n.View(); v != nil {
		return v.sink
	}
	return damage.Discard
}

func (n *Node) contextFactory() render.Factory {
	if v := n.View(); v != nil {
		return v.newContext
	}
	return render.MeasureFactory()
}

func (n *Node) measurer() *text.Measurer {
	if v := n.View(); v != nil && v.measurer != nil {
		return v.measurer
	}
	return text.Default()
}

func (n *Node) pickPenWidth() float64 {
	if v := n.View(); v != nil {
		return v.pickPenWidth
	}
	return DefaultPickPenWidth
}
