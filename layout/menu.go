package layout

import (
	"github.com/pensool/pensool"
	"github.com/pensool/pensool/damage"
	"github.com/pensool/pensool/render"
	"github.com/pensool/pensool/scene"
)

// DefaultItemCount is the number of items of a handle menu made without
// WithItems.
const DefaultItemCount = 3

// HandleMenu is a linear group of handles anchored on a controlee's edge.
// One item is active at a time and only the active item is shown.
//
// The menu lives in its own view, in device space: its root transform
// places the benchmark and turns the x axis onto the layout axis.
type HandleMenu struct {
	view      *scene.View
	items     []*scene.Node
	active    int
	open      bool
	spec      Spec
	controlee Controlee

	itemSize float64
	opening  int
	ahead    float64
}

// Option configures a HandleMenu.
type Option func(*menuConfig)

type menuConfig struct {
	sink     damage.Sink
	items    []*scene.Node
	itemSize float64
	opening  int
	ahead    float64
}

// WithSink sends the menu's repaint requests to s.
func WithSink(s damage.Sink) Option {
	return func(c *menuConfig) {
		c.sink = s
	}
}

// WithItems sets the item nodes, which must be detached.
func WithItems(items ...*scene.Node) Option {
	return func(c *menuConfig) {
		c.items = items
	}
}

// WithItemSize sets the item side in device pixels.
func WithItemSize(size float64) Option {
	return func(c *menuConfig) {
		if size > 0 {
			c.itemSize = size
		}
	}
}

// WithOpeningIndex sets the item the menu opens on.
func WithOpeningIndex(i int) Option {
	return func(c *menuConfig) {
		if i >= 0 {
			c.opening = i
		}
	}
}

// WithOffAxisPixels sets how far ahead Slide searches for the edge.
func WithOffAxisPixels(px float64) Option {
	return func(c *menuConfig) {
		if px > 0 {
			c.ahead = px
		}
	}
}

// NewHandleMenu creates a closed handle menu. Without WithItems it has
// DefaultItemCount square items.
func NewHandleMenu(opts ...Option) *HandleMenu {
	cfg := menuConfig{
		sink:     damage.Discard,
		itemSize: DefaultItemSize,
		opening:  DefaultOpeningIndex,
		ahead:    DefaultOffAxisPixels,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(cfg.items) == 0 {
		for range DefaultItemCount {
			cfg.items = append(cfg.items, scene.NewRect())
		}
	}
	if cfg.opening >= len(cfg.items) {
		cfg.opening = len(cfg.items) - 1
	}
	return &HandleMenu{
		view:     scene.NewView(scene.WithSink(cfg.sink)),
		items:    cfg.items,
		itemSize: cfg.itemSize,
		opening:  cfg.opening,
		ahead:    cfg.ahead,
	}
}

// IsOpen reports whether the menu is shown.
func (m *HandleMenu) IsOpen() bool {
	return m.open
}

// Spec returns the current layout.
func (m *HandleMenu) Spec() Spec {
	return m.spec
}

// Controlee returns what the open menu is laid out against.
func (m *HandleMenu) Controlee() Controlee {
	return m.controlee
}

// Len returns the number of items.
func (m *HandleMenu) Len() int {
	return len(m.items)
}

// Item returns item i.
func (m *HandleMenu) Item(i int) *scene.Node {
	return m.items[i]
}

// ActiveIndex returns the index of the active item.
func (m *HandleMenu) ActiveIndex() int {
	return m.active
}

// Active returns the active item, or nil when the menu is closed.
func (m *HandleMenu) Active() *scene.Node {
	if !m.open {
		return nil
	}
	return m.items[m.active]
}

// Open shows the menu at the device point hotspot on c, which may be nil
// for the background, and activates the opening item. An open menu is
// closed first.
func (m *HandleMenu) Open(c Controlee, hotspot pensool.Vec2) {
	if m.open {
		m.Close()
	}
	m.controlee = c
	m.spec = newSpec(c, hotspot, m.itemSize, m.opening)
	m.position()
	m.layout()

	m.open = true
	m.active = m.spec.OpeningIndex
	m.show(m.items[m.active])
	pensool.Logger().Debug("layout: menu opened", "hotspot", hotspot, "axis", m.spec.Axis)
}

// Close hides the menu.
func (m *HandleMenu) Close() {
	if !m.open {
		return
	}
	m.hide(m.items[m.active])
	m.open = false
	m.controlee = nil
}

// position sets the root transform from the current Spec.
func (m *HandleMenu) position() {
	m.view.Root().SetTransform(m.spec.Benchmark, pensool.V2(1, 1), m.spec.Axis.Angle())
}

// layout places the items in the root's frame, where the axis is x.
func (m *HandleMenu) layout() {
	half := m.itemSize / 2
	for i, item := range m.items {
		cx := float64(i) * half
		item.SetFromRect(cx-half, -half, m.itemSize, m.itemSize)
	}
}

func (m *HandleMenu) show(item *scene.Node) {
	m.view.Root().Append(item)
	item.Highlight(true)
}

func (m *HandleMenu) hide(item *scene.Node) {
	item.Highlight(false)
	m.view.Root().Remove(item)
}

// ChangeItem moves the active item by delta along the menu. Moving past
// either end closes the menu. It reports whether the menu is still open.
func (m *HandleMenu) ChangeItem(delta int) bool {
	if !m.open {
		return false
	}
	next := m.active + delta
	if next < 0 || next >= len(m.items) {
		m.Close()
		return false
	}
	m.hide(m.items[m.active])
	m.active = next
	m.show(m.items[m.active])
	return true
}

// ExitItem changes the active item after the pointer left it moving along
// exit, a device vector: outward along the axis is the next item, inward
// the previous one.
func (m *HandleMenu) ExitItem(exit pensool.Vec2) bool {
	if exit.ScalarProjection(m.spec.Axis) > 0 {
		return m.ChangeItem(1)
	}
	return m.ChangeItem(-1)
}

// Shift moves the open menu across its axis without following the
// controlee.
func (m *HandleMenu) Shift(pixels float64) {
	if !m.open {
		return
	}
	m.spec.Shift(pixels)
	m.position()
}

// Slide moves the open menu along the controlee's edge, see Spec.Slide. It
// reports whether the menu moved.
func (m *HandleMenu) Slide(pixels float64) bool {
	if !m.open || m.controlee == nil {
		return false
	}
	if !m.spec.slide(m.controlee, pixels, m.ahead) {
		return false
	}
	m.position()
	return true
}

// Draw draws the active item into ctx and returns its device bounds. A
// closed menu draws nothing.
func (m *HandleMenu) Draw(ctx render.Context) pensool.Bounds {
	if !m.open {
		return pensool.Bounds{}
	}
	return m.view.Draw(ctx)
}

// Pick returns the active item when the device point p hits it.
func (m *HandleMenu) Pick(p pensool.Vec2) *scene.Node {
	if !m.open {
		return nil
	}
	return m.view.Pick(p)
}
