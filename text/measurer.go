package text

import (
	"bytes"
	"math"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/pensool/pensool"
)

// Metrics is the measured extent of a string at a font size, in the same
// units as the size.
type Metrics struct {
	// Advance is the distance the pen moves across the string.
	Advance float64

	// Ascent is the distance from the top of the line to the baseline.
	Ascent float64

	// Descent is the distance from the baseline to the bottom of the line.
	Descent float64

	// Direction is the paragraph direction used for shaping.
	Direction Direction
}

// Box returns the layout box with its origin at the top left of the line.
func (m Metrics) Box() pensool.Rect {
	return pensool.Rect{W: m.Advance, H: m.Ascent + m.Descent}
}

// Measurer shapes strings to measure them. It is safe for concurrent use.
type Measurer struct {
	// shapingFont is read-only and shared; faces are created per call.
	shapingFont *gtfont.Font

	// metricsFont provides the line ascent and descent.
	metricsFont *sfnt.Font

	// shapers pools HarfbuzzShapers, which hold mutable buffers.
	shapers sync.Pool

	mu  sync.Mutex
	buf sfnt.Buffer
}

// NewMeasurer creates a measurer for the TrueType or OpenType font data.
func NewMeasurer(data []byte) (*Measurer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	mf, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}
	return &Measurer{
		shapingFont: face.Font,
		metricsFont: mf,
		shapers: sync.Pool{
			New: func() any { return &shaping.HarfbuzzShaper{} },
		},
	}, nil
}

var defaultMeasurer = sync.OnceValues(func() (*Measurer, error) {
	return NewMeasurer(goregular.TTF)
})

// Default returns the shared measurer for the Go Regular font.
// It panics if the embedded font cannot be parsed.
func Default() *Measurer {
	m, err := defaultMeasurer()
	if err != nil {
		panic("text: embedded font: " + err.Error())
	}
	return m
}

// Measure shapes s at size and returns its metrics.
func (m *Measurer) Measure(s string, size float64) Metrics {
	ascent, descent := m.lineMetrics(size)
	met := Metrics{Ascent: ascent, Descent: descent, Direction: DetectDirection(s)}
	if s == "" || size <= 0 {
		return met
	}

	runes := []rune(s)
	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: met.Direction.shapingDirection(),
		Face:      gtfont.NewFace(m.shapingFont),
		Size:      toFixed(size),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	}

	hb := m.shapers.Get().(*shaping.HarfbuzzShaper)
	out := hb.Shape(input)
	m.shapers.Put(hb)

	var adv fixed.Int26_6
	for _, g := range out.Glyphs {
		adv += g.Advance
	}
	met.Advance = math.Abs(fromFixed(adv))
	return met
}

// lineMetrics returns the font's ascent and descent at size.
func (m *Measurer) lineMetrics(size float64) (ascent, descent float64) {
	if size <= 0 {
		return 0, 0
	}
	m.mu.Lock()
	fm, err := m.metricsFont.Metrics(&m.buf, toFixed(size), xfont.HintingNone)
	m.mu.Unlock()
	if err != nil {
		pensool.Logger().Debug("text: font metrics unavailable, estimating", "err", err)
		return 0.8 * size, 0.2 * size
	}
	return fromFixed(fm.Ascent), fromFixed(fm.Descent)
}

// detectScript returns the script of the first non-space rune.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
