package text

import (
	"github.com/go-text/typesetting/di"
	"golang.org/x/text/unicode/bidi"
)

// Direction is the base direction of a paragraph.
type Direction int

const (
	// DirectionLTR is left to right.
	DirectionLTR Direction = iota

	// DirectionRTL is right to left.
	DirectionRTL
)

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == DirectionRTL {
		return "rtl"
	}
	return "ltr"
}

// DetectDirection returns the direction of the first strongly directional
// run of s. Text with no strong characters is LTR.
func DetectDirection(s string) Direction {
	if s == "" {
		return DirectionLTR
	}
	p := bidi.Paragraph{}
	if _, err := p.SetString(s, bidi.DefaultDirection(bidi.Neutral)); err != nil {
		return DirectionLTR
	}
	ordering, err := p.Order()
	if err != nil {
		return DirectionLTR
	}
	for i := 0; i < ordering.NumRuns(); i++ {
		r := ordering.Run(i)
		switch r.Direction() {
		case bidi.RightToLeft:
			return DirectionRTL
		case bidi.LeftToRight:
			return DirectionLTR
		}
	}
	return DirectionLTR
}

// shapingDirection converts d to go-text's di.Direction.
func (d Direction) shapingDirection() di.Direction {
	if d == DirectionRTL {
		return di.DirectionRTL
	}
	return di.DirectionLTR
}
