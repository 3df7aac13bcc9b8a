// Package text measures the strings of text glyphs.
//
// A text glyph's layout box is the advance width of its shaped string by
// the font's ascent plus descent, with the baseline at the ascent. Shaping
// uses go-text/typesetting's HarfBuzz port over the embedded Go Regular
// font, so kerning and ligatures count toward the width; the paragraph
// direction comes from the Unicode bidi algorithm.
//
// # Example usage
//
//	m := text.Default()
//	met := m.Measure("Most relationships seem so transitory", 12)
//	box := met.Box() // (0, 0, advance, ascent+descent)
package text
