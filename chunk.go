package tinct

import (
	"github.com/mattn/go-runewidth"
)

type intensity int

const (
	intensityUnset intensity = iota
	intensityBold
	intensityFaint
)

type underlining int

const (
	underlineUnset underlining = iota
	underlineSingle
	underlineDouble
)

// Chunk is an immutable run of text carrying zero or more styling
// attributes. Chunks are values: the builder methods return modified
// copies and never mutate the receiver, so chunks compose by chaining
//
//	tinct.Text("error").Bold().Fore(tinct.Basic(tinct.Red))
//
// and a chunk may be shared or rendered any number of times. Styling
// is resolved lazily: a chunk may carry colours its eventual terminal
// cannot show, and those degrade to no styling at render time.
type Chunk struct {
	text      string
	italic    bool
	intensity intensity
	underline underlining
	fore      Colour
	back      Colour
}

// Text returns an unstyled chunk. The empty string is a valid chunk
// and renders as nothing.
func Text(s string) Chunk {
	return Chunk{text: s}
}

// String returns the chunk's raw text without any styling.
func (c Chunk) String() string { return c.text }

// Fore returns a copy of the chunk with the foreground colour set.
func (c Chunk) Fore(colour Colour) Chunk {
	c.fore = colour
	return c
}

// Back returns a copy of the chunk with the background colour set.
func (c Chunk) Back(colour Colour) Chunk {
	c.back = colour
	return c
}

// Bold returns a copy of the chunk with bold intensity, replacing any
// prior intensity. Bold and faint are mutually exclusive.
func (c Chunk) Bold() Chunk {
	c.intensity = intensityBold
	return c
}

// Faint returns a copy of the chunk with faint intensity, replacing
// any prior intensity.
func (c Chunk) Faint() Chunk {
	c.intensity = intensityFaint
	return c
}

// Italic returns a copy of the chunk rendered in italics.
func (c Chunk) Italic() Chunk {
	c.italic = true
	return c
}

// Underline returns a copy of the chunk with a single underline,
// replacing any prior underlining.
func (c Chunk) Underline() Chunk {
	c.underline = underlineSingle
	return c
}

// DoubleUnderline returns a copy of the chunk with a double underline,
// replacing any prior underlining.
func (c Chunk) DoubleUnderline() Chunk {
	c.underline = underlineDouble
	return c
}

// PlainAt reports whether the chunk renders without any escape
// sequences at the given capability. Every chunk is plain at
// [CapNone]; above that, a chunk is plain when no italic, intensity,
// or underlining is set and any colours need a higher capability than
// cap. Plain chunks emit their raw UTF-8 text and nothing else.
func (c Chunk) PlainAt(cap Capability) bool {
	if cap == CapNone {
		return true
	}
	if c.italic || c.intensity != intensityUnset || c.underline != underlineUnset {
		return false
	}
	return !c.fore.visibleAt(cap) && !c.back.visibleAt(cap)
}

// Truncate returns a copy of the chunk whose text is cut to at most
// maxWidth display cells, with "..." marking the cut when maxWidth
// leaves room for it. A maxWidth of zero or less means no limit.
// Styling is preserved. Widths here are terminal cell widths, so wide
// runes count as two.
func (c Chunk) Truncate(maxWidth int) Chunk {
	if maxWidth <= 0 || runewidth.StringWidth(c.text) <= maxWidth {
		return c
	}
	if maxWidth <= 3 {
		c.text = runewidth.Truncate(c.text, maxWidth, "")
	} else {
		c.text = runewidth.Truncate(c.text, maxWidth, "...")
	}
	return c
}
