// Package tinct renders styled text to ANSI terminal escape sequences,
// gated by the capability level of the target terminal, and lays out
// grids of styled text as aligned tables.
//
// The unit of styled text is the [Chunk]: an immutable run of text
// carrying optional colour, intensity, italic, and underline
// attributes. Chunks are built with [Text] and chained value methods:
//
//	c := tinct.Text("42 passed").Bold().Fore(tinct.Basic(tinct.Green))
//	tinct.Print(c, tinct.Text("\n"))
//
// # Capabilities
//
// A [Capability] says how much colour a terminal supports: [CapNone],
// [CapBasic] (16 colours), [Cap256], or [CapTrueColor]. Chunks may be
// over-styled freely; at render time any colour the capability cannot
// show is dropped, and a chunk with nothing left to show emits no
// escape bytes at all. At [CapNone] every chunk renders as its raw
// UTF-8 text, which makes output safe to pipe to files. Use
// [DetectCapability] to probe a writer and the environment, or
// [ParseCapability] to accept a level from a CLI flag.
//
// # Colours
//
// [Colour] has three forms with fixed capability requirements:
//
//   - [Basic] / [Bright] — the 16 classic colours, needs [CapBasic]
//   - [Palette] — 256-palette index, needs [Cap256]
//   - [RGB] / [Hex] — 24-bit colour, needs [CapTrueColor]
//
// Bright basic colours use the aixterm SGR codes 90-97 and 100-107
// rather than bold plus a dull colour, so bold stays an independent
// attribute.
//
// # Rendering
//
// [Render] returns bytes, [Write] writes to any sink, and [Print]
// writes to standard output at its detected capability. A styled
// chunk renders as one CSI sequence carrying all of its SGR
// parameters, the text, and a full reset (ESC[0m), so styles never
// bleed between chunks. [WriteIter] and [WriteChan] stream chunks as
// they arrive with identical output.
//
// # Tables
//
// [Table] turns rows of chunks into a flat, column-aligned chunk
// sequence: short rows are padded with empty chunks, each column is
// sized to its widest cell in code points, and cells are padded with
// unstyled spaces. Styling never affects layout, only appearance.
// [WriteTable] combines layout and rendering.
//
// # Errors
//
// Rendering is total and cannot fail; the only errors are sink write
// errors and the exported sentinels:
//
//   - [ErrUnknownCapability] — unknown capability string
//   - [ErrInvalidColour] — unparseable hex colour
package tinct
