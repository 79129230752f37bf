package tinct

import (
	"io"
	"iter"
	"os"
	"sync"
)

const (
	csi      = "\x1b["
	sgrReset = "\x1b[0m"
)

// sgrParams returns the chunk's SGR parameters at the given
// capability, in the fixed order italic, underline, intensity,
// foreground, background. The order is arbitrary but stable so that
// rendered output is reproducible byte for byte.
func (c Chunk) sgrParams(cap Capability) []string {
	var params []string
	if c.italic {
		params = append(params, "3")
	}
	switch c.underline {
	case underlineSingle:
		params = append(params, "4")
	case underlineDouble:
		params = append(params, "21")
	}
	switch c.intensity {
	case intensityBold:
		params = append(params, "1")
	case intensityFaint:
		params = append(params, "2")
	}
	if c.fore.visibleAt(cap) {
		params = c.fore.appendParams(params, false)
	}
	if c.back.visibleAt(cap) {
		params = c.back.appendParams(params, true)
	}
	return params
}

// appendChunk appends the rendered chunk to dst. A plain chunk
// contributes its raw UTF-8 text. A styled chunk contributes a single
// CSI sequence holding all of its SGR parameters joined by ';', the
// text, and an unconditional full reset, so no style ever bleeds into
// later output.
func appendChunk(dst []byte, cap Capability, c Chunk) []byte {
	if c.PlainAt(cap) {
		return append(dst, c.text...)
	}
	dst = append(dst, csi...)
	for i, p := range c.sgrParams(cap) {
		if i > 0 {
			dst = append(dst, ';')
		}
		dst = append(dst, p...)
	}
	dst = append(dst, 'm')
	dst = append(dst, c.text...)
	return append(dst, sgrReset...)
}

// Render renders chunks at the given capability and returns the bytes.
// Chunks are concatenated with no separator, so adjacent chunks form
// styled runs within one logical line. Rendering is a pure transform:
// Render(cap, a, b) is always the concatenation of Render(cap, a) and
// Render(cap, b).
func Render(cap Capability, chunks ...Chunk) []byte {
	var dst []byte
	for _, c := range chunks {
		dst = appendChunk(dst, cap, c)
	}
	return dst
}

// Write renders chunks at the given capability and writes the bytes
// to w.
func Write(w io.Writer, cap Capability, chunks ...Chunk) error {
	_, err := w.Write(Render(cap, chunks...))
	return err
}

var stdoutCapability = sync.OnceValue(func() Capability {
	return DetectCapability(os.Stdout)
})

// Print renders chunks to standard output at the capability detected
// for it. Detection runs once per process; see [DetectCapability] for
// the rules.
func Print(chunks ...Chunk) error {
	return Write(os.Stdout, stdoutCapability(), chunks...)
}

// WriteIter renders chunks from an iterator and writes them to w as
// they arrive. Output is byte-identical to collecting the sequence and
// calling [Write]; each chunk renders independently, so nothing is
// buffered beyond the chunk in hand.
func WriteIter(w io.Writer, cap Capability, seq iter.Seq[Chunk]) error {
	var writeErr error
	seq(func(c Chunk) bool {
		if _, err := w.Write(appendChunk(nil, cap, c)); err != nil {
			writeErr = err
			return false
		}
		return true
	})
	return writeErr
}

// WriteChan renders chunks from a channel and writes them to w.
// It is a thin wrapper around [WriteIter].
func WriteChan(w io.Writer, cap Capability, ch <-chan Chunk) error {
	return WriteIter(w, cap, chanToIter(ch))
}

func chanToIter(ch <-chan Chunk) iter.Seq[Chunk] {
	return func(yield func(Chunk) bool) {
		for c := range ch {
			if !yield(c) {
				return
			}
		}
	}
}
