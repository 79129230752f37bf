package tinct

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownCapability = errors.New("unknown capability")
	ErrInvalidColour     = errors.New("invalid colour")
)

// Capability is the colour support level of a terminal. Levels are
// totally ordered: a terminal at a given level renders every feature
// of the levels below it. Styling that requires a higher level than
// the active one is silently dropped at render time.
type Capability int

const (
	// CapNone renders no styling at all. Output contains zero escape
	// bytes, making it safe for files and pipes.
	CapNone Capability = iota
	// CapBasic supports the 16 classic terminal colours (8 names in
	// dull and bright variants) plus intensity, italic, and underline.
	CapBasic
	// Cap256 adds the 256-entry palette.
	Cap256
	// CapTrueColor adds 24-bit RGB colour.
	CapTrueColor
)

var capabilityNames = map[Capability]string{
	CapNone:      "none",
	CapBasic:     "basic",
	Cap256:       "256",
	CapTrueColor: "truecolor",
}

// String returns the capability name.
func (c Capability) String() string {
	if name, ok := capabilityNames[c]; ok {
		return name
	}
	return fmt.Sprintf("capability(%d)", int(c))
}

// Capabilities returns all capability levels in ascending order.
func Capabilities() []Capability {
	return []Capability{CapNone, CapBasic, Cap256, CapTrueColor}
}

// ParseCapability parses a capability name as produced by
// [Capability.String]. Useful for CLI flags.
func ParseCapability(s string) (Capability, error) {
	for c, name := range capabilityNames {
		if name == s {
			return c, nil
		}
	}
	return CapNone, fmt.Errorf("%w: %q", ErrUnknownCapability, s)
}

// DetectCapability inspects w and the environment to determine the
// capability level to render at. It returns [CapNone] unless w is a
// terminal. For terminals the usual conventions apply: NO_COLOR or a
// dumb TERM disables styling, COLORTERM=truecolor (or 24bit) enables
// RGB, a TERM containing "256color" enables the palette, and anything
// else gets the basic 16 colours.
func DetectCapability(w io.Writer) Capability {
	f, ok := w.(*os.File)
	if !ok {
		return CapNone
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return CapNone
	}
	return capabilityFromEnv()
}

func capabilityFromEnv() Capability {
	if os.Getenv("NO_COLOR") != "" {
		return CapNone
	}
	term := os.Getenv("TERM")
	if term == "" || term == "dumb" {
		return CapNone
	}
	switch os.Getenv("COLORTERM") {
	case "truecolor", "24bit":
		return CapTrueColor
	}
	if strings.Contains(term, "256color") {
		return Cap256
	}
	return CapBasic
}
