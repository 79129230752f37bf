package tinct_test

import (
	"testing"

	"github.com/bjaus/tinct"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextIsUnstyled(t *testing.T) {
	t.Parallel()
	c := tinct.Text("hello")
	assert.Equal(t, "hello", c.String())
	for _, cap := range tinct.Capabilities() {
		assert.True(t, c.PlainAt(cap), "unstyled chunk must be plain at %s", cap)
	}
}

func TestBuildersDoNotMutate(t *testing.T) {
	t.Parallel()
	base := tinct.Text("x")
	styled := base.Bold().Italic().Underline().
		Fore(tinct.Basic(tinct.Red)).
		Back(tinct.Palette(17))
	// The original chunk is untouched by any builder.
	assert.True(t, base.PlainAt(tinct.CapTrueColor))
	assert.False(t, styled.PlainAt(tinct.CapTrueColor))
	assert.Equal(t, "x", styled.String())
}

func TestIntensityLastSetterWins(t *testing.T) {
	t.Parallel()
	c := tinct.Text("x").Bold().Faint()
	assert.Equal(t, "\x1b[2mx\x1b[0m", string(tinct.Render(tinct.CapBasic, c)))

	c = tinct.Text("x").Faint().Bold()
	assert.Equal(t, "\x1b[1mx\x1b[0m", string(tinct.Render(tinct.CapBasic, c)))
}

func TestUnderliningLastSetterWins(t *testing.T) {
	t.Parallel()
	c := tinct.Text("x").Underline().DoubleUnderline()
	assert.Equal(t, "\x1b[21mx\x1b[0m", string(tinct.Render(tinct.CapBasic, c)))

	c = tinct.Text("x").DoubleUnderline().Underline()
	assert.Equal(t, "\x1b[4mx\x1b[0m", string(tinct.Render(tinct.CapBasic, c)))
}

func TestPlainAtColourGating(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		chunk   tinct.Chunk
		plainAt []tinct.Capability
	}{
		{
			name:    "basic foreground",
			chunk:   tinct.Text("x").Fore(tinct.Basic(tinct.Red)),
			plainAt: []tinct.Capability{tinct.CapNone},
		},
		{
			name:    "bright background",
			chunk:   tinct.Text("x").Back(tinct.Bright(tinct.Cyan)),
			plainAt: []tinct.Capability{tinct.CapNone},
		},
		{
			name:    "palette foreground",
			chunk:   tinct.Text("x").Fore(tinct.Palette(200)),
			plainAt: []tinct.Capability{tinct.CapNone, tinct.CapBasic},
		},
		{
			name:    "rgb background",
			chunk:   tinct.Text("x").Back(tinct.RGB(1, 2, 3)),
			plainAt: []tinct.Capability{tinct.CapNone, tinct.CapBasic, tinct.Cap256},
		},
		{
			name:    "bold is stripped only at the floor",
			chunk:   tinct.Text("x").Bold(),
			plainAt: []tinct.Capability{tinct.CapNone},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			plain := map[tinct.Capability]bool{}
			for _, cap := range tt.plainAt {
				plain[cap] = true
			}
			for _, cap := range tinct.Capabilities() {
				assert.Equal(t, plain[cap], tt.chunk.PlainAt(cap), "at %s", cap)
			}
		})
	}
}

// Raising the capability never turns a plain chunk non-plain at a
// lower level: plainness is monotonically non-increasing in the tier.
func TestPlainnessMonotonicity(t *testing.T) {
	t.Parallel()
	chunks := []tinct.Chunk{
		tinct.Text(""),
		tinct.Text("plain"),
		tinct.Text("x").Italic(),
		tinct.Text("x").Fore(tinct.Basic(tinct.Green)),
		tinct.Text("x").Back(tinct.Palette(7)),
		tinct.Text("x").Fore(tinct.RGB(9, 9, 9)),
		tinct.Text("x").Bold().Fore(tinct.RGB(9, 9, 9)).Back(tinct.Bright(tinct.Blue)),
	}
	caps := tinct.Capabilities()
	for _, c := range chunks {
		for i, lo := range caps {
			for _, hi := range caps[i:] {
				if c.PlainAt(hi) {
					assert.True(t, c.PlainAt(lo),
						"chunk %q plain at %s but not at %s", c, hi, lo)
				}
			}
		}
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "hi", width: 5, want: "hi"},
		{name: "exact", text: "hello", width: 5, want: "hello"},
		{name: "no limit", text: "hello", width: 0, want: "hello"},
		{name: "ellipsis", text: "hello world", width: 8, want: "hello..."},
		{name: "narrow drops ellipsis", text: "hello", width: 3, want: "hel"},
		{name: "wide runes", text: "你好世界", width: 5, want: "你..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := tinct.Text(tt.text).Truncate(tt.width)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestTruncateKeepsStyling(t *testing.T) {
	t.Parallel()
	c := tinct.Text("hello world").Bold().Truncate(8)
	require.Equal(t, "hello...", c.String())
	assert.Equal(t, "\x1b[1mhello...\x1b[0m", string(tinct.Render(tinct.CapBasic, c)))
}
