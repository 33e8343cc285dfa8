package styles

import (
	"bytes"
	"strings"
	"testing"
)

func TestForName(t *testing.T) {
	for _, name := range Names() {
		s, err := ForName(name)
		if err != nil {
			t.Fatalf("ForName(%q): %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("Name() = %q, want %q", s.Name(), name)
		}
	}

	if _, err := ForName("brutalist"); err == nil {
		t.Error("ForName(\"brutalist\") should fail")
	}
}

func TestRenderGlyph(t *testing.T) {
	tests := []struct {
		name  string
		glyph Glyph
		want  []string
	}{
		{
			name:  "neutral digit",
			glyph: Glyph{Char: '1', X: 10, Y: 20, Size: 14},
			want:  []string{">1</text>", `font-weight="normal"`, simpleNeutral},
		},
		{
			name:  "emphasized colored digit",
			glyph: Glyph{Char: '9', X: 10, Y: 20, Size: 18, Bold: true, Color: "#b5367a"},
			want:  []string{">9</text>", `font-weight="bold"`, "#b5367a"},
		},
		{
			name:  "configured font and weight",
			glyph: Glyph{Char: '7', X: 10, Y: 20, Size: 18, Bold: true, Font: "IBM Plex Mono", Weight: "600"},
			want:  []string{`font-family="IBM Plex Mono"`, `font-weight="600"`},
		},
		{
			name:  "configured weight only applies when emphasized",
			glyph: Glyph{Char: '7', X: 10, Y: 20, Size: 14, Font: "IBM Plex Mono", Weight: "600"},
			want:  []string{`font-family="IBM Plex Mono"`, `font-weight="normal"`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			Simple{}.RenderGlyph(&buf, tt.glyph)
			for _, w := range tt.want {
				if !strings.Contains(buf.String(), w) {
					t.Errorf("output missing %q:\n%s", w, buf.String())
				}
			}
		})
	}
}

func TestPosterGlowOnlyOnColoredGlyphs(t *testing.T) {
	var buf bytes.Buffer
	Poster{}.RenderGlyph(&buf, Glyph{Char: '2', X: 1, Y: 2, Size: 10})
	if strings.Contains(buf.String(), "glow") {
		t.Error("neutral glyph should not glow")
	}

	buf.Reset()
	Poster{}.RenderGlyph(&buf, Glyph{Char: '2', X: 1, Y: 2, Size: 10, Color: "#fe9f6d"})
	if !strings.Contains(buf.String(), `filter="url(#glow)"`) {
		t.Error("colored glyph should reference the glow filter")
	}
}

func TestPosterDefsDeclareGlow(t *testing.T) {
	var buf bytes.Buffer
	Poster{}.RenderDefs(&buf)
	if !strings.Contains(buf.String(), `<filter id="glow"`) {
		t.Error("defs should declare the glow filter")
	}
}

func TestRenderTextEscapes(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderText(&buf, Text{Content: "Films & <ratings>", X: 1, Y: 2, Size: 10})
	got := buf.String()
	if !strings.Contains(got, "Films &amp; &lt;ratings&gt;") {
		t.Errorf("text not escaped: %s", got)
	}
}

func TestRenderLegend(t *testing.T) {
	l := Legend{
		X: 0, Y: 0, W: 100, H: 10,
		Swatches: []string{"#000000", "#808080", "#ffffff"},
		MinLabel: "0%",
		MaxLabel: "100%",
		Title:    "share passing",
	}
	var buf bytes.Buffer
	Simple{}.RenderLegend(&buf, l)
	got := buf.String()

	for _, w := range []string{"#000000", "#808080", "#ffffff", "0%", "100%", "share passing"} {
		if !strings.Contains(got, w) {
			t.Errorf("legend missing %q", w)
		}
	}
	if n := strings.Count(got, "<rect"); n != 3 {
		t.Errorf("legend has %d swatch rects, want 3", n)
	}
}

func TestRenderLegendEmpty(t *testing.T) {
	var buf bytes.Buffer
	Simple{}.RenderLegend(&buf, Legend{})
	if buf.Len() != 0 {
		t.Errorf("empty legend should render nothing, got %q", buf.String())
	}
}
