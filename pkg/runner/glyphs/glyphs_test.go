package glyphs

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/nurhuda/pkg/glyph"
)

func TestGlyphs(t *testing.T) {
	color.NoColor = true

	var buf bytes.Buffer
	if err := (&Glyphs{Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "Glyph legend") {
		t.Fatalf("expected legend title:\n%s", buf.String())
	}
	if strings.Contains(buf.String(), "Interface") {
		t.Fatalf("expected interface glyphs to be hidden:\n%s", buf.String())
	}

	buf.Reset()
	if err := (&Glyphs{All: true, Out: &buf}).Do(context.Background()); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{"Interface", string(glyph.Lightbulb), string(glyph.Globe)} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in legend:\n%s", want, got)
		}
	}
}
