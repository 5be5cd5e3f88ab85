package glyph

import (
	"strings"
	"testing"
)

func TestDefaultGlyphsUnique(t *testing.T) {
	seen := map[Name]bool{}
	symbols := map[string]Name{}
	for _, g := range DefaultGlyphs() {
		if seen[g.Name] {
			t.Fatalf("duplicate glyph name %q", g.Name)
		}
		seen[g.Name] = true
		if g.Symbol == "" {
			t.Fatalf("glyph %q has no symbol", g.Name)
		}
		if other, ok := symbols[g.Symbol]; ok {
			t.Fatalf("glyphs %q and %q share symbol %q", g.Name, other, g.Symbol)
		}
		symbols[g.Symbol] = g.Name
	}
}

func TestKnownExcludesChrome(t *testing.T) {
	if !Known(Ship) {
		t.Fatalf("expected Ship to be an entry glyph")
	}
	if Known(Close) {
		t.Fatalf("expected chrome glyph X to be rejected for entries")
	}
	if Known(Name("Rocket")) {
		t.Fatalf("expected unregistered glyph to be unknown")
	}
	if _, ok := Lookup(Close); !ok {
		t.Fatalf("expected chrome glyph to resolve through Lookup")
	}
}

func TestResolve(t *testing.T) {
	if got := Resolve(Waves).String(); got != "≈" {
		t.Fatalf("expected waves symbol, got %q", got)
	}
	if got := Name("Rocket").Glyph().Symbol; got != "?" {
		t.Fatalf("expected placeholder for unknown glyph, got %q", got)
	}
}

func TestSymbolsCarryNoStyling(t *testing.T) {
	for _, g := range DefaultGlyphs() {
		if strings.Contains(g.String(), "\x1b") {
			t.Fatalf("glyph %q embeds an escape sequence; styling belongs to the theme", g.Name)
		}
	}
}
