package theme

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestAccentKnownToken(t *testing.T) {
	p := Default().Accent(" Emerald ")
	c, ok := colorful.MakeColor(p.Border)
	if !ok {
		t.Fatalf("expected an opaque colour")
	}
	if got := c.Hex(); got != "#10b981" {
		t.Fatalf("expected emerald border, got %s", got)
	}
}

func TestAccentUnknownTokenFallsBack(t *testing.T) {
	th := New(false)
	unknown, _ := colorful.MakeColor(th.Accent("bg-emerald-50 border-emerald-200").Border)
	neutral, _ := colorful.MakeColor(th.Accent("").Border)
	if unknown.Hex() != neutral.Hex() {
		t.Fatalf("expected unknown token to use the neutral palette, got %s vs %s", unknown.Hex(), neutral.Hex())
	}
}

func TestAccentMutedDiffersByBackground(t *testing.T) {
	dark, _ := colorful.MakeColor(New(true).Accent("sky").Muted)
	light, _ := colorful.MakeColor(New(false).Accent("sky").Muted)
	if dark.Hex() == light.Hex() {
		t.Fatalf("expected muted tint to follow the background")
	}
}
