// Package glyph maps the fixed set of glyph names used by catalog entries
// to the symbols drawn in the terminal.
package glyph

// Name identifies a glyph. The set of names is closed; see DefaultGlyphs.
type Name string

// Glyph is a renderable terminal symbol.
type Glyph struct {
	Name    Name
	Symbol  string
	Meaning string
	// Chrome glyphs decorate the UI itself and are never referenced by
	// catalog entries.
	Chrome bool
}

const (
	Trees         Name = "Trees"
	Ship          Name = "Ship"
	Castle        Name = "Castle"
	Waves         Name = "Waves"
	HeartPulse    Name = "HeartPulse"
	Sun           Name = "Sun"
	Shield        Name = "Shield"
	Flower        Name = "Flower"
	Handshake     Name = "Handshake"
	Flag          Name = "Flag"
	BookOpen      Name = "BookOpen"
	GraduationCap Name = "GraduationCap"
	FlaskConical  Name = "FlaskConical"
	Smile         Name = "Smile"
	Bird          Name = "Bird"
	Sparkles      Name = "Sparkles"
	Cloud         Name = "Cloud"
	Leaf          Name = "Leaf"
	Globe         Name = "Globe"

	Star      Name = "Star"
	Book      Name = "Book"
	Lightbulb Name = "Lightbulb"
	Activity  Name = "Activity"
	Chevron   Name = "ChevronRight"
	Close     Name = "X"
)

// DefaultGlyphs returns every known glyph, entry glyphs first.
func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 25)

	g = append(g, Glyph{
		Name:    Trees,
		Symbol:  "♣",
		Meaning: "trees",
	}, Glyph{
		Name:    Ship,
		Symbol:  "⚓",
		Meaning: "ship",
	}, Glyph{
		Name:    Castle,
		Symbol:  "♜",
		Meaning: "castle",
	}, Glyph{
		Name:    Waves,
		Symbol:  "≈",
		Meaning: "waves",
	}, Glyph{
		Name:    HeartPulse,
		Symbol:  "♥",
		Meaning: "heart",
	}, Glyph{
		Name:    Sun,
		Symbol:  "☼",
		Meaning: "sun",
	}, Glyph{
		Name:    Shield,
		Symbol:  "◈",
		Meaning: "shield",
	}, Glyph{
		Name:    Flower,
		Symbol:  "✿",
		Meaning: "flower",
	}, Glyph{
		Name:    Handshake,
		Symbol:  "⚭",
		Meaning: "handshake",
	}, Glyph{
		Name:    Flag,
		Symbol:  "⚑",
		Meaning: "flag",
	}, Glyph{
		Name:    BookOpen,
		Symbol:  "▤",
		Meaning: "open book",
	}, Glyph{
		Name:    GraduationCap,
		Symbol:  "✪",
		Meaning: "graduation cap",
	}, Glyph{
		Name:    FlaskConical,
		Symbol:  "⚗",
		Meaning: "flask",
	}, Glyph{
		Name:    Smile,
		Symbol:  "☺",
		Meaning: "smile",
	}, Glyph{
		Name:    Bird,
		Symbol:  "♪",
		Meaning: "bird",
	}, Glyph{
		Name:    Sparkles,
		Symbol:  "✦",
		Meaning: "sparkles",
	}, Glyph{
		Name:    Cloud,
		Symbol:  "☁",
		Meaning: "cloud",
	}, Glyph{
		Name:    Leaf,
		Symbol:  "❧",
		Meaning: "leaf",
	}, Glyph{
		Name:    Globe,
		Symbol:  "⊕",
		Meaning: "globe",
	}, Glyph{
		Name:    Star,
		Symbol:  "★",
		Meaning: "app mark",
		Chrome:  true,
	}, Glyph{
		Name:    Book,
		Symbol:  "❏",
		Meaning: "biography section",
		Chrome:  true,
	}, Glyph{
		Name:    Lightbulb,
		Symbol:  "✺",
		Meaning: "wisdom section",
		Chrome:  true,
	}, Glyph{
		Name:    Activity,
		Symbol:  "↯",
		Meaning: "activity section",
		Chrome:  true,
	}, Glyph{
		Name:    Chevron,
		Symbol:  "‹",
		Meaning: "read more",
		Chrome:  true,
	}, Glyph{
		Name:    Close,
		Symbol:  "✕",
		Meaning: "close",
		Chrome:  true,
	})

	return g
}

var byName = func() map[Name]Glyph {
	all := DefaultGlyphs()
	m := make(map[Name]Glyph, len(all))
	for _, g := range all {
		m[g.Name] = g
	}
	return m
}()

// Lookup returns the glyph registered for name.
func Lookup(name Name) (Glyph, bool) {
	g, ok := byName[name]
	return g, ok
}

// Known reports whether name may be referenced by a catalog entry.
func Known(name Name) bool {
	g, ok := byName[name]
	return ok && !g.Chrome
}

// Resolve returns the glyph for name. Catalogs are validated with Known
// before use, so an unknown name only renders as a placeholder.
func Resolve(name Name) Glyph {
	if g, ok := byName[name]; ok {
		return g
	}
	return Glyph{Name: name, Symbol: "?", Meaning: "unknown"}
}

func (g Glyph) String() string {
	return g.Symbol
}

func (n Name) Glyph() Glyph {
	return Resolve(n)
}

func (n Name) String() string {
	return string(n)
}
