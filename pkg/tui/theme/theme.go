package theme

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Dark bool

	Header HeaderTheme
	Tabs   TabsTheme
	Intro  IntroTheme
	Card   CardTheme
	Modal  ModalTheme
	Footer FooterTheme
}

// HeaderTheme styles the top bar.
type HeaderTheme struct {
	Rule  lipgloss.Style
	Brand lipgloss.Style
}

// TabsTheme styles the category switch.
type TabsTheme struct {
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// IntroTheme styles the section above the gallery.
type IntroTheme struct {
	Heading  lipgloss.Style
	Subtitle lipgloss.Style
}

// CardTheme styles gallery cards. Border colours come from the entry accent.
type CardTheme struct {
	Frame   lipgloss.Style
	Focused lipgloss.Style
	Badge   lipgloss.Style
	Name    lipgloss.Style
	Summary lipgloss.Style
	Hint    lipgloss.Style
}

// ModalTheme styles the detail overlay.
type ModalTheme struct {
	Frame    lipgloss.Style
	Name     lipgloss.Style
	Title    lipgloss.Style
	Close    lipgloss.Style
	Section  lipgloss.Style
	Body     lipgloss.Style
	Insight  lipgloss.Style
	Activity lipgloss.Style
	Button   lipgloss.Style
	Rule     lipgloss.Style
}

// FooterTheme groups styles used by the bottom help and credits lines.
type FooterTheme struct {
	Help   lipgloss.Style
	Credit lipgloss.Style
}

// Palette is the colour set derived from an entry accent token.
type Palette struct {
	Border color.Color
	Text   color.Color
	Muted  color.Color
}

var accents = map[string]string{
	"amber":   "#F59E0B",
	"emerald": "#10B981",
	"sky":     "#0EA5E9",
	"rose":    "#F43F5E",
	"violet":  "#8B5CF6",
	"indigo":  "#6366F1",
	"teal":    "#14B8A6",
	"lime":    "#84CC16",
	"orange":  "#F97316",
	"red":     "#EF4444",
	"slate":   "#64748B",
}

const neutralAccent = "#94A3B8"

// Detect builds the theme for the current terminal background.
func Detect() Theme {
	return New(termenv.HasDarkBackground())
}

// Default returns the dark-background theme.
func Default() Theme {
	return New(true)
}

// New returns the built-in theme for a dark or light terminal.
func New(dark bool) Theme {
	text := lipgloss.Color("236")
	faint := lipgloss.Color("244")
	brand := lipgloss.Color("#D97706")
	if dark {
		text = lipgloss.Color("252")
		brand = lipgloss.Color("#FBBF24")
	}

	return Theme{
		Dark: dark,
		Header: HeaderTheme{
			Rule:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FDE68A")),
			Brand: lipgloss.NewStyle().Foreground(brand).Bold(true),
		},
		Tabs: TabsTheme{
			Active: lipgloss.NewStyle().
				Foreground(brand).
				Bold(true).
				Reverse(true).
				Padding(0, 2),
			Inactive: lipgloss.NewStyle().
				Foreground(faint).
				Padding(0, 2),
		},
		Intro: IntroTheme{
			Heading:  lipgloss.NewStyle().Foreground(text).Bold(true),
			Subtitle: lipgloss.NewStyle().Foreground(faint),
		},
		Card: CardTheme{
			Frame:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
			Focused: lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1),
			Badge:   lipgloss.NewStyle().Faint(true),
			Name:    lipgloss.NewStyle().Bold(true),
			Summary: lipgloss.NewStyle().Foreground(text),
			Hint:    lipgloss.NewStyle().Bold(true),
		},
		Modal: ModalTheme{
			Frame: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1),
			Name:     lipgloss.NewStyle().Bold(true),
			Title:    lipgloss.NewStyle().Faint(true).Bold(true),
			Close:    lipgloss.NewStyle().Foreground(faint),
			Section:  lipgloss.NewStyle().Foreground(brand).Bold(true),
			Body:     lipgloss.NewStyle().Foreground(text),
			Insight:  lipgloss.NewStyle().Foreground(lipgloss.Color("#B45309")).Italic(true),
			Activity: lipgloss.NewStyle().Foreground(lipgloss.Color("#047857")),
			Button: lipgloss.NewStyle().
				Bold(true).
				Reverse(true).
				Padding(0, 3),
			Rule: lipgloss.NewStyle().Foreground(faint),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Credit: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
	}
}

// Accent resolves an entry accent token. Unknown tokens get the neutral
// palette.
func (t Theme) Accent(token string) Palette {
	hex, ok := accents[strings.ToLower(strings.TrimSpace(token))]
	if !ok {
		hex = neutralAccent
	}
	base, err := colorful.Hex(hex)
	if err != nil {
		base, _ = colorful.Hex(neutralAccent)
	}

	background := colorful.Color{R: 1, G: 1, B: 1}
	if t.Dark {
		background = colorful.Color{R: 0, G: 0, B: 0}
	}
	text := base.BlendLab(background, 0.35).Clamped()
	if t.Dark {
		text = base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.25).Clamped()
	}
	return Palette{
		Border: base,
		Text:   text,
		Muted:  base.BlendLab(background, 0.6).Clamped(),
	}
}
