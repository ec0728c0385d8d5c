package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a named set of hex colors, one per role.
type Palette struct {
	Name         string
	Primary      string // interactive elements
	Secondary    string // bottom of the background gradient
	Background   string
	OnPrimary    string // text drawn on Primary
	OnBackground string // text drawn on Background
	TextDim      string
	Error        string
	Border       string
}

// Dark is the palette used on dark terminals.
var Dark = Palette{
	Name:         "dark",
	Primary:      "#D9D9D9", // button gray
	Secondary:    "#5B2C83", // purple gradient
	Background:   "#0B1A3A", // dark blue
	OnPrimary:    "#1C1C1C",
	OnBackground: "#FFFFFF",
	TextDim:      "#9AA5C4",
	Error:        "#F43F5E",
	Border:       "#3A4A78",
}

// Light is the palette used on light terminals.
var Light = Palette{
	Name:         "light",
	Primary:      "#3B2A6B",
	Secondary:    "#C9B6E8",
	Background:   "#F3EEFB",
	OnPrimary:    "#FFFFFF",
	OnBackground: "#1A1A2E",
	TextDim:      "#5E5A78",
	Error:        "#BE123C",
	Border:       "#B4A8D0",
}

var current Palette

// Colors of the active palette.
var (
	Primary      color.Color
	Secondary    color.Color
	Background   color.Color
	OnPrimary    color.Color
	OnBackground color.Color
	TextDim      color.Color
	Error        color.Color
	Border       color.Color
)

// Styles built from the active palette.
var (
	Header    lipgloss.Style
	Question  lipgloss.Style
	Hint      lipgloss.Style
	ErrorText lipgloss.Style

	ButtonActive   lipgloss.Style
	ButtonInactive lipgloss.Style
)

func init() {
	Use(Dark)
}

// Current returns the active palette.
func Current() Palette {
	return current
}

// Use switches every color and style to p.
func Use(p Palette) {
	current = p

	Primary = lipgloss.Color(p.Primary)
	Secondary = lipgloss.Color(p.Secondary)
	Background = lipgloss.Color(p.Background)
	OnPrimary = lipgloss.Color(p.OnPrimary)
	OnBackground = lipgloss.Color(p.OnBackground)
	TextDim = lipgloss.Color(p.TextDim)
	Error = lipgloss.Color(p.Error)
	Border = lipgloss.Color(p.Border)

	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(OnBackground).
		Align(lipgloss.Center)

	Question = lipgloss.NewStyle().
		Bold(true).
		Foreground(OnBackground).
		Align(lipgloss.Center)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	ButtonActive = lipgloss.NewStyle().
		Background(Primary).
		Foreground(OnPrimary).
		Bold(true).
		Padding(0, 2)

	ButtonInactive = lipgloss.NewStyle().
		Foreground(OnBackground).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)
}

// UseDark picks Dark or Light.
func UseDark(dark bool) {
	if dark {
		Use(Dark)
		return
	}
	Use(Light)
}

// Blend mixes two hex colors in Lab space; t=0 is from, t=1 is to. If one
// side does not parse, the other is returned unblended.
func Blend(from, to string, t float64) color.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	a, err := colorful.Hex(from)
	if err != nil {
		return lipgloss.Color(to)
	}
	b, err := colorful.Hex(to)
	if err != nil {
		return lipgloss.Color(from)
	}
	return lipgloss.Color(a.BlendLab(b, t).Clamped().Hex())
}

// Gradient returns n colors evenly spaced between from and to.
func Gradient(from, to string, n int) []color.Color {
	if n <= 0 {
		return nil
	}
	out := make([]color.Color, n)
	for i := range out {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		out[i] = Blend(from, to, t)
	}
	return out
}
