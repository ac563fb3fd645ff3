package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Base16 palette with warm earth tones.
var (
	// Base colors (backgrounds and text)
	ColorBase00 = lipgloss.Color("#1a1816") // Dark background
	ColorBase01 = lipgloss.Color("#282420") // Lighter background
	ColorBase02 = lipgloss.Color("#36302a") // Selection background
	ColorBase03 = lipgloss.Color("#5c5044") // Comments, invisibles
	ColorBase05 = lipgloss.Color("#ab937b") // Default foreground
	ColorBase07 = lipgloss.Color("#f5d7b9") // Lightest foreground

	// Accent colors
	ColorRed    = lipgloss.Color("#d95f5f")
	ColorOrange = lipgloss.Color("#eb8755")
	ColorYellow = lipgloss.Color("#f5b761")
	ColorGreen  = lipgloss.Color("#93b56b")
	ColorCyan   = lipgloss.Color("#61afaf")
	ColorBlue   = lipgloss.Color("#6b93b5")
	ColorPurple = lipgloss.Color("#976bb5")

	// UI specific colors
	ColorBorder  = ColorBase03
	ColorFocus   = ColorOrange
	ColorSuccess = ColorGreen
	ColorError   = ColorRed
	ColorMuted   = ColorBase03
)

// ChartPalette is the fixed palette for allocation charts. Slices cycle
// through it by index modulo its length.
var ChartPalette = [5]lipgloss.Color{
	ColorOrange,
	ColorGreen,
	ColorBlue,
	ColorYellow,
	ColorPurple,
}

// ChartColor returns the palette color for the i-th chart entry.
func ChartColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return ChartPalette[i%len(ChartPalette)]
}

// Styles defines the Lipgloss styles for the TUI components
type Styles struct {
	// Text styles
	UserMessage      lipgloss.Style
	AssistantMessage lipgloss.Style
	ErrorMessage     lipgloss.Style
	MutedText        lipgloss.Style

	// Value styles
	PositiveValue lipgloss.Style
	NegativeValue lipgloss.Style

	// Card and layout styles
	CardTitle  lipgloss.Style
	CardBorder lipgloss.Style
	TabActive  lipgloss.Style
	TabMuted   lipgloss.Style
	StatusBar  lipgloss.Style

	Focused   lipgloss.Style
	Unfocused lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles
func DefaultStyles() *Styles {
	return &Styles{
		UserMessage: lipgloss.NewStyle().
			Foreground(ColorGreen),

		AssistantMessage: lipgloss.NewStyle().
			Foreground(ColorBlue),

		ErrorMessage: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		MutedText: lipgloss.NewStyle().
			Foreground(ColorMuted),

		PositiveValue: lipgloss.NewStyle().
			Foreground(ColorSuccess),

		NegativeValue: lipgloss.NewStyle().
			Foreground(ColorError),

		CardTitle: lipgloss.NewStyle().
			Foreground(ColorBase07).
			Bold(true),

		CardBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1),

		TabActive: lipgloss.NewStyle().
			Foreground(ColorFocus).
			Bold(true),

		TabMuted: lipgloss.NewStyle().
			Foreground(ColorMuted),

		StatusBar: lipgloss.NewStyle().
			Foreground(ColorBase05).
			Background(ColorBase01),

		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorFocus),

		Unfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBase03),
	}
}
