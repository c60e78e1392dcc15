package themes

import "github.com/charmbracelet/lipgloss"

// Theme defines the visual style for the report workspace.
type Theme struct {
	TableHeader   lipgloss.Style
	Selected      lipgloss.Style
	StatusPending lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusError   lipgloss.Style
	StatusWarning lipgloss.Style
	StatusSuccess lipgloss.Style
	FieldLabel    lipgloss.Style
	FieldValue    lipgloss.Style
	FieldFocused  lipgloss.Style
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	Normal        lipgloss.Style
	Bold          lipgloss.Style
	Faint         lipgloss.Style
	ErrorBanner   lipgloss.Style
	RoundedBox    lipgloss.Style
	BorderedBox   lipgloss.Style
	Secondary     lipgloss.Color
	Primary       lipgloss.Color
	Muted         lipgloss.Color
	Border        lipgloss.Color
	Foreground    lipgloss.Color
	Background    lipgloss.Color
	Info          lipgloss.Color
	Error         lipgloss.Color
	Warning       lipgloss.Color
	Success       lipgloss.Color
}

// Default is the default dark theme.
var Default = Theme{
	// Colors
	Primary:    lipgloss.Color("#2f80ed"),
	Secondary:  lipgloss.Color("#56ccf2"),
	Success:    lipgloss.Color("#27ae60"),
	Warning:    lipgloss.Color("#f2994a"),
	Error:      lipgloss.Color("#eb5757"),
	Info:       lipgloss.Color("#2d9cdb"),
	Background: lipgloss.Color("#16181d"),
	Foreground: lipgloss.Color("#f2f2f2"),
	Border:     lipgloss.Color("#3d4148"),
	Muted:      lipgloss.Color("#828893"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f2f2f2")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a9afb8")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f2f2f2")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f2f2f2")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#828893")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#2f80ed")).
		Foreground(lipgloss.Color("#f2f2f2")).
		Bold(true),

	// Filter bar styles
	FieldLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#a9afb8")),
	FieldValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f2f2f2")),
	FieldFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#56ccf2")).
		Bold(true),

	// Component styles
	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#56ccf2")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#3d4148")),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#3d4148")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#3d4148")).
		Padding(1, 2),
	ErrorBanner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f2f2f2")).
		Background(lipgloss.Color("#eb5757")).
		Padding(0, 1),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#27ae60")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f2994a")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#eb5757")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#2d9cdb")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#828893")).
		Italic(true),
}

// Light is a light-background variant for bright terminals.
var Light = Theme{
	// Colors
	Primary:    lipgloss.Color("#1a5fb4"),
	Secondary:  lipgloss.Color("#1c71d8"),
	Success:    lipgloss.Color("#26a269"),
	Warning:    lipgloss.Color("#e5a50a"),
	Error:      lipgloss.Color("#c01c28"),
	Info:       lipgloss.Color("#1c71d8"),
	Background: lipgloss.Color("#fafafa"),
	Foreground: lipgloss.Color("#241f31"),
	Border:     lipgloss.Color("#c0bfbc"),
	Muted:      lipgloss.Color("#77767b"),

	// Text styles
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#241f31")),
	Subtitle: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5e5c64")),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#241f31")),
	Bold: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#241f31")),
	Faint: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#77767b")),
	Selected: lipgloss.NewStyle().
		Background(lipgloss.Color("#1a5fb4")).
		Foreground(lipgloss.Color("#fafafa")).
		Bold(true),

	// Filter bar styles
	FieldLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#5e5c64")),
	FieldValue: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#241f31")),
	FieldFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1c71d8")).
		Bold(true),

	// Component styles
	TableHeader: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#1a5fb4")).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(lipgloss.Color("#c0bfbc")),
	BorderedBox: lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#c0bfbc")).
		Padding(1, 2),
	RoundedBox: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#c0bfbc")).
		Padding(1, 2),
	ErrorBanner: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#fafafa")).
		Background(lipgloss.Color("#c01c28")).
		Padding(0, 1),

	// Status styles
	StatusSuccess: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#26a269")).
		Bold(true),
	StatusWarning: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#e5a50a")).
		Bold(true),
	StatusError: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#c01c28")).
		Bold(true),
	StatusInfo: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#1c71d8")).
		Bold(true),
	StatusPending: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#77767b")).
		Italic(true),
}

// ByName resolves a configured theme name, falling back to the default.
func ByName(name string) Theme {
	switch name {
	case "light":
		return Light
	default:
		return Default
	}
}
