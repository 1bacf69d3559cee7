// Package styles defines the lipgloss styles shared across the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - chosen for AA contrast on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#A78BFA") // Purple
	SecondaryColor = lipgloss.Color("#10B981") // Green
	WarningColor   = lipgloss.Color("#F59E0B") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1F2937") // Dark surface
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Surface   = lipgloss.NewStyle().Background(SurfaceColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)
	Border    = lipgloss.NewStyle().Foreground(BorderColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	// Tab styles
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(PrimaryColor).
			Padding(0, 2)

	TabInactive = lipgloss.NewStyle().
			Foreground(MutedColor).
			Padding(0, 2)

	// Badge shown while capture is suspended
	PausedBadge = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor).
			Background(WarningColor).
			Padding(0, 1)

	// Content area
	ContentBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	// Help bar
	HelpBar = lipgloss.NewStyle().
			Foreground(MutedColor).
			MarginTop(1)

	HelpKey = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	// Filter input line
	FilterLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(SecondaryColor)

	FilterInput = lipgloss.NewStyle().
			Foreground(TextColor).
			Background(SurfaceColor).
			Padding(0, 1)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor)
)

// Theme is the default theme implementation handed to panels.
// It satisfies the panel package's Theme interface.
type Theme struct{}

func (Theme) Primary() lipgloss.Style   { return Primary }
func (Theme) Secondary() lipgloss.Style { return Secondary }
func (Theme) Muted() lipgloss.Style     { return Muted }
func (Theme) Error() lipgloss.Style     { return Error }
func (Theme) Warning() lipgloss.Style   { return Warning }
func (Theme) Surface() lipgloss.Style   { return Surface }
func (Theme) Border() lipgloss.Style    { return Border }
