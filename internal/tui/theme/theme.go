package theme

import "github.com/charmbracelet/lipgloss"

var (
	BaseBg       = lipgloss.Color("#11111b")
	SurfaceBg    = lipgloss.Color("#313244")
	Accent       = lipgloss.Color("#cba6f7")
	Accent2      = lipgloss.Color("#89b4fa")
	Teal         = lipgloss.Color("#94e2d5")
	Peach        = lipgloss.Color("#fab387")
	SuccessColor = lipgloss.Color("#a6e3a1")
	WarnColor    = lipgloss.Color("#f9e2af")
	ErrorColor   = lipgloss.Color("#f38ba8")
	TextColor    = lipgloss.Color("#cdd6f4")
	SubTextColor = lipgloss.Color("#a6adc8")
	DimColor     = lipgloss.Color("#6c7086")
	OverlayColor = lipgloss.Color("#45475a")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
	TextStyle = lipgloss.NewStyle().
			Foreground(TextColor)
	SubTextStyle = lipgloss.NewStyle().
			Foreground(SubTextColor)
	DimStyle = lipgloss.NewStyle().
			Foreground(DimColor)
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
	WarnStyle = lipgloss.NewStyle().
			Foreground(WarnColor)
	KeyStyle = lipgloss.NewStyle().
			Foreground(Teal).
			Bold(true)
	PromptStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
	CurrentStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Selector rows. Row styles must only color, never pad or resize:
	// stripping ANSI from a rendered row has to reproduce the row text.
	RowStyle = lipgloss.NewStyle().
			Foreground(TextColor)
	RowSelectedStyle = lipgloss.NewStyle().
				Background(SurfaceBg).
				Foreground(Teal)
	MatchStyle = lipgloss.NewStyle().
			Foreground(Peach).
			Bold(true)
	MatchSelectedStyle = lipgloss.NewStyle().
				Background(SurfaceBg).
				Foreground(Peach).
				Bold(true)

	ActionKeyStyle = lipgloss.NewStyle().
			Foreground(SubTextColor)
	ActionKeyFocusedStyle = lipgloss.NewStyle().
				Background(Teal).
				Foreground(BaseBg).
				Bold(true).
				Padding(0, 1)
	ActionDescStyle = lipgloss.NewStyle().
			Foreground(DimColor)
)
