package selector

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/refpick/refpick/internal/tui/theme"
)

// Styles collects every lipgloss style the selector renders with. Row and
// match styles must only recolor text; anything that pads or resizes
// would break the strip-ANSI round trip the renderer guarantees.
type Styles struct {
	Title            lipgloss.Style
	Prompt           lipgloss.Style
	Query            lipgloss.Style
	Status           lipgloss.Style
	StatusError      lipgloss.Style
	Dim              lipgloss.Style
	Row              lipgloss.Style
	RowSelected      lipgloss.Style
	Match            lipgloss.Style
	MatchSelected    lipgloss.Style
	ActionKey        lipgloss.Style
	ActionKeyFocused lipgloss.Style
	ActionDesc       lipgloss.Style
	Spinner          lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:            theme.TitleStyle,
		Prompt:           theme.PromptStyle,
		Query:            theme.TextStyle,
		Status:           theme.SuccessStyle,
		StatusError:      theme.ErrorStyle,
		Dim:              theme.DimStyle,
		Row:              theme.RowStyle,
		RowSelected:      theme.RowSelectedStyle,
		Match:            theme.MatchStyle,
		MatchSelected:    theme.MatchSelectedStyle,
		ActionKey:        theme.ActionKeyStyle,
		ActionKeyFocused: theme.ActionKeyFocusedStyle,
		ActionDesc:       theme.ActionDescStyle,
		Spinner:          lipgloss.NewStyle().Foreground(theme.Accent),
	}
}
