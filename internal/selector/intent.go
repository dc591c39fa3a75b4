package selector

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// IntentKind is the closed set of semantic inputs the selector reacts to.
// Everything mode-dependent (what Escape means, whether arrows move the
// selection or the action focus) is resolved by the model, not here.
type IntentKind int

const (
	IntentNone IntentKind = iota
	IntentCancel
	IntentClearOrCancel
	IntentAccept
	IntentMoveUp
	IntentMoveDown
	IntentActionPrev
	IntentActionNext
	IntentDeleteChar
	IntentInsertChar
)

// Intent is one decoded key press. Rune is set only for IntentInsertChar.
type Intent struct {
	Kind IntentKind
	Rune rune
}

type keyMap struct {
	Cancel    key.Binding
	Escape    key.Binding
	Accept    key.Binding
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Backspace key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Cancel:    key.NewBinding(key.WithKeys("ctrl+c")),
		Escape:    key.NewBinding(key.WithKeys("esc")),
		Accept:    key.NewBinding(key.WithKeys("enter")),
		Up:        key.NewBinding(key.WithKeys("up")),
		Down:      key.NewBinding(key.WithKeys("down")),
		Left:      key.NewBinding(key.WithKeys("left")),
		Right:     key.NewBinding(key.WithKeys("right")),
		Backspace: key.NewBinding(key.WithKeys("backspace")),
	}
}

var keys = defaultKeyMap()

// Decode maps a raw key message onto the intent set. Unknown or
// non-printable keys decode to IntentNone and are silently dropped.
func Decode(msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, keys.Cancel):
		return Intent{Kind: IntentCancel}
	case key.Matches(msg, keys.Escape):
		return Intent{Kind: IntentClearOrCancel}
	case key.Matches(msg, keys.Accept):
		return Intent{Kind: IntentAccept}
	case key.Matches(msg, keys.Up):
		return Intent{Kind: IntentMoveUp}
	case key.Matches(msg, keys.Down):
		return Intent{Kind: IntentMoveDown}
	case key.Matches(msg, keys.Left):
		return Intent{Kind: IntentActionPrev}
	case key.Matches(msg, keys.Right):
		return Intent{Kind: IntentActionNext}
	case key.Matches(msg, keys.Backspace):
		return Intent{Kind: IntentDeleteChar}
	}
	if msg.Type == tea.KeySpace {
		return Intent{Kind: IntentInsertChar, Rune: ' '}
	}
	if msg.Type == tea.KeyRunes && !msg.Alt && len(msg.Runes) == 1 && unicode.IsPrint(msg.Runes[0]) {
		return Intent{Kind: IntentInsertChar, Rune: msg.Runes[0]}
	}
	return Intent{Kind: IntentNone}
}
