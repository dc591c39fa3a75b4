// Package selector implements the interactive filtered list at the heart
// of refpick: type-to-filter over an arbitrary item slice, arrow-key
// navigation, and contextual actions executed on the highlighted item.
//
// One call to Run is one invocation: it owns the terminal for its
// duration, returns a single Result, and keeps no state behind. Items are
// opaque; the selector only sees them through the RenderText and
// SearchText callbacks.
package selector

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

const defaultMaxRows = 15

// Config describes one selector invocation.
type Config[T any] struct {
	Items      []T
	RenderText func(T) string
	SearchText func(T) string

	// Header is drawn above the list when non-empty.
	Header string

	// Actions is the static action set; item-scoped entries apply to
	// every item. ActionsFor, when set, replaces the item-scoped entries
	// with a per-item set (globals still come from Actions).
	Actions    []Action[T]
	ActionsFor func(T) []Action[T]

	// DefaultActionKey picks which action gains focus first on accept.
	DefaultActionKey string

	// AllowBack makes Escape on an empty query report Back instead of
	// cancelling, so a menu-of-lists caller can pop one level.
	AllowBack bool

	// MaxVisibleRows bounds the viewport height. Zero means the default.
	MaxVisibleRows int

	// InitialQuery pre-fills the filter.
	InitialQuery string

	Styles *Styles

	// ProgramOptions are passed through to tea.NewProgram; tests use them
	// to redirect input and output.
	ProgramOptions []tea.ProgramOption
}

// Result is the terminal value of one invocation. Exactly one of OK,
// Back and Canceled is true.
type Result[T any] struct {
	OK       bool
	Item     T
	Action   *Action[T]
	Back     bool
	Canceled bool
}

type mode int

const (
	modeBrowsing mode = iota
	modeActionFocus
	modeExecuting
	modeDone
)

// outcomeMsg delivers a settled handler result back into the loop.
type outcomeMsg[T any] struct {
	action  Action[T]
	itemIdx int
	outcome Outcome[T]
}

type model[T any] struct {
	cfg    Config[T]
	styles Styles
	spin   spinner.Model

	query    string
	matches  []Match
	selected int // index into matches, -1 iff matches is empty

	mode      mode
	actions   actionSet[T]
	row       []Action[T] // actions offered while in action focus
	rowIdx    int         // original item index the row was built for
	focused   int
	executing string // label of the running action

	status        string
	statusErr     bool
	cancelPending bool

	width  int
	height int

	result Result[T]
}

func newModel[T any](cfg Config[T]) model[T] {
	if cfg.MaxVisibleRows <= 0 {
		cfg.MaxVisibleRows = defaultMaxRows
	}
	styles := DefaultStyles()
	if cfg.Styles != nil {
		styles = *cfg.Styles
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := model[T]{
		cfg:     cfg,
		styles:  styles,
		spin:    sp,
		query:   cfg.InitialQuery,
		actions: newActionSet(cfg.Actions, cfg.ActionsFor),
	}
	m.rerank()
	return m
}

// Run displays the list and blocks until the invocation finishes. The
// terminal is acquired and restored by Bubble Tea on every exit path,
// including an error unwinding out of the program.
func Run[T any](cfg Config[T]) (Result[T], error) {
	if cfg.RenderText == nil || cfg.SearchText == nil {
		return Result[T]{}, errors.New("selector: RenderText and SearchText are required")
	}
	p := tea.NewProgram(newModel(cfg), cfg.ProgramOptions...)
	out, err := p.Run()
	if err != nil {
		return Result[T]{}, err
	}
	return out.(model[T]).result, nil
}

func (m model[T]) Init() tea.Cmd {
	return nil
}

func (m model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.mode != modeExecuting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case outcomeMsg[T]:
		return m.settle(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model[T]) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	it := Decode(msg)

	// Cancellation is honored in every mode, but it cannot interrupt an
	// in-flight handler: while executing it only marks the invocation so
	// no further action starts and the loop ends once the outcome lands.
	if it.Kind == IntentCancel {
		if m.mode == modeExecuting {
			m.cancelPending = true
			return m, nil
		}
		m.result = Result[T]{Canceled: true}
		m.mode = modeDone
		return m, tea.Quit
	}
	if m.mode == modeExecuting {
		return m, nil
	}

	switch it.Kind {
	case IntentClearOrCancel:
		switch {
		case m.mode == modeActionFocus:
			m.mode = modeBrowsing
			m.row = nil
		case m.query != "":
			m.query = ""
			m.selected = 0
			m.rerank()
		case m.cfg.AllowBack:
			m.result = Result[T]{Back: true}
			m.mode = modeDone
			return m, tea.Quit
		default:
			m.result = Result[T]{Canceled: true}
			m.mode = modeDone
			return m, tea.Quit
		}

	case IntentAccept:
		return m.accept()

	case IntentMoveUp:
		if m.mode == modeBrowsing && m.selected > 0 {
			m.selected--
		}
	case IntentMoveDown:
		if m.mode == modeBrowsing && m.selected < len(m.matches)-1 {
			m.selected++
		}

	case IntentActionPrev:
		if m.mode == modeActionFocus && m.focused > 0 {
			m.focused--
		}
	case IntentActionNext:
		if m.mode == modeActionFocus && m.focused < len(m.row)-1 {
			m.focused++
		}

	case IntentDeleteChar:
		if m.mode == modeBrowsing && m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.selected = 0
			m.rerank()
		}
	case IntentInsertChar:
		if m.mode == modeBrowsing {
			m.query += string(it.Rune)
			m.selected = 0
			m.rerank()
		}
	}
	return m, nil
}

func (m model[T]) accept() (tea.Model, tea.Cmd) {
	switch m.mode {
	case modeBrowsing:
		idx, item := m.selection()
		row := m.actions.available(idx, item)
		if len(row) == 0 {
			if idx < 0 {
				return m, nil
			}
			m.result = Result[T]{OK: true, Item: item}
			m.mode = modeDone
			return m, tea.Quit
		}
		m.row = row
		m.rowIdx = idx
		m.focused = 0
		if m.cfg.DefaultActionKey != "" {
			for i, a := range row {
				if a.Key == m.cfg.DefaultActionKey {
					m.focused = i
					break
				}
			}
		}
		m.mode = modeActionFocus
		return m, nil

	case modeActionFocus:
		if len(m.row) == 0 {
			m.mode = modeBrowsing
			return m, nil
		}
		action := m.row[m.focused]
		idx := m.rowIdx
		var item T
		if action.Scope == ScopeItem && idx >= 0 {
			item = m.cfg.Items[idx]
		}
		m.mode = modeExecuting
		m.executing = action.Label
		m.status = ""
		exec := func() tea.Msg {
			return outcomeMsg[T]{action: action, itemIdx: idx, outcome: invoke(action, item)}
		}
		return m, tea.Batch(m.spin.Tick, exec)
	}
	return m, nil
}

// settle interprets a finished handler. A cancel requested while the
// handler was running wins over whatever the handler reported.
func (m model[T]) settle(msg outcomeMsg[T]) (tea.Model, tea.Cmd) {
	m.executing = ""
	if m.cancelPending {
		m.result = Result[T]{Canceled: true}
		m.mode = modeDone
		return m, tea.Quit
	}

	switch msg.outcome.Kind {
	case OutcomeSuccess:
		if msg.action.ExitAfterExec {
			action := msg.action
			res := Result[T]{OK: true, Action: &action}
			if msg.action.Scope == ScopeItem && msg.itemIdx >= 0 {
				res.Item = m.cfg.Items[msg.itemIdx]
			}
			m.result = res
			m.mode = modeDone
			return m, tea.Quit
		}
		m.status = msg.outcome.Message
		m.statusErr = false
		m.mode = modeBrowsing
		m.row = nil
		m.rerank()

	case OutcomeFailure:
		m.status = msg.outcome.Message
		m.statusErr = true
		if msg.outcome.FollowUp != nil && msg.itemIdx >= 0 {
			m.actions.inject(msg.itemIdx, *msg.outcome.FollowUp)
			m.row = m.actions.available(msg.itemIdx, m.cfg.Items[msg.itemIdx])
			m.rowIdx = msg.itemIdx
			m.focused = 0
			for i, a := range m.row {
				if a.Key == msg.outcome.FollowUp.Key {
					m.focused = i
					break
				}
			}
			m.mode = modeActionFocus
		} else {
			m.mode = modeBrowsing
			m.row = nil
		}

	case OutcomeCanceled:
		m.status = msg.outcome.Message
		m.statusErr = false
		m.mode = modeBrowsing
		m.row = nil
	}
	return m, nil
}

// selection returns the original index and value of the highlighted item,
// or (-1, zero) when the filtered view is empty.
func (m *model[T]) selection() (int, T) {
	var zero T
	if m.selected < 0 || m.selected >= len(m.matches) {
		return -1, zero
	}
	idx := m.matches[m.selected].Index
	return idx, m.cfg.Items[idx]
}

// rerank recomputes the filtered order for the current query. Callers
// that changed the query reset the selection first; otherwise it is
// clamped (-1 iff nothing matches).
func (m *model[T]) rerank() {
	m.matches = Rank(len(m.cfg.Items), m.query, func(i int) string {
		return m.cfg.SearchText(m.cfg.Items[i])
	})
	if len(m.matches) == 0 {
		m.selected = -1
	} else if m.selected < 0 || m.selected >= len(m.matches) {
		m.selected = 0
	}
}

func (m model[T]) maxRows() int {
	rows := m.cfg.MaxVisibleRows
	// Leave room for prompt, status, action row and hints on short
	// terminals.
	if m.height > 0 && m.height-6 < rows {
		rows = m.height - 6
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m model[T]) View() string {
	if m.mode == modeDone {
		return ""
	}
	var b strings.Builder

	if m.cfg.Header != "" {
		b.WriteString(m.styles.Title.Render(m.cfg.Header))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := m.styles.Status
		if m.statusErr {
			style = m.styles.StatusError
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}

	if m.mode == modeExecuting {
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Dim.Render(m.executing + "…"))
	} else {
		b.WriteString(m.styles.Prompt.Render("> "))
		b.WriteString(m.styles.Query.Render(m.query))
		b.WriteString(m.styles.Dim.Render("▌"))
	}
	b.WriteString("\n")

	if len(m.matches) == 0 {
		b.WriteString(m.styles.Dim.Render("  no matches"))
		b.WriteString("\n")
	} else {
		start, end := Window(len(m.matches), m.selected, m.maxRows())
		for i := start; i < end; i++ {
			match := m.matches[i]
			item := m.cfg.Items[match.Index]
			display := m.cfg.RenderText(item)
			marks := displayPositions(display, m.cfg.SearchText(item), match)
			b.WriteString(renderRow(display, marks, i == m.selected, m.width, m.styles))
			b.WriteString("\n")
		}
	}

	if m.mode == modeActionFocus {
		b.WriteString(m.renderActionRow())
	}

	b.WriteString(m.styles.Dim.Render(m.hints()))
	b.WriteString("\n")
	return b.String()
}

func (m model[T]) renderActionRow() string {
	var b strings.Builder
	for i, a := range m.row {
		if i > 0 {
			b.WriteString(" ")
		}
		if i == m.focused {
			b.WriteString(m.styles.ActionKeyFocused.Render(a.Label))
		} else {
			b.WriteString(m.styles.ActionKey.Render(" " + a.Label + " "))
		}
	}
	b.WriteString("\n")
	if desc := m.row[m.focused].Description; desc != "" {
		b.WriteString(m.styles.ActionDesc.Render(desc))
		b.WriteString("\n")
	}
	return b.String()
}

func (m model[T]) hints() string {
	switch m.mode {
	case modeActionFocus:
		return "←→ action · enter run · esc back"
	case modeExecuting:
		return "ctrl+c cancel after it finishes"
	default:
		if m.cfg.AllowBack {
			return "↑↓ move · enter select · esc clear/back · ctrl+c quit"
		}
		return "↑↓ move · enter select · esc clear · ctrl+c quit"
	}
}
