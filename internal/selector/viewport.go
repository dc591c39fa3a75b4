package selector

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// Window returns the half-open row range [start, end) drawn for a list of
// total rows with the given selection, at most maxRows tall. The window
// stays centered on the selection until it reaches either edge of the
// list, then clamps.
func Window(total, selected, maxRows int) (start, end int) {
	if total <= 0 || maxRows <= 0 {
		return 0, 0
	}
	if total <= maxRows {
		return 0, total
	}
	start = selected - maxRows/2
	if start < 0 {
		start = 0
	}
	end = start + maxRows
	if end > total {
		end = total
		start = end - maxRows
	}
	return start, end
}

// displayPositions translates match positions from search-text space into
// display-text space: the search text is located inside the display text,
// then each matched rune is offset by where it starts. Rows whose display
// text does not contain the search text render without highlights.
func displayPositions(display, search string, m Match) []int {
	if len(m.Positions) == 0 {
		return nil
	}
	b := strings.Index(display, search)
	if b < 0 {
		return nil
	}
	offset := utf8.RuneCountInString(display[:b])
	out := make([]int, len(m.Positions))
	for i, p := range m.Positions {
		out[i] = offset + p
	}
	return out
}

// renderRow colorizes one visible row. The row is split into runs of
// matched and unmatched runes and each run is wrapped in the appropriate
// style; styles only recolor, so stripping ANSI codes from the result
// yields the (possibly truncated) display text unchanged.
func renderRow(display string, marks []int, selected bool, width int, st Styles) string {
	text := display
	if width > 0 {
		text = runewidth.Truncate(display, width, "…")
	}

	base := st.Row
	match := st.Match
	if selected {
		base = st.RowSelected
		match = st.MatchSelected
	}

	runes := []rune(text)
	marked := make(map[int]bool, len(marks))
	for _, p := range marks {
		if p < len(runes) {
			marked[p] = true
		}
	}
	if len(marked) == 0 {
		return base.Render(text)
	}

	var b strings.Builder
	runStart := 0
	runMarked := marked[0]
	flush := func(end int) {
		seg := string(runes[runStart:end])
		if runMarked {
			b.WriteString(match.Render(seg))
		} else {
			b.WriteString(base.Render(seg))
		}
	}
	for i := 1; i <= len(runes); i++ {
		if i == len(runes) || marked[i] != runMarked {
			flush(i)
			runStart = i
			if i < len(runes) {
				runMarked = marked[i]
			}
		}
	}
	return b.String()
}
