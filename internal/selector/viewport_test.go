package selector

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWindowCentersAndClamps(t *testing.T) {
	cases := []struct {
		total, selected, maxRows int
		wantStart, wantEnd       int
	}{
		{10, 3, 5, 1, 6},
		{10, 0, 3, 0, 3},
		{10, 9, 3, 7, 10},
		{10, 5, 3, 4, 7},
		{2, 1, 5, 0, 2},
		{0, 0, 5, 0, 0},
		{10, 4, 0, 0, 0},
	}
	for _, tc := range cases {
		start, end := Window(tc.total, tc.selected, tc.maxRows)
		if start != tc.wantStart || end != tc.wantEnd {
			t.Fatalf("Window(%d, %d, %d) = [%d, %d), want [%d, %d)",
				tc.total, tc.selected, tc.maxRows, start, end, tc.wantStart, tc.wantEnd)
		}
	}
}

func TestWindowAlwaysContainsSelection(t *testing.T) {
	for total := 1; total <= 20; total++ {
		for sel := 0; sel < total; sel++ {
			for rows := 1; rows <= 7; rows++ {
				start, end := Window(total, sel, rows)
				if sel < start || sel >= end {
					t.Fatalf("Window(%d, %d, %d) = [%d, %d) excludes selection",
						total, sel, rows, start, end)
				}
				if end-start > rows {
					t.Fatalf("Window(%d, %d, %d) = [%d, %d) taller than maxRows",
						total, sel, rows, start, end)
				}
			}
		}
	}
}

func TestDisplayPositionsOffsetsIntoDisplayText(t *testing.T) {
	// Search text "main" sits after the two-rune marker in the display
	// text, so every position shifts by two.
	m := Match{Positions: []int{0, 1, 2, 3}}
	got := displayPositions("* main  subject", "main", m)
	want := []int{2, 3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("positions %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions %v, want %v", got, want)
		}
	}
}

func TestDisplayPositionsMissingSearchText(t *testing.T) {
	m := Match{Positions: []int{0}}
	if got := displayPositions("something else", "main", m); got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestDisplayPositionsEmptyMatch(t *testing.T) {
	if got := displayPositions("main", "main", Match{}); got != nil {
		t.Fatalf("expected nil for unfiltered rows, got %v", got)
	}
}

func TestRenderRowStripRoundTrip(t *testing.T) {
	st := DefaultStyles()
	cases := []struct {
		display string
		marks   []int
		sel     bool
	}{
		{"feature/login", []int{8, 9, 10}, false},
		{"feature/login", []int{8, 9, 10}, true},
		{"feature/login", nil, false},
		{"* main  fix crash", []int{2, 3, 4, 5}, true},
	}
	for _, tc := range cases {
		out := renderRow(tc.display, tc.marks, tc.sel, 0, st)
		if got := ansi.Strip(out); got != tc.display {
			t.Fatalf("stripped %q, want %q", got, tc.display)
		}
	}
}

func TestRenderRowTruncates(t *testing.T) {
	st := DefaultStyles()
	out := renderRow("feature/very-long-branch-name", nil, false, 10, st)
	stripped := ansi.Strip(out)
	if stripped != "feature/v…" {
		t.Fatalf("truncated to %q", stripped)
	}
}

func TestRenderRowIgnoresMarksPastTruncation(t *testing.T) {
	st := DefaultStyles()
	out := renderRow("feature/login", []int{8, 9, 10}, false, 5, st)
	stripped := ansi.Strip(out)
	if stripped != "feat…" {
		t.Fatalf("truncated to %q", stripped)
	}
}
