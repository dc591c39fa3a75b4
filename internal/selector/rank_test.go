package selector

import (
	"testing"
)

func rankStrings(items []string, query string) []Match {
	return Rank(len(items), query, func(i int) string { return items[i] })
}

func names(items []string, matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = items[m.Index]
	}
	return out
}

func TestRankEmptyQueryKeepsInputOrder(t *testing.T) {
	items := []string{"main", "develop", "release/v1"}
	matches := rankStrings(items, "")
	if len(matches) != len(items) {
		t.Fatalf("expected all items, got %d", len(matches))
	}
	for i, m := range matches {
		if m.Index != i {
			t.Fatalf("position %d: expected index %d, got %d", i, i, m.Index)
		}
		if len(m.Positions) != 0 {
			t.Fatalf("empty query must not mark positions")
		}
	}
}

func TestRankSeparatorOnlyQueryIsIdentity(t *testing.T) {
	items := []string{"main", "feature/login"}
	matches := rankStrings(items, " -/_.")
	if len(matches) != 2 || matches[0].Index != 0 || matches[1].Index != 1 {
		t.Fatalf("separator-only query should behave like the empty query: %+v", matches)
	}
}

func TestRankSubstringFilter(t *testing.T) {
	items := []string{"main", "feature/login", "feature/logout", "release/v1"}
	got := names(items, rankStrings(items, "log"))
	want := []string{"feature/login", "feature/logout"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRankCaseInsensitive(t *testing.T) {
	items := []string{"Feature/Login", "main"}
	matches := rankStrings(items, "LOGIN")
	if len(matches) != 1 || matches[0].Index != 0 {
		t.Fatalf("case-insensitive match failed: %+v", matches)
	}
	if matches[0].Tier != TierExact {
		t.Fatalf("contiguous match should rank in the exact tier")
	}
}

func TestRankExactTierBeatsFuzzyTier(t *testing.T) {
	// "fl" appears as a subsequence of "feature/login" but as a
	// contiguous run only in "flyweight".
	items := []string{"feature/login", "flyweight"}
	matches := rankStrings(items, "fl")
	if len(matches) != 2 {
		t.Fatalf("expected both to match, got %d", len(matches))
	}
	if items[matches[0].Index] != "flyweight" {
		t.Fatalf("contiguous match must outrank the scattered one: %+v", matches)
	}
	if matches[0].Tier != TierExact || matches[1].Tier != TierFuzzy {
		t.Fatalf("tier mismatch: %+v", matches)
	}
}

func TestRankExactPrefersEarlierThenShorter(t *testing.T) {
	items := []string{"deploy/main", "main", "mainline"}
	got := names(items, rankStrings(items, "main"))
	want := []string{"main", "mainline", "deploy/main"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestRankFuzzySkipsSeparators(t *testing.T) {
	// The query "fli" crosses the "/" in "feature/login" without the
	// separator counting against the span.
	items := []string{"feature/login"}
	matches := rankStrings(items, "f/l")
	if len(matches) != 1 {
		t.Fatalf("separators in the query should be ignored: %+v", matches)
	}
}

func TestRankFuzzyConsecutiveBonus(t *testing.T) {
	// Neither text contains "ab" contiguously, so both land in the fuzzy
	// tier; the one whose stripped form keeps the runes adjacent wins.
	items := []string{"a-x-b", "a-b-x"}
	got := names(items, rankStrings(items, "ab"))
	if got[0] != "a-b-x" {
		t.Fatalf("adjacent runes should score above a spread: %v", got)
	}
	matches := rankStrings(items, "ab")
	if matches[0].Tier != TierFuzzy || matches[1].Tier != TierFuzzy {
		t.Fatalf("expected fuzzy tier for both: %+v", matches)
	}
}

func TestRankStableForTies(t *testing.T) {
	items := []string{"alpha-one", "alpha-two", "alpha-six"}
	matches := rankStrings(items, "alpha")
	// Same offset, same length prefix: scores differ only by total
	// length, which is equal here, so input order must hold.
	want := []int{0, 1, 2}
	for i, m := range matches {
		if m.Index != want[i] {
			t.Fatalf("tie order not stable: %+v", matches)
		}
	}
}

func TestRankNarrowingIsMonotonic(t *testing.T) {
	items := []string{"main", "feature/login", "feature/logout", "release/v1", "hotfix/log4j"}
	prev := rankStrings(items, "lo")
	next := rankStrings(items, "log")

	surviving := make(map[int]bool)
	for _, m := range next {
		surviving[m.Index] = true
	}
	prevSet := make(map[int]bool)
	for _, m := range prev {
		prevSet[m.Index] = true
	}
	for idx := range surviving {
		if !prevSet[idx] {
			t.Fatalf("item %d matches %q but not its prefix", idx, "log")
		}
	}
}

func TestRankNoMatch(t *testing.T) {
	items := []string{"main", "develop"}
	if got := rankStrings(items, "zzz"); len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}
}

func TestRankPositionsAreRuneOffsets(t *testing.T) {
	items := []string{"héllo-world"}
	matches := rankStrings(items, "llo")
	if len(matches) != 1 {
		t.Fatalf("expected a match")
	}
	want := []int{2, 3, 4}
	got := matches[0].Positions
	if len(got) != len(want) {
		t.Fatalf("positions %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("positions %v, want %v", got, want)
		}
	}
}
