package selector

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Tier identifies which matching strategy admitted an item.
type Tier int

const (
	// TierExact admits items whose search text contains the query as one
	// contiguous case-insensitive substring.
	TierExact Tier = iota
	// TierFuzzy admits items whose separator-stripped search text contains
	// every query rune, in order, as a subsequence.
	TierFuzzy
)

// Match pairs an item index with its tier, score and the rune positions
// inside the search text that matched the query. Positions are a
// contiguous run for exact matches and individual runes for fuzzy ones;
// they are empty when the query did not filter at all.
type Match struct {
	Index     int
	Tier      Tier
	Score     int
	Positions []int
}

const separators = " -_/."

func isSeparator(r rune) bool {
	return strings.ContainsRune(separators, r)
}

func stripSeparators(s string) string {
	return strings.Map(func(r rune) rune {
		if isSeparator(r) {
			return -1
		}
		return r
	}, s)
}

// Rank filters and orders n items against query. text returns the search
// text for the item at a given index.
//
// An empty query returns every index in original order. A query that is
// empty once separators are stripped (e.g. "  " or "-") behaves the same
// way: its stripped form would subsequence-match anything, so it must not
// filter by the literal separator characters either.
//
// Exact matches always sort above fuzzy ones. Within a tier, higher
// scores sort first and equal scores keep their original relative order.
func Rank(n int, query string, text func(int) string) []Match {
	query = strings.ToLower(query)
	if stripSeparators(query) == "" {
		all := make([]Match, n)
		for i := range all {
			all[i] = Match{Index: i, Tier: TierExact}
		}
		return all
	}

	var exact, fuzzy []Match
	for i := 0; i < n; i++ {
		t := strings.ToLower(text(i))
		if m, ok := exactMatch(i, query, t); ok {
			exact = append(exact, m)
			continue
		}
		if m, ok := fuzzyMatch(i, query, t); ok {
			fuzzy = append(fuzzy, m)
		}
	}

	byScore := func(ms []Match) func(a, b int) bool {
		return func(a, b int) bool { return ms[a].Score > ms[b].Score }
	}
	sort.SliceStable(exact, byScore(exact))
	sort.SliceStable(fuzzy, byScore(fuzzy))
	return append(exact, fuzzy...)
}

// exactMatch scores a contiguous substring hit. Earlier offsets win, and
// among equal offsets shorter search texts win.
func exactMatch(idx int, query, text string) (Match, bool) {
	b := strings.Index(text, query)
	if b < 0 {
		return Match{}, false
	}
	offset := utf8.RuneCountInString(text[:b])
	qlen := utf8.RuneCountInString(query)
	positions := make([]int, qlen)
	for i := range positions {
		positions[i] = offset + i
	}
	score := -(offset*4096 + utf8.RuneCountInString(text))
	return Match{Index: idx, Tier: TierExact, Score: score, Positions: positions}, true
}

// fuzzyMatch strips separators from both sides and greedily matches the
// query runes as a subsequence. Consecutive matched runes earn a bonus;
// the span between the first and last matched rune is a penalty.
// Positions refer to the unstripped search text so the highlighter can
// mark the right runes.
func fuzzyMatch(idx int, query, text string) (Match, bool) {
	q := []rune(stripSeparators(query))
	runes := []rune(text)

	// kept[j] is the position in runes of the j-th non-separator rune.
	kept := make([]int, 0, len(runes))
	for p, r := range runes {
		if !isSeparator(r) {
			kept = append(kept, p)
		}
	}

	positions := make([]int, 0, len(q))
	consecutive := 0
	first, last := -1, -1
	prev := -2
	j := 0
	for k := 0; k < len(kept) && j < len(q); k++ {
		if runes[kept[k]] != q[j] {
			continue
		}
		if k == prev+1 {
			consecutive++
		}
		if first < 0 {
			first = k
		}
		last = k
		prev = k
		positions = append(positions, kept[k])
		j++
	}
	if j < len(q) {
		return Match{}, false
	}
	score := consecutive*16 - (last - first)
	return Match{Index: idx, Tier: TierFuzzy, Score: score, Positions: positions}, true
}
