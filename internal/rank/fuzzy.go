package rank

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
	"github.com/sahilm/fuzzy"
	"golang.org/x/text/cases"
)

const (
	noMatch = 1.0

	// Subsequence matches land in [subsequenceBase, 0.5].
	subsequenceBase = 0.05
	gapWeight       = 0.3
	leadWeight      = 0.1
	coverageWeight  = 0.05

	// Edit-distance matches land in [typoBase, 0.85]; only those with at most
	// 60% of the query's runes edited pass Threshold.
	typoBase     = 0.3
	typoWeight   = 0.5
	minTypoRunes = 3

	leadCap = 10
)

// normalize trims and case-folds s. NUL runes are dropped: sahilm/fuzzy uses 0 as
// its end-of-pattern marker and indexes past the pattern when a target holds one.
func normalize(s string) string {
	return cases.Fold().String(strings.TrimSpace(strings.ReplaceAll(s, "\x00", "")))
}

// fieldCost scores one normalized field. When words is set, a space starts a new
// word and leading-offset penalties are measured from the start of the matched word.
func fieldCost(query, target string, words bool) float64 {
	if target == "" {
		return noMatch
	}
	if target == query {
		return 0
	}
	if c, ok := subsequenceCost(query, target, words); ok {
		return c
	}
	return typoCost(query, target, words)
}

// subsequenceCost rewards matches that start early and run contiguously. Each rune
// skipped between the first and last matched rune raises the cost.
func subsequenceCost(query, target string, words bool) (float64, bool) {
	matches := fuzzy.Find(query, []string{target})
	if len(matches) == 0 || len(matches[0].MatchedIndexes) == 0 {
		return 0, false
	}
	idx := matches[0].MatchedIndexes
	first, last := idx[0], idx[len(idx)-1]

	n := utf8.RuneCountInString(query)
	gaps := utf8.RuneCountInString(target[first:last]) + 1 - len(idx)
	if gaps < 0 {
		gaps = 0
	}
	coverage := float64(n) / float64(utf8.RuneCountInString(target))
	if coverage > 1 {
		coverage = 1
	}

	cost := subsequenceBase +
		gapWeight*float64(gaps)/float64(gaps+n) +
		leadWeight*leadFraction(leadOffset(target, first, words)) +
		coverageWeight*(1-coverage)
	return cost, true
}

// typoCost finds the window of target closest to query by edit distance.
// Queries shorter than minTypoRunes must match as subsequences.
func typoCost(query, target string, words bool) float64 {
	n := utf8.RuneCountInString(query)
	if n < minTypoRunes {
		return noMatch
	}
	runes := []rune(target)
	best := noMatch
	wordStart := 0
	for start := range runes {
		if words && start > 0 && runes[start-1] == ' ' {
			wordStart = start
		}
		if words && runes[start] == ' ' {
			continue
		}
		lead := start
		if words {
			lead = start - wordStart
		}
		for width := n - 1; width <= n+1; width++ {
			end := min(start+width, len(runes))
			if end <= start {
				continue
			}
			d := levenshtein.ComputeDistance(query, string(runes[start:end]))
			cost := typoBase +
				typoWeight*float64(d)/float64(n) +
				leadWeight/2*leadFraction(lead)
			if cost < best {
				best = cost
			}
			if end == len(runes) {
				break
			}
		}
	}
	return best
}

// leadOffset counts the runes before byteIdx, from the start of the field or, with
// words, from the start of the word containing byteIdx.
func leadOffset(target string, byteIdx int, words bool) int {
	prefix := target[:byteIdx]
	if words {
		if sp := strings.LastIndexByte(prefix, ' '); sp >= 0 {
			prefix = prefix[sp+1:]
		}
	}
	return utf8.RuneCountInString(prefix)
}

func leadFraction(lead int) float64 {
	return float64(min(lead, leadCap)) / leadCap
}
