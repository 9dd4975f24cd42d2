// Package fuzzy scores how well a short query matches a candidate path.
//
// Matching is an ordered, possibly non-contiguous, case-insensitive
// subsequence check. Scoring follows the fzy dynamic program: matched
// characters aligned with path-segment or word starts earn bonuses,
// consecutive matches beat scattered ones, and skipped characters cost a
// gap penalty that is cheaper outside the matched region.
package fuzzy

import (
	"math"
	"strings"
)

// HasMatch reports whether every character of needle appears in haystack in
// the same relative order, ignoring case. An empty needle always matches.
// This is the cheap pre-filter; callers should check it before MatchScore.
func HasMatch(needle, haystack string) bool {
	h := []rune(strings.ToLower(haystack))
	j := 0
	for _, ch := range strings.ToLower(needle) {
		for {
			if j >= len(h) {
				return false
			}
			j++
			if h[j-1] == ch {
				break
			}
		}
	}
	return true
}

// MatchScore computes the quality of the best alignment of needle inside
// haystack. Higher is better. It returns ScoreMin when needle does not
// match, and ScoreMax when needle is empty or consumes haystack exactly.
func MatchScore(needle, haystack string) float64 {
	if needle == "" {
		return ScoreMax
	}
	if !HasMatch(needle, haystack) {
		return ScoreMin
	}
	n := []rune(strings.ToLower(needle))
	h := []rune(strings.ToLower(haystack))
	switch {
	case len(n) > len(h):
		return ScoreMin
	case len(n) == len(h):
		// has_match already holds, so this is an exact match.
		return ScoreMax
	}

	// Bonuses come from the original casing so camelCase humps still count.
	bonus := matchBonus([]rune(haystack))
	m := len(h)

	// Rolling rows over needle index i:
	// matched[j] is the best score for n[:i+1] with n[i] matched at h[j];
	// best[j] is the best score for n[:i+1] using h[:j+1] however it ends.
	prevMatched := make([]float64, m)
	prevBest := make([]float64, m)
	curMatched := make([]float64, m)
	curBest := make([]float64, m)

	for i := 0; i < len(n); i++ {
		gap := ScoreGapInner
		if i == len(n)-1 {
			gap = ScoreGapTrailing
		}
		rowBest := ScoreMin
		for j := 0; j < m; j++ {
			if n[i] == h[j] {
				score := ScoreMin
				if i == 0 {
					score = float64(j)*ScoreGapLeading + bonus[j]
				} else if j > 0 {
					score = math.Max(
						prevBest[j-1]+bonus[j],
						prevMatched[j-1]+ScoreMatchConsecutive,
					)
				}
				curMatched[j] = score
				rowBest = math.Max(score, rowBest+gap)
			} else {
				curMatched[j] = ScoreMin
				rowBest += gap
			}
			curBest[j] = rowBest
		}
		prevMatched, curMatched = curMatched, prevMatched
		prevBest, curBest = curBest, prevBest
	}
	return prevBest[m-1]
}

// MatchAll reports whether haystack satisfies every keyword. Keywords are
// conjunctive; order between keywords is not required to follow the path.
func MatchAll(keywords []string, haystack string) bool {
	for _, kw := range keywords {
		if !HasMatch(kw, haystack) {
			return false
		}
	}
	return true
}

// ScoreAll sums the per-keyword match scores against haystack, so a weak
// keyword degrades the total instead of vetoing it. It returns ScoreMin if
// any keyword fails to match.
func ScoreAll(keywords []string, haystack string) float64 {
	if len(keywords) == 0 {
		return ScoreMax
	}
	total := 0.0
	for _, kw := range keywords {
		if !HasMatch(kw, haystack) {
			return ScoreMin
		}
		total += MatchScore(kw, haystack)
	}
	return total
}
