package fuzzy

import "math"

// Scoring constants for the match dynamic program. A matched character earns
// the bonus of its position; gaps between matched characters are penalized,
// with leading and trailing gaps cheaper than gaps inside the match.
const (
	ScoreGapLeading       = -0.005
	ScoreGapTrailing      = -0.005
	ScoreGapInner         = -0.01
	ScoreMatchConsecutive = 1.0
	ScoreMatchSlash       = 0.9
	ScoreMatchWord        = 0.8
	ScoreMatchCapital     = 0.7
	ScoreMatchDot         = 0.6
)

// Sentinel scores. ScoreMin means "no match" and is returned instead of an
// error; ScoreMax is reserved for exact-length matches and empty needles.
var (
	ScoreMin = -math.MaxFloat64
	ScoreMax = math.MaxFloat64
)

type charClass int

const (
	classLower charClass = iota
	classUpper
	classDigit
	classSlash
	classDot
	classSep
)

func classOf(ch rune) charClass {
	switch {
	case ch >= 'a' && ch <= 'z':
		return classLower
	case ch >= 'A' && ch <= 'Z':
		return classUpper
	case ch >= '0' && ch <= '9':
		return classDigit
	case ch == '/':
		return classSlash
	case ch == '.':
		return classDot
	case ch == ' ' || ch == '-' || ch == '_':
		return classSep
	default:
		return classLower
	}
}

// bonusFor returns the bonus earned by matching cur when it follows prev.
// Characters that open a path segment score highest, then word starts after
// a separator, then camelCase humps, then characters after a dot.
func bonusFor(prev, cur charClass) float64 {
	switch cur {
	case classUpper:
		switch prev {
		case classLower:
			return ScoreMatchCapital
		case classSlash:
			return ScoreMatchSlash
		case classSep:
			return ScoreMatchWord
		case classDot:
			return ScoreMatchDot
		}
	case classLower, classDigit:
		switch prev {
		case classSlash:
			return ScoreMatchSlash
		case classSep:
			return ScoreMatchWord
		case classDot:
			return ScoreMatchDot
		}
	}
	return 0
}

// matchBonus precomputes the positional bonus for every rune of haystack.
// The position before the string counts as a slash so that the very first
// character earns the segment-start bonus.
func matchBonus(haystack []rune) []float64 {
	bonus := make([]float64, len(haystack))
	prev := classSlash
	for i, ch := range haystack {
		cur := classOf(ch)
		bonus[i] = bonusFor(prev, cur)
		prev = cur
	}
	return bonus
}
