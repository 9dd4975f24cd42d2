package store

import "math"

// Entry is one tracked directory with its frecency metadata.
type Entry struct {
	Path       string
	VisitCount int
	LastAccess int64 // seconds since epoch
}

// maxRank caps the frecency score so a single hot directory cannot run away
// from the rest of the list.
const maxRank = 1000.0

// Frecency converts visit frequency and recency into one comparable rank:
//
//	(ln(visitCount) + 1) × recencyFactor × 100
//
// The recency factor decays logarithmically with the hours since the last
// visit, so a frequently visited directory stays competitive against one
// visited once a minute ago. The log term is floored at 0.1, so every visit
// younger than e^0.1 hours (about 66 minutes) scores the same 1/1.1 factor;
// decay becomes strictly monotonic only past that plateau. VisitCount is at
// least 1, which keeps the frequency term at or above 1.
func Frecency(visitCount int, lastAccess, now int64) float64 {
	dx := now - lastAccess
	if dx < 0 {
		// Clock skew across processes is tolerated, not corrected.
		dx = 0
	}
	recency := 1.0
	if dx > 0 {
		hours := float64(dx) / 3600.0
		recency = 1.0 / (1.0 + math.Max(math.Log(hours), 0.1))
	}
	rank := (math.Log(float64(visitCount)) + 1.0) * recency * 100.0
	return math.Min(rank, maxRank)
}

// Expired reports whether the entry's last access is older than maxAge
// seconds. A maxAge of zero or less disables expiry.
func (e Entry) Expired(now, maxAge int64) bool {
	return maxAge > 0 && now-e.LastAccess > maxAge
}
