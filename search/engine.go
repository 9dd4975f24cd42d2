// Package search combines the entry store, the frecency rank, and the
// fuzzy matcher into the query pipeline behind `zd query` and `zd list`.
package search

import (
	"sort"

	"github.com/montrey/zd/fuzzy"
	"github.com/montrey/zd/store"
)

// Result is one ranked candidate.
type Result struct {
	Path  string
	Score float64
}

// Engine answers "best match" and "ranked list" queries over a store.
type Engine struct {
	Store *store.Store
}

// New returns an engine over the given store.
func New(st *store.Store) *Engine {
	return &Engine{Store: st}
}

// Query returns the single best directory for the keywords at time now.
// Candidates must satisfy every keyword as an ordered subsequence; each
// survivor is ranked by its summed match score multiplied by its frecency,
// so a winner has to be both a plausible keyword match and a directory the
// user actually lives in. Candidates whose match score is not positive are
// dropped: a match that earns no segment or word alignment at all is noise.
// Ties go to the more recently visited path. ErrNotFound when nothing
// matches; never a fallback to an arbitrary entry.
func (e *Engine) Query(keywords []string, now int64) (string, error) {
	e.Store.ValidateAndPrune(now)

	var (
		best       string
		bestScore  float64
		bestAccess int64
		found      bool
	)
	for _, ent := range e.Store.List(false) {
		final, ok := e.score(keywords, ent, now)
		if !ok {
			continue
		}
		if !found || final > bestScore ||
			(final == bestScore && ent.LastAccess > bestAccess) {
			best = ent.Path
			bestScore = final
			bestAccess = ent.LastAccess
			found = true
		}
	}
	if !found {
		return "", store.ErrNotFound
	}
	return best, nil
}

// Ranked returns all valid entries ordered by score descending. With
// keywords it applies the same match-then-combine ranking as Query; without
// keywords it ranks by frecency alone, which is what the bare listing and
// the interactive picker consume.
func (e *Engine) Ranked(keywords []string, now int64) []Result {
	e.Store.ValidateAndPrune(now)

	var results []Result
	for _, ent := range e.Store.List(false) {
		final, ok := e.score(keywords, ent, now)
		if !ok {
			continue
		}
		results = append(results, Result{Path: ent.Path, Score: final})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Path < results[j].Path
	})
	return results
}

func (e *Engine) score(keywords []string, ent store.Entry, now int64) (float64, bool) {
	rank := store.Frecency(ent.VisitCount, ent.LastAccess, now)
	if len(keywords) == 0 {
		return rank, true
	}
	match := fuzzy.ScoreAll(keywords, ent.Path)
	if match <= 0 {
		return 0, false
	}
	return match * rank, true
}
