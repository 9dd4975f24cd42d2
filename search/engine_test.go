package search

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/montrey/zd/store"
)

func mkdirs(t *testing.T, base string, names ...string) []string {
	t.Helper()
	paths := make([]string, len(names))
	for i, name := range names {
		p := filepath.Join(base, name)
		if err := os.MkdirAll(p, 0755); err != nil {
			t.Fatal(err)
		}
		paths[i] = p
	}
	return paths
}

func newStore(t *testing.T, base string) *store.Store {
	t.Helper()
	return store.New(filepath.Join(base, "zd.data"), 0, store.ExcludeRules{})
}

func TestQueryBestMatch(t *testing.T) {
	base := t.TempDir()
	dirs := mkdirs(t, base, "projects/jumper", "projects/other")

	st := newStore(t, base)
	st.InsertOrUpdate(dirs[0], 1000)
	st.InsertOrUpdate(dirs[1], 2000)

	// The keyword match beats the other entry's recency advantage.
	got, err := New(st).Query([]string{"jumper"}, 2001)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if got != dirs[0] {
		t.Errorf("Query = %q, want %q", got, dirs[0])
	}
}

func TestQueryFrecencyBalance(t *testing.T) {
	base := t.TempDir()
	dirs := mkdirs(t, base, "proj-one", "proj-two")

	// Identical suffix shapes, so the fuzzy scores for "proj" are equal
	// and the frecency term alone decides the winner.
	buildStore := func(oldVisits int, freshAt int64) *store.Store {
		st := newStore(t, base)
		for i := 0; i < oldVisits; i++ {
			st.InsertOrUpdate(dirs[0], 0)
		}
		st.InsertOrUpdate(dirs[1], freshAt)
		return st
	}

	t.Run("frequency holds against mild staleness", func(t *testing.T) {
		now := int64(100001)
		st := buildStore(50, now-1)
		fOld := store.Frecency(50, 0, now)
		fNew := store.Frecency(1, now-1, now)
		if fOld <= fNew {
			t.Fatalf("formula expectation broken: old %v, new %v", fOld, fNew)
		}
		got, err := New(st).Query([]string{"proj"}, now)
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if got != dirs[0] {
			t.Errorf("Query = %q, want the frequent entry %q", got, dirs[0])
		}
	})

	t.Run("recency dominates a long-decayed frequency", func(t *testing.T) {
		now := int64(10_000_000)
		st := buildStore(50, now-1)
		fOld := store.Frecency(50, 0, now)
		fNew := store.Frecency(1, now-1, now)
		if fNew <= fOld {
			t.Fatalf("formula expectation broken: old %v, new %v", fOld, fNew)
		}
		got, err := New(st).Query([]string{"proj"}, now)
		if err != nil {
			t.Fatalf("Query failed: %v", err)
		}
		if got != dirs[1] {
			t.Errorf("Query = %q, want the recent entry %q", got, dirs[1])
		}
	})
}

func TestQueryNoMatch(t *testing.T) {
	base := t.TempDir()
	dirs := mkdirs(t, base, "projects/app")

	st := newStore(t, base)
	st.InsertOrUpdate(dirs[0], 1000)

	_, err := New(st).Query([]string{"qqqqq"}, 1001)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// An empty store behaves the same.
	empty := newStore(t, base)
	_, err = New(empty).Query([]string{"app"}, 1001)
	if !errors.Is(err, store.ErrNotFound) {
		t.Errorf("expected ErrNotFound on empty store, got %v", err)
	}
}

func TestQueryPrunesVanishedDirectories(t *testing.T) {
	base := t.TempDir()
	dirs := mkdirs(t, base, "keep", "gone")

	st := newStore(t, base)
	st.InsertOrUpdate(dirs[0], 1000)
	st.InsertOrUpdate(dirs[1], 2000)

	if err := os.Remove(dirs[1]); err != nil {
		t.Fatal(err)
	}

	eng := New(st)
	if _, err := eng.Query([]string{"gone"}, 2001); !errors.Is(err, store.ErrNotFound) {
		t.Errorf("vanished directory should not match, got err=%v", err)
	}
	if _, ok := st.Get(dirs[1]); ok {
		t.Error("vanished directory should have been pruned from the store")
	}

	ranked := eng.Ranked(nil, 2001)
	if len(ranked) != 1 || ranked[0].Path != dirs[0] {
		t.Errorf("Ranked after prune: %v", ranked)
	}
}

func TestRankedByFrecency(t *testing.T) {
	base := t.TempDir()
	dirs := mkdirs(t, base, "often", "rarely")

	st := newStore(t, base)
	now := int64(5000)
	for i := 0; i < 10; i++ {
		st.InsertOrUpdate(dirs[0], now)
	}
	st.InsertOrUpdate(dirs[1], now)

	// No keywords: rank by frecency alone.
	ranked := New(st).Ranked(nil, now)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 results, got %d", len(ranked))
	}
	if ranked[0].Path != dirs[0] {
		t.Errorf("frequent entry should rank first: %v", ranked)
	}
	if ranked[0].Score <= ranked[1].Score {
		t.Errorf("scores out of order: %v", ranked)
	}
}

func TestRankedFiltersByKeywords(t *testing.T) {
	base := t.TempDir()
	dirs := mkdirs(t, base, "alpha", "beta")

	st := newStore(t, base)
	st.InsertOrUpdate(dirs[0], 100)
	st.InsertOrUpdate(dirs[1], 100)

	ranked := New(st).Ranked([]string{"beta"}, 101)
	if len(ranked) != 1 || ranked[0].Path != dirs[1] {
		t.Errorf("keyword filter: %v", ranked)
	}
}
