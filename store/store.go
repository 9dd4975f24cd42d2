// Package store owns the collection of tracked directories: the in-memory
// entry map, the line-oriented datafile it persists to, the frecency rank,
// and the exclude rules consulted on insert.
//
// All mutations are in-memory; callers persist explicitly with Save, once
// per process. There is no file locking: concurrent invocations race and the
// last writer wins, which is acceptable for a single-user shell tool.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Store is the durable, validated collection of entries, keyed by path.
type Store struct {
	entries map[string]Entry
	path    string // datafile location
	maxAge  int64  // seconds; entries older than this are pruned
	exclude ExcludeRules
	dirty   bool
}

// New returns an empty store backed by the datafile at path.
func New(path string, maxAge int64, exclude ExcludeRules) *Store {
	return &Store{
		entries: make(map[string]Entry),
		path:    path,
		maxAge:  maxAge,
		exclude: exclude,
	}
}

// Open loads the datafile at path into a new store. A missing datafile is
// not an error; it yields an empty store.
func Open(path string, maxAge int64, exclude ExcludeRules) (*Store, error) {
	s := New(path, maxAge, exclude)
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to open datafile %s: %w", path, err)
	}
	defer f.Close()

	entries, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read datafile %s: %w", path, err)
	}
	for _, e := range entries {
		s.entries[e.Path] = e
	}
	return s, nil
}

// InsertOrUpdate records a visit to path at time now. A known path gets its
// visit count incremented and its last access bumped; an unknown path starts
// at count 1. Paths matching the exclude rules are silently ignored.
func (s *Store) InsertOrUpdate(path string, now int64) {
	if s.exclude.Match(path) {
		return
	}
	e, ok := s.entries[path]
	if !ok {
		s.entries[path] = Entry{Path: path, VisitCount: 1, LastAccess: now}
		s.dirty = true
		return
	}
	e.VisitCount++
	if now > e.LastAccess {
		e.LastAccess = now
	}
	s.entries[path] = e
	s.dirty = true
}

// Delete removes the entry for path. Deleting an unknown path is a no-op.
func (s *Store) Delete(path string) {
	if _, ok := s.entries[path]; !ok {
		return
	}
	delete(s.entries, path)
	s.dirty = true
}

// Clear removes all entries.
func (s *Store) Clear() {
	if len(s.entries) == 0 {
		return
	}
	s.entries = make(map[string]Entry)
	s.dirty = true
}

// Get returns the entry for path, if tracked.
func (s *Store) Get(path string) (Entry, bool) {
	e, ok := s.entries[path]
	return e, ok
}

// Len returns the number of tracked entries.
func (s *Store) Len() int {
	return len(s.entries)
}

// List returns the entries in a stable order. With onlyValid set, entries
// whose path no longer exists as a directory are omitted.
func (s *Store) List(onlyValid bool) []Entry {
	out := make([]Entry, 0, len(s.entries))
	for _, e := range s.entries {
		if onlyValid && !isDir(e.Path) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}

// ValidateAndPrune drops entries whose directory vanished from the
// filesystem and entries whose last access exceeded maxAge. This reconciles
// the historical record with directories renamed or deleted outside the
// tool's knowledge.
func (s *Store) ValidateAndPrune(now int64) {
	for path, e := range s.entries {
		if e.Expired(now, s.maxAge) || !isDir(path) {
			delete(s.entries, path)
			s.dirty = true
		}
	}
}

// Merge folds imported entries into the store, keeping the higher visit
// count and later access time on collision. It returns the number of
// entries merged.
func (s *Store) Merge(entries []Entry) int {
	merged := 0
	for _, e := range entries {
		if e.Path == "" || s.exclude.Match(e.Path) {
			continue
		}
		if cur, ok := s.entries[e.Path]; ok {
			if cur.VisitCount > e.VisitCount {
				e.VisitCount = cur.VisitCount
			}
			if cur.LastAccess > e.LastAccess {
				e.LastAccess = cur.LastAccess
			}
		}
		s.entries[e.Path] = e
		merged++
	}
	if merged > 0 {
		s.dirty = true
	}
	return merged
}

// Save writes the store back to its datafile if anything changed since
// load. The write goes to a temp file in the same directory followed by a
// rename, so readers never observe a half-written datafile.
func (s *Store) Save() error {
	if !s.dirty {
		return nil
	}
	if err := s.Export(s.path, FormatNative, 0); err != nil {
		return err
	}
	s.dirty = false
	return nil
}

// Export writes the entries to path in the given datafile format, using the
// same atomic replace discipline as Save. The classic z format serializes a
// frecency rank in place of the visit count, computed at time now.
func (s *Store) Export(path string, format Format, now int64) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create datafile directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".zd-*")
	if err != nil {
		return fmt.Errorf("failed to create temp datafile: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := Encode(tmp, s.List(false), format, now); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write datafile: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write datafile: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace datafile: %w", err)
	}
	return nil
}

// Dirty reports whether the store has unsaved changes.
func (s *Store) Dirty() bool {
	return s.dirty
}

// MaxAge returns the configured entry lifetime in seconds.
func (s *Store) MaxAge() int64 {
	return s.maxAge
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
