package store

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"
)

func TestReadNaviHistory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "navi.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	if _, err := db.Exec(`CREATE TABLE history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL UNIQUE,
		frequency INTEGER DEFAULT 1,
		last_visited TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		t.Fatal(err)
	}

	visited := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	if _, err := db.Exec(
		`INSERT INTO history (path, frequency, last_visited) VALUES (?, ?, ?), (?, ?, ?)`,
		"/home/user/projects", 9, visited,
		"/home/user/music", 0, visited, // bogus zero frequency clamps to 1
	); err != nil {
		t.Fatal(err)
	}

	entries, err := ReadNaviHistory(dbPath)
	if err != nil {
		t.Fatalf("ReadNaviHistory failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	byPath := make(map[string]Entry)
	for _, e := range entries {
		byPath[e.Path] = e
	}
	p := byPath["/home/user/projects"]
	if p.VisitCount != 9 || p.LastAccess != visited.Unix() {
		t.Errorf("projects entry: %+v", p)
	}
	if m := byPath["/home/user/music"]; m.VisitCount != 1 {
		t.Errorf("zero frequency should clamp to 1, got %d", m.VisitCount)
	}
}
