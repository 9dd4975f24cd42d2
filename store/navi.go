package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// ReadNaviHistory reads the visit history out of a navi SQLite database so
// an existing navi user can migrate without losing their frecency data.
// The navi schema keeps one row per path with a frequency counter and a
// last-visited timestamp, which map directly onto Entry.
func ReadNaviHistory(dbPath string) ([]Entry, error) {
	db, err := sql.Open("sqlite3", "file:"+dbPath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open navi database: %w", err)
	}
	defer db.Close()

	rows, err := db.Query(`SELECT path, frequency, last_visited FROM history`)
	if err != nil {
		return nil, fmt.Errorf("failed to read navi history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var (
			path        string
			frequency   int
			lastVisited time.Time
		)
		if err := rows.Scan(&path, &frequency, &lastVisited); err != nil {
			return nil, fmt.Errorf("failed to scan navi history row: %w", err)
		}
		if frequency < 1 {
			frequency = 1
		}
		entries = append(entries, Entry{
			Path:       path,
			VisitCount: frequency,
			LastAccess: lastVisited.Unix(),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read navi history: %w", err)
	}
	return entries, nil
}
