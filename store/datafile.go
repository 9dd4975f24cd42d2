package store

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Format selects the on-disk line layout. Both formats share the classic
// frecency-jumper shape, path|<figure>|<epoch seconds>, and differ only in
// the middle field: the native format stores the raw visit count, the
// classic z format stores a frecency rank.
type Format int

const (
	FormatNative Format = iota
	FormatZ
)

// ParseFormat maps a CLI-facing format name to a Format.
func ParseFormat(name string) (Format, error) {
	switch name {
	case "zd", "native":
		return FormatNative, nil
	case "z":
		return FormatZ, nil
	}
	return 0, fmt.Errorf("unknown datafile format %q", name)
}

const fieldSep = "|"

// Decode reads entries from a datafile in either format. Malformed lines
// are skipped with a warning instead of aborting the load, so hand-edited
// or partially corrupted datafiles written by compatible tools still parse.
// The middle field tolerates both integer visit counts and the fractional
// ranks written by classic z; extra trailing fields are ignored.
func Decode(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		e, err := parseLine(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zd: skipping datafile line %d: %v\n", lineNum, err)
			continue
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read datafile: %w", err)
	}
	return entries, nil
}

func parseLine(line string) (Entry, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < 3 {
		return Entry{}, fmt.Errorf("want at least 3 fields, got %d", len(fields))
	}
	path := fields[0]
	if path == "" {
		return Entry{}, fmt.Errorf("empty path")
	}
	rank, err := strconv.ParseFloat(fields[1], 64)
	if err != nil || math.IsNaN(rank) || math.IsInf(rank, 0) {
		return Entry{}, fmt.Errorf("invalid rank %q", fields[1])
	}
	count := int(math.Round(rank))
	if count < 1 {
		count = 1
	}
	epoch, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil || epoch < 0 {
		return Entry{}, fmt.Errorf("invalid last accessed %q", fields[2])
	}
	return Entry{Path: path, VisitCount: count, LastAccess: epoch}, nil
}

// Encode writes entries one per line. For FormatZ the visit count is
// replaced by the frecency rank at time now, matching what classic z tools
// expect to find in the middle field.
func Encode(w io.Writer, entries []Entry, format Format, now int64) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		var line string
		switch format {
		case FormatZ:
			rank := Frecency(e.VisitCount, e.LastAccess, now)
			line = fmt.Sprintf("%s%s%.1f%s%d\n", e.Path, fieldSep, rank, fieldSep, e.LastAccess)
		default:
			line = fmt.Sprintf("%s%s%d%s%d\n", e.Path, fieldSep, e.VisitCount, fieldSep, e.LastAccess)
		}
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
