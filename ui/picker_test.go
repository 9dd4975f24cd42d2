package ui

import (
	"strings"
	"testing"

	"github.com/sahilm/fuzzy"
)

func TestHighlightKeepsMultibyteRunes(t *testing.T) {
	str := "/home/user/路径/docs"
	m := fuzzy.Match{Str: str}
	for i := range []byte(str) {
		m.MatchedIndexes = append(m.MatchedIndexes, i)
	}
	if got := highlight(m); !strings.Contains(got, "路径") {
		t.Errorf("fully matched path mangled: %q", got)
	}

	// Only the multi-byte segment matched.
	start := strings.Index(str, "路径")
	m.MatchedIndexes = nil
	for i := start; i < start+len("路径"); i++ {
		m.MatchedIndexes = append(m.MatchedIndexes, i)
	}
	if got := highlight(m); !strings.Contains(got, "路径") {
		t.Errorf("partially matched path mangled: %q", got)
	}
}

func TestHighlightNoMatches(t *testing.T) {
	m := fuzzy.Match{Str: "/home/user/docs"}
	if got := highlight(m); got != m.Str {
		t.Errorf("unmatched line should pass through unchanged: %q", got)
	}
}
