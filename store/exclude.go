package store

import (
	"path/filepath"
	"strings"

	"github.com/monochromegane/go-gitignore"
)

// ExcludeRules decides which directories are never tracked. Patterns use
// gitignore syntax rooted at the filesystem root, so anchored prefixes
// ("/tmp") and any-depth names ("node_modules") both work.
type ExcludeRules struct {
	matcher gitignore.IgnoreMatcher
}

// CompileExcludes builds ExcludeRules from configured patterns. An empty
// pattern list matches nothing.
func CompileExcludes(patterns []string) ExcludeRules {
	cleaned := patterns[:0:0]
	for _, p := range patterns {
		if strings.TrimSpace(p) != "" {
			cleaned = append(cleaned, p)
		}
	}
	if len(cleaned) == 0 {
		return ExcludeRules{}
	}
	// The matcher resolves every candidate relative to its base directory,
	// so the base must be the filesystem root for anchored patterns like
	// "/tmp" to line up with absolute paths.
	m := gitignore.NewGitIgnoreFromReader("/", strings.NewReader(strings.Join(cleaned, "\n")))
	return ExcludeRules{matcher: m}
}

// Match reports whether path is excluded from tracking. A rule matching
// any ancestor excludes the whole subtree, the same way a walker applying
// gitignore rules would never descend into it.
func (r ExcludeRules) Match(path string) bool {
	if r.matcher == nil {
		return false
	}
	for p := path; ; {
		if r.matcher.Match(p, true) {
			return true
		}
		parent := filepath.Dir(p)
		if parent == p {
			return false
		}
		p = parent
	}
}
