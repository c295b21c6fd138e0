package bundle

import (
	"path"
	"strings"

	"github.com/gobwas/glob"
)

// patternPathSeparator is the canonical separator used for all pattern matching.
const patternPathSeparator = "/"

// compiledPattern pairs a raw ignore pattern with its compiled matcher.
type compiledPattern struct {
	rawPattern         string
	matcher            glob.Glob
	isDirectoryPattern bool
	directoryPrefix    string
}

// RuleSet is an immutable, pre-compiled collection of ignore patterns.
type RuleSet struct {
	patterns []compiledPattern
}

// NewRuleSet compiles the provided patterns into a RuleSet. Glob syntax
// follows shell semantics where `*` and `?` also cross path separators. A
// pattern the glob engine cannot parse is matched literally instead of being
// rejected.
func NewRuleSet(patterns []string) *RuleSet {
	compiledPatterns := make([]compiledPattern, 0, len(patterns))
	for _, patternValue := range patterns {
		entry := compiledPattern{rawPattern: patternValue, matcher: compilePattern(patternValue)}
		if strings.HasSuffix(patternValue, patternPathSeparator) {
			entry.isDirectoryPattern = true
			entry.directoryPrefix = strings.TrimRight(patternValue, patternPathSeparator)
		}
		compiledPatterns = append(compiledPatterns, entry)
	}
	return &RuleSet{patterns: compiledPatterns}
}

func compilePattern(patternValue string) glob.Glob {
	compiledGlob, compileError := glob.Compile(patternValue)
	if compileError != nil {
		return glob.MustCompile(glob.QuoteMeta(patternValue))
	}
	return compiledGlob
}

// Matches reports whether relativePath is excluded by any pattern in the set.
// relativePath must be forward-slash separated and relative to the walk root.
// isDirectory states whether the candidate is a directory, which the glob
// branch of directory patterns requires.
//
// A directory pattern (trailing separator) matches directories whose relative
// path plus trailing separator satisfies the glob, and additionally matches
// any path that begins with the pattern's directory name. The prefix branch is
// a plain string comparison, so a pattern like "build/" also matches a sibling
// file named "build-notes.txt".
func (ruleSet *RuleSet) Matches(relativePath string, isDirectory bool) bool {
	baseName := path.Base(relativePath)
	for _, entry := range ruleSet.patterns {
		if entry.isDirectoryPattern {
			if isDirectory && entry.matcher.Match(relativePath+patternPathSeparator) {
				return true
			}
			if strings.HasPrefix(relativePath, entry.directoryPrefix) {
				return true
			}
			continue
		}
		if entry.matcher.Match(relativePath) || entry.matcher.Match(baseName) {
			return true
		}
	}
	return false
}
