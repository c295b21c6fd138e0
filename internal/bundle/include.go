package bundle

import (
	"path/filepath"
	"strings"
)

// extensionSeparator is the character introducing a file extension.
const extensionSeparator = "."

// IncludeSet holds the file extensions and exact file names eligible for bundling.
type IncludeSet struct {
	entries map[string]struct{}
}

// NewIncludeSet builds an IncludeSet from extension and exact-name entries.
// Entries are trimmed of surrounding whitespace; blank entries are dropped.
func NewIncludeSet(entries []string) IncludeSet {
	entrySet := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		trimmedEntry := strings.TrimSpace(entry)
		if trimmedEntry == "" {
			continue
		}
		entrySet[trimmedEntry] = struct{}{}
	}
	return IncludeSet{entries: entrySet}
}

// Len returns the number of entries in the set.
func (includeSet IncludeSet) Len() int {
	return len(includeSet.entries)
}

// Allows reports whether a file with the given base name is eligible for
// bundling: either its exact full name or its extension must be in the set.
func (includeSet IncludeSet) Allows(fileName string) bool {
	if _, nameIncluded := includeSet.entries[fileName]; nameIncluded {
		return true
	}
	_, extensionIncluded := includeSet.entries[FileExtension(fileName)]
	return extensionIncluded
}

// FileExtension returns the substring of fileName from the last dot onward,
// including the dot. Names without a dot have no extension, and neither do
// names whose only dots lead the name, so ".gitignore" yields the empty string.
func FileExtension(fileName string) string {
	strippedName := strings.TrimLeft(fileName, extensionSeparator)
	if !strings.Contains(strippedName, extensionSeparator) {
		return ""
	}
	return filepath.Ext(fileName)
}
