// Package config holds the bundling defaults and loads ignore patterns and
// application configuration.
package config

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/bundle/internal/utils"
)

const (
	// commentLinePrefix marks ignore-file lines that carry no pattern.
	commentLinePrefix = "#"
	// warningCloseFileFormat reports a failure to close an ignore file.
	warningCloseFileFormat = "Warning: failed to close %s: %v\n"
	// errorLoadGitignoreFormat reports a failure to read the root ignore file.
	errorLoadGitignoreFormat = "loading " + utils.GitIgnoreFileName + " from %s: %w"
)

// LoadGitignorePatterns reads the .gitignore file at the root directory and
// returns its patterns in order. A missing file yields no patterns and no
// error. Blank lines and comment lines are dropped; every other line is kept
// verbatim after trimming surrounding whitespace.
//
// #nosec G304
func LoadGitignorePatterns(rootDirectoryPath string) ([]string, error) {
	gitignoreFilePath := filepath.Join(rootDirectoryPath, utils.GitIgnoreFileName)
	fileHandle, openFileError := os.Open(gitignoreFilePath)
	if openFileError != nil {
		if os.IsNotExist(openFileError) {
			return nil, nil
		}
		return nil, openFileError
	}
	defer func() {
		closeError := fileHandle.Close()
		if closeError != nil {
			fmt.Fprintf(os.Stderr, warningCloseFileFormat, gitignoreFilePath, closeError)
		}
	}()

	var patterns []string
	scanner := bufio.NewScanner(fileHandle)
	for scanner.Scan() {
		trimmedLine := strings.TrimSpace(scanner.Text())
		if trimmedLine == utils.EmptyString || strings.HasPrefix(trimmedLine, commentLinePrefix) {
			continue
		}
		patterns = append(patterns, trimmedLine)
	}
	if scanError := scanner.Err(); scanError != nil {
		return nil, scanError
	}
	return patterns, nil
}

// CombinedIgnorePatterns assembles the full ignore rule list for a run: the
// built-in defaults, then caller-supplied exclusions, then patterns from the
// root .gitignore when enabled. Duplicates are removed preserving order.
func CombinedIgnorePatterns(rootDirectoryPath string, exclusionPatterns []string, useGitignore bool) ([]string, error) {
	combinedPatterns := DefaultExcludePatterns()

	for _, pattern := range exclusionPatterns {
		trimmedPattern := strings.TrimSpace(pattern)
		if trimmedPattern == utils.EmptyString {
			continue
		}
		combinedPatterns = append(combinedPatterns, trimmedPattern)
	}

	if useGitignore {
		gitignorePatterns, loadError := LoadGitignorePatterns(rootDirectoryPath)
		if loadError != nil {
			return nil, fmt.Errorf(errorLoadGitignoreFormat, rootDirectoryPath, loadError)
		}
		combinedPatterns = append(combinedPatterns, gitignorePatterns...)
	}

	return utils.DeduplicatePatterns(combinedPatterns), nil
}
