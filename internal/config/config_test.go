package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/temirov/bundle/internal/utils"
)

// writeTestFile creates a file with the specified content, failing the test on error.
func writeTestFile(testingHandle *testing.T, filePath string, content string) {
	testingHandle.Helper()
	if writeError := os.WriteFile(filePath, []byte(content), 0o644); writeError != nil {
		testingHandle.Fatalf("failed to write %s: %v", filePath, writeError)
	}
}

// TestLoadGitignorePatternsMissingFile verifies that a root without a
// .gitignore yields no patterns and no error.
func TestLoadGitignorePatternsMissingFile(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()

	patternList, loadError := LoadGitignorePatterns(rootDirectory)
	if loadError != nil {
		testingHandle.Fatalf("LoadGitignorePatterns failed: %v", loadError)
	}
	if patternList != nil {
		testingHandle.Fatalf("expected nil patterns, got %v", patternList)
	}
}

// TestLoadGitignorePatternsParsesLines verifies comment and blank handling
// and that surviving lines are trimmed but otherwise untouched.
func TestLoadGitignorePatternsParsesLines(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	gitignoreContent := "# build artifacts\n" +
		"*.log\n" +
		"\n" +
		"   \n" +
		"build/\n" +
		"  spaced.txt  \n" +
		"!negated.txt\n"
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitIgnoreFileName), gitignoreContent)

	patternList, loadError := LoadGitignorePatterns(rootDirectory)
	if loadError != nil {
		testingHandle.Fatalf("LoadGitignorePatterns failed: %v", loadError)
	}

	expectedPatterns := []string{"*.log", "build/", "spaced.txt", "!negated.txt"}
	if !reflect.DeepEqual(patternList, expectedPatterns) {
		testingHandle.Fatalf("unexpected patterns: got %v want %v", patternList, expectedPatterns)
	}
}

// TestCombinedIgnorePatternsOrdersAndDeduplicates verifies default patterns
// come first, then exclusions, then .gitignore entries, with later
// duplicates dropped.
func TestCombinedIgnorePatternsOrdersAndDeduplicates(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitIgnoreFileName), "dist\nsecret.env\n")

	combinedPatterns, combineError := CombinedIgnorePatterns(rootDirectory, []string{"extra/", "node_modules", "  ", ""}, true)
	if combineError != nil {
		testingHandle.Fatalf("CombinedIgnorePatterns failed: %v", combineError)
	}

	expectedPatterns := append(DefaultExcludePatterns(), "extra/", "secret.env")
	if !reflect.DeepEqual(combinedPatterns, expectedPatterns) {
		testingHandle.Fatalf("unexpected combined patterns:\ngot  %v\nwant %v", combinedPatterns, expectedPatterns)
	}
}

// TestCombinedIgnorePatternsSkipsGitignoreWhenDisabled verifies the
// .gitignore file is left unread when the flag is off.
func TestCombinedIgnorePatternsSkipsGitignoreWhenDisabled(testingHandle *testing.T) {
	rootDirectory := testingHandle.TempDir()
	writeTestFile(testingHandle, filepath.Join(rootDirectory, utils.GitIgnoreFileName), "from-gitignore.txt\n")

	combinedPatterns, combineError := CombinedIgnorePatterns(rootDirectory, nil, false)
	if combineError != nil {
		testingHandle.Fatalf("CombinedIgnorePatterns failed: %v", combineError)
	}

	if !reflect.DeepEqual(combinedPatterns, DefaultExcludePatterns()) {
		testingHandle.Fatalf("expected default patterns only, got %v", combinedPatterns)
	}
}
