package bundle

import "testing"

// TestFileExtension verifies the substring-from-last-dot semantics, including
// names whose only dots lead the name.
func TestFileExtension(testingHandle *testing.T) {
	testCases := []struct {
		fileName string
		expected string
	}{
		{fileName: "main.go", expected: ".go"},
		{fileName: "archive.tar.gz", expected: ".gz"},
		{fileName: "a..py", expected: ".py"},
		{fileName: "trailing.", expected: "."},
		{fileName: ".gitignore", expected: ""},
		{fileName: "..hidden", expected: ""},
		{fileName: "Dockerfile", expected: ""},
		{fileName: "", expected: ""},
	}

	for _, testCase := range testCases {
		extension := FileExtension(testCase.fileName)
		if extension != testCase.expected {
			testingHandle.Fatalf("FileExtension(%q): got %q want %q", testCase.fileName, extension, testCase.expected)
		}
	}
}

// TestIncludeSetAllows verifies eligibility by extension and by exact name.
func TestIncludeSetAllows(testingHandle *testing.T) {
	includeSet := NewIncludeSet([]string{".py", ".md", "Dockerfile", ".gitignore"})

	testCases := []struct {
		fileName string
		expected bool
	}{
		{fileName: "main.py", expected: true},
		{fileName: "README.md", expected: true},
		{fileName: "Dockerfile", expected: true},
		{fileName: ".gitignore", expected: true},
		{fileName: "dockerfile.txt", expected: false},
		{fileName: "main.go", expected: false},
		{fileName: "Dockerfile.dev", expected: false},
	}

	for _, testCase := range testCases {
		allowed := includeSet.Allows(testCase.fileName)
		if allowed != testCase.expected {
			testingHandle.Fatalf("Allows(%q): got %v want %v", testCase.fileName, allowed, testCase.expected)
		}
	}
}

// TestNewIncludeSetDropsBlankEntries verifies trimming and blank removal.
func TestNewIncludeSetDropsBlankEntries(testingHandle *testing.T) {
	includeSet := NewIncludeSet([]string{" .py ", "", "   "})
	if includeSet.Len() != 1 {
		testingHandle.Fatalf("expected 1 entry, got %d", includeSet.Len())
	}
	if !includeSet.Allows("script.py") {
		testingHandle.Fatalf("expected trimmed .py entry to allow script.py")
	}
}
