package utils_test

import (
	"path/filepath"
	"testing"

	"github.com/temirov/bundle/internal/utils"
)

// TestDeduplicatePatterns verifies that DeduplicatePatterns removes duplicate patterns.
func TestDeduplicatePatterns(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		patterns []string
		expected []string
	}{
		{
			testName: "removes duplicates",
			patterns: []string{"a", "b", "a"},
			expected: []string{"a", "b"},
		},
		{
			testName: "keeps unique",
			patterns: []string{"a", "b", "c"},
			expected: []string{"a", "b", "c"},
		},
		{
			testName: "preserves first occurrence order",
			patterns: []string{"b", "a", "b", "c", "a"},
			expected: []string{"b", "a", "c"},
		},
		{
			testName: "empty input",
			patterns: nil,
			expected: []string{},
		},
	}
	for index, testCase := range testCases {
		actual := utils.DeduplicatePatterns(testCase.patterns)
		if len(actual) != len(testCase.expected) {
			testingInstance.Errorf("case %d (%s): expected length %d, got %d", index, testCase.testName, len(testCase.expected), len(actual))
			continue
		}
		for position, value := range actual {
			if value != testCase.expected[position] {
				testingInstance.Errorf("case %d (%s): expected %s at position %d, got %s", index, testCase.testName, testCase.expected[position], position, value)
			}
		}
	}
}

// TestRelativePathOrSelf verifies relative path calculation against a root.
func TestRelativePathOrSelf(testingInstance *testing.T) {
	rootDirectory := testingInstance.TempDir()

	testCases := []struct {
		testName string
		fullPath string
		root     string
		expected string
	}{
		{
			testName: "same directory",
			fullPath: rootDirectory,
			root:     rootDirectory,
			expected: ".",
		},
		{
			testName: "nested file",
			fullPath: filepath.Join(rootDirectory, "sub", "file.txt"),
			root:     rootDirectory,
			expected: "sub/file.txt",
		},
		{
			testName: "unclean path",
			fullPath: filepath.Join(rootDirectory, "sub", "..", "file.txt"),
			root:     rootDirectory,
			expected: "file.txt",
		},
		{
			testName: "relative path falls back to itself",
			fullPath: "relative/file.txt",
			root:     rootDirectory,
			expected: filepath.Clean("relative/file.txt"),
		},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subTest *testing.T) {
			result := utils.RelativePathOrSelf(testCase.fullPath, testCase.root)
			if result != testCase.expected {
				subTest.Fatalf("expected %s, got %s", testCase.expected, result)
			}
		})
	}
}

// TestIsBinary verifies NUL-byte detection.
func TestIsBinary(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		data     []byte
		expected bool
	}{
		{testName: "plain text", data: []byte("hello world"), expected: false},
		{testName: "empty", data: nil, expected: false},
		{testName: "leading nul", data: []byte{0x00, 0x41}, expected: true},
		{testName: "embedded nul", data: []byte("abc\x00def"), expected: true},
		{testName: "invalid utf8 without nul", data: []byte{0x63, 0x61, 0x66, 0xe9}, expected: false},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subTest *testing.T) {
			result := utils.IsBinary(testCase.data)
			if result != testCase.expected {
				subTest.Fatalf("expected %v, got %v", testCase.expected, result)
			}
		})
	}
}

// TestDecodeText verifies that invalid byte sequences are dropped.
func TestDecodeText(testingInstance *testing.T) {
	testCases := []struct {
		testName string
		data     []byte
		expected string
	}{
		{testName: "valid text unchanged", data: []byte("print(1)\n"), expected: "print(1)\n"},
		{testName: "latin1 byte dropped", data: []byte("caf\xe9 = 1"), expected: "caf = 1"},
		{testName: "truncated rune dropped", data: []byte{0x61, 0xc3}, expected: "a"},
		{testName: "multibyte preserved", data: []byte("héllo"), expected: "héllo"},
		{testName: "empty", data: nil, expected: ""},
	}
	for _, testCase := range testCases {
		testingInstance.Run(testCase.testName, func(subTest *testing.T) {
			result := utils.DecodeText(testCase.data)
			if result != testCase.expected {
				subTest.Fatalf("expected %q, got %q", testCase.expected, result)
			}
		})
	}
}
