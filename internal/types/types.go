// Package types defines every cross-package data structure used by the bundle CLI.
package types

const (
	NodeTypeFile      = "file"
	NodeTypeDirectory = "directory"
)

// ValidatedPath is an absolute input path that already passed existence checks.
type ValidatedPath struct {
	AbsolutePath string
	IsDir        bool
}

// BundleSummary captures aggregate information about a completed bundling run.
type BundleSummary struct {
	OutputPath   string
	BundledFiles int
	SkippedFiles int
	TotalBytes   int64
	TotalTokens  int
	TokenModel   string
}

// TreeNode represents a node of the selection preview produced by the tree command.
type TreeNode struct {
	Path         string
	RelativePath string
	Name         string
	Type         string
	Children     []*TreeNode
}
