package bundle

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/temirov/bundle/internal/types"
	"github.com/temirov/bundle/internal/utils"
)

const (
	treeBranchConnector = "├── "
	treeLastConnector   = "└── "
	treeBranchPadding   = "│   "
	treeLastPadding     = "    "
	directorySuffix     = "/"

	warningSkipSubdirFormat  = "Warning: Skipping subdirectory %s due to error: %v\n"
	errorReadDirectoryFormat = "reading directory %s: %w"
)

// TreeOptions selects the root and filters for a bundle preview.
type TreeOptions struct {
	RootDirectory  string
	OutputPath     string
	IncludeEntries []string
	IgnorePatterns []string
}

// BuildTree walks the root directory with the same filters a bundling run
// applies and returns the tree of files that run would bundle, together with
// the eligible file count. Directories left without any eligible descendant
// are omitted. Files are judged by name and pattern only; their contents are
// not read.
func BuildTree(options TreeOptions) (*types.TreeNode, int, error) {
	absoluteRootPath, rootPathError := filepath.Abs(options.RootDirectory)
	if rootPathError != nil {
		return nil, 0, fmt.Errorf(errorResolveRootFormat, options.RootDirectory, rootPathError)
	}
	absoluteOutputPath, outputPathError := filepath.Abs(options.OutputPath)
	if outputPathError != nil {
		return nil, 0, fmt.Errorf(errorResolveOutputFormat, options.OutputPath, outputPathError)
	}

	builder := treeBuilder{
		rootDirectoryPath:  absoluteRootPath,
		absoluteOutputPath: absoluteOutputPath,
		includeSet:         NewIncludeSet(options.IncludeEntries),
		ruleSet:            NewRuleSet(options.IgnorePatterns),
	}

	rootNode := &types.TreeNode{
		Path:         absoluteRootPath,
		RelativePath: currentDirectoryPath,
		Name:         filepath.Base(absoluteRootPath),
		Type:         types.NodeTypeDirectory,
	}
	children, fileCount, buildError := builder.buildChildren(absoluteRootPath)
	if buildError != nil {
		return nil, 0, buildError
	}
	rootNode.Children = children
	return rootNode, fileCount, nil
}

type treeBuilder struct {
	rootDirectoryPath  string
	absoluteOutputPath string
	includeSet         IncludeSet
	ruleSet            *RuleSet
}

// buildChildren returns the eligible child nodes of a directory along with
// the number of files among them and their descendants. Unreadable
// subdirectories are reported and pruned; only the top-level read fails the
// build.
func (builder treeBuilder) buildChildren(currentPath string) ([]*types.TreeNode, int, error) {
	directoryEntries, readDirectoryError := os.ReadDir(currentPath)
	if readDirectoryError != nil {
		return nil, 0, fmt.Errorf(errorReadDirectoryFormat, currentPath, readDirectoryError)
	}

	var nodes []*types.TreeNode
	var fileCount int
	for _, directoryEntry := range directoryEntries {
		childPath := filepath.Join(currentPath, directoryEntry.Name())
		relativeChildPath := utils.RelativePathOrSelf(childPath, builder.rootDirectoryPath)

		if directoryEntry.IsDir() {
			if builder.ruleSet.Matches(relativeChildPath, true) {
				continue
			}
			childNodes, childFileCount, childError := builder.buildChildren(childPath)
			if childError != nil {
				fmt.Fprintf(os.Stderr, warningSkipSubdirFormat, childPath, childError)
				continue
			}
			if len(childNodes) == 0 {
				continue
			}
			nodes = append(nodes, &types.TreeNode{
				Path:         childPath,
				RelativePath: relativeChildPath,
				Name:         directoryEntry.Name(),
				Type:         types.NodeTypeDirectory,
				Children:     childNodes,
			})
			fileCount += childFileCount
			continue
		}

		if builder.ruleSet.Matches(relativeChildPath, false) {
			continue
		}
		if childPath == builder.absoluteOutputPath {
			continue
		}
		if !builder.includeSet.Allows(directoryEntry.Name()) {
			continue
		}
		nodes = append(nodes, &types.TreeNode{
			Path:         childPath,
			RelativePath: relativeChildPath,
			Name:         directoryEntry.Name(),
			Type:         types.NodeTypeFile,
		})
		fileCount++
	}
	return nodes, fileCount, nil
}

// RenderTree prints the preview tree with box-drawing connectors. The root
// prints bare; directories carry a trailing slash.
func RenderTree(writer io.Writer, rootNode *types.TreeNode) {
	renderTreeNode(writer, rootNode, "", true, true)
}

func renderTreeNode(writer io.Writer, node *types.TreeNode, prefix string, isRoot bool, isLast bool) {
	if node == nil {
		return
	}
	linePrefix, childPrefix := treeNodeLinePrefix(prefix, isRoot, isLast)
	nodeName := node.Name
	if node.Type == types.NodeTypeDirectory && !isRoot {
		nodeName += directorySuffix
	}
	fmt.Fprintf(writer, "%s%s\n", linePrefix, nodeName)
	for index, child := range node.Children {
		renderTreeNode(writer, child, childPrefix, false, index == len(node.Children)-1)
	}
}

func treeNodeLinePrefix(prefix string, isRoot bool, isLast bool) (string, string) {
	if isRoot {
		return "", ""
	}
	connector := treeBranchConnector
	childPrefix := prefix + treeBranchPadding
	if isLast {
		connector = treeLastConnector
		childPrefix = prefix + treeLastPadding
	}
	return prefix + connector, childPrefix
}
