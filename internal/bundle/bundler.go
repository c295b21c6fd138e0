package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/temirov/bundle/internal/tokenizer"
	"github.com/temirov/bundle/internal/types"
	"github.com/temirov/bundle/internal/utils"
)

const (
	startupBannerMessage     = "Starting project bundling..."
	startupRootFormat        = "Project Root: %s\n"
	startupOutputFormat      = "Output File: %s\n"
	startupIncludeFormat     = "Including extensions: %s\n"
	startupIgnoreFormat      = "Ignoring patterns: %s\n\n"
	entryListSeparator       = ", "
	bundledFileFormat        = "  [+] Bundled: %s\n"
	skippedBinaryFileFormat  = "  [!] Skipping binary file: %s\n"
	warningReadFileFormat    = "  [!] Error reading %s: %v\n"
	warningTokenCountFormat  = "  [!] Token count failed for %s: %v\n"
	summaryFormat            = "\n✅ Success! Bundled %d files into '%s'.\n"
	summarySizeFormat        = "Bundled size: %s\n"
	summaryTokensFormat      = "Estimated tokens (%s): %d\n"
	errorResolveRootFormat   = "resolving root directory %s: %w"
	errorResolveOutputFormat = "resolving output path %s: %w"
	errorWalkFormat          = "walking %s: %w"
	currentDirectoryPath     = "."
)

// Options carries everything a bundling run needs. LanguageTags maps
// extensions and exact file names to code-fence tags. TokenCounter is
// optional; when nil no token totals are reported.
type Options struct {
	RootDirectory  string
	OutputPath     string
	IncludeEntries []string
	IgnorePatterns []string
	LanguageTags   map[string]string
	TokenCounter   tokenizer.Counter
}

// Run walks the root directory, bundles every eligible file into the output
// document, and returns a summary of the run. Per-file read failures are
// reported and skipped; output write failures and directory enumeration
// failures abort the run.
func Run(options Options) (types.BundleSummary, error) {
	var summary types.BundleSummary

	absoluteRootPath, rootPathError := filepath.Abs(options.RootDirectory)
	if rootPathError != nil {
		return summary, fmt.Errorf(errorResolveRootFormat, options.RootDirectory, rootPathError)
	}
	absoluteOutputPath, outputPathError := filepath.Abs(options.OutputPath)
	if outputPathError != nil {
		return summary, fmt.Errorf(errorResolveOutputFormat, options.OutputPath, outputPathError)
	}
	summary.OutputPath = absoluteOutputPath

	includeSet := NewIncludeSet(options.IncludeEntries)
	ruleSet := NewRuleSet(options.IgnorePatterns)

	fmt.Println(startupBannerMessage)
	fmt.Printf(startupRootFormat, absoluteRootPath)
	fmt.Printf(startupOutputFormat, absoluteOutputPath)
	fmt.Printf(startupIncludeFormat, strings.Join(options.IncludeEntries, entryListSeparator))
	fmt.Printf(startupIgnoreFormat, strings.Join(options.IgnorePatterns, entryListSeparator))

	writer, writerError := newDocumentWriter(absoluteOutputPath)
	if writerError != nil {
		return summary, writerError
	}
	if headerError := writer.WriteHeader(filepath.Base(absoluteRootPath)); headerError != nil {
		writer.Close()
		return summary, headerError
	}

	walkError := filepath.WalkDir(absoluteRootPath, func(walkedPath string, directoryEntry os.DirEntry, accessError error) error {
		if accessError != nil {
			return fmt.Errorf(errorWalkFormat, walkedPath, accessError)
		}

		relativePath := utils.RelativePathOrSelf(walkedPath, absoluteRootPath)
		if relativePath == currentDirectoryPath {
			return nil
		}

		if directoryEntry.IsDir() {
			if ruleSet.Matches(relativePath, true) {
				return filepath.SkipDir
			}
			return nil
		}

		if ruleSet.Matches(relativePath, false) {
			return nil
		}
		if walkedPath == absoluteOutputPath {
			return nil
		}
		fileName := directoryEntry.Name()
		if !includeSet.Allows(fileName) {
			return nil
		}

		fileBytes, fileReadError := os.ReadFile(walkedPath)
		if fileReadError != nil {
			fmt.Fprintf(os.Stderr, warningReadFileFormat, relativePath, fileReadError)
			summary.SkippedFiles++
			return nil
		}
		if utils.IsBinary(fileBytes) {
			fmt.Fprintf(os.Stderr, skippedBinaryFileFormat, relativePath)
			summary.SkippedFiles++
			return nil
		}

		fileContent := utils.DecodeText(fileBytes)
		languageTag := languageTagFor(options.LanguageTags, fileName)
		if entryError := writer.WriteFileEntry(relativePath, languageTag, fileContent); entryError != nil {
			return entryError
		}

		fmt.Printf(bundledFileFormat, relativePath)
		summary.BundledFiles++
		summary.TotalBytes += int64(len(fileBytes))

		if options.TokenCounter != nil {
			tokenResult, tokenError := tokenizer.CountBytes(options.TokenCounter, fileBytes)
			if tokenError != nil {
				fmt.Fprintf(os.Stderr, warningTokenCountFormat, relativePath, tokenError)
			} else if tokenResult.Counted {
				summary.TotalTokens += tokenResult.Tokens
			}
		}
		return nil
	})
	if walkError != nil {
		writer.Close()
		return summary, walkError
	}
	if closeError := writer.Close(); closeError != nil {
		return summary, closeError
	}

	fmt.Printf(summaryFormat, summary.BundledFiles, filepath.Base(absoluteOutputPath))
	fmt.Printf(summarySizeFormat, utils.FormatFileSize(summary.TotalBytes))
	if options.TokenCounter != nil {
		summary.TokenModel = options.TokenCounter.Name()
		fmt.Printf(summaryTokensFormat, summary.TokenModel, summary.TotalTokens)
	}
	return summary, nil
}
