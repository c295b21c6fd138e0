// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/temirov/bundle/internal/bundle"
	"github.com/temirov/bundle/internal/config"
	"github.com/temirov/bundle/internal/services/clipboard"
	"github.com/temirov/bundle/internal/services/gitrepo"
	"github.com/temirov/bundle/internal/tokenizer"
	"github.com/temirov/bundle/internal/types"
	"github.com/temirov/bundle/internal/utils"
)

const (
	rootDirectoryFlagName = "root"
	outputFlagName        = "output"
	includeFlagName       = "include"
	exclusionFlagName     = "e"
	noGitignoreFlagName   = "no-gitignore"
	tokensFlagName        = "tokens"
	modelFlagName         = "model"
	copyFlagName          = "copy"
	repositoryFlagName    = "repo"
	configFlagName        = "config"
	versionFlagName       = "version"
	versionTemplate       = "bundle version: %s\n"
	defaultRootDirectory  = "."

	rootUse              = "bundle"
	rootShortDescription = "bundle project files into one Markdown document"
	rootLongDescription  = `bundle walks a project directory, selects source files by extension while
honoring ignore patterns and .gitignore, and concatenates their contents into
a single Markdown document with per-file headers and language-tagged fences.
Use --tokens to estimate the document's token count, --copy to place the
result on the clipboard, and --version to print the application version.`
	rootUsageExample = `  # Bundle the current directory into project_bundle.md
  bundle

  # Bundle only Markdown files from a docs tree
  bundle --root ./docs --include .md --output docs_bundle.md

  # Bundle a remote repository and copy the result
  bundle --repo https://github.com/spf13/cobra --copy`

	rootDirectoryFlagDescription    = "directory to bundle"
	outputFlagDescription           = "output file path"
	includeFlagDescription          = "extensions or exact file names to include (replaces the default set)"
	exclusionFlagDescription        = "exclude path pattern"
	disableGitignoreFlagDescription = "do not use .gitignore"
	tokensFlagDescription           = "report an estimated token count for the bundle"
	modelFlagDescription            = "tokenizer model to use for token counting"
	copyFlagDescription             = "copy the finished bundle to the clipboard"
	repositoryFlagDescription       = "bundle a remote git repository instead of a local root"
	configFlagDescription           = "configuration file path"
	versionFlagDescription          = "display application version"
	defaultTokenizerModelName       = "gpt-4o"

	workingDirectoryErrorFormat = "unable to determine working directory: %w"
	// errorAbsolutePathFormat reports failure to resolve an absolute path.
	errorAbsolutePathFormat = "abs failed for '%s': %w"
	// errorPathMissingFormat reports a missing path.
	errorPathMissingFormat = "path '%s' does not exist"
	// errorStatFormat reports failure to retrieve file statistics.
	errorStatFormat = "stat failed for '%s': %w"
	// errorNotDirectoryFormat reports a root that is not a directory.
	errorNotDirectoryFormat = "path '%s' is not a directory"
	errorReadBundleFormat   = "reading bundle %s for clipboard: %w"
	copiedToClipboardFormat = "Copied %s to clipboard.\n"
)

// Execute runs the bundle application.
func Execute() error {
	rootCommand := createRootCommand()
	return rootCommand.Execute()
}

// createRootCommand builds the root Cobra command.
func createRootCommand() *cobra.Command {
	var showVersion bool
	var configFilePath string
	var flagValues bundleOptions

	rootCommand := &cobra.Command{
		Use:          rootUse,
		Short:        rootShortDescription,
		Long:         rootLongDescription,
		Example:      rootUsageExample,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runBundle(command, flagValues, configFilePath)
		},
		PersistentPreRun: func(command *cobra.Command, arguments []string) {
			if showVersion {
				fmt.Printf(versionTemplate, utils.GetApplicationVersion())
				os.Exit(0)
			}
		},
	}
	rootCommand.PersistentFlags().BoolVar(&showVersion, versionFlagName, false, versionFlagDescription)
	rootCommand.PersistentFlags().StringVar(&configFilePath, configFlagName, "", configFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.rootDirectory, rootDirectoryFlagName, defaultRootDirectory, rootDirectoryFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.outputPath, outputFlagName, config.DefaultOutputFileName, outputFlagDescription)
	rootCommand.Flags().StringSliceVar(&flagValues.includeEntries, includeFlagName, nil, includeFlagDescription)
	rootCommand.Flags().StringArrayVarP(&flagValues.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	rootCommand.Flags().BoolVar(&flagValues.disableGitignore, noGitignoreFlagName, false, disableGitignoreFlagDescription)
	rootCommand.Flags().BoolVar(&flagValues.tokensEnabled, tokensFlagName, false, tokensFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.tokenModel, modelFlagName, defaultTokenizerModelName, modelFlagDescription)
	rootCommand.Flags().BoolVar(&flagValues.copyEnabled, copyFlagName, false, copyFlagDescription)
	rootCommand.Flags().StringVar(&flagValues.repositoryURL, repositoryFlagName, "", repositoryFlagDescription)
	rootCommand.AddCommand(
		createTreeCommand(&configFilePath),
		createInitCommand(),
	)
	rootCommand.InitDefaultHelpCmd()
	rootCommand.InitDefaultCompletionCmd()
	return rootCommand
}

// bundleOptions stores flag values for the root command.
type bundleOptions struct {
	rootDirectory     string
	outputPath        string
	includeEntries    []string
	exclusionPatterns []string
	disableGitignore  bool
	tokensEnabled     bool
	tokenModel        string
	copyEnabled       bool
	repositoryURL     string
}

// bundleSettings is the effective configuration of a run after merging
// built-in defaults, configuration files, and explicitly set flags.
type bundleSettings struct {
	rootDirectory     string
	outputPath        string
	includeEntries    []string
	exclusionPatterns []string
	useGitignore      bool
	tokensEnabled     bool
	tokenModel        string
	copyEnabled       bool
	repositoryURL     string
}

// runBundle executes a bundling run with the resolved settings.
func runBundle(command *cobra.Command, flagValues bundleOptions, configFilePath string) error {
	workingDirectory, workingDirectoryError := os.Getwd()
	if workingDirectoryError != nil {
		return fmt.Errorf(workingDirectoryErrorFormat, workingDirectoryError)
	}
	applicationConfiguration, configurationError := config.LoadApplicationConfiguration(config.LoadOptions{
		WorkingDirectory: workingDirectory,
		ExplicitFilePath: configFilePath,
	})
	if configurationError != nil {
		return configurationError
	}
	settings := resolveBundleSettings(command, flagValues, applicationConfiguration.Bundle)

	rootDirectory := settings.rootDirectory
	if settings.repositoryURL != "" {
		cloneDirectory, cleanup, cloneError := gitrepo.NewService().Clone(settings.repositoryURL)
		if cloneError != nil {
			return cloneError
		}
		defer cleanup()
		rootDirectory = cloneDirectory
	}

	validatedRoot, validationError := validateRootDirectory(rootDirectory)
	if validationError != nil {
		return validationError
	}

	ignorePatterns, patternsError := config.CombinedIgnorePatterns(validatedRoot.AbsolutePath, settings.exclusionPatterns, settings.useGitignore)
	if patternsError != nil {
		return patternsError
	}

	var tokenCounter tokenizer.Counter
	if settings.tokensEnabled {
		createdCounter, _, counterError := tokenizer.NewCounter(tokenizer.Config{Model: settings.tokenModel})
		if counterError != nil {
			return counterError
		}
		tokenCounter = createdCounter
	}

	summary, runError := bundle.Run(bundle.Options{
		RootDirectory:  validatedRoot.AbsolutePath,
		OutputPath:     settings.outputPath,
		IncludeEntries: settings.includeEntries,
		IgnorePatterns: ignorePatterns,
		LanguageTags:   config.DefaultLanguageTags(),
		TokenCounter:   tokenCounter,
	})
	if runError != nil {
		return runError
	}

	if settings.copyEnabled {
		return copyBundleToClipboard(clipboard.NewService(), summary.OutputPath)
	}
	return nil
}

// resolveBundleSettings merges configuration file values over built-in
// defaults, then explicitly set flags over both. Exclusion patterns are
// additive rather than replacing.
func resolveBundleSettings(command *cobra.Command, flagValues bundleOptions, bundleConfiguration config.BundleCommandConfiguration) bundleSettings {
	settings := bundleSettings{
		rootDirectory:  flagValues.rootDirectory,
		outputPath:     config.DefaultOutputFileName,
		includeEntries: config.DefaultIncludeEntries(),
		useGitignore:   true,
		tokenModel:     defaultTokenizerModelName,
		repositoryURL:  flagValues.repositoryURL,
	}

	if bundleConfiguration.Output != "" {
		settings.outputPath = bundleConfiguration.Output
	}
	if len(bundleConfiguration.Include) > 0 {
		settings.includeEntries = bundleConfiguration.Include
	}
	if bundleConfiguration.UseGitignore != nil {
		settings.useGitignore = *bundleConfiguration.UseGitignore
	}
	if bundleConfiguration.Tokens.Enabled != nil {
		settings.tokensEnabled = *bundleConfiguration.Tokens.Enabled
	}
	if bundleConfiguration.Tokens.Model != "" {
		settings.tokenModel = bundleConfiguration.Tokens.Model
	}
	if bundleConfiguration.Clipboard != nil {
		settings.copyEnabled = *bundleConfiguration.Clipboard
	}
	settings.exclusionPatterns = append(settings.exclusionPatterns, bundleConfiguration.Exclude...)
	settings.exclusionPatterns = append(settings.exclusionPatterns, flagValues.exclusionPatterns...)

	if command.Flags().Changed(outputFlagName) {
		settings.outputPath = flagValues.outputPath
	}
	if command.Flags().Changed(includeFlagName) {
		settings.includeEntries = flagValues.includeEntries
	}
	if command.Flags().Changed(noGitignoreFlagName) {
		settings.useGitignore = !flagValues.disableGitignore
	}
	if command.Flags().Changed(tokensFlagName) {
		settings.tokensEnabled = flagValues.tokensEnabled
	}
	if command.Flags().Changed(modelFlagName) {
		settings.tokenModel = flagValues.tokenModel
	}
	if command.Flags().Changed(copyFlagName) {
		settings.copyEnabled = flagValues.copyEnabled
	}
	return settings
}

// validateRootDirectory resolves the root to an absolute path and verifies it
// is an existing directory.
func validateRootDirectory(rootDirectory string) (types.ValidatedPath, error) {
	absolutePath, absolutePathError := filepath.Abs(rootDirectory)
	if absolutePathError != nil {
		return types.ValidatedPath{}, fmt.Errorf(errorAbsolutePathFormat, rootDirectory, absolutePathError)
	}
	cleanPath := filepath.Clean(absolutePath)
	pathInfo, fileStatusError := os.Stat(cleanPath)
	if fileStatusError != nil {
		if os.IsNotExist(fileStatusError) {
			return types.ValidatedPath{}, fmt.Errorf(errorPathMissingFormat, rootDirectory)
		}
		return types.ValidatedPath{}, fmt.Errorf(errorStatFormat, rootDirectory, fileStatusError)
	}
	if !pathInfo.IsDir() {
		return types.ValidatedPath{}, fmt.Errorf(errorNotDirectoryFormat, rootDirectory)
	}
	return types.ValidatedPath{AbsolutePath: cleanPath, IsDir: true}, nil
}

// copyBundleToClipboard places the finished bundle document on the clipboard.
func copyBundleToClipboard(copier clipboard.Copier, outputPath string) error {
	bundleBytes, readError := os.ReadFile(outputPath)
	if readError != nil {
		return fmt.Errorf(errorReadBundleFormat, outputPath, readError)
	}
	if copyError := copier.Copy(string(bundleBytes)); copyError != nil {
		return copyError
	}
	fmt.Printf(copiedToClipboardFormat, filepath.Base(outputPath))
	return nil
}
