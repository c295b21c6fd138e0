package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temirov/bundle/internal/bundle"
	"github.com/temirov/bundle/internal/config"
)

const (
	treeUse              = "tree"
	treeAlias            = "t"
	treeShortDescription = "preview the files a bundle would include (" + treeAlias + ")"
	treeLongDescription  = `Render the tree of files a bundling run would include under the current
filters, without writing the bundle. Directories with no eligible files are
omitted.`
	treeUsageExample = `  # Preview the default bundle of the current directory
  bundle tree

  # Preview a bundle of only Go sources, ignoring vendor
  bundle tree --include .go -e vendor`

	treeSummarySingular     = "\n1 file would be bundled.\n"
	treeSummaryPluralFormat = "\n%d files would be bundled.\n"
)

// treeOptions stores flag values for the tree command.
type treeOptions struct {
	rootDirectory     string
	outputPath        string
	includeEntries    []string
	exclusionPatterns []string
	disableGitignore  bool
}

// treeSettings is the effective tree configuration after merging defaults,
// configuration files, and explicitly set flags.
type treeSettings struct {
	rootDirectory     string
	outputPath        string
	includeEntries    []string
	exclusionPatterns []string
	useGitignore      bool
}

// createTreeCommand returns the tree subcommand.
func createTreeCommand(configFilePath *string) *cobra.Command {
	var flagValues treeOptions

	treeCommand := &cobra.Command{
		Use:     treeUse,
		Aliases: []string{treeAlias},
		Short:   treeShortDescription,
		Long:    treeLongDescription,
		Example: treeUsageExample,
		Args:    cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			return runTree(command, flagValues, *configFilePath)
		},
	}
	treeCommand.Flags().StringVar(&flagValues.rootDirectory, rootDirectoryFlagName, defaultRootDirectory, rootDirectoryFlagDescription)
	treeCommand.Flags().StringVar(&flagValues.outputPath, outputFlagName, config.DefaultOutputFileName, outputFlagDescription)
	treeCommand.Flags().StringSliceVar(&flagValues.includeEntries, includeFlagName, nil, includeFlagDescription)
	treeCommand.Flags().StringArrayVarP(&flagValues.exclusionPatterns, exclusionFlagName, exclusionFlagName, nil, exclusionFlagDescription)
	treeCommand.Flags().BoolVar(&flagValues.disableGitignore, noGitignoreFlagName, false, disableGitignoreFlagDescription)
	return treeCommand
}

// runTree renders the bundle preview for the resolved settings.
func runTree(command *cobra.Command, flagValues treeOptions, configFilePath string) error {
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
	settings := resolveTreeSettings(command, flagValues, applicationConfiguration)

	validatedRoot, validationError := validateRootDirectory(settings.rootDirectory)
	if validationError != nil {
		return validationError
	}
	ignorePatterns, patternsError := config.CombinedIgnorePatterns(validatedRoot.AbsolutePath, settings.exclusionPatterns, settings.useGitignore)
	if patternsError != nil {
		return patternsError
	}

	rootNode, fileCount, buildError := bundle.BuildTree(bundle.TreeOptions{
		RootDirectory:  validatedRoot.AbsolutePath,
		OutputPath:     settings.outputPath,
		IncludeEntries: settings.includeEntries,
		IgnorePatterns: ignorePatterns,
	})
	if buildError != nil {
		return buildError
	}
	bundle.RenderTree(os.Stdout, rootNode)
	if fileCount == 1 {
		fmt.Print(treeSummarySingular)
	} else {
		fmt.Printf(treeSummaryPluralFormat, fileCount)
	}
	return nil
}

// resolveTreeSettings merges tree configuration values over built-in
// defaults, then explicitly set flags over both. The output path falls back
// to the bundle section so previews exclude the same output file a bundling
// run would write.
func resolveTreeSettings(command *cobra.Command, flagValues treeOptions, applicationConfiguration config.ApplicationConfiguration) treeSettings {
	treeConfiguration := applicationConfiguration.Tree
	settings := treeSettings{
		rootDirectory:  flagValues.rootDirectory,
		outputPath:     config.DefaultOutputFileName,
		includeEntries: config.DefaultIncludeEntries(),
		useGitignore:   true,
	}

	if applicationConfiguration.Bundle.Output != "" {
		settings.outputPath = applicationConfiguration.Bundle.Output
	}
	if len(treeConfiguration.Include) > 0 {
		settings.includeEntries = treeConfiguration.Include
	}
	if treeConfiguration.UseGitignore != nil {
		settings.useGitignore = *treeConfiguration.UseGitignore
	}
	settings.exclusionPatterns = append(settings.exclusionPatterns, treeConfiguration.Exclude...)
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
	return settings
}
