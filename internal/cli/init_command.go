package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/temirov/bundle/internal/config"
)

const (
	initUse              = "init"
	initShortDescription = "write a starter configuration file"
	initLongDescription  = `Write a starter configuration file with the built-in defaults spelled out.
The file is created as .bundle.yaml in the working directory; --global
targets ~/.bundle/.bundle.yaml instead. An existing file is preserved unless
--force is given.`

	globalFlagName          = "global"
	globalFlagDescription   = "write the global configuration file"
	forceFlagName           = "force"
	forceFlagDescription    = "overwrite an existing configuration file"
	initializedConfigFormat = "Wrote configuration to %s\n"
)

// createInitCommand returns the init subcommand.
func createInitCommand() *cobra.Command {
	var globalTarget bool
	var forceOverwrite bool

	initCommand := &cobra.Command{
		Use:   initUse,
		Short: initShortDescription,
		Long:  initLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(command *cobra.Command, arguments []string) error {
			target := config.InitTargetLocal
			if globalTarget {
				target = config.InitTargetGlobal
			}
			writtenPath, initializeError := config.InitializeConfiguration(config.InitOptions{
				Target: target,
				Force:  forceOverwrite,
			})
			if initializeError != nil {
				return initializeError
			}
			fmt.Printf(initializedConfigFormat, writtenPath)
			return nil
		},
	}
	initCommand.Flags().BoolVar(&globalTarget, globalFlagName, false, globalFlagDescription)
	initCommand.Flags().BoolVar(&forceOverwrite, forceFlagName, false, forceFlagDescription)
	return initCommand
}
