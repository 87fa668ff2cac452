package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pushup.dev/pkg/pushup/internal/domain"
)

const checkLongDescription = `Report the patch state of every entry point without writing anything.

With --strict the command fails unless every entry point is already fully
patched, which makes it usable as a CI gate.

` + projectRootHelp

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [project-root]",
		Short: "Show the patch state of a project",
		Long:  checkLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindCommandFlags(cmd, map[string]string{
				platformFlagName: platformConfigKey,
				strictFlagName:   strictConfigKey,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Check(cmd.Context(), domain.CheckArgs{
				Root:      parseRoot(args),
				Platforms: parsePlatforms(viper.GetString(platformConfigKey)),
				Strict:    viper.GetBool(strictConfigKey),
			})
		},
	}

	addPlatformFlag(cmd)
	cmd.Flags().Bool(strictFlagName, viper.GetBool(strictConfigKey), "fail unless every entry point is fully patched")

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
