package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pushup.dev/pkg/pushup/internal/domain"
	m "pushup.dev/pkg/pushup/internal/model"
)

const applyLongDescription = `Patch the Android and iOS entry points of a project and store the bundle
host in the platform resources (strings.xml and Info.plist).

Platforms are processed independently: a failure on one is reported after the
others are done. Use --dry-run to see the changes as unified diffs.

` + projectRootHelp

var applyDryRunFlag bool
var applySkipResourcesFlag bool

// applyCmd represents the apply command.
var applyCmd = newApplyCmd()

func newApplyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "apply [project-root]",
		Short: "Patch the entry points of a project",
		Long:  applyLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindCommandFlags(cmd, map[string]string{
				hostFlagName:     hostConfigKey,
				platformFlagName: platformConfigKey,
				reportFlagName:   reportConfigKey,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Apply(cmd.Context(), domain.ApplyArgs{
				Root:          parseRoot(args),
				Host:          viper.GetString(hostConfigKey),
				Platforms:     parsePlatforms(viper.GetString(platformConfigKey)),
				DryRun:        applyDryRunFlag,
				SkipResources: applySkipResourcesFlag,
				Report:        m.Path(viper.GetString(reportConfigKey)),
			})
		},
	}

	configureApplyFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(applyCmd)
}

func configureApplyFlags(cmd *cobra.Command) {
	addHostFlag(cmd)
	addPlatformFlag(cmd)
	cmd.Flags().String(reportFlagName, viper.GetString(reportConfigKey), "write the run report as YAML to this file")
	cmd.Flags().BoolVar(&applyDryRunFlag, dryRunFlagName, false, "show the changes without writing them")
	cmd.Flags().BoolVar(&applySkipResourcesFlag, skipResourcesFlagName, false, "leave Info.plist and strings.xml untouched")
}

func addHostFlag(cmd *cobra.Command) {
	cmd.Flags().String(hostFlagName, viper.GetString(hostConfigKey), "base URL the app fetches its bundle from")
}

func addPlatformFlag(cmd *cobra.Command) {
	cmd.Flags().StringP(platformFlagName, "p", viper.GetString(platformConfigKey), "platforms to process: android, ios or all")
}
