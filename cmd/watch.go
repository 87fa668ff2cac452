package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"pushup.dev/pkg/pushup/internal/domain"
	m "pushup.dev/pkg/pushup/internal/model"
)

const watchLongDescription = `Apply once, then re-apply whenever an entry point, Info.plist or strings.xml
changes, for example after a prebuild regenerated the native projects. Stop
with Ctrl+C.

` + projectRootHelp

var watchSkipResourcesFlag bool

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [project-root]",
		Short: "Re-apply the patch when native files change",
		Long:  watchLongDescription,
		Args:  cobra.MaximumNArgs(1),
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindCommandFlags(cmd, map[string]string{
				hostFlagName:     hostConfigKey,
				platformFlagName: platformConfigKey,
				debounceFlagName: debounceConfigKey,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return workflow.Watch(ctx, domain.WatchArgs{
				ApplyArgs: domain.ApplyArgs{
					Root:          parseRoot(args),
					Host:          viper.GetString(hostConfigKey),
					Platforms:     parsePlatforms(viper.GetString(platformConfigKey)),
					SkipResources: watchSkipResourcesFlag,
					Report:        m.Path(viper.GetString(reportConfigKey)),
				},
				Debounce: viper.GetDuration(debounceConfigKey),
			})
		},
	}

	addHostFlag(cmd)
	addPlatformFlag(cmd)
	cmd.Flags().String(debounceFlagName, viper.GetString(debounceConfigKey), "quiet period before re-applying after a change")
	cmd.Flags().BoolVar(&watchSkipResourcesFlag, skipResourcesFlagName, false, "leave Info.plist and strings.xml untouched")

	return cmd
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
