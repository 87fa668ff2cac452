package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

// initSummaryKeys are echoed after the file is written, in this order.
var initSummaryKeys = []string{hostConfigKey, platformConfigKey, strictConfigKey, debounceConfigKey}

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a default pushup.yaml configuration file",
		Long: `Create a pushup.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually. Pass --host to record the
bundle server once instead of repeating it on every apply and watch.`,
		PreRun: func(cmd *cobra.Command, _ []string) {
			bindCommandFlags(cmd, map[string]string{
				hostFlagName:     hostConfigKey,
				platformFlagName: platformConfigKey,
			})
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("wrote %s\n", targetPath)

			for _, key := range initSummaryKeys {
				cmd.Printf("  %s: %v\n", key, viper.Get(key))
			}

			if viper.GetString(hostConfigKey) == "" {
				cmd.Println("set host before running apply or watch")
			}

			return nil
		},
	}

	addHostFlag(cmd)
	addPlatformFlag(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(initCmd)
}
