// Package cmd provides the root command and CLI setup for pushup.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"pushup.dev/pkg/pushup/internal/adapter"
	"pushup.dev/pkg/pushup/internal/controller"
	"pushup.dev/pkg/pushup/internal/domain"
	m "pushup.dev/pkg/pushup/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var projectAdapter adapter.ProjectAdapter
var reportStore adapter.ReportStore
var watcherAdapter adapter.WatcherAdapter
var patcher domain.Patcher
var configurator domain.ResourceConfigurator
var workflow domain.Workflow
var ui controller.UI

var verboseFlag bool
var logFileFlag string

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	projectAdapter = adapter.NewLocalProjectAdapter(fsAdapter)
	reportStore = adapter.NewYAMLReportStore(fsAdapter)
	watcherAdapter = adapter.NewFSNotifyWatcherAdapter()
	patcher = domain.NewPatcher(fsAdapter)
	configurator = domain.NewResourceConfigurator(
		fsAdapter,
		adapter.NewLocalPlistAdapter(),
		adapter.NewLocalStringsXMLAdapter(),
	)
	workflow = domain.NewWorkflow(
		projectAdapter,
		reportStore,
		watcherAdapter,
		ui,
		patcher,
		configurator,
	)
}

const projectRootHelp = `The project root defaults to the current directory. It is the directory
holding the android/ and ios/ native projects.`

const rootLongDescription = `Pushup patches the native entry points of a React Native app so that it
loads its JavaScript bundle from a configurable remote host, falling back to
the bundle shipped with the app.

Android MainApplication.kt and iOS AppDelegate.swift are edited in place by
inserting code next to well-known anchors. Every step is idempotent: running
pushup again on a patched project changes nothing.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pushup",
		Short: "Patch React Native entry points for remote bundles",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
		SilenceUsage: true,
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// bindCommandFlags binds the flags of cmd that share a config key with other
// commands. Viper keeps a single flag per key, so the binding happens when the
// command runs rather than when it is built.
func bindCommandFlags(cmd *cobra.Command, keys map[string]string) {
	for flagName, key := range keys {
		bindFlagToConfig(cmd.Flags().Lookup(flagName), key)
	}
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parseRoot(args []string) m.Path {
	if len(args) == 0 || args[0] == "" {
		return m.Path(".")
	}

	return m.Path(args[0])
}
