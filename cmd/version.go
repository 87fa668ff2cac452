package cmd

import (
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"pushup.dev/pkg/pushup/internal/domain/patches"
	m "pushup.dev/pkg/pushup/internal/model"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the pushup build version, the Go version used to build it and the entry-point dialects it can patch.",
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Println("pushup version\t", buildVersion())
			cmd.Println("config version\t", currentConfigVersion)
			cmd.Println("dialects\t", strings.Join(supportedDialects(), ", "))

			if info, ok := debug.ReadBuildInfo(); ok {
				cmd.Println("go version\t", info.GoVersion)
			}
		},
	}
}

func buildVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok || info.Main.Version == "" {
		return "unknown"
	}

	return info.Main.Version
}

func supportedDialects() []string {
	var names []string

	for _, dialect := range []m.Dialect{m.DialectKotlin, m.DialectJava, m.DialectSwift, m.DialectObjC, m.DialectObjCpp} {
		if _, ok := patches.ForDialect(dialect); ok {
			names = append(names, string(dialect))
		}
	}

	return names
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
