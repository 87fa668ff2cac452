package cmd

import (
	"github.com/spf13/cobra"

	"pushup.dev/pkg/pushup/internal/domain"
	m "pushup.dev/pkg/pushup/internal/model"
)

var patchDialectFlag string
var patchDryRunFlag bool

// patchCmd represents the patch command.
var patchCmd = newPatchCmd()

func newPatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "patch <file>",
		Short: "Patch a single entry-point file",
		Long: `Patch one MainApplication.kt or AppDelegate.swift file. The dialect is taken
from the file extension unless --dialect is given. Resources are not touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Patch(cmd.Context(), domain.PatchArgs{
				File:    m.Path(args[0]),
				Dialect: m.Dialect(patchDialectFlag),
				DryRun:  patchDryRunFlag,
			})
		},
	}

	cmd.Flags().StringVarP(&patchDialectFlag, dialectFlagName, "d", "", "source dialect: kotlin or swift (default: from the file extension)")
	cmd.Flags().BoolVar(&patchDryRunFlag, dryRunFlagName, false, "show the changes without writing them")

	return cmd
}

func init() {
	rootCmd.AddCommand(patchCmd)
}
