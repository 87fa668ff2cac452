package cmd

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pushup.dev/pkg/pushup/internal/domain"
	domainmocks "pushup.dev/pkg/pushup/internal/domain/mocks"
	m "pushup.dev/pkg/pushup/internal/model"
)

func useWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	originalWorkflow := workflow
	workflow = wf

	t.Cleanup(func() { workflow = originalWorkflow })
}

func executeSubcommand(t *testing.T, sub *cobra.Command, args ...string) error {
	t.Helper()

	cmd := newRootCmd()
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append(args, "--log-file", filepath.Join(t.TempDir(), "pushup.log")))

	return cmd.Execute()
}

func TestApplyCmd_Defaults(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Apply", mock.Anything, mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Root == m.Path(".") &&
			args.Host == "http://192.168.1.20:8081" &&
			len(args.Platforms) == 2 &&
			!args.DryRun &&
			!args.SkipResources &&
			args.Report == ""
	})).Return(nil)

	err := executeSubcommand(t, newApplyCmd(), "apply", "--host", "http://192.168.1.20:8081")
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestApplyCmd_AllFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Apply", mock.Anything, mock.MatchedBy(func(args domain.ApplyArgs) bool {
		return args.Root == m.Path("apps/mobile") &&
			len(args.Platforms) == 1 && args.Platforms[0] == m.PlatformIOS &&
			args.DryRun &&
			args.SkipResources &&
			args.Report == m.Path("pushup-report.yaml")
	})).Return(nil)

	err := executeSubcommand(t, newApplyCmd(),
		"apply", "apps/mobile",
		"--host", "http://localhost:8081",
		"--platform", "ios",
		"--dry-run",
		"--skip-resources",
		"--report", "pushup-report.yaml",
	)
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestApplyCmd_ReturnsWorkflowError(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Apply", mock.Anything, mock.Anything).Return(errors.New("android: mandatory anchor not found"))

	err := executeSubcommand(t, newApplyCmd(), "apply", "--host", "http://localhost:8081")
	require.ErrorContains(t, err, "mandatory anchor not found")
}

func TestApplyCmd_TooManyArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	err := executeSubcommand(t, newApplyCmd(), "apply", "a", "b")
	require.Error(t, err)

	mockWorkflow.AssertNotCalled(t, "Apply", mock.Anything, mock.Anything)
}
