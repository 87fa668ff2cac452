package cmd

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pushup.dev/pkg/pushup/internal/domain"
	domainmocks "pushup.dev/pkg/pushup/internal/domain/mocks"
	m "pushup.dev/pkg/pushup/internal/model"
)

func TestWatchCmd(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Root == "app" &&
			args.Host == "http://10.0.2.2:8081" &&
			len(args.Platforms) == 1 && args.Platforms[0] == m.PlatformAndroid &&
			args.Debounce == 50*time.Millisecond &&
			args.SkipResources
	})).Run(func(args mock.Arguments) {
		ctx, ok := args.Get(0).(context.Context)
		assert.True(t, ok)
		assert.NoError(t, ctx.Err())
	}).Return(nil)

	err := executeSubcommand(t, newWatchCmd(),
		"watch", "app",
		"--host", "http://10.0.2.2:8081",
		"--platform", "android",
		"--debounce", "50ms",
		"--skip-resources",
	)
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestWatchCmd_DefaultDebounce(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	useWorkflow(t, mockWorkflow)

	mockWorkflow.On("Watch", mock.Anything, mock.MatchedBy(func(args domain.WatchArgs) bool {
		return args.Debounce == 200*time.Millisecond
	})).Return(nil)

	err := executeSubcommand(t, newWatchCmd(), "watch", "--host", "http://localhost:8081")
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}
