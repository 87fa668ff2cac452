package controller

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	m "pushup.dev/pkg/pushup/internal/model"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd  *cobra.Command
	mode StartMode
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mode = newStartConfig(options...).mode

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayRunReport prints the per-platform outcome of a run.
func (s *SimpleUI) DisplayRunReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderRunReport(report, s.mode, plainPalette()))
}

// DisplayFileReport prints the outcome of a single file transaction.
func (s *SimpleUI) DisplayFileReport(ctx context.Context, report m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.printf("%s", renderFileReport(report, plainPalette()))
}

// DisplayWatchEvent prints a detected file change.
func (s *SimpleUI) DisplayWatchEvent(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	_ = s.printf("\nchange detected: %s\n", path)
}

func (s *SimpleUI) printf(format string, args ...interface{}) error {
	_, err := fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
	return err
}
