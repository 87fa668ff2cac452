package domain

import (
	"context"
	"fmt"
	"log/slog"

	"pushup.dev/pkg/pushup/internal/adapter"
	"pushup.dev/pkg/pushup/internal/domain/patches"
	m "pushup.dev/pkg/pushup/internal/model"
)

// Patcher runs the file transaction for one entry-point file: read, apply the
// dialect's mutation sequence, write back when the content changed.
type Patcher interface {
	Patch(ctx context.Context, target m.Target, dryRun bool) (m.FileReport, error)
}

type patcher struct {
	adapter.SourceFSAdapter
}

// NewPatcher creates a Patcher reading and writing through fs.
func NewPatcher(fs adapter.SourceFSAdapter) Patcher {
	return &patcher{SourceFSAdapter: fs}
}

// Patch applies the sequence for target.Dialect, deriving the dialect from the
// file extension when it is empty. A mandatory failure leaves the file as it
// was; a dry run never writes.
func (p *patcher) Patch(ctx context.Context, target m.Target, dryRun bool) (m.FileReport, error) {
	if target.Dialect == "" {
		target.Dialect = m.DialectForPath(target.Path)
	}

	report := m.FileReport{Target: target}

	sequence, ok := patches.ForDialect(target.Dialect)
	if !ok {
		return report, fmt.Errorf("%w %q: %s", ErrUnsupportedDialect, target.Dialect, target.Path)
	}

	original, err := p.ReadFile(ctx, target.Path)
	if err != nil {
		return report, fmt.Errorf("%w: read %s: %w", ErrIO, target.Path, err)
	}

	result, err := sequence.Apply(string(original))
	if err != nil {
		return report, fmt.Errorf("patch %s: %w", target.Path, err)
	}

	report.Mutations = result.Mutations
	report.Before = m.StateBefore(result.Mutations)
	report.After = m.StateAfter(result.Mutations)
	report.Changed = result.Content != string(original)

	if !report.Changed {
		slog.Debug("Entry point unchanged", "path", target.Path, "state", report.After)
		return report, nil
	}

	report.Diff = unifiedDiff(target.Path, string(original), result.Content)

	if dryRun {
		return report, nil
	}

	if err := p.WriteFile(ctx, target.Path, []byte(result.Content)); err != nil {
		return report, fmt.Errorf("%w: write %s: %w", ErrIO, target.Path, err)
	}

	report.Written = true

	slog.Info("Entry point patched", "path", target.Path, "dialect", target.Dialect, "state", report.After)

	return report, nil
}
