// Package domain contains the patch workflow of the pushup CLI: the file
// transaction, the resource updates and the commands built on them.
package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"pushup.dev/pkg/pushup/internal/adapter"
	"pushup.dev/pkg/pushup/internal/controller"
	m "pushup.dev/pkg/pushup/internal/model"
)

// errWatcherStopped is returned when the watcher goes away before the context
// is cancelled.
var errWatcherStopped = errors.New("watcher stopped")

// watchedNames are the file names whose changes trigger a re-run in watch mode.
var watchedNames = map[string]struct{}{
	"MainApplication.kt":   {},
	"MainApplication.java": {},
	"AppDelegate.swift":    {},
	"AppDelegate.m":        {},
	"AppDelegate.mm":       {},
	"Info.plist":           {},
	"strings.xml":          {},
}

// Workflow defines the commands of the pushup CLI.
type Workflow interface {
	Apply(ctx context.Context, args ApplyArgs) error
	Patch(ctx context.Context, args PatchArgs) error
	Check(ctx context.Context, args CheckArgs) error
	Watch(ctx context.Context, args WatchArgs) error
}

type workflow struct {
	adapter.ProjectAdapter
	adapter.ReportStore
	adapter.WatcherAdapter
	controller.UI
	Patcher
	ResourceConfigurator
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	projectAdapter adapter.ProjectAdapter,
	reportStore adapter.ReportStore,
	watcherAdapter adapter.WatcherAdapter,
	ui controller.UI,
	patcher Patcher,
	configurator ResourceConfigurator,
) Workflow {
	return &workflow{
		ProjectAdapter:       projectAdapter,
		ReportStore:          reportStore,
		WatcherAdapter:       watcherAdapter,
		UI:                   ui,
		Patcher:              patcher,
		ResourceConfigurator: configurator,
	}
}

// Apply patches the entry point and resources of every requested platform.
// Platforms are independent: a failure on one does not stop the others, and
// the joined error is returned once all of them are done.
func (w *workflow) Apply(ctx context.Context, args ApplyArgs) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if err := w.Start(ctx, controller.WithApplyMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	runErr := w.runAndDisplay(ctx, args)

	w.Wait(ctx)

	return runErr
}

// Patch runs the file transaction for a single file.
func (w *workflow) Patch(ctx context.Context, args PatchArgs) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if err := w.Start(ctx, controller.WithApplyMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	patchErr := w.patchAndDisplay(ctx, args)

	w.Wait(ctx)

	return patchErr
}

func (w *workflow) patchAndDisplay(ctx context.Context, args PatchArgs) error {
	report, err := w.Patcher.Patch(ctx, m.Target{Path: args.File, Dialect: args.Dialect}, args.DryRun)
	if err != nil {
		slog.Error("Failed to patch file", "path", args.File, "error", err)
		return err
	}

	if err := w.DisplayFileReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// Check reports the state of every entry point without writing anything.
func (w *workflow) Check(ctx context.Context, args CheckArgs) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	if err := w.Start(ctx, controller.WithCheckMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	report, runErr := w.run(ctx, ApplyArgs{
		Root:          args.Root,
		Platforms:     args.Platforms,
		DryRun:        true,
		SkipResources: true,
	})

	if err := w.DisplayRunReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)

	if runErr != nil {
		return runErr
	}

	if !args.Strict {
		return nil
	}

	var errs []error

	for _, platform := range report.Platforms {
		if platform.File != nil && platform.File.Before != m.FullyModified {
			errs = append(errs, fmt.Errorf("%w: %s is %s", ErrNotFullyModified, platform.File.Target.Path, platform.File.Before))
		}
	}

	return errors.Join(errs...)
}

// Watch applies once, then re-applies whenever an entry point or resource
// file changes, until ctx is cancelled.
func (w *workflow) Watch(ctx context.Context, args WatchArgs) error {
	if err := args.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	debounce := args.Debounce
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	if err := w.Start(ctx, controller.WithWatchMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	defer w.Close(ctx)

	if err := w.runAndDisplay(ctx, args.ApplyArgs); err != nil {
		slog.Warn("Initial run failed, watching for changes", "error", err)
	}

	roots := w.watchRoots(ctx, args.ApplyArgs)
	if len(roots) == 0 {
		return fmt.Errorf("no platform directory to watch under %s", args.Root)
	}

	changes, errs := w.WatcherAdapter.Watch(ctx, roots)

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		lastErr error
	)

	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case path, ok := <-changes:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}

				if errs != nil {
					if err, ok := <-errs; ok && err != nil {
						lastErr = err
					}
				}

				if lastErr != nil {
					return fmt.Errorf("%w: %w", errWatcherStopped, lastErr)
				}

				return errWatcherStopped
			}

			if _, watched := watchedNames[filepath.Base(string(path))]; !watched {
				continue
			}

			w.DisplayWatchEvent(ctx, path)

			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}

			fire = timer.C

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}

			lastErr = err

			slog.Warn("Watcher reported an error", "error", err)

		case <-fire:
			fire = nil

			if err := w.runAndDisplay(ctx, args.ApplyArgs); err != nil {
				slog.Warn("Re-run failed", "error", err)
			}
		}
	}
}

func (w *workflow) runAndDisplay(ctx context.Context, args ApplyArgs) error {
	report, runErr := w.run(ctx, args)

	if err := w.DisplayRunReport(ctx, report); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.Report != "" {
		if err := w.SaveReport(ctx, args.Report, report); err != nil {
			slog.Error("Failed to save report", "path", args.Report, "error", err)
			return fmt.Errorf("save report: %w", err)
		}
	}

	return runErr
}

// run processes every platform concurrently and collects their reports in
// the order the platforms were requested. A failing platform is recorded in
// its own report and does not stop the others; only cancellation of ctx ends
// the run early.
func (w *workflow) run(ctx context.Context, args ApplyArgs) (m.RunReport, error) {
	platforms := uniquePlatforms(args.Platforms)

	report := m.RunReport{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		Root:      args.Root,
		Host:      args.Host,
		DryRun:    args.DryRun,
		Platforms: make([]m.PlatformReport, len(platforms)),
	}

	errs := make([]error, len(platforms))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, platform := range platforms {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				report.Platforms[i] = m.PlatformReport{Platform: platform, Error: err.Error()}
				return err
			}

			platformReport, err := w.applyPlatform(groupCtx, platform, args)
			if err != nil {
				platformReport.Error = err.Error()
			}

			report.Platforms[i] = platformReport
			errs[i] = err

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Warn("Run cancelled", "id", report.ID, "error", err)
		return report, err
	}

	return report, errors.Join(errs...)
}

func (w *workflow) applyPlatform(ctx context.Context, platform m.Platform, args ApplyArgs) (m.PlatformReport, error) {
	report := m.PlatformReport{Platform: platform}

	target, err := w.EntryPoint(ctx, args.Root, platform)
	if errors.Is(err, adapter.ErrPlatformAbsent) {
		slog.Info("Platform directory not found, skipping", "platform", platform, "root", args.Root)

		report.Absent = true

		return report, nil
	}

	if err != nil {
		return report, fmt.Errorf("%s: %w", platform, err)
	}

	file, err := w.Patcher.Patch(ctx, target, args.DryRun)
	report.File = &file

	if err != nil {
		slog.Error("Entry point transaction failed", "platform", platform, "path", target.Path, "error", err)
		return report, fmt.Errorf("%s: %w", platform, err)
	}

	if args.SkipResources {
		return report, nil
	}

	path, err := w.ResourceFile(ctx, args.Root, platform)
	if err != nil {
		return report, fmt.Errorf("%s: %w", platform, err)
	}

	resources, err := w.Configure(ctx, platform, path, args.Host, args.DryRun)
	report.Resources = resources

	if err != nil {
		slog.Error("Resource update failed", "platform", platform, "path", path, "error", err)
		return report, fmt.Errorf("%s: %w", platform, err)
	}

	return report, nil
}

func (w *workflow) watchRoots(ctx context.Context, args ApplyArgs) []m.Path {
	var roots []m.Path

	for _, platform := range uniquePlatforms(args.Platforms) {
		if _, err := w.EntryPoint(ctx, args.Root, platform); errors.Is(err, adapter.ErrPlatformAbsent) {
			continue
		}

		roots = append(roots, w.PlatformDir(args.Root, platform))
	}

	return roots
}

func uniquePlatforms(platforms []m.Platform) []m.Platform {
	seen := make(map[m.Platform]struct{}, len(platforms))
	unique := make([]m.Platform, 0, len(platforms))

	for _, platform := range platforms {
		if _, dup := seen[platform]; dup {
			continue
		}

		seen[platform] = struct{}{}
		unique = append(unique, platform)
	}

	return unique
}
