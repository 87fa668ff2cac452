package adapter

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "pushup.dev/pkg/pushup/internal/model"
)

var (
	// ErrPlatformAbsent is returned when the project has no directory for a platform.
	ErrPlatformAbsent = errors.New("platform directory not found")
	// ErrEntryPointNotFound is returned when a platform directory holds no entry-point file.
	ErrEntryPointNotFound = errors.New("entry point not found")
)

var (
	androidEntryPoints = []string{"MainApplication.kt", "MainApplication.java"}
	iosEntryPoints     = []string{"AppDelegate.swift", "AppDelegate.mm", "AppDelegate.m"}
	iosSkippedDirs     = map[string]struct{}{"Pods": {}, "build": {}, "DerivedData": {}}
)

// ProjectAdapter locates the native files of an application project.
type ProjectAdapter interface {
	// PlatformDir returns the native project directory for platform.
	PlatformDir(root m.Path, platform m.Platform) m.Path

	// EntryPoint finds the entry-point file of platform and its dialect.
	EntryPoint(ctx context.Context, root m.Path, platform m.Platform) (m.Target, error)

	// ResourceFile returns the file holding the host resource for platform:
	// Info.plist next to the iOS entry point, or the Android strings.xml.
	// The file may not exist yet.
	ResourceFile(ctx context.Context, root m.Path, platform m.Platform) (m.Path, error)
}

// LocalProjectAdapter locates files on the local filesystem.
type LocalProjectAdapter struct {
	SourceFSAdapter
}

// NewLocalProjectAdapter creates a LocalProjectAdapter backed by fs.
func NewLocalProjectAdapter(fs SourceFSAdapter) *LocalProjectAdapter {
	return &LocalProjectAdapter{SourceFSAdapter: fs}
}

// PlatformDir returns <root>/android or <root>/ios.
func (a *LocalProjectAdapter) PlatformDir(root m.Path, platform m.Platform) m.Path {
	return a.JoinPath(string(root), string(platform))
}

// EntryPoint finds MainApplication under android/app/src/main/java or
// AppDelegate in an ios/ target directory.
func (a *LocalProjectAdapter) EntryPoint(ctx context.Context, root m.Path, platform m.Platform) (m.Target, error) {
	if err := a.ensurePlatform(ctx, root, platform); err != nil {
		return m.Target{}, err
	}

	var (
		path m.Path
		err  error
	)

	switch platform {
	case m.PlatformAndroid:
		path, err = a.findAndroidEntryPoint(ctx, root)
	case m.PlatformIOS:
		path, err = a.findIOSEntryPoint(ctx, root)
	default:
		return m.Target{}, fmt.Errorf("unknown platform %q", platform)
	}

	if err != nil {
		return m.Target{}, err
	}

	return m.Target{Platform: platform, Path: path, Dialect: m.DialectForPath(path)}, nil
}

// ResourceFile returns the platform's resource file path.
func (a *LocalProjectAdapter) ResourceFile(ctx context.Context, root m.Path, platform m.Platform) (m.Path, error) {
	switch platform {
	case m.PlatformAndroid:
		if err := a.ensurePlatform(ctx, root, platform); err != nil {
			return "", err
		}

		return a.JoinPath(string(root), "android", "app", "src", "main", "res", "values", "strings.xml"), nil
	case m.PlatformIOS:
		entry, err := a.EntryPoint(ctx, root, platform)
		if err != nil {
			return "", err
		}

		return a.JoinPath(filepath.Dir(string(entry.Path)), "Info.plist"), nil
	default:
		return "", fmt.Errorf("unknown platform %q", platform)
	}
}

func (a *LocalProjectAdapter) ensurePlatform(ctx context.Context, root m.Path, platform m.Platform) error {
	dir := a.PlatformDir(root, platform)

	info, err := a.FileInfo(ctx, dir)
	if errors.Is(err, fs.ErrNotExist) || (err == nil && !info.IsDir()) {
		return fmt.Errorf("%w: %s", ErrPlatformAbsent, dir)
	}

	if err != nil {
		return fmt.Errorf("stat %s: %w", dir, err)
	}

	return nil
}

func (a *LocalProjectAdapter) findAndroidEntryPoint(ctx context.Context, root m.Path) (m.Path, error) {
	javaRoot := a.JoinPath(string(root), "android", "app", "src", "main", "java")
	found := make(map[string][]string, len(androidEntryPoints))

	err := a.Walk(ctx, javaRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return filepath.SkipDir
			}

			return err
		}

		if !info.IsDir() {
			found[info.Name()] = append(found[info.Name()], path)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", javaRoot, err)
	}

	for _, name := range androidEntryPoints {
		if paths := found[name]; len(paths) > 0 {
			sort.Strings(paths)
			return m.Path(paths[0]), nil
		}
	}

	return "", fmt.Errorf("%w: no %s under %s", ErrEntryPointNotFound, strings.Join(androidEntryPoints, " or "), javaRoot)
}

func (a *LocalProjectAdapter) findIOSEntryPoint(ctx context.Context, root m.Path) (m.Path, error) {
	iosRoot := a.PlatformDir(root, m.PlatformIOS)

	var candidates []string

	// AppDelegate lives one level down, in the directory named after the app.
	err := a.Walk(ctx, iosRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() {
			if path == string(iosRoot) {
				return nil
			}

			if _, skip := iosSkippedDirs[info.Name()]; skip || isBundleDir(info.Name()) || filepath.Dir(path) != string(iosRoot) {
				return filepath.SkipDir
			}

			return nil
		}

		if filepath.Dir(path) != string(iosRoot) {
			candidates = append(candidates, path)
		}

		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", iosRoot, err)
	}

	sort.Strings(candidates)

	for _, name := range iosEntryPoints {
		for _, candidate := range candidates {
			if filepath.Base(candidate) == name {
				return m.Path(candidate), nil
			}
		}
	}

	return "", fmt.Errorf("%w: no %s under %s", ErrEntryPointNotFound, strings.Join(iosEntryPoints, ", "), iosRoot)
}

func isBundleDir(name string) bool {
	switch filepath.Ext(name) {
	case ".xcodeproj", ".xcworkspace", ".xcassets", ".lproj":
		return true
	default:
		return false
	}
}
