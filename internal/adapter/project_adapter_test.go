package adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pushup.dev/pkg/pushup/internal/model"
)

func newProjectFixture(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "android", "app", "src", "main", "java", "com", "example", "MainApplication.kt"), "package com.example\n")
	writeTestFile(t, filepath.Join(root, "android", "app", "src", "main", "java", "com", "example", "MainActivity.kt"), "package com.example\n")
	writeTestFile(t, filepath.Join(root, "ios", "Podfile"), "platform :ios\n")
	writeTestFile(t, filepath.Join(root, "ios", "Pods", "Some", "AppDelegate.swift"), "// vendored\n")
	writeTestFile(t, filepath.Join(root, "ios", "example.xcodeproj", "AppDelegate.swift"), "// not a target\n")
	writeTestFile(t, filepath.Join(root, "ios", "example", "AppDelegate.swift"), "import Expo\n")
	writeTestFile(t, filepath.Join(root, "ios", "example", "Info.plist"), "<plist/>\n")

	return root
}

func TestLocalProjectAdapter_EntryPoint(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalProjectAdapter(NewLocalSourceFSAdapter())
	root := newProjectFixture(t)

	t.Run("android", func(t *testing.T) {
		target, err := adapter.EntryPoint(ctx, m.Path(root), m.PlatformAndroid)
		require.NoError(t, err)

		assert.Equal(t, m.Path(filepath.Join(root, "android", "app", "src", "main", "java", "com", "example", "MainApplication.kt")), target.Path)
		assert.Equal(t, m.DialectKotlin, target.Dialect)
		assert.Equal(t, m.PlatformAndroid, target.Platform)
	})

	t.Run("ios skips pods and bundles", func(t *testing.T) {
		target, err := adapter.EntryPoint(ctx, m.Path(root), m.PlatformIOS)
		require.NoError(t, err)

		assert.Equal(t, m.Path(filepath.Join(root, "ios", "example", "AppDelegate.swift")), target.Path)
		assert.Equal(t, m.DialectSwift, target.Dialect)
	})

	t.Run("legacy objective-c delegate", func(t *testing.T) {
		legacy := t.TempDir()
		writeTestFile(t, filepath.Join(legacy, "ios", "app", "AppDelegate.mm"), "#import <React/RCTBundleURLProvider.h>\n")

		target, err := adapter.EntryPoint(ctx, m.Path(legacy), m.PlatformIOS)
		require.NoError(t, err)

		assert.Equal(t, m.DialectObjCpp, target.Dialect)
	})

	t.Run("absent platform", func(t *testing.T) {
		_, err := adapter.EntryPoint(ctx, m.Path(t.TempDir()), m.PlatformAndroid)
		assert.ErrorIs(t, err, ErrPlatformAbsent)
	})

	t.Run("platform without entry point", func(t *testing.T) {
		empty := t.TempDir()
		mustMkdir(t, filepath.Join(empty, "android"))

		_, err := adapter.EntryPoint(ctx, m.Path(empty), m.PlatformAndroid)
		assert.ErrorIs(t, err, ErrEntryPointNotFound)
	})
}

func TestLocalProjectAdapter_ResourceFile(t *testing.T) {
	ctx := context.Background()
	adapter := NewLocalProjectAdapter(NewLocalSourceFSAdapter())
	root := newProjectFixture(t)

	path, err := adapter.ResourceFile(ctx, m.Path(root), m.PlatformIOS)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, "ios", "example", "Info.plist")), path)

	path, err = adapter.ResourceFile(ctx, m.Path(root), m.PlatformAndroid)
	require.NoError(t, err)
	assert.Equal(t, m.Path(filepath.Join(root, "android", "app", "src", "main", "res", "values", "strings.xml")), path)

	_, err = adapter.ResourceFile(ctx, m.Path(t.TempDir()), m.PlatformIOS)
	assert.ErrorIs(t, err, ErrPlatformAbsent)
}
