package adapter

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "pushup.dev/pkg/pushup/internal/model"
)

func TestYAMLReportStore_SaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewYAMLReportStore(NewLocalSourceFSAdapter())
	path := m.Path(filepath.Join(t.TempDir(), "reports", "pushup-report.yaml"))

	report := m.RunReport{
		ID:        "run-1",
		StartedAt: time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC),
		Root:      "/work/app",
		Host:      "https://bundles.example.com",
		Platforms: []m.PlatformReport{
			{
				Platform: m.PlatformAndroid,
				File: &m.FileReport{
					Target: m.Target{Platform: m.PlatformAndroid, Path: "MainApplication.kt", Dialect: m.DialectKotlin},
					Before: m.Unmodified,
					After:  m.PartiallyModified,
					Mutations: []m.MutationResult{
						{Step: "imports", Status: m.MutationApplied, Anchor: "package", Mandatory: true},
						{Step: "fetch-on-create", Status: m.MutationSkipped},
					},
					Changed: true,
					Written: true,
					Diff:    "not persisted",
				},
			},
			{Platform: m.PlatformIOS, Absent: true},
		},
	}

	require.NoError(t, store.SaveReport(ctx, path, report))

	loaded, err := store.LoadReport(ctx, path)
	require.NoError(t, err)

	report.Platforms[0].File.Diff = ""
	assert.Equal(t, report, loaded)
}

func TestYAMLReportStore_LoadMissing(t *testing.T) {
	store := NewYAMLReportStore(NewLocalSourceFSAdapter())

	_, err := store.LoadReport(context.Background(), m.Path(filepath.Join(t.TempDir(), "missing.yaml")))
	assert.Error(t, err)
}
