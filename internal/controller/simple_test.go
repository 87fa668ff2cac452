package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	m "pushup.dev/pkg/pushup/internal/model"
)

func sampleRunReport(dryRun bool) m.RunReport {
	return m.RunReport{
		ID:     "0f8fad5b-d9cb-469f-a165-70867728950e",
		Root:   "app",
		Host:   "http://10.0.2.2:8081",
		DryRun: dryRun,
		Platforms: []m.PlatformReport{
			{
				Platform: m.PlatformAndroid,
				File: &m.FileReport{
					Target: m.Target{Path: "android/app/MainApplication.kt", Dialect: m.DialectKotlin},
					Before: m.Unmodified,
					After:  m.FullyModified,
					Mutations: []m.MutationResult{
						{Step: "imports", Status: m.MutationApplied, Anchor: "package", Mandatory: true},
						{Step: "fetch-on-create", Status: m.MutationSkipped},
					},
					Changed: true,
					Written: !dryRun,
					Diff:    "--- a/MainApplication.kt\n+++ b/MainApplication.kt\n@@ -1 +1,2 @@\n package x\n+import y\n",
				},
				Resources: []m.ResourceReport{
					{Path: "strings.xml", Key: m.HostResourceName, Value: "http://10.0.2.2:8081", Changed: true, Written: !dryRun},
				},
			},
			{Platform: m.PlatformIOS, Absent: true},
		},
	}
}

func newTestSimpleUI(buf *bytes.Buffer) *SimpleUI {
	cmd := &cobra.Command{}
	cmd.SetOut(buf)

	return NewSimpleUI(cmd)
}

func TestSimpleUI_DisplayRunReport(t *testing.T) {
	tests := []struct {
		name            string
		mode            StartOption
		dryRun          bool
		wantContains    []string
		wantNotContains []string
	}{
		{
			name:   "apply writes",
			mode:   WithApplyMode(),
			dryRun: false,
			wantContains: []string{
				"pushup apply", "run 0f8fad5b", "host http://10.0.2.2:8081",
				"PLATFORM", "imports", "applied", "package", "fetch-on-create", "skipped",
				"android/app/MainApplication.kt unmodified -> fully-modified (written)",
				"strings.xml PushupHost=http://10.0.2.2:8081 (written)",
				"ios: no project directory, skipped",
			},
			wantNotContains: []string{"dry run", "+import y"},
		},
		{
			name:         "dry run shows the diff",
			mode:         WithApplyMode(),
			dryRun:       true,
			wantContains: []string{"dry run", "(pending)", "+import y", "--- a/MainApplication.kt"},
		},
		{
			name:            "check shows the state on disk",
			mode:            WithCheckMode(),
			dryRun:          true,
			wantContains:    []string{"pushup check", "android/app/MainApplication.kt unmodified\n"},
			wantNotContains: []string{"dry run", "->"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			ui := newTestSimpleUI(&buf)
			if err := ui.Start(context.Background(), tt.mode); err != nil {
				t.Fatalf("Start() error = %v", err)
			}

			if err := ui.DisplayRunReport(context.Background(), sampleRunReport(tt.dryRun)); err != nil {
				t.Fatalf("DisplayRunReport() error = %v", err)
			}

			output := buf.String()
			for _, want := range tt.wantContains {
				if !strings.Contains(output, want) {
					t.Errorf("output missing %q:\n%s", want, output)
				}
			}

			for _, unwanted := range tt.wantNotContains {
				if strings.Contains(output, unwanted) {
					t.Errorf("output should not contain %q:\n%s", unwanted, output)
				}
			}
		})
	}
}

func TestSimpleUI_DisplayRunReport_Error(t *testing.T) {
	var buf bytes.Buffer

	report := m.RunReport{
		ID:        "abc",
		Root:      "app",
		Platforms: []m.PlatformReport{{Platform: m.PlatformAndroid, Error: "android: mandatory anchor not found"}},
	}

	if err := newTestSimpleUI(&buf).DisplayRunReport(context.Background(), report); err != nil {
		t.Fatalf("DisplayRunReport() error = %v", err)
	}

	if !strings.Contains(buf.String(), "error: android: mandatory anchor not found") {
		t.Errorf("expected error line, got:\n%s", buf.String())
	}
}

func TestSimpleUI_DisplayFileReport(t *testing.T) {
	var buf bytes.Buffer

	report := *sampleRunReport(true).Platforms[0].File

	if err := newTestSimpleUI(&buf).DisplayFileReport(context.Background(), report); err != nil {
		t.Fatalf("DisplayFileReport() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"android/app/MainApplication.kt (kotlin)", "STEP", "imports", "unmodified -> fully-modified (pending)", "+import y"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestSimpleUI_DisplayWatchEvent(t *testing.T) {
	var buf bytes.Buffer

	newTestSimpleUI(&buf).DisplayWatchEvent(context.Background(), "ios/app/AppDelegate.swift")

	if !strings.Contains(buf.String(), "change detected: ios/app/AppDelegate.swift") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	var buf bytes.Buffer

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := newTestSimpleUI(&buf)

	if err := ui.Start(ctx); err == nil {
		t.Error("Start() should fail on a cancelled context")
	}

	if err := ui.DisplayRunReport(ctx, sampleRunReport(false)); err == nil {
		t.Error("DisplayRunReport() should fail on a cancelled context")
	}

	ui.DisplayWatchEvent(ctx, "x")

	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestStartMode_String(t *testing.T) {
	for mode, want := range map[StartMode]string{ModeApply: "apply", ModeCheck: "check", ModeWatch: "watch"} {
		if got := mode.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", mode, got, want)
		}
	}
}

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}

	if _, ok := NewUI(cmd, false).(*SimpleUI); !ok {
		t.Error("expected SimpleUI when not a terminal")
	}

	if _, ok := NewUI(cmd, true).(*TUI); !ok {
		t.Error("expected TUI for a terminal")
	}

	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}
}
