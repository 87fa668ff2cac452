package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestTUI_DisplayRunReport_PrintsWithoutTerminal(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	if err := tui.Start(context.Background(), WithApplyMode()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	if err := tui.DisplayRunReport(context.Background(), sampleRunReport(true)); err != nil {
		t.Fatalf("DisplayRunReport() error = %v", err)
	}

	output := buf.String()
	for _, want := range []string{"pushup apply", "MainApplication.kt", "fetch-on-create", "+import y"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q:\n%s", want, output)
		}
	}
}

func TestTUI_DisplayFileReport(t *testing.T) {
	var buf bytes.Buffer

	report := *sampleRunReport(false).Platforms[0].File

	if err := NewTUI(&buf).DisplayFileReport(context.Background(), report); err != nil {
		t.Fatalf("DisplayFileReport() error = %v", err)
	}

	if !strings.Contains(buf.String(), "android/app/MainApplication.kt") {
		t.Errorf("unexpected output:\n%s", buf.String())
	}
}

func TestTUI_DisplayWatchEvent(t *testing.T) {
	var buf bytes.Buffer

	tui := NewTUI(&buf)
	_ = tui.Start(context.Background(), WithWatchMode())
	tui.DisplayWatchEvent(context.Background(), "android/app/src/main/res/values/strings.xml")

	if !strings.Contains(buf.String(), "strings.xml") {
		t.Errorf("unexpected output: %q", buf.String())
	}
}

func TestPagerModel_Update(t *testing.T) {
	content := strings.Repeat("line\n", 50)

	t.Run("quit keys", func(t *testing.T) {
		for _, key := range []tea.KeyMsg{
			{Type: tea.KeyRunes, Runes: []rune{'q'}},
			{Type: tea.KeyEsc},
			{Type: tea.KeyCtrlC},
		} {
			_, cmd := newPagerModel(content, 80, 10).Update(key)
			if cmd == nil {
				t.Fatalf("%s should quit", key)
			}

			if _, ok := cmd().(tea.QuitMsg); !ok {
				t.Errorf("%s should return tea.Quit", key)
			}
		}
	})

	t.Run("window resize", func(t *testing.T) {
		model, _ := newPagerModel(content, 80, 10).Update(tea.WindowSizeMsg{Width: 100, Height: 30})

		pager := model.(pagerModel)
		if pager.viewport.Width != 100 || pager.viewport.Height != 30-footerHeight {
			t.Errorf("viewport size = %dx%d", pager.viewport.Width, pager.viewport.Height)
		}
	})

	t.Run("scrolls down", func(t *testing.T) {
		model, _ := newPagerModel(content, 80, 10).Update(tea.KeyMsg{Type: tea.KeyDown})

		if model.(pagerModel).viewport.YOffset != 1 {
			t.Errorf("YOffset = %d, want 1", model.(pagerModel).viewport.YOffset)
		}
	})

	t.Run("view shows the footer", func(t *testing.T) {
		view := newPagerModel(content, 80, 10).View()
		if !strings.Contains(view, "q quit") {
			t.Errorf("footer missing:\n%s", view)
		}
	})
}

func TestRenderDiff_Plain(t *testing.T) {
	diff := "--- a/x\n+++ b/x\n@@ -1 +1 @@\n-old\n+new\n"

	if got := renderDiff(diff, plainPalette()); got != diff {
		t.Errorf("plain diff changed:\n%s", got)
	}
}

func TestShortID(t *testing.T) {
	if got := shortID("0123456789"); got != "01234567" {
		t.Errorf("shortID = %q", got)
	}

	if got := shortID("abc"); got != "abc" {
		t.Errorf("shortID = %q", got)
	}
}
