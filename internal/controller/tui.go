package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	m "pushup.dev/pkg/pushup/internal/model"
)

// footerHeight is the number of lines below the pager viewport.
const footerHeight = 2

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle   = lipgloss.NewStyle().Faint(true).Foreground(lipgloss.Color("8"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	failStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	addedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	removedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func styled(style lipgloss.Style) paint {
	return func(s string) string {
		return style.Render(s)
	}
}

func tuiPalette() palette {
	return palette{
		title:   styled(titleStyle),
		muted:   styled(mutedStyle),
		ok:      styled(okStyle),
		warn:    styled(warnStyle),
		fail:    styled(failStyle),
		added:   styled(addedStyle),
		removed: styled(removedStyle),
	}
}

// TUI implements UI with colored output. Reports taller than the terminal
// open in a scrollable pager, except in watch mode where output streams.
type TUI struct {
	output io.Writer
	mode   StartMode
	mu     sync.Mutex
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start initializes the UI.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.mode = newStartConfig(options...).mode

	return nil
}

// Close finalizes the UI.
func (t *TUI) Close(_ context.Context) {}

// Wait returns immediately: the pager already blocks while it is shown.
func (t *TUI) Wait(_ context.Context) {}

// DisplayRunReport shows the per-platform outcome of a run.
func (t *TUI) DisplayRunReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.show(ctx, renderRunReport(report, t.mode, tuiPalette()))
}

// DisplayFileReport shows the outcome of a single file transaction.
func (t *TUI) DisplayFileReport(ctx context.Context, report m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	return t.show(ctx, renderFileReport(report, tuiPalette()))
}

// DisplayWatchEvent shows a detected file change.
func (t *TUI) DisplayWatchEvent(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	_, _ = fmt.Fprintf(t.output, "\n%s %s\n", warnStyle.Render("change detected:"), path)
}

func (t *TUI) show(ctx context.Context, content string) error {
	width, height := t.size()

	if t.mode == ModeWatch || height == 0 || strings.Count(content, "\n") < height-footerHeight {
		_, err := fmt.Fprint(t.output, content)
		return err
	}

	program := tea.NewProgram(
		newPagerModel(content, width, height),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("pager: %w", err)
	}

	return nil
}

// size returns the terminal size, or zeros when the output is not a terminal.
func (t *TUI) size() (int, int) {
	f, ok := t.output.(*os.File)
	if !ok {
		return 0, 0
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0
	}

	return width, height
}

// pagerModel is the Bubble Tea model scrolling a rendered report.
type pagerModel struct {
	viewport viewport.Model
}

func newPagerModel(content string, width, height int) pagerModel {
	vp := viewport.New(width, max(height-footerHeight, 1))
	vp.SetContent(content)

	return pagerModel{viewport: vp}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.viewport.Width = msg.Width
		pm.viewport.Height = max(msg.Height-footerHeight, 1)

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	footer := mutedStyle.Render(fmt.Sprintf("%3.f%%  ↑/↓ scroll  q quit", pm.viewport.ScrollPercent()*100))

	return pm.viewport.View() + "\n\n" + footer
}
