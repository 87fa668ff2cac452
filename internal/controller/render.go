package controller

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	m "pushup.dev/pkg/pushup/internal/model"
)

const shortIDLength = 8

// paint decorates a piece of rendered text.
type paint func(string) string

func noPaint(s string) string { return s }

// palette colors the parts of a rendered report.
type palette struct {
	title   paint
	muted   paint
	ok      paint
	warn    paint
	fail    paint
	added   paint
	removed paint
}

func plainPalette() palette {
	return palette{
		title:   noPaint,
		muted:   noPaint,
		ok:      noPaint,
		warn:    noPaint,
		fail:    noPaint,
		added:   noPaint,
		removed: noPaint,
	}
}

func renderRunReport(report m.RunReport, mode StartMode, p palette) string {
	var b strings.Builder

	header := p.title("pushup "+mode.String()) + p.muted("  run "+shortID(report.ID))
	if report.DryRun && mode != ModeCheck {
		header += "  " + p.warn("dry run")
	}

	b.WriteString(header + "\n")

	if report.Host != "" {
		fmt.Fprintf(&b, "%s\n", p.muted(fmt.Sprintf("root %s  host %s", report.Root, report.Host)))
	} else {
		fmt.Fprintf(&b, "%s\n", p.muted(fmt.Sprintf("root %s", report.Root)))
	}

	var rows [][]string

	for _, platform := range report.Platforms {
		if platform.File == nil {
			continue
		}

		for _, mutation := range platform.File.Mutations {
			rows = append(rows, []string{string(platform.Platform), mutation.Step, string(mutation.Status), mutation.Anchor})
		}
	}

	if len(rows) > 0 {
		b.WriteString("\n")
		b.WriteString(renderTable([]string{"Platform", "Step", "Status", "Anchor"}, rows))
	}

	b.WriteString("\n")

	for _, platform := range report.Platforms {
		b.WriteString(renderPlatformSummary(platform, mode, p))
	}

	if !report.DryRun {
		return b.String()
	}

	for _, platform := range report.Platforms {
		if platform.File != nil && platform.File.Diff != "" {
			b.WriteString("\n")
			b.WriteString(renderDiff(platform.File.Diff, p))
		}
	}

	return b.String()
}

func renderPlatformSummary(platform m.PlatformReport, mode StartMode, p palette) string {
	var b strings.Builder

	switch {
	case platform.Absent:
		fmt.Fprintf(&b, "%s: %s\n", platform.Platform, p.muted("no project directory, skipped"))
	case platform.File != nil:
		fmt.Fprintf(&b, "%s: %s %s\n", platform.Platform, platform.File.Target.Path, renderTransition(*platform.File, mode, p))
	}

	for _, resource := range platform.Resources {
		fmt.Fprintf(&b, "  %s %s=%s %s\n", resource.Path, resource.Key, resource.Value, renderOutcome(resource.Changed, resource.Written, p))
	}

	if platform.Error != "" {
		fmt.Fprintf(&b, "  %s\n", p.fail("error: "+platform.Error))
	}

	return b.String()
}

func renderFileReport(report m.FileReport, p palette) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n", p.title(string(report.Target.Path)), p.muted("("+string(report.Target.Dialect)+")"))

	if len(report.Mutations) > 0 {
		rows := make([][]string, 0, len(report.Mutations))
		for _, mutation := range report.Mutations {
			rows = append(rows, []string{mutation.Step, string(mutation.Status), mutation.Anchor})
		}

		b.WriteString("\n")
		b.WriteString(renderTable([]string{"Step", "Status", "Anchor"}, rows))
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n", renderTransition(report, ModeApply, p))

	if report.Diff != "" && !report.Written {
		b.WriteString("\n")
		b.WriteString(renderDiff(report.Diff, p))
	}

	return b.String()
}

// renderTransition shows the state change of a file. Check mode shows the
// state as found on disk.
func renderTransition(report m.FileReport, mode StartMode, p palette) string {
	if mode == ModeCheck {
		return paintState(report.Before, p)
	}

	return fmt.Sprintf("%s -> %s %s", paintState(report.Before, p), paintState(report.After, p), renderOutcome(report.Changed, report.Written, p))
}

func renderOutcome(changed, written bool, p palette) string {
	switch {
	case written:
		return p.ok("(written)")
	case changed:
		return p.warn("(pending)")
	default:
		return p.muted("(unchanged)")
	}
}

func paintState(state m.FileState, p palette) string {
	switch state {
	case m.FullyModified:
		return p.ok(string(state))
	case m.PartiallyModified:
		return p.warn(string(state))
	default:
		return p.muted(string(state))
	}
}

func renderDiff(diff string, p palette) string {
	lines := strings.SplitAfter(diff, "\n")

	var b strings.Builder

	for _, line := range lines {
		body := strings.TrimSuffix(line, "\n")
		eol := line[len(body):]

		switch {
		case strings.HasPrefix(body, "+++"), strings.HasPrefix(body, "---"), strings.HasPrefix(body, "@@"):
			b.WriteString(p.muted(body) + eol)
		case strings.HasPrefix(body, "+"):
			b.WriteString(p.added(body) + eol)
		case strings.HasPrefix(body, "-"):
			b.WriteString(p.removed(body) + eol)
		default:
			b.WriteString(line)
		}
	}

	return b.String()
}

func renderTable(header []string, rows [][]string) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()

	return buf.String()
}

func shortID(id string) string {
	if len(id) > shortIDLength {
		return id[:shortIDLength]
	}

	return id
}
