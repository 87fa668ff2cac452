package splice

import "strings"

// Placement says where a fragment goes relative to its anchor span.
type Placement int

const (
	// Before inserts the fragment, then the separator, ahead of the span.
	Before Placement = iota
	// After inserts the separator, then the fragment, right behind the span.
	// When the span ends at an opening brace the fragment becomes the first
	// content of the block.
	After
	// Replace substitutes the span with the fragment.
	Replace
)

func (p Placement) String() string {
	switch p {
	case Before:
		return "before"
	case After:
		return "after"
	case Replace:
		return "replace"
	default:
		return "unknown"
	}
}

// Insert splices fragment into content at span. Before and Replace start at
// the beginning of the span's line when only indentation precedes the span, so
// the anchored line keeps its own indentation. Bytes outside the span and the
// insertion point are returned unchanged.
func Insert(content string, span Span, fragment string, placement Placement, sep string) string {
	at := spliceAt(content, span, placement)

	switch placement {
	case Before:
		return content[:at] + fragment + sep + content[at:]
	case After:
		return content[:at] + sep + fragment + content[at:]
	case Replace:
		return content[:at] + fragment + content[span.End:]
	default:
		return content
	}
}

// spliceAt returns the offset where Insert places a fragment for span.
func spliceAt(content string, span Span, placement Placement) int {
	if placement == After {
		return span.End
	}

	return lineStartIfIndent(content, span.Start)
}

// midLine reports whether code precedes offset at on its line.
func midLine(content string, at int) bool {
	return at != lineStart(content, at)
}

func lineStart(content string, at int) int {
	return strings.LastIndexByte(content[:at], '\n') + 1
}

func lineStartIfIndent(content string, at int) int {
	start := lineStart(content, at)
	if strings.Trim(content[start:at], " \t") == "" {
		return start
	}

	return at
}

// indentOf returns the leading whitespace of the line holding offset at.
func indentOf(content string, at int) string {
	start := lineStart(content, at)

	end := start
	for end < len(content) && (content[end] == ' ' || content[end] == '\t') {
		end++
	}

	return content[start:end]
}

// indentLines prefixes every non-blank line of fragment with indent.
func indentLines(fragment, indent string) string {
	if indent == "" {
		return fragment
	}

	lines := strings.Split(fragment, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			lines[i] = indent + line
		}
	}

	return strings.Join(lines, "\n")
}

// lineEnding reports the line separator used by content.
func lineEnding(content string) string {
	if strings.Contains(content, "\r\n") {
		return "\r\n"
	}

	return "\n"
}

func withLineEnding(text, eol string) string {
	if eol == "\n" {
		return text
	}

	return strings.ReplaceAll(text, "\n", eol)
}
