// Package splice implements anchor-based text surgery on native source files
// that the tool does not parse: find a structural marker, check whether a
// fragment is already there, and splice the fragment next to the marker while
// leaving every other byte of the file untouched.
package splice

import (
	"regexp"
	"strings"
)

// Span is a half-open byte range [Start, End) of file content. A span with
// Start == End is a zero-width insertion point.
type Span struct {
	Start int
	End   int
}

// Locator finds the first anchor span within content.
type Locator interface {
	Locate(content string) (Span, bool)
	String() string
}

type regexLocator struct {
	re *regexp.Regexp
}

// Regex returns a Locator for the first match of expr that starts in code.
// When expr has a capture group the span covers the first group only, so an
// anchor can require surrounding context while targeting a narrower span.
func Regex(expr string) Locator {
	return regexLocator{re: regexp.MustCompile(expr)}
}

func (l regexLocator) Locate(content string) (Span, bool) {
	loc := firstCodeMatch(l.re, content)
	if loc == nil {
		return Span{}, false
	}

	if len(loc) >= 4 && loc[2] >= 0 {
		return Span{Start: loc[2], End: loc[3]}, true
	}

	return Span{Start: loc[0], End: loc[1]}, true
}

func (l regexLocator) String() string {
	return l.re.String()
}

type blockLocator struct {
	header *regexp.Regexp
}

// Block returns a Locator for a declaration whose header matches expr and
// whose body is the brace-balanced block that follows. The span runs from the
// start of the header through the closing brace.
func Block(expr string) Locator {
	return blockLocator{header: regexp.MustCompile(expr)}
}

func (l blockLocator) Locate(content string) (Span, bool) {
	loc := firstCodeMatch(l.header, content)
	if loc == nil {
		return Span{}, false
	}

	open := openingBrace(content, loc[0])
	if open < 0 {
		return Span{}, false
	}

	closing, ok := matchingBrace(content, open)
	if !ok {
		return Span{}, false
	}

	return Span{Start: loc[0], End: closing + 1}, true
}

func (l blockLocator) String() string {
	return "block(" + l.header.String() + ")"
}

type memberLocator struct {
	header *regexp.Regexp
}

// Member returns a Locator for a member declaration whose header matches expr.
// The span covers the declaration and its body, either a brace block or an
// expression body continued across lines, and stops before the newline that
// ends it.
func Member(expr string) Locator {
	return memberLocator{header: regexp.MustCompile(expr)}
}

func (l memberLocator) Locate(content string) (Span, bool) {
	loc := firstCodeMatch(l.header, content)
	if loc == nil {
		return Span{}, false
	}

	return Span{Start: loc[0], End: memberEnd(content, loc[1])}, true
}

func (l memberLocator) String() string {
	return "member(" + l.header.String() + ")"
}

// firstCodeMatch returns the submatch indices of the first match of re that
// does not start inside a comment or string literal.
func firstCodeMatch(re *regexp.Regexp, content string) []int {
	for _, loc := range re.FindAllStringSubmatchIndex(content, -1) {
		if inCode(content, loc[0]) {
			return loc
		}
	}

	return nil
}

// inCode reports whether offset at lies outside every comment and string
// literal of src.
func inCode(src string, at int) bool {
	for i := 0; i < at; {
		j := skipLiteral(src, i)
		if j == i {
			i++
			continue
		}

		if at < j {
			return false
		}

		i = j
	}

	return true
}

// skipLiteral returns the index just past a string literal or comment that
// starts at i, or i itself when code starts there. Line comments stop before
// their newline so callers still see line boundaries.
func skipLiteral(src string, i int) int {
	rest := src[i:]

	switch {
	case strings.HasPrefix(rest, "//"):
		if j := strings.IndexByte(rest, '\n'); j >= 0 {
			return i + j
		}

		return len(src)
	case strings.HasPrefix(rest, "/*"):
		if j := strings.Index(rest[2:], "*/"); j >= 0 {
			return i + 2 + j + 2
		}

		return len(src)
	case strings.HasPrefix(rest, `"""`):
		if j := strings.Index(rest[3:], `"""`); j >= 0 {
			return i + 3 + j + 3
		}

		return len(src)
	case rest[0] == '"' || rest[0] == '\'':
		return skipQuoted(src, i)
	}

	return i
}

func skipQuoted(src string, i int) int {
	quote := src[i]

	for j := i + 1; j < len(src); j++ {
		switch src[j] {
		case '\\':
			j++
		case quote:
			return j + 1
		case '\n':
			// Unterminated on this line; resume scanning at the newline.
			return j
		}
	}

	return len(src)
}

// eachCode calls fn with the index of every code byte from start onwards,
// skipping literals and comments, until fn returns false.
func eachCode(src string, start int, fn func(i int) bool) {
	for i := start; i < len(src); {
		if j := skipLiteral(src, i); j != i {
			i = j
			continue
		}

		if !fn(i) {
			return
		}

		i++
	}
}

// openingBrace returns the first code '{' at or after start, or -1 when a
// closing brace is reached first.
func openingBrace(src string, start int) int {
	found := -1

	eachCode(src, start, func(i int) bool {
		switch src[i] {
		case '{':
			found = i
			return false
		case '}':
			return false
		}

		return true
	})

	return found
}

// matchingBrace returns the index of the brace closing the one at open.
func matchingBrace(src string, open int) (int, bool) {
	depth := 0
	closing := -1

	eachCode(src, open, func(i int) bool {
		switch src[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				closing = i
				return false
			}
		}

		return true
	})

	return closing, closing >= 0
}

// memberEnd scans a member body starting at from and returns the offset of
// the newline that terminates it. A newline does not terminate the member
// while brackets are open, right after '=', or when the next line continues a
// call chain.
func memberEnd(src string, from int) int {
	depth := 0
	end := len(src)

	var last byte

	eachCode(src, from, func(i int) bool {
		c := src[i]

		switch c {
		case '\n':
			if depth > 0 || last == '=' || continuesChain(src, i+1) {
				return true
			}

			end = from + len(strings.TrimRight(src[from:i], " \t\r"))

			return false
		case ' ', '\t', '\r':
			return true
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			if depth == 0 {
				// Closing brace of the enclosing block.
				end = from + len(strings.TrimRight(src[from:i], " \t\r\n"))
				return false
			}

			depth--
		}

		last = c

		return true
	})

	if end == len(src) {
		end = from + len(strings.TrimRight(src[from:], " \t\r\n"))
	}

	return end
}

func continuesChain(src string, i int) bool {
	rest := strings.TrimLeft(src[i:], " \t\r\n")
	return strings.HasPrefix(rest, ".") || strings.HasPrefix(rest, "?.")
}
