package splice

import (
	"regexp"
	"strings"
)

// Signature identifies a step's fragment inside file content. It is the
// idempotency guard: a step whose signature is present anywhere in the file,
// comments included, is treated as already applied.
type Signature struct {
	text    string
	pattern *regexp.Regexp
}

// Literal returns a Signature matching text verbatim.
func Literal(text string) Signature {
	return Signature{text: text}
}

// Pattern returns a Signature matching the regular expression expr.
func Pattern(expr string) Signature {
	return Signature{pattern: regexp.MustCompile(expr)}
}

// Present reports whether the signature occurs in content.
func (s Signature) Present(content string) bool {
	if s.pattern != nil {
		return s.pattern.MatchString(content)
	}

	return s.text != "" && strings.Contains(content, s.text)
}

func (s Signature) String() string {
	if s.pattern != nil {
		return s.pattern.String()
	}

	return s.text
}
