package splice

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	m "pushup.dev/pkg/pushup/internal/model"
)

const defaultSeparator = "\n"

// Anchor is one link of a step's fallback chain.
type Anchor struct {
	Name      string
	Locator   Locator
	Placement Placement
	// Separator joins the fragment to the anchored text for Before and After.
	// A newline is used when empty.
	Separator string
	// Nested indents the fragment one level deeper than the anchored line,
	// for insertions into a declaration body.
	Nested bool
}

func (a Anchor) separator() string {
	if a.Separator == "" {
		return defaultSeparator
	}

	return a.Separator
}

// Step is a guarded insertion of one fragment. Anchors are tried in order and
// the first match wins.
type Step struct {
	Name      string
	Signature Signature
	// Fragment is stored without base indentation; it is indented to the
	// anchored line when spliced.
	Fragment  string
	Anchors   []Anchor
	Mandatory bool
}

// Sequence is the ordered step table for one dialect. Sequences are built
// once and never modified, so they can be shared between goroutines.
type Sequence struct {
	Dialect    m.Dialect
	IndentUnit string
	Steps      []Step
}

// Result is the content produced by Apply with the outcome of every step.
type Result struct {
	Content   string
	Mutations []m.MutationResult
}

// Changed reports whether any step inserted a fragment.
func (r Result) Changed() bool {
	for _, mutation := range r.Mutations {
		if mutation.Status == m.MutationApplied {
			return true
		}
	}

	return false
}

// Apply runs every step in order, each one seeing the content produced by the
// steps before it. A mandatory step without a matching anchor aborts the pass
// with a *StepError and no content.
func (s Sequence) Apply(content string) (Result, error) {
	eol := lineEnding(content)
	result := Result{
		Content:   content,
		Mutations: make([]m.MutationResult, 0, len(s.Steps)),
	}

	for _, step := range s.Steps {
		updated, mutation, err := s.applyStep(result.Content, step, eol)
		if err != nil {
			slog.Error("Mandatory anchor not found", "dialect", s.Dialect, "step", step.Name, "error", err)
			return Result{}, err
		}

		result.Content = updated
		result.Mutations = append(result.Mutations, mutation)
	}

	return result, nil
}

func (s Sequence) applyStep(content string, step Step, eol string) (string, m.MutationResult, error) {
	mutation := m.MutationResult{Step: step.Name, Mandatory: step.Mandatory}

	if step.Signature.Present(content) {
		slog.Debug("Mutation already applied", "dialect", s.Dialect, "step", step.Name)

		mutation.Status = m.MutationAlreadyApplied

		return content, mutation, nil
	}

	for _, anchor := range step.Anchors {
		span, ok := anchor.Locator.Locate(content)
		if !ok {
			slog.Debug("Anchor not found", "dialect", s.Dialect, "step", step.Name, "anchor", anchor.Name)
			continue
		}

		indent := s.indentFor(content, span, anchor)
		fragment := indentLines(step.Fragment, indent)

		if anchor.Placement != After && midLine(content, spliceAt(content, span, anchor.Placement)) {
			// The anchored line already carries its indentation and any
			// modifiers ahead of the splice point.
			fragment = strings.TrimPrefix(fragment, indent)
		}

		fragment = withLineEnding(fragment, eol)
		updated := Insert(content, span, fragment, anchor.Placement, withLineEnding(anchor.separator(), eol))

		slog.Info("Mutation applied", "dialect", s.Dialect, "step", step.Name, "anchor", anchor.Name, "placement", anchor.Placement)

		mutation.Status = m.MutationApplied
		mutation.Anchor = anchor.Name

		return updated, mutation, nil
	}

	if step.Mandatory {
		return content, mutation, &StepError{Dialect: s.Dialect, Step: step.Name, Anchors: anchorNames(step.Anchors)}
	}

	slog.Warn("Optional anchor not found, step skipped", "dialect", s.Dialect, "step", step.Name, "anchors", anchorNames(step.Anchors))

	mutation.Status = m.MutationSkipped

	return content, mutation, nil
}

func (s Sequence) indentFor(content string, span Span, anchor Anchor) string {
	indent := indentOf(content, span.Start)
	if anchor.Nested {
		indent += s.IndentUnit
	}

	return indent
}

// Validate checks the table: every step needs a name, at least one anchor and
// a signature that occurs in its own fragment, so the guard and the inserted
// text cannot drift apart.
func (s Sequence) Validate() error {
	var errs []error

	seen := make(map[string]struct{}, len(s.Steps))

	for i, step := range s.Steps {
		if step.Name == "" {
			errs = append(errs, fmt.Errorf("%s: step %d has no name", s.Dialect, i))
		}

		if _, dup := seen[step.Name]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate step %q", s.Dialect, step.Name))
		}

		seen[step.Name] = struct{}{}

		if len(step.Anchors) == 0 {
			errs = append(errs, fmt.Errorf("%s: step %q has no anchors", s.Dialect, step.Name))
		}

		if !step.Signature.Present(step.Fragment) {
			errs = append(errs, fmt.Errorf("%s: step %q signature %q does not occur in its fragment", s.Dialect, step.Name, step.Signature))
		}
	}

	return errors.Join(errs...)
}

func anchorNames(anchors []Anchor) []string {
	names := make([]string, 0, len(anchors))
	for _, anchor := range anchors {
		names = append(names, anchor.Name)
	}

	return names
}
