package splice

import (
	"errors"
	"fmt"
	"strings"

	m "pushup.dev/pkg/pushup/internal/model"
)

// ErrMandatoryAnchorNotFound is returned when no anchor of a mandatory step
// matches, meaning the host file does not have the expected shape.
var ErrMandatoryAnchorNotFound = errors.New("mandatory anchor not found")

// StepError identifies the step and dialect of a failed pass.
type StepError struct {
	Dialect m.Dialect
	Step    string
	Anchors []string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s step %q: %v (tried: %s)",
		e.Dialect, e.Step, ErrMandatoryAnchorNotFound, strings.Join(e.Anchors, ", "))
}

// Unwrap makes errors.Is(err, ErrMandatoryAnchorNotFound) hold.
func (e *StepError) Unwrap() error {
	return ErrMandatoryAnchorNotFound
}
