package model

// MutationStatus describes what a single mutation step did to a file.
type MutationStatus string

const (
	// MutationApplied means the step's fragment was inserted during this pass.
	MutationApplied MutationStatus = "applied"
	// MutationAlreadyApplied means the step's signature was already present.
	MutationAlreadyApplied MutationStatus = "already-applied"
	// MutationSkipped means no anchor of an optional step was found.
	MutationSkipped MutationStatus = "skipped"
)

// MutationResult records the outcome of one step of a mutation sequence.
type MutationResult struct {
	Step      string         `yaml:"step"`
	Status    MutationStatus `yaml:"status"`
	Anchor    string         `yaml:"anchor,omitempty"` // anchor that matched, when applied
	Mandatory bool           `yaml:"mandatory"`
}
