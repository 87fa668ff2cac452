package model

import "time"

// FileState is the modification state of an entry-point file.
type FileState string

const (
	// Unmodified means no step of the sequence is present in the file.
	Unmodified FileState = "unmodified"
	// PartiallyModified means some, but not all, steps are present.
	PartiallyModified FileState = "partially-modified"
	// FullyModified means every step is present.
	FullyModified FileState = "fully-modified"
)

// StateBefore derives the state of a file as it was read, before the pass.
func StateBefore(results []MutationResult) FileState {
	present := 0

	for _, result := range results {
		if result.Status == MutationAlreadyApplied {
			present++
		}
	}

	switch {
	case present == 0:
		return Unmodified
	case present == len(results):
		return FullyModified
	default:
		return PartiallyModified
	}
}

// StateAfter derives the state of a file once the pass has been applied.
func StateAfter(results []MutationResult) FileState {
	skipped := 0

	for _, result := range results {
		if result.Status == MutationSkipped {
			skipped++
		}
	}

	switch {
	case skipped == 0:
		return FullyModified
	case skipped == len(results):
		return Unmodified
	default:
		return PartiallyModified
	}
}

// FileReport describes one file transaction.
type FileReport struct {
	Target    Target           `yaml:"target"`
	Before    FileState        `yaml:"before"`
	After     FileState        `yaml:"after"`
	Mutations []MutationResult `yaml:"mutations"`
	Changed   bool             `yaml:"changed"`
	Written   bool             `yaml:"written"`
	Diff      string           `yaml:"-"`
}

// ResourceReport describes a configuration resource update (plist key or
// strings entry) performed next to a file transaction.
type ResourceReport struct {
	Path    Path   `yaml:"path"`
	Key     string `yaml:"key"`
	Value   string `yaml:"value"`
	Changed bool   `yaml:"changed"`
	Written bool   `yaml:"written"`
}

// PlatformReport groups everything done for one platform in a run.
type PlatformReport struct {
	Platform  Platform         `yaml:"platform"`
	Absent    bool             `yaml:"absent,omitempty"`
	File      *FileReport      `yaml:"file,omitempty"`
	Resources []ResourceReport `yaml:"resources,omitempty"`
	Error     string           `yaml:"error,omitempty"`
}

// RunReport is the persisted summary of an apply or check run.
type RunReport struct {
	ID        string           `yaml:"id"`
	StartedAt time.Time        `yaml:"started_at"`
	Root      Path             `yaml:"root"`
	Host      string           `yaml:"host,omitempty"`
	DryRun    bool             `yaml:"dry_run"`
	Platforms []PlatformReport `yaml:"platforms"`
}

// Failed reports whether any platform in the run ended with an error.
func (r RunReport) Failed() bool {
	for _, platform := range r.Platforms {
		if platform.Error != "" {
			return true
		}
	}

	return false
}
