package domain

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	m "pushup.dev/pkg/pushup/internal/model"
)

// DefaultDebounce is the quiet period the watcher waits for before re-running.
const DefaultDebounce = 200 * time.Millisecond

var platformRule = validation.Each(validation.In(m.PlatformAndroid, m.PlatformIOS))

// ApplyArgs contains the arguments for patching a project.
type ApplyArgs struct {
	Root          m.Path
	Host          string
	Platforms     []m.Platform
	DryRun        bool
	SkipResources bool
	// Report is the YAML file the run report is saved to. Empty skips saving.
	Report m.Path
}

// Validate checks the arguments. The host may only be omitted when resources
// are skipped.
func (a *ApplyArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Root, validation.Required),
		validation.Field(&a.Host, validation.When(!a.SkipResources, validation.Required), is.URL),
		validation.Field(&a.Platforms, validation.Required, platformRule),
	)
}

// PatchArgs contains the arguments for patching a single entry-point file.
type PatchArgs struct {
	File m.Path
	// Dialect overrides the dialect derived from the file extension.
	Dialect m.Dialect
	DryRun  bool
}

// Validate checks the arguments.
func (a *PatchArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.File, validation.Required),
	)
}

// CheckArgs contains the arguments for inspecting a project without writing.
type CheckArgs struct {
	Root      m.Path
	Platforms []m.Platform
	// Strict fails the check when an entry point is not fully patched.
	Strict bool
}

// Validate checks the arguments.
func (a *CheckArgs) Validate() error {
	return validation.ValidateStruct(a,
		validation.Field(&a.Root, validation.Required),
		validation.Field(&a.Platforms, validation.Required, platformRule),
	)
}

// WatchArgs contains the arguments for re-applying on file changes.
type WatchArgs struct {
	ApplyArgs
	Debounce time.Duration
}

// Validate checks the arguments.
func (a *WatchArgs) Validate() error {
	if err := a.ApplyArgs.Validate(); err != nil {
		return err
	}

	return validation.ValidateStruct(a,
		validation.Field(&a.Debounce, validation.Min(time.Duration(0))),
	)
}
