package domain

import "errors"

var (
	// ErrUnsupportedDialect is returned for entry-point files whose dialect has
	// no mutation sequence. Such files are never read.
	ErrUnsupportedDialect = errors.New("unsupported dialect")
	// ErrIO wraps read and write failures of project files.
	ErrIO = errors.New("io failure")
	// ErrInvalidOptions is returned when command arguments fail validation.
	ErrInvalidOptions = errors.New("invalid options")
	// ErrNotFullyModified is returned by a strict check when a file still
	// misses some of its mutations.
	ErrNotFullyModified = errors.New("entry point not fully patched")
)
