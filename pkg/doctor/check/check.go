package check

import (
	"context"
	"io/fs"
)

// Check represents a single diagnostic probe that validates one aspect of a
// host application installation.
//
// A check declares the bootstrap stage it must run at via Stage(). Checks with
// StageImmediate (the zero value) run before the host environment exists at
// all and must not touch host state beyond the installation root.
//
// Run is invoked exactly once per invocation. It returns the check outcome as
// a Result; a non-nil error means the check itself could not execute and is
// converted by the scheduler into an error-status result for this check only.
type Check interface {
	// ID returns the unique identifier for this check
	ID() string

	// Description returns what this check validates
	Description() string

	// Stage returns the bootstrap stage this check must run at
	Stage() Stage

	// Run executes the check against the target and produces its outcome
	Run(ctx context.Context, target *Target) (*Result, error)
}

// FileCheck is a check that additionally inspects individual files during the
// single file-tree walk of the installation root.
//
// For every file whose extension is in Extensions(), CheckFile is invoked to
// accumulate internal state. Run is called strictly after the walk has fully
// completed, never on a partial scan.
type FileCheck interface {
	Check

	// Extensions returns the file extensions of interest, without the
	// leading dot. Matching is case-sensitive and exact.
	Extensions() []string

	// CheckFile is invoked once per matching file during the tree walk.
	CheckFile(path string, entry fs.DirEntry) error
}

// Result represents the outcome of a single check run.
type Result struct {
	// Status indicates the check outcome (success, warning, error)
	Status Status

	// Message provides human-readable context about the outcome
	Message string
}

// Success returns a success result with the given message.
func Success(message string) *Result {
	return &Result{Status: StatusSuccess, Message: message}
}

// Warning returns a warning result with the given message.
func Warning(message string) *Result {
	return &Result{Status: StatusWarning, Message: message}
}

// Error returns an error-status result with the given message.
func Error(message string) *Result {
	return &Result{Status: StatusError, Message: message}
}
