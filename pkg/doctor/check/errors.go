package check

import (
	"fmt"
	"strings"
)

// UnknownCheckError indicates that one or more requested check names are not
// present in the registry. It is surfaced before any execution begins.
type UnknownCheckError struct {
	// Names are the unmatched names, in request order.
	Names []string
}

func (e *UnknownCheckError) Error() string {
	if len(e.Names) == 1 {
		return fmt.Sprintf("unknown check: %s", e.Names[0])
	}

	return fmt.Sprintf("unknown checks: %s", strings.Join(e.Names, ", "))
}

// ConfigError indicates that a check configuration source is missing or
// malformed. It aborts the invocation before any check runs.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("check configuration %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// FileSystemError indicates that the file-tree walk could not complete. A
// partial walk would silently under-report findings for every file check, so
// this aborts the whole invocation.
type FileSystemError struct {
	Path string
	Err  error
}

func (e *FileSystemError) Error() string {
	return fmt.Sprintf("scanning %s: %v", e.Path, e.Err)
}

func (e *FileSystemError) Unwrap() error {
	return e.Err
}
