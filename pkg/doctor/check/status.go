package check

import "fmt"

// Status represents the outcome of a check run.
type Status string

const (
	StatusSuccess Status = "success"
	StatusWarning Status = "warning"
	StatusError   Status = "error"

	// StatusSkipped marks a check whose stage trigger never fired, e.g.
	// because the host bootstrap aborted before reaching it.
	StatusSkipped Status = "skipped"
)

// Validate checks if the status is valid.
func (s Status) Validate() error {
	switch s {
	case StatusSuccess, StatusWarning, StatusError, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("invalid status: %s", s)
	}
}

// String returns the string representation of the status.
func (s Status) String() string {
	return string(s)
}
