package check

import "fmt"

// Stage identifies the point in the host bootstrap sequence at which a check
// is permitted to run.
type Stage string

const (
	// StageImmediate checks run synchronously, before the host environment
	// exists at all. The empty stage normalizes to this.
	StageImmediate Stage = "immediate"

	// StagePreInit checks run after minimal host bootstrap: the installation
	// root is known, but the host configuration is not loaded yet. The
	// file-tree walk happens here.
	StagePreInit Stage = "pre-init"

	// StageConfigLoaded checks run once the host configuration has been read.
	StageConfigLoaded Stage = "config-loaded"

	// StagePostInit checks run only after the host application has fully
	// initialized.
	StagePostInit Stage = "post-init"
)

// StageOrder defines the canonical firing order of bootstrap stages.
//
//nolint:gochecknoglobals // Canonical ordering must be accessible across packages
var StageOrder = []Stage{
	StageImmediate,
	StagePreInit,
	StageConfigLoaded,
	StagePostInit,
}

// StageHandler is a listener attached to a bootstrap stage. The host fires it
// with the target context available at that stage.
type StageHandler func(target *Target) error

// Normalize maps the empty stage to StageImmediate. A check type declaring no
// stage marker runs immediately, with no host hook needed.
func (s Stage) Normalize() Stage {
	if s == "" {
		return StageImmediate
	}

	return s
}

// Validate checks if the stage is valid.
func (s Stage) Validate() error {
	switch s.Normalize() {
	case StageImmediate, StagePreInit, StageConfigLoaded, StagePostInit:
		return nil
	default:
		return fmt.Errorf("invalid stage: %s", s)
	}
}

// String returns the string representation of the stage.
func (s Stage) String() string {
	return string(s)
}
