package cmd

import (
	"context"

	"github.com/spf13/pflag"
)

// Command represents a standard command with lifecycle methods.
//
// All commands implement this interface to ensure consistent behavior across
// the CLI. The interface enforces a three-phase execution:
//  1. Complete: populate derived fields and perform pre-validation setup,
//     e.g. parsing the --fields selection or merging a --config source
//  2. Validate: check that all required fields are valid, e.g. that checks
//     were named or --all was passed
//  3. Run: execute the command logic
//
// Commands also implement AddFlags to register their flags with a FlagSet,
// enabling testability and decoupling from Cobra.
type Command interface {
	// Complete populates derived fields and performs pre-validation setup.
	// This is called after flags are parsed but before validation.
	Complete() error

	// Validate checks that all required fields are valid.
	// This is called after Complete and before Run.
	Validate() error

	// Run executes the command logic.
	// This is called after Complete and Validate have succeeded.
	Run(ctx context.Context) error

	// AddFlags registers command-specific flags with the provided FlagSet.
	AddFlags(fs *pflag.FlagSet)
}
