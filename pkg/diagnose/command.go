// Package diagnose implements the diagnose command: resolve the requested
// checks, bind them to the host bootstrap, run the bootstrap, and render the
// collected results.
package diagnose

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/pflag"

	"appdoctor/pkg/checks"
	"appdoctor/pkg/cmd"
	"appdoctor/pkg/doctor/check"
	"appdoctor/pkg/doctor/result"
	"appdoctor/pkg/doctor/scheduler"
	"appdoctor/pkg/host"
	"appdoctor/pkg/util/iostreams"
)

// Verify Command implements cmd.Command at compile time.
var _ cmd.Command = (*Command)(nil)

// Command contains the diagnose command configuration.
type Command struct {
	*SharedOptions

	// Names are the requested check names (positional arguments)
	Names []string

	// All runs every registered check instead of named ones
	All bool

	// Spotlight filters the output to checks that did not succeed
	Spotlight bool

	// Root is the host application installation root
	Root string

	// registry is the check catalog for this invocation. Constructed fresh
	// per command to keep invocations isolated.
	registry *check.Registry
}

// NewCommand creates a diagnose command with the built-in checks registered.
func NewCommand(streams iostreams.Interface) *Command {
	registry := check.NewRegistry()
	checks.RegisterBuiltins(registry)

	return &Command{
		SharedOptions: NewSharedOptions(streams),
		Root:          ".",
		registry:      registry,
	}
}

// Registry exposes the command's check catalog.
func (c *Command) Registry() *check.Registry {
	return c.registry
}

// AddFlags registers command-specific flags with the provided FlagSet.
func (c *Command) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.All, "all", false, "Run every registered check")
	fs.BoolVar(&c.Spotlight, "spotlight", false, "Show only checks that did not succeed")
	fs.StringVar(&c.ConfigPath, "config", "", "Check configuration source (.yaml, .yml, or .toml)")
	fs.StringVar(&c.Root, "root", c.Root, "Host application installation root")
	fs.StringVar(&c.FieldSpec, "fields", DefaultFields, "Comma-separated field subset to output")
	fs.Var(&c.OutputFormat, "format", "Output format (table, json, yaml, csv)")
	fs.BoolVarP(&c.Verbose, "verbose", "v", false, "Enable progress output")
}

// Complete populates derived fields and merges the optional check
// configuration into the registry.
func (c *Command) Complete() error {
	if err := c.SharedOptions.Complete(); err != nil {
		return err
	}

	if c.ConfigPath != "" {
		if err := c.registry.LoadConfig(c.ConfigPath); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that the invocation is well-formed before anything runs.
func (c *Command) Validate() error {
	if err := c.SharedOptions.Validate(); err != nil {
		return err
	}

	if len(c.Names) == 0 && !c.All {
		return errors.New("no checks specified; name the checks to run or pass --all")
	}

	if len(c.Names) > 0 && c.All {
		return errors.New("--all cannot be combined with named checks")
	}

	return nil
}

// Run resolves, schedules, and executes the checks, then renders the
// results.
//
// Structural failures (unknown check, bad config, unreadable tree, host
// bootstrap abort) return an error and fail the invocation. Individual
// check failures do not: they appear as ordinary rows with status error.
func (c *Command) Run(ctx context.Context) error {
	var names []string
	if !c.All {
		names = c.Names
	}

	resolved, err := c.registry.Resolve(names...)
	if err != nil {
		return err
	}

	c.IO.Errorf("resolved %d check(s) against root %s", len(resolved), c.Root)

	h := host.New(c.Root)
	sched := scheduler.New(c.IO)

	if err := sched.Bind(ctx, resolved, h); err != nil {
		return err
	}

	bootErr := h.Boot(ctx)

	// A failed tree walk means every file check silently under-reported;
	// nothing trustworthy can be rendered.
	var fsErr *check.FileSystemError
	if errors.As(bootErr, &fsErr) {
		return bootErr
	}

	finishErr := sched.Finish()

	records := sched.Results()
	view := records

	if c.Spotlight {
		view = result.Spotlight(records)
		if result.AllClear(view, len(records)) {
			c.IO.Fprintf("all clear: %d check(s) succeeded", len(records))

			return c.invocationError(bootErr, finishErr)
		}
	}

	if err := RenderRecords(c.IO.Out(), c.OutputFormat, c.fields, view); err != nil {
		return err
	}

	return c.invocationError(bootErr, finishErr)
}

// invocationError folds a bootstrap abort and a skipped-checks report into
// the command error, after results have been rendered.
func (c *Command) invocationError(bootErr error, finishErr error) error {
	if bootErr != nil {
		if finishErr != nil {
			return fmt.Errorf("host bootstrap aborted (%s): %w", finishErr, bootErr)
		}

		return fmt.Errorf("host bootstrap aborted: %w", bootErr)
	}

	return finishErr
}
