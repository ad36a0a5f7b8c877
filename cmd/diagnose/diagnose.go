package diagnose

import (
	"fmt"

	"github.com/spf13/cobra"

	diagnosepkg "appdoctor/pkg/diagnose"
	"appdoctor/pkg/util/iostreams"
)

const (
	cmdName  = "diagnose"
	cmdShort = "Run diagnostic checks against the host installation"
)

const cmdLong = `
Runs the named diagnostic checks (or every registered check with --all)
against the host application installation and prints one result row per
check.

Checks are executed at the bootstrap stage they declare: immediately, before
host initialization, after the host configuration is loaded, or after full
initialization. File checks additionally receive every matching file from a
single scan of the installation tree.

An individual check reporting status "error" is a diagnostic finding, not an
invocation failure; the command still exits successfully. Unknown check
names, a missing or malformed --config source, and an unreadable file tree
abort the invocation before or during execution.
`

const cmdExample = `
  # Run every registered check against the current directory
  appdoctor diagnose --all

  # Run two specific checks against an installation root
  appdoctor diagnose install.writable files.leftovers --root /srv/app

  # Show only findings, as JSON
  appdoctor diagnose --all --spotlight --format json

  # Extend and override checks from a configuration source
  appdoctor diagnose --all --config ./checks.yaml
`

// AddCommand adds the diagnose command to the root command.
func AddCommand(root *cobra.Command) {
	streams := iostreams.NewIOStreams(root.InOrStdin(), root.OutOrStdout(), root.ErrOrStderr())
	command := diagnosepkg.NewCommand(streams)

	cmd := &cobra.Command{
		Use:           cmdName + " [check ...]",
		Short:         cmdShort,
		Long:          cmdLong,
		Example:       cmdExample,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			command.Names = args

			if err := command.Complete(); err != nil {
				return fmt.Errorf("completing command: %w", err)
			}

			if err := command.Validate(); err != nil {
				return err
			}

			return command.Run(cmd.Context())
		},
	}

	command.AddFlags(cmd.Flags())

	root.AddCommand(cmd)
}
