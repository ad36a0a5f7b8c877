package listchecks

import (
	"fmt"

	"github.com/spf13/cobra"

	listcheckspkg "appdoctor/pkg/listchecks"
	"appdoctor/pkg/util/iostreams"
)

const (
	cmdName  = "list-checks"
	cmdShort = "List the registered diagnostic checks without running them"
)

const cmdExample = `
  # List built-in checks
  appdoctor list-checks

  # Include configuration-defined checks, as CSV
  appdoctor list-checks --config ./checks.yaml --format csv

  # Names only
  appdoctor list-checks --fields name
`

// AddCommand adds the list-checks command to the root command.
func AddCommand(root *cobra.Command) {
	streams := iostreams.NewIOStreams(root.InOrStdin(), root.OutOrStdout(), root.ErrOrStderr())
	command := listcheckspkg.NewCommand(streams)

	cmd := &cobra.Command{
		Use:          cmdName,
		Short:        cmdShort,
		Example:      cmdExample,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
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
