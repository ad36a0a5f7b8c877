package diagnose

import (
	"errors"
	"fmt"

	"github.com/fatih/color"

	"appdoctor/pkg/doctor/check"
	"appdoctor/pkg/printer"
	"appdoctor/pkg/util/iostreams"
)

//nolint:gochecknoglobals
var (
	// Status colorization for table output.
	statusSuccess = color.New(color.FgGreen).Sprint("success")
	statusWarning = color.New(color.FgYellow).Sprint("warning")
	statusError   = color.New(color.FgRed).Sprint("error")
	statusSkipped = color.New(color.FgCyan).Sprint("skipped")
)

// DefaultFields is the default field subset for diagnose output.
const DefaultFields = "name,status,message"

// SharedOptions contains options common to the diagnose and list-checks
// commands.
type SharedOptions struct {
	// IO provides structured access to stdin, stdout, stderr
	IO iostreams.Interface

	// OutputFormat specifies the output format (table, json, yaml, csv)
	OutputFormat printer.Format

	// FieldSpec is the raw comma-separated --fields value
	FieldSpec string

	// ConfigPath is an optional check configuration source
	ConfigPath string

	// Verbose enables progress messages (default: false, quiet by default)
	Verbose bool

	// fields is the parsed field subset (populated during Complete)
	fields []string
}

// NewSharedOptions creates SharedOptions with defaults over the given
// streams.
func NewSharedOptions(streams iostreams.Interface) *SharedOptions {
	return &SharedOptions{
		IO:           streams,
		OutputFormat: printer.Table,
		FieldSpec:    DefaultFields,
	}
}

// Complete parses derived fields and wraps IO according to verbosity.
func (o *SharedOptions) Complete() error {
	if !o.Verbose {
		o.IO = iostreams.NewQuietWrapper(o.IO)
	}

	o.fields = printer.ParseFields(o.FieldSpec)
	if len(o.fields) == 0 {
		return fmt.Errorf("invalid field selection %q", o.FieldSpec)
	}

	return nil
}

// Validate checks that all shared options are valid.
func (o *SharedOptions) Validate() error {
	if o.IO == nil {
		return errors.New("IO streams must be configured")
	}

	// Flag parsing already rejects invalid formats (Format is a
	// pflag.Value); re-check for programmatic construction.
	switch o.OutputFormat {
	case printer.Table, printer.JSON, printer.YAML, printer.CSV:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s", o.OutputFormat)
	}
}

// colorizeStatus maps a raw status value to its colorized table form.
func colorizeStatus(value any) any {
	s, ok := value.(string)
	if !ok {
		return value
	}

	switch check.Status(s) {
	case check.StatusSuccess:
		return statusSuccess
	case check.StatusWarning:
		return statusWarning
	case check.StatusError:
		return statusError
	case check.StatusSkipped:
		return statusSkipped
	default:
		return s
	}
}
