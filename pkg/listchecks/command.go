// Package listchecks implements the list-checks command: enumerate the
// registered checks, including configuration-defined ones, without running
// anything.
package listchecks

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"appdoctor/pkg/checks"
	"appdoctor/pkg/cmd"
	"appdoctor/pkg/doctor/check"
	"appdoctor/pkg/printer"
	csvprinter "appdoctor/pkg/printer/csv"
	jsonprinter "appdoctor/pkg/printer/json"
	"appdoctor/pkg/printer/table"
	yamlprinter "appdoctor/pkg/printer/yaml"
	"appdoctor/pkg/util/iostreams"
)

// DefaultFields is the default field subset for check listings.
const DefaultFields = "name,doc"

// Row is one check listing entry.
type Row struct {
	Name string `json:"name" yaml:"name"`
	Doc  string `json:"doc"  yaml:"doc"`
}

// Verify Command implements cmd.Command at compile time.
var _ cmd.Command = (*Command)(nil)

// Command contains the list-checks command configuration.
type Command struct {
	// IO provides structured access to stdin, stdout, stderr
	IO iostreams.Interface

	// OutputFormat specifies the output format (table, json, yaml, csv)
	OutputFormat printer.Format

	// FieldSpec is the raw comma-separated --fields value
	FieldSpec string

	// ConfigPath is an optional check configuration source
	ConfigPath string

	fields   []string
	registry *check.Registry
}

// NewCommand creates a list-checks command with the built-in checks
// registered.
func NewCommand(streams iostreams.Interface) *Command {
	registry := check.NewRegistry()
	checks.RegisterBuiltins(registry)

	return &Command{
		IO:           streams,
		OutputFormat: printer.Table,
		FieldSpec:    DefaultFields,
		registry:     registry,
	}
}

// Registry exposes the command's check catalog.
func (c *Command) Registry() *check.Registry {
	return c.registry
}

// AddFlags registers command-specific flags with the provided FlagSet.
func (c *Command) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", "", "Check configuration source (.yaml, .yml, or .toml)")
	fs.StringVar(&c.FieldSpec, "fields", DefaultFields, "Comma-separated field subset to output")
	fs.Var(&c.OutputFormat, "format", "Output format (table, json, yaml, csv)")
}

// Complete populates derived fields and merges the optional check
// configuration into the registry.
func (c *Command) Complete() error {
	c.fields = printer.ParseFields(c.FieldSpec)
	if len(c.fields) == 0 {
		return fmt.Errorf("invalid field selection %q", c.FieldSpec)
	}

	if c.ConfigPath != "" {
		if err := c.registry.LoadConfig(c.ConfigPath); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks that the invocation is well-formed.
func (c *Command) Validate() error {
	switch c.OutputFormat {
	case printer.Table, printer.JSON, printer.YAML, printer.CSV:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s", c.OutputFormat)
	}
}

// Run enumerates the registered checks in registration order.
func (c *Command) Run(_ context.Context) error {
	descriptors := c.registry.Descriptors()

	rows := make([]Row, 0, len(descriptors))
	for _, d := range descriptors {
		rows = append(rows, Row{Name: d.Name, Doc: d.Doc})
	}

	switch c.OutputFormat {
	case printer.Table:
		return c.renderTable(rows)
	case printer.JSON:
		projected, err := printer.Project(rows, c.fields)
		if err != nil {
			return err
		}

		return jsonprinter.NewRenderer[[]map[string]any](
			jsonprinter.WithWriter[[]map[string]any](c.IO.Out()),
		).Render(projected)
	case printer.YAML:
		projected, err := printer.Project(rows, c.fields)
		if err != nil {
			return err
		}

		return yamlprinter.NewRenderer[[]map[string]any](
			yamlprinter.WithWriter[[]map[string]any](c.IO.Out()),
		).Render(projected)
	case printer.CSV:
		renderer := csvprinter.NewRenderer[Row](
			csvprinter.WithWriter[Row](c.IO.Out()),
			csvprinter.WithHeaders[Row](c.fields...),
		)
		if err := renderer.AppendAll(rows); err != nil {
			return err
		}

		return renderer.Render()
	default:
		return fmt.Errorf("unsupported output format: %s", c.OutputFormat)
	}
}

// renderTable lists checks with one jq-extracted column per requested field.
func (c *Command) renderTable(rows []Row) error {
	opts := []table.Option[Row]{
		table.WithWriter[Row](c.IO.Out()),
	}

	headers := make([]string, 0, len(c.fields))
	for _, f := range c.fields {
		headers = append(headers, strings.ToUpper(f))
		opts = append(opts, table.WithFormatter[Row](strings.ToUpper(f),
			table.JQFormatter("."+strings.ToLower(f))))
	}

	opts = append(opts, table.WithHeaders[Row](headers...))

	renderer := table.NewRenderer[Row](opts...)

	if err := renderer.AppendAll(rows); err != nil {
		return err
	}

	return renderer.Render()
}
