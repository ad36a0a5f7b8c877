package diagnose

import (
	"fmt"
	"io"
	"strings"

	"appdoctor/pkg/doctor/result"
	"appdoctor/pkg/printer"
	csvprinter "appdoctor/pkg/printer/csv"
	jsonprinter "appdoctor/pkg/printer/json"
	"appdoctor/pkg/printer/table"
	yamlprinter "appdoctor/pkg/printer/yaml"
)

// RenderRecords writes the records to out in the requested format, reduced to
// the requested field subset.
func RenderRecords(out io.Writer, format printer.Format, fields []string, records []result.Record) error {
	switch format {
	case printer.Table:
		return renderTable(out, fields, records)
	case printer.JSON:
		rows, err := printer.Project(records, fields)
		if err != nil {
			return err
		}

		return jsonprinter.NewRenderer[[]map[string]any](
			jsonprinter.WithWriter[[]map[string]any](out),
		).Render(rows)
	case printer.YAML:
		rows, err := printer.Project(records, fields)
		if err != nil {
			return err
		}

		return yamlprinter.NewRenderer[[]map[string]any](
			yamlprinter.WithWriter[[]map[string]any](out),
		).Render(rows)
	case printer.CSV:
		renderer := csvprinter.NewRenderer[result.Record](
			csvprinter.WithWriter[result.Record](out),
			csvprinter.WithHeaders[result.Record](fields...),
		)
		if err := renderer.AppendAll(records); err != nil {
			return err
		}

		return renderer.Render()
	default:
		return fmt.Errorf("unsupported output format: %s", format)
	}
}

func renderTable(out io.Writer, fields []string, records []result.Record) error {
	headers := make([]string, 0, len(fields))
	for _, f := range fields {
		headers = append(headers, strings.ToUpper(f))
	}

	opts := []table.Option[result.Record]{
		table.WithWriter[result.Record](out),
		table.WithHeaders[result.Record](headers...),
	}

	for _, f := range fields {
		if strings.EqualFold(f, "status") {
			opts = append(opts, table.WithFormatter[result.Record]("STATUS", colorizeStatus))
		}
	}

	renderer := table.NewRenderer[result.Record](opts...)

	if err := renderer.AppendAll(records); err != nil {
		return err
	}

	return renderer.Render()
}
