package table

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"appdoctor/pkg/util"
	"appdoctor/pkg/util/jq"
)

// Option is a functional option for configuring a Renderer.
type Option[T any] = util.Option[Renderer[T]]

// WithWriter sets the output writer for the table renderer.
func WithWriter[T any](w io.Writer) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.writer = w
	})
}

// WithHeaders sets the column headers for the table.
func WithHeaders[T any](headers ...string) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.headers = headers
	})
}

// WithFormatter adds a column-specific formatter function.
func WithFormatter[T any](columnName string, formatter ColumnFormatter) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		if r.formatters == nil {
			r.formatters = make(map[string]ColumnFormatter)
		}

		r.formatters[strings.ToUpper(columnName)] = formatter
	})
}

// WithTableOptions sets the underlying tablewriter options.
func WithTableOptions[T any](values ...tablewriter.Option) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.tableOptions = append(r.tableOptions, values...)
	})
}

// JQFormatter creates a ColumnFormatter that extracts the column value by
// running a jq query against the whole row.
func JQFormatter(query string) ColumnFormatter {
	return func(value any) any {
		result, err := jq.Query[any](value, query)
		if err != nil {
			return err.Error()
		}

		return result
	}
}

// ChainFormatters composes formatters into a pipeline; the output of each is
// the input of the next.
func ChainFormatters(formatters ...ColumnFormatter) ColumnFormatter {
	if len(formatters) == 1 {
		return formatters[0]
	}

	return func(value any) any {
		result := value
		for _, formatter := range formatters {
			result = formatter(result)
		}

		return result
	}
}
