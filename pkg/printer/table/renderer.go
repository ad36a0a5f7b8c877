package table

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// ColumnFormatter is a function that transforms a value for display in a
// specific column.
type ColumnFormatter func(value any) any

// Renderer renders rows of T as a text table. Column values are extracted
// from the row by header name (via mapstructure), or the whole row is handed
// to the column formatter when every column has one.
type Renderer[T any] struct {
	writer       io.Writer
	headers      []string
	formatters   map[string]ColumnFormatter
	table        *tablewriter.Table
	tableOptions []tablewriter.Option
}

// NewRenderer creates a new table renderer with the given options.
func NewRenderer[T any](opts ...Option[T]) *Renderer[T] {
	r := &Renderer[T]{
		writer:     os.Stdout,
		formatters: make(map[string]ColumnFormatter),
	}

	for _, opt := range opts {
		opt.ApplyTo(r)
	}

	r.table = tablewriter.NewTable(r.writer)

	if len(r.tableOptions) == 0 {
		r.tableOptions = DefaultTableOptions
	}
	r.table = r.table.Options(r.tableOptions...)

	if len(r.headers) > 0 {
		r.table.Header(r.headers)
	}

	return r
}

// Append adds a single row to the table.
func (r *Renderer[T]) Append(value T) error {
	allHaveFormatters := true
	for _, header := range r.headers {
		if _, exists := r.formatters[strings.ToUpper(header)]; !exists {
			allHaveFormatters = false

			break
		}
	}

	var values []any
	var err error

	if allHaveFormatters {
		// When every column has a formatter, pass the whole row to each
		// one; this lets JQ formatters extract from complex objects.
		values = make([]any, len(r.headers))
		for i := range r.headers {
			values[i] = value
		}
	} else {
		values, err = r.extractValues(value)
		if err != nil {
			return err
		}
	}

	row := make([]any, 0, len(r.headers))

	for i := range r.headers {
		v := values[i]

		if formatter, exists := r.formatters[strings.ToUpper(r.headers[i])]; exists {
			v = formatter(v)
		}

		row = append(row, v)
	}

	if err := r.table.Append(row); err != nil {
		return fmt.Errorf("failed to append row to table: %w", err)
	}

	return nil
}

// AppendAll adds multiple rows to the table in a single operation.
func (r *Renderer[T]) AppendAll(rows []T) error {
	for _, value := range rows {
		if err := r.Append(value); err != nil {
			return err
		}
	}

	return nil
}

// Render outputs the table to the configured writer.
func (r *Renderer[T]) Render() error {
	if err := r.table.Render(); err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// Headers returns the currently configured table headers.
func (r *Renderer[T]) Headers() []string {
	return r.headers
}

// extractValues extracts column values from a struct or map row by header
// name (case-insensitive).
func (r *Renderer[T]) extractValues(value any) ([]any, error) {
	if value == nil {
		return nil, errors.New("cannot append nil value")
	}

	var data map[string]any
	if err := mapstructure.Decode(value, &data); err != nil {
		return nil, fmt.Errorf("failed to decode value to map: %w", err)
	}

	values := make([]any, 0, len(r.headers))

	for _, header := range r.headers {
		val, err := extractFieldValue(data, header)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", header, err)
		}

		values = append(values, val)
	}

	return values, nil
}

func extractFieldValue(data map[string]any, columnName string) (any, error) {
	if val, ok := data[columnName]; ok {
		return val, nil
	}

	lowerColumn := strings.ToLower(columnName)
	for key, val := range data {
		if strings.ToLower(key) == lowerColumn {
			return val, nil
		}
	}

	return nil, errors.New("field not found")
}

// DefaultMaxRowWidth is the maximum width for table row cells; longer
// messages wrap at word boundaries.
const DefaultMaxRowWidth = 100

// DefaultTableOptions provides a clean, minimal table style with left-aligned
// headers and no borders or separators between rows.
//
//nolint:gochecknoglobals // Shared default table options for consistency across commands
var DefaultTableOptions = []tablewriter.Option{
	tablewriter.WithHeaderAlignment(tw.AlignLeft),
	tablewriter.WithRowAutoWrap(tw.WrapNormal),
	tablewriter.WithRowMaxWidth(DefaultMaxRowWidth),
	tablewriter.WithRendition(tw.Rendition{
		Settings: tw.Settings{
			Separators: tw.Separators{
				BetweenColumns: tw.Off,
				BetweenRows:    tw.Off,
			},
			Lines: tw.Lines{
				ShowTop:        tw.On,
				ShowBottom:     tw.On,
				ShowHeaderLine: tw.On,
			},
		},
	}),
}
