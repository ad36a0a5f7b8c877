// Package csv renders rows as delimited text in the same generic renderer
// style as the table, JSON, and YAML printers. The standard library encoder
// does the quoting; field extraction mirrors the table renderer.
package csv

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"

	"appdoctor/pkg/util"
)

// Renderer renders rows of T as CSV, one record per row, with a header row.
type Renderer[T any] struct {
	writer  io.Writer
	headers []string
	rows    [][]string
}

// Option is a functional option for configuring a Renderer.
type Option[T any] = util.Option[Renderer[T]]

// NewRenderer creates a new CSV renderer with the given options.
func NewRenderer[T any](opts ...Option[T]) *Renderer[T] {
	r := &Renderer[T]{
		writer: os.Stdout,
	}

	for _, opt := range opts {
		opt.ApplyTo(r)
	}

	return r
}

// WithWriter sets the output writer for the CSV renderer.
func WithWriter[T any](w io.Writer) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.writer = w
	})
}

// WithHeaders sets the column headers; values are extracted from rows by
// header name.
func WithHeaders[T any](headers ...string) Option[T] {
	return util.FunctionalOption[Renderer[T]](func(r *Renderer[T]) {
		r.headers = headers
	})
}

// Append buffers a single row.
func (r *Renderer[T]) Append(value T) error {
	var data map[string]any
	if err := mapstructure.Decode(value, &data); err != nil {
		return fmt.Errorf("failed to decode value to map: %w", err)
	}

	row := make([]string, 0, len(r.headers))

	for _, header := range r.headers {
		val, ok := lookupColumn(data, header)
		if !ok {
			return fmt.Errorf("column %q: field not found", header)
		}

		row = append(row, fmt.Sprintf("%v", val))
	}

	r.rows = append(r.rows, row)

	return nil
}

// AppendAll buffers multiple rows in a single operation.
func (r *Renderer[T]) AppendAll(rows []T) error {
	for _, value := range rows {
		if err := r.Append(value); err != nil {
			return err
		}
	}

	return nil
}

// Render writes the header row followed by all buffered rows.
func (r *Renderer[T]) Render() error {
	if len(r.headers) == 0 {
		return errors.New("csv renderer requires headers")
	}

	w := csv.NewWriter(r.writer)

	header := make([]string, 0, len(r.headers))
	for _, h := range r.headers {
		header = append(header, strings.ToLower(h))
	}

	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	if err := w.WriteAll(r.rows); err != nil {
		return fmt.Errorf("failed to write CSV rows: %w", err)
	}

	w.Flush()

	return w.Error()
}

func lookupColumn(data map[string]any, columnName string) (any, bool) {
	if val, ok := data[columnName]; ok {
		return val, true
	}

	lower := strings.ToLower(columnName)
	for key, val := range data {
		if strings.ToLower(key) == lower {
			return val, true
		}
	}

	return nil, false
}
