// Package printer provides the output contract shared by the rendering
// formats: a Format flag value and field-subset projection over record
// structs.
package printer

import "fmt"

// Format specifies the output format for printing results.
type Format string

const (
	// Table specifies tabular output.
	Table Format = "table"
	// JSON specifies structured-record list output.
	JSON Format = "json"
	// YAML specifies human-readable serialized output.
	YAML Format = "yaml"
	// CSV specifies delimited-text output.
	CSV Format = "csv"
)

func (f *Format) String() string {
	return string(*f)
}

// Set implements the pflag.Value interface for Format.
func (f *Format) Set(v string) error {
	switch v {
	case string(Table), string(JSON), string(YAML), string(CSV):
		*f = Format(v)

		return nil
	default:
		return fmt.Errorf("invalid format: %s (must be '%s', '%s', '%s', or '%s')", v, Table, JSON, YAML, CSV)
	}
}

// Type returns the type name for the flag value.
func (f *Format) Type() string {
	return "Format"
}
