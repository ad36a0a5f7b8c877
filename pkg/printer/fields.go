package printer

import (
	"fmt"
	"strings"

	mapstructure "github.com/go-viper/mapstructure/v2"
)

// Project reduces each record to the requested field subset, preserving
// record order. Field names are matched case-insensitively against the
// record's fields; an unknown field fails so typos in --fields surface
// immediately instead of rendering empty columns.
//
// The returned maps use the requested field spellings as keys, so downstream
// renderers emit exactly what the user asked for.
func Project[T any](records []T, fields []string) ([]map[string]any, error) {
	out := make([]map[string]any, 0, len(records))

	for _, record := range records {
		var data map[string]any
		if err := mapstructure.Decode(record, &data); err != nil {
			return nil, fmt.Errorf("decoding record: %w", err)
		}

		row := make(map[string]any, len(fields))

		for _, field := range fields {
			value, ok := lookupField(data, field)
			if !ok {
				return nil, fmt.Errorf("unknown field %q", field)
			}

			row[field] = value
		}

		out = append(out, row)
	}

	return out, nil
}

func lookupField(data map[string]any, field string) (any, bool) {
	if value, ok := data[field]; ok {
		return value, true
	}

	lower := strings.ToLower(field)
	for key, value := range data {
		if strings.ToLower(key) == lower {
			return value, true
		}
	}

	return nil, false
}

// ParseFields splits a comma-separated field list, trimming whitespace and
// dropping empties. Returns nil for a blank spec.
func ParseFields(spec string) []string {
	if strings.TrimSpace(spec) == "" {
		return nil
	}

	parts := strings.Split(spec, ",")
	fields := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}

	return fields
}
