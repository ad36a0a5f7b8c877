// Package jq provides a small typed wrapper around gojq for extracting values
// from arbitrary Go structures.
package jq

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/itchyny/gojq"
)

// convertValue converts a value to a JQ-compatible format. Maps pass through
// directly, slices are widened to []any, and everything else is normalized
// through a JSON round trip.
func convertValue(value any) (any, error) {
	if value == nil {
		return nil, nil
	}

	rv := reflect.ValueOf(value)

	if rv.Kind() == reflect.Map {
		return value, nil
	}

	if rv.Kind() == reflect.Slice {
		if _, isByteSlice := value.([]byte); !isByteSlice {
			slice := make([]any, rv.Len())
			for i := range rv.Len() {
				slice[i] = rv.Index(i).Interface()
			}

			return slice, nil
		}
		// For []byte, fall through to JSON marshal/unmarshal
	}

	var normalizedValue any

	jsonBytes, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal value: %w", err)
	}

	if err := json.Unmarshal(jsonBytes, &normalizedValue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal value: %w", err)
	}

	return normalizedValue, nil
}

// Query executes a JQ query against the provided value and returns the first
// result cast to type T. Returns an error if the result cannot be cast to T.
// When the query returns nil/null, returns the zero value of T.
func Query[T any](value any, jqQuery string) (T, error) {
	var zero T

	compiledQuery, err := gojq.Parse(jqQuery)
	if err != nil {
		return zero, fmt.Errorf("failed to parse jq query: %w", err)
	}

	normalizedValue, err := convertValue(value)
	if err != nil {
		return zero, err
	}

	iter := compiledQuery.Run(normalizedValue)

	result, ok := iter.Next()
	if !ok {
		return zero, nil
	}

	if err, isErr := result.(error); isErr {
		return zero, fmt.Errorf("jq query error: %w", err)
	}

	if result == nil {
		return zero, nil
	}

	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("query result type mismatch: expected %T, got %T (value: %v)",
			zero, result, result)
	}

	return typed, nil
}
