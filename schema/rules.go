package schema

import (
	"fmt"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

var (
	_ Rule = TypeIs{}
	_ Rule = ArrayMinLength{}
	_ Rule = ArrayItemsAreType{}
	_ Rule = StringMinLength{}
	_ Rule = NullableArray{}
	_ Rule = EnumOneOf{}
)

// Type identifies the JSON type of a deserialized value.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeNull    Type = "null"
	TypeArray   Type = "array"
	TypeObject  Type = "object"

	// TypeUnknown is reported for values that did not come from a JSON
	// decoder.
	TypeUnknown Type = "unknown"
)

// TypeOf reports the JSON type of a value produced by a JSON decoder.
func TypeOf(v any) Type {
	switch v.(type) {
	case nil:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBoolean
	case float64, float32, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, json.Number:
		return TypeNumber
	case []any:
		return TypeArray
	case map[string]any:
		return TypeObject
	default:
		return TypeUnknown
	}
}

// Rule is one atomic validation check applied to a single value. Apply
// returns every violation found at path, or nothing when the value passes.
// A rule that does not apply to the value's actual type (for example a
// string-length rule given an array) returns nothing rather than erroring:
// type mismatches are the job of a TypeIs rule in the same list. Rules
// never panic or abort.
type Rule interface {
	Apply(value any, path string) []Error
}

// TypeIs requires the value's JSON type to match Expected.
type TypeIs struct {
	Expected Type
}

func (r TypeIs) Apply(value any, path string) []Error {
	actual := TypeOf(value)
	if actual == r.Expected {
		return nil
	}
	return []Error{{
		Path:    path,
		Message: fmt.Sprintf("Property '%s' must be %s (got %s)", path, r.Expected, actual),
	}}
}

// ArrayMinLength requires an array value to carry at least Min items.
type ArrayMinLength struct {
	Min int
}

func (r ArrayMinLength) Apply(value any, path string) []Error {
	arr, ok := value.([]any)
	if !ok || len(arr) >= r.Min {
		return nil
	}
	noun := "items"
	if r.Min == 1 {
		noun = "item"
	}
	return []Error{{
		Path:    path,
		Message: fmt.Sprintf("Property '%s' must contain at least %d %s", path, r.Min, noun),
	}}
}

// ArrayItemsAreType requires every element of an array value to have the
// expected JSON type, reporting one violation per offending element.
type ArrayItemsAreType struct {
	Expected Type
}

func (r ArrayItemsAreType) Apply(value any, path string) []Error {
	arr, ok := value.([]any)
	if !ok {
		return nil
	}
	var errs []Error
	for i, item := range arr {
		if actual := TypeOf(item); actual != r.Expected {
			errs = append(errs, Error{
				Path: path,
				Message: fmt.Sprintf("All items in '%s' array must be %s (item %d is %s)",
					path, r.Expected, i, actual),
			})
		}
	}
	return errs
}

// StringMinLength requires a string value to be at least Min bytes long.
type StringMinLength struct {
	Min int
}

func (r StringMinLength) Apply(value any, path string) []Error {
	s, ok := value.(string)
	if !ok || len(s) >= r.Min {
		return nil
	}
	return []Error{{
		Path:    path,
		Message: fmt.Sprintf("Property '%s' cannot be empty (minLength: %d)", path, r.Min),
	}}
}

// NullableArray accepts exactly null or an array of any length and content.
type NullableArray struct{}

func (NullableArray) Apply(value any, path string) []Error {
	switch value.(type) {
	case nil, []any:
		return nil
	}
	return []Error{{
		Path:    path,
		Message: fmt.Sprintf("Property '%s' must be an array or null", path),
	}}
}

// EnumOneOf requires a string value to be a member of Values.
type EnumOneOf struct {
	Values []string
}

func (r EnumOneOf) Apply(value any, path string) []Error {
	s, ok := value.(string)
	if !ok || slices.Contains(r.Values, s) {
		return nil
	}
	return []Error{{
		Path: path,
		Message: fmt.Sprintf("Property '%s' must be one of: %s (got '%s')",
			path, strings.Join(r.Values, ", "), s),
	}}
}
