// Package schema implements a rule-driven validator for deserialized JSON
// objects. A Schema declares which properties an object may and must carry
// and the ordered rule list applied to each; Validate walks an input object
// against the schema and accumulates every violation instead of stopping at
// the first. Validation never mutates its input and never panics on
// malformed-but-well-typed data: failures are returned as values.
package schema

import (
	"fmt"
	"sort"
	"strings"
)

// Error is one validation violation bound to the property path where it
// occurred. Paths into nested objects are dotted, e.g. "body.format".
type Error struct {
	Path    string
	Message string
}

func (e Error) String() string {
	return e.Message
}

// Schema describes one object level: the properties it may carry, the
// properties it must carry, and the rules applied to each. Schemas are
// static configuration; they are built once and read concurrently.
type Schema struct {
	// AllowedProperties lists every property permitted at this level, in
	// declaration order. Properties outside this list are violations.
	AllowedProperties []string

	// RequiredProperties lists properties that must be present.
	RequiredProperties []string

	// Properties maps a property name to the ordered rule list applied to
	// its value when present.
	Properties map[string][]Rule

	// Nested maps a property name to the schema applied recursively to its
	// value when that value is an object.
	Nested map[string]*Schema
}

// Validate checks data against the schema and returns every violation
// found. The order is deterministic: unknown properties first (sorted by
// key), then missing required properties in declaration order, then
// per-property rule results in declaration order, then nested object
// results with dotted path prefixes. An empty result means data is valid.
func (s *Schema) Validate(data map[string]any) []Error {
	return s.validate(data, "")
}

func (s *Schema) validate(data map[string]any, prefix string) []Error {
	var errs []Error

	keys := make([]string, 0, len(data))
	for key := range data {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		if !s.allows(key) {
			errs = append(errs, Error{
				Path: joinPath(prefix, key),
				Message: fmt.Sprintf("Unexpected property '%s'. Allowed properties: %s",
					key, strings.Join(s.AllowedProperties, ", ")),
			})
		}
	}

	for _, name := range s.RequiredProperties {
		if _, ok := data[name]; !ok {
			errs = append(errs, Error{
				Path:    joinPath(prefix, name),
				Message: fmt.Sprintf("Required property '%s' is missing", name),
			})
		}
	}

	for _, name := range s.AllowedProperties {
		rules := s.Properties[name]
		if len(rules) == 0 {
			continue
		}
		value, ok := data[name]
		if !ok {
			continue
		}
		path := joinPath(prefix, name)
		for _, rule := range rules {
			errs = append(errs, rule.Apply(value, path)...)
		}
	}

	for _, name := range s.AllowedProperties {
		nested := s.Nested[name]
		if nested == nil {
			continue
		}
		if obj, ok := data[name].(map[string]any); ok {
			errs = append(errs, nested.validate(obj, joinPath(prefix, name))...)
		}
	}

	return errs
}

func (s *Schema) allows(name string) bool {
	for _, allowed := range s.AllowedProperties {
		if allowed == name {
			return true
		}
	}
	return false
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
