// Package delta models Quill Delta rich-text documents and transpiles them
// into Typst markup. A delta document is an ordered list of insert
// operations, each carrying a text run and optional formatting attributes;
// Transpile converts one into the equivalent markup in a single pass.
package delta

import (
	"errors"
	"fmt"

	"github.com/goccy/go-json"
)

// Op is a single insert operation: a text run plus the formatting and
// structural attributes attached to it.
type Op struct {
	Insert     string         `json:"insert"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// Document is an ordered sequence of insert operations describing one
// rich-text document. It is constructed once from deserialized input and
// consumed once by Transpile.
type Document struct {
	Ops []Op `json:"ops"`
}

// ParseDocument decodes the delta wire shape. Both the canonical
// {"ops": [...]} envelope and a bare ops array are accepted.
func ParseDocument(data []byte) (*Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid delta JSON: %w", err)
	}
	switch v := raw.(type) {
	case []any:
		return FromValues(v)
	case map[string]any:
		ops, ok := v["ops"].([]any)
		if !ok {
			return nil, errors.New(`delta document has no "ops" array`)
		}
		return FromValues(ops)
	default:
		return nil, fmt.Errorf("delta document must be an object or an array, got %T", raw)
	}
}

// FromValues builds a Document from an already-deserialized ops array, the
// shape a memo body's data arrives in. Change ops (retain, delete) describe
// edits rather than documents, and embed inserts carry media rather than
// text; both are rejected here so that Transpile never has to fail.
func FromValues(values []any) (*Document, error) {
	ops := make([]Op, 0, len(values))
	for i, value := range values {
		obj, ok := value.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("op %d: expected an object, got %T", i, value)
		}
		if _, ok := obj["retain"]; ok {
			return nil, fmt.Errorf("op %d: retain ops are not supported in document parsing", i)
		}
		if _, ok := obj["delete"]; ok {
			return nil, fmt.Errorf("op %d: delete ops are not supported in document parsing", i)
		}
		insert, ok := obj["insert"]
		if !ok {
			return nil, fmt.Errorf("op %d: missing insert", i)
		}
		text, ok := insert.(string)
		if !ok {
			return nil, fmt.Errorf("op %d: embed inserts are not supported, got %T", i, insert)
		}
		var attrs map[string]any
		if a, ok := obj["attributes"].(map[string]any); ok {
			attrs = a
		}
		ops = append(ops, Op{Insert: text, Attributes: attrs})
	}
	return &Document{Ops: ops}, nil
}
