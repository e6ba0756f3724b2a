package memo

import (
	"fmt"

	"github.com/memoforge/memoforge/delta"
	"github.com/memoforge/memoforge/schema"
)

// Memo is a typed view of a validated official memorandum input object.
type Memo struct {
	MemoFor        []string
	FromBlock      []string
	Subject        string
	References     []string
	SignatureBlock []string
	Body           Body
}

// Body carries the memo body in one of two shapes: pre-authored Typst
// markup passed through untouched, or a rich-text delta document that is
// transpiled on demand.
type Body struct {
	Format string
	Markup string
	Delta  *delta.Document
}

// FromMap builds a Memo from a deserialized input object. It assumes the
// object already passed Validate and had defaults applied; the only
// failures it reports are body data shapes the schema cannot see, such as
// embed inserts or change ops inside the delta array.
func FromMap(data map[string]any) (*Memo, error) {
	m := &Memo{
		MemoFor:        stringSlice(data[PropMemoFor]),
		FromBlock:      stringSlice(data[PropFromBlock]),
		References:     stringSlice(data[PropReferences]),
		SignatureBlock: stringSlice(data[PropSignatureBlock]),
	}
	m.Subject, _ = data[PropSubject].(string)

	body, _ := data[PropBody].(map[string]any)
	m.Body.Format, _ = body[PropBodyFormat].(string)
	switch v := body[PropBodyData].(type) {
	case string:
		m.Body.Markup = v
	case []any:
		doc, err := delta.FromValues(v)
		if err != nil {
			return nil, fmt.Errorf("invalid body data: %w", err)
		}
		m.Body.Delta = doc
	default:
		return nil, fmt.Errorf("body data must be a markup string or an ops array, got %s",
			schema.TypeOf(v))
	}
	return m, nil
}

// BodyMarkup returns the memo body as Typst markup, transpiling delta
// content as needed.
func (m *Memo) BodyMarkup() string {
	if m.Body.Delta != nil {
		return delta.Transpile(m.Body.Delta)
	}
	return m.Body.Markup
}

func stringSlice(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(arr))
	for _, item := range arr {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
