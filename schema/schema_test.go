package schema

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testSchema() *Schema {
	return &Schema{
		AllowedProperties:  []string{"name", "tags", "details"},
		RequiredProperties: []string{"name"},
		Properties: map[string][]Rule{
			"name": {
				TypeIs{Expected: TypeString},
				StringMinLength{Min: 1},
			},
			"tags": {
				TypeIs{Expected: TypeArray},
				ArrayMinLength{Min: 1},
				ArrayItemsAreType{Expected: TypeString},
			},
			"details": {
				TypeIs{Expected: TypeObject},
			},
		},
		Nested: map[string]*Schema{
			"details": {
				AllowedProperties:  []string{"kind"},
				RequiredProperties: []string{"kind"},
				Properties: map[string][]Rule{
					"kind": {
						TypeIs{Expected: TypeString},
						EnumOneOf{Values: []string{"basic", "full"}},
					},
				},
			},
		},
	}
}

func TestValidateCleanInput(t *testing.T) {
	s := testSchema()
	errs := s.Validate(map[string]any{
		"name":    "memo",
		"tags":    []any{"a", "b"},
		"details": map[string]any{"kind": "basic"},
	})
	require.Empty(t, errs)
}

func TestValidateUnknownProperty(t *testing.T) {
	s := testSchema()
	errs := s.Validate(map[string]any{
		"name": "memo",
		"foo":  1.0,
	})
	require.Len(t, errs, 1)
	require.Equal(t, "foo", errs[0].Path)
	require.Equal(t,
		"Unexpected property 'foo'. Allowed properties: name, tags, details",
		errs[0].Message)
}

func TestValidateMissingRequired(t *testing.T) {
	s := testSchema()
	errs := s.Validate(map[string]any{})
	require.Len(t, errs, 1)
	require.Equal(t, "Required property 'name' is missing", errs[0].Message)
}

func TestValidateErrorOrder(t *testing.T) {
	s := testSchema()
	// Unknown keys come first (sorted), then missing required, then rule
	// violations, then nested results.
	errs := s.Validate(map[string]any{
		"zzz":     true,
		"aaa":     true,
		"tags":    []any{},
		"details": map[string]any{"kind": "bogus"},
	})
	require.Len(t, errs, 5)
	require.Contains(t, errs[0].Message, "Unexpected property 'aaa'")
	require.Contains(t, errs[1].Message, "Unexpected property 'zzz'")
	require.Equal(t, "Required property 'name' is missing", errs[2].Message)
	require.Equal(t, "Property 'tags' must contain at least 1 item", errs[3].Message)
	require.Equal(t,
		"Property 'details.kind' must be one of: basic, full (got 'bogus')",
		errs[4].Message)
}

func TestValidateInapplicableRulesSkipped(t *testing.T) {
	s := testSchema()
	// Length and item rules skip non-array values; only TypeIs reports.
	errs := s.Validate(map[string]any{
		"name": "memo",
		"tags": "not-an-array",
	})
	require.Len(t, errs, 1)
	require.Equal(t, "Property 'tags' must be array (got string)", errs[0].Message)
}

func TestValidateNestedPaths(t *testing.T) {
	s := testSchema()
	errs := s.Validate(map[string]any{
		"name":    "memo",
		"details": map[string]any{"kind": "basic", "extra": 1.0},
	})
	require.Len(t, errs, 1)
	require.Equal(t, "details.extra", errs[0].Path)
	require.Equal(t,
		"Unexpected property 'extra'. Allowed properties: kind",
		errs[0].Message)
}

func TestValidateNestedSkippedForNonObjects(t *testing.T) {
	s := testSchema()
	// The TypeIs rule reports the mismatch; recursion does not run.
	errs := s.Validate(map[string]any{
		"name":    "memo",
		"details": "not-an-object",
	})
	require.Len(t, errs, 1)
	require.Equal(t, "Property 'details' must be object (got string)", errs[0].Message)
}

func TestValidateIsIdempotent(t *testing.T) {
	s := testSchema()
	input := map[string]any{
		"zzz":     true,
		"tags":    []any{1.0},
		"details": map[string]any{"kind": 5.0},
	}
	first := s.Validate(input)
	second := s.Validate(input)
	require.Equal(t, first, second)
}

func TestValidateDoesNotMutate(t *testing.T) {
	s := testSchema()
	input := map[string]any{"name": "memo", "unexpected": "x"}
	s.Validate(input)
	require.Len(t, input, 2)
	require.Equal(t, "memo", input["name"])
	require.Equal(t, "x", input["unexpected"])
}
