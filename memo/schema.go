// Package memo defines the official memorandum input shape: the schema it
// is validated against, the defaults filled in after validation, and the
// typed view handed to document assembly.
package memo

import (
	"github.com/memoforge/memoforge/schema"
)

// Property names of the official memorandum input object.
const (
	PropMemoFor        = "memo-for"
	PropFromBlock      = "from-block"
	PropSubject        = "subject"
	PropReferences     = "references"
	PropSignatureBlock = "signature-block"
	PropBody           = "body"

	PropBodyFormat = "format"
	PropBodyData   = "data"
)

// FormatPlaintext is the only body content format currently accepted. The
// field exists so new formats can be introduced without breaking inputs.
const FormatPlaintext = "plaintext"

// memoSchema declares the official memorandum shape: recipients, the
// from-block, a subject, optional references, a signature block of at least
// two lines (AFH 33-337), and a nested body object. References carry both
// NullableArray and ArrayItemsAreType so a non-null value also gets its
// items checked; the item rule skips null on its own.
var memoSchema = &schema.Schema{
	AllowedProperties: []string{
		PropMemoFor, PropFromBlock, PropSubject,
		PropReferences, PropSignatureBlock, PropBody,
	},
	RequiredProperties: []string{
		PropMemoFor, PropFromBlock, PropSubject,
		PropSignatureBlock, PropBody,
	},
	Properties: map[string][]schema.Rule{
		PropMemoFor: {
			schema.TypeIs{Expected: schema.TypeArray},
			schema.ArrayMinLength{Min: 1},
			schema.ArrayItemsAreType{Expected: schema.TypeString},
		},
		PropFromBlock: {
			schema.TypeIs{Expected: schema.TypeArray},
			schema.ArrayMinLength{Min: 1},
			schema.ArrayItemsAreType{Expected: schema.TypeString},
		},
		PropSubject: {
			schema.TypeIs{Expected: schema.TypeString},
			schema.StringMinLength{Min: 1},
		},
		PropReferences: {
			schema.NullableArray{},
			schema.ArrayItemsAreType{Expected: schema.TypeString},
		},
		PropSignatureBlock: {
			schema.TypeIs{Expected: schema.TypeArray},
			schema.ArrayMinLength{Min: 2},
			schema.ArrayItemsAreType{Expected: schema.TypeString},
		},
		PropBody: {
			schema.TypeIs{Expected: schema.TypeObject},
		},
	},
	Nested: map[string]*schema.Schema{
		PropBody: {
			AllowedProperties:  []string{PropBodyFormat, PropBodyData},
			RequiredProperties: []string{PropBodyData},
			Properties: map[string][]schema.Rule{
				PropBodyFormat: {
					schema.TypeIs{Expected: schema.TypeString},
					schema.EnumOneOf{Values: []string{FormatPlaintext}},
				},
				// data is either a markup string or a delta ops array; the
				// item rule checks the array shape and skips strings.
				PropBodyData: {
					schema.ArrayItemsAreType{Expected: schema.TypeObject},
				},
			},
		},
	},
}

// Validate checks a deserialized memo object against the official
// memorandum schema and returns every violation found, in a deterministic
// order. An empty result means the input is valid. The input is never
// modified.
func Validate(data map[string]any) []schema.Error {
	return memoSchema.Validate(data)
}

// ApplyDefaults returns a copy of data with schema defaults filled in:
// references defaults to null and body.format to plaintext. The input map
// and its nested body are never modified.
func ApplyDefaults(data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	if _, ok := out[PropReferences]; !ok {
		out[PropReferences] = nil
	}
	if body, ok := out[PropBody].(map[string]any); ok {
		if _, ok := body[PropBodyFormat]; !ok {
			filled := make(map[string]any, len(body)+1)
			for k, v := range body {
				filled[k] = v
			}
			filled[PropBodyFormat] = FormatPlaintext
			out[PropBody] = filled
		}
	}
	return out
}
