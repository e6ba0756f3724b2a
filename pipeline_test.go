package memoforge

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memoforge/memoforge/schema"
)

type fakeCompiler struct {
	document string
	format   Format
	output   []byte
	err      error
}

func (c *fakeCompiler) Compile(_ context.Context, document string, format Format) ([]byte, error) {
	c.document = document
	c.format = format
	if c.err != nil {
		return nil, c.err
	}
	return c.output, nil
}

const minimalMemoJSON = `{
	"memo-for": ["CC"],
	"from-block": ["ORG"],
	"subject": "Test",
	"signature-block": ["A", "B"],
	"body": {"data": [{"insert": "Hi"}]}
}`

func TestNewPipelineRequiresCompiler(t *testing.T) {
	_, err := NewPipeline(PipelineOptions{})
	require.Error(t, err)
}

func TestRenderEndToEnd(t *testing.T) {
	compiler := &fakeCompiler{output: []byte("%PDF-fake")}
	pipeline, err := NewPipeline(PipelineOptions{Compiler: compiler})
	require.NoError(t, err)

	out, err := pipeline.Render(context.Background(), []byte(minimalMemoJSON), FormatPDF)
	require.NoError(t, err)
	require.Equal(t, []byte("%PDF-fake"), out)
	require.Equal(t, FormatPDF, compiler.format)
	require.Contains(t, compiler.document, "#official-memorandum(")
	require.Contains(t, compiler.document, `subject: "Test",`)
	require.Contains(t, compiler.document, ")[\nHi\n]")
}

func TestRenderRejectsUnknownFormat(t *testing.T) {
	pipeline, err := NewPipeline(PipelineOptions{Compiler: &fakeCompiler{}})
	require.NoError(t, err)

	_, err = pipeline.Render(context.Background(), []byte(minimalMemoJSON), Format("png"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `unsupported output format "png"`)
}

func TestRenderInvalidJSON(t *testing.T) {
	pipeline, err := NewPipeline(PipelineOptions{Compiler: &fakeCompiler{}})
	require.NoError(t, err)

	_, err = pipeline.Render(context.Background(), []byte(`{"memo-for":`), FormatSVG)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid input JSON")
}

func TestRenderNonObjectRoot(t *testing.T) {
	pipeline, err := NewPipeline(PipelineOptions{Compiler: &fakeCompiler{}})
	require.NoError(t, err)

	_, err = pipeline.Render(context.Background(), []byte(`["not", "an", "object"]`), FormatSVG)
	require.Error(t, err)
	require.Contains(t, err.Error(), "input must be a JSON object, got array")

	var failure *ValidationFailure
	require.False(t, errors.As(err, &failure),
		"a non-object root is a fatal error, not a validation report")
}

func TestRenderReportsAllValidationErrors(t *testing.T) {
	compiler := &fakeCompiler{}
	pipeline, err := NewPipeline(PipelineOptions{Compiler: compiler})
	require.NoError(t, err)

	input := []byte(`{
		"memo-for": [],
		"subject": "",
		"signature-block": ["ONLY ONE"],
		"body": {"data": [{"insert": "Hi"}]},
		"bogus": true
	}`)
	_, err = pipeline.Render(context.Background(), input, FormatSVG)
	require.Error(t, err)

	var failure *ValidationFailure
	require.ErrorAs(t, err, &failure)
	require.Len(t, failure.Errors, 5)
	require.Contains(t, failure.Errors[0].Message, "Unexpected property 'bogus'")
	require.Equal(t, "Required property 'from-block' is missing", failure.Errors[1].Message)
	require.Equal(t, "Property 'memo-for' must contain at least 1 item", failure.Errors[2].Message)
	require.Equal(t, "Property 'subject' cannot be empty (minLength: 1)", failure.Errors[3].Message)
	require.Equal(t, "Property 'signature-block' must contain at least 2 items", failure.Errors[4].Message)

	require.Empty(t, compiler.document, "compilation must not run on invalid input")
}

func TestRenderWrapsCompilerErrors(t *testing.T) {
	compiler := &fakeCompiler{err: errors.New("missing font")}
	pipeline, err := NewPipeline(PipelineOptions{Compiler: compiler})
	require.NoError(t, err)

	_, err = pipeline.Render(context.Background(), []byte(minimalMemoJSON), FormatSVG)
	require.Error(t, err)
	require.Contains(t, err.Error(), "document compilation failed")
	require.Contains(t, err.Error(), "missing font")
}

func TestValidationFailureMessage(t *testing.T) {
	single := &ValidationFailure{Errors: []schema.Error{
		{Path: "subject", Message: "Required property 'subject' is missing"},
	}}
	require.Equal(t,
		"input validation failed: Required property 'subject' is missing",
		single.Error())

	multiple := &ValidationFailure{Errors: []schema.Error{
		{Path: "subject", Message: "Required property 'subject' is missing"},
		{Path: "body", Message: "Required property 'body' is missing"},
	}}
	require.Equal(t,
		"input validation failed with 2 errors: "+
			"Required property 'subject' is missing; Required property 'body' is missing",
		multiple.Error())
}
