package memoforge

import (
	"context"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/memoforge/memoforge/memo"
	"github.com/memoforge/memoforge/schema"
	"github.com/memoforge/memoforge/slogger"
)

// PipelineOptions configures a Pipeline.
type PipelineOptions struct {
	Compiler Compiler
	Logger   slogger.Logger
}

// Pipeline runs the full render path: decode, validate, fill defaults,
// transpile the body, assemble the document, compile. Pipelines hold no
// per-call state and are safe for concurrent use.
type Pipeline struct {
	compiler Compiler
	logger   slogger.Logger
}

// NewPipeline creates a Pipeline with the given options. A compiler is
// required.
func NewPipeline(opts PipelineOptions) (*Pipeline, error) {
	if opts.Compiler == nil {
		return nil, fmt.Errorf("a compiler is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slogger.DefaultLogger
	}
	return &Pipeline{compiler: opts.Compiler, logger: logger}, nil
}

// Render turns raw memo input JSON into compiled document bytes. Validation
// failures are returned as a *ValidationFailure carrying the complete error
// list; input that is not a JSON object at all is a single fatal error
// instead.
func (p *Pipeline) Render(ctx context.Context, input []byte, format Format) ([]byte, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
	document, err := p.Prepare(input)
	if err != nil {
		return nil, err
	}
	out, err := p.compiler.Compile(ctx, document, format)
	if err != nil {
		return nil, fmt.Errorf("document compilation failed: %w", err)
	}
	p.logger.Info("rendered memo", "format", string(format), "bytes", len(out))
	return out, nil
}

// Prepare runs every stage short of compilation and returns the assembled
// Typst document source.
func (p *Pipeline) Prepare(input []byte) (string, error) {
	obj, err := decodeObject(input)
	if err != nil {
		return "", err
	}
	if errs := memo.Validate(obj); len(errs) > 0 {
		p.logger.Debug("memo validation failed", "errors", len(errs))
		return "", &ValidationFailure{Errors: errs}
	}
	m, err := memo.FromMap(memo.ApplyDefaults(obj))
	if err != nil {
		return "", err
	}
	document := m.Document()
	p.logger.Debug("assembled memo document",
		"subject", m.Subject, "bytes", len(document))
	return document, nil
}

// decodeObject deserializes input and requires a JSON object at the root.
// Anything else is a precondition violation surfaced as one fatal error,
// distinct from the per-property validation list.
func decodeObject(input []byte) (map[string]any, error) {
	var raw any
	if err := json.Unmarshal(input, &raw); err != nil {
		return nil, fmt.Errorf("invalid input JSON: %w", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("input must be a JSON object, got %s", schema.TypeOf(raw))
	}
	return obj, nil
}
