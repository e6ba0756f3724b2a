package memoforge

import "context"

// Format is an output format for compiled documents.
type Format string

const (
	FormatSVG Format = "svg"
	FormatPDF Format = "pdf"
)

// IsValid indicates whether this is a known output format.
func (f Format) IsValid() bool {
	return f == FormatSVG || f == FormatPDF
}

// Compiler renders a complete Typst document into output bytes. The
// compiler owns fonts, template packages and page layout; memoforge only
// hands it document source. Implementations must be safe for concurrent
// use.
type Compiler interface {
	Compile(ctx context.Context, document string, format Format) ([]byte, error)
}
