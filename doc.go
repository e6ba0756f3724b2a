// Package memoforge validates structured memorandum input and renders it
// into official-memorandum documents. It takes a library-first approach: the
// validation and transpilation pieces are plain packages embeddable in any
// Go application, with the CLI as a thin layer on top.
//
// The core pieces are:
//
//   - [github.com/memoforge/memoforge/schema] checks deserialized JSON
//     objects against declarative rule lists and reports every violation.
//   - [github.com/memoforge/memoforge/delta] transpiles Quill Delta
//     rich-text documents into Typst markup.
//   - [github.com/memoforge/memoforge/memo] holds the official memorandum
//     schema, defaults, and document assembly.
//   - [Pipeline] wires the stages together and hands the assembled document
//     to a [Compiler] such as [github.com/memoforge/memoforge/typst.CLI].
//
// # Quick Start
//
//	pipeline, _ := memoforge.NewPipeline(memoforge.PipelineOptions{
//	    Compiler: typst.NewCLI(""),
//	})
//	pdf, err := pipeline.Render(ctx, input, memoforge.FormatPDF)
package memoforge
