// Package typst compiles assembled Typst documents into SVG or PDF output
// by shelling out to the typst binary. The binary resolves fonts and
// template packages itself; memoforge only hands it complete document
// source.
package typst

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/memoforge/memoforge"
)

// DefaultBinary is the typst executable looked up on PATH when no explicit
// path is configured.
const DefaultBinary = "typst"

var _ memoforge.Compiler = (*CLI)(nil)

// CLI compiles documents with the typst command-line compiler. The zero
// value is not usable; construct with NewCLI. A CLI is stateless and safe
// for concurrent use.
type CLI struct {
	binary string
}

// NewCLI creates a compiler invoking the given typst binary, or the one on
// PATH when binary is empty.
func NewCLI(binary string) *CLI {
	if binary == "" {
		binary = DefaultBinary
	}
	return &CLI{binary: binary}
}

// Compile runs `typst compile` with the document on stdin and returns the
// produced bytes. Compiler diagnostics on stderr are folded into the
// returned error.
func (c *CLI) Compile(ctx context.Context, document string, format memoforge.Format) ([]byte, error) {
	if !format.IsValid() {
		return nil, fmt.Errorf("unsupported output format %q", format)
	}

	cmd := exec.CommandContext(ctx, c.binary, "compile", "--format", string(format), "-", "-")
	cmd.Stdin = strings.NewReader(document)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, fmt.Errorf("typst compilation failed: %s: %w", msg, err)
		}
		return nil, fmt.Errorf("typst compilation failed: %w", err)
	}
	return stdout.Bytes(), nil
}
