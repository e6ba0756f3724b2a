package typst

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/memoforge/memoforge"
)

func TestNewCLIDefaultBinary(t *testing.T) {
	require.Equal(t, DefaultBinary, NewCLI("").binary)
	require.Equal(t, "/opt/typst/bin/typst", NewCLI("/opt/typst/bin/typst").binary)
}

func TestCompileRejectsUnknownFormat(t *testing.T) {
	c := NewCLI("")
	_, err := c.Compile(context.Background(), "= Test", memoforge.Format("docx"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `unsupported output format "docx"`)
}

func TestCompileMissingBinary(t *testing.T) {
	c := NewCLI("definitely-not-a-typst-binary")
	_, err := c.Compile(context.Background(), "= Test", memoforge.FormatSVG)
	require.Error(t, err)
	require.Contains(t, err.Error(), "typst compilation failed")
}

func TestCompileCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := NewCLI("definitely-not-a-typst-binary")
	_, err := c.Compile(ctx, "= Test", memoforge.FormatPDF)
	require.Error(t, err)
}
