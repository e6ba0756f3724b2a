package delta

import (
	"strings"

	"github.com/goccy/go-json"
)

// Transpile converts a delta document into Typst markup. It never fails:
// unknown attributes are ignored for forward compatibility and malformed
// attribute combinations fall back to defaults (a list item without an
// indent sits at depth 0). Each call owns its own state, so independent
// transpilations may run concurrently.
func Transpile(doc *Document) string {
	var t transpiler
	for _, op := range doc.Ops {
		t.write(op)
	}
	t.flush()
	return strings.TrimRight(t.out.String(), " \t\n")
}

type blockKind int

const (
	blockNone blockKind = iota
	blockParagraph
	blockListItem
)

// transpiler holds the state of one pass: the output accumulator, the text
// of the line currently being built, and the kind of the last emitted
// block, which decides how the next block is separated from it.
type transpiler struct {
	out  strings.Builder
	line strings.Builder
	last blockKind
}

func (t *transpiler) write(op Op) {
	segments := strings.Split(op.Insert, "\n")
	for i, segment := range segments {
		if segment != "" {
			t.line.WriteString(applyInline(segment, op.Attributes))
		}
		if i == len(segments)-1 {
			continue
		}
		// Each newline closes the current line: a list attribute turns it
		// into a list item, anything else into a paragraph.
		if marker, depth, ok := listAttr(op.Attributes); ok {
			t.emit(blockListItem, strings.Repeat("  ", depth)+marker+" "+t.takeLine())
		} else {
			t.paragraph(t.takeLine())
		}
	}
}

// flush emits any text left in the line buffer as a final paragraph.
func (t *transpiler) flush() {
	if t.line.Len() > 0 {
		t.paragraph(t.takeLine())
	}
}

func (t *transpiler) takeLine() string {
	line := t.line.String()
	t.line.Reset()
	return line
}

func (t *transpiler) paragraph(text string) {
	// Consecutive newlines collapse: paragraphs are blank-line separated
	// already, so an empty line adds nothing.
	if text == "" {
		return
	}
	t.emit(blockParagraph, text)
}

func (t *transpiler) emit(kind blockKind, text string) {
	switch {
	case t.last == blockNone:
	case kind == blockListItem:
		// List items sit directly under the preceding block; the marker
		// prefix alone scopes the list.
		t.out.WriteString("\n")
	default:
		// A paragraph needs a blank line, which also closes any open list.
		t.out.WriteString("\n\n")
	}
	t.out.WriteString(text)
	t.last = kind
}

// applyInline wraps text in markers for each active boolean attribute. The
// nesting order is fixed (bold outermost, then italic, underline, strike)
// so combined formatting is deterministic regardless of attribute order in
// the source JSON.
func applyInline(text string, attrs map[string]any) string {
	if len(attrs) == 0 {
		return text
	}
	if boolAttr(attrs, "strike") {
		text = "#strike[" + text + "]"
	}
	if boolAttr(attrs, "underline") {
		text = "#underline[" + text + "]"
	}
	if boolAttr(attrs, "italic") {
		text = "_" + text + "_"
	}
	if boolAttr(attrs, "bold") {
		text = "*" + text + "*"
	}
	return text
}

// listAttr extracts the list marker and nesting depth from an op's
// attributes. Unknown list kinds report no list at all, which demotes the
// line to a plain paragraph.
func listAttr(attrs map[string]any) (marker string, depth int, ok bool) {
	kind, _ := attrs["list"].(string)
	switch kind {
	case "bullet":
		marker = "-"
	case "ordered":
		marker = "+"
	default:
		return "", 0, false
	}
	return marker, intAttr(attrs, "indent"), true
}

func boolAttr(attrs map[string]any, name string) bool {
	b, _ := attrs[name].(bool)
	return b
}

// intAttr reads a non-negative integer attribute, tolerating the numeric
// types different decoders produce.
func intAttr(attrs map[string]any, name string) int {
	var n int
	switch v := attrs[name].(type) {
	case float64:
		n = int(v)
	case int:
		n = v
	case int64:
		n = int(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n = int(i)
		}
	}
	if n < 0 {
		return 0
	}
	return n
}
