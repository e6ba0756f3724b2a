package memo

import (
	"fmt"
	"strings"
)

// templateImport pulls in the Typst package that lays out the official
// memorandum letterhead, heading blocks and signature block. Layout is the
// package's job; memoforge only supplies metadata and body markup.
const templateImport = `#import "@preview/tonguetoquill-usaf-memo:0.0.3": official-memorandum`

// Document assembles the complete Typst source for the memo: the template
// import, the official-memorandum call carrying the memo's metadata, and
// the body markup as the call's content block.
func (m *Memo) Document() string {
	var b strings.Builder
	b.WriteString(templateImport)
	b.WriteString("\n\n#official-memorandum(\n")
	writeStringList(&b, "memo-for", m.MemoFor)
	writeStringList(&b, "from-block", m.FromBlock)
	fmt.Fprintf(&b, "  subject: %s,\n", typstString(m.Subject))
	if m.References == nil {
		b.WriteString("  references: none,\n")
	} else {
		writeStringList(&b, "references", m.References)
	}
	writeStringList(&b, "signature-block", m.SignatureBlock)
	b.WriteString(")[\n")
	b.WriteString(m.BodyMarkup())
	b.WriteString("\n]\n")
	return b.String()
}

func writeStringList(b *strings.Builder, key string, values []string) {
	fmt.Fprintf(b, "  %s: (", key)
	for i, v := range values {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(typstString(v))
	}
	if len(values) == 1 {
		// A single-element Typst array needs the trailing comma to stay an
		// array rather than a parenthesized value.
		b.WriteString(",")
	}
	b.WriteString("),\n")
}

// typstString renders s as a Typst string literal.
func typstString(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}
