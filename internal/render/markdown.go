package render

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdd-stack/skilldoc/internal/document"
)

// Markdown renders the canonical markdown form of a document. Parsing the
// output yields a structurally identical document, so this doubles as a
// formatter.
func Markdown(doc *document.Document) string {
	var b strings.Builder

	if doc.Frontmatter != nil {
		b.WriteString("---\n")
		// yaml.Marshal writes struct fields in declaration order, so the
		// frontmatter block is stable across runs.
		out, err := yaml.Marshal(doc.Frontmatter)
		if err == nil {
			b.Write(out)
		}
		b.WriteString("---\n\n")
	}

	b.WriteString(markdownBody(doc))
	return b.String()
}

// markdownBody renders everything after the frontmatter. The HTML and
// terminal renderers feed this to their markdown backends.
func markdownBody(doc *document.Document) string {
	var b strings.Builder

	writeBlocks(&b, doc.Preamble)
	for i := range doc.Sections {
		s := &doc.Sections[i]
		b.WriteString(strings.Repeat("#", s.Level))
		b.WriteString(" ")
		b.WriteString(s.Title)
		b.WriteString("\n\n")
		writeBlocks(&b, s.Blocks)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeBlocks(b *strings.Builder, blocks []document.Block) {
	for _, blk := range blocks {
		switch v := blk.(type) {
		case *document.Paragraph:
			b.WriteString(v.Text)
			b.WriteString("\n\n")
		case *document.List:
			for i, item := range v.Items {
				if v.Ordered {
					fmt.Fprintf(b, "%d. %s\n", i+1, item)
				} else {
					fmt.Fprintf(b, "- %s\n", item)
				}
			}
			b.WriteString("\n")
		case *document.Table:
			writeTable(b, v)
			b.WriteString("\n")
		case *document.CodeBlock:
			b.WriteString("```")
			b.WriteString(v.Lang)
			b.WriteString("\n")
			if v.Text != "" {
				b.WriteString(v.Text)
				b.WriteString("\n")
			}
			b.WriteString("```\n\n")
		}
	}
}

func writeTable(b *strings.Builder, t *document.Table) {
	writeRow(b, t.Header)
	sep := make([]string, len(t.Header))
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(b, sep)
	for _, row := range t.Rows {
		writeRow(b, row)
	}
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(c)
		b.WriteString(" |")
	}
	b.WriteString("\n")
}
