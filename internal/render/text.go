package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/sdd-stack/skilldoc/internal/document"
)

var linkPattern = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)

// Text renders a document as plain text with all markup stripped. Level 1
// and 2 headings are underlined; deeper headings stand alone. Code
// examples are indented verbatim, never reflowed.
func Text(doc *document.Document, opts Options) string {
	var b strings.Builder
	width := opts.width()

	writeTextBlocks(&b, doc.Preamble, width)
	for i := range doc.Sections {
		s := &doc.Sections[i]
		title := stripInline(s.Title)
		b.WriteString(title)
		b.WriteString("\n")
		switch s.Level {
		case 1:
			b.WriteString(strings.Repeat("=", len(title)))
			b.WriteString("\n")
		case 2:
			b.WriteString(strings.Repeat("-", len(title)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		writeTextBlocks(&b, s.Blocks, width)
	}

	return strings.TrimRight(b.String(), "\n") + "\n"
}

func writeTextBlocks(b *strings.Builder, blocks []document.Block, width int) {
	for _, blk := range blocks {
		switch v := blk.(type) {
		case *document.Paragraph:
			for _, line := range wrap(stripInline(v.Text), width) {
				b.WriteString(line)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		case *document.List:
			for i, item := range v.Items {
				if v.Ordered {
					fmt.Fprintf(b, "  %d. %s\n", i+1, stripInline(item))
				} else {
					fmt.Fprintf(b, "  - %s\n", stripInline(item))
				}
			}
			b.WriteString("\n")
		case *document.Table:
			writeTextTable(b, v)
			b.WriteString("\n")
		case *document.CodeBlock:
			for _, line := range strings.Split(v.Text, "\n") {
				b.WriteString("    ")
				b.WriteString(line)
				b.WriteString("\n")
			}
			b.WriteString("\n")
		}
	}
}

// writeTextTable pads cells so columns line up, with a dash rule under the
// header.
func writeTextTable(b *strings.Builder, t *document.Table) {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(stripInline(h))
	}
	for _, row := range t.Rows {
		for i, c := range row {
			if n := len(stripInline(c)); n > widths[i] {
				widths[i] = n
			}
		}
	}

	writeRule := func() {
		for i, w := range widths {
			if i > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat("-", w))
		}
		b.WriteString("\n")
	}
	writeCells := func(cells []string) {
		for i, c := range cells {
			if i > 0 {
				b.WriteString("  ")
			}
			text := stripInline(c)
			b.WriteString(text)
			if i < len(cells)-1 {
				b.WriteString(strings.Repeat(" ", widths[i]-len(text)))
			}
		}
		b.WriteString("\n")
	}

	writeCells(t.Header)
	writeRule()
	for _, row := range t.Rows {
		writeCells(row)
	}
}

// stripInline removes inline markdown markup: emphasis markers, code
// spans, and link targets.
func stripInline(s string) string {
	s = linkPattern.ReplaceAllString(s, "$1")
	s = strings.ReplaceAll(s, "**", "")
	s = strings.ReplaceAll(s, "`", "")
	s = strings.ReplaceAll(s, "*", "")
	return s
}

// wrap greedily wraps text at word boundaries.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
