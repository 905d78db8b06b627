// Package document parses methodology documents into a structural form.
//
// A document is an optional YAML frontmatter block followed by markdown
// content: headings, paragraphs, lists, tables, and fenced code examples.
// Parsing is pure and structural. Code examples are inert text; they are
// never executed or interpreted beyond their fence boundaries.
package document

// Document is the structural parse of a methodology document.
type Document struct {
	// Frontmatter is the optional YAML metadata block. Nil when absent.
	Frontmatter *Frontmatter

	// Preamble holds blocks appearing before the first heading.
	Preamble []Block

	// Sections is the ordered sequence of headed sections.
	Sections []Section
}

// Frontmatter is the YAML block delimited by --- lines at the top of a
// document, following the SKILL.md convention.
type Frontmatter struct {
	// Name is the document identifier (lowercase letters, numbers, hyphens).
	Name string `yaml:"name"`

	// Description explains what the document covers and when to read it.
	Description string `yaml:"description"`

	// Version is an optional semantic version.
	Version string `yaml:"version,omitempty"`
}

// Section is a heading plus the blocks that follow it, up to the next
// heading of any level.
type Section struct {
	// Level is the heading depth, 1 through 6.
	Level int

	// Title is the heading text with markers stripped.
	Title string

	// Line is the 1-based line the heading appears on.
	Line int

	// Blocks is the section body in document order.
	Blocks []Block
}

// Block is one structural element of a section body.
type Block interface {
	// Pos returns the 1-based line the block starts on.
	Pos() int

	blockNode()
}

// Paragraph is a run of prose lines joined into a single string.
type Paragraph struct {
	Text string
	Line int
}

// List is a flat bullet or numbered list.
type List struct {
	Items   []string
	Ordered bool
	Line    int
}

// Table is a pipe table. Every row has the same arity as Header; the
// parser rejects documents where that does not hold.
type Table struct {
	Header []string
	Rows   [][]string
	Line   int
}

// CodeBlock is a fenced code example. The text is carried verbatim and is
// never evaluated.
type CodeBlock struct {
	Lang      string
	Text      string
	StartLine int
	EndLine   int
}

func (p *Paragraph) Pos() int { return p.Line }
func (l *List) Pos() int      { return l.Line }
func (t *Table) Pos() int     { return t.Line }
func (c *CodeBlock) Pos() int { return c.StartLine }

func (*Paragraph) blockNode() {}
func (*List) blockNode()      {}
func (*Table) blockNode()     {}
func (*CodeBlock) blockNode() {}

// Title returns the document's display title: the frontmatter name when
// present, otherwise the first level-1 heading, otherwise empty.
func (d *Document) Title() string {
	if d.Frontmatter != nil && d.Frontmatter.Name != "" {
		return d.Frontmatter.Name
	}
	for i := range d.Sections {
		if d.Sections[i].Level == 1 {
			return d.Sections[i].Title
		}
	}
	return ""
}

// Description returns the frontmatter description, or empty when absent.
func (d *Document) Description() string {
	if d.Frontmatter == nil {
		return ""
	}
	return d.Frontmatter.Description
}

// FindSection returns the first section with the given title, or nil.
func (d *Document) FindSection(title string) *Section {
	for i := range d.Sections {
		if d.Sections[i].Title == title {
			return &d.Sections[i]
		}
	}
	return nil
}

// CodeBlocks returns all fenced code examples in document order.
func (d *Document) CodeBlocks() []*CodeBlock {
	var blocks []*CodeBlock
	collect := func(bs []Block) {
		for _, b := range bs {
			if cb, ok := b.(*CodeBlock); ok {
				blocks = append(blocks, cb)
			}
		}
	}
	collect(d.Preamble)
	for i := range d.Sections {
		collect(d.Sections[i].Blocks)
	}
	return blocks
}

// Tables returns all tables in document order.
func (d *Document) Tables() []*Table {
	var tables []*Table
	collect := func(bs []Block) {
		for _, b := range bs {
			if t, ok := b.(*Table); ok {
				tables = append(tables, t)
			}
		}
	}
	collect(d.Preamble)
	for i := range d.Sections {
		collect(d.Sections[i].Blocks)
	}
	return tables
}
