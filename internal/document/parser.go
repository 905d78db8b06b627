package document

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/sdd-stack/skilldoc/internal/errors"
)

var orderedItemPattern = regexp.MustCompile(`^\d+\.\s+`)

// Load parses the document at the given path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.IOFileNotFound(path)
		}
		return nil, errors.IOReadError(path, err)
	}
	return ParseString(string(data))
}

// Parse parses a document from a reader.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.CodeIOReadError, "read document", err)
	}
	return ParseString(string(data))
}

// ParseString parses a document from a string. The parse is pure: the
// only failure modes are structural (unclosed fence, table arity,
// malformed frontmatter), reported with the offending line.
func ParseString(text string) (*Document, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	doc := &Document{}

	i := 0
	if fm, next, err := parseFrontmatter(lines); err != nil {
		return nil, err
	} else if fm != nil {
		doc.Frontmatter = fm
		i = next
	}

	p := &parser{doc: doc, section: -1}
	for ; i < len(lines); i++ {
		consumed, err := p.line(lines, i)
		if err != nil {
			return nil, err
		}
		i = consumed
	}
	p.flush()

	return doc, nil
}

// parseFrontmatter consumes a leading YAML block delimited by --- lines.
// Returns the parsed frontmatter (nil when absent) and the index of the
// first content line.
func parseFrontmatter(lines []string) (*Frontmatter, int, error) {
	if len(lines) < 2 || strings.TrimSpace(lines[0]) != "---" {
		return nil, 0, nil
	}
	end := -1
	for j := 1; j < len(lines); j++ {
		if strings.TrimSpace(lines[j]) == "---" {
			end = j
			break
		}
	}
	if end == -1 {
		return nil, 0, errors.FrontmatterError(fmt.Errorf("closing --- delimiter not found"))
	}

	var fm Frontmatter
	raw := strings.Join(lines[1:end], "\n")
	if err := yaml.Unmarshal([]byte(raw), &fm); err != nil {
		return nil, 0, errors.FrontmatterError(err)
	}
	return &fm, end + 1, nil
}

// parser accumulates blocks line by line. Paragraph and list lines are
// buffered until a boundary (blank line, heading, table, or fence) flushes
// them into the current section.
type parser struct {
	doc     *Document
	section int // index into doc.Sections, -1 while in the preamble

	para     []string
	paraLine int
	list     *List
}

// line consumes the line at index i and any lines belonging to the same
// block (fences and tables span multiple lines). It returns the index of
// the last line consumed.
func (p *parser) line(lines []string, i int) (int, error) {
	trimmed := strings.TrimSpace(lines[i])

	switch {
	case trimmed == "":
		p.flush()
		return i, nil

	case isFence(trimmed):
		p.flush()
		return p.codeBlock(lines, i)

	case headingLevel(trimmed) > 0:
		p.flush()
		lvl := headingLevel(trimmed)
		p.doc.Sections = append(p.doc.Sections, Section{
			Level: lvl,
			Title: strings.TrimSpace(trimmed[lvl:]),
			Line:  i + 1,
		})
		p.section = len(p.doc.Sections) - 1
		return i, nil

	case strings.HasPrefix(trimmed, "|"):
		p.flush()
		return p.table(lines, i)

	case listItemText(trimmed) != "":
		p.flushPara()
		ordered := orderedItemPattern.MatchString(trimmed)
		if p.list != nil && p.list.Ordered != ordered {
			p.flushList()
		}
		if p.list == nil {
			p.list = &List{Ordered: ordered, Line: i + 1}
		}
		p.list.Items = append(p.list.Items, listItemText(trimmed))
		return i, nil

	case p.list != nil && isIndented(lines[i]):
		// Continuation of the previous list item.
		last := len(p.list.Items) - 1
		p.list.Items[last] += " " + trimmed
		return i, nil

	default:
		p.flushList()
		if len(p.para) == 0 {
			p.paraLine = i + 1
		}
		p.para = append(p.para, trimmed)
		return i, nil
	}
}

// codeBlock consumes a fenced code example starting at index i. A fence
// left open at end of input is a parse error citing the opening line.
func (p *parser) codeBlock(lines []string, i int) (int, error) {
	open := strings.TrimSpace(lines[i])
	lang := strings.TrimSpace(strings.TrimLeft(open, "`"))
	start := i + 1

	var body []string
	for j := i + 1; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if isFence(t) && strings.TrimLeft(t, "`") == "" {
			p.add(&CodeBlock{
				Lang:      lang,
				Text:      strings.Join(body, "\n"),
				StartLine: start,
				EndLine:   j + 1,
			})
			return j, nil
		}
		body = append(body, lines[j])
	}
	return 0, errors.UnclosedFence(start)
}

// table consumes a contiguous run of pipe lines starting at index i.
func (p *parser) table(lines []string, i int) (int, error) {
	type rawRow struct {
		cells []string
		line  int
	}
	var rows []rawRow
	j := i
	for ; j < len(lines); j++ {
		t := strings.TrimSpace(lines[j])
		if !strings.HasPrefix(t, "|") {
			break
		}
		rows = append(rows, rawRow{cells: splitCells(t), line: j + 1})
	}

	header := rows[0]
	if len(rows) < 2 || !isSeparatorRow(rows[1].cells) {
		return 0, errors.ParseError(header.line, "table is missing its separator row")
	}
	if len(rows[1].cells) != len(header.cells) {
		return 0, errors.ParseError(rows[1].line,
			fmt.Sprintf("table separator has %d cells, header has %d", len(rows[1].cells), len(header.cells)))
	}

	tbl := &Table{Header: header.cells, Line: header.line}
	for idx, row := range rows[2:] {
		if len(row.cells) != len(header.cells) {
			return 0, errors.TableArityMismatch(row.line, idx+1, len(header.cells), len(row.cells))
		}
		tbl.Rows = append(tbl.Rows, row.cells)
	}
	p.add(tbl)
	return j - 1, nil
}

func (p *parser) add(b Block) {
	if p.section < 0 {
		p.doc.Preamble = append(p.doc.Preamble, b)
		return
	}
	s := &p.doc.Sections[p.section]
	s.Blocks = append(s.Blocks, b)
}

func (p *parser) flushPara() {
	if len(p.para) > 0 {
		p.add(&Paragraph{Text: strings.Join(p.para, " "), Line: p.paraLine})
		p.para = nil
	}
}

func (p *parser) flushList() {
	if p.list != nil {
		p.add(p.list)
		p.list = nil
	}
}

func (p *parser) flush() {
	p.flushPara()
	p.flushList()
}

// headingLevel returns the ATX heading depth of a trimmed line, or 0 when
// the line is not a heading. A heading is 1-6 # characters followed by a
// space.
func headingLevel(trimmed string) int {
	n := 0
	for n < len(trimmed) && trimmed[n] == '#' {
		n++
	}
	if n == 0 || n > 6 || n >= len(trimmed) || trimmed[n] != ' ' {
		return 0
	}
	return n
}

// isFence reports whether a trimmed line opens or closes a backtick fence.
func isFence(trimmed string) bool {
	return strings.HasPrefix(trimmed, "```")
}

// listItemText returns the item text of a trimmed list line, or empty when
// the line is not a list item.
func listItemText(trimmed string) string {
	for _, marker := range []string{"- ", "* ", "+ "} {
		if strings.HasPrefix(trimmed, marker) {
			return strings.TrimSpace(trimmed[len(marker):])
		}
	}
	if loc := orderedItemPattern.FindString(trimmed); loc != "" {
		return strings.TrimSpace(trimmed[len(loc):])
	}
	return ""
}

func isIndented(line string) bool {
	return strings.HasPrefix(line, "  ") || strings.HasPrefix(line, "\t")
}

// splitCells splits a trimmed pipe-table line into trimmed cell strings.
func splitCells(trimmed string) []string {
	inner := strings.Trim(trimmed, "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, len(parts))
	for i, part := range parts {
		cells[i] = strings.TrimSpace(part)
	}
	return cells
}

// isSeparatorRow reports whether every cell is a --- separator, with
// optional alignment colons.
func isSeparatorRow(cells []string) bool {
	if len(cells) == 0 {
		return false
	}
	for _, c := range cells {
		body := strings.TrimSuffix(strings.TrimPrefix(c, ":"), ":")
		if body == "" || strings.Count(body, "-") != len(body) {
			return false
		}
	}
	return true
}
