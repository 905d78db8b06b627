// Package render turns parsed documents back into presentable text.
//
// All renderers are deterministic: rendering the same document twice in
// the same format yields byte-identical output. The markdown renderer is
// also canonical — parsing its output reproduces the same structure.
package render

import (
	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/errors"
)

// Format identifies an output format.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatText     Format = "text"
	FormatTerm     Format = "term"
)

// ParseFormat resolves a user-supplied format name, accepting common
// aliases. Unknown names return a RENDER_001 error.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html":
		return FormatHTML, nil
	case "text", "txt", "plain":
		return FormatText, nil
	case "term", "ansi":
		return FormatTerm, nil
	default:
		return "", errors.UnknownFormat(s)
	}
}

// Options configures rendering.
type Options struct {
	// Width is the wrap width for text and terminal output. Zero means
	// the default of 80.
	Width int

	// TermStyle is the glamour style name for terminal output. Empty
	// means "dark".
	TermStyle string
}

func (o Options) width() int {
	if o.Width <= 0 {
		return 80
	}
	return o.Width
}

func (o Options) termStyle() string {
	if o.TermStyle == "" {
		return "dark"
	}
	return o.TermStyle
}

// Render renders a document in the requested format.
func Render(doc *document.Document, format Format, opts Options) (string, error) {
	switch format {
	case FormatMarkdown:
		return Markdown(doc), nil
	case FormatHTML:
		return HTML(doc)
	case FormatText:
		return Text(doc, opts), nil
	case FormatTerm:
		return Term(doc, opts)
	default:
		return "", errors.UnknownFormat(string(format))
	}
}
