package render

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/errors"
)

// htmlBackend converts canonical markdown to an HTML fragment. The table
// extension is required because methodology documents lean heavily on
// pipe tables.
var htmlBackend = goldmark.New(
	goldmark.WithExtensions(extension.Table),
)

// HTML renders a document as an HTML fragment. The frontmatter is
// metadata, not content, so it is not rendered.
func HTML(doc *document.Document) (string, error) {
	var buf bytes.Buffer
	if err := htmlBackend.Convert([]byte(markdownBody(doc)), &buf); err != nil {
		return "", errors.RenderFailed("html", err)
	}
	return buf.String(), nil
}
