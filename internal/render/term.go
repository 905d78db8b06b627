package render

import (
	"github.com/charmbracelet/glamour"

	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/errors"
)

// Term renders a document for an ANSI terminal using glamour. The style is
// pinned (no auto-detection) so output for a given document and options is
// byte-identical across runs and environments.
func Term(doc *document.Document, opts Options) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(opts.termStyle()),
		glamour.WithWordWrap(opts.width()),
	)
	if err != nil {
		return "", errors.RenderFailed("term", err)
	}

	out, err := r.Render(markdownBody(doc))
	if err != nil {
		return "", errors.RenderFailed("term", err)
	}
	return out, nil
}
