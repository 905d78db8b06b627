package docs_test

import (
	"io/fs"
	"testing"

	"github.com/sdd-stack/skilldoc/docs"
	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/render"
)

// The bundled documents must hold themselves to the structure the toolkit
// enforces on everyone else.
func TestBundledDocumentsAreWellFormed(t *testing.T) {
	entries, err := fs.ReadDir(docs.FS, ".")
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	if len(entries) < 2 {
		t.Fatalf("expected at least 2 bundled documents, found %d", len(entries))
	}

	for _, de := range entries {
		de := de
		t.Run(de.Name(), func(t *testing.T) {
			data, err := fs.ReadFile(docs.FS, de.Name())
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}

			doc, err := document.ParseString(string(data))
			if err != nil {
				t.Fatalf("bundled document does not parse: %v", err)
			}

			if doc.Frontmatter == nil {
				t.Fatal("bundled documents must carry frontmatter")
			}
			if doc.Frontmatter.Name == "" || doc.Frontmatter.Description == "" {
				t.Error("frontmatter must have name and description")
			}

			if err := doc.ValidateOutline(); err != nil {
				t.Errorf("outline is not well nested: %v", err)
			}

			result := doc.Validate()
			if result.HasErrors() {
				t.Errorf("validation errors: %v", result.Errors)
			}
			for _, w := range result.Warnings {
				t.Errorf("bundled documents must be warning-free: %v", w)
			}

			for _, format := range []render.Format{
				render.FormatMarkdown,
				render.FormatHTML,
				render.FormatText,
				render.FormatTerm,
			} {
				out, err := render.Render(doc, format, render.Options{})
				if err != nil {
					t.Errorf("render %s failed: %v", format, err)
				}
				if out == "" {
					t.Errorf("render %s produced no output", format)
				}
			}

			// The canonical form must reparse cleanly.
			if _, err := document.ParseString(render.Markdown(doc)); err != nil {
				t.Errorf("canonical form does not reparse: %v", err)
			}
		})
	}
}

func TestBundledDocumentsCoverMethodology(t *testing.T) {
	data, err := fs.ReadFile(docs.FS, "SKILL.md")
	if err != nil {
		t.Fatalf("SKILL.md missing: %v", err)
	}
	doc, err := document.ParseString(string(data))
	if err != nil {
		t.Fatalf("ParseString() error = %v", err)
	}

	if doc.FindSection("Decision checklist") == nil {
		t.Error("SKILL.md should contain the decision checklist")
	}
	if len(doc.CodeBlocks()) < 3 {
		t.Errorf("SKILL.md has %d code examples, want at least 3", len(doc.CodeBlocks()))
	}
	if len(doc.Tables()) < 2 {
		t.Errorf("SKILL.md has %d tables, want at least 2", len(doc.Tables()))
	}
}
