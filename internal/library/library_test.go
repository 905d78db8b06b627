package library

import (
	"testing"
	"testing/fstest"

	"github.com/sdd-stack/skilldoc/internal/errors"
	"github.com/sdd-stack/skilldoc/internal/testutil"
)

const embeddedAlpha = `---
name: alpha
description: Embedded alpha document.
---

# Alpha
`

const embeddedBeta = `---
name: beta
description: Embedded beta document.
---

# Beta
`

const userAlpha = `---
name: alpha
description: User override of alpha.
---

# Alpha
`

const projectAlpha = `---
name: alpha
description: Project override of alpha.
---

# Alpha
`

func testLibrary(t *testing.T) *Library {
	t.Helper()
	return &Library{
		ProjectDir: t.TempDir(),
		UserDir:    t.TempDir(),
		Embedded: fstest.MapFS{
			"alpha.md": &fstest.MapFile{Data: []byte(embeddedAlpha)},
			"beta.md":  &fstest.MapFile{Data: []byte(embeddedBeta)},
		},
	}
}

func TestList(t *testing.T) {
	t.Run("embedded only", func(t *testing.T) {
		lib := testLibrary(t)

		entries, err := lib.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 2 {
			t.Fatalf("len(entries) = %d, want 2", len(entries))
		}
		// Sorted by name.
		if entries[0].Name != "alpha" || entries[1].Name != "beta" {
			t.Errorf("entries = %v", entries)
		}
		if entries[0].Source != SourceEmbedded {
			t.Errorf("Source = %q, want embedded", entries[0].Source)
		}
	})

	t.Run("user overrides embedded", func(t *testing.T) {
		lib := testLibrary(t)
		testutil.WriteDoc(t, lib.UserDir, "alpha.md", userAlpha)

		entries, err := lib.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		alpha := findEntry(t, entries, "alpha")
		if alpha.Source != SourceUser {
			t.Errorf("alpha.Source = %q, want user", alpha.Source)
		}
		if alpha.Description != "User override of alpha." {
			t.Errorf("alpha.Description = %q", alpha.Description)
		}
	})

	t.Run("project overrides user and embedded", func(t *testing.T) {
		lib := testLibrary(t)
		testutil.WriteDoc(t, lib.UserDir, "alpha.md", userAlpha)
		testutil.WriteDoc(t, lib.ProjectDir, "alpha.md", projectAlpha)

		entries, err := lib.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		alpha := findEntry(t, entries, "alpha")
		if alpha.Source != SourceProject {
			t.Errorf("alpha.Source = %q, want project", alpha.Source)
		}
	})

	t.Run("non-markdown files are skipped", func(t *testing.T) {
		lib := testLibrary(t)
		testutil.WriteDoc(t, lib.ProjectDir, "notes.txt", "not a doc")

		entries, err := lib.List()
		if err != nil {
			t.Fatalf("List() error = %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("len(entries) = %d, want 2", len(entries))
		}
	})
}

func TestResolve(t *testing.T) {
	t.Run("by frontmatter name", func(t *testing.T) {
		lib := testLibrary(t)
		e, err := lib.Resolve("beta")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if e.Source != SourceEmbedded || e.File != "beta.md" {
			t.Errorf("entry = %+v", e)
		}
	})

	t.Run("by filename stem", func(t *testing.T) {
		lib := testLibrary(t)
		testutil.WriteDoc(t, lib.ProjectDir, "guide.md", "# No Frontmatter\n")

		e, err := lib.Resolve("guide")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if e.Source != SourceProject {
			t.Errorf("Source = %q, want project", e.Source)
		}
	})

	t.Run("project wins over embedded", func(t *testing.T) {
		lib := testLibrary(t)
		testutil.WriteDoc(t, lib.ProjectDir, "alpha.md", projectAlpha)

		e, err := lib.Resolve("alpha")
		if err != nil {
			t.Fatalf("Resolve() error = %v", err)
		}
		if e.Source != SourceProject {
			t.Errorf("Source = %q, want project", e.Source)
		}
	})

	t.Run("unknown name fails", func(t *testing.T) {
		lib := testLibrary(t)
		_, err := lib.Resolve("nonesuch")
		testutil.AssertErrorCode(t, err, errors.CodeLibDocNotFound)
	})
}

func TestContent(t *testing.T) {
	t.Run("embedded content", func(t *testing.T) {
		lib := testLibrary(t)
		data, err := lib.Content("beta")
		if err != nil {
			t.Fatalf("Content() error = %v", err)
		}
		if string(data) != embeddedBeta {
			t.Errorf("Content() = %q", data)
		}
	})

	t.Run("file content", func(t *testing.T) {
		lib := testLibrary(t)
		testutil.WriteDoc(t, lib.ProjectDir, "alpha.md", projectAlpha)

		data, err := lib.Content("alpha")
		if err != nil {
			t.Fatalf("Content() error = %v", err)
		}
		if string(data) != projectAlpha {
			t.Errorf("Content() = %q", data)
		}
	})
}

func TestLibraryLoad(t *testing.T) {
	lib := testLibrary(t)

	doc, err := lib.Load("alpha")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Frontmatter == nil || doc.Frontmatter.Name != "alpha" {
		t.Errorf("Frontmatter = %+v", doc.Frontmatter)
	}
}

func TestNewUsesEmbeddedDocs(t *testing.T) {
	lib := New(t.TempDir())

	entries, err := lib.List()
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}

	names := make(map[string]bool)
	for _, e := range entries {
		names[e.Name] = true
	}
	if !names["spec-driven-development"] {
		t.Error("bundled spec-driven-development document missing")
	}
	if !names["testing-antipatterns"] {
		t.Error("bundled testing-antipatterns document missing")
	}
}

func findEntry(t *testing.T, entries []Entry, name string) Entry {
	t.Helper()
	for _, e := range entries {
		if e.Name == name {
			return e
		}
	}
	t.Fatalf("entry %q not found in %v", name, entries)
	return Entry{}
}
