package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ValidDoc is a small well-formed document exercising every block kind.
const ValidDoc = `---
name: sample-doc
description: A small document used by tests.
---

# Sample

Opening paragraph with **bold** and a [link](https://example.com).

## Details

- first item
- second item

| Column A | Column B |
| --- | --- |
| one | two |
| three | four |

` + "```go\nfunc main() {}\n```" + `

### Notes

1. ordered one
2. ordered two
`

// UnclosedFenceDoc opens a fence on line 5 and never closes it.
const UnclosedFenceDoc = "# Title\n\n## Section\n\n```go\nfunc broken() {\n"

// BadTableDoc has a data row with one cell too many; the table starts on
// line 3 and the bad row is the second data row.
const BadTableDoc = `# Title

| A | B |
| --- | --- |
| 1 | 2 |
| 1 | 2 | 3 |
`

// SkippedLevelDoc jumps from a level 1 heading straight to level 3.
const SkippedLevelDoc = `# Title

Some prose.

### Too Deep

More prose.
`

// WriteDoc writes content to name inside dir, creating dir as needed, and
// returns the full path.
func WriteDoc(t *testing.T, dir, name, content string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

// TempDoc writes content to a file in a fresh temp directory and returns
// the path.
func TempDoc(t *testing.T, content string) string {
	t.Helper()
	return WriteDoc(t, t.TempDir(), "doc.md", content)
}
