// Package docs embeds the bundled methodology documents.
package docs

import "embed"

// FS holds the documents shipped with the skilldoc binary. Each file is a
// markdown document with YAML frontmatter carrying its name and
// description.
//
//go:embed *.md
var FS embed.FS
