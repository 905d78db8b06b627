// Package library resolves named documents from multiple sources with
// precedence: project documents override user documents, which override
// the documents embedded in the binary.
package library

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sdd-stack/skilldoc/docs"
	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/errors"
)

// Source identifies where a document was resolved from.
type Source string

const (
	SourceProject  Source = "project"
	SourceUser     Source = "user"
	SourceEmbedded Source = "embedded"
)

// Entry describes one resolvable document.
type Entry struct {
	// Name is the registry name: the frontmatter name when present,
	// otherwise the lowercased filename without extension.
	Name string

	// Description comes from the frontmatter, empty when absent.
	Description string

	// Path is the file path for project and user documents. Empty for
	// embedded documents.
	Path string

	// File is the filename inside the embedded filesystem. Empty for
	// file-backed documents.
	File string

	// Source is where the entry was found.
	Source Source
}

// Library resolves documents by name across the three sources.
type Library struct {
	// ProjectDir is the project-local docs directory.
	ProjectDir string

	// UserDir is the user-level docs directory.
	// Default: ~/.skilldoc/docs
	UserDir string

	// Embedded holds the bundled documents.
	Embedded fs.FS
}

// New creates a library rooted at the given project docs directory.
func New(projectDocsDir string) *Library {
	userDir := ""
	if home, err := os.UserHomeDir(); err == nil {
		userDir = filepath.Join(home, ".skilldoc", "docs")
	}

	return &Library{
		ProjectDir: projectDocsDir,
		UserDir:    userDir,
		Embedded:   docs.FS,
	}
}

// List returns all resolvable documents sorted by name. When the same name
// exists in several sources, the highest-precedence entry wins.
func (l *Library) List() ([]Entry, error) {
	byName := make(map[string]Entry)

	// Lowest precedence first so later sources overwrite.
	for _, e := range l.scanEmbedded() {
		byName[e.Name] = e
	}
	for _, e := range scanDir(l.UserDir, SourceUser) {
		byName[e.Name] = e
	}
	for _, e := range scanDir(l.ProjectDir, SourceProject) {
		byName[e.Name] = e
	}

	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Resolve finds a document by name or filename stem, searching project,
// then user, then embedded documents.
func (l *Library) Resolve(name string) (Entry, error) {
	groups := [][]Entry{
		scanDir(l.ProjectDir, SourceProject),
		scanDir(l.UserDir, SourceUser),
		l.scanEmbedded(),
	}
	for _, entries := range groups {
		for _, e := range entries {
			if e.Name == name || stem(e.Path) == name || stem(e.File) == name {
				return e, nil
			}
		}
	}
	return Entry{}, errors.DocNotFound(name)
}

// Content returns the raw bytes of a resolved document.
func (l *Library) Content(name string) ([]byte, error) {
	e, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}
	if e.Path != "" {
		data, err := os.ReadFile(e.Path)
		if err != nil {
			return nil, errors.IOReadError(e.Path, err)
		}
		return data, nil
	}
	data, err := fs.ReadFile(l.Embedded, e.File)
	if err != nil {
		return nil, errors.IOReadError(e.File, err)
	}
	return data, nil
}

// Load resolves and parses a document by name.
func (l *Library) Load(name string) (*document.Document, error) {
	data, err := l.Content(name)
	if err != nil {
		return nil, err
	}
	return document.ParseString(string(data))
}

func (l *Library) scanEmbedded() []Entry {
	if l.Embedded == nil {
		return nil
	}
	dirents, err := fs.ReadDir(l.Embedded, ".")
	if err != nil {
		return nil
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		data, err := fs.ReadFile(l.Embedded, de.Name())
		if err != nil {
			continue
		}
		e := entryFrom(data, de.Name())
		e.File = de.Name()
		e.Source = SourceEmbedded
		entries = append(entries, e)
	}
	return entries
}

func scanDir(dir string, source Source) []Entry {
	if dir == "" {
		return nil
	}
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil // Missing source directories are not an error
	}

	var entries []Entry
	for _, de := range dirents {
		if de.IsDir() || !strings.HasSuffix(de.Name(), ".md") {
			continue
		}
		path := filepath.Join(dir, de.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		e := entryFrom(data, de.Name())
		e.Path = path
		e.Source = source
		entries = append(entries, e)
	}
	return entries
}

// entryFrom derives an entry from document content. A document that fails
// to parse is still listed under its filename so that validate can be
// pointed at it.
func entryFrom(data []byte, filename string) Entry {
	e := Entry{Name: stem(filename)}
	doc, err := document.ParseString(string(data))
	if err != nil {
		return e
	}
	if doc.Frontmatter != nil && doc.Frontmatter.Name != "" {
		e.Name = doc.Frontmatter.Name
	}
	e.Description = doc.Description()
	return e
}

func stem(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.ToLower(strings.TrimSuffix(base, ".md"))
}
