package document

import (
	"fmt"
	"regexp"
	"strings"
)

var namePattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidationError represents a single validation finding.
type ValidationError struct {
	Line    int
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s %s", e.Line, e.Field, e.Message)
	}
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// ValidationResult holds validation errors and warnings.
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any validation errors.
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error implements the error interface.
func (r *ValidationResult) Error() string {
	if len(r.Errors) == 0 {
		return ""
	}

	var messages []string
	for _, err := range r.Errors {
		messages = append(messages, err.Error())
	}

	return fmt.Sprintf("validation failed with %d error(s):\n  - %s",
		len(r.Errors), strings.Join(messages, "\n  - "))
}

// AddError appends a validation error.
func (r *ValidationResult) AddError(line int, field, message string) {
	r.Errors = append(r.Errors, ValidationError{Line: line, Field: field, Message: message})
}

// AddWarning appends a validation warning.
func (r *ValidationResult) AddWarning(line int, field, message string) {
	r.Warnings = append(r.Warnings, ValidationError{Line: line, Field: field, Message: message})
}

// Validate checks an already-parsed document for structural and style
// problems, accumulating every finding rather than stopping at the first.
// Outline violations are errors; style findings are warnings.
func (d *Document) Validate() *ValidationResult {
	result := &ValidationResult{}

	validateFrontmatter(d.Frontmatter, result)
	for _, jump := range d.outlineViolations() {
		result.AddError(jump.Line(), "outline", jump.Message)
	}
	validateStyle(d, result)

	return result
}

func validateFrontmatter(fm *Frontmatter, result *ValidationResult) {
	if fm == nil {
		return
	}

	if fm.Name == "" {
		result.AddError(0, "frontmatter.name", "is required when frontmatter is present")
	} else if !namePattern.MatchString(fm.Name) {
		result.AddError(0, "frontmatter.name", "must be lowercase alphanumeric with hyphens")
	}

	if fm.Description == "" {
		result.AddError(0, "frontmatter.description", "is required when frontmatter is present")
	} else if len(fm.Description) > 1024 {
		result.AddError(0, "frontmatter.description", "must be 1024 characters or less")
	}
}

func validateStyle(d *Document, result *ValidationResult) {
	for _, cb := range d.CodeBlocks() {
		if cb.Lang == "" {
			result.AddWarning(cb.StartLine, "code", "fenced block has no language tag")
		}
	}

	for _, tbl := range d.Tables() {
		for i, h := range tbl.Header {
			if h == "" {
				result.AddWarning(tbl.Line, "table", fmt.Sprintf("header cell %d is empty", i+1))
			}
		}
	}

	seen := make(map[string]int)
	for i := range d.Sections {
		s := &d.Sections[i]
		if s.Title == "" {
			result.AddError(s.Line, "heading", "has no title")
			continue
		}
		key := fmt.Sprintf("%d:%s", s.Level, s.Title)
		if first, ok := seen[key]; ok {
			result.AddWarning(s.Line, "heading", fmt.Sprintf("duplicates title on line %d", first))
		} else {
			seen[key] = s.Line
		}
	}
}
