package document_test

import (
	"strings"
	"testing"

	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/testutil"
)

func TestValidate(t *testing.T) {
	t.Run("well-formed document has no findings", func(t *testing.T) {
		doc, err := document.ParseString(testutil.ValidDoc)
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		if result.HasErrors() {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
		if len(result.Warnings) != 0 {
			t.Errorf("unexpected warnings: %v", result.Warnings)
		}
	})

	t.Run("outline jump is an error", func(t *testing.T) {
		doc, err := document.ParseString(testutil.SkippedLevelDoc)
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		if !result.HasErrors() {
			t.Fatal("expected errors")
		}
		testutil.AssertContains(t, result.Error(), "heading level jumps")
	})

	t.Run("all outline jumps are reported", func(t *testing.T) {
		doc, err := document.ParseString("# A\n\n### B\n\n# C\n\n#### D\n")
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		if len(result.Errors) != 2 {
			t.Fatalf("len(Errors) = %d, want 2: %v", len(result.Errors), result.Errors)
		}
	})

	t.Run("frontmatter missing fields", func(t *testing.T) {
		doc, err := document.ParseString("---\nversion: 1.0.0\n---\n\n# T\n")
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		if len(result.Errors) != 2 {
			t.Fatalf("len(Errors) = %d, want 2: %v", len(result.Errors), result.Errors)
		}
		testutil.AssertContains(t, result.Error(), "frontmatter.name")
		testutil.AssertContains(t, result.Error(), "frontmatter.description")
	})

	t.Run("frontmatter name format", func(t *testing.T) {
		doc, err := document.ParseString("---\nname: Bad_Name\ndescription: ok\n---\n\n# T\n")
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		if !result.HasErrors() {
			t.Fatal("expected errors")
		}
		testutil.AssertContains(t, result.Error(), "lowercase")
	})

	t.Run("no frontmatter is fine", func(t *testing.T) {
		doc, err := document.ParseString("# T\n\nprose\n")
		testutil.AssertNoError(t, err)
		if doc.Validate().HasErrors() {
			t.Error("document without frontmatter should validate")
		}
	})

	t.Run("untagged fence is a warning", func(t *testing.T) {
		doc, err := document.ParseString("# T\n\n```\ncode\n```\n")
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		if result.HasErrors() {
			t.Errorf("unexpected errors: %v", result.Errors)
		}
		if len(result.Warnings) != 1 {
			t.Fatalf("len(Warnings) = %d, want 1", len(result.Warnings))
		}
		testutil.AssertContains(t, result.Warnings[0].Error(), "language tag")
	})

	t.Run("duplicate sibling titles warn", func(t *testing.T) {
		doc, err := document.ParseString("# T\n\n## Same\n\n## Same\n")
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		if len(result.Warnings) != 1 {
			t.Fatalf("len(Warnings) = %d, want 1: %v", len(result.Warnings), result.Warnings)
		}
		testutil.AssertContains(t, result.Warnings[0].Error(), "duplicates title on line 3")
	})

	t.Run("result error message lists findings", func(t *testing.T) {
		doc, err := document.ParseString(strings.Join([]string{"# A", "", "### B", ""}, "\n"))
		testutil.AssertNoError(t, err)

		result := doc.Validate()
		testutil.AssertContains(t, result.Error(), "validation failed with 1 error(s)")
	})
}
