package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/sdd-stack/skilldoc/internal/testutil"
)

func TestValidate_ValidDocument(t *testing.T) {
	validateJSON = false
	path := testutil.TempDoc(t, testutil.ValidDoc)

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	validateCmd.SetErr(&out)

	if err := runValidate(validateCmd, []string{path}); err != nil {
		t.Fatalf("runValidate() error = %v", err)
	}
	if !strings.Contains(out.String(), "ok") {
		t.Errorf("output = %q, want ok summary", out.String())
	}
}

func TestValidate_UnclosedFence(t *testing.T) {
	validateJSON = false
	path := testutil.TempDoc(t, testutil.UnclosedFenceDoc)

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	validateCmd.SetErr(&out)

	err := runValidate(validateCmd, []string{path})
	if err == nil {
		t.Fatal("runValidate() should fail on an unclosed fence")
	}
	if !strings.Contains(err.Error(), "line 5") {
		t.Errorf("error = %v, want mention of line 5", err)
	}
}

func TestValidate_OutlineJump(t *testing.T) {
	validateJSON = false
	path := testutil.TempDoc(t, testutil.SkippedLevelDoc)

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	validateCmd.SetErr(&out)

	err := runValidate(validateCmd, []string{path})
	if err == nil {
		t.Fatal("runValidate() should fail on a skipped heading level")
	}
	if !strings.Contains(out.String(), "heading level jumps") {
		t.Errorf("output = %q, want outline finding", out.String())
	}
}

func TestValidate_JSONOutput(t *testing.T) {
	validateJSON = true
	defer func() { validateJSON = false }()

	path := testutil.TempDoc(t, testutil.SkippedLevelDoc)

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	validateCmd.SetErr(&out)

	err := runValidate(validateCmd, []string{path})
	if err == nil {
		t.Fatal("runValidate() should fail")
	}
	if !strings.Contains(out.String(), `"Errors"`) {
		t.Errorf("output = %q, want JSON findings", out.String())
	}
}

func TestValidate_MissingFile(t *testing.T) {
	validateJSON = false

	var out bytes.Buffer
	validateCmd.SetOut(&out)
	validateCmd.SetErr(&out)

	if err := runValidate(validateCmd, []string{"/nonexistent/doc.md"}); err == nil {
		t.Fatal("runValidate() should fail for a missing file")
	}
}
