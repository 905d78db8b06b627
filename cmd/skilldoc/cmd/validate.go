package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/errors"
)

var validateJSON bool

var validateCmd = &cobra.Command{
	Use:   "validate <path>",
	Short: "Validate a document's structure",
	Long: `Validate a methodology document without rendering it.

Checks:
- YAML frontmatter syntax and required fields
- Balanced code fences
- Table rows matching their header's cell count
- Heading levels never skipping a step`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "emit findings as JSON")
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	out := cmd.OutOrStdout()

	doc, err := document.Load(path)
	if err != nil {
		if validateJSON {
			var derr *errors.DocError
			if e, ok := err.(*errors.DocError); ok {
				derr = e
			} else {
				derr = errors.Wrap(errors.CodeDocParseError, "parse failed", err)
			}
			data, jerr := json.MarshalIndent(derr, "", "  ")
			if jerr != nil {
				return jerr
			}
			fmt.Fprintln(out, string(data))
		}
		return err
	}

	result := doc.Validate()

	if validateJSON {
		data, jerr := json.MarshalIndent(result, "", "  ")
		if jerr != nil {
			return jerr
		}
		fmt.Fprintln(out, string(data))
	} else {
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "warning: %s\n", w.Error())
		}
		for _, e := range result.Errors {
			fmt.Fprintf(out, "error: %s\n", e.Error())
		}
	}

	if result.HasErrors() {
		return fmt.Errorf("%s: %d error(s)", path, len(result.Errors))
	}

	if !validateJSON {
		fmt.Fprintf(out, "%s: ok (%d section(s), %d warning(s))\n",
			path, len(doc.Sections), len(result.Warnings))
	}
	return nil
}
