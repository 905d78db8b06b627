package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sdd-stack/skilldoc/internal/document"
)

var outlineCmd = &cobra.Command{
	Use:   "outline <path>",
	Short: "Print a document's heading tree",
	Long: `Print the heading outline of a document, indented by level, with
the line each heading appears on. Also checks that heading levels never
skip a step.`,
	Args: cobra.ExactArgs(1),
	RunE: runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
	doc, err := document.Load(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, e := range doc.Outline() {
		indent := strings.Repeat("  ", e.Level-1)
		fmt.Fprintf(out, "%s%s (line %d)\n", indent, e.Title, e.Line)
	}

	return doc.ValidateOutline()
}
