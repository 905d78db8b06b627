package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdd-stack/skilldoc/internal/render"
)

var docsShowFormat string

var docsShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Render a document from the library",
	Long: `Render a library document by name.

The default format is term, which suits reading in a terminal; use
--format for the other formats.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocsShow,
}

func init() {
	docsShowCmd.Flags().StringVarP(&docsShowFormat, "format", "f", "term", "output format")
	docsCmd.AddCommand(docsShowCmd)
}

func runDocsShow(cmd *cobra.Command, args []string) error {
	format, err := render.ParseFormat(docsShowFormat)
	if err != nil {
		return err
	}

	cfg := loadConfig()
	doc, err := newLibrary().Load(args[0])
	if err != nil {
		return err
	}

	out, err := render.Render(doc, format, render.Options{
		Width:     cfg.Render.Width,
		TermStyle: cfg.Render.TermStyle,
	})
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), out)
	return nil
}
