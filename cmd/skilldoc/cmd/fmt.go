package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdd-stack/skilldoc/internal/document"
	"github.com/sdd-stack/skilldoc/internal/errors"
	"github.com/sdd-stack/skilldoc/internal/render"
)

var fmtWrite bool

var fmtCmd = &cobra.Command{
	Use:   "fmt <path>",
	Short: "Rewrite a document in canonical markdown",
	Long: `Parse a document and print its canonical markdown form.

The canonical form is stable: formatting an already-canonical document is
a no-op. With -w the file is rewritten in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().BoolVarP(&fmtWrite, "write", "w", false, "rewrite the file in place")
	rootCmd.AddCommand(fmtCmd)
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]

	doc, err := document.Load(path)
	if err != nil {
		return err
	}

	out := render.Markdown(doc)
	if !fmtWrite {
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return errors.IOWriteError(path, err)
	}
	return nil
}
