package cmd

import (
	"github.com/spf13/cobra"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Work with the document library",
	Long: `Work with the document library.

Documents are resolved by name from three sources, in precedence order:
the project docs directory (.skilldoc/docs), the user docs directory
(~/.skilldoc/docs), and the documents embedded in the binary.`,
}

func init() {
	rootCmd.AddCommand(docsCmd)
}
