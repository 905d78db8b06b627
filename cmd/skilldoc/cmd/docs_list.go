package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available documents",
	Args:  cobra.NoArgs,
	RunE:  runDocsList,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
}

func runDocsList(cmd *cobra.Command, args []string) error {
	entries, err := newLibrary().List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "No documents available.")
		return nil
	}

	fmt.Fprintf(out, "%-28s %-10s %s\n", "NAME", "SOURCE", "DESCRIPTION")
	for _, e := range entries {
		fmt.Fprintf(out, "%-28s %-10s %s\n", e.Name, e.Source, e.Description)
	}
	return nil
}
