// Package cmd implements the skilldoc command line interface.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags
	Version = "dev"

	// Global flags
	verbose bool
	workDir string
)

var rootCmd = &cobra.Command{
	Use:   "skilldoc",
	Short: "skilldoc - validate and render methodology documents",
	Long: `skilldoc is a toolkit for methodology documents: SKILL.md-style
markdown files with YAML frontmatter, headings, tables, and fenced code
examples.

It parses documents into a structural form, checks that the structure is
well-formed (balanced code fences, consistent table rows, no skipped
heading levels), and renders documents as markdown, HTML, plain text, or
styled terminal output.

The binary ships with a small library of methodology documents; run with
no arguments to list them.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		// When no subcommand is given, list available documents
		return listDocuments(cmd)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&workDir, "workdir", "C", "", "working directory (default: current)")

	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("skilldoc {{.Version}}\n")
}

// baseDir resolves the working directory, honoring the -C flag.
func baseDir() string {
	if workDir != "" {
		return workDir
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func listDocuments(cmd *cobra.Command) error {
	entries, err := newLibrary().List()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No documents available.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Available documents:")
	for _, e := range entries {
		if e.Description != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  %-28s %s\n", e.Name, e.Description)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", e.Name)
		}
	}
	return nil
}
