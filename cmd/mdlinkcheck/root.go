package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for mdlinkcheck.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdlinkcheck",
		Short: "Find broken links in Markdown documentation",
		Long: `mdlinkcheck scans a directory tree for Markdown files, extracts every
[text](target) link and reports the ones that are broken.

External links (http:// and https://) are checked with an HTTP HEAD request.
Every other target is resolved relative to the file that contains it and
checked on disk.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewCheckCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
