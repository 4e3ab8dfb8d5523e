// Package cli implements the jpholiday command line tool.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Each call returns a fresh tree, so
// flag values never leak between runs.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "jpholiday",
		Short:         "Japanese national holidays from the Act on National Holidays",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	addCalendarFlags(root)
	root.AddCommand(
		newCheckCmd(),
		newListCmd(),
		newMonthCmd(),
		newExportCmd(),
		newVerifyCmd(),
		newVersionCmd(),
	)
	return root
}

// Execute runs the command line tool with os.Args and prints any error to
// stderr.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(root.ErrOrStderr(), Error("error: "+err.Error()))
		return err
	}
	return nil
}
