// ==============================================================================================
// FILE: cmd/mython/cmd/repl.go
// ==============================================================================================
// PURPOSE: "mython repl" — launches the interactive session. Grounded on the teacher main.go's
//          REPL-mode dispatch, moved behind its own cobra subcommand the way dwscript keeps
//          each toolchain entry point (run/lex/parse) as a separate command.
// ==============================================================================================

package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"mython/repl"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive Mython session",
	RunE: func(_ *cobra.Command, _ []string) error {
		repl.Start(os.Stdin, os.Stdout)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(replCmd)
}
