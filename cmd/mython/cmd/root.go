// ==============================================================================================
// FILE: cmd/mython/cmd/root.go
// ==============================================================================================
// PACKAGE: cmd
// PURPOSE: Root cobra command and shared flags. Grounded on CWBudde-go-dws's
//          cmd/dwscript/cmd/root.go (persistent --verbose flag, subcommands registered via
//          init()), restructured for the Mython toolchain's run/repl/tokens/ast subcommands.
// ==============================================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "mython",
	Short: "Mython interpreter",
	Long: `mython is a tree-walking interpreter for Mython, a small Python-like language
with single-inheritance classes, dunder-method dispatch, and indentation-sensitive syntax.`,
}

// Execute runs the root command, printing any error to stderr and exiting non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func readSource(args []string, evalExpr string) (source, name string, err error) {
	if evalExpr != "" {
		return evalExpr, "<eval>", nil
	}
	if len(args) != 1 {
		return "", "", fmt.Errorf("either provide a file path or use -e for inline code")
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", "", fmt.Errorf("reading %s: %w", args[0], err)
	}
	return string(data), args[0], nil
}
