// ==============================================================================================
// FILE: cmd/mython/cmd/run.go
// ==============================================================================================
// PURPOSE: "mython run" — lex, parse, and execute a Mython file or inline expression. Grounded
//          on CWBudde-go-dws's cmd/dwscript/cmd/run.go (file-or--eval input selection, parse
//          errors reported to stderr before execution is ever attempted).
// ==============================================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mython/eval"
	"mython/object"
	"mython/parser"
)

var runEvalExpr string

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Mython program",
	Long: `Execute a Mython program from a file or inline expression.

Examples:
  mython run program.my
  mython run -e "print 1 + 2"`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runEvalExpr, "eval", "e", "", "execute inline code instead of reading from file")
}

func runScript(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args, runEvalExpr)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	ctx := object.NewContext(os.Stdout)
	global := object.NewGlobalClosure()
	if _, err := eval.Execute(program, global, ctx); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	return nil
}
