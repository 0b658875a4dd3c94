// ==============================================================================================
// FILE: cmd/mython/cmd/ast.go
// ==============================================================================================
// PURPOSE: "mython ast" — parse a file or inline expression and print its AST. Grounded on
//          CWBudde-go-dws's cmd/dwscript/cmd/parse.go (parse-only command, --dump-ast flag on
//          run.go generalized into its own subcommand here since Mython's parser runs in one
//          shot rather than producing an incremental tree).
// ==============================================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mython/parser"
)

var astEvalExpr string

var astCmd = &cobra.Command{
	Use:   "ast [file]",
	Short: "Parse a Mython file or expression and print its AST",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAST,
}

func init() {
	rootCmd.AddCommand(astCmd)
	astCmd.Flags().StringVarP(&astEvalExpr, "eval", "e", "", "parse inline code instead of reading from file")
}

func runAST(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args, astEvalExpr)
	if err != nil {
		return err
	}

	program, err := parser.Parse(source)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	fmt.Println(program.String())
	return nil
}
