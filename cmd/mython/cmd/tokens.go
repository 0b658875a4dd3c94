// ==============================================================================================
// FILE: cmd/mython/cmd/tokens.go
// ==============================================================================================
// PURPOSE: "mython tokens" — dump the token stream for a file or inline expression. Grounded on
//          CWBudde-go-dws's cmd/dwscript/cmd/lex.go (same --eval input selection, one token
//          printed per line, exits non-zero when the lexer fails).
// ==============================================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mython/lexer"
)

var tokensEvalExpr string

var tokensCmd = &cobra.Command{
	Use:   "tokens [file]",
	Short: "Tokenize a Mython file or expression and print the resulting tokens",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVarP(&tokensEvalExpr, "eval", "e", "", "tokenize inline code instead of reading from file")
}

func runTokens(_ *cobra.Command, args []string) error {
	source, name, err := readSource(args, tokensEvalExpr)
	if err != nil {
		return err
	}

	toks, err := lexer.New(source).Tokenize()
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	for _, t := range toks {
		fmt.Printf("%d:%d  %s\n", t.Line, t.Column, t)
	}
	return nil
}
