// ==============================================================================================
// FILE: repl/repl.go
// ==============================================================================================
// PACKAGE: repl
// PURPOSE: The Read-Eval-Print Loop. Connects a user input stream to the lexer/parser/eval
//          pipeline and keeps one persistent global closure alive across the whole session.
//          Grounded on the teacher's repl/repl.go (bufio.Scanner loop, dot-commands, colored
//          result printing), adapted for indentation-sensitive input: a block only lexes and
//          parses once its DEDENT has actually been typed, so the loop buffers lines until a
//          blank line (or an unindented, non-colon-terminated line) closes the current entry.
// ==============================================================================================

package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"mython/eval"
	"mython/lexer"
	"mython/object"
	"mython/parser"
	"mython/token"
)

const (
	PROMPT      = ">>> "
	CONT_PROMPT = "... "

	LOGO = `
╔══════════════════════════════════╗
║  Mython                          ║
╚══════════════════════════════════╝
`
)

// ANSI color codes for terminal output.
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Gray   = "\033[37m"
	Bold   = "\033[1m"
)

// Start launches the REPL, reading from in and writing prompts and results to out. The global
// closure persists for the lifetime of the session so later entries can see earlier ones'
// classes and variables.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	global := object.NewGlobalClosure()
	ctx := object.NewContext(out)
	showTokens := false
	showAST := false

	fmt.Fprint(out, LOGO)
	printHelp(out)

	var buf strings.Builder
	for {
		if buf.Len() == 0 {
			fmt.Fprint(out, Gray+PROMPT+Reset)
		} else {
			fmt.Fprint(out, Gray+CONT_PROMPT+Reset)
		}

		if !scanner.Scan() {
			return
		}
		line := scanner.Text()

		if buf.Len() == 0 {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			if strings.HasPrefix(trimmed, ".") {
				switch trimmed {
				case ".exit":
					fmt.Fprintln(out, Yellow+"Goodbye!"+Reset)
					return
				case ".clear":
					global = object.NewGlobalClosure()
					fmt.Fprintln(out, Green+"Session cleared."+Reset)
				case ".tokens":
					showTokens = !showTokens
					fmt.Fprintln(out, Gray+toggleMsg("Token display", showTokens)+Reset)
				case ".ast":
					showAST = !showAST
					fmt.Fprintln(out, Gray+toggleMsg("AST display", showAST)+Reset)
				case ".help":
					printHelp(out)
				default:
					fmt.Fprintf(out, Red+"Unknown command: %s. Type .help for info.\n"+Reset, trimmed)
				}
				continue
			}
		}

		buf.WriteString(line)
		buf.WriteByte('\n')

		if needsContinuation(line) {
			continue
		}

		source := buf.String()
		buf.Reset()
		run(out, source, global, ctx, showTokens, showAST)
	}
}

// needsContinuation reports whether the entry so far is incomplete: either the line just typed
// opens a block (ends in ':') or it is itself indented, meaning we're still inside one.
func needsContinuation(line string) bool {
	trimmed := strings.TrimRight(line, " \t")
	if trimmed == "" {
		return false
	}
	if strings.HasSuffix(trimmed, ":") {
		return true
	}
	return line[0] == ' '
}

func run(out io.Writer, source string, global *object.Closure, ctx object.Context, showTokens, showAST bool) {
	l := lexer.New(source)
	toks, err := l.Tokenize()
	if err != nil {
		fmt.Fprintln(out, Red+Bold+err.Error()+Reset)
		return
	}

	if showTokens {
		printTokens(out, toks)
	}

	cur := lexer.NewCursor(toks)
	p := parser.New(cur)
	program := p.ParseProgram()
	if errs := p.Errors(); len(errs) > 0 {
		printParseErrors(out, errs)
		return
	}

	if showAST {
		printAST(out, program)
	}

	if _, err := eval.Execute(program, global, ctx); err != nil {
		fmt.Fprintln(out, Red+Bold+"error: "+Reset+Red+err.Error()+Reset)
	}
}

func toggleMsg(label string, on bool) string {
	state := "disabled"
	if on {
		state = "enabled"
	}
	return fmt.Sprintf("%s %s.", label, state)
}

func printHelp(out io.Writer) {
	fmt.Fprintln(out, Gray+"Commands:")
	fmt.Fprintln(out, "  .exit    Quit the REPL")
	fmt.Fprintln(out, "  .clear   Reset the session")
	fmt.Fprintln(out, "  .tokens  Toggle token dump before each eval")
	fmt.Fprintln(out, "  .ast     Toggle AST dump before each eval")
	fmt.Fprintln(out, "  .help    Show this message"+Reset)
	fmt.Fprintln(out)
}

func printTokens(out io.Writer, toks []token.Token) {
	fmt.Fprintln(out, Gray+"--- tokens ---"+Reset)
	for _, t := range toks {
		fmt.Fprintf(out, "  %s\n", t)
	}
	fmt.Fprintln(out, Gray+"--------------"+Reset)
}

func printAST(out io.Writer, program fmt.Stringer) {
	fmt.Fprintln(out, Gray+"--- ast ---"+Reset)
	if str := program.String(); str != "" {
		fmt.Fprintln(out, str)
	}
	fmt.Fprintln(out, Gray+"-----------"+Reset)
}

func printParseErrors(out io.Writer, errs []string) {
	fmt.Fprintln(out, Red+Bold+"parse errors:"+Reset)
	for _, msg := range errs {
		fmt.Fprintf(out, Red+"  - %s\n"+Reset, msg)
	}
}
