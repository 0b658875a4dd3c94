// ==============================================================================================
// FILE: token/token.go
// ==============================================================================================
// PACKAGE: token
// PURPOSE: Defines the vocabulary of Mython. Every character the Lexer reads is turned into
//          one of these tagged Tokens; the Parser consumes nothing else.
// ==============================================================================================

package token

import "fmt"

// Kind identifies which variant of the Token tagged union a value holds.
type Kind int

const (
	// Leaves carrying a payload.
	NUMBER Kind = iota // Number(i64) -> Num
	ID                 // Id(string) -> Text
	STRING             // String(string) -> Text
	CHAR               // Char(char) -> single-punctuation Ch, e.g. '(' '.' ':'

	// Keyword markers (no payload).
	CLASS
	RETURN
	IF
	ELSE
	DEF
	PRINT
	AND
	OR
	NOT
	NONE
	TRUE
	FALSE

	// Two-character comparison operators.
	EQ       // ==
	NOTEQ    // !=
	LESSOREQ // <=
	GREATOREQ // >=

	// Structural markers.
	NEWLINE
	INDENT
	DEDENT
	EOF
)

var names = map[Kind]string{
	NUMBER: "NUMBER", ID: "ID", STRING: "STRING", CHAR: "CHAR",
	CLASS: "class", RETURN: "return", IF: "if", ELSE: "else", DEF: "def",
	PRINT: "print", AND: "and", OR: "or", NOT: "not", NONE: "None",
	TRUE: "True", FALSE: "False",
	EQ: "==", NOTEQ: "!=", LESSOREQ: "<=", GREATOREQ: ">=",
	NEWLINE: "NEWLINE", INDENT: "INDENT", DEDENT: "DEDENT", EOF: "EOF",
}

func (k Kind) String() string {
	if s, ok := names[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps the exact spelling of a reserved word to its Kind. The lexer looks up each
// maximal identifier run it scans (see scan_line.go), so a longer word such as "None_" never matches.
var keywords = map[string]Kind{
	"class": CLASS, "return": RETURN, "if": IF, "else": ELSE, "def": DEF,
	"print": PRINT, "or": OR, "None": NONE, "and": AND, "not": NOT,
	"True": TRUE, "False": FALSE,
}

// LookupKeyword reports whether ident is one of Mython's reserved words, returning its Kind.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// Token is a single lexical unit. Only the fields relevant to its Kind are populated:
// Num for NUMBER, Text for ID/STRING, Ch for CHAR. Line/Column locate it for error messages.
type Token struct {
	Kind   Kind
	Num    int64
	Text   string
	Ch     rune
	Line   int
	Column int
}

// Equal compares two tokens by kind and payload, ignoring position — two tokens scanned from
// different places in the source are equal if they'd tokenize the same code.
func (t Token) Equal(o Token) bool {
	if t.Kind != o.Kind {
		return false
	}
	switch t.Kind {
	case NUMBER:
		return t.Num == o.Num
	case ID, STRING:
		return t.Text == o.Text
	case CHAR:
		return t.Ch == o.Ch
	default:
		return true
	}
}

func (t Token) String() string {
	switch t.Kind {
	case NUMBER:
		return fmt.Sprintf("%s(%d)", t.Kind, t.Num)
	case ID, STRING:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Text)
	case CHAR:
		return fmt.Sprintf("%s(%q)", t.Kind, t.Ch)
	default:
		return t.Kind.String()
	}
}

// New builds a payload-less token (keywords, operators, structural markers) at a position.
func New(kind Kind, line, column int) Token {
	return Token{Kind: kind, Line: line, Column: column}
}

// NewNumber builds a NUMBER token.
func NewNumber(n int64, line, column int) Token {
	return Token{Kind: NUMBER, Num: n, Line: line, Column: column}
}

// NewID builds an ID token.
func NewID(text string, line, column int) Token {
	return Token{Kind: ID, Text: text, Line: line, Column: column}
}

// NewString builds a STRING token.
func NewString(text string, line, column int) Token {
	return Token{Kind: STRING, Text: text, Line: line, Column: column}
}

// NewChar builds a CHAR token for a single punctuation mark.
func NewChar(ch rune, line, column int) Token {
	return Token{Kind: CHAR, Ch: ch, Line: line, Column: column}
}
