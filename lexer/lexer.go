// ==============================================================================================
// FILE: lexer/lexer.go
// ==============================================================================================
// PACKAGE: lexer
// PURPOSE: Turns Mython source into a materialized token stream, synthesizing INDENT/DEDENT/
//          NEWLINE markers from leading whitespace the way Python's tokenizer does.
// ==============================================================================================

package lexer

import (
	"strings"

	"mython/token"
)

// Lexer scans one complete source unit. Unlike a classic single-char-lookahead scanner it works
// a physical line at a time, since indentation decisions (spec §4.1) need the whole line's
// leading whitespace before any token on it can be emitted.
type Lexer struct {
	input string
}

// New creates a Lexer over the given source text.
func New(input string) *Lexer {
	return &Lexer{input: input}
}

// Tokenize scans the entire input and returns the token stream, terminated by EOF.
func (l *Lexer) Tokenize() ([]token.Token, error) {
	var tokens []token.Token
	level := 0
	lineNo := 0

	lines := strings.Split(l.input, "\n")
	for _, raw := range lines {
		lineNo++

		width := 0
		for width < len(raw) && raw[width] == ' ' {
			width++
		}

		// Step 1 (spec §4.1): indent width must be even, checked before we even know whether
		// this is a blank/comment line.
		if width%2 != 0 {
			return nil, newError(lineNo, width+1, "indentation must be a multiple of two spaces")
		}

		rest := raw[width:]
		if rest == "" || strings.HasPrefix(rest, "#") {
			// Blank or comment-only line: no tokens, no NEWLINE, indent state unchanged.
			continue
		}

		newLevel := width / 2
		switch {
		case newLevel > level:
			for i := 0; i < newLevel-level; i++ {
				tokens = append(tokens, token.New(token.INDENT, lineNo, 1))
			}
		case newLevel < level:
			for i := 0; i < level-newLevel; i++ {
				tokens = append(tokens, token.New(token.DEDENT, lineNo, 1))
			}
		}
		level = newLevel

		lineTokens, err := scanLine(rest, lineNo, width+1)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, lineTokens...)
		tokens = append(tokens, token.New(token.NEWLINE, lineNo, len(raw)+1))
	}

	for i := 0; i < level; i++ {
		tokens = append(tokens, token.New(token.DEDENT, lineNo+1, 1))
	}
	tokens = append(tokens, token.New(token.EOF, lineNo+1, 1))
	return tokens, nil
}
