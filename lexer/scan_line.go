// ==============================================================================================
// FILE: lexer/scan_line.go
// ==============================================================================================
// PURPOSE: Tokenizes the content of one logical line (the part after its leading indentation).
//          Implements the single-token recognition priority order from spec §4.1.
// ==============================================================================================

package lexer

import (
	"strconv"
	"strings"
	"unicode"

	"mython/token"
)

// singlePunct is the fixed set of one-character operator/delimiter tokens (spec §4.1 rule 3).
const singlePunct = "<>=+-*/().,:"

// lineScanner walks one line's runes, tracking a 1-based column for error reporting.
type lineScanner struct {
	runes []rune
	pos   int
	line  int
	col   int
}

func newLineScanner(s string, line, startCol int) *lineScanner {
	return &lineScanner{runes: []rune(s), line: line, col: startCol}
}

func (s *lineScanner) atEnd() bool { return s.pos >= len(s.runes) }

func (s *lineScanner) peek() rune {
	if s.atEnd() {
		return 0
	}
	return s.runes[s.pos]
}

func (s *lineScanner) peekAt(offset int) rune {
	if s.pos+offset >= len(s.runes) {
		return 0
	}
	return s.runes[s.pos+offset]
}

func (s *lineScanner) advance() rune {
	r := s.runes[s.pos]
	s.pos++
	s.col++
	return r
}

// scanLine tokenizes the rest of a logical line. startCol is the 1-based column of rest[0].
func scanLine(rest string, line, startCol int) ([]token.Token, error) {
	s := newLineScanner(rest, line, startCol)
	var tokens []token.Token

	for !s.atEnd() {
		ch := s.peek()

		switch {
		case ch == ' ' || ch == '\t':
			s.advance()

		case ch == '#':
			return tokens, nil

		case ch == '"' || ch == '\'':
			tok, err := s.readString()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)

		case unicode.IsDigit(ch):
			tokens = append(tokens, s.readNumber())

		case isIdentStart(ch):
			tokens = append(tokens, s.readIdentifierOrKeyword())

		case ch == '=':
			tokens = append(tokens, s.readOneOrTwo('=', token.EQ))

		case ch == '!':
			line, col := s.line, s.col
			s.advance()
			if s.peek() != '=' {
				return nil, newError(line, col, "unrecognized character %q", '!')
			}
			s.advance()
			tokens = append(tokens, token.New(token.NOTEQ, line, col))

		case ch == '<':
			tokens = append(tokens, s.readOneOrTwo('<', token.LESSOREQ))

		case ch == '>':
			tokens = append(tokens, s.readOneOrTwo('>', token.GREATOREQ))

		case strings.ContainsRune(singlePunct, ch):
			line, col := s.line, s.col
			s.advance()
			tokens = append(tokens, token.NewChar(ch, line, col))

		default:
			return nil, newError(s.line, s.col, "unrecognized character %q", ch)
		}
	}

	return tokens, nil
}

// readOneOrTwo handles the '=', '<', '>' dispatch: each either stands alone as a single-char
// punctuation token or combines with a following '=' into a two-char comparison token.
func (s *lineScanner) readOneOrTwo(ch rune, twoCharKind token.Kind) token.Token {
	line, col := s.line, s.col
	s.advance()
	if s.peek() == '=' {
		s.advance()
		return token.New(twoCharKind, line, col)
	}
	return token.NewChar(ch, line, col)
}

func isIdentStart(ch rune) bool {
	return unicode.IsLetter(ch) || ch == '_'
}

func isIdentCont(ch rune) bool {
	return unicode.IsLetter(ch) || unicode.IsDigit(ch) || ch == '_'
}

func (s *lineScanner) readIdentifierOrKeyword() token.Token {
	line, col := s.line, s.col
	var b strings.Builder
	for !s.atEnd() && isIdentCont(s.peek()) {
		b.WriteRune(s.advance())
	}
	text := b.String()
	if kind, ok := token.LookupKeyword(text); ok {
		// Maximal-munch identifier scanning already guarantees the boundary rule from spec
		// §4.1 rule 1 (e.g. "None_" is scanned whole, so it never reaches this branch as "None").
		return token.New(kind, line, col)
	}
	return token.NewID(text, line, col)
}

func (s *lineScanner) readNumber() token.Token {
	line, col := s.line, s.col
	var b strings.Builder
	for !s.atEnd() && unicode.IsDigit(s.peek()) {
		b.WriteRune(s.advance())
	}
	n, _ := strconv.ParseInt(b.String(), 10, 64)
	return token.NewNumber(n, line, col)
}

// escapes maps a recognized escape character to the rune it produces (spec §4.1 rule 5).
var escapes = map[rune]rune{
	'n': '\n', 't': '\t', '"': '"', '\'': '\'', '\\': '\\',
}

func (s *lineScanner) readString() (token.Token, error) {
	line, col := s.line, s.col
	quote := s.advance()
	var b strings.Builder
	for {
		if s.atEnd() {
			return token.Token{}, newError(line, col, "unterminated string literal")
		}
		ch := s.advance()
		if ch == quote {
			return token.NewString(b.String(), line, col), nil
		}
		if ch == '\\' {
			if s.atEnd() {
				return token.Token{}, newError(line, col, "unterminated string literal")
			}
			esc := s.advance()
			if mapped, ok := escapes[esc]; ok {
				b.WriteRune(mapped)
			} else {
				// Open Question resolution (spec §9): unrecognized escapes emit the
				// character after the backslash literally.
				b.WriteRune(esc)
			}
			continue
		}
		b.WriteRune(ch)
	}
}
