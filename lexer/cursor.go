// ==============================================================================================
// FILE: lexer/cursor.go
// ==============================================================================================
// PURPOSE: Wraps a materialized token stream with the Current/Next/Expect/ExpectNext surface
//          spec §4.1 gives the parser to consume. Grounded on the teacher parser's
//          curToken/peekToken/expectPeek trio, generalized into a standalone cursor since the
//          spec assigns this responsibility to the lexer's output, not the parser itself.
// ==============================================================================================

package lexer

import "mython/token"

// Cursor addresses a fixed token slice with a single read position. Next is sticky at EOF: once
// the cursor reaches the terminal token, repeated calls keep returning it without advancing.
type Cursor struct {
	tokens []token.Token
	pos    int
}

// NewCursor wraps an already-tokenized stream. The stream must end in an EOF token.
func NewCursor(tokens []token.Token) *Cursor {
	return &Cursor{tokens: tokens}
}

// Current returns the token at the cursor's position without advancing.
func (c *Cursor) Current() token.Token {
	return c.tokens[c.pos]
}

// Peek returns the token one past the cursor's position, or EOF if none remains.
func (c *Cursor) Peek() token.Token {
	if c.pos+1 >= len(c.tokens) {
		return c.tokens[len(c.tokens)-1]
	}
	return c.tokens[c.pos+1]
}

// Next advances the cursor and returns the new current token. Sticky at EOF.
func (c *Cursor) Next() token.Token {
	if c.tokens[c.pos].Kind != token.EOF {
		c.pos++
	}
	return c.Current()
}

// Expect asserts the current token's kind, failing with a lexer Error otherwise.
func (c *Cursor) Expect(kind token.Kind) error {
	cur := c.Current()
	if cur.Kind != kind {
		return newError(cur.Line, cur.Column, "expected %s, got %s", kind, cur.Kind)
	}
	return nil
}

// ExpectText asserts the current token's kind and, for ID/STRING tokens, its literal text.
func (c *Cursor) ExpectText(kind token.Kind, text string) error {
	if err := c.Expect(kind); err != nil {
		return err
	}
	cur := c.Current()
	if cur.Text != text {
		return newError(cur.Line, cur.Column, "expected %s %q, got %q", kind, text, cur.Text)
	}
	return nil
}

// ExpectNext asserts the kind of the token one past the current position, without consuming it.
func (c *Cursor) ExpectNext(kind token.Kind) error {
	nxt := c.Peek()
	if nxt.Kind != kind {
		return newError(nxt.Line, nxt.Column, "expected %s, got %s", kind, nxt.Kind)
	}
	return nil
}
