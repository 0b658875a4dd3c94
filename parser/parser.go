// ==============================================================================================
// FILE: parser/parser.go
// ==============================================================================================
// PACKAGE: parser
// PURPOSE: Recursive-descent parser with Pratt-style precedence climbing for expressions,
//          turning a materialized token stream into an ast.Program. Grounded on the teacher
//          parser's prefixParseFns/infixParseFns table and precedence-climbing parseExpression
//          loop (parser/parser.go), adapted to read from lexer.Cursor instead of calling
//          NextToken() one at a time, and to close blocks on a DEDENT token instead of an END
//          keyword.
// ==============================================================================================

package parser

import (
	"fmt"
	"strings"

	"mython/ast"
	"mython/lexer"
	"mython/token"
)

// Precedence levels, lowest to highest binding.
const (
	_ int = iota
	LOWEST
	OR_PREC
	AND_PREC
	COMPARE_PREC
	SUM_PREC
	PRODUCT_PREC
)

func precedenceOf(tok token.Token) int {
	switch tok.Kind {
	case token.OR:
		return OR_PREC
	case token.AND:
		return AND_PREC
	case token.EQ, token.NOTEQ, token.LESSOREQ, token.GREATOREQ:
		return COMPARE_PREC
	case token.CHAR:
		switch tok.Ch {
		case '<', '>':
			return COMPARE_PREC
		case '+', '-':
			return SUM_PREC
		case '*', '/':
			return PRODUCT_PREC
		}
	}
	return LOWEST
}

// Parser turns a lexer.Cursor into an ast.Program.
type Parser struct {
	cur    *lexer.Cursor
	errors []string
}

// New wraps an already-tokenized cursor.
func New(cur *lexer.Cursor) *Parser {
	return &Parser{cur: cur}
}

// Parse lexes and parses a complete Mython source file.
func Parse(input string) (*ast.Program, error) {
	l := lexer.New(input)
	toks, err := l.Tokenize()
	if err != nil {
		return nil, err
	}
	p := New(lexer.NewCursor(toks))
	program := p.ParseProgram()
	if len(p.errors) > 0 {
		return nil, fmt.Errorf("parse error: %s", strings.Join(p.errors, "; "))
	}
	return program, nil
}

// Errors returns every syntax error accumulated while parsing.
func (p *Parser) Errors() []string { return p.errors }

func (p *Parser) errorf(format string, args ...any) {
	tok := p.cur.Current()
	msg := fmt.Sprintf("line %d:%d: %s", tok.Line, tok.Column, fmt.Sprintf(format, args...))
	p.errors = append(p.errors, msg)
}

func (p *Parser) at(k token.Kind) bool { return p.cur.Current().Kind == k }

func (p *Parser) atChar(ch rune) bool {
	cur := p.cur.Current()
	return cur.Kind == token.CHAR && cur.Ch == ch
}

// consume asserts the current token's kind, records an error and returns the zero Token if it
// doesn't match, and otherwise advances past it.
func (p *Parser) consume(k token.Kind) token.Token {
	cur := p.cur.Current()
	if cur.Kind != k {
		p.errorf("expected %s, got %s", k, cur.Kind)
		return token.Token{}
	}
	p.cur.Next()
	return cur
}

// consumeChar is consume specialized for single-punctuation CHAR tokens.
func (p *Parser) consumeChar(ch rune) {
	if !p.atChar(ch) {
		p.errorf("expected %q, got %s", ch, p.cur.Current())
		return
	}
	p.cur.Next()
}

// ParseProgram parses a whole file: a flat sequence of top-level statements.
func (p *Parser) ParseProgram() *ast.Program {
	program := &ast.Program{}
	for !p.at(token.EOF) && len(p.errors) == 0 {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
	}
	return program
}

// parseBlock parses NEWLINE INDENT stmt+ DEDENT — the body of an if/else clause or method.
func (p *Parser) parseBlock() *ast.Compound {
	p.consume(token.NEWLINE)
	p.consume(token.INDENT)
	block := &ast.Compound{}
	for !p.at(token.DEDENT) && !p.at(token.EOF) && len(p.errors) == 0 {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	p.consume(token.DEDENT)
	return block
}

func (p *Parser) parseStatement() ast.Statement {
	switch p.cur.Current().Kind {
	case token.CLASS:
		return p.parseClassDefinition()
	case token.IF:
		return p.parseIfElse()
	case token.RETURN:
		return p.parseReturn()
	case token.PRINT:
		return p.parsePrint()
	default:
		return p.parseSimpleStatement()
	}
}

func (p *Parser) parseClassDefinition() ast.Statement {
	p.consume(token.CLASS)
	name := p.consume(token.ID).Text

	parent := ""
	if p.atChar('(') {
		p.cur.Next()
		parent = p.consume(token.ID).Text
		p.consumeChar(')')
	}
	p.consumeChar(':')
	p.consume(token.NEWLINE)
	p.consume(token.INDENT)

	var methods []*ast.MethodDecl
	for !p.at(token.DEDENT) && !p.at(token.EOF) && len(p.errors) == 0 {
		methods = append(methods, p.parseMethodDecl())
	}
	p.consume(token.DEDENT)

	return &ast.ClassDefinition{Name: name, Parent: parent, Methods: methods}
}

// parseMethodDecl parses "def name(self, p1, p2, ...):" — every method is bound, so the first
// declared parameter must be self; it is consumed here but not stored in MethodDecl.Params,
// since eval binds self separately from the declared positional parameters (object.Method.Params
// holds only those, matching how a call site's argument list never includes the receiver).
func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	p.consume(token.DEF)
	name := p.consume(token.ID).Text
	p.consumeChar('(')

	self := p.consume(token.ID)
	if self.Text != "" && self.Text != "self" {
		p.errorf("method %q's first parameter must be self, got %q", name, self.Text)
	}

	var params []string
	for p.atChar(',') {
		p.cur.Next()
		params = append(params, p.consume(token.ID).Text)
	}
	p.consumeChar(')')
	p.consumeChar(':')

	body := p.parseBlock()
	return &ast.MethodDecl{Name: name, Params: params, Body: &ast.MethodBody{Body: body}}
}

func (p *Parser) parseIfElse() ast.Statement {
	p.consume(token.IF)
	cond := p.parseExpression(LOWEST)
	p.consumeChar(':')
	then := p.parseBlock()

	var elseBlock *ast.Compound
	if p.at(token.ELSE) {
		p.cur.Next()
		p.consumeChar(':')
		elseBlock = p.parseBlock()
	}
	return &ast.IfElse{Condition: cond, Then: then, Else: elseBlock}
}

func (p *Parser) parseReturn() ast.Statement {
	p.consume(token.RETURN)
	val := p.parseExpression(LOWEST)
	p.consume(token.NEWLINE)
	return &ast.Return{Value: val}
}

func (p *Parser) parsePrint() ast.Statement {
	p.consume(token.PRINT)
	args := []ast.Expression{p.parseExpression(LOWEST)}
	for p.atChar(',') {
		p.cur.Next()
		args = append(args, p.parseExpression(LOWEST))
	}
	p.consume(token.NEWLINE)
	return &ast.Print{Args: args}
}

// parseSimpleStatement handles assignment, field assignment, and bare expression statements —
// distinguished only after parsing the left-hand expression, since none of them start with a
// unique keyword.
func (p *Parser) parseSimpleStatement() ast.Statement {
	expr := p.parseExpression(LOWEST)

	if p.atChar('=') {
		p.cur.Next()
		rhs := p.parseExpression(LOWEST)
		p.consume(token.NEWLINE)

		v, ok := expr.(*ast.VariableValue)
		if !ok {
			p.errorf("invalid assignment target")
			return nil
		}
		if len(v.Path) == 1 {
			return &ast.Assignment{Name: v.Path[0], Value: rhs}
		}
		return &ast.FieldAssignment{
			Object: &ast.VariableValue{Path: v.Path[:len(v.Path)-1]},
			Field:  v.Path[len(v.Path)-1],
			Value:  rhs,
		}
	}

	p.consume(token.NEWLINE)
	return &ast.ExpressionStatement{Expr: expr}
}

// parseExpression implements precedence climbing: parse one prefix term, then keep folding in
// infix operators whose precedence exceeds the caller's floor.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	left := p.parsePrefix()
	if left == nil {
		return nil
	}

	for precedence < precedenceOf(p.cur.Current()) {
		left = p.parseInfix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

func (p *Parser) parsePrefix() ast.Expression {
	tok := p.cur.Current()
	switch tok.Kind {
	case token.NUMBER:
		p.cur.Next()
		return &ast.NumberLiteral{Value: tok.Num}
	case token.STRING:
		p.cur.Next()
		return &ast.StringLiteral{Value: tok.Text}
	case token.TRUE:
		p.cur.Next()
		return &ast.BoolLiteral{Value: true}
	case token.FALSE:
		p.cur.Next()
		return &ast.BoolLiteral{Value: false}
	case token.NONE:
		p.cur.Next()
		return &ast.NoneLiteral{}
	case token.NOT:
		p.cur.Next()
		right := p.parseExpression(AND_PREC)
		return &ast.PrefixExpression{Operator: "not", Right: right}
	case token.ID:
		return p.parseIdentifierExpression()
	case token.CHAR:
		if tok.Ch == '(' {
			p.cur.Next()
			expr := p.parseExpression(LOWEST)
			p.consumeChar(')')
			return p.parsePostfixChain(expr)
		}
	}
	p.errorf("unexpected token %s in expression", tok)
	return nil
}

// parseIdentifierExpression handles the three things an ID can start: a plain/dotted variable
// reference, a class instantiation (Name immediately followed by '('), and the str() builtin.
func (p *Parser) parseIdentifierExpression() ast.Expression {
	name := p.consume(token.ID).Text

	if name == "str" && p.atChar('(') {
		p.cur.Next()
		arg := p.parseExpression(LOWEST)
		p.consumeChar(')')
		return p.parsePostfixChain(&ast.Stringify{Expr: arg})
	}

	if p.atChar('(') {
		args := p.parseArgList()
		return p.parsePostfixChain(&ast.NewInstance{ClassName: name, Args: args})
	}

	return p.parsePostfixChain(&ast.VariableValue{Path: []string{name}})
}

// parsePostfixChain folds trailing ".field" and ".method(args)" suffixes onto node.
func (p *Parser) parsePostfixChain(node ast.Expression) ast.Expression {
	for p.atChar('.') {
		p.cur.Next()
		member := p.consume(token.ID).Text

		if p.atChar('(') {
			args := p.parseArgList()
			node = &ast.MethodCall{Receiver: node, Method: member, Args: args}
			continue
		}

		v, ok := node.(*ast.VariableValue)
		if !ok {
			p.errorf("cannot access field %q on a call result", member)
			return node
		}
		v.Path = append(v.Path, member)
	}
	return node
}

func (p *Parser) parseArgList() []ast.Expression {
	p.consumeChar('(')
	var args []ast.Expression
	if !p.atChar(')') {
		args = append(args, p.parseExpression(LOWEST))
		for p.atChar(',') {
			p.cur.Next()
			args = append(args, p.parseExpression(LOWEST))
		}
	}
	p.consumeChar(')')
	return args
}

func (p *Parser) parseInfix(left ast.Expression) ast.Expression {
	tok := p.cur.Current()
	var op string
	switch tok.Kind {
	case token.AND:
		op = "and"
	case token.OR:
		op = "or"
	case token.EQ:
		op = "=="
	case token.NOTEQ:
		op = "!="
	case token.LESSOREQ:
		op = "<="
	case token.GREATOREQ:
		op = ">="
	case token.CHAR:
		op = string(tok.Ch)
	default:
		p.errorf("unexpected infix token %s", tok)
		return nil
	}

	precedence := precedenceOf(tok)
	p.cur.Next()
	right := p.parseExpression(precedence)
	return &ast.InfixExpression{Left: left, Operator: op, Right: right}
}
