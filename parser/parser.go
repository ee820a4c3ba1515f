package parser

import (
	"fmt"
	"strconv"

	"github.com/lll-lang/lll/lexer"
)

// Error is a parse failure carrying the line and column of the offending
// token; the message names that token. The file name is not recorded in
// Error, and Error() renders only "message at LINE:COLUMN".
type Error struct {
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %d:%d", e.Message, e.Line, e.Column)
}

// Parser is a recursive-descent parser with a Pratt-style precedence climb
// for expressions, grounded on the teacher's two-token-lookahead shape
// (CurrToken/NextToken, advance/expectAdvance/addError), adapted to LLL's
// grammar (no visitor interface, no constant-folding — see DESIGN.md).
type Parser struct {
	file   string
	tokens []lexer.Token
	pos    int
	errors []*Error
}

func New(tokens []lexer.Token, file string) *Parser {
	return &Parser{file: file, tokens: tokens, pos: 0}
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() lexer.Token {
	t := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return t
}

func (p *Parser) addError(format string, args ...interface{}) {
	c := p.cur()
	p.errors = append(p.errors, &Error{
		Message: fmt.Sprintf(format, args...),
		Line:    c.Line,
		Column:  c.Column,
	})
}

// expect consumes the current token if it has type tt, else records a
// positioned error and returns the zero Token.
func (p *Parser) expect(tt lexer.Type) lexer.Token {
	if p.cur().Type == tt {
		return p.advance()
	}
	p.addError("expected %s but got %s (%q)", tt, p.cur().Type, p.cur().Literal)
	return lexer.Token{}
}

func (p *Parser) HasErrors() bool    { return len(p.errors) > 0 }
func (p *Parser) Errors() []*Error   { return p.errors }

func (p *Parser) skipNewlines() {
	for p.cur().Type == lexer.NEWLINE_TYPE {
		p.advance()
	}
}

// ParseProgram parses the full token stream into a Program, stopping at the
// first error (one coherent failure, not cascades).
func (p *Parser) ParseProgram() (*Program, *Error) {
	prog := &Program{}
	p.skipNewlines()
	for p.cur().Type != lexer.EOF_TYPE {
		stmt := p.parseStatement()
		if p.HasErrors() {
			return nil, p.errors[0]
		}
		if stmt != nil {
			prog.Statements = append(prog.Statements, stmt)
		}
		p.skipNewlines()
	}
	return prog, nil
}

func (p *Parser) parseStatement() Statement {
	switch p.cur().Type {
	case lexer.LET_KEY:
		return p.parseLet()
	case lexer.CONST_KEY:
		return p.parseConst()
	case lexer.IF_KEY:
		return p.parseIf()
	case lexer.WHILE_KEY:
		return p.parseWhile()
	case lexer.FOR_KEY:
		return p.parseFor()
	case lexer.FUNC_KEY:
		return p.parseFuncDecl()
	case lexer.RETURN_KEY:
		return p.parseReturn()
	case lexer.BREAK_KEY:
		pos := p.position()
		p.advance()
		return &BreakStatement{Position: pos}
	case lexer.CONTINUE_KEY:
		pos := p.position()
		p.advance()
		return &ContinueStatement{Position: pos}
	case lexer.IMPORT_KEY:
		return p.parseImport()
	case lexer.TRY_KEY:
		return p.parseTry()
	case lexer.IDENTIFIER_ID:
		return p.parseIdentifierLedStatement()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) position() Position {
	c := p.cur()
	return Position{Line: c.Line, Column: c.Column}
}

// parseOptionalTypeAnnotation consumes `: ident` if present and returns the
// annotation text, parsed but never used by the evaluator.
func (p *Parser) parseOptionalTypeAnnotation() string {
	if p.cur().Type == lexer.COLON_DELIM {
		p.advance()
		tok := p.expect(lexer.IDENTIFIER_ID)
		return tok.Literal
	}
	return ""
}

func (p *Parser) parseLet() Statement {
	pos := p.position()
	p.advance() // 'let'
	name := p.expect(lexer.IDENTIFIER_ID).Literal
	typ := p.parseOptionalTypeAnnotation()
	var value Expression
	if p.cur().Type == lexer.ASSIGN {
		p.advance()
		value = p.parseExpression(precOr)
	}
	return &LetStatement{Position: pos, Name: name, TypeAnnotation: typ, Value: value}
}

func (p *Parser) parseConst() Statement {
	pos := p.position()
	p.advance() // 'const'
	name := p.expect(lexer.IDENTIFIER_ID).Literal
	typ := p.parseOptionalTypeAnnotation()
	p.expect(lexer.ASSIGN)
	value := p.parseExpression(precOr)
	return &ConstStatement{Position: pos, Name: name, TypeAnnotation: typ, Value: value}
}

// parseIdentifierLedStatement resolves the assign / idx_assign / expression
// ambiguity via speculative parsing (spec.md §4.2).
func (p *Parser) parseIdentifierLedStatement() Statement {
	pos := p.position()

	if p.peek().Type == lexer.ASSIGN {
		name := p.advance().Literal // identifier
		p.advance()                 // '='
		value := p.parseExpression(precOr)
		return &AssignStatement{Position: pos, Name: name, Value: value}
	}

	if p.peek().Type == lexer.LEFT_BRACKET {
		save := p.pos
		name := p.advance().Literal // identifier
		p.advance()                 // '['
		index := p.parseExpression(precOr)
		p.expect(lexer.RIGHT_BRACKET)
		if !p.HasErrors() && p.cur().Type == lexer.ASSIGN {
			p.advance() // '='
			value := p.parseExpression(precOr)
			return &IndexAssignStatement{Position: pos, Name: name, Index: index, Value: value}
		}
		// Not an index-assignment: rewind and reparse as an expression.
		p.pos = save
		p.errors = nil
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseExpressionStatement() Statement {
	pos := p.position()
	expr := p.parseExpression(precOr)
	return &ExpressionStatement{Position: pos, Expr: expr}
}

// parseBlock reads statements until the current token's type is one of
// stop, or EOF, skipping newlines between statements.
func (p *Parser) parseBlock(stop ...lexer.Type) []Statement {
	var stmts []Statement
	p.skipNewlines()
	for {
		if p.cur().Type == lexer.EOF_TYPE {
			p.addError("unexpected end of input, expected one of %v", stop)
			return stmts
		}
		if containsType(stop, p.cur().Type) {
			return stmts
		}
		stmt := p.parseStatement()
		if p.HasErrors() {
			return stmts
		}
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		p.skipNewlines()
	}
}

func containsType(types []lexer.Type, t lexer.Type) bool {
	for _, tt := range types {
		if tt == t {
			return true
		}
	}
	return false
}

func (p *Parser) parseIf() Statement {
	pos := p.position()
	p.advance() // 'if'

	var branches []IfBranch
	cond := p.parseExpression(precOr)
	p.expect(lexer.THEN_KEY)
	body := p.parseBlock(lexer.ELSE_KEY, lexer.END_KEY)
	branches = append(branches, IfBranch{Condition: cond, Body: body})

	var elseBody []Statement
	for p.cur().Type == lexer.ELSE_KEY {
		p.advance() // 'else'
		if p.cur().Type == lexer.IF_KEY {
			p.advance() // 'if'
			elCond := p.parseExpression(precOr)
			p.expect(lexer.THEN_KEY)
			elBody := p.parseBlock(lexer.ELSE_KEY, lexer.END_KEY)
			branches = append(branches, IfBranch{Condition: elCond, Body: elBody})
			continue
		}
		elseBody = p.parseBlock(lexer.END_KEY)
		break
	}

	p.expect(lexer.END_KEY)
	return &IfStatement{Position: pos, Branches: branches, Else: elseBody}
}

func (p *Parser) parseWhile() Statement {
	pos := p.position()
	p.advance() // 'while'
	cond := p.parseExpression(precOr)
	p.expect(lexer.DO_KEY)
	body := p.parseBlock(lexer.END_KEY)
	p.expect(lexer.END_KEY)
	return &WhileStatement{Position: pos, Condition: cond, Body: body}
}

func (p *Parser) parseFor() Statement {
	pos := p.position()
	p.advance() // 'for'
	name := p.expect(lexer.IDENTIFIER_ID).Literal
	p.expect(lexer.IN_KEY)
	iterable := p.parseExpression(precOr)
	p.expect(lexer.DO_KEY)
	body := p.parseBlock(lexer.END_KEY)
	p.expect(lexer.END_KEY)
	return &ForInStatement{Position: pos, Var: name, Iterable: iterable, Body: body}
}

func (p *Parser) parseFuncDecl() Statement {
	pos := p.position()
	p.advance() // 'func'
	name := p.expect(lexer.IDENTIFIER_ID).Literal
	p.expect(lexer.LEFT_PAREN)

	var params []Param
	for p.cur().Type != lexer.RIGHT_PAREN && p.cur().Type != lexer.EOF_TYPE {
		pname := p.expect(lexer.IDENTIFIER_ID).Literal
		ptype := p.parseOptionalTypeAnnotation()
		params = append(params, Param{Name: pname, Type: ptype})
		if p.cur().Type == lexer.COMMA_DELIM {
			p.advance()
		} else {
			break
		}
	}
	p.expect(lexer.RIGHT_PAREN)
	retType := p.parseOptionalTypeAnnotation()

	body := p.parseBlock(lexer.END_KEY)
	p.expect(lexer.END_KEY)
	return &FuncDeclStatement{Position: pos, Name: name, Params: params, ReturnType: retType, Body: body}
}

func (p *Parser) parseReturn() Statement {
	pos := p.position()
	p.advance() // 'return'
	var value Expression
	switch p.cur().Type {
	case lexer.NEWLINE_TYPE, lexer.EOF_TYPE, lexer.END_KEY, lexer.ELSE_KEY, lexer.CATCH_KEY:
		// no value
	default:
		value = p.parseExpression(precOr)
	}
	return &ReturnStatement{Position: pos, Value: value}
}

func (p *Parser) parseImport() Statement {
	pos := p.position()
	p.advance() // 'import'
	tok := p.expect(lexer.STRING_LIT)
	return &ImportStatement{Position: pos, Path: tok.Literal}
}

func (p *Parser) parseTry() Statement {
	pos := p.position()
	p.advance() // 'try'
	body := p.parseBlock(lexer.CATCH_KEY)
	p.expect(lexer.CATCH_KEY)
	catchVar := p.expect(lexer.IDENTIFIER_ID).Literal
	catchBody := p.parseBlock(lexer.END_KEY)
	p.expect(lexer.END_KEY)
	return &TryStatement{Position: pos, Body: body, CatchVar: catchVar, CatchBody: catchBody}
}

// --- Expression parsing: Pratt-style precedence climb -------------------

const (
	precOr = 1 + iota
	precAnd
	precEquality
	precComparison
	precAdditive
	precMultiplicative
	precPower
)

// binaryPrecedence maps a binary operator token to (precedence,
// right-associative?), implementing spec.md §4.2's 9-level table for
// levels 1-7 (levels 8-9, unary and primary, are handled outside the climb).
func binaryPrecedence(tt lexer.Type) (int, bool, bool) {
	switch tt {
	case lexer.OR_KEY:
		return precOr, false, true
	case lexer.AND_KEY:
		return precAnd, false, true
	case lexer.EQ_OP, lexer.NE_OP:
		return precEquality, false, true
	case lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return precComparison, false, true
	case lexer.PLUS_OP, lexer.MINUS_OP:
		return precAdditive, false, true
	case lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		return precMultiplicative, false, true
	case lexer.POW_OP:
		return precPower, true, true
	default:
		return 0, false, false
	}
}

func (p *Parser) parseExpression(minPrec int) Expression {
	left := p.parseUnary()

	for {
		prec, rightAssoc, ok := binaryPrecedence(p.cur().Type)
		if !ok || prec < minPrec {
			break
		}
		opTok := p.advance()
		nextMin := prec + 1
		if rightAssoc {
			nextMin = prec
		}
		right := p.parseExpression(nextMin)
		left = &BinaryExpression{
			Position: Position{Line: opTok.Line, Column: opTok.Column},
			Op:       string(opTok.Type),
			Left:     left,
			Right:    right,
		}
	}
	return left
}

// parseUnary handles precedence level 8 (`-`, `not`), recursing on itself
// so stacked unary operators ("not not x") compose; anything else falls
// through to the primary/postfix level 9.
func (p *Parser) parseUnary() Expression {
	if p.cur().Type == lexer.MINUS_OP || p.cur().Type == lexer.NOT_KEY {
		opTok := p.advance()
		operand := p.parseUnary()
		return &UnaryExpression{
			Position: Position{Line: opTok.Line, Column: opTok.Column},
			Op:       string(opTok.Type),
			Operand:  operand,
		}
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary expression and then any chain of trailing
// `[index]` operators (spec.md: "chains of […] are permitted").
func (p *Parser) parsePostfix() Expression {
	expr := p.parsePrimary()
	for p.cur().Type == lexer.LEFT_BRACKET {
		pos := p.position()
		p.advance() // '['
		index := p.parseExpression(precOr)
		p.expect(lexer.RIGHT_BRACKET)
		expr = &IndexExpression{Position: pos, Target: expr, Index: index}
	}
	return expr
}

func (p *Parser) parsePrimary() Expression {
	tok := p.cur()
	pos := Position{Line: tok.Line, Column: tok.Column}

	switch tok.Type {
	case lexer.NUMBER_LIT:
		p.advance()
		val, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.errors = append(p.errors, &Error{Message: "invalid number literal " + tok.Literal, Line: tok.Line, Column: tok.Column})
			return &NumberLiteral{Position: pos}
		}
		return &NumberLiteral{Position: pos, Value: val, IsFloat: tok.IsFloat}

	case lexer.STRING_LIT:
		p.advance()
		return &StringLiteral{Position: pos, Value: tok.Literal}

	case lexer.TRUE_KEY:
		p.advance()
		return &BooleanLiteral{Position: pos, Value: true}

	case lexer.FALSE_KEY:
		p.advance()
		return &BooleanLiteral{Position: pos, Value: false}

	case lexer.NIL_KEY:
		p.advance()
		return &NilLiteral{Position: pos}

	case lexer.LEFT_PAREN:
		p.advance()
		expr := p.parseExpression(precOr)
		p.expect(lexer.RIGHT_PAREN)
		return expr

	case lexer.LEFT_BRACKET:
		p.advance()
		var elements []Expression
		for p.cur().Type != lexer.RIGHT_BRACKET && p.cur().Type != lexer.EOF_TYPE {
			elements = append(elements, p.parseExpression(precOr))
			if p.cur().Type == lexer.COMMA_DELIM {
				p.advance()
			} else {
				break
			}
		}
		p.expect(lexer.RIGHT_BRACKET)
		return &ArrayLiteral{Position: pos, Elements: elements}

	case lexer.IDENTIFIER_ID:
		p.advance()
		if p.cur().Type == lexer.LEFT_PAREN {
			return p.parseCallArgs(tok.Literal, pos)
		}
		return &Identifier{Position: pos, Name: tok.Literal}

	default:
		p.addError("unexpected token %s (%q)", tok.Type, tok.Literal)
		p.advance()
		return &NilLiteral{Position: pos}
	}
}

// parseCallArgs parses the `(args)` following a call-position identifier.
// Trailing commas are not supported (spec.md §4.2).
func (p *Parser) parseCallArgs(name string, pos Position) Expression {
	p.advance() // '('
	var args []Expression
	for p.cur().Type != lexer.RIGHT_PAREN && p.cur().Type != lexer.EOF_TYPE {
		args = append(args, p.parseExpression(precOr))
		if p.cur().Type == lexer.COMMA_DELIM {
			p.advance()
			if p.cur().Type == lexer.RIGHT_PAREN {
				p.addError("trailing comma in argument list")
			}
		} else {
			break
		}
	}
	p.expect(lexer.RIGHT_PAREN)
	return &CallExpression{Position: pos, Name: name, Args: args}
}
