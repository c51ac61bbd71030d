package parser

import (
	"sysyc/internal/ast"
	"sysyc/internal/token"
)

func (p *Parser) parseFuncDefTail(returnType ast.Type, name string) *ast.FuncDef {
	pos := p.funcStartPos()

	p.consume(token.LPAREN, "expected '(' after function name")
	var params []*ast.FuncParam
	if !p.check(token.RPAREN) {
		params = append(params, p.parseFuncParam())
		for p.match(token.COMMA) {
			params = append(params, p.parseFuncParam())
		}
	}
	p.consume(token.RPAREN, "expected ')' after parameters")

	body := p.parseBlock()

	return &ast.FuncDef{
		Pos:        pos,
		EndPos:     body.NodeEndPos(),
		Name:       name,
		ReturnType: returnType,
		Params:     params,
		Body:       body,
	}
}

// funcStartPos recovers the position of the return-type keyword: it is two
// tokens behind the current position (type, name) at the point parseCompUnitItem
// hands off to us; callers always invoke this immediately after consuming
// "<type> <name>".
func (p *Parser) funcStartPos() ast.Position {
	idx := p.current - 2
	if idx < 0 {
		idx = 0
	}
	return p.makePos(p.tokens[idx])
}

func (p *Parser) parseFuncParam() *ast.FuncParam {
	start := p.peek()
	baseType, ok := p.parseBaseType()
	if !ok {
		p.errorAtCurrent("expected parameter type")
		baseType = ast.TypeInt
	}
	name, _ := p.consumeIdent("expected parameter name")
	return &ast.FuncParam{
		Pos:    p.makePos(start),
		EndPos: p.makeEndPos(p.previous()),
		Name:   name,
		Type:   baseType,
	}
}

func (p *Parser) parseBlock() *ast.Block {
	start := p.consume(token.LBRACE, "expected '{' to start block")
	block := &ast.Block{Pos: p.makePos(start)}

	for !p.check(token.RBRACE) && !p.isAtEnd() {
		item := p.parseBlockItem()
		if item != nil {
			block.Items = append(block.Items, item)
		} else {
			p.synchronize()
		}
	}

	end := p.consume(token.RBRACE, "expected '}' to close block")
	block.EndPos = p.makeEndPos(end)
	return block
}

func (p *Parser) parseBlockItem() ast.BlockItem {
	if p.check(token.KW_INT) || p.check(token.KW_VOID) || p.check(token.KW_CONST) {
		return p.parseLocalDecl()
	}
	return p.parseStmt()
}

// parseStmt parses any statement, including an if with or without an else.
// It is the single entry point for statements; an if parsed here takes a
// directly following "else" for itself (see parseIfStmt).
func (p *Parser) parseStmt() ast.Stmt {
	switch {
	case p.check(token.LBRACE):
		return p.parseBlock()
	case p.check(token.SEMI):
		start := p.advance()
		return &ast.EmptyStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(start)}
	case p.check(token.KW_IF):
		return p.parseIfStmt()
	case p.check(token.KW_WHILE):
		return p.parseWhileStmt()
	case p.check(token.KW_BREAK):
		start := p.advance()
		end := p.consume(token.SEMI, "expected ';' after 'break'")
		return &ast.BreakStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}
	case p.check(token.KW_CONTINUE):
		start := p.advance()
		end := p.consume(token.SEMI, "expected ';' after 'continue'")
		return &ast.ContinueStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end)}
	case p.check(token.KW_RETURN):
		return p.parseReturnStmt()
	default:
		return p.parseSimpleStmt()
	}
}

// parseIfStmt resolves dangling-else without a separate open/closed statement
// grammar: it greedily attaches a trailing "else" to the innermost "if", by always recursing into
// parseStmt (which itself recurses into parseIfStmt) for both branches.
// Because an unmatched nested if always consumes the immediately following
// "else" before control returns to an outer if, "else" binds to the nearest
// unmatched "if" — exactly the resolution requires.
func (p *Parser) parseIfStmt() *ast.IfStmt {
	start := p.consume(token.KW_IF, "expected 'if'")
	p.consume(token.LPAREN, "expected '(' after 'if'")
	cond := p.parseExpr()
	p.consume(token.RPAREN, "expected ')' after if condition")

	then := p.parseStmt()
	stmt := &ast.IfStmt{Pos: p.makePos(start), EndPos: then.NodeEndPos(), Cond: cond, Then: then}

	if p.match(token.KW_ELSE) {
		elseStmt := p.parseStmt()
		stmt.Else = elseStmt
		stmt.EndPos = elseStmt.NodeEndPos()
	}
	return stmt
}

func (p *Parser) parseWhileStmt() *ast.WhileStmt {
	start := p.consume(token.KW_WHILE, "expected 'while'")
	p.consume(token.LPAREN, "expected '(' after 'while'")
	cond := p.parseExpr()
	p.consume(token.RPAREN, "expected ')' after while condition")
	body := p.parseStmt()
	return &ast.WhileStmt{Pos: p.makePos(start), EndPos: body.NodeEndPos(), Cond: cond, Body: body}
}

func (p *Parser) parseReturnStmt() *ast.ReturnStmt {
	start := p.consume(token.KW_RETURN, "expected 'return'")
	if p.match(token.SEMI) {
		return &ast.ReturnStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(p.previous())}
	}
	value := p.parseExpr()
	end := p.consume(token.SEMI, "expected ';' after return value")
	return &ast.ReturnStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end), Value: value}
}

// parseSimpleStmt disambiguates "ident = expr;" (assignment) from a bare
// expression statement by speculatively parsing an expression first: an
// assignment's LHS is always a plain identifier, so we only need one token of
// lookahead after the primary expression.
func (p *Parser) parseSimpleStmt() ast.Stmt {
	start := p.peek()
	expr := p.parseExpr()

	if ident, ok := expr.(*ast.IdentExpr); ok && p.match(token.ASSIGN) {
		ident.IsLeft = true
		rhs := p.parseExpr()
		end := p.consume(token.SEMI, "expected ';' after assignment")
		return &ast.AssignStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end), LHS: ident, RHS: rhs}
	}

	end := p.consume(token.SEMI, "expected ';' after expression")
	return &ast.ExprStmt{Pos: p.makePos(start), EndPos: p.makeEndPos(end), X: expr}
}
