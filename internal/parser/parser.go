// Package parser implements a hand-written recursive-descent parser (with
// precedence climbing for expressions) over the token stream produced by
// internal/lexer, yielding internal/ast. Dangling-else is resolved by greedy
// attachment: an "else" always binds to the innermost unmatched "if";
// binary operators are left-associative at a fixed precedence table.
package parser

import (
	"fmt"

	"sysyc/internal/ast"
	"sysyc/internal/lexer"
	"sysyc/internal/token"
)

type ParseError struct {
	Message  string
	Position token.Position
}

func (e ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

type Parser struct {
	path   string
	tokens []token.Token
	current int
	errors []ParseError
}

func New(path string, tokens []token.Token) *Parser {
	return &Parser{path: path, tokens: tokens}
}

// ParseSource lexes and parses source text into a CompUnit. It returns the
// best-effort AST alongside any lexical/parse errors; callers should treat a
// non-empty error slice as fatal.
func ParseSource(path, source string) (*ast.CompUnit, []ParseError, []lexer.ScanError) {
	lx := lexer.New(source)
	toks, scanErrs := lx.Scan()

	p := New(path, toks)
	unit := p.ParseCompUnit()
	return unit, p.errors, scanErrs
}

func (p *Parser) ParseCompUnit() *ast.CompUnit {
	start := p.peek()
	unit := &ast.CompUnit{Pos: p.makePos(start)}

	for !p.isAtEnd() {
		item := p.parseCompUnitItem()
		if item != nil {
			unit.Items = append(unit.Items, item)
		} else {
			p.synchronizeTopLevel()
		}
	}

	unit.EndPos = p.makePos(p.peek())
	return unit
}

// parseCompUnitItem parses one top-level function definition or global
// declaration. Both start with a base type (int|void), so we look ahead past
// the identifier to disambiguate on '(' vs ';'/',' /'='.
func (p *Parser) parseCompUnitItem() ast.CompUnitItem {
	if p.check(token.KW_CONST) {
		return p.parseConstDecl()
	}

	baseType, ok := p.parseBaseType()
	if !ok {
		p.errorAtCurrent("expected 'int', 'void' or 'const'")
		return nil
	}

	name, ok := p.consumeIdent("expected identifier")
	if !ok {
		return nil
	}

	if p.check(token.LPAREN) {
		return p.parseFuncDefTail(baseType, name)
	}

	return p.parseVarDeclTail(baseType, name)
}
