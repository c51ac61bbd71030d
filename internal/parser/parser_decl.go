package parser

import (
	"sysyc/internal/ast"
	"sysyc/internal/token"
)

func (p *Parser) parseConstDecl() *ast.ConstDecl {
	start := p.consume(token.KW_CONST, "expected 'const'")
	baseType, ok := p.parseBaseType()
	if !ok {
		p.errorAtCurrent("expected 'int' after 'const'")
		p.synchronize()
		return nil
	}

	defs := p.parseDefList(true)
	end := p.consume(token.SEMI, "expected ';' after const declaration")

	return &ast.ConstDecl{
		Pos:      p.makePos(start),
		EndPos:   p.makeEndPos(end),
		BaseType: baseType,
		Defs:     defs,
	}
}

// parseVarDeclTail parses the definition list and trailing ';' for a var
// declaration whose base type and first identifier were already consumed by
// the caller (needed to disambiguate function defs from declarations at
// CompUnit level, and to share the path with block-local declarations).
func (p *Parser) parseVarDeclTail(baseType ast.Type, firstName string) *ast.VarDecl {
	startPos := p.makePos(p.previous())
	defs := p.parseDefListFrom(firstName, startPos, false)
	end := p.consume(token.SEMI, "expected ';' after variable declaration")

	return &ast.VarDecl{
		Pos:      startPos,
		EndPos:   p.makeEndPos(end),
		BaseType: baseType,
		Defs:     defs,
	}
}

func (p *Parser) parseLocalDecl() ast.BlockItem {
	start := p.peek()
	if p.match(token.KW_CONST) {
		baseType, ok := p.parseBaseType()
		if !ok {
			p.errorAtCurrent("expected 'int' after 'const'")
			p.synchronize()
			return nil
		}
		defs := p.parseDefList(true)
		end := p.consume(token.SEMI, "expected ';' after const declaration")
		return &ast.ConstDecl{Pos: p.makePos(start), EndPos: p.makeEndPos(end), BaseType: baseType, Defs: defs}
	}

	baseType, ok := p.parseBaseType()
	if !ok {
		p.errorAtCurrent("expected a type, 'const', or a statement")
		return nil
	}
	name, ok := p.consumeIdent("expected identifier after type")
	if !ok {
		return nil
	}
	defs := p.parseDefListFrom(name, p.makePos(start), false)
	end := p.consume(token.SEMI, "expected ';' after variable declaration")
	return &ast.VarDecl{Pos: p.makePos(start), EndPos: p.makeEndPos(end), BaseType: baseType, Defs: defs}
}

// parseDefList parses "name [= expr] (, name [= expr])*"; requireInit forces
// every definition to carry an initialiser, as const declarations require.
func (p *Parser) parseDefList(requireInit bool) []*ast.Def {
	name, ok := p.consumeIdent("expected identifier")
	if !ok {
		return nil
	}
	return p.parseDefListFrom(name, p.makePos(p.previous()), requireInit)
}

func (p *Parser) parseDefListFrom(firstName string, firstPos ast.Position, requireInit bool) []*ast.Def {
	var defs []*ast.Def
	defs = append(defs, p.parseOneDef(firstName, firstPos, requireInit))
	for p.match(token.COMMA) {
		name, ok := p.consumeIdent("expected identifier after ','")
		if !ok {
			break
		}
		defs = append(defs, p.parseOneDef(name, p.makePos(p.previous()), requireInit))
	}
	return defs
}

func (p *Parser) parseOneDef(name string, pos ast.Position, requireInit bool) *ast.Def {
	def := &ast.Def{Pos: pos, Name: name, EndPos: pos}
	if p.match(token.ASSIGN) {
		def.Init = p.parseExpr()
		def.EndPos = def.Init.NodeEndPos()
	} else if requireInit {
		p.errorAtCurrent("const declaration requires an initialiser")
	}
	return def
}
