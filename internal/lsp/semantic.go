package lsp

import "sysyc/internal/ast"

// SemanticToken is one LSP semantic token entry (0-based line/char, as the
// protocol requires). TokenType indexes SemanticTokenTypes, TokenModifiers is
// a bitmask over SemanticTokenModifiers.
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int
	TokenModifiers int
}

// collectSemanticTokens walks a parsed compilation unit collecting semantic
// tokens for functions, parameters, locals and calls.
func collectSemanticTokens(unit *ast.CompUnit) []SemanticToken {
	var tokens []SemanticToken
	if unit == nil {
		return tokens
	}
	for _, item := range unit.Items {
		switch n := item.(type) {
		case *ast.FuncDef:
			tokens = append(tokens, walkFuncDef(n)...)
		case *ast.ConstDecl:
			tokens = append(tokens, walkDefs(n.Defs, "variable", 2)...)
		case *ast.VarDecl:
			tokens = append(tokens, walkDefs(n.Defs, "variable", 1)...)
		}
	}
	return tokens
}

func walkFuncDef(f *ast.FuncDef) []SemanticToken {
	var tokens []SemanticToken
	tokens = append(tokens, makeToken(f.Pos, f.Name, "function", 1))
	for _, p := range f.Params {
		tokens = append(tokens, makeToken(p.Pos, p.Name, "parameter", 1))
	}
	if f.Body != nil {
		tokens = append(tokens, walkBlock(f.Body)...)
	}
	return tokens
}

func walkDefs(defs []*ast.Def, tokenType string, decl int) []SemanticToken {
	var tokens []SemanticToken
	for _, d := range defs {
		tokens = append(tokens, makeToken(d.Pos, d.Name, tokenType, decl))
		if d.Init != nil {
			tokens = append(tokens, walkExpr(d.Init)...)
		}
	}
	return tokens
}

func walkBlock(b *ast.Block) []SemanticToken {
	var tokens []SemanticToken
	for _, item := range b.Items {
		tokens = append(tokens, walkBlockItem(item)...)
	}
	return tokens
}

func walkBlockItem(item ast.BlockItem) []SemanticToken {
	switch n := item.(type) {
	case *ast.ConstDecl:
		return walkDefs(n.Defs, "variable", 2)
	case *ast.VarDecl:
		return walkDefs(n.Defs, "variable", 1)
	case *ast.Block:
		return walkBlock(n)
	case *ast.ExprStmt:
		return walkExpr(n.X)
	case *ast.AssignStmt:
		tokens := []SemanticToken{makeToken(n.LHS.Pos, n.LHS.Name, "variable", 0)}
		return append(tokens, walkExpr(n.RHS)...)
	case *ast.ReturnStmt:
		if n.Value == nil {
			return nil
		}
		return walkExpr(n.Value)
	case *ast.IfStmt:
		tokens := walkExpr(n.Cond)
		tokens = append(tokens, walkBlockItem(n.Then)...)
		if n.Else != nil {
			tokens = append(tokens, walkBlockItem(n.Else)...)
		}
		return tokens
	case *ast.WhileStmt:
		tokens := walkExpr(n.Cond)
		return append(tokens, walkBlockItem(n.Body)...)
	default:
		return nil
	}
}

func walkExpr(e ast.Expr) []SemanticToken {
	switch n := e.(type) {
	case *ast.IdentExpr:
		return []SemanticToken{makeToken(n.Pos, n.Name, "variable", 0)}
	case *ast.UnaryExpr:
		return walkExpr(n.Value)
	case *ast.BinaryExpr:
		tokens := walkExpr(n.Left)
		return append(tokens, walkExpr(n.Right)...)
	case *ast.CallExpr:
		tokens := []SemanticToken{makeToken(n.Pos, n.Callee, "function", 0)}
		for _, arg := range n.Args {
			tokens = append(tokens, walkExpr(arg)...)
		}
		return tokens
	default:
		return nil
	}
}

func makeToken(pos ast.Position, name, tokenType string, decl int) SemanticToken {
	declBit := 0
	if idx := indexOf("declaration", SemanticTokenModifiers); decl > 0 && idx >= 0 {
		declBit = 1 << idx
	}
	return SemanticToken{
		Line:           uint32(pos.Line - 1),
		StartChar:      uint32(pos.Column - 1),
		Length:         uint32(len(name)),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declBit,
	}
}

func indexOf(target string, list []string) int {
	for i, v := range list {
		if v == target {
			return i
		}
	}
	return -1
}
