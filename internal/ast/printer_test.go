package ast_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sysyc/internal/ast"
)

func TestBinaryExprStringIsFullyParenthesised(t *testing.T) {
	expr := &ast.BinaryExpr{
		Op:   "+",
		Left: &ast.NumberExpr{Value: 1},
		Right: &ast.BinaryExpr{
			Op:    "*",
			Left:  &ast.NumberExpr{Value: 2},
			Right: &ast.NumberExpr{Value: 3},
		},
	}
	assert.Equal(t, "(1 + (2 * 3))", expr.String())
}

func TestIfStmtStringOmitsElseWhenAbsent(t *testing.T) {
	fn := &ast.FuncDef{
		Name:       "f",
		ReturnType: ast.TypeInt,
		Body: &ast.Block{
			Items: []ast.BlockItem{
				&ast.IfStmt{
					Cond: &ast.NumberExpr{Value: 1},
					Then: &ast.ReturnStmt{Value: &ast.NumberExpr{Value: 0}},
				},
			},
		},
	}
	out := fn.String()
	assert.Contains(t, out, "if (1) return 0;")
	assert.NotContains(t, out, "else")
}

func TestCallExprStringJoinsArgs(t *testing.T) {
	expr := &ast.CallExpr{
		Callee: "add",
		Args:   []ast.Expr{&ast.IdentExpr{Name: "a"}, &ast.IdentExpr{Name: "b"}},
	}
	assert.Equal(t, "add(a, b)", expr.String())
}

func TestVarDeclStringWithAndWithoutInit(t *testing.T) {
	decl := &ast.VarDecl{
		BaseType: ast.TypeInt,
		Defs: []*ast.Def{
			{Name: "x"},
			{Name: "y", Init: &ast.NumberExpr{Value: 5}},
		},
	}
	assert.Equal(t, "int x, y = 5;", decl.String())
}
