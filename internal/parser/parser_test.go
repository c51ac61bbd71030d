package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysyc/internal/ast"
	"sysyc/internal/parser"
)

func parseOK(t *testing.T, src string) *ast.CompUnit {
	t.Helper()
	unit, parseErrs, scanErrs := parser.ParseSource("<test>", src)
	require.Empty(t, scanErrs)
	require.Empty(t, parseErrs)
	return unit
}

func TestParseFuncDefAndGlobals(t *testing.T) {
	unit := parseOK(t, "const int n = 5; int add(int a, int b) { return a + b; }")
	require.Len(t, unit.Items, 2)

	decl, ok := unit.Items[0].(*ast.ConstDecl)
	require.True(t, ok)
	assert.Equal(t, "n", decl.Defs[0].Name)

	fn, ok := unit.Items[1].(*ast.FuncDef)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Name)
}

func TestOperatorPrecedenceAndAssociativity(t *testing.T) {
	unit := parseOK(t, "int main(){ return 1 + 2 * 3 - 4; }")
	fn := unit.Items[0].(*ast.FuncDef)
	ret := fn.Body.Items[0].(*ast.ReturnStmt)
	assert.Equal(t, "((1 + (2 * 3)) - 4)", ret.Value.String())
}

func TestLogicalOperatorPrecedence(t *testing.T) {
	unit := parseOK(t, "int main(){ return 1 || 2 && 3; }")
	fn := unit.Items[0].(*ast.FuncDef)
	ret := fn.Body.Items[0].(*ast.ReturnStmt)
	assert.Equal(t, "(1 || (2 && 3))", ret.Value.String())
}

func TestDanglingElseBindsToInnermostIf(t *testing.T) {
	unit := parseOK(t, "int main(){ if (1) if (2) return 1; else return 2; return 0; }")
	fn := unit.Items[0].(*ast.FuncDef)
	outer := fn.Body.Items[0].(*ast.IfStmt)
	inner, ok := outer.Then.(*ast.IfStmt)
	require.True(t, ok, "inner if must be the Then branch of the outer if")
	require.NotNil(t, inner.Else, "else must bind to the inner if")
	assert.Nil(t, outer.Else)
}

func TestAssignmentIsAStatement(t *testing.T) {
	unit := parseOK(t, "int main(){ int a; a = 1; return a; }")
	fn := unit.Items[0].(*ast.FuncDef)
	assign, ok := fn.Body.Items[1].(*ast.AssignStmt)
	require.True(t, ok)
	assert.Equal(t, "a", assign.LHS.Name)
}

func TestWhileLoopWithBreakAndContinue(t *testing.T) {
	unit := parseOK(t, "int main(){ while (1) { if (1) break; else continue; } return 0; }")
	fn := unit.Items[0].(*ast.FuncDef)
	_, ok := fn.Body.Items[0].(*ast.WhileStmt)
	assert.True(t, ok)
}

func TestParseErrorOnMissingSemicolon(t *testing.T) {
	_, parseErrs, _ := parser.ParseSource("<test>", "int main(){ return 0 }")
	assert.NotEmpty(t, parseErrs)
}

func TestParseErrorOnBadTopLevelToken(t *testing.T) {
	_, parseErrs, _ := parser.ParseSource("<test>", "+ int main(){ return 0; }")
	assert.NotEmpty(t, parseErrs)
}
