package sema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysyc/internal/sema"
)

func TestDeclareRuntimeBindsAllIntrinsics(t *testing.T) {
	root := sema.NewRoot()
	sema.DeclareRuntime(root)

	for _, f := range sema.RuntimeFuncs {
		require.NotNil(t, root.Lookup(f.Name), "runtime function %q must be bound", f.Name)
	}

	b := root.Lookup("getint")
	require.NotNil(t, b)
	assert.Equal(t, sema.BindingFunction, b.Kind)
	assert.Equal(t, 0, b.Arity)

	b = root.Lookup("putarray")
	require.NotNil(t, b)
	assert.Equal(t, 2, b.Arity)
	assert.Equal(t, sema.ReturnVoid, b.ReturnType)
}

func TestInsertVarSuffixesKIRNameByScopePath(t *testing.T) {
	root := sema.NewRoot()
	child := root.Push()

	kirName, ok := child.InsertVar("x", "@x", false)
	require.True(t, ok)
	assert.Equal(t, "@x_0", kirName)

	grandchild := child.Push()
	kirName2, ok := grandchild.InsertVar("x", "@x", false)
	require.True(t, ok)
	assert.NotEqual(t, kirName, kirName2, "shadowed binding in a nested scope must get a distinct KIR name")
}

func TestGlobalVarKeepsItsDeclaredKIRName(t *testing.T) {
	root := sema.NewRoot()
	kirName, ok := root.InsertVar("n", "@n", true)
	require.True(t, ok)
	assert.Equal(t, "@n", kirName)

	b := root.LookupLocal("n")
	require.NotNil(t, b)
	assert.Equal(t, sema.BindingGlobalVar, b.Kind)
}

func TestInsertFailsOnDuplicateNameInSameScope(t *testing.T) {
	root := sema.NewRoot()
	ok := root.InsertConst("n", 5)
	require.True(t, ok)
	ok = root.InsertConst("n", 6)
	assert.False(t, ok, "redeclaring a name in the same scope frame must fail")
}

func TestLookupWalksToParentScope(t *testing.T) {
	root := sema.NewRoot()
	root.InsertConst("n", 5)
	child := root.Push()

	b := child.Lookup("n")
	require.NotNil(t, b)
	assert.Nil(t, child.LookupLocal("n"), "LookupLocal must not see parent bindings")
}

func TestBindingKindStringIsSnakeCase(t *testing.T) {
	assert.Equal(t, "local_var", sema.BindingLocalVar.String())
	assert.Equal(t, "global_var", sema.BindingGlobalVar.String())
	assert.Equal(t, "const", sema.BindingConst.String())
	assert.Equal(t, "function", sema.BindingFunction.String())
}
