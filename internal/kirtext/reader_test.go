package kirtext_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"sysyc/internal/kir"
	"sysyc/internal/kirtext"
)

const sampleKIR = `
global @g = alloc i32, 42
global @h = alloc i32, zeroinit

fun @add(@p1: i32, @p2: i32): i32 {
%entry:
  @p1_slot = alloc i32
  store @p1, @p1_slot
  @p2_slot = alloc i32
  store @p2, @p2_slot
  %0 = load @p1_slot
  %1 = load @p2_slot
  %2 = add %0, %1
  ret %2
}

fun @main(): i32 {
%entry:
  %0 = call @add(1, 2)
  %1 = lt %0, 10
  br %1, %then_0, %else_0
%then_0:
  jump %end_0
%else_0:
  jump %end_0
%end_0:
  ret 0
}
`

func TestParseGlobals(t *testing.T) {
	prog, err := kirtext.Parse("sample.kir", sampleKIR)
	assert.NoError(t, err)
	assert.NotNil(t, prog)

	assert.Equal(t, 2, len(prog.Globals))
	assert.Equal(t, "g", prog.Globals[0].Name)
	assert.Equal(t, int32(42), prog.Globals[0].Init)
	assert.False(t, prog.Globals[0].IsZeroInit)
	assert.Equal(t, "h", prog.Globals[1].Name)
	assert.True(t, prog.Globals[1].IsZeroInit)
}

func TestParseFunctions(t *testing.T) {
	prog, err := kirtext.Parse("sample.kir", sampleKIR)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(prog.Funcs))

	add := prog.Funcs[0]
	assert.Equal(t, "add", add.Name)
	assert.Equal(t, kir.I32Type{}, add.ReturnType)
	assert.Equal(t, 2, len(add.Params))
	assert.Equal(t, "@p1", add.Params[0].Name)
	assert.Equal(t, 1, len(add.Blocks))

	entry := add.Blocks[0]
	assert.Equal(t, "%entry", entry.Label)
	assert.Equal(t, 7, len(entry.Instructions))

	alloc, ok := entry.Instructions[0].(*kir.AllocInst)
	assert.True(t, ok)
	assert.Equal(t, "@p1_slot", alloc.Result)

	binary, ok := entry.Instructions[6].(*kir.BinaryInst)
	assert.True(t, ok)
	assert.Equal(t, "add", binary.Op)
	assert.Equal(t, "%2", binary.Result)

	ret, ok := entry.Term.(*kir.ReturnTerm)
	assert.True(t, ok)
	assert.NotNil(t, ret.Value)
	assert.Equal(t, "%2", ret.Value.Name)
}

func TestParseCallAndBranch(t *testing.T) {
	prog, err := kirtext.Parse("sample.kir", sampleKIR)
	assert.NoError(t, err)

	main := prog.Funcs[1]
	entry := main.Blocks[0]

	call, ok := entry.Instructions[0].(*kir.CallInst)
	assert.True(t, ok)
	assert.Equal(t, "%0", call.Result)
	assert.Equal(t, "add", call.Callee)
	assert.Equal(t, 2, len(call.Args))
	assert.True(t, call.Args[0].IsConst)
	assert.Equal(t, int32(1), call.Args[0].Const)

	branch, ok := entry.Term.(*kir.BranchTerm)
	assert.True(t, ok)
	assert.Equal(t, "%then_0", branch.TrueLabel)
	assert.Equal(t, "%else_0", branch.FalseLabel)

	thenBlock := main.Blocks[1]
	jump, ok := thenBlock.Term.(*kir.JumpTerm)
	assert.True(t, ok)
	assert.Equal(t, "%end_0", jump.Target)

	endBlock := main.Blocks[3]
	endRet, ok := endBlock.Term.(*kir.ReturnTerm)
	assert.True(t, ok)
	assert.True(t, endRet.Value.IsConst)
	assert.Equal(t, int32(0), endRet.Value.Const)
}

func TestParseErrorReports(t *testing.T) {
	_, err := kirtext.Parse("bad.kir", "fun @broken(: i32 {}")
	assert.Error(t, err)
}
