package riscv_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysyc/internal/kir"
	"sysyc/internal/parser"
	"sysyc/internal/riscv"
)

func compile(t *testing.T, source string) *kir.Program {
	t.Helper()
	unit, parseErrs, scanErrs := parser.ParseSource("<test>", source)
	require.Empty(t, scanErrs)
	require.Empty(t, parseErrs)

	prog, errs := kir.NewBuilder().Build(unit)
	require.Empty(t, errs)
	return prog
}

func TestGenEmitsFunctionLabelsAndEpilogue(t *testing.T) {
	prog := compile(t, "int main(){ return 0; }")
	asm := riscv.Gen(prog)

	assert.Contains(t, asm, ".globl main")
	assert.Contains(t, asm, "main:")
	assert.Contains(t, asm, "ret")
}

func TestGenPlacesGlobalsInDataSection(t *testing.T) {
	prog := compile(t, "int g = 7; int main(){ return g; }")
	asm := riscv.Gen(prog)

	assert.Contains(t, asm, "  .data")
	assert.Contains(t, asm, ".globl g")
	assert.Contains(t, asm, ".word 7")
}

func TestGenZeroInitGlobalUsesZeroDirective(t *testing.T) {
	prog := compile(t, "int g; int main(){ return g; }")
	asm := riscv.Gen(prog)
	assert.Contains(t, asm, ".zero 4")
}

func TestGenCallPassesArgumentsInARegisters(t *testing.T) {
	src := "int add(int a, int b) { return a + b; } int main(){ return add(1, 2); }"
	prog := compile(t, src)
	asm := riscv.Gen(prog)

	assert.Contains(t, asm, "call add")
	mainBody := asm[strings.Index(asm, "main:"):]
	assert.Contains(t, mainBody, "a0")
	assert.Contains(t, mainBody, "a1")
}

// TestGenNinthArgumentSpillsToStack exercises call ABI past the
// eight register slots: the ninth argument goes to the outgoing-argument
// area instead of aN.
func TestGenNinthArgumentSpillsToStack(t *testing.T) {
	params := "int a,int b,int c,int d,int e,int f,int g,int h,int i"
	args := "1,2,3,4,5,6,7,8,9"
	src := "int nine(" + params + ") { return i; } int main(){ return nine(" + args + "); }"
	prog := compile(t, src)
	asm := riscv.Gen(prog)

	assert.Contains(t, asm, "call nine")
	mainBody := asm[strings.Index(asm, "main:"):]
	assert.Contains(t, mainBody, ", 0(sp)", "the ninth argument must be stored at the bottom of the outgoing-argument area")
}

func TestFrameSizeRoundedTo16Bytes(t *testing.T) {
	prog := compile(t, "int main(){ int a=1; int b=2; int c=3; return a+b+c; }")
	asm := riscv.Gen(prog)
	idx := strings.Index(asm, "addi sp, sp, -")
	require.GreaterOrEqual(t, idx, 0, "a function using stack slots must adjust sp in its prologue")
	var size int
	_, err := fmt.Sscanf(asm[idx+len("addi sp, sp, -"):], "%d", &size)
	require.NoError(t, err)
	assert.Equal(t, 0, size%16, "frame size must be a multiple of 16")
}
