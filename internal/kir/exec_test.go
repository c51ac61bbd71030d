package kir_test

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sysyc/internal/kir"
	"sysyc/internal/parser"
)

// frame is one call's local storage: alloc'd pointer names and materialised
// temporaries, both function-scoped.
type frame struct {
	mem    map[string]int32
	values map[string]int32
}

// machine is a direct KIR interpreter — the "direct interpreter" // round-trip property checks compiled output against. It exists only to give
// these tests an executable oracle for the six worked examples of ,
// without needing an actual RISC-V simulator.
type machine struct {
	prog    *kir.Program
	globals map[string]int32
	in      *bufio.Reader
	out     *bytes.Buffer
}

func newMachine(prog *kir.Program, stdin string) *machine {
	m := &machine{prog: prog, globals: map[string]int32{}, in: bufio.NewReader(strings.NewReader(stdin)), out: &bytes.Buffer{}}
	for _, g := range prog.Globals {
		if g.IsZeroInit {
			m.globals[g.Name] = 0
		} else {
			m.globals[g.Name] = g.Init
		}
	}
	return m
}

func (m *machine) operand(fr *frame, o kir.Operand) int32 {
	if o.IsConst {
		return o.Const
	}
	if strings.HasPrefix(o.Name, "%") {
		return fr.values[o.Name]
	}
	if v, ok := fr.mem[o.Name]; ok {
		return v
	}
	return m.globals[o.Name]
}

func (m *machine) store(fr *frame, name string, v int32) {
	if _, ok := fr.mem[name]; ok {
		fr.mem[name] = v
		return
	}
	m.globals[name] = v
}

func (m *machine) findFunc(name string) *kir.Function {
	for _, fn := range m.prog.Funcs {
		if fn.Name == name {
			return fn
		}
	}
	return nil
}

func (m *machine) call(name string, args []int32) int32 {
	switch name {
	case "getint":
		var v int32
		fmt.Fscan(m.in, &v)
		return v
	case "putint":
		fmt.Fprintf(m.out, "%d", args[0])
		return 0
	}

	fn := m.findFunc(name)
	if fn == nil {
		panic("exec: undefined function " + name)
	}
	fr := &frame{mem: map[string]int32{}, values: map[string]int32{}}
	for i, p := range fn.Params {
		fr.mem[p.Name] = args[i]
	}
	return m.run(fn, fr)
}

func (m *machine) run(fn *kir.Function, fr *frame) int32 {
	blocks := map[string]*kir.BasicBlock{}
	for _, b := range fn.Blocks {
		blocks[b.Label] = b
	}
	cur := fn.Blocks[0]

	for {
		for _, inst := range cur.Instructions {
			switch in := inst.(type) {
			case *kir.AllocInst:
				fr.mem[in.Result] = 0
			case *kir.LoadInst:
				fr.values[in.Result] = m.operand(fr, kir.NameOperand(in.Ptr.Name))
			case *kir.StoreInst:
				m.store(fr, in.Ptr.Name, m.operand(fr, in.Value))
			case *kir.BinaryInst:
				fr.values[in.Result] = evalBinary(in.Op, m.operand(fr, in.LHS), m.operand(fr, in.RHS))
			case *kir.CallInst:
				args := make([]int32, len(in.Args))
				for i, a := range in.Args {
					args[i] = m.operand(fr, a)
				}
				res := m.call(in.Callee, args)
				if in.Result != "" {
					fr.values[in.Result] = res
				}
			}
		}

		switch t := cur.Term.(type) {
		case *kir.BranchTerm:
			if m.operand(fr, t.Cond) != 0 {
				cur = blocks[t.TrueLabel]
			} else {
				cur = blocks[t.FalseLabel]
			}
		case *kir.JumpTerm:
			cur = blocks[t.Target]
		case *kir.ReturnTerm:
			if t.Value == nil {
				return 0
			}
			return m.operand(fr, *t.Value)
		}
	}
}

func evalBinary(op string, l, r int32) int32 {
	switch op {
	case "add":
		return l + r
	case "sub":
		return l - r
	case "mul":
		return l * r
	case "div":
		return l / r
	case "mod":
		return l % r
	case "lt":
		return b2i(l < r)
	case "gt":
		return b2i(l > r)
	case "le":
		return b2i(l <= r)
	case "ge":
		return b2i(l >= r)
	case "eq":
		return b2i(l == r)
	case "ne":
		return b2i(l != r)
	case "and":
		return b2i(l != 0 && r != 0)
	case "or":
		return b2i(l != 0 || r != 0)
	}
	panic("exec: unknown binary op " + op)
}

func b2i(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

func compile(t *testing.T, source string) *kir.Program {
	t.Helper()
	unit, parseErrs, scanErrs := parser.ParseSource("<test>", source)
	require.Empty(t, scanErrs)
	require.Empty(t, parseErrs)

	prog, errs := kir.NewBuilder().Build(unit)
	require.Empty(t, errs)
	return prog
}

func runMain(t *testing.T, source, stdin string) (int32, string) {
	t.Helper()
	prog := compile(t, source)
	m := newMachine(prog, stdin)
	return m.call("main", nil), m.out.String()
}

func TestScenarioBareReturn(t *testing.T) {
	exit, _ := runMain(t, "int main(){ return 0; }", "")
	assert.Equal(t, int32(0), exit)
}

func TestScenarioArithmetic(t *testing.T) {
	exit, _ := runMain(t, "int main(){ int a=2; int b=3; return a*(b+1); }", "")
	assert.Equal(t, int32(8), exit)
}

func TestScenarioWhileLoopSum(t *testing.T) {
	src := "int main(){ int i=0; int s=0; while(i<10){s=s+i; i=i+1;} return s; }"
	exit, _ := runMain(t, src, "")
	assert.Equal(t, int32(45), exit)
}

// Assignment is a statement, not an expression, in this language, so the
// right-hand side of a short-circuit "&&" check is expressed here as a
// function call with an observable side effect (setting a global) instead —
// same short-circuit property, syntax the grammar actually accepts.
const shortCircuitSrc = `
int flag = 0;
int setFlag() { flag = 1; return 1; }
`

func TestScenarioShortCircuitAndEvaluatesRHS(t *testing.T) {
	src := shortCircuitSrc + "int main(){ if(1 && setFlag()) return flag; return 99; }"
	exit, _ := runMain(t, src, "")
	assert.Equal(t, int32(1), exit)
}

func TestScenarioShortCircuitAndSkipsRHS(t *testing.T) {
	src := shortCircuitSrc + "int main(){ if(0 && setFlag()) return 99; return flag; }"
	exit, _ := runMain(t, src, "")
	assert.Equal(t, int32(0), exit)
}

func TestScenarioGetintPutint(t *testing.T) {
	src := "int main(){int n=getint(); int i=0; int s=0; while(i<n){s=s+i*i; i=i+1;} putint(s); return 0;}"
	exit, out := runMain(t, src, "5\n")
	assert.Equal(t, int32(0), exit)
	assert.Equal(t, "30", out)
}
