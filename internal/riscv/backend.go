// Package riscv lowers a kir.Program into 32-bit RISC-V assembly text:
// frame layout, a value-location map, a free-on-flush scratch-register
// arbiter, instruction selection, and prologue/epilogue emission, structured
// as a per-function backend context instead of free functions over
// file-scope globals. resolveOperand is called once per operand occurrence
// and always resolves that operand's own location, never a cached sibling's
// — this rules out ever reusing one operand's stack location while loading
// another in the same binary instruction.
package riscv

import (
	"fmt"
	"strings"

	"sysyc/internal/kir"
)

type locKind int

const (
	locStack locKind = iota
	locGlobal
)

type valueLoc struct {
	kind   locKind
	offset int
	label  string
}

// funcCtx is the BackendCtx of design notes: the visited map
// (here, locs), register bitmap and frame descriptor, all reset per
// function.
type funcCtx struct {
	fn          *kir.Function
	frame       *Frame
	arb         *Arbiter
	locs        map[string]*valueLoc
	globals     map[string]bool
	paramIndex  map[string]int
	out         *strings.Builder
}

// Gen renders a whole program to RISC-V assembly text: one
// .text section with one label per function, followed by a .data section
// holding global initialisers.
func Gen(prog *kir.Program) string {
	var out strings.Builder

	globals := make(map[string]bool, len(prog.Globals))
	for _, g := range prog.Globals {
		globals["@"+g.Name] = true
	}

	out.WriteString("  .text\n")
	for _, fn := range prog.Funcs {
		genFunction(fn, globals, &out)
		out.WriteByte('\n')
	}

	if len(prog.Globals) > 0 {
		out.WriteString("  .data\n")
		for _, g := range prog.Globals {
			fmt.Fprintf(&out, "  .globl %s\n%s:\n", g.Name, g.Name)
			if g.IsZeroInit {
				out.WriteString("  .zero 4\n")
			} else {
				fmt.Fprintf(&out, "  .word %d\n", g.Init)
			}
		}
	}

	return out.String()
}

func genFunction(fn *kir.Function, globals map[string]bool, out *strings.Builder) {
	frame := computeFrame(fn)
	c := &funcCtx{
		fn:         fn,
		frame:      frame,
		arb:        NewArbiter(),
		locs:       map[string]*valueLoc{},
		globals:    globals,
		paramIndex: map[string]int{},
		out:        out,
	}
	for i, p := range fn.Params {
		c.paramIndex[p.Name] = i
	}

	fmt.Fprintf(out, "  .globl %s\n%s:\n", fn.Name, fn.Name)
	c.emitPrologue()

	for _, bb := range fn.Blocks {
		fmt.Fprintf(out, "%s:\n", c.label(bb.Label))
		for _, inst := range bb.Instructions {
			c.genInst(inst)
			c.arb.FreeAll()
		}
		c.genTerm(bb.Term)
		c.arb.FreeAll()
	}
}

// label qualifies a KIR block label with the function name so that, e.g.,
// two functions both emitting "%then_0" don't collide in the assembled
// output — KIR labels are only unique within their own function.
func (c *funcCtx) label(kirLabel string) string {
	return c.fn.Name + "_" + strings.TrimPrefix(kirLabel, "%")
}

func (c *funcCtx) emitPrologue() {
	if c.frame.F == 0 {
		return
	}
	if c.frame.F >= 2048 {
		fmt.Fprintf(c.out, "  li t0, -%d\n  add sp, sp, t0\n", c.frame.F)
	} else {
		fmt.Fprintf(c.out, "  addi sp, sp, -%d\n", c.frame.F)
	}
	if c.frame.R == 4 {
		fmt.Fprintf(c.out, "  sw ra, %d(sp)\n", c.frame.F-4)
	}
}

func (c *funcCtx) emitEpilogue() {
	if c.frame.R == 4 {
		fmt.Fprintf(c.out, "  lw ra, %d(sp)\n", c.frame.F-4)
	}
	if c.frame.F >= 2048 {
		fmt.Fprintf(c.out, "  li t0, %d\n  add sp, sp, t0\n", c.frame.F)
	} else if c.frame.F > 0 {
		fmt.Fprintf(c.out, "  addi sp, sp, %d\n", c.frame.F)
	}
	c.out.WriteString("  ret\n")
}

func (c *funcCtx) genInst(inst kir.Instruction) {
	switch in := inst.(type) {
	case *kir.AllocInst:
		off := c.frame.NextSlot()
		c.locs[in.Result] = &valueLoc{kind: locStack, offset: off}
	case *kir.LoadInst:
		loc := c.resolvePointer(in.Ptr)
		reg := c.loadFromLoc(loc)
		c.storeResult(in.Result, reg)
	case *kir.StoreInst:
		reg := c.resolveOperand(in.Value)
		loc := c.resolvePointer(in.Ptr)
		c.storeToLoc(loc, reg)
	case *kir.BinaryInst:
		c.genBinary(in)
	case *kir.CallInst:
		c.genCall(in)
	}
}

func (c *funcCtx) genTerm(t kir.Terminator) {
	switch tm := t.(type) {
	case *kir.BranchTerm:
		reg := c.resolveOperand(tm.Cond)
		fmt.Fprintf(c.out, "  bnez %s, %s\n  j %s\n", reg, c.label(tm.TrueLabel), c.label(tm.FalseLabel))
	case *kir.JumpTerm:
		fmt.Fprintf(c.out, "  j %s\n", c.label(tm.Target))
	case *kir.ReturnTerm:
		if tm.Value != nil {
			reg := c.resolveOperand(*tm.Value)
			if reg != "a0" {
				fmt.Fprintf(c.out, "  mv a0, %s\n", reg)
			}
		}
		c.emitEpilogue()
	}
}

// resolvePointer resolves an alloc'd or global pointer operand to its
// location; ptr is always either a name this function has alloc'd (tracked
// in c.locs) or a global's "@name" (tracked in c.globals) — never a raw
// constant, 's alloc/global_alloc contract.
func (c *funcCtx) resolvePointer(ptr kir.Operand) *valueLoc {
	if c.globals[ptr.Name] {
		return &valueLoc{kind: locGlobal, label: strings.TrimPrefix(ptr.Name, "@")}
	}
	if loc, ok := c.locs[ptr.Name]; ok {
		return loc
	}
	panic("riscv: store/load to an unallocated pointer " + ptr.Name)
}

func (c *funcCtx) loadFromLoc(loc *valueLoc) string {
	reg := c.arb.Alloc()
	if loc.kind == locGlobal {
		fmt.Fprintf(c.out, "  la %s, %s\n  lw %s, 0(%s)\n", reg, loc.label, reg, reg)
	} else {
		fmt.Fprintf(c.out, "  lw %s, %d(sp)\n", reg, loc.offset)
	}
	return reg
}

func (c *funcCtx) storeToLoc(loc *valueLoc, reg string) {
	if loc.kind == locGlobal {
		tmp := c.arb.Alloc()
		fmt.Fprintf(c.out, "  la %s, %s\n  sw %s, 0(%s)\n", tmp, loc.label, reg, tmp)
	} else {
		fmt.Fprintf(c.out, "  sw %s, %d(sp)\n", reg, loc.offset)
	}
}

// storeResult assigns a fresh stack slot to a newly materialised value and
// writes it there immediately.
func (c *funcCtx) storeResult(name, reg string) {
	off := c.frame.NextSlot()
	fmt.Fprintf(c.out, "  sw %s, %d(sp)\n", reg, off)
	c.locs[name] = &valueLoc{kind: locStack, offset: off}
}

// resolveOperand loads an operand's value into a freshly allocated scratch
// register (or returns "x0" for a literal zero without emitting anything).
// Called once per operand occurrence, so two operands of the same
// instruction never share bookkeeping — this is what rules out the
// original backend's lvar/rvar aliasing bug.
func (c *funcCtx) resolveOperand(op kir.Operand) string {
	if op.IsConst {
		if op.Const == 0 {
			return "x0"
		}
		reg := c.arb.Alloc()
		fmt.Fprintf(c.out, "  li %s, %d\n", reg, op.Const)
		return reg
	}

	if idx, ok := c.paramIndex[op.Name]; ok {
		if idx < 8 {
			return fmt.Sprintf("a%d", idx)
		}
		reg := c.arb.Alloc()
		fmt.Fprintf(c.out, "  lw %s, %d(sp)\n", reg, c.frame.F+(idx-8)*4)
		return reg
	}

	if c.globals[op.Name] {
		reg := c.arb.Alloc()
		label := strings.TrimPrefix(op.Name, "@")
		fmt.Fprintf(c.out, "  la %s, %s\n  lw %s, 0(%s)\n", reg, label, reg, reg)
		return reg
	}

	if loc, ok := c.locs[op.Name]; ok {
		return c.loadFromLoc(loc)
	}

	panic("riscv: reference to unresolved value " + op.Name)
}

// resolveOperandInto computes an operand directly into dst, used for the
// first eight call-argument registers: each argument is sourced
// independently from stack/global/param memory, never from another
// just-written aN, so placing them in order 0..7 needs no temporary holding
// area and can't clobber an earlier argument.
func (c *funcCtx) resolveOperandInto(op kir.Operand, dst string) {
	if op.IsConst {
		if op.Const == 0 {
			fmt.Fprintf(c.out, "  mv %s, x0\n", dst)
		} else {
			fmt.Fprintf(c.out, "  li %s, %d\n", dst, op.Const)
		}
		return
	}

	if idx, ok := c.paramIndex[op.Name]; ok {
		if idx < 8 {
			if dst != fmt.Sprintf("a%d", idx) {
				fmt.Fprintf(c.out, "  mv %s, a%d\n", dst, idx)
			}
			return
		}
		fmt.Fprintf(c.out, "  lw %s, %d(sp)\n", dst, c.frame.F+(idx-8)*4)
		return
	}

	if c.globals[op.Name] {
		label := strings.TrimPrefix(op.Name, "@")
		fmt.Fprintf(c.out, "  la %s, %s\n  lw %s, 0(%s)\n", dst, label, dst, dst)
		return
	}

	if loc, ok := c.locs[op.Name]; ok {
		if loc.kind == locGlobal {
			fmt.Fprintf(c.out, "  la %s, %s\n  lw %s, 0(%s)\n", dst, loc.label, dst, dst)
		} else {
			fmt.Fprintf(c.out, "  lw %s, %d(sp)\n", dst, loc.offset)
		}
		return
	}

	panic("riscv: reference to unresolved value " + op.Name)
}

// genBinary implements instruction-selection table for binary
// ops: direct opcodes for add/sub/mul/div/mod/and/or/lt/gt, and the
// two-instruction idioms for eq/ne/le/ge that RV32I's base ISA has no
// single comparison opcode for.
func (c *funcCtx) genBinary(in *kir.BinaryInst) {
	lhs := c.resolveOperand(in.LHS)
	rhs := c.resolveOperand(in.RHS)
	dst := c.arb.Alloc()

	switch in.Op {
	case "add":
		fmt.Fprintf(c.out, "  add %s, %s, %s\n", dst, lhs, rhs)
	case "sub":
		fmt.Fprintf(c.out, "  sub %s, %s, %s\n", dst, lhs, rhs)
	case "mul":
		fmt.Fprintf(c.out, "  mul %s, %s, %s\n", dst, lhs, rhs)
	case "div":
		fmt.Fprintf(c.out, "  div %s, %s, %s\n", dst, lhs, rhs)
	case "mod":
		fmt.Fprintf(c.out, "  rem %s, %s, %s\n", dst, lhs, rhs)
	case "and":
		fmt.Fprintf(c.out, "  and %s, %s, %s\n", dst, lhs, rhs)
	case "or":
		fmt.Fprintf(c.out, "  or %s, %s, %s\n", dst, lhs, rhs)
	case "lt":
		fmt.Fprintf(c.out, "  slt %s, %s, %s\n", dst, lhs, rhs)
	case "gt":
		fmt.Fprintf(c.out, "  sgt %s, %s, %s\n", dst, lhs, rhs)
	case "eq":
		fmt.Fprintf(c.out, "  xor %s, %s, %s\n  seqz %s, %s\n", dst, lhs, rhs, dst, dst)
	case "ne":
		fmt.Fprintf(c.out, "  xor %s, %s, %s\n  snez %s, %s\n", dst, lhs, rhs, dst, dst)
	case "le":
		fmt.Fprintf(c.out, "  sgt %s, %s, %s\n  xori %s, %s, 1\n", dst, lhs, rhs, dst, dst)
	case "ge":
		fmt.Fprintf(c.out, "  slt %s, %s, %s\n  xori %s, %s, 1\n", dst, lhs, rhs, dst, dst)
	default:
		panic("riscv: unknown binary op " + in.Op)
	}

	c.storeResult(in.Result, dst)
}

func (c *funcCtx) genCall(in *kir.CallInst) {
	for i, arg := range in.Args {
		if i < 8 {
			c.resolveOperandInto(arg, fmt.Sprintf("a%d", i))
		} else {
			reg := c.resolveOperand(arg)
			fmt.Fprintf(c.out, "  sw %s, %d(sp)\n", reg, (i-8)*4)
		}
	}
	fmt.Fprintf(c.out, "  call %s\n", in.Callee)
	if in.Result != "" {
		c.storeResult(in.Result, "a0")
	}
}
