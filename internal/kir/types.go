// Package kir implements KIR: a typed, SSA-style three-address IR with basic
// blocks and explicit allocation. Builder lowers an AST into a Program;
// Print renders a Program back to its textual form.
package kir

import "fmt"

// Type is KIR's two-member type system.
type Type interface {
	String() string
	isType()
}

type I32Type struct{}

func (I32Type) String() string { return "i32" }
func (I32Type) isType()        {}

type UnitType struct{}

func (UnitType) String() string { return "unit" }
func (UnitType) isType()        {}

// Operand is a use site: either a folded constant or a reference to a named
// value (a temporary "%N", a pointer "@name", or a function "@name"). This is
// the Const(i32) | Value(name) sum type design notes describe as
// sufficient to replace the original's is_const/ident/val cache.
type Operand struct {
	IsConst bool
	Const   int32
	Name    string
}

func ConstOperand(v int32) Operand { return Operand{IsConst: true, Const: v} }
func NameOperand(name string) Operand { return Operand{Name: name} }

func (o Operand) String() string {
	if o.IsConst {
		return fmt.Sprintf("%d", o.Const)
	}
	return o.Name
}

// Instruction is one KIR instruction within a basic block.
type Instruction interface {
	String() string
	isInstruction()
}

type AllocInst struct {
	Result string
	Type   Type
}

func (i *AllocInst) String() string { return fmt.Sprintf("%s = alloc %s", i.Result, i.Type) }
func (*AllocInst) isInstruction()   {}

type LoadInst struct {
	Result string
	Ptr    Operand
}

func (i *LoadInst) String() string { return fmt.Sprintf("%s = load %s", i.Result, i.Ptr) }
func (*LoadInst) isInstruction()   {}

type StoreInst struct {
	Value Operand
	Ptr   Operand
}

func (i *StoreInst) String() string { return fmt.Sprintf("store %s, %s", i.Value, i.Ptr) }
func (*StoreInst) isInstruction()   {}

type BinaryInst struct {
	Result string
	Op     string // add sub mul div mod lt gt le ge eq ne and or
	LHS    Operand
	RHS    Operand
}

func (i *BinaryInst) String() string {
	return fmt.Sprintf("%s = %s %s, %s", i.Result, i.Op, i.LHS, i.RHS)
}
func (*BinaryInst) isInstruction() {}

// CallInst's Result is empty for a void-returning call.
type CallInst struct {
	Result string
	Callee string
	Args   []Operand
}

func (i *CallInst) String() string {
	args := ""
	for idx, a := range i.Args {
		if idx > 0 {
			args += ", "
		}
		args += a.String()
	}
	if i.Result == "" {
		return fmt.Sprintf("call @%s(%s)", i.Callee, args)
	}
	return fmt.Sprintf("%s = call @%s(%s)", i.Result, i.Callee, args)
}
func (*CallInst) isInstruction() {}

// Terminator is exactly one of branch, jump, return; every basic block ends
// with exactly one.
type Terminator interface {
	String() string
	isTerminator()
}

type BranchTerm struct {
	Cond      Operand
	TrueLabel string
	FalseLabel string
}

func (t *BranchTerm) String() string {
	return fmt.Sprintf("br %s, %s, %s", t.Cond, t.TrueLabel, t.FalseLabel)
}
func (*BranchTerm) isTerminator() {}

type JumpTerm struct {
	Target string
}

func (t *JumpTerm) String() string { return fmt.Sprintf("jump %s", t.Target) }
func (*JumpTerm) isTerminator()     {}

// ReturnTerm's Value is nil for a bare "ret" (void functions).
type ReturnTerm struct {
	Value *Operand
}

func (t *ReturnTerm) String() string {
	if t.Value == nil {
		return "ret"
	}
	return fmt.Sprintf("ret %s", t.Value)
}
func (*ReturnTerm) isTerminator() {}

type BasicBlock struct {
	Label        string
	Instructions []Instruction
	Term         Terminator
}

type Param struct {
	Name string
	Type Type
}

type Function struct {
	Name       string
	Params     []Param
	ReturnType Type
	Blocks     []*BasicBlock
}

// Global is a module-level symbol.
type Global struct {
	Name       string
	Init       int32
	IsZeroInit bool
}

type Program struct {
	Globals []*Global
	Funcs   []*Function
}
