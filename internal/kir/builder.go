package kir

import (
	"fmt"

	serr "sysyc/internal/errors"
	"sysyc/internal/ast"
	"sysyc/internal/sema"
	"sysyc/internal/token"
)

type loopFrame struct {
	entryLabel string
	endLabel   string
}

// Builder lowers an AST into a KIR Program: per-function state
// (value/label counters, termination flag, loop stack) is threaded through
// every traversal and reset at function entry. It performs constant folding,
// short-circuit lowering, and structured control-flow lowering as it walks
// the tree.
type Builder struct {
	prog  *Program
	root  *sema.Scope
	scope *sema.Scope

	valueCounter int
	labelCounter int
	tmpCounter   int
	isTerminated bool
	loopStack    []loopFrame

	fn    *Function
	block *BasicBlock

	errs []*serr.CompileError
}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build lowers a parsed compilation unit into a KIR Program. It returns the
// best-effort program alongside any compile errors; a non-empty error list
// means the compile must abort.
func (b *Builder) Build(unit *ast.CompUnit) (*Program, []*serr.CompileError) {
	b.prog = &Program{}
	b.root = sema.NewRoot()
	sema.DeclareRuntime(b.root)
	b.scope = b.root

	for _, item := range unit.Items {
		switch n := item.(type) {
		case *ast.FuncDef:
			b.lowerFuncDef(n)
		case *ast.ConstDecl:
			b.lowerGlobalConstDecl(n)
		case *ast.VarDecl:
			b.lowerGlobalVarDecl(n)
		}
	}

	return b.prog, b.errs
}

func (b *Builder) errorAt(code, msg string, pos ast.Position) {
	b.errs = append(b.errs, serr.New(code, msg, toTokPos(pos)))
}

func toTokPos(p ast.Position) token.Position {
	return token.Position{Line: p.Line, Column: p.Column, Offset: p.Offset}
}

// --- fresh name allocation -------------------------------------------------

func (b *Builder) freshValue() string {
	n := fmt.Sprintf("%%%d", b.valueCounter)
	b.valueCounter++
	return n
}

func (b *Builder) freshLabel(prefix string) string {
	n := fmt.Sprintf("%%%s_%d", prefix, b.labelCounter)
	b.labelCounter++
	return n
}

func (b *Builder) freshTemp() string {
	n := fmt.Sprintf("@t%d", b.tmpCounter)
	b.tmpCounter++
	return n
}

// --- block/instruction emission -------------------------------------------

// startBlock opens a new basic block and makes it current; it un-suppresses
// emission (is_terminated resets to false), matching "reset
// is_terminated=false" at the start of every then/else/while_entry/
// while_body/end block.
func (b *Builder) startBlock(label string) {
	bb := &BasicBlock{Label: label}
	b.fn.Blocks = append(b.fn.Blocks, bb)
	b.block = bb
	b.isTerminated = false
}

// emit appends an instruction unless the current block already has a
// terminator — dead code elimination at emission time.
func (b *Builder) emit(inst Instruction) {
	if b.isTerminated {
		return
	}
	b.block.Instructions = append(b.block.Instructions, inst)
}

func (b *Builder) emitTerm(t Terminator) {
	if b.isTerminated {
		return
	}
	b.block.Term = t
	b.isTerminated = true
}

// --- top-level declarations -------------------------------------------------

func (b *Builder) lowerGlobalConstDecl(d *ast.ConstDecl) {
	for _, def := range d.Defs {
		val, ok, divZero := b.foldConst(def.Init)
		if !ok {
			if divZero {
				b.errorAt(serr.ErrDivByZeroFold, fmt.Sprintf("initializer for const %q divides by a constant zero", def.Name), def.Pos)
			} else {
				b.errorAt(serr.ErrNonConstInitializer, fmt.Sprintf("initializer for const %q is not a compile-time constant", def.Name), def.Pos)
			}
			continue
		}
		if !b.scope.InsertConst(def.Name, val) {
			b.errorAt(serr.ErrRedefinition, fmt.Sprintf("redefinition of %q", def.Name), def.Pos)
		}
	}
}

func (b *Builder) lowerGlobalVarDecl(d *ast.VarDecl) {
	for _, def := range d.Defs {
		var initVal int32
		zero := true
		if def.Init != nil {
			val, ok, divZero := b.foldConst(def.Init)
			if !ok {
				if divZero {
					b.errorAt(serr.ErrDivByZeroFold, fmt.Sprintf("initializer for global %q divides by a constant zero", def.Name), def.Pos)
				} else {
					b.errorAt(serr.ErrNonConstInitializer, fmt.Sprintf("initializer for global %q is not a compile-time constant", def.Name), def.Pos)
				}
				continue
			}
			initVal, zero = val, false
		}
		if _, ok := b.scope.InsertVar(def.Name, "@"+def.Name, true); !ok {
			b.errorAt(serr.ErrRedefinition, fmt.Sprintf("redefinition of %q", def.Name), def.Pos)
			continue
		}
		b.prog.Globals = append(b.prog.Globals, &Global{Name: def.Name, Init: initVal, IsZeroInit: zero})
	}
}

func (b *Builder) lowerFuncDef(f *ast.FuncDef) {
	b.valueCounter = 0
	b.labelCounter = 0
	b.tmpCounter = 0
	b.isTerminated = false
	b.loopStack = nil

	retType := toKIRType(f.ReturnType)
	if !b.root.InsertFunction(f.Name, toSemaReturn(f.ReturnType), len(f.Params)) {
		b.errorAt(serr.ErrRedefinition, fmt.Sprintf("redefinition of function %q", f.Name), f.Pos)
		return
	}

	fn := &Function{Name: f.Name, ReturnType: retType}
	for _, p := range f.Params {
		fn.Params = append(fn.Params, Param{Name: "@" + p.Name, Type: I32Type{}})
	}
	b.fn = fn
	b.prog.Funcs = append(b.prog.Funcs, fn)

	b.scope = b.scope.Push()
	b.startBlock("%entry")

	for _, p := range f.Params {
		slot, ok := b.scope.InsertVar(p.Name, "@"+p.Name+"_slot", false)
		if !ok {
			b.errorAt(serr.ErrRedefinition, fmt.Sprintf("duplicate parameter %q", p.Name), p.Pos)
			continue
		}
		b.emit(&AllocInst{Result: slot, Type: I32Type{}})
		b.emit(&StoreInst{Value: NameOperand("@" + p.Name), Ptr: NameOperand(slot)})
	}

	b.lowerBlockItems(f.Body.Items)

	if !b.isTerminated {
		if _, isVoid := retType.(UnitType); isVoid {
			b.emitTerm(&ReturnTerm{Value: nil})
		} else {
			zero := ConstOperand(0)
			b.emitTerm(&ReturnTerm{Value: &zero})
		}
	}

	if len(b.loopStack) != 0 {
		b.errs = append(b.errs, serr.Internal("loop stack not empty at function exit", toTokPos(f.Pos)))
	}

	b.scope = b.scope.Pop()
	b.fn = nil
	b.block = nil
}

func toKIRType(t ast.Type) Type {
	if t == ast.TypeVoid {
		return UnitType{}
	}
	return I32Type{}
}

func toSemaReturn(t ast.Type) sema.ReturnType {
	if t == ast.TypeVoid {
		return sema.ReturnVoid
	}
	return sema.ReturnInt
}

// --- blocks & statements -----------------------------------------------------

func (b *Builder) lowerBlock(block *ast.Block) {
	b.scope = b.scope.Push()
	b.lowerBlockItems(block.Items)
	b.scope = b.scope.Pop()
}

func (b *Builder) lowerBlockItems(items []ast.BlockItem) {
	for _, item := range items {
		if b.isTerminated {
			return
		}
		switch n := item.(type) {
		case *ast.ConstDecl:
			b.lowerLocalConstDecl(n)
		case *ast.VarDecl:
			b.lowerLocalVarDecl(n)
		case ast.Stmt:
			b.lowerStmt(n)
		}
	}
}

func (b *Builder) lowerLocalConstDecl(d *ast.ConstDecl) {
	for _, def := range d.Defs {
		val, ok, divZero := b.foldConst(def.Init)
		if !ok {
			if divZero {
				b.errorAt(serr.ErrDivByZeroFold, fmt.Sprintf("initializer for const %q divides by a constant zero", def.Name), def.Pos)
			} else {
				b.errorAt(serr.ErrNonConstInitializer, fmt.Sprintf("initializer for const %q is not a compile-time constant", def.Name), def.Pos)
			}
			continue
		}
		if !b.scope.InsertConst(def.Name, val) {
			b.errorAt(serr.ErrRedefinition, fmt.Sprintf("redefinition of %q", def.Name), def.Pos)
		}
	}
}

func (b *Builder) lowerLocalVarDecl(d *ast.VarDecl) {
	for _, def := range d.Defs {
		slot, ok := b.scope.InsertVar(def.Name, "@"+def.Name, false)
		if !ok {
			b.errorAt(serr.ErrRedefinition, fmt.Sprintf("redefinition of %q", def.Name), def.Pos)
			continue
		}
		b.emit(&AllocInst{Result: slot, Type: I32Type{}})
		if def.Init != nil {
			val := b.lowerValue(def.Init)
			b.emit(&StoreInst{Value: val, Ptr: NameOperand(slot)})
		}
	}
}

func (b *Builder) lowerStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		b.lowerBlock(n)
	case *ast.EmptyStmt:
	case *ast.ExprStmt:
		b.lowerExpr(n.X)
	case *ast.AssignStmt:
		b.lowerAssign(n)
	case *ast.ReturnStmt:
		b.lowerReturn(n)
	case *ast.IfStmt:
		b.lowerIf(n)
	case *ast.WhileStmt:
		b.lowerWhile(n)
	case *ast.BreakStmt:
		b.lowerBreak(n)
	case *ast.ContinueStmt:
		b.lowerContinue(n)
	}
}

func (b *Builder) lowerAssign(n *ast.AssignStmt) {
	binding := b.scope.Lookup(n.LHS.Name)
	rhs := b.lowerValue(n.RHS)
	if binding == nil {
		b.errorAt(serr.ErrUndefinedVariable, fmt.Sprintf("undefined variable %q", n.LHS.Name), n.LHS.Pos)
		return
	}
	if binding.Kind == sema.BindingConst {
		b.errorAt(serr.ErrAssignToConst, fmt.Sprintf("cannot assign to %s %q", binding.Kind, n.LHS.Name), n.Pos)
		return
	}
	if binding.Kind == sema.BindingFunction {
		b.errorAt(serr.ErrUndefinedVariable, fmt.Sprintf("%q is a %s, not a variable", n.LHS.Name, binding.Kind), n.LHS.Pos)
		return
	}
	b.emit(&StoreInst{Value: rhs, Ptr: NameOperand(binding.KIRName)})
}

func (b *Builder) lowerReturn(n *ast.ReturnStmt) {
	if n.Value == nil {
		b.emitTerm(&ReturnTerm{Value: nil})
		return
	}
	v := b.lowerValue(n.Value)
	b.emitTerm(&ReturnTerm{Value: &v})
}

// lowerIf implements if/else lowering exactly: evaluate cond,
// branch to then/else (or then/end without an else), lower each branch in
// its own block with is_terminated reset, join at end unless both branches
// terminated unconditionally.
func (b *Builder) lowerIf(n *ast.IfStmt) {
	cond := b.lowerValue(n.Cond)

	thenLabel := b.freshLabel("then")
	hasElse := n.Else != nil
	endLabel := b.freshLabel("end")
	var elseLabel string
	if hasElse {
		elseLabel = b.freshLabel("else")
		b.emitTerm(&BranchTerm{Cond: cond, TrueLabel: thenLabel, FalseLabel: elseLabel})
	} else {
		b.emitTerm(&BranchTerm{Cond: cond, TrueLabel: thenLabel, FalseLabel: endLabel})
	}

	b.startBlock(thenLabel)
	b.lowerStmt(n.Then)
	thenTerminated := b.isTerminated
	if !thenTerminated {
		b.emitTerm(&JumpTerm{Target: endLabel})
	}

	elseTerminated := false
	if hasElse {
		b.startBlock(elseLabel)
		b.lowerStmt(n.Else)
		elseTerminated = b.isTerminated
		if !elseTerminated {
			b.emitTerm(&JumpTerm{Target: endLabel})
		}
	}

	combinedTerminated := hasElse && thenTerminated && elseTerminated
	if !combinedTerminated {
		b.startBlock(endLabel)
	}
}

// lowerWhile implements while lowering: entry/body/end block
// triple, loop stack push/pop around the body.
func (b *Builder) lowerWhile(n *ast.WhileStmt) {
	entryLabel := b.freshLabel("while_entry")
	bodyLabel := b.freshLabel("while_body")
	endLabel := b.freshLabel("end")

	b.emitTerm(&JumpTerm{Target: entryLabel})
	b.startBlock(entryLabel)
	cond := b.lowerValue(n.Cond)
	b.emitTerm(&BranchTerm{Cond: cond, TrueLabel: bodyLabel, FalseLabel: endLabel})

	b.loopStack = append(b.loopStack, loopFrame{entryLabel: entryLabel, endLabel: endLabel})
	b.startBlock(bodyLabel)
	b.lowerStmt(n.Body)
	if !b.isTerminated {
		b.emitTerm(&JumpTerm{Target: entryLabel})
	}
	b.loopStack = b.loopStack[:len(b.loopStack)-1]

	b.startBlock(endLabel)
}

func (b *Builder) lowerBreak(n *ast.BreakStmt) {
	if len(b.loopStack) == 0 {
		b.errorAt(serr.ErrBreakOutsideLoop, "'break' outside any loop", n.Pos)
		return
	}
	top := b.loopStack[len(b.loopStack)-1]
	b.emitTerm(&JumpTerm{Target: top.endLabel})
}

func (b *Builder) lowerContinue(n *ast.ContinueStmt) {
	if len(b.loopStack) == 0 {
		b.errorAt(serr.ErrContinueOutsideLoop, "'continue' outside any loop", n.Pos)
		return
	}
	top := b.loopStack[len(b.loopStack)-1]
	b.emitTerm(&JumpTerm{Target: top.entryLabel})
}

// --- expressions -------------------------------------------------------------

// lowerValue lowers an expression in a context that needs its value (operand
// to a binary op, a call argument, a condition, a return value, an
// assignment's RHS). It additionally rejects a void-returning call used as a
// value, a check lowerExpr alone cannot make since an
// ExprStmt legitimately discards a void call's (non-)result.
func (b *Builder) lowerValue(e ast.Expr) Operand {
	if call, ok := e.(*ast.CallExpr); ok {
		if binding := b.scope.Lookup(call.Callee); binding != nil && binding.Kind == sema.BindingFunction && binding.ReturnType == sema.ReturnVoid {
			b.errorAt(serr.ErrVoidInExpr, fmt.Sprintf("void function %q used as a value", call.Callee), call.Pos)
		}
	}
	return b.lowerExpr(e)
}

func (b *Builder) lowerExpr(e ast.Expr) Operand {
	switch n := e.(type) {
	case *ast.NumberExpr:
		return ConstOperand(n.Value)
	case *ast.IdentExpr:
		return b.lowerIdent(n)
	case *ast.UnaryExpr:
		return b.lowerUnary(n)
	case *ast.BinaryExpr:
		return b.lowerBinary(n)
	case *ast.CallExpr:
		return b.lowerCall(n)
	}
	return ConstOperand(0)
}

func (b *Builder) lowerIdent(n *ast.IdentExpr) Operand {
	binding := b.scope.Lookup(n.Name)
	if binding == nil {
		b.errorAt(serr.ErrUndefinedVariable, fmt.Sprintf("undefined variable %q", n.Name), n.Pos)
		return ConstOperand(0)
	}
	switch binding.Kind {
	case sema.BindingConst:
		return ConstOperand(binding.Value)
	case sema.BindingFunction:
		b.errorAt(serr.ErrUndefinedVariable, fmt.Sprintf("%q is a function, not a variable", n.Name), n.Pos)
		return ConstOperand(0)
	default: // BindingLocalVar, BindingGlobalVar
		if n.IsLeft {
			return NameOperand(binding.KIRName)
		}
		res := b.freshValue()
		b.emit(&LoadInst{Result: res, Ptr: NameOperand(binding.KIRName)})
		return NameOperand(res)
	}
}

func (b *Builder) lowerUnary(n *ast.UnaryExpr) Operand {
	v := b.lowerValue(n.Value)
	switch n.Op {
	case "+":
		return v
	case "-":
		if v.IsConst {
			return ConstOperand(-v.Const)
		}
		res := b.freshValue()
		b.emit(&BinaryInst{Result: res, Op: "sub", LHS: ConstOperand(0), RHS: v})
		return NameOperand(res)
	case "!":
		if v.IsConst {
			return ConstOperand(boolToI32(v.Const == 0))
		}
		res := b.freshValue()
		b.emit(&BinaryInst{Result: res, Op: "eq", LHS: v, RHS: ConstOperand(0)})
		return NameOperand(res)
	}
	return v
}

func (b *Builder) lowerBinary(n *ast.BinaryExpr) Operand {
	switch n.Op {
	case "&&":
		return b.lowerShortCircuit(n, true)
	case "||":
		return b.lowerShortCircuit(n, false)
	}

	lhs := b.lowerValue(n.Left)
	rhs := b.lowerValue(n.Right)
	if lhs.IsConst && rhs.IsConst {
		if v, ok, _ := foldBinary(n.Op, lhs.Const, rhs.Const); ok {
			return ConstOperand(v)
		}
	}
	res := b.freshValue()
	b.emit(&BinaryInst{Result: res, Op: kirOpName(n.Op), LHS: lhs, RHS: rhs})
	return NameOperand(res)
}

// lowerShortCircuit implements short-circuit lowering for && and ||: when
// the left operand folds to a constant that decides the result (0 for &&,
// non-zero for ||), the right operand is never evaluated — not even for its
// side effects. Otherwise a temp stack slot @tK holds the 0/1 result of
// a then/else/join triple of basic blocks.
func (b *Builder) lowerShortCircuit(n *ast.BinaryExpr, isAnd bool) Operand {
	left := b.lowerValue(n.Left)

	if left.IsConst {
		if isAnd && left.Const == 0 {
			return ConstOperand(0)
		}
		if !isAnd && left.Const != 0 {
			return ConstOperand(1)
		}
		// left doesn't decide the result on its own: the right operand must
		// still be evaluated to determine it.
		right := b.lowerValue(n.Right)
		if right.IsConst {
			return ConstOperand(boolToI32(right.Const != 0))
		}
		res := b.freshValue()
		b.emit(&BinaryInst{Result: res, Op: "ne", LHS: right, RHS: ConstOperand(0)})
		return NameOperand(res)
	}

	tmp := b.freshTemp()
	b.emit(&AllocInst{Result: tmp, Type: I32Type{}})

	cmp := b.freshValue()
	// For &&, the "then" block (which evaluates the right operand) runs when
	// left is truthy; for ||, it runs when left is zero.
	if isAnd {
		b.emit(&BinaryInst{Result: cmp, Op: "ne", LHS: left, RHS: ConstOperand(0)})
	} else {
		b.emit(&BinaryInst{Result: cmp, Op: "eq", LHS: left, RHS: ConstOperand(0)})
	}

	thenLabel := b.freshLabel("then")
	elseLabel := b.freshLabel("else")
	endLabel := b.freshLabel("end")
	b.emitTerm(&BranchTerm{Cond: NameOperand(cmp), TrueLabel: thenLabel, FalseLabel: elseLabel})

	b.startBlock(thenLabel)
	right := b.lowerValue(n.Right)
	norm := b.freshValue()
	b.emit(&BinaryInst{Result: norm, Op: "ne", LHS: right, RHS: ConstOperand(0)})
	b.emit(&StoreInst{Value: NameOperand(norm), Ptr: NameOperand(tmp)})
	if !b.isTerminated {
		b.emitTerm(&JumpTerm{Target: endLabel})
	}

	b.startBlock(elseLabel)
	elseConst := int32(0)
	if !isAnd {
		elseConst = 1
	}
	b.emit(&StoreInst{Value: ConstOperand(elseConst), Ptr: NameOperand(tmp)})
	b.emitTerm(&JumpTerm{Target: endLabel})

	b.startBlock(endLabel)
	res := b.freshValue()
	b.emit(&LoadInst{Result: res, Ptr: NameOperand(tmp)})
	return NameOperand(res)
}

func (b *Builder) lowerCall(n *ast.CallExpr) Operand {
	binding := b.scope.Lookup(n.Callee)
	if binding == nil || binding.Kind != sema.BindingFunction {
		b.errorAt(serr.ErrUndefinedFunction, fmt.Sprintf("call to undefined function %q", n.Callee), n.Pos)
		for _, a := range n.Args {
			b.lowerValue(a)
		}
		return ConstOperand(0)
	}
	if len(n.Args) != binding.Arity {
		b.errorAt(serr.ErrCallArity, fmt.Sprintf("%q expects %d argument(s), got %d", n.Callee, binding.Arity, len(n.Args)), n.Pos)
	}

	args := make([]Operand, len(n.Args))
	for i, a := range n.Args {
		args[i] = b.lowerValue(a)
	}

	if binding.ReturnType == sema.ReturnVoid {
		b.emit(&CallInst{Callee: n.Callee, Args: args})
		return ConstOperand(0)
	}
	res := b.freshValue()
	b.emit(&CallInst{Result: res, Callee: n.Callee, Args: args})
	return NameOperand(res)
}

// --- constant folding --------------------------------------------------------

// foldConst evaluates a compile-time-constant expression: global
// and const initializers must fold fully, with no KIR emitted in the
// process. Calls never fold. The second bool reports success; the third
// reports that the only reason folding failed was a division or modulo by a
// constant zero, so callers can report that case distinctly.
func (b *Builder) foldConst(e ast.Expr) (int32, bool, bool) {
	switch n := e.(type) {
	case *ast.NumberExpr:
		return n.Value, true, false
	case *ast.IdentExpr:
		binding := b.scope.Lookup(n.Name)
		if binding == nil || binding.Kind != sema.BindingConst {
			return 0, false, false
		}
		return binding.Value, true, false
	case *ast.UnaryExpr:
		v, ok, divZero := b.foldConst(n.Value)
		if !ok {
			return 0, false, divZero
		}
		switch n.Op {
		case "+":
			return v, true, false
		case "-":
			return -v, true, false
		case "!":
			return boolToI32(v == 0), true, false
		}
		return 0, false, false
	case *ast.BinaryExpr:
		switch n.Op {
		case "&&":
			l, ok, divZero := b.foldConst(n.Left)
			if !ok {
				return 0, false, divZero
			}
			if l == 0 {
				return 0, true, false
			}
			r, ok, divZero := b.foldConst(n.Right)
			if !ok {
				return 0, false, divZero
			}
			return boolToI32(r != 0), true, false
		case "||":
			l, ok, divZero := b.foldConst(n.Left)
			if !ok {
				return 0, false, divZero
			}
			if l != 0 {
				return 1, true, false
			}
			r, ok, divZero := b.foldConst(n.Right)
			if !ok {
				return 0, false, divZero
			}
			return boolToI32(r != 0), true, false
		default:
			l, ok, divZero := b.foldConst(n.Left)
			if !ok {
				return 0, false, divZero
			}
			r, ok, divZero := b.foldConst(n.Right)
			if !ok {
				return 0, false, divZero
			}
			v, ok, divZero := foldBinary(n.Op, l, r)
			return v, ok, divZero
		}
	default:
		return 0, false, false
	}
}

// foldBinary applies two's-complement 32-bit arithmetic: division
// truncates toward zero and modulo takes the sign of the dividend, which is
// exactly Go's / and % behavior on signed integers. Division/modulo by a
// constant zero fails to fold and is reported with the third return value
// rather than folded to a value.
func foldBinary(op string, l, r int32) (int32, bool, bool) {
	switch op {
	case "+":
		return l + r, true, false
	case "-":
		return l - r, true, false
	case "*":
		return l * r, true, false
	case "/":
		if r == 0 {
			return 0, false, true
		}
		return l / r, true, false
	case "%":
		if r == 0 {
			return 0, false, true
		}
		return l % r, true, false
	case "<":
		return boolToI32(l < r), true, false
	case ">":
		return boolToI32(l > r), true, false
	case "<=":
		return boolToI32(l <= r), true, false
	case ">=":
		return boolToI32(l >= r), true, false
	case "==":
		return boolToI32(l == r), true, false
	case "!=":
		return boolToI32(l != r), true, false
	}
	return 0, false, false
}

func boolToI32(v bool) int32 {
	if v {
		return 1
	}
	return 0
}

// kirOpName maps a source operator to its KIR binary-instruction mnemonic.
func kirOpName(op string) string {
	switch op {
	case "+":
		return "add"
	case "-":
		return "sub"
	case "*":
		return "mul"
	case "/":
		return "div"
	case "%":
		return "mod"
	case "<":
		return "lt"
	case ">":
		return "gt"
	case "<=":
		return "le"
	case ">=":
		return "ge"
	case "==":
		return "eq"
	case "!=":
		return "ne"
	}
	return op
}
