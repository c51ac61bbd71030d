package kirtext

import (
	"fmt"
	"strings"

	"sysyc/internal/kir"
)

// ToProgram lowers the parsed grammar tree into the same typed *kir.Program
// that internal/kir.Builder produces, so downstream consumers (internal/riscv)
// never need to know whether a Program came from source or from a .kir file.
func (f *File) ToProgram() (*kir.Program, error) {
	prog := &kir.Program{}
	for _, it := range f.Items {
		switch {
		case it.Func != nil:
			fn, err := it.Func.toFunc()
			if err != nil {
				return nil, err
			}
			prog.Funcs = append(prog.Funcs, fn)
		case it.Global != nil:
			prog.Globals = append(prog.Globals, it.Global.toGlobal())
		default:
			return nil, fmt.Errorf("kirtext: empty top-level item at %s", it.Pos)
		}
	}
	return prog, nil
}

func typeFromTag(s string) kir.Type {
	if s == "unit" {
		return kir.UnitType{}
	}
	return kir.I32Type{}
}

func parseInt32(s string) int32 {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var v int64
	for _, c := range s {
		v = v*10 + int64(c-'0')
	}
	if neg {
		v = -v
	}
	return int32(v)
}

func (g *GlobalDecl) toGlobal() *kir.Global {
	if g.Zero {
		return &kir.Global{Name: g.Name, IsZeroInit: true}
	}
	return &kir.Global{Name: g.Name, Init: parseInt32(*g.Value)}
}

func (o *Operand) toKIR() kir.Operand {
	switch {
	case o.Int != nil:
		return kir.ConstOperand(parseInt32(*o.Int))
	case o.Pct != nil:
		return kir.NameOperand("%" + *o.Pct)
	default:
		return kir.NameOperand("@" + *o.At)
	}
}

func (fd *FuncDecl) toFunc() (*kir.Function, error) {
	fn := &kir.Function{Name: fd.Name, ReturnType: typeFromTag(fd.Ret)}
	for _, p := range fd.Params {
		fn.Params = append(fn.Params, kir.Param{Name: "@" + p.Name, Type: typeFromTag(p.Type)})
	}
	for _, b := range fd.Blocks {
		bb, err := b.toBlock()
		if err != nil {
			return nil, err
		}
		fn.Blocks = append(fn.Blocks, bb)
	}
	return fn, nil
}

func (bd *BlockDecl) toBlock() (*kir.BasicBlock, error) {
	bb := &kir.BasicBlock{Label: "%" + bd.Label}
	for _, in := range bd.Insts {
		inst, err := in.toInst()
		if err != nil {
			return nil, err
		}
		bb.Instructions = append(bb.Instructions, inst)
	}
	term, err := bd.Term.toTerm()
	if err != nil {
		return nil, err
	}
	bb.Term = term
	return bb, nil
}

func (in *InstDecl) toInst() (kir.Instruction, error) {
	switch {
	case in.Alloc != nil:
		return &kir.AllocInst{Result: "@" + in.Alloc.Result, Type: kir.I32Type{}}, nil
	case in.Load != nil:
		return &kir.LoadInst{Result: "%" + in.Load.Result, Ptr: in.Load.Ptr.toKIR()}, nil
	case in.Store != nil:
		return &kir.StoreInst{Value: in.Store.Value.toKIR(), Ptr: in.Store.Ptr.toKIR()}, nil
	case in.Call != nil:
		args := make([]kir.Operand, len(in.Call.Args))
		for i, a := range in.Call.Args {
			args[i] = a.toKIR()
		}
		result := ""
		if in.Call.Result != nil {
			result = "%" + *in.Call.Result
		}
		return &kir.CallInst{Result: result, Callee: in.Call.Callee, Args: args}, nil
	case in.Binary != nil:
		return &kir.BinaryInst{
			Result: "%" + in.Binary.Result,
			Op:     in.Binary.Op,
			LHS:    in.Binary.LHS.toKIR(),
			RHS:    in.Binary.RHS.toKIR(),
		}, nil
	}
	return nil, fmt.Errorf("kirtext: empty instruction node at %s", in.Pos)
}

func (t *TermDecl) toTerm() (kir.Terminator, error) {
	switch {
	case t.Branch != nil:
		return &kir.BranchTerm{
			Cond:       t.Branch.Cond.toKIR(),
			TrueLabel:  "%" + t.Branch.TrueLabel,
			FalseLabel: "%" + t.Branch.FalseLabel,
		}, nil
	case t.Jump != nil:
		return &kir.JumpTerm{Target: "%" + t.Jump.Target}, nil
	case t.Return != nil:
		if t.Return.Value == nil {
			return &kir.ReturnTerm{}, nil
		}
		v := t.Return.Value.toKIR()
		return &kir.ReturnTerm{Value: &v}, nil
	}
	return nil, fmt.Errorf("kirtext: empty terminator node at %s", t.Pos)
}
