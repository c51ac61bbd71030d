package ast

import (
	"fmt"
	"strings"
)

func (c *CompUnit) String() string {
	var b strings.Builder
	for _, item := range c.Items {
		b.WriteString(item.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (f *FuncDef) String() string {
	var b strings.Builder
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = fmt.Sprintf("%s %s", p.Type, p.Name)
	}
	b.WriteString(fmt.Sprintf("%s %s(%s) ", f.ReturnType, f.Name, strings.Join(params, ", ")))
	b.WriteString(f.Body.String())
	return b.String()
}

func (d *ConstDecl) String() string {
	return declString("const "+d.BaseType.String(), d.Defs)
}

func (d *VarDecl) String() string {
	return declString(d.BaseType.String(), d.Defs)
}

func declString(prefix string, defs []*Def) string {
	parts := make([]string, len(defs))
	for i, def := range defs {
		if def.Init != nil {
			parts[i] = fmt.Sprintf("%s = %s", def.Name, def.Init.String())
		} else {
			parts[i] = def.Name
		}
	}
	return fmt.Sprintf("%s %s;", prefix, strings.Join(parts, ", "))
}

func (b *Block) String() string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, item := range b.Items {
		sb.WriteString("  " + itemString(item) + "\n")
	}
	sb.WriteString("}")
	return sb.String()
}

func itemString(item BlockItem) string {
	switch n := item.(type) {
	case *ConstDecl:
		return n.String()
	case *VarDecl:
		return n.String()
	case Stmt:
		return stmtString(n)
	default:
		return "?"
	}
}

func stmtString(s Stmt) string {
	switch n := s.(type) {
	case *EmptyStmt:
		return ";"
	case *ExprStmt:
		return n.X.String() + ";"
	case *AssignStmt:
		return fmt.Sprintf("%s = %s;", n.LHS.String(), n.RHS.String())
	case *ReturnStmt:
		if n.Value == nil {
			return "return;"
		}
		return "return " + n.Value.String() + ";"
	case *Block:
		return n.String()
	case *IfStmt:
		if n.Else != nil {
			return fmt.Sprintf("if (%s) %s else %s", n.Cond.String(), stmtString(n.Then), stmtString(n.Else))
		}
		return fmt.Sprintf("if (%s) %s", n.Cond.String(), stmtString(n.Then))
	case *WhileStmt:
		return fmt.Sprintf("while (%s) %s", n.Cond.String(), stmtString(n.Body))
	case *BreakStmt:
		return "break;"
	case *ContinueStmt:
		return "continue;"
	default:
		return "?"
	}
}

func (n *NumberExpr) String() string { return fmt.Sprintf("%d", n.Value) }
func (i *IdentExpr) String() string  { return i.Name }
func (u *UnaryExpr) String() string  { return u.Op + u.Value.String() }
func (b *BinaryExpr) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left.String(), b.Op, b.Right.String())
}
func (c *CallExpr) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = a.String()
	}
	return fmt.Sprintf("%s(%s)", c.Callee, strings.Join(args, ", "))
}
