package ast

// Decl is either a const-decl or a var-decl.
type Decl interface {
	Node
	isDecl()
}

func (*ConstDecl) isDecl() {}
func (*VarDecl) isDecl()   {}

// Def is one name (+ optional initialiser) within a declaration's
// comma-separated definition list.
type Def struct {
	Pos, EndPos Position
	Name        string
	Init        Expr // nil for an uninitialised var-decl definition
}

// ConstDecl is "const int a = 1, b = 2;". Every Def.Init must be non-nil and
// fold to a compile-time constant.
type ConstDecl struct {
	Pos, EndPos Position
	BaseType    Type
	Defs        []*Def
}

func (d *ConstDecl) NodePos() Position    { return d.Pos }
func (d *ConstDecl) NodeEndPos() Position { return d.EndPos }

// VarDecl is "int a, b = 2;". Defs may or may not carry an initialiser.
type VarDecl struct {
	Pos, EndPos Position
	BaseType    Type
	Defs        []*Def
}

func (d *VarDecl) NodePos() Position    { return d.Pos }
func (d *VarDecl) NodeEndPos() Position { return d.EndPos }
