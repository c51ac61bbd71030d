package ast

// CompUnitItem is either a FuncDef or a top-level Decl (global const/var).
type CompUnitItem interface {
	Node
	isCompUnitItem()
}

func (*FuncDef) isCompUnitItem()   {}
func (*ConstDecl) isCompUnitItem() {}
func (*VarDecl) isCompUnitItem()   {}

// CompUnit is the root of the AST: an ordered sequence of top-level items.
type CompUnit struct {
	Pos, EndPos Position
	Items       []CompUnitItem
}

func (c *CompUnit) NodePos() Position    { return c.Pos }
func (c *CompUnit) NodeEndPos() Position { return c.EndPos }

// FuncParam is one formal parameter (name + type, always int in this
// language).
type FuncParam struct {
	Pos, EndPos Position
	Name        string
	Type        Type
}

func (p *FuncParam) NodePos() Position    { return p.Pos }
func (p *FuncParam) NodeEndPos() Position { return p.EndPos }

// FuncDef is a function definition: name, return type, parameters, body.
type FuncDef struct {
	Pos, EndPos Position
	Name        string
	ReturnType  Type
	Params      []*FuncParam
	Body        *Block
}

func (f *FuncDef) NodePos() Position    { return f.Pos }
func (f *FuncDef) NodeEndPos() Position { return f.EndPos }
