package kirtext

import "github.com/alecthomas/participle/v2/lexer"

// File mirrors textual form: a sequence of function and global
// definitions, in any order. Grounded on grammar/shared.go's Program/
// SourceElement shape (a top-level @@* over a sum-typed Item).
type File struct {
	Pos   lexer.Position
	Items []*Item `@@*`
}

type Item struct {
	Pos    lexer.Position
	Func   *FuncDecl   `  @@`
	Global *GlobalDecl `| @@`
}

// GlobalDecl parses "global @name = alloc i32, <int>" or "..., zeroinit".
type GlobalDecl struct {
	Pos   lexer.Position
	Name  string  `"global" "@" @Ident "=" "alloc" "i32" ","`
	Zero  bool    `(  @"zeroinit"`
	Value *string ` | @Int )`
}

// FuncDecl parses "fun @name(@p: i32, ...): i32 { <block>* }".
type FuncDecl struct {
	Pos    lexer.Position
	Name   string       `"fun" "@" @Ident "("`
	Params []*ParamDecl `[ @@ { "," @@ } ] ")"`
	Ret    string       `":" @("i32" | "unit")`
	Blocks []*BlockDecl `"{" @@* "}"`
}

type ParamDecl struct {
	Pos  lexer.Position
	Name string `"@" @Ident`
	Type string `":" @("i32" | "unit")`
}

// BlockDecl is one basic block: a label, zero or more non-terminating
// instructions, and exactly one terminator.
type BlockDecl struct {
	Pos   lexer.Position
	Label string      `"%" @Ident ":"`
	Insts []*InstDecl `@@*`
	Term  *TermDecl   `@@`
}

// Operand is a use site: a folded constant, a temporary "%name", or a
// pointer/function "@name".
type Operand struct {
	Pos lexer.Position
	Int *string `  @Int`
	Pct *string ` | "%" @(Ident | Int)`
	At  *string ` | "@" @Ident`
}

// InstDecl alternates over the five non-terminating instruction shapes.
// Load/Binary/Call all start "%Ident =", so the parser needs lookahead past
// that shared prefix to the next keyword (load/call/opname) to pick an
// alternative — see reader.go's UseLookahead(5).
type InstDecl struct {
	Pos    lexer.Position
	Alloc  *AllocInst  `  @@`
	Load   *LoadInst   `| @@`
	Store  *StoreInst  `| @@`
	Call   *CallInst   `| @@`
	Binary *BinaryInst `| @@`
}

type AllocInst struct {
	Pos    lexer.Position
	Result string `"@" @Ident "=" "alloc" "i32"`
}

type LoadInst struct {
	Pos    lexer.Position
	Result string   `"%" @(Ident | Int) "=" "load"`
	Ptr    *Operand `@@`
}

type StoreInst struct {
	Pos   lexer.Position
	Value *Operand `"store" @@ ","`
	Ptr   *Operand `@@`
}

type BinaryInst struct {
	Pos    lexer.Position
	Result string   `"%" @(Ident | Int) "="`
	Op     string   `@( "add" | "sub" | "mul" | "div" | "mod" | "lt" | "gt" | "le" | "ge" | "eq" | "ne" | "and" | "or" )`
	LHS    *Operand `@@ ","`
	RHS    *Operand `@@`
}

type CallInst struct {
	Pos    lexer.Position
	Result *string    `[ "%" @(Ident | Int) "=" ]`
	Callee string     `"call" "@" @Ident "("`
	Args   []*Operand `[ @@ { "," @@ } ] ")"`
}

// TermDecl alternates over the three terminator shapes.
type TermDecl struct {
	Pos    lexer.Position
	Branch *BranchTerm `  @@`
	Jump   *JumpTerm   `| @@`
	Return *ReturnTerm `| @@`
}

type BranchTerm struct {
	Pos        lexer.Position
	Cond       *Operand `"br" @@ ","`
	TrueLabel  string   `"%" @Ident ","`
	FalseLabel string   `"%" @Ident`
}

type JumpTerm struct {
	Pos    lexer.Position
	Target string `"jump" "%" @Ident`
}

type ReturnTerm struct {
	Pos   lexer.Position
	Value *Operand `"ret" @@?`
}
