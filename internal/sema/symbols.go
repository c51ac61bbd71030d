// Package sema implements the scoped symbol table: a stack of scope frames
// mapping source identifiers to bindings, with per-scope KIR name suffixing
// so shadowed locals get globally unique names within a function.
package sema

import (
	"fmt"

	"github.com/iancoleman/strcase"
)

type BindingKind int

const (
	BindingConst BindingKind = iota
	BindingLocalVar
	BindingGlobalVar
	BindingFunction
)

var bindingKindNames = map[BindingKind]string{
	BindingConst:     "Const",
	BindingLocalVar:  "LocalVar",
	BindingGlobalVar: "GlobalVar",
	BindingFunction:  "Function",
}

// String renders a BindingKind as the snake_case word diagnostics use (e.g.
// "cannot assign to const %q"); strcase.ToSnake keeps that wording in
// sync with the Go constant names above instead of a second hand-maintained
// string table.
func (k BindingKind) String() string {
	return strcase.ToSnake(bindingKindNames[k])
}

// Binding is one resolved name. Const carries Value; LocalVar/GlobalVar carry
// KIRName (the pointer to alloc/global_alloc'd storage); Function carries
// ReturnType and Arity.
type Binding struct {
	Name       string
	Kind       BindingKind
	Value      int32
	KIRName    string
	ReturnType ReturnType
	Arity      int
}

// ReturnType mirrors ast.Type without importing the ast package, keeping
// sema usable from both the parser-facing builder and tooling like the LSP
// that only needs binding shapes.
type ReturnType int

const (
	ReturnInt ReturnType = iota
	ReturnVoid
)

// Scope is one scope frame. The root scope (created by
// NewRoot) has no parent and corresponds to the compilation unit; each
// function entry and each block entry pushes a child frame.
type Scope struct {
	parent     *Scope
	bindings   map[string]*Binding
	path       string
	childCount int
}

func NewRoot() *Scope {
	return &Scope{bindings: make(map[string]*Binding)}
}

// Push creates and returns a new child frame whose path suffix is
// "parent_path + _ + parent.next_child_id()".
func (s *Scope) Push() *Scope {
	id := s.childCount
	s.childCount++
	return &Scope{
		parent:   s,
		bindings: make(map[string]*Binding),
		path:     fmt.Sprintf("%s_%d", s.path, id),
	}
}

// Pop returns the parent frame, discarding this one. Bindings introduced in
// the popped frame become unreachable; the source language has no dangling
// references across scope exit.
func (s *Scope) Pop() *Scope {
	return s.parent
}

// Depth reports how many Push calls separate this scope from the root; zero
// means the top-level compilation-unit scope.
func (s *Scope) Depth() int {
	d := 0
	for cur := s; cur.parent != nil; cur = cur.parent {
		d++
	}
	return d
}

// InsertConst fails (returns false) if name already exists in this frame.
func (s *Scope) InsertConst(name string, value int32) bool {
	if _, exists := s.bindings[name]; exists {
		return false
	}
	s.bindings[name] = &Binding{Name: name, Kind: BindingConst, Value: value}
	return true
}

// InsertVar binds name to a fresh, scope-suffixed KIR name derived from
// kirBase (e.g. "@x" + scope path -> "@x_3_0"), guaranteeing uniqueness
// across shadowed scopes within a function.
func (s *Scope) InsertVar(name, kirBase string, global bool) (string, bool) {
	if _, exists := s.bindings[name]; exists {
		return "", false
	}
	kirName := kirBase + s.path
	kind := BindingLocalVar
	if global {
		kind = BindingGlobalVar
		kirName = kirBase // globals keep their declared name, no scope suffix
	}
	s.bindings[name] = &Binding{Name: name, Kind: kind, KIRName: kirName}
	return kirName, true
}

func (s *Scope) InsertFunction(name string, ret ReturnType, arity int) bool {
	if _, exists := s.bindings[name]; exists {
		return false
	}
	s.bindings[name] = &Binding{Name: name, Kind: BindingFunction, ReturnType: ret, Arity: arity}
	return true
}

// Lookup walks from this frame to the root, returning the first hit or nil.
func (s *Scope) Lookup(name string) *Binding {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.bindings[name]; ok {
			return b
		}
	}
	return nil
}

// LookupLocal only checks this frame, without walking to parents.
func (s *Scope) LookupLocal(name string) *Binding {
	return s.bindings[name]
}
