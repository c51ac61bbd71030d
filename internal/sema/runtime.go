package sema

// RuntimeFunc describes one injected extern signature: the
// lowering phase binds these into the root scope before processing any
// top-level item, so calls to the runtime I/O intrinsics type-check even
// though the backend never emits their bodies (they are resolved at link
// time against the runtime library).
type RuntimeFunc struct {
	Name       string
	ReturnType ReturnType
	Arity      int
}

// RuntimeFuncs is the fixed table of standard runtime
// primitives.
var RuntimeFuncs = []RuntimeFunc{
	{"getint", ReturnInt, 0},
	{"getch", ReturnInt, 0},
	{"getarray", ReturnInt, 1},
	{"putint", ReturnVoid, 1},
	{"putch", ReturnVoid, 1},
	{"putarray", ReturnVoid, 2},
	{"starttime", ReturnVoid, 0},
	{"stoptime", ReturnVoid, 0},
}

// DeclareRuntime injects every runtime primitive into root as a Function
// binding.
func DeclareRuntime(root *Scope) {
	for _, f := range RuntimeFuncs {
		root.InsertFunction(f.Name, f.ReturnType, f.Arity)
	}
}
