package riscv

// scratch is the register set the arbiter bitmaps over:
// the seven temporaries plus the eight argument registers, which double as
// general scratch space between calls. x0 is never allocated — callers use
// the literal "x0" directly for the constant zero.
var scratch = []string{
	"t0", "t1", "t2", "t3", "t4", "t5", "t6",
	"a0", "a1", "a2", "a3", "a4", "a5", "a6", "a7",
}

// Arbiter is a bitmap register allocator with no spilling: Alloc
// returns the lowest free scratch register, FreeAll releases all of them. The
// emitter calls FreeAll after every complete KIR instruction, so no value
// stays live in a register across instructions — correctness over speed.
type Arbiter struct {
	used [15]bool
}

func NewArbiter() *Arbiter {
	return &Arbiter{}
}

// Alloc panics on exhaustion: this is an implementation bug,
// not a runtime condition a well-formed program can trigger (free-on-flush
// bounds live registers to what a single instruction needs, well under 15).
func (a *Arbiter) Alloc() string {
	for i, busy := range a.used {
		if !busy {
			a.used[i] = true
			return scratch[i]
		}
	}
	panic("riscv: register arbiter exhausted")
}

func (a *Arbiter) FreeAll() {
	for i := range a.used {
		a.used[i] = false
	}
}

// Empty reports whether every scratch register is free. The backend itself
// does not call it; genFunction calls FreeAll after every instruction and
// terminator instead.
func (a *Arbiter) Empty() bool {
	for _, busy := range a.used {
		if busy {
			return false
		}
	}
	return true
}
