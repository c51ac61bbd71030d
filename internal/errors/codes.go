// Package errors implements the compiler's error taxonomy and a
// caret-pointing terminal reporter.
package errors

// Error code ranges:
// E1xxx: name resolution
// E2xxx: const violations
// E3xxx: control-flow misuse
// E4xxx: type-ish errors
// E9xxx: internal invariant violations (compiler bugs, not user errors)
const (
	ErrUndefinedVariable = "E1001"
	ErrUndefinedFunction = "E1002"
	ErrRedefinition      = "E1003"

	ErrAssignToConst       = "E2001"
	ErrNonConstInitializer = "E2002"

	ErrBreakOutsideLoop    = "E3001"
	ErrContinueOutsideLoop = "E3002"

	ErrCallArity     = "E4001"
	ErrVoidInExpr    = "E4002"
	ErrDivByZeroFold = "E4003"

	ErrInternalInvariant = "E9001"
)
