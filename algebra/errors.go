package algebra

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrInvalidArgument is returned when a structure's configuration or an
	// element's raw value is rejected by the structure.
	ErrInvalidArgument = errors.NewKind("invalid argument: %s")
	// ErrInvalidOperation is returned for mathematically undefined
	// operations, such as inverting an element of a semigroup.
	ErrInvalidOperation = errors.NewKind("invalid operation: %s")
	// ErrIncompatibleOperand is returned when an element is unbound or when
	// two elements do not belong to the same structure instance.
	ErrIncompatibleOperand = errors.NewKind("incompatible operand: %s")
	// ErrRuntime signals a broken internal invariant.
	ErrRuntime = errors.NewKind("runtime error: %s")
)

var (
	errNoSemigroupInverse = ErrInvalidOperation.New("there is no inverse in semigroup")
	errNoRingInverse      = ErrInvalidOperation.New("there is no inverse in ring")
)
