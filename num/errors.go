package num

import "github.com/zeebo/errs"

var (
	// OverflowError is the class of errors returned when a result does not
	// fit the width it is being stored in.
	OverflowError = errs.Class("overflow")

	// DivideByZeroError is the class of errors returned when a divisor is
	// zero.
	DivideByZeroError = errs.Class("division by zero")
)
