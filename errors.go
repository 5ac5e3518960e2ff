package quote

import (
	"github.com/zeebo/errs"

	"github.com/shabbyrobe/go-quote/num"
)

var (
	// Error wraps failures to read a Quotation from text or a decimal.
	Error = errs.Class("quote")

	// OverflowError is returned when a result is outside the range a
	// Quotation can hold. It is the same class as num.OverflowError.
	OverflowError = &num.OverflowError

	// DivideByZeroError is returned by every division form when the divisor
	// is zero.
	DivideByZeroError = &num.DivideByZeroError
)
