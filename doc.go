/*
Package quote provides Quotation, a fixed-point decimal made of an int64 whole
part and an int32 count of billionths, with exact arithmetic.

Quotation is a value type; all operations return new values.

Simple example:

	price := quote.MustParse("101.25")
	qty, _ := price.MulInt(3)
	fmt.Println(qty)
	// Output: 303.75

Quotations can be created from a variety of sources:

	Normalize(units int64, nano int32) (Quotation, error)
	Parse(s string) (Quotation, error)
	FromDecimal(d decimal.Decimal) (Quotation, error)
	FromFloat(f float64) (Quotation, error)

Every operation accepts denormalised input (a Nano of a billion or more, or
with a sign opposite to Units) and returns a normalised result:

	Add(o), AddInt(n), AddFloat(f)
	Sub(o), SubInt(n), SubFloat(f)
	Mul(o), MulInt(n), MulFloat(f)
	Quo(o), QuoInt(n), QuoFloat(f), IntQuo(n, d)

Results equal the exact decimal result rounded to the nearest nano, with ties
rounded away from zero. A result outside the range of a Quotation returns an
error of class OverflowError; dividing by zero returns a DivideByZeroError:

	_, err := quote.MustParse("1").Quo(quote.Zero)
	fmt.Println(quote.DivideByZeroError.Has(err))

Add, Sub and Cmp stay in 64-bit arithmetic unless a step would overflow.
Mul and Quo always run on the 128-bit nano value using package num. The
integer and Quotation forms do not allocate unless they return an error.

Quotation implements fmt.Stringer. Its struct tags give it the JSON shape of
the quotation object used on the wire, with units as a string:

	{"units":"12","nano":500000000}
*/
package quote
