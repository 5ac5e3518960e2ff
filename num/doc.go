/*
Package num provides the signed 128-bit integer (I128) used as overflow-safe
scratch space by the quotation arithmetic in the parent package, plus the
unsigned U128 it leans on for division and formatting.

I128 is a value type, but a subset of its methods take a pointer receiver and
mutate it in place to keep the multiply/divide paths free of copies:

	(*I128) IncExact() error
	(*I128) DecExact() error
	(*I128) AddExact32(n int32) error
	(*I128) SubAssign(n I128)
	(*I128) QuoRemPositive(by I128) (q I128, err error)
	(*I128) QuoRemPositive64(by int64) (q I128, err error)

These are not safe to call concurrently on the same value. Everything else
returns a new value and may be used from any goroutine.

Narrowing is always explicit and fallible:

	v := num.I128From64(math.MaxInt64)
	_ = v.IncExact()
	_, err := v.Int64()
	fmt.Println(num.OverflowError.Has(err))
	// Output: true

I128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

U128 implements fmt.Formatter and fmt.Stringer only.
*/
package num
