package quote

import (
	"github.com/shopspring/decimal"

	"github.com/shabbyrobe/go-quote/num"
)

// Decimal returns the exact value of q as a decimal.Decimal. q does not need
// to be normalised.
func (q Quotation) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(q.nanos().AsBigInt(), -nanoDigits)
}

// FromDecimal converts d to a Quotation, rounding to the nearest nano with
// ties away from zero.
func FromDecimal(d decimal.Decimal) (Quotation, error) {
	b := d.Round(nanoDigits).Shift(nanoDigits).BigInt()
	v, accurate := num.I128FromBigInt(b)
	if !accurate {
		return Quotation{}, OverflowError.New("%s out of range", d)
	}
	return fromNanos(v)
}

// Parse reads a decimal string such as "-12.5" or "3e-4". Digits past the
// ninth fractional place are rounded to the nearest nano, ties away from
// zero.
func Parse(s string) (Quotation, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Quotation{}, Error.Wrap(err)
	}
	return FromDecimal(d)
}
