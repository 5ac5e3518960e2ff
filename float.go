package quote

import (
	"math"

	"github.com/shopspring/decimal"
)

// FromFloat converts f to the nearest Quotation. The shortest decimal that
// round-trips to f is used, so FromFloat(0.1) is exactly 0.1.
func FromFloat(f float64) (Quotation, error) {
	d, err := floatDecimal(f)
	if err != nil {
		return Quotation{}, err
	}
	return FromDecimal(d)
}

// Float64 returns the float64 closest to q.
func (q Quotation) Float64() float64 {
	f, _ := q.Decimal().Float64()
	return f
}

// AddFloat returns q + f, rounded to the nearest nano.
func (q Quotation) AddFloat(f float64) (Quotation, error) {
	d, err := floatDecimal(f)
	if err != nil {
		return Quotation{}, err
	}
	return FromDecimal(q.Decimal().Add(d))
}

// SubFloat returns q - f, rounded to the nearest nano.
func (q Quotation) SubFloat(f float64) (Quotation, error) {
	d, err := floatDecimal(f)
	if err != nil {
		return Quotation{}, err
	}
	return FromDecimal(q.Decimal().Sub(d))
}

// MulFloat returns q * f, rounded to the nearest nano.
func (q Quotation) MulFloat(f float64) (Quotation, error) {
	d, err := floatDecimal(f)
	if err != nil {
		return Quotation{}, err
	}
	return FromDecimal(q.Decimal().Mul(d))
}

// QuoFloat returns q / f, rounded to the nearest nano.
func (q Quotation) QuoFloat(f float64) (Quotation, error) {
	if f == 0 {
		return Quotation{}, DivideByZeroError.New("%s / 0", q)
	}
	d, err := floatDecimal(f)
	if err != nil {
		return Quotation{}, err
	}
	return FromDecimal(q.Decimal().DivRound(d, nanoDigits))
}

func floatDecimal(f float64) (decimal.Decimal, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Decimal{}, OverflowError.New("value not representable: %v", f)
	}
	return decimal.NewFromFloat(f), nil
}
