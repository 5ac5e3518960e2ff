package quote

import (
	"math"

	"github.com/shabbyrobe/go-quote/num"
)

// Add returns q + o.
func (q Quotation) Add(o Quotation) (Quotation, error) {
	units, overflow := add64(q.Units, o.Units)
	if !overflow {
		// |q.Nano + o.Nano| < 2^32, well inside int64.
		if r, ok := normalize64(units, int64(q.Nano)+int64(o.Nano)); ok {
			return r, nil
		}
	}
	return fromNanos(q.nanos().Add(o.nanos()))
}

// Sub returns q - o.
func (q Quotation) Sub(o Quotation) (Quotation, error) {
	units, overflow := sub64(q.Units, o.Units)
	if !overflow {
		if r, ok := normalize64(units, int64(q.Nano)-int64(o.Nano)); ok {
			return r, nil
		}
	}
	return fromNanos(q.nanos().Sub(o.nanos()))
}

// AddInt returns q + n.
func (q Quotation) AddInt(n int64) (Quotation, error) {
	units, overflow := add64(q.Units, n)
	if !overflow {
		if r, ok := normalize64(units, int64(q.Nano)); ok {
			return r, nil
		}
	}
	return fromNanos(q.nanos().Add(intNanos(n)))
}

// SubInt returns q - n.
func (q Quotation) SubInt(n int64) (Quotation, error) {
	units, overflow := sub64(q.Units, n)
	if !overflow {
		if r, ok := normalize64(units, int64(q.Nano)); ok {
			return r, nil
		}
	}
	return fromNanos(q.nanos().Sub(intNanos(n)))
}

// Mul returns q * o rounded to the nearest nano, ties away from zero.
func (q Quotation) Mul(o Quotation) (Quotation, error) {
	a, b := q.nanos(), o.nanos()
	neg := (a.Sign() < 0) != (b.Sign() < 0)
	a, b = a.Abs(), b.Abs()

	// a*b is at least 2^(BitLen(a)+BitLen(b)-2). Past 127 bits that is
	// 2^126 or more, far outside the Quotation range.
	if a.BitLen()+b.BitLen() > 127 {
		return Quotation{}, OverflowError.New("%s * %s", q, o)
	}
	p := a.MulPositive(b)

	v, err := roundQuoPositive(p, nanoIn128)
	if err != nil {
		return Quotation{}, err
	}
	if neg {
		v = v.Neg()
	}
	return fromNanos(v)
}

// MulInt returns q * n. The result is exact.
func (q Quotation) MulInt(n int64) (Quotation, error) {
	a, b := q.nanos(), num.I128From64(n)
	neg := (a.Sign() < 0) != (n < 0)
	a, b = a.Abs(), b.Abs()

	if a.BitLen()+b.BitLen() > 127 {
		return Quotation{}, OverflowError.New("%s * %d", q, n)
	}
	v := a.MulPositive(b)
	if neg {
		v = v.Neg()
	}
	return fromNanos(v)
}

// Quo returns q / o rounded to the nearest nano, ties away from zero.
func (q Quotation) Quo(o Quotation) (Quotation, error) {
	d := o.nanos()
	if d.IsZero() {
		return Quotation{}, DivideByZeroError.New("%s / %s", q, o)
	}

	// Scaling the dividend by 1e9 keeps nine fractional digits in the
	// quotient. It needs at most 94+30 bits.
	a, err := q.nanos().MulExact32(nanoScale)
	if err != nil {
		return Quotation{}, err
	}
	neg := (a.Sign() < 0) != (d.Sign() < 0)

	v, err := roundQuoPositive(a.Abs(), d.Abs())
	if err != nil {
		return Quotation{}, err
	}
	if neg {
		v = v.Neg()
	}
	return fromNanos(v)
}

// QuoInt returns q / n rounded to the nearest nano, ties away from zero.
func (q Quotation) QuoInt(n int64) (Quotation, error) {
	if n == 0 {
		return Quotation{}, DivideByZeroError.New("%s / 0", q)
	}
	a := q.nanos()
	neg := (a.Sign() < 0) != (n < 0)
	a = a.Abs()

	var v num.I128
	if n == math.MinInt64 {
		// |MinInt64| does not fit the 64-bit divisor path.
		var err error
		v, err = roundQuoPositive(a, num.I128From64(n).Abs())
		if err != nil {
			return Quotation{}, err
		}
	} else {
		if n < 0 {
			n = -n
		}
		v, _ = a.QuoRemPositive64(n)
		// a now holds the remainder; round up when it is at least half of n.
		if a.Cmp64(n-a.AsInt64()) >= 0 {
			v = v.Inc()
		}
	}
	if neg {
		v = v.Neg()
	}
	return fromNanos(v)
}

// IntQuo returns n / d rounded to the nearest nano, ties away from zero.
func IntQuo(n int64, d Quotation) (Quotation, error) {
	dn := d.nanos()
	if dn.IsZero() {
		return Quotation{}, DivideByZeroError.New("%d / %s", n, d)
	}

	// n*1e18 fits easily: |n| < 2^63 and 1e18 < 2^60.
	a, err := intNanos(n).MulExact32(nanoScale)
	if err != nil {
		return Quotation{}, err
	}
	neg := (a.Sign() < 0) != (dn.Sign() < 0)

	v, err := roundQuoPositive(a.Abs(), dn.Abs())
	if err != nil {
		return Quotation{}, err
	}
	if neg {
		v = v.Neg()
	}
	return fromNanos(v)
}

// Neg returns -q. It fails only for values whose whole part is math.MinInt64.
func (q Quotation) Neg() (Quotation, error) {
	return fromNanos(q.nanos().Neg())
}

// Abs returns |q|.
func (q Quotation) Abs() (Quotation, error) {
	if q.Sign() < 0 {
		return q.Neg()
	}
	return Normalize(q.Units, q.Nano)
}

var nanoIn128 = num.I128From64(nanoScale)

// intNanos returns n counted in nano units. |n*1e9| < 2^93, so it never
// overflows.
func intNanos(n int64) num.I128 {
	v, _ := num.I128From64(n).MulExact32(nanoScale)
	return v
}

// roundQuoPositive returns n / d for non-negative operands, rounded half up.
func roundQuoPositive(n, d num.I128) (num.I128, error) {
	q, err := n.QuoRemPositive(d)
	if err != nil {
		return q, err
	}

	// n holds the remainder r. Round up when r >= d - r, i.e. 2r >= d.
	d.SubAssign(n)
	if n.Cmp(d) >= 0 {
		if err := q.IncExact(); err != nil {
			return q, err
		}
	}
	return q, nil
}
