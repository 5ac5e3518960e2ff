package quote

import (
	"strconv"

	"github.com/shabbyrobe/go-quote/num"
)

const (
	// nanoScale is the number of nano units in one whole unit.
	nanoScale = 1_000_000_000

	// nanoDigits is the number of fractional digits a Quotation carries.
	nanoDigits = 9
)

// Quotation is a fixed-point decimal made of a whole part and a fractional
// part counted in billionths: Units + Nano/1e9.
//
// A normalised Quotation has |Nano| < 1e9 and Nano is either zero or carries
// the same sign as Units. When Units is zero, Nano alone carries the sign.
// Every operation in this package accepts denormalised input and returns
// normalised results.
//
// The JSON form matches the wire protocol's quotation object, with units
// encoded as a string.
type Quotation struct {
	Units int64 `json:"units,string"`
	Nano  int32 `json:"nano"`
}

// Zero is the zero Quotation.
var Zero = Quotation{}

// Normalize returns the normalised Quotation for units + nano/1e9. It fails
// with an OverflowError only if the value is outside the representable range.
func Normalize(units int64, nano int32) (Quotation, error) {
	if q, ok := normalize64(units, int64(nano)); ok {
		return q, nil
	}
	return fromNanos(Quotation{Units: units, Nano: nano}.nanos())
}

// normalize64 normalises units + nano/1e9 using int64 arithmetic only. ok is
// false if carrying nano into units would overflow.
func normalize64(units, nano int64) (q Quotation, ok bool) {
	if nano <= -nanoScale || nano >= nanoScale {
		var overflow bool
		units, overflow = add64(units, nano/nanoScale)
		if overflow {
			return q, false
		}
		nano %= nanoScale
	}

	if units > 0 && nano < 0 {
		units--
		nano += nanoScale
	} else if units < 0 && nano > 0 {
		units++
		nano -= nanoScale
	}
	return Quotation{Units: units, Nano: int32(nano)}, true
}

// fromNanos splits a value counted in nano units into a normalised Quotation.
func fromNanos(v num.I128) (Quotation, error) {
	neg := v.Sign() < 0
	rem := v.Abs()

	// Callers never pass MinI128, so rem is non-negative.
	units, _ := rem.QuoRemPositive64(nanoScale)
	nano := int32(rem.AsInt64())
	if neg {
		units = units.Neg()
		nano = -nano
	}

	u, err := units.Int64()
	if err != nil {
		return Quotation{}, err
	}
	return Quotation{Units: u, Nano: nano}, nil
}

// nanos returns the exact value of q counted in nano units. It works for
// any raw field combination: |Units*1e9 + Nano| < 2^94.
func (q Quotation) nanos() num.I128 {
	v, _ := num.I128From64(q.Units).MulExact32(nanoScale)
	_ = v.AddExact32(q.Nano)
	return v
}

// IsNormal reports whether q is already in normalised form.
func (q Quotation) IsNormal() bool {
	if q.Nano <= -nanoScale || q.Nano >= nanoScale {
		return false
	}
	return q.Nano == 0 || q.Units == 0 || (q.Units > 0) == (q.Nano > 0)
}

func (q Quotation) IsZero() bool {
	if q.IsNormal() {
		return q.Units == 0 && q.Nano == 0
	}
	return q.nanos().IsZero()
}

// Sign returns -1, 0 or 1 depending on the sign of the value of q.
func (q Quotation) Sign() int {
	if !q.IsNormal() {
		return q.nanos().Sign()
	}
	switch {
	case q.Units > 0:
		return 1
	case q.Units < 0:
		return -1
	case q.Nano > 0:
		return 1
	case q.Nano < 0:
		return -1
	}
	return 0
}

// Cmp compares the values of q and o and returns:
//
//	-1 if q <  o
//	 0 if q == o
//	+1 if q >  o
//
// Quotations with different fields but the same value compare equal.
func (q Quotation) Cmp(o Quotation) int {
	if q.IsNormal() && o.IsNormal() {
		switch {
		case q.Units > o.Units:
			return 1
		case q.Units < o.Units:
			return -1
		case q.Nano > o.Nano:
			return 1
		case q.Nano < o.Nano:
			return -1
		}
		return 0
	}

	c := q.nanos().Cmp(o.nanos())
	if c > 0 {
		return 1
	} else if c < 0 {
		return -1
	}
	return 0
}

// Equal reports whether q and o have the same value.
func (q Quotation) Equal(o Quotation) bool {
	return q.Cmp(o) == 0
}

// String returns the canonical decimal form of q: the integer part, then a
// '.' and as many fractional digits as needed with trailing zeros trimmed.
// Integers have no decimal point. Negative values have a single leading '-'.
func (q Quotation) String() string {
	if !q.IsNormal() {
		// Denormalised input may carry a whole part that only fits in
		// 128 bits, so render it from the nano value directly.
		v := q.nanos()
		neg := v.Sign() < 0
		rem := v.Abs()
		units, _ := rem.QuoRemPositive64(nanoScale)
		return formatParts(neg, units.String(), uint64(rem.AsInt64()))
	}

	neg := q.Units < 0 || q.Nano < 0
	var whole string
	if q.Units < 0 {
		whole = strconv.FormatUint(uint64(-(q.Units+1))+1, 10)
	} else {
		whole = strconv.FormatInt(q.Units, 10)
	}
	nano := int64(q.Nano)
	if nano < 0 {
		nano = -nano
	}
	return formatParts(neg, whole, uint64(nano))
}

func formatParts(neg bool, whole string, nano uint64) string {
	buf := make([]byte, 0, len(whole)+nanoDigits+2)
	if neg {
		buf = append(buf, '-')
	}
	buf = append(buf, whole...)
	if nano == 0 {
		return string(buf)
	}

	var frac [nanoDigits]byte
	for i := nanoDigits - 1; i >= 0; i-- {
		frac[i] = byte('0' + nano%10)
		nano /= 10
	}
	end := nanoDigits
	for frac[end-1] == '0' {
		end--
	}
	buf = append(buf, '.')
	buf = append(buf, frac[:end]...)
	return string(buf)
}

// DebugString renders the raw fields of q as "[units; nano]", without
// normalising.
func (q Quotation) DebugString() string {
	buf := make([]byte, 0, 36)
	buf = append(buf, '[')
	buf = strconv.AppendInt(buf, q.Units, 10)
	buf = append(buf, "; "...)
	buf = strconv.AppendInt(buf, int64(q.Nano), 10)
	buf = append(buf, ']')
	return string(buf)
}

func add64(a, b int64) (sum int64, overflow bool) {
	sum = a + b
	return sum, (a >= 0) == (b >= 0) && (sum >= 0) != (a >= 0)
}

func sub64(a, b int64) (diff int64, overflow bool) {
	diff = a - b
	return diff, (a >= 0) != (b >= 0) && (diff >= 0) != (a >= 0)
}
