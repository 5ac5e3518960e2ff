package num

import (
	"fmt"
	"math/big"
	"math/bits"
)

// I128 is a signed 128-bit integer stored as two 64-bit words. The value is
// hi·2^64 + lo, with hi read as a two's complement signed word.
type I128 struct {
	hi uint64
	lo uint64
}

// I128FromString creates a I128 from a string. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'. Only decimal strings are
// currently supported.
func I128FromString(s string) (out I128, accurate bool, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, false, fmt.Errorf("num: i128 string %q invalid", s)
	}
	out, accurate = I128FromBigInt(b)
	return out, accurate, nil
}

// I128FromRaw is the complement to I128.Raw(); it creates an I128 from two
// uint64s representing the hi and lo bits.
func I128FromRaw(hi, lo uint64) I128 {
	return I128{hi: hi, lo: lo}
}

// I128From64 sign-extends v into 128 bits.
func I128From64(v int64) I128 {
	var hi uint64
	if v < 0 {
		hi = maxUint64
	}
	return I128{hi: hi, lo: uint64(v)}
}

func I128From32(v int32) I128   { return I128From64(int64(v)) }
func I128FromU64(v uint64) I128 { return I128{lo: v} }

// I128FromBigInt creates an I128 from a big.Int. Overflow truncates to
// MaxI128/MinI128 and sets accurate to 'false'.
func I128FromBigInt(v *big.Int) (out I128, accurate bool) {
	neg := v.Sign() < 0

	var abs big.Int
	u, accurate := U128FromBigInt(abs.Abs(v))

	if !neg {
		if cmp := u.Cmp(maxI128AsU128); cmp > 0 {
			return MaxI128, false
		}
		return u.AsI128(), accurate
	}

	if cmp := u.Cmp(minI128AsAbsU128); cmp == 0 {
		return MinI128, accurate
	} else if cmp > 0 {
		return MinI128, false
	}
	return u.AsI128().Neg(), accurate
}

// FitsInt64 reports whether the words hi and lo describe a value that fits in
// an int64, which is the case when hi is the sign extension of lo.
func FitsInt64(hi, lo uint64) bool {
	return hi == uint64(int64(lo)>>63)
}

func (i I128) IsZero() bool { return i == zeroI128 }

// Raw returns access to the I128 as a pair of uint64s. See I128FromRaw() for
// the counterpart.
func (i I128) Raw() (hi uint64, lo uint64) { return i.hi, i.lo }

func (i I128) String() string {
	if i.hi&signBit == 0 {
		return U128{hi: i.hi, lo: i.lo}.String()
	}
	return "-" + i.Abs().AsU128().String()
}

func (i I128) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
		fmt.Fprintf(s, "%s", i.String())
	default:
		i.AsBigInt().Format(s, c)
	}
}

// IntoBigInt copies this I128 into a big.Int, allowing you to retain and
// recycle memory.
func (i I128) IntoBigInt(b *big.Int) {
	neg := i.hi&signBit != 0
	if neg {
		i = i.Abs()
	}
	i.AsU128().IntoBigInt(b)
	if neg {
		b.Neg(b)
	}
}

// AsBigInt allocates a new big.Int and copies this I128 into it.
func (i I128) AsBigInt() (b *big.Int) {
	b = new(big.Int)
	i.IntoBigInt(b)
	return b
}

// AsU128 performs a direct cast of an I128 to a U128. Negative numbers
// become values > math.MaxI128. MinI128.Abs().AsU128() is 2^127.
func (i I128) AsU128() U128 {
	return U128{lo: i.lo, hi: i.hi}
}

// AsInt64 truncates the I128 to fit in a int64. Values outside the range will
// over/underflow. See IsInt64() if you want to check before you convert, or
// Int64() for a checked conversion.
func (i I128) AsInt64() int64 {
	return int64(i.lo)
}

// IsInt64 reports whether i can be represented as a int64.
func (i I128) IsInt64() bool {
	return FitsInt64(i.hi, i.lo)
}

// IsInt32 reports whether i can be represented as a int32.
func (i I128) IsInt32() bool {
	if !i.IsInt64() {
		return false
	}
	v := int64(i.lo)
	return v >= minInt32 && v <= maxInt32
}

// Int64 narrows i to an int64, failing with an OverflowError if it does not
// fit.
func (i I128) Int64() (int64, error) {
	if !i.IsInt64() {
		return 0, OverflowError.New("value too big for a long: %s", i)
	}
	return int64(i.lo), nil
}

// Int32 narrows i to an int32, failing with an OverflowError if it does not
// fit.
func (i I128) Int32() (int32, error) {
	if !i.IsInt32() {
		return 0, OverflowError.New("value too big for an int: %s", i)
	}
	return int32(i.lo), nil
}

func (i I128) Sign() int {
	if i == zeroI128 {
		return 0
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// BitLen returns the number of bits required to represent the absolute value
// of i. BitLen(0) is 0 and BitLen(MinI128) is 128.
func (i I128) BitLen() int {
	return i.Abs().AsU128().BitLen()
}

func (i I128) Inc() (v I128) {
	var carry uint64
	v.lo, carry = bits.Add64(i.lo, 1, 0)
	v.hi = i.hi + carry
	return v
}

func (i I128) Dec() (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(i.lo, 1, 0)
	v.hi = i.hi - borrow
	return v
}

// Add returns i + n. Overflow wraps around, like Go's fixed-size integers.
func (i I128) Add(n I128) (v I128) {
	var carry uint64
	v.lo, carry = bits.Add64(i.lo, n.lo, 0)
	v.hi, _ = bits.Add64(i.hi, n.hi, carry)
	return v
}

// Sub returns i - n. Overflow wraps around, like Go's fixed-size integers.
func (i I128) Sub(n I128) (v I128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(i.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(i.hi, n.hi, borrow)
	return v
}

// Neg returns -i. Negating MinI128 yields MinI128.
func (i I128) Neg() (v I128) {
	return zeroI128.Sub(i)
}

// Abs returns |i|. Abs(MinI128) is MinI128; use AsU128 to read it as 2^127.
func (i I128) Abs() I128 {
	if i.hi&signBit != 0 {
		return i.Neg()
	}
	return i
}

// Cmp compares i to n and returns:
//
//	< 0 if i <  n
//	  0 if i == n
//	> 0 if i >  n
//
// The specific value returned by Cmp is undefined, but it is guaranteed to
// satisfy the above constraints.
//
func (i I128) Cmp(n I128) int {
	if i.hi == n.hi && i.lo == n.lo {
		return 0
	} else if i.hi&signBit == n.hi&signBit {
		if i.hi > n.hi || (i.hi == n.hi && i.lo > n.lo) {
			return 1
		}
	} else if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

// Cmp64 compares i to n, see Cmp.
func (i I128) Cmp64(n int64) int {
	if i.IsInt64() {
		v := int64(i.lo)
		if v > n {
			return 1
		} else if v < n {
			return -1
		}
		return 0
	}
	if i.hi&signBit == 0 {
		return 1
	}
	return -1
}

func (i I128) Equal(n I128) bool {
	return i.hi == n.hi && i.lo == n.lo
}

// IncExact adds one to i in place, failing if i is MaxI128. i is left
// untouched on failure.
func (i *I128) IncExact() error {
	if *i == MaxI128 {
		return OverflowError.New("long overflow")
	}
	*i = i.Inc()
	return nil
}

// DecExact subtracts one from i in place, failing if i is MinI128. i is left
// untouched on failure.
func (i *I128) DecExact() error {
	if *i == MinI128 {
		return OverflowError.New("long overflow")
	}
	*i = i.Dec()
	return nil
}

// AddExact32 adds n to i in place, failing if the sum leaves the I128 range.
// i is left untouched on failure.
func (i *I128) AddExact32(n int32) error {
	v := i.Add(I128From32(n))
	neg := i.hi&signBit != 0
	if (n > 0 && !neg && v.hi&signBit != 0) || (n < 0 && neg && v.hi&signBit == 0) {
		return OverflowError.New("Int128 overflow")
	}
	*i = v
	return nil
}

// SubAssign subtracts n from i in place. n is not modified. Overflow wraps
// around.
func (i *I128) SubAssign(n I128) {
	*i = i.Sub(n)
}

// MulExact32 returns i * n, failing if the product leaves the I128 range.
// Either operand may be negative.
func (i I128) MulExact32(n int32) (I128, error) {
	neg := (i.hi&signBit != 0) != (n < 0)
	m := i.Abs().AsU128()

	mn := uint64(n)
	if n < 0 {
		mn = uint64(-int64(n))
	}

	var p U128
	var lohi, hihi, carry uint64
	lohi, p.lo = bits.Mul64(m.lo, mn)
	hihi, p.hi = bits.Mul64(m.hi, mn)
	p.hi, carry = bits.Add64(p.hi, lohi, 0)

	if hihi != 0 || carry != 0 {
		return I128{}, OverflowError.New("Int128 overflow: %s * %d", i, n)
	}
	if neg {
		if p.Cmp(minI128AsAbsU128) > 0 {
			return I128{}, OverflowError.New("Int128 overflow: %s * %d", i, n)
		}
		return p.AsI128().Neg(), nil
	}
	if p.Cmp(maxI128AsU128) > 0 {
		return I128{}, OverflowError.New("Int128 overflow: %s * %d", i, n)
	}
	return p.AsI128(), nil
}

// MulPositive64x32 returns a * b. Both operands must be non-negative.
func MulPositive64x32(a int64, b int32) I128 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return I128{hi: hi, lo: lo}
}

// MulPositive returns i * n. Both operands must be non-negative and the
// product must fit in 127 bits; callers can check with BitLen beforehand.
// Overflow wraps around.
func (i I128) MulPositive(n I128) (v I128) {
	v.hi, v.lo = bits.Mul64(i.lo, n.lo)
	v.hi += i.hi*n.lo + i.lo*n.hi
	return v
}

// QuoRemPositive divides i by 'by' in place: the quotient is returned and i
// is left holding the remainder. Both operands must be non-negative.
//
// If by is zero, a DivideByZeroError is returned and i is untouched.
func (i *I128) QuoRemPositive(by I128) (q I128, err error) {
	if by.IsZero() {
		return q, DivideByZeroError.New("%s / 0", *i)
	}
	qu, ru := i.AsU128().QuoRem(by.AsU128())
	*i = ru.AsI128()
	return qu.AsI128(), nil
}

// QuoRemPositive64 is QuoRemPositive for a 64-bit divisor.
func (i *I128) QuoRemPositive64(by int64) (q I128, err error) {
	if by == 0 {
		return q, DivideByZeroError.New("%s / 0", *i)
	}
	qu, r := i.AsU128().quoRem64(uint64(by))
	*i = I128{lo: r}
	return qu.AsI128(), nil
}

func (i I128) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *I128) UnmarshalText(bts []byte) (err error) {
	v, accurate, err := I128FromString(string(bts))
	if err != nil {
		return err
	} else if !accurate {
		return OverflowError.New("i128 string %q out of range", string(bts))
	}
	*i = v
	return nil
}

func (i I128) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *I128) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("num: i128 invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}
	return i.UnmarshalText(bts)
}
