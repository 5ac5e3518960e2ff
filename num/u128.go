package num

import (
	"fmt"
	"math/big"
	"math/bits"
	"strconv"
)

// U128 is an unsigned 128-bit integer. In this package it mostly carries
// magnitudes: I128 division and formatting work on the absolute value.
type U128 struct {
	hi, lo uint64
}

func U128FromRaw(hi, lo uint64) U128 { return U128{hi: hi, lo: lo} }
func U128From64(v uint64) U128       { return U128{lo: v} }

// U128FromBigInt creates a U128 from a big.Int. Overflow truncates to MaxU128
// and sets accurate to 'false'.
func U128FromBigInt(v *big.Int) (out U128, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}

	words := v.Bits()

	switch intSize {
	case 64:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{hi: uint64(words[1]), lo: uint64(words[0])}, true
		default:
			return MaxU128, false
		}

	case 32:
		switch len(words) {
		case 0:
			return U128{}, true
		case 1:
			return U128{lo: uint64(words[0])}, true
		case 2:
			return U128{lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 3:
			return U128{hi: uint64(words[2]), lo: (uint64(words[1]) << 32) | (uint64(words[0]))}, true
		case 4:
			return U128{
				hi: (uint64(words[3]) << 32) | (uint64(words[2])),
				lo: (uint64(words[1]) << 32) | (uint64(words[0])),
			}, true
		default:
			return MaxU128, false
		}

	default:
		panic("num: unsupported bit size")
	}
}

func (u U128) IsZero() bool { return u == zeroU128 }

// Raw returns access to the U128 as a pair of uint64s. See U128FromRaw() for
// the counterpart.
func (u U128) Raw() (hi, lo uint64) { return u.hi, u.lo }

// String renders u in base 10 without going through math/big.
func (u U128) String() string {
	if u.hi == 0 {
		return strconv.FormatUint(u.lo, 10)
	}

	// 2^128 has 39 digits; the loop peels off 19 at a time.
	var buf [40]byte
	i := len(buf)
	for u.hi != 0 {
		var r uint64
		u, r = u.quoRem64(1e19)
		for j := 0; j < 19; j++ {
			i--
			buf[i] = byte('0' + r%10)
			r /= 10
		}
	}
	head := strconv.AppendUint(make([]byte, 0, len(buf)-i+20), u.lo, 10)
	return string(append(head, buf[i:]...))
}

func (u U128) Format(s fmt.State, c rune) {
	switch c {
	case 'd', 's', 'v':
		fmt.Fprintf(s, "%s", u.String())
	default:
		u.AsBigInt().Format(s, c)
	}
}

func (u U128) IntoBigInt(b *big.Int) {
	switch intSize {
	case 64:
		bits := b.Bits()
		if ln := len(bits); ln < 2 {
			bits = append(bits, make([]big.Word, 2-ln)...)
		}
		bits = bits[:2]
		bits[0] = big.Word(u.lo)
		bits[1] = big.Word(u.hi)
		b.SetBits(bits)

	default:
		b.SetUint64(u.hi)
		b.Lsh(b, 64)
		var lo big.Int
		lo.SetUint64(u.lo)
		b.Add(b, &lo)
	}
}

func (u U128) AsBigInt() (b *big.Int) {
	var v big.Int
	u.IntoBigInt(&v)
	return &v
}

// AsI128 performs a direct cast of a U128 to an I128, which will interpret it
// as a two's complement value.
func (u U128) AsI128() I128 {
	return I128{lo: u.lo, hi: u.hi}
}

// IsUint64 reports whether u can be represented as a uint64.
func (u U128) IsUint64() bool {
	return u.hi == 0
}

func (u U128) Inc() (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, 1, 0)
	v.hi = u.hi + carry
	return v
}

func (u U128) Dec() (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, 1, 0)
	v.hi = u.hi - borrow
	return v
}

func (u U128) Add(n U128) (v U128) {
	var carry uint64
	v.lo, carry = bits.Add64(u.lo, n.lo, 0)
	v.hi, _ = bits.Add64(u.hi, n.hi, carry)
	return v
}

func (u U128) Sub(n U128) (v U128) {
	var borrow uint64
	v.lo, borrow = bits.Sub64(u.lo, n.lo, 0)
	v.hi, _ = bits.Sub64(u.hi, n.hi, borrow)
	return v
}

func (u U128) Cmp(n U128) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u U128) And(v U128) (out U128) {
	out.hi = u.hi & v.hi
	out.lo = u.lo & v.lo
	return out
}

func (u U128) Lsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.hi = u.lo << (n - 64)
	} else if n < 64 {
		v.hi = (u.hi << n) | (u.lo >> (64 - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u U128) Rsh(n uint) (v U128) {
	if n == 0 {
		return u
	} else if n > 64 {
		v.lo = u.hi >> (n - 64)
	} else if n < 64 {
		v.lo = (u.lo >> n) | (u.hi << (64 - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

func (u U128) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros64(u.lo)) + 64
	}
	return uint(bits.LeadingZeros64(u.hi))
}

func (u U128) TrailingZeros() uint {
	if u.lo == 0 {
		return uint(bits.TrailingZeros64(u.hi)) + 64
	}
	return uint(bits.TrailingZeros64(u.lo))
}

// BitLen returns the number of bits required to represent u.
func (u U128) BitLen() int {
	return 128 - int(u.LeadingZeros())
}

// mul64 returns the low 128 bits of u * n.
func (u U128) mul64(n uint64) (v U128) {
	var hi uint64
	hi, v.lo = bits.Mul64(u.lo, n)
	v.hi = hi + u.hi*n
	return v
}

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0, a
// division-by-zero run-time panic occurs.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
func (u U128) QuoRem(by U128) (q, r U128) {
	if by.hi == 0 {
		if by.lo == 0 {
			panic("u128: division by zero")
		}
		var r64 uint64
		q, r64 = u.quoRem64(by.lo)
		return q, U128{lo: r64}
	}

	if cmp := u.Cmp(by); cmp < 0 {
		return q, u // it's 100% remainder
	} else if cmp == 0 {
		return U128{lo: 1}, r
	}

	byTrailing0 := by.TrailingZeros()
	if by.LeadingZeros()+byTrailing0 == 127 {
		// Power of two:
		return u.Rsh(byTrailing0), by.Dec().And(u)
	}

	// Adapted from Warren, Hacker's Delight, 9-5 (divlu128): estimate the
	// quotient from the top word of the normalised divisor, which is at most
	// one too large.
	sh := uint(bits.LeadingZeros64(by.hi))
	v1 := by.Lsh(sh)
	u1 := u.Rsh(1)

	tq, _ := bits.Div64(u1.hi, u1.lo, v1.hi)
	tq >>= 63 - sh
	if tq != 0 {
		tq--
	}

	q = U128{lo: tq}
	r = u.Sub(by.mul64(tq))
	if r.Cmp(by) >= 0 {
		q = q.Inc()
		r = r.Sub(by)
	}
	return q, r
}

// quoRem64 divides u by a non-zero 64-bit divisor.
func (u U128) quoRem64(by uint64) (q U128, r uint64) {
	if u.hi < by {
		q.lo, r = bits.Div64(u.hi, u.lo, by)
		return q, r
	}
	q.hi, r = u.hi/by, u.hi%by
	q.lo, r = bits.Div64(r, u.lo, by)
	return q, r
}
