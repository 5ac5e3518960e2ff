package diffcheck

import (
	"math/big"
	"strings"

	"github.com/cockroachdb/apd/v3"
	"github.com/shopspring/decimal"

	quote "github.com/shabbyrobe/go-quote"
)

const nanoDigits = 9

var (
	bigNanoScale = big.NewInt(1_000_000_000)

	// MinNanos and MaxNanos bound the values a Quotation can hold, counted
	// in nano units.
	MinNanos = new(big.Int).Sub(new(big.Int).Mul(big.NewInt(-1<<63), bigNanoScale), big.NewInt(999_999_999))
	MaxNanos = new(big.Int).Add(new(big.Int).Mul(big.NewInt(1<<63-1), bigNanoScale), big.NewInt(999_999_999))
)

// InRange reports whether a value counted in nano units fits a Quotation.
func InRange(nanos *big.Int) bool {
	return nanos.Cmp(MinNanos) >= 0 && nanos.Cmp(MaxNanos) <= 0
}

// Nanos returns the exact value of q counted in nano units.
func Nanos(q quote.Quotation) *big.Int {
	v := new(big.Int).Mul(big.NewInt(q.Units), bigNanoScale)
	return v.Add(v, big.NewInt(int64(q.Nano)))
}

// Oracle computes reference results for an Op. Eval returns the exact
// result rounded to the nearest nano (ties away from zero), counted in nano
// units. defined is false when the op divides by zero.
//
// For OpCmp the result is the sign of A - B. OpNormalize, OpString and
// OpRoundTrip return the value of A.
type Oracle interface {
	Name() string
	Eval(op Op, in Operands) (nanos *big.Int, defined bool)
}

// NewOracle returns the Oracle called name: "apd" or "decimal".
func NewOracle(name string) (Oracle, error) {
	switch name {
	case "", "apd":
		return NewAPDOracle(), nil
	case "decimal":
		return DecimalOracle{}, nil
	}
	return nil, Error.New("unknown oracle %q", name)
}

// APDOracle evaluates ops with cockroachdb/apd in an 80 digit context. That
// is enough for products and sums to be exact; quotients are rounded once
// at 80 digits before being quantised to nanos.
type APDOracle struct {
	ctx *apd.Context
}

func NewAPDOracle() *APDOracle {
	ctx := apd.BaseContext.WithPrecision(80)
	ctx.Rounding = apd.RoundHalfUp
	return &APDOracle{ctx: ctx}
}

func (o *APDOracle) Name() string { return "apd" }

func (o *APDOracle) Eval(op Op, in Operands) (*big.Int, bool) {
	a, b, n := o.value(in.A), o.value(in.B), apd.New(in.N, 0)

	var r apd.Decimal
	switch op {
	case OpAdd:
		o.must(o.ctx.Add(&r, a, b))
	case OpSub:
		o.must(o.ctx.Sub(&r, a, b))
	case OpMul:
		o.must(o.ctx.Mul(&r, a, b))
	case OpQuo:
		if b.IsZero() {
			return nil, false
		}
		o.must(o.ctx.Quo(&r, a, b))
	case OpAddInt:
		o.must(o.ctx.Add(&r, a, n))
	case OpSubInt:
		o.must(o.ctx.Sub(&r, a, n))
	case OpMulInt:
		o.must(o.ctx.Mul(&r, a, n))
	case OpQuoInt:
		if n.IsZero() {
			return nil, false
		}
		o.must(o.ctx.Quo(&r, a, n))
	case OpIntQuo:
		if b.IsZero() {
			return nil, false
		}
		o.must(o.ctx.Quo(&r, n, b))
	case OpCmp:
		return big.NewInt(int64(a.Cmp(b))), true
	default:
		r.Set(a)
	}
	return o.nanos(&r), true
}

func (o *APDOracle) value(q quote.Quotation) *apd.Decimal {
	var d apd.Decimal
	o.must(o.ctx.Add(&d, apd.New(q.Units, 0), apd.New(int64(q.Nano), -nanoDigits)))
	return &d
}

func (o *APDOracle) nanos(d *apd.Decimal) *big.Int {
	var r apd.Decimal
	o.must(o.ctx.Quantize(&r, d, -nanoDigits))
	s := strings.Replace(r.Text('f'), ".", "", 1)
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic(Error.New("apd: unexpected text %q", s))
	}
	return v
}

// must panics on apd errors. With an 80 digit context and no traps set on
// division by zero (callers check first), the only failures are bugs.
func (o *APDOracle) must(_ apd.Condition, err error) {
	if err != nil {
		panic(Error.Wrap(err))
	}
}

// DecimalOracle evaluates ops with shopspring/decimal. Sums and products are
// exact; quotients use DivRound, which rounds half away from zero.
type DecimalOracle struct{}

func (DecimalOracle) Name() string { return "decimal" }

func (DecimalOracle) Eval(op Op, in Operands) (*big.Int, bool) {
	a := decimal.NewFromBigInt(Nanos(in.A), -nanoDigits)
	b := decimal.NewFromBigInt(Nanos(in.B), -nanoDigits)
	n := decimal.NewFromInt(in.N)

	var r decimal.Decimal
	switch op {
	case OpAdd:
		r = a.Add(b)
	case OpSub:
		r = a.Sub(b)
	case OpMul:
		r = a.Mul(b)
	case OpQuo:
		if b.IsZero() {
			return nil, false
		}
		r = a.DivRound(b, nanoDigits)
	case OpAddInt:
		r = a.Add(n)
	case OpSubInt:
		r = a.Sub(n)
	case OpMulInt:
		r = a.Mul(n)
	case OpQuoInt:
		if n.IsZero() {
			return nil, false
		}
		r = a.DivRound(n, nanoDigits)
	case OpIntQuo:
		if b.IsZero() {
			return nil, false
		}
		r = n.DivRound(b, nanoDigits)
	case OpCmp:
		return big.NewInt(int64(a.Cmp(b))), true
	default:
		r = a
	}
	return r.Round(nanoDigits).Shift(nanoDigits).BigInt(), true
}
