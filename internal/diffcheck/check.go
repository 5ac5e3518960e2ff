package diffcheck

import (
	"fmt"

	"github.com/shopspring/decimal"

	quote "github.com/shabbyrobe/go-quote"
)

// Outcome classifies a successful check by what the reference expected.
type Outcome int

const (
	OutcomeValue Outcome = iota
	OutcomeOverflow
	OutcomeDivideByZero
)

// Failure records one disagreement between quote and the oracle.
type Failure struct {
	Op     Op
	In     Operands
	Oracle string
	Want   string
	Got    string
	Err    error
}

func (f Failure) String() string {
	return fmt.Sprintf("%s(a=%s, b=%s, n=%d) [%s]: want %s, got %s (err: %v)",
		f.Op, f.In.A.DebugString(), f.In.B.DebugString(), f.In.N, f.Oracle, f.Want, f.Got, f.Err)
}

// Check runs op on in and compares the result with oracle. It returns nil
// when they agree.
func Check(op Op, in Operands, oracle Oracle) (Outcome, *Failure) {
	want, defined := oracle.Eval(op, in)
	fail := func(want string, got string, err error) *Failure {
		return &Failure{Op: op, In: in, Oracle: oracle.Name(), Want: want, Got: got, Err: err}
	}

	if op == OpString {
		// Rendering never fails, whatever the range.
		w := decimal.NewFromBigInt(want, -nanoDigits).String()
		if g := in.A.String(); g != w {
			return OutcomeValue, fail(w, g, nil)
		}
		return OutcomeValue, nil
	}

	got, err := op.Apply(in)

	switch {
	case !defined:
		if !quote.DivideByZeroError.Has(err) {
			return OutcomeDivideByZero, fail("division by zero", got.DebugString(), err)
		}
		return OutcomeDivideByZero, nil

	case op == OpCmp:
		if err != nil || got.Units != want.Int64() {
			return OutcomeValue, fail(want.String(), fmt.Sprint(got.Units), err)
		}
		return OutcomeValue, nil

	case !InRange(want):
		if !quote.OverflowError.Has(err) {
			return OutcomeOverflow, fail("overflow "+want.String(), got.DebugString(), err)
		}
		return OutcomeOverflow, nil
	}

	// A normalised result with the right value is the only acceptable one.
	if err != nil || !got.IsNormal() || Nanos(got).Cmp(want) != 0 {
		return OutcomeValue, fail(want.String(), got.DebugString(), err)
	}
	return OutcomeValue, nil
}
