// Package diffcheck validates quote arithmetic against arbitrary-precision
// reference implementations, using randomly generated operands.
package diffcheck

import (
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/zeebo/errs"

	quote "github.com/shabbyrobe/go-quote"
)

// Error is the class of configuration errors returned by this package.
var Error = errs.Class("diffcheck")

type Op string

const (
	OpAdd       Op = "add"
	OpSub       Op = "sub"
	OpMul       Op = "mul"
	OpQuo       Op = "quo"
	OpAddInt    Op = "addint"
	OpSubInt    Op = "subint"
	OpMulInt    Op = "mulint"
	OpQuoInt    Op = "quoint"
	OpIntQuo    Op = "intquo"
	OpCmp       Op = "cmp"
	OpNormalize Op = "normalize"
	OpString    Op = "string"
	OpRoundTrip Op = "roundtrip"
)

// AllOps lists every Op, in the order reports print them.
var AllOps = []Op{
	OpAdd, OpSub, OpMul, OpQuo,
	OpAddInt, OpSubInt, OpMulInt, OpQuoInt, OpIntQuo,
	OpCmp, OpNormalize, OpString, OpRoundTrip,
}

// ParseOps reads a comma separated list of op names. Blank entries and
// duplicates are dropped. An empty list selects AllOps.
func ParseOps(s string) ([]Op, error) {
	ops := lo.Uniq(lo.FilterMap(strings.Split(s, ","), func(item string, index int) (Op, bool) {
		item = strings.ToLower(strings.TrimSpace(item))
		return Op(item), item != ""
	}))
	if len(ops) == 0 {
		return AllOps, nil
	}
	if unknown := lo.Without(ops, AllOps...); len(unknown) > 0 {
		return nil, Error.New("unknown ops %v", unknown)
	}
	return ops, nil
}

// SortOps orders ops the way AllOps does.
func SortOps(ops []Op) {
	sort.Slice(ops, func(i, j int) bool {
		return lo.IndexOf(AllOps, ops[i]) < lo.IndexOf(AllOps, ops[j])
	})
}

// Operands holds the inputs for one op. Binary ops read A and B, the int
// forms read A and N, and IntQuo reads N and B. The remaining ops read A.
type Operands struct {
	A, B quote.Quotation
	N    int64
}

// Apply runs op against the quote package. Ops without a Quotation result
// report it as Zero: Cmp returns its sign in Units.
func (op Op) Apply(in Operands) (quote.Quotation, error) {
	switch op {
	case OpAdd:
		return in.A.Add(in.B)
	case OpSub:
		return in.A.Sub(in.B)
	case OpMul:
		return in.A.Mul(in.B)
	case OpQuo:
		return in.A.Quo(in.B)
	case OpAddInt:
		return in.A.AddInt(in.N)
	case OpSubInt:
		return in.A.SubInt(in.N)
	case OpMulInt:
		return in.A.MulInt(in.N)
	case OpQuoInt:
		return in.A.QuoInt(in.N)
	case OpIntQuo:
		return quote.IntQuo(in.N, in.B)
	case OpCmp:
		return quote.Quotation{Units: int64(in.A.Cmp(in.B))}, nil
	case OpNormalize:
		return quote.Normalize(in.A.Units, in.A.Nano)
	case OpRoundTrip:
		return quote.Parse(in.A.String())
	default:
		return quote.Quotation{}, Error.New("op %q has no quotation result", op)
	}
}
