package quote

import (
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/golib/assert"
	"github.com/zeebo/errs"
)

func qn(units int64, nano int32) Quotation { return Quotation{Units: units, Nano: nano} }

func randQuotation(rng *rand.Rand) Quotation {
	units := int64(rng.Uint64())
	if rng.Intn(2) == 0 {
		units >>= uint(rng.Intn(63))
	}
	return Quotation{Units: units, Nano: int32(rng.Uint32())}
}

func TestNormalize(t *testing.T) {
	for idx, tc := range []struct {
		units int64
		nano  int32
		out   Quotation
		err   *errs.Class
	}{
		{-9, 10, qn(-8, -999999990), nil},
		{11, -12, qn(10, 999999988), nil},
		{0, 0, qn(0, 0), nil},
		{0, -5, qn(0, -5), nil},
		{0, 1500000000, qn(1, 500000000), nil},
		{0, -1500000000, qn(-1, -500000000), nil},
		{1, -1000000000, qn(0, 0), nil},
		{-1, 2000000000, qn(1, 0), nil},
		{math.MaxInt64, 999999999, qn(math.MaxInt64, 999999999), nil},
		{math.MinInt64, -999999999, qn(math.MinInt64, -999999999), nil},
		{math.MaxInt64, math.MinInt32, qn(9223372036854775804, 852516352), nil},
		{math.MinInt64, math.MaxInt32, qn(-9223372036854775805, -852516353), nil},
		{math.MaxInt64, math.MaxInt32, Zero, OverflowError},
		{math.MinInt64, math.MinInt32, Zero, OverflowError},
		{math.MaxInt64, 1000000000, Zero, OverflowError},
	} {
		t.Run(fmt.Sprintf("%d/(%d,%d)", idx, tc.units, tc.nano), func(t *testing.T) {
			tt := assert.WrapTB(t)
			out, err := Normalize(tc.units, tc.nano)
			if tc.err != nil {
				tt.MustAssert(tc.err.Has(err), err)
				return
			}
			tt.MustOK(err)
			tt.MustEqual(tc.out, out)
			tt.MustAssert(out.IsNormal())
		})
	}
}

func TestNormalizeRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 10000; i++ {
		q := randQuotation(rng)
		n, err := Normalize(q.Units, q.Nano)
		if err != nil {
			tt.MustAssert(OverflowError.Has(err))
			continue
		}
		tt.MustAssert(n.IsNormal(), n.DebugString())
		tt.MustAssert(n.nanos().Equal(q.nanos()), "%s != %s", n.DebugString(), q.DebugString())

		again, err := Normalize(n.Units, n.Nano)
		tt.MustOK(err)
		tt.MustEqual(n, again)
	}
}

func TestQuotationString(t *testing.T) {
	for idx, tc := range []struct {
		q   Quotation
		out string
	}{
		{qn(5000, 100000000), "5000.1"},
		{qn(0, -9000), "-0.000009"},
		{qn(0, 0), "0"},
		{qn(12, 0), "12"},
		{qn(-12, -500000000), "-12.5"},
		{qn(0, 1), "0.000000001"},
		{qn(1, 10), "1.00000001"},
		{qn(math.MinInt64, 0), "-9223372036854775808"},
		{qn(math.MinInt64, -999999999), "-9223372036854775808.999999999"},
		{qn(math.MaxInt64, 999999999), "9223372036854775807.999999999"},

		// Denormalised
		{qn(1, 1500000000), "2.5"},
		{qn(-1, 500000000), "-0.5"},
		{qn(1, -1000000000), "0"},
		{qn(math.MaxInt64, 2000000000), "9223372036854775809"},
		{qn(math.MinInt64, math.MinInt32), "-9223372036854775810.147483648"},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.out), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.out, tc.q.String())
		})
	}
}

func TestQuotationDebugString(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustEqual("[-9; 10]", qn(-9, 10).DebugString())
	tt.MustEqual("[0; 0]", Zero.DebugString())
	tt.MustEqual("[-9223372036854775808; -2147483648]", qn(math.MinInt64, math.MinInt32).DebugString())
}

func TestQuotationIsNormal(t *testing.T) {
	for idx, tc := range []struct {
		q  Quotation
		ok bool
	}{
		{qn(0, 0), true},
		{qn(1, 0), true},
		{qn(0, -1), true},
		{qn(-1, -999999999), true},
		{qn(1, 999999999), true},
		{qn(1, -1), false},
		{qn(-1, 1), false},
		{qn(0, 1000000000), false},
		{qn(0, -1000000000), false},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.q.DebugString()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.ok, tc.q.IsNormal())
		})
	}
}

func TestQuotationSign(t *testing.T) {
	for idx, tc := range []struct {
		q    Quotation
		sign int
	}{
		{qn(0, 0), 0},
		{qn(0, 1), 1},
		{qn(0, -1), -1},
		{qn(5, 0), 1},
		{qn(-5, -5), -1},
		{qn(1, -1000000000), 0},
		{qn(1, -1000000001), -1},
		{qn(-1, 1000000001), 1},
		{qn(math.MinInt64, 0), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s", idx, tc.q.DebugString()), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.sign, tc.q.Sign())
			tt.MustEqual(tc.sign == 0, tc.q.IsZero())
		})
	}
}

func TestQuotationCmp(t *testing.T) {
	for idx, tc := range []struct {
		a, b Quotation
		cmp  int
	}{
		{qn(0, 0), qn(0, 0), 0},
		{qn(1, 0), qn(0, 1000000000), 0},
		{qn(2, 500000000), qn(3, -500000000), 0},
		{qn(0, -1), qn(0, 0), -1},
		{qn(-1, 0), qn(0, -999999999), -1},
		{qn(1, 1), qn(1, 0), 1},
		{qn(-1, -1), qn(-1, 0), -1},
		{qn(math.MaxInt64, 999999999), qn(math.MinInt64, -999999999), 1},
		{qn(math.MaxInt64, 1000000000), qn(math.MaxInt64, 999999999), 1},
		{qn(math.MinInt64, math.MinInt32), qn(math.MinInt64, -999999999), -1},
	} {
		t.Run(fmt.Sprintf("%d/%s<=>%s", idx, tc.a, tc.b), func(t *testing.T) {
			tt := assert.WrapTB(t)
			tt.MustEqual(tc.cmp, tc.a.Cmp(tc.b))
			tt.MustEqual(-tc.cmp, tc.b.Cmp(tc.a))
			tt.MustEqual(tc.cmp == 0, tc.a.Equal(tc.b))
		})
	}
}

func TestQuotationCmpRandom(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 10000; i++ {
		a, b := randQuotation(rng), randQuotation(rng)
		if rng.Intn(4) == 0 {
			if n, err := Normalize(a.Units, a.Nano); err == nil {
				a = n
			}
			if n, err := Normalize(b.Units, b.Nano); err == nil {
				b = n
			}
		}
		want := a.nanos().Cmp(b.nanos())
		if want > 0 {
			want = 1
		} else if want < 0 {
			want = -1
		}
		tt.MustEqual(want, a.Cmp(b), "%s <=> %s", a.DebugString(), b.DebugString())
		tt.MustEqual(-want, b.Cmp(a))
		tt.MustEqual(0, a.Cmp(a))
	}
}

func TestQuotationJSON(t *testing.T) {
	tt := assert.WrapTB(t)

	bts, err := json.Marshal(qn(-12, -500000000))
	tt.MustOK(err)
	tt.MustEqual(`{"units":"-12","nano":-500000000}`, string(bts))

	var q Quotation
	tt.MustOK(json.Unmarshal([]byte(`{"units":"9223372036854775807","nano":999999999}`), &q))
	tt.MustEqual(qn(math.MaxInt64, 999999999), q)
}

func BenchmarkQuotationCmp(b *testing.B) {
	x, y := qn(123, 456000000), qn(123, 456000001)
	for i := 0; i < b.N; i++ {
		BenchIntResult = x.Cmp(y)
	}
}

func BenchmarkQuotationString(b *testing.B) {
	x := qn(-123456789, -12000000)
	for i := 0; i < b.N; i++ {
		BenchStringResult = x.String()
	}
}
