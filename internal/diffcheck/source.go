package diffcheck

import (
	"math/rand"

	quote "github.com/shabbyrobe/go-quote"
)

// Source generates random operands. Magnitudes are spread evenly by bit
// length, so small values turn up as often as values near the int64 limits.
// A Source is not safe for concurrent use.
type Source struct {
	rng *rand.Rand
}

func NewSource(seed int64) *Source {
	return &Source{rng: rand.New(rand.NewSource(seed))}
}

// Int64 returns a value of 0 to 64 bits with a random sign.
func (s *Source) Int64() int64 {
	bits := s.rng.Intn(65)
	if bits == 0 {
		return 0
	}
	v := s.rng.Uint64() & (1<<uint(bits) - 1)
	v |= 1 << uint(bits-1)
	if bits == 64 {
		return int64(v)
	}
	if s.rng.Intn(2) == 1 {
		return -int64(v)
	}
	return int64(v)
}

// Quotation returns a random Quotation. Most are normalised; about one in
// eight carries an arbitrary Nano and about one in eight has no fraction.
func (s *Source) Quotation() quote.Quotation {
	units := s.Int64()
	switch s.rng.Intn(8) {
	case 0:
		return quote.Quotation{Units: units}
	case 1:
		return quote.Quotation{Units: units, Nano: int32(s.rng.Uint32())}
	}

	nano := int32(s.rng.Intn(1_000_000_000))
	if s.rng.Intn(4) == 0 {
		// Short fractions such as 0.5 or 0.25 exercise the rounding ties.
		nano -= nano % 1_000_000
	}
	if units < 0 || (units == 0 && s.rng.Intn(2) == 1) {
		nano = -nano
	}
	return quote.Quotation{Units: units, Nano: nano}
}

// Operands fills every field. B is sometimes a copy of A, and now and then
// B or N is zero so division by zero is covered.
func (s *Source) Operands() Operands {
	in := Operands{A: s.Quotation(), B: s.Quotation(), N: s.Int64()}
	switch s.rng.Intn(32) {
	case 0:
		in.B = in.A
	case 1:
		in.B = quote.Zero
	case 2:
		in.N = 0
	}
	return in
}
