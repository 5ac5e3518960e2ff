package quote

// MustNormalize is like Normalize but panics on error.
func MustNormalize(units int64, nano int32) Quotation {
	q, err := Normalize(units, nano)
	if err != nil {
		panic(err)
	}
	return q
}

// MustParse is like Parse but panics on error. It simplifies safe
// initialization of global variables holding quotations.
func MustParse(s string) Quotation {
	q, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return q
}

func (q Quotation) MustAdd(o Quotation) Quotation {
	r, err := q.Add(o)
	if err != nil {
		panic(err)
	}
	return r
}

func (q Quotation) MustSub(o Quotation) Quotation {
	r, err := q.Sub(o)
	if err != nil {
		panic(err)
	}
	return r
}

func (q Quotation) MustMul(o Quotation) Quotation {
	r, err := q.Mul(o)
	if err != nil {
		panic(err)
	}
	return r
}

func (q Quotation) MustQuo(o Quotation) Quotation {
	r, err := q.Quo(o)
	if err != nil {
		panic(err)
	}
	return r
}
