package quote

var (
	BenchIntResult       int
	BenchStringResult    string
	BenchQuotationResult Quotation
)
