package payments

type Price struct {
	AmountCents int64  `json:"amount_cents"`
	Currency    string `json:"currency"`
}

// ConsultationPrices maps a consultation duration in minutes to its price.
var ConsultationPrices = map[int]Price{
	30: {AmountCents: 7500, Currency: "eur"},
	60: {AmountCents: 12000, Currency: "eur"},
	90: {AmountCents: 16500, Currency: "eur"},
}
