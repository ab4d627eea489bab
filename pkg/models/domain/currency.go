package domain

// Code identifies one of the supported settlement currencies.
type Code string

const (
	KGS Code = "KGS"
	RUB Code = "RUB"
	USD Code = "USD"
	EUR Code = "EUR"
	KZT Code = "KZT"
	UZS Code = "UZS"
	TJS Code = "TJS"
	UAH Code = "UAH"
)

// SupportedCodes returns the closed set of currencies the pipeline accepts,
// in canonical order.
func SupportedCodes() []Code {
	return []Code{KGS, RUB, USD, EUR, KZT, UZS, TJS, UAH}
}

func (c Code) Supported() bool {
	switch c {
	case KGS, RUB, USD, EUR, KZT, UZS, TJS, UAH:
		return true
	}
	return false
}

// Symbol returns the conventional sign for the currency, or "" when the
// code is not supported.
func (c Code) Symbol() string {
	switch c {
	case KGS:
		return "сом"
	case RUB:
		return "₽"
	case USD:
		return "$"
	case EUR:
		return "€"
	case KZT:
		return "₸"
	case UZS:
		return "сум"
	case TJS:
		return "сомони"
	case UAH:
		return "₴"
	}
	return ""
}

// Name returns the currency's display name in the reference locale.
func (c Code) Name() string {
	switch c {
	case KGS:
		return "Кыргызский сом"
	case RUB:
		return "Российский рубль"
	case USD:
		return "Доллар США"
	case EUR:
		return "Евро"
	case KZT:
		return "Казахстанский тенге"
	case UZS:
		return "Узбекский сум"
	case TJS:
		return "Таджикский сомони"
	case UAH:
		return "Украинская гривна"
	}
	return ""
}

// CurrencyAmount is a single monetary mention attributed to a currency.
// Amount is always >= 0; extraction rejects candidates outside the
// supported code set.
type CurrencyAmount struct {
	Code         Code
	Symbol       string
	Name         string
	Amount       float64
	OriginalText string // the matched fragment, when extracted from text
	Position     int    // byte offset of the match in the source text
}

// RateTable converts supported currencies into a single reference currency.
// Rates[c] is the number of reference units one unit of c is worth. The
// table is injected configuration, never a live feed.
type RateTable struct {
	Reference Code
	Rates     map[Code]float64
}

// ToReference converts an amount into the reference currency. The second
// return value is false when the table has no rate for the code.
func (t RateTable) ToReference(a CurrencyAmount) (float64, bool) {
	rate, ok := t.Rates[a.Code]
	if !ok {
		return 0, false
	}
	return a.Amount * rate, true
}
