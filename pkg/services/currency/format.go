package currency

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// NotSpecified is what every surface shows for an absent price. An
// extraction failure is "unknown", never 0, since 0 is a legitimate amount.
const NotSpecified = "not specified"

var (
	enPrinter = message.NewPrinter(language.English)
	ruPrinter = message.NewPrinter(language.Russian)
)

// Format renders an amount in the display convention of its currency:
// USD and EUR as a symbol prefix ($1,000), everything else as the grouped
// amount followed by the unit word (1 000 сом). Decimals appear only when
// the amount is fractional.
func Format(code domain.Code, amount float64) string {
	switch code {
	case domain.USD, domain.EUR:
		return code.Symbol() + group(enPrinter, amount)
	default:
		return group(ruPrinter, amount) + " " + code.Symbol()
	}
}

// FormatOptional renders a resolved price, or NotSpecified when there is
// none.
func FormatOptional(a *domain.CurrencyAmount) string {
	if a == nil || !a.Code.Supported() {
		return NotSpecified
	}
	return Format(a.Code, a.Amount)
}

// group applies locale digit grouping. CLDR groups Russian numbers with
// no-break spaces; reports use plain spaces.
func group(p *message.Printer, v float64) string {
	s := p.Sprintf("%v", number.Decimal(v))
	s = strings.ReplaceAll(s, " ", " ")
	s = strings.ReplaceAll(s, " ", " ")
	return s
}
