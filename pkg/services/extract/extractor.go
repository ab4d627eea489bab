package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/bid-tools/proposal-atlas/pkg/models/domain"
)

// Extractor pulls a single primary monetary amount out of a proposal.
// Free-text parsing is the fallback path; structured financial fields,
// when present, always win.
type Extractor interface {
	// Extract scans free text for the first amount matching the currency
	// patterns in priority order. The boolean is false when no parseable,
	// non-zero amount is present; callers must render that as
	// "not specified", never as 0.
	Extract(text string) (domain.CurrencyAmount, bool)

	// ExtractFromRecord resolves a proposal's price: explicit total budget
	// first, then the cost breakdown, then the pricing text.
	ExtractFromRecord(p domain.ProposalRecord) (domain.CurrencyAmount, bool)
}

// Patterns are checked in this order. Proposals in this market are
// predominantly priced in rubles, so RUB goes first: a document that
// mentions an unrelated dollar figure ("$1 help desk fee") must not have
// its ruble total misread as USD. The inverse misread remains possible
// with first-match extraction.
var patterns = []pattern{
	{code: domain.RUB, re: regexp.MustCompile(`(?i)(\d[\d\s\x{00A0}\x{202F}]*(?:[.,]\d+)?)\s*(?:руб[а-яё]*\.?|₽)|₽\s*(\d[\d\s\x{00A0}\x{202F}]*(?:[.,]\d+)?)`)},
	{code: domain.USD, re: regexp.MustCompile(`(?i)(?:\$|usd)\s*(\d[\d\s\x{00A0}\x{202F},]*(?:\.\d+)?)|(\d[\d\s\x{00A0}\x{202F},]*(?:\.\d+)?)\s*(?:долл[а-яё]*|usd)`)},
	{code: domain.EUR, re: regexp.MustCompile(`(?i)(?:€|eur)\s*(\d[\d\s\x{00A0}\x{202F},]*(?:\.\d+)?)|(\d[\d\s\x{00A0}\x{202F},]*(?:\.\d+)?)\s*(?:евро|eur|€)`)},
	// Bare-number fallback, no currency marker. Attributed to RUB, the
	// dominant pricing currency, so downstream conversion stays defined.
	{code: domain.RUB, bare: true, re: regexp.MustCompile(`\d[\d\s\x{00A0}\x{202F}]*(?:[.,]\d+)?`)},
}

type pattern struct {
	code domain.Code
	bare bool
	re   *regexp.Regexp
}

type extractor struct{}

func NewExtractor() Extractor {
	return &extractor{}
}

func (e *extractor) Extract(text string) (domain.CurrencyAmount, bool) {
	if strings.TrimSpace(text) == "" {
		return domain.CurrencyAmount{}, false
	}

	for _, p := range patterns {
		loc := p.re.FindStringSubmatchIndex(text)
		if loc == nil {
			continue
		}

		raw := firstGroup(text, loc)
		amount, ok := parseAmount(raw)
		if !ok {
			// A match that cleans to nothing or to 0 is "no amount found",
			// not a zero amount.
			continue
		}

		ca := domain.CurrencyAmount{
			Code:         p.code,
			Amount:       amount,
			OriginalText: text[loc[0]:loc[1]],
			Position:     loc[0],
		}
		if !p.bare {
			ca.Symbol = p.code.Symbol()
			ca.Name = p.code.Name()
		}
		return ca, true
	}

	return domain.CurrencyAmount{}, false
}

func (e *extractor) ExtractFromRecord(p domain.ProposalRecord) (domain.CurrencyAmount, bool) {
	if tb := p.Financials.TotalBudget; tb != nil && tb.Code.Supported() && tb.Amount > 0 {
		return *tb, true
	}

	if ca, ok := sumBreakdown(p.Financials.Breakdown); ok {
		return ca, true
	}

	return e.Extract(p.Pricing)
}

// sumBreakdown totals the breakdown lines priced in the first supported
// currency it sees. Lines in other currencies are left to the normalizer's
// mention handling.
func sumBreakdown(items []domain.CostItem) (domain.CurrencyAmount, bool) {
	var code domain.Code
	for _, it := range items {
		if it.Code.Supported() {
			code = it.Code
			break
		}
	}
	if code == "" {
		return domain.CurrencyAmount{}, false
	}

	var total float64
	for _, it := range items {
		if it.Code == code && it.Amount > 0 {
			total += it.Amount
		}
	}
	if total == 0 {
		return domain.CurrencyAmount{}, false
	}

	return domain.CurrencyAmount{
		Code:   code,
		Symbol: code.Symbol(),
		Name:   code.Name(),
		Amount: total,
	}, true
}

// firstGroup returns the first non-empty capture group of a submatch index
// set. Patterns with both marker-first and marker-last alternatives carry
// two groups; exactly one participates in any given match.
func firstGroup(text string, loc []int) string {
	for i := 2; i+1 < len(loc); i += 2 {
		if loc[i] >= 0 {
			return text[loc[i]:loc[i+1]]
		}
	}
	// Bare pattern: no groups, the whole match is the number.
	return text[loc[0]:loc[1]]
}

var thousandsComma = regexp.MustCompile(`,(\d{3})`)

// parseAmount strips digit-group separators (regular, narrow and no-break
// spaces, comma-before-three-digits) and parses what remains. A comma not
// acting as a thousands separator is a decimal mark.
func parseAmount(raw string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ' ', ' ', '\t':
			return -1
		}
		return r
	}, strings.TrimSpace(raw))

	cleaned = thousandsComma.ReplaceAllString(cleaned, "$1")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}
