package parse

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/patterns"
)

// gulfCurrencyAmount scans for an ISO-code-tagged amount. Three-letter month
// abbreviations are skipped: "05 JAN 2024" parses as a currency-and-amount
// shape but is a date. A star printed before an intact figure ("AED *150.00")
// is stripped; a star inside the digits means the bank masked part of the
// amount, and the visible fragment must not be read as the value.
func gulfCurrencyAmount(msg string) (string, *decimal.Decimal) {
	for _, m := range patterns.CurrencyMaskedPrefixAmount.FindAllStringSubmatch(msg, -1) {
		code := strings.ToUpper(m[1])
		if patterns.IsMonthAbbreviation(code) {
			continue
		}
		if d := parseMoney(m[2]); d != nil {
			return code, d
		}
	}
	for _, m := range patterns.CurrencyPrefixAmount.FindAllStringSubmatchIndex(msg, -1) {
		code := strings.ToUpper(msg[m[2]:m[3]])
		if patterns.IsMonthAbbreviation(code) {
			continue
		}
		if m[5] < len(msg) && msg[m[5]] == '*' {
			continue // partially masked digits
		}
		if d := parseMoney(msg[m[4]:m[5]]); d != nil {
			return code, d
		}
	}
	for _, m := range patterns.CurrencySuffixAmount.FindAllStringSubmatchIndex(msg, -1) {
		code := strings.ToUpper(msg[m[4]:m[5]])
		if patterns.IsMonthAbbreviation(code) {
			continue
		}
		if m[2] > 0 && (msg[m[2]-1] == '*' || msg[m[2]-1] == '.') {
			continue // trailing fragment of a masked figure
		}
		if d := parseMoney(msg[m[2]:m[3]]); d != nil {
			return code, d
		}
	}
	return "", nil
}

func gulfAmount(msg string) *decimal.Decimal {
	_, d := gulfCurrencyAmount(msg)
	return d
}

func gulfCurrency(msg string) string {
	code, _ := gulfCurrencyAmount(msg)
	return code
}

var (
	gulfDebitMarkers = []string{
		"purchase of", "was used for", "payment of", "debited", "spent",
		"charged", "withdrawal", "atm cash",
	}
	gulfCreditMarkers = []string{
		"credited", "salary", "received", "deposit of",
	}
	gulfTransferMarkers = []string{
		"transferred", "transfer of", "funds transfer",
	}
)

// gulfKind resolves direction from Gulf banking vocabulary. Transfers are
// recognized before the generic debit verbs so "transferred from A/c" does
// not collapse into an expense.
func gulfKind(msg string) model.TransactionKind {
	lower := strings.ToLower(msg)

	if containsAny(lower, investmentMarkers) {
		return model.KindInvestment
	}
	if containsAny(lower, gulfTransferMarkers) {
		return model.KindTransfer
	}
	if containsAny(lower, gulfDebitMarkers) {
		return model.KindExpense
	}
	if containsAny(lower, gulfCreditMarkers) {
		return model.KindIncome
	}
	return ""
}

var gulfTransactionVerbs = []string{
	"purchase of", "was used for", "transferred", "transfer of",
	"withdrawal", "atm cash", "deposit of", "salary",
}

// gulfClassify extends the root verb set with Gulf phrasing, deferring to the
// root check (and its rejection lists) when nothing matches.
func gulfClassify(msg string) Verdict {
	lower := strings.ToLower(msg)
	if containsAny(lower, otpMarkers) || containsAny(lower, marketingMarkers) || containsAny(lower, pendingMarkers) {
		return VerdictReject
	}
	if containsAny(lower, gulfTransactionVerbs) {
		return VerdictAccept
	}
	return VerdictNone
}

// LocaleGulf is the shared base for Gulf-region banks: multi-currency amount
// extraction with AED as the fallback currency.
var LocaleGulf = &Locale{
	Name:     "gulf",
	Currency: "AED",
	Extractors: Extractors{
		Classify: gulfClassify,
		Amount:   gulfAmount,
		Currency: gulfCurrency,
		Kind:     gulfKind,
	},
}
