package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/patterns"
)

// rootExtractors is the bottom tier of every parser: the generic extraction
// behaviour shared across all institutions.
var rootExtractors = Extractors{
	Classify:       defaultClassify,
	Amount:         defaultAmount,
	Kind:           defaultKind,
	Merchant:       defaultMerchant,
	Reference:      defaultReference,
	AccountTail:    defaultAccountTail,
	Balance:        defaultBalance,
	AvailableLimit: defaultAvailableLimit,
	CardOrigin:     defaultCardOrigin,
}

// parseMoney converts a matched numeric string (possibly with thousand
// separators) into a decimal. Returns nil when the text is not a number.
func parseMoney(raw string) *decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// firstMoney runs the pattern list in order and returns the first parseable
// captured amount.
func firstMoney(msg string, pats []*regexp.Regexp) *decimal.Decimal {
	for _, p := range pats {
		if m := p.FindStringSubmatch(msg); m != nil {
			if d := parseMoney(m[1]); d != nil {
				return d
			}
		}
	}
	return nil
}

func defaultAmount(msg string) *decimal.Decimal {
	return firstMoney(msg, patterns.AmountAll)
}

// debitMarkers and creditMarkers resolve the money direction. Debits are
// checked first: a debit confirmation frequently mentions the credited payee.
var (
	debitMarkers = []string{
		"debited", "paid", "withdrawn", "sent", "spent", "purchase",
		"debit of", "payment of", "charged", "deducted",
	}
	creditMarkers = []string{
		"credited", "received", "deposited", "credit of",
		"refund", "cashback",
	}
)

// investmentMarkers take priority over direction verbs: a clearing-corp debit
// is an investment, not an expense. Short tickers and rail names are padded
// with spaces so they do not fire inside ordinary words.
var investmentMarkers = []string{
	"indian clearing corp", "indian clearing corporation", "iccl", "icclib",
	"nsccl", "nse clearing", "clearing corp", "clearing corporation",
	"nach", " ach ", " ecs ",
	"zerodha", "coin by zerodha", "groww", "upstox", "kite", "kuvera",
	"paytm money", "etmoney", "smallcase", "angel one", "angel broking",
	"5paisa", "icici securities", "icici direct", "hdfc securities",
	"kotak securities", "motilal oswal", "sharekhan", "edelweiss",
	"axis direct", "sbi securities", "stockbroker",
	"mutual fund", "sip purchase", " sip ", "elss", " ipo ", "folio",
	"demat", " nav ", "digital gold", "sovereign gold",
	" nse ", " bse ", "bse limited", "cdsl", "nsdl",
	"billdesk mutual",
}

func defaultKind(msg string) model.TransactionKind {
	lower := strings.ToLower(msg)

	if containsAny(lower, investmentMarkers) {
		return model.KindInvestment
	}
	if containsAny(lower, debitMarkers) {
		return model.KindExpense
	}
	if containsAny(lower, creditMarkers) {
		return model.KindIncome
	}
	return ""
}

func defaultReference(msg string) string {
	for _, p := range patterns.ReferenceAll {
		if m := p.FindStringSubmatch(msg); m != nil {
			ref := strings.TrimSpace(m[1])
			if ref != "" {
				return ref
			}
		}
	}
	return ""
}

func defaultAccountTail(msg string) string {
	for _, p := range patterns.AccountAll {
		for _, m := range p.FindAllStringSubmatchIndex(msg, -1) {
			tail := msg[m[2]:m[3]]
			if ValidAccountTail(msg, tail, m[2]) {
				return tail
			}
		}
	}
	return ""
}

func defaultBalance(msg string) *decimal.Decimal {
	return firstMoney(msg, patterns.BalanceAll)
}

func defaultAvailableLimit(msg string) *decimal.Decimal {
	return firstMoney(msg, patterns.LimitAll)
}

// accountVocabulary marks the message as account-based even when card words
// appear ("A/c linked to card").
var accountVocabulary = []string{"a/c", "account", "acct", "bank ac"}

var cardVocabulary = []string{
	"credit card", "debit card", "card ending", "card xx", "card **",
	"your card", "on card", "card no",
}

var maskedCardEnding = regexp.MustCompile(`(?i)ending\s+(?:in\s+)?(?:X+|\*+)?\d{4}`)

var creditCardMarkers = []string{"credit card", "creditcard", "credit crd"}

// isCreditCardSpend distinguishes a credit-card charge from a debit-card
// purchase; only the former gets its own kind.
func isCreditCardSpend(msg string) bool {
	return containsAny(strings.ToLower(msg), creditCardMarkers)
}

// defaultCardOrigin resolves whether the money moved on a card. Account
// vocabulary wins over card vocabulary since banks mention the card product
// inside account alerts far more often than the reverse.
func defaultCardOrigin(msg string) (bool, bool) {
	lower := strings.ToLower(msg)

	if containsAny(lower, accountVocabulary) {
		return false, true
	}
	if containsAny(lower, cardVocabulary) {
		return true, true
	}
	if strings.Contains(lower, "card") && maskedCardEnding.MatchString(msg) {
		return true, true
	}
	return false, true
}
