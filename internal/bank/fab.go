package bank

import (
	"regexp"
	"strings"

	"github.com/finsift/smsparser/internal/parse"
)

func fabAccepts(sender string) bool {
	upper := strings.ToUpper(sender)
	return upper == "FAB" || strings.Contains(upper, "FABBANK") || strings.HasPrefix(upper, "FAB-")
}

// fabRejections are FAB notices that quote amounts but describe no completed
// movement: declines, reversals pending review, cheque book updates.
var fabRejections = []string{
	"has been declined", "was declined", "insufficient funds",
	"cheque book", "chequebook", "is under process",
	"has been reversed pending",
}

func fabClassify(msg string) parse.Verdict {
	if containsFold(msg, fabRejections) {
		return parse.VerdictReject
	}
	return parse.VerdictNone
}

var fabTransferAccounts = regexp.MustCompile(`(?i)from\s+(?:a/c|account)\s*(?:no\.?\s*)?[X*]*(\d{3,4})\s+to\s+(?:a/c|account)\s*(?:no\.?\s*)?[X*]*(\d{3,4})`)

func fabTransfer(msg string) (string, string) {
	if m := fabTransferAccounts.FindStringSubmatch(msg); m != nil {
		return m[1], m[2]
	}
	return "", ""
}

func containsFold(msg string, needles []string) bool {
	lower := strings.ToLower(msg)
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// NewFAB builds the First Abu Dhabi Bank parser.
func NewFAB() *parse.Parser {
	return parse.New(parse.Config{
		BankName: "First Abu Dhabi Bank",
		Accepts:  fabAccepts,
		Locale:   parse.LocaleGulf,
		Overrides: parse.Extractors{
			Classify:         fabClassify,
			TransferAccounts: fabTransfer,
		},
	})
}
