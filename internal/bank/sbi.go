// Package bank holds the institution-specific leaf parsers and the catalog
// that assembles them into a dispatch registry.
package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/parse"
	"github.com/finsift/smsparser/internal/patterns"
)

// sbiSenderCodes are the DLT header tokens SBI sends under. Headers look like
// XX-SBIBNK-S; matching on the token keeps the predicate independent of the
// operator prefix and route suffix.
var sbiSenderCodes = []string{
	"SBIBNK", "SBIINB", "SBIUPI", "SBIPSG", "SBICRD", "CBSSBI", "ATMSBI", "SBIOTP",
}

func sbiAccepts(sender string) bool {
	upper := strings.ToUpper(sender)
	for _, code := range sbiSenderCodes {
		if strings.Contains(upper, code) {
			return true
		}
	}
	return false
}

// SBI pushes some notifications with non-ASCII decorations; the extraction
// patterns only understand plain ASCII, so everything else is dropped.
func sbiNormalize(msg string) string {
	return strings.Map(func(r rune) rune {
		if r == '₹' || r < 128 {
			return r
		}
		return -1
	}, msg)
}

var (
	sbiDebitedBy = regexp.MustCompile(`(?i)(?:debited|credited)\s+by\s+([0-9,]+(?:\.\d{1,2})?)`)
	sbiTrfTo     = regexp.MustCompile(`(?i)trf\s+to\s+([^.\n]+?)(?:\s+Refno\b|\s+Ref\b|\.|$)`)
	sbiRefno     = regexp.MustCompile(`(?i)Refno\s+(\d{9,14})`)
)

// sbiAmount handles the UPI wording "A/c XX1234-debited by 500.0", which
// carries no currency marker at all.
func sbiAmount(msg string) *decimal.Decimal {
	if m := sbiDebitedBy.FindStringSubmatch(msg); m != nil {
		cleaned := strings.ReplaceAll(m[1], ",", "")
		if d, err := decimal.NewFromString(cleaned); err == nil {
			return &d
		}
	}
	return nil
}

func sbiMerchant(msg, _ string) string {
	if m := sbiTrfTo.FindStringSubmatch(msg); m != nil {
		name := parse.CleanMerchantName(m[1])
		if name != "" {
			return name
		}
	}
	return ""
}

func sbiReference(msg string) string {
	if m := sbiRefno.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

// sbiIsCardMessage reports whether the alert came from the card arm: a card
// sender code or explicit credit-card wording in the body.
func sbiIsCardMessage(msg, sender string) bool {
	upper := strings.ToUpper(sender)
	if strings.Contains(upper, "SBICRD") || strings.Contains(upper, "SBI CARDS") {
		return true
	}
	return strings.Contains(strings.ToLower(msg), "credit card")
}

// sbiFinalize applies the SBI Card overrides: spends become card charges,
// bill payments credited to the card become income, BBPS payments get a
// fixed merchant label, and the card tail wins over the account tail.
func sbiFinalize(msg, sender string, tx model.Transaction) model.Transaction {
	if !sbiIsCardMessage(msg, sender) {
		return tx
	}
	lower := strings.ToLower(msg)

	tx.IsFromCard = true
	switch {
	case strings.Contains(lower, "payment of") && strings.Contains(lower, "credited to your sbi credit card"):
		tx.Kind = model.KindIncome
	case tx.Kind == model.KindExpense:
		tx.Kind = model.KindCreditCardCharge
	}

	if strings.Contains(lower, "via bbps") {
		tx.Merchant = "BBPS Payment"
	}
	if m := patterns.CardEnding.FindStringSubmatch(msg); m != nil {
		tx.AccountLast4 = m[1]
	}
	return tx
}

// NewSBI builds the State Bank of India parser.
func NewSBI() *parse.Parser {
	return parse.New(parse.Config{
		BankName:  "State Bank of India",
		Accepts:   sbiAccepts,
		Locale:    parse.LocaleIndian,
		Normalize: sbiNormalize,
		Overrides: parse.Extractors{
			Amount:    sbiAmount,
			Merchant:  sbiMerchant,
			Reference: sbiReference,
		},
		Finalize: sbiFinalize,
	})
}
