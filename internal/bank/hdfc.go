package bank

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/parse"
	"github.com/finsift/smsparser/internal/patterns"
)

// parseAmount converts a captured numeric string into a decimal, tolerating
// thousand separators.
func parseAmount(raw string) *decimal.Decimal {
	cleaned := strings.ReplaceAll(strings.TrimSpace(raw), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

func hdfcAccepts(sender string) bool {
	upper := strings.ToUpper(sender)
	for _, p := range patterns.HDFCSenderDLT {
		if p.MatchString(upper) {
			return true
		}
	}
	return false
}

// hdfcMerchant walks the HDFC-specific clause shapes in confidence order:
// salary lines name the employer, Info: lines name the UPI payee, VPA lines
// carry either a display name or the handle prefix.
func hdfcMerchant(msg, _ string) string {
	if m := patterns.HDFCSalary.FindStringSubmatch(msg); m != nil {
		return parse.CleanMerchantName(m[1])
	}
	if m := patterns.HDFCSimpleSalary.FindStringSubmatch(msg); m != nil {
		return parse.CleanMerchantName(m[1])
	}
	if m := patterns.HDFCInfo.FindStringSubmatch(msg); m != nil {
		name := parse.CleanMerchantName(m[1])
		if name != "" {
			return name
		}
	}
	if m := patterns.HDFCVPAWithName.FindStringSubmatch(msg); m != nil {
		return parse.CleanMerchantName(m[1])
	}
	if m := patterns.HDFCVPA.FindStringSubmatch(msg); m != nil {
		return parse.CleanMerchantName(m[1])
	}
	if m := patterns.HDFCSpentAt.FindStringSubmatch(msg); m != nil {
		return parse.CleanMerchantName(m[1])
	}
	if m := patterns.HDFCDebitFor.FindStringSubmatch(msg); m != nil {
		return parse.CleanMerchantName(m[1])
	}
	return ""
}

func hdfcReference(msg string) string {
	if m := patterns.HDFCUPIRefNo.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := patterns.HDFCRefNo.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	if m := patterns.HDFCRefSimple.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

// hdfcAccountTail prefers the deposit clause over the generic A/c clause and
// keeps only the last four captured digits. The shared guard still applies.
func hdfcAccountTail(msg string) string {
	pats := []*regexp.Regexp{
		patterns.HDFCDeposited,
		patterns.HDFCAccountFrom,
		patterns.HDFCAccountGeneric,
	}
	for _, p := range pats {
		for _, m := range p.FindAllStringSubmatchIndex(msg, -1) {
			digits := msg[m[2]:m[3]]
			if !parse.ValidAccountTail(msg, digits, m[2]) {
				continue
			}
			if len(digits) > 4 {
				return digits[len(digits)-4:]
			}
			return digits
		}
	}
	return ""
}

// hdfcParseMandate reads HDFC's autopay phrasing, including the UMN the bank
// attaches to UPI mandates.
func hdfcParseMandate(msg string) *model.MandateInfo {
	m := patterns.HDFCWillDeduct.FindStringSubmatch(msg)
	if m == nil {
		return nil
	}
	amount := parseAmount(m[1])
	if amount == nil {
		return nil
	}

	info := &model.MandateInfo{Amount: *amount}
	if mm := patterns.HDFCMandateMerchant.FindStringSubmatch(msg); mm != nil {
		info.Merchant = parse.CleanMerchantName(mm[1])
	}
	if dm := patterns.HDFCDeductionDate.FindStringSubmatch(msg); dm != nil {
		info.NextDeductionDate = dm[1]
		info.DateFormat = "02/01/06"
	}
	if um := patterns.HDFCUMN.FindStringSubmatch(msg); um != nil {
		info.UMN = um[1]
	}
	return info
}

// NewHDFC builds the HDFC Bank parser.
func NewHDFC() *parse.Parser {
	return parse.New(parse.Config{
		BankName: "HDFC Bank",
		Accepts:  hdfcAccepts,
		Locale:   parse.LocaleIndian,
		Overrides: parse.Extractors{
			Merchant:     hdfcMerchant,
			Reference:    hdfcReference,
			AccountTail:  hdfcAccountTail,
			ParseMandate: hdfcParseMandate,
		},
	})
}
