package parse

import (
	"strings"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/patterns"
)

// mandateMarkers flag messages announcing a future or recurring debit. These
// are checked before the transaction pipeline so that "will be debited"
// notices are never booked as spend.
var mandateMarkers = []string{
	"e-mandate", "emandate", "mandate", "autopay", "auto-debit", "auto debit",
	"standing instruction", "si registered",
	"will be debited", "will be deducted", "upcoming debit",
}

func indianMandateNotice(msg string) bool {
	return containsAny(strings.ToLower(msg), mandateMarkers)
}

// A balance keyword with no movement verb means the bank is restating the
// balance, not reporting a transaction.
var (
	balanceNoticeWords = []string{
		"available bal", "avl bal", "account balance", "a/c balance", "updated balance",
	}
	balanceNoticeVerbs = []string{
		"debited", "credited", "withdrawn", "spent", "transferred",
		"payment of", "deducted",
	}
)

func indianBalanceNotice(msg string) bool {
	lower := strings.ToLower(msg)
	return containsAny(lower, balanceNoticeWords) && !containsAny(lower, balanceNoticeVerbs)
}

// indianParseMandate extracts the committed amount, the payee, and the
// scheduled date from a mandate notice. The date is kept as matched; the
// format hint uses Go reference layouts.
func indianParseMandate(msg string) *model.MandateInfo {
	var amountRaw string
	if m := patterns.MandateAmount.FindStringSubmatch(msg); m != nil {
		amountRaw = m[1]
	} else if m := patterns.MandateWillDebit.FindStringSubmatch(msg); m != nil {
		amountRaw = m[1]
	} else if d := firstMoney(msg, patterns.AmountAll); d != nil {
		amountRaw = d.String()
	}
	amount := parseMoney(amountRaw)
	if amount == nil {
		return nil
	}

	info := &model.MandateInfo{Amount: *amount}

	if m := patterns.MandateTowards.FindStringSubmatch(msg); m != nil {
		info.Merchant = CleanMerchantName(m[1])
	} else if m := patterns.MandateFor.FindStringSubmatch(msg); m != nil {
		info.Merchant = CleanMerchantName(m[1])
	}

	if m := patterns.MandateOnDate.FindStringSubmatch(msg); m != nil {
		info.NextDeductionDate = m[1]
		info.DateFormat = mandateDateLayout(m[1])
	}
	if m := patterns.MandateUMN.FindStringSubmatch(msg); m != nil {
		info.UMN = m[1]
	}
	return info
}

// mandateDateLayout guesses the Go layout for a matched schedule date.
func mandateDateLayout(date string) string {
	switch {
	case patterns.DateDDMMMYY.MatchString(date):
		if strings.Count(date, "-") == 2 {
			return "2-Jan-06"
		}
		return "2-Jan"
	case patterns.DateDDMMYY.MatchString(date):
		return "02/01/06"
	case patterns.DateDDMMYYDash.MatchString(date):
		return "2-1-06"
	default:
		return ""
	}
}

// LocaleIndian is the shared base for Indian banks: INR amounts, mandate and
// balance-notification screening, and the generic extraction defaults.
var LocaleIndian = &Locale{
	Name:     "indian",
	Currency: "INR",
	Extractors: Extractors{
		MandateNotice: indianMandateNotice,
		ParseMandate:  indianParseMandate,
		BalanceNotice: indianBalanceNotice,
	},
}
