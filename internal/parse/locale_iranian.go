package parse

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/patterns"
)

// iranianMinAmount filters out rial noise: real transactions are never below
// a thousand rials, while fee fragments and counters frequently are.
var iranianMinAmount = decimal.NewFromInt(1000)

// NormalizePersianDigits maps Persian and Arabic-Indic digits to ASCII so
// the shared numeric patterns apply.
func NormalizePersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}

var (
	iranianDebitWords    = []string{"برداشت", "خرید", "پرداخت"}
	iranianCreditWords   = []string{"واریز"}
	iranianTransferWords = []string{"انتقال"}
)

func iranianClassify(msg string) Verdict {
	if containsAny(msg, iranianDebitWords) ||
		containsAny(msg, iranianCreditWords) ||
		containsAny(msg, iranianTransferWords) {
		return VerdictAccept
	}
	return VerdictNone
}

func iranianAmount(msg string) *decimal.Decimal {
	for _, p := range []*regexp.Regexp{patterns.IranAmountLabeled, patterns.IranAmountRial} {
		if m := p.FindStringSubmatch(msg); m != nil {
			if d := parseMoney(m[1]); d != nil && d.GreaterThanOrEqual(iranianMinAmount) {
				return d
			}
		}
	}
	return nil
}

func iranianKind(msg string) model.TransactionKind {
	if containsAny(strings.ToLower(msg), investmentMarkers) {
		return model.KindInvestment
	}
	switch {
	case containsAny(msg, iranianTransferWords):
		return model.KindTransfer
	case containsAny(msg, iranianDebitWords):
		return model.KindExpense
	case containsAny(msg, iranianCreditWords):
		return model.KindIncome
	}
	return ""
}

func iranianBalance(msg string) *decimal.Decimal {
	if m := patterns.IranBalance.FindStringSubmatch(msg); m != nil {
		return parseMoney(m[1])
	}
	return nil
}

func iranianMerchant(msg, _ string) string {
	if m := patterns.IranMerchant.FindStringSubmatch(msg); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

func iranianAccountTail(msg string) string {
	if m := patterns.IranCardTail.FindStringSubmatch(msg); m != nil {
		return m[1]
	}
	return ""
}

// LocaleIranian is the shared base for Iranian banks: Persian keyword
// classification, rial amounts with a noise floor, and digit normalization
// applied by leaf parsers via NormalizePersianDigits.
var LocaleIranian = &Locale{
	Name:     "iranian",
	Currency: "IRR",
	Extractors: Extractors{
		Classify:    iranianClassify,
		Amount:      iranianAmount,
		Kind:        iranianKind,
		Balance:     iranianBalance,
		Merchant:    iranianMerchant,
		AccountTail: iranianAccountTail,
	},
}
