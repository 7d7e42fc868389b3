package parse

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/patterns"
)

// Thai banks mix Thai and English freely, so the Thai keyword sets extend the
// root English verbs instead of replacing them.
var (
	thaiDebitWords    = []string{"ถอน", "ซื้อ", "ชำระ", "เงินออก", "หัก"}
	thaiCreditWords   = []string{"ฝาก", "เงินเข้า", "รับโอน"}
	thaiTransferWords = []string{"โอน"}
)

func thaiClassify(msg string) Verdict {
	if containsAny(msg, thaiDebitWords) ||
		containsAny(msg, thaiCreditWords) ||
		containsAny(msg, thaiTransferWords) {
		return VerdictAccept
	}
	return VerdictNone
}

func thaiAmount(msg string) *decimal.Decimal {
	if m := patterns.ThaiAmountPrefix.FindStringSubmatch(msg); m != nil {
		return parseMoney(m[1])
	}
	if m := patterns.ThaiAmountSuffix.FindStringSubmatch(msg); m != nil {
		return parseMoney(m[1])
	}
	return nil
}

func thaiKind(msg string) model.TransactionKind {
	if containsAny(strings.ToLower(msg), investmentMarkers) {
		return model.KindInvestment
	}
	// รับโอน (transfer received) must win over โอน (transfer out).
	switch {
	case containsAny(msg, thaiCreditWords):
		return model.KindIncome
	case containsAny(msg, thaiTransferWords):
		return model.KindTransfer
	case containsAny(msg, thaiDebitWords):
		return model.KindExpense
	}
	return ""
}

func thaiBalance(msg string) *decimal.Decimal {
	if m := patterns.ThaiBalance.FindStringSubmatch(msg); m != nil {
		return parseMoney(m[1])
	}
	return nil
}

// thaiMerchant picks up a latin merchant label after ที่ ("at") or ร้าน
// ("shop"); Thai-script merchant names stay unextracted rather than guessed.
func thaiMerchant(msg, _ string) string {
	if m := patterns.ThaiMerchant.FindStringSubmatch(msg); m != nil {
		name := strings.TrimSpace(m[1])
		if validMerchantName(name) {
			return name
		}
	}
	return ""
}

// LocaleThai is the shared base for Thai banks: baht amounts with mixed
// Thai/English vocabulary.
var LocaleThai = &Locale{
	Name:     "thai",
	Currency: "THB",
	Extractors: Extractors{
		Classify: thaiClassify,
		Amount:   thaiAmount,
		Kind:     thaiKind,
		Merchant: thaiMerchant,
		Balance:  thaiBalance,
	},
}
