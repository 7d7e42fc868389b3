package model

import (
	"github.com/shopspring/decimal"
)

// BalanceUpdate describes a balance notification: the bank restates an
// account balance without any money moving. These are screened out of the
// transaction pipeline and surfaced separately, like mandate notices.
type BalanceUpdate struct {
	BankName     string
	AccountLast4 string
	Balance      decimal.Decimal
}

// BalanceUpdateRecord is the serialized form of a balance notification.
type BalanceUpdateRecord struct {
	BankName     string  `json:"bank_name"`
	AccountLast4 *string `json:"account_last4"`
	Balance      string  `json:"balance"`
}

// ToRecord converts the notification to its serialized form. The balance
// keeps two decimal places to match transaction records.
func (b *BalanceUpdate) ToRecord() BalanceUpdateRecord {
	return BalanceUpdateRecord{
		BankName:     b.BankName,
		AccountLast4: optString(b.AccountLast4),
		Balance:      b.Balance.StringFixed(2),
	}
}
