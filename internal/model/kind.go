package model

// TransactionKind classifies a parsed transaction. The set is closed: every
// parse either resolves to exactly one kind or fails entirely. There is no
// fallback kind; a message whose verb cannot be classified is not a
// transaction.
type TransactionKind string

const (
	// KindIncome is money arriving in an account (credited, deposited,
	// received, refund, cashback).
	KindIncome TransactionKind = "INCOME"

	// KindExpense is money leaving an account (debited, withdrawn, spent,
	// paid, purchase, deducted).
	KindExpense TransactionKind = "EXPENSE"

	// KindCreditCardCharge is spend on a credit card, tracked separately from
	// account expenses because it creates a liability rather than moving
	// account balance.
	KindCreditCardCharge TransactionKind = "CREDIT_CARD_CHARGE"

	// KindTransfer is a movement between two accounts of the same holder.
	KindTransfer TransactionKind = "TRANSFER"

	// KindInvestment is a transfer to a clearing corporation, broker, or fund
	// house. Investment messages use ordinary banking verbs, so this kind is
	// resolved before the debit/credit vocabulary.
	KindInvestment TransactionKind = "INVESTMENT"

	// KindBalanceUpdate is a balance notification that still reports a
	// movement amount.
	KindBalanceUpdate TransactionKind = "BALANCE_UPDATE"
)

// Valid reports whether k is one of the closed set of kinds.
func (k TransactionKind) Valid() bool {
	switch k {
	case KindIncome, KindExpense, KindCreditCardCharge, KindTransfer, KindInvestment, KindBalanceUpdate:
		return true
	}
	return false
}

func (k TransactionKind) String() string {
	return string(k)
}
