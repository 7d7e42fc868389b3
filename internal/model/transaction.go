package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Source is the immutable record of the message a transaction was extracted
// from. It is kept verbatim: identity hashing and auditing both depend on the
// original body, not on any cleaned-up form.
type Source struct {
	Body      string
	Sender    string
	Timestamp int64 // epoch milliseconds, as delivered by the message store
	BankName  string
}

// Transaction is the canonical record extracted from one message. It is a
// pure value: built once by NewTransaction and never mutated afterwards.
// Parser-specific adjustments happen before construction.
type Transaction struct {
	Amount decimal.Decimal
	Kind   TransactionKind

	Merchant    string
	Reference   string
	AccountLast4 string
	FromAccount string
	ToAccount   string

	Balance     *decimal.Decimal
	CreditLimit *decimal.Decimal

	Currency   string
	IsFromCard bool

	Source Source
}

// NewTransaction validates the invariants a Transaction must always hold:
// the amount is present and non-negative, the kind is one of the closed set,
// and a credit card charge is always marked as card-originated.
func NewTransaction(t Transaction) (*Transaction, error) {
	if t.Amount.IsNegative() {
		return nil, fmt.Errorf("model: negative amount %s", t.Amount)
	}
	if !t.Kind.Valid() {
		return nil, fmt.Errorf("model: invalid transaction kind %q", t.Kind)
	}
	if t.Kind == KindCreditCardCharge && !t.IsFromCard {
		return nil, fmt.Errorf("model: credit card charge without card origin")
	}
	if t.Currency == "" {
		return nil, fmt.Errorf("model: missing currency")
	}
	return &t, nil
}

// Record is the serialized shape handed to external consumers (API responses,
// annotated CSV columns). Optional fields marshal as null when absent.
type Record struct {
	Amount       string  `json:"amount"`
	Kind         string  `json:"kind"`
	Merchant     *string `json:"merchant"`
	Reference    *string `json:"reference"`
	AccountLast4 *string `json:"account_last4"`
	Balance      *string `json:"balance"`
	CreditLimit  *string `json:"credit_limit"`
	BankName     string  `json:"bank_name"`
	IsFromCard   bool    `json:"is_from_card"`
	Currency     string  `json:"currency"`
	FromAccount  *string `json:"from_account"`
	ToAccount    *string `json:"to_account"`
	TransactionID string `json:"transaction_id"`
}

// ToRecord converts a Transaction into its external shape.
func (t *Transaction) ToRecord() Record {
	return Record{
		Amount:        t.Amount.StringFixed(2),
		Kind:          t.Kind.String(),
		Merchant:      optString(t.Merchant),
		Reference:     optString(t.Reference),
		AccountLast4:  optString(t.AccountLast4),
		Balance:       optDecimal(t.Balance),
		CreditLimit:   optDecimal(t.CreditLimit),
		BankName:      t.Source.BankName,
		IsFromCard:    t.IsFromCard,
		Currency:      t.Currency,
		FromAccount:   optString(t.FromAccount),
		ToAccount:     optString(t.ToAccount),
		TransactionID: t.Identity(),
	}
}

func optString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func optDecimal(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.StringFixed(2)
	return &s
}
