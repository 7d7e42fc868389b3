package parse

import (
	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
)

// Parse runs the full extraction pipeline over one message and returns the
// sealed transaction, or nil when the message cannot be parsed with
// confidence. The pipeline fails closed: a missing amount, an unresolvable
// kind, or a rejected classification all yield nil rather than a guess.
//
// Mandate notices and balance notifications are screened out first; use
// IsMandateNotice/ParseMandate and IsBalanceUpdate/ParseBalanceUpdate to
// handle those.
func (p *Parser) Parse(src model.Source) *model.Transaction {
	body := src.Body
	if p.normalize != nil {
		body = p.normalize(body)
	}

	if p.isMandateNotice(body) {
		return nil
	}
	if p.isBalanceUpdate(body) {
		return nil
	}
	if p.classifyChain(body) != VerdictAccept {
		return nil
	}

	amount := p.amountChain(body)
	if amount == nil {
		return nil
	}

	kind := p.kindChain(body)
	if kind == "" {
		return nil
	}

	isCard := p.cardOriginChain(body)
	if isCard && kind == model.KindExpense && isCreditCardSpend(body) {
		kind = model.KindCreditCardCharge
	}

	src.BankName = p.bankName
	tx := model.Transaction{
		Amount:       *amount,
		Kind:         kind,
		Merchant:     p.merchantChain(body, src.Sender),
		Reference:    p.referenceChain(body),
		AccountLast4: p.accountTailChain(body),
		Balance:      p.balanceChain(body),
		Currency:     p.resolveCurrency(body),
		IsFromCard:   isCard,
		Source:       src,
	}

	// Finalize runs before the kind-dependent side extractions so a charge
	// reclassified by the leaf still picks up its credit limit.
	if p.finalize != nil {
		tx = p.finalize(body, src.Sender, tx)
	}

	if tx.Kind == model.KindCreditCardCharge && tx.CreditLimit == nil {
		tx.CreditLimit = p.limitChain(body)
	}
	if tx.Kind == model.KindTransfer && tx.FromAccount == "" && tx.ToAccount == "" {
		tx.FromAccount, tx.ToAccount = p.transferChain(body)
	}

	sealed, err := model.NewTransaction(tx)
	if err != nil {
		return nil
	}
	return sealed
}

// IsMandateNotice reports whether the message announces a future or recurring
// debit rather than a completed one.
func (p *Parser) IsMandateNotice(body string) bool {
	if p.normalize != nil {
		body = p.normalize(body)
	}
	return p.isMandateNotice(body)
}

// ParseMandate extracts mandate details from a mandate notice. Returns nil
// when the message is not a mandate notice or the amount cannot be read.
func (p *Parser) ParseMandate(body string) *model.MandateInfo {
	if p.normalize != nil {
		body = p.normalize(body)
	}
	if !p.isMandateNotice(body) {
		return nil
	}
	for _, fn := range p.parseMandate {
		if info := fn(body); info != nil {
			return info
		}
	}
	return nil
}

// IsBalanceUpdate reports whether the message restates an account balance
// without describing a transaction.
func (p *Parser) IsBalanceUpdate(body string) bool {
	if p.normalize != nil {
		body = p.normalize(body)
	}
	return p.isBalanceUpdate(body)
}

// ParseBalanceUpdate extracts the restated balance and account tail from a
// balance notification. Returns nil when the message is not one or the
// balance cannot be read.
func (p *Parser) ParseBalanceUpdate(body string) *model.BalanceUpdate {
	if p.normalize != nil {
		body = p.normalize(body)
	}
	if !p.isBalanceUpdate(body) {
		return nil
	}
	bal := p.balanceChain(body)
	if bal == nil {
		return nil
	}
	return &model.BalanceUpdate{
		BankName:     p.bankName,
		AccountLast4: p.accountTailChain(body),
		Balance:      *bal,
	}
}

func (p *Parser) isMandateNotice(body string) bool {
	for _, fn := range p.mandateNotice {
		if fn(body) {
			return true
		}
	}
	return false
}

func (p *Parser) isBalanceUpdate(body string) bool {
	for _, fn := range p.balanceNotice {
		if fn(body) {
			return true
		}
	}
	return false
}

func (p *Parser) classifyChain(body string) Verdict {
	for _, fn := range p.classify {
		if v := fn(body); v != VerdictNone {
			return v
		}
	}
	return VerdictReject
}

func (p *Parser) amountChain(body string) *decimal.Decimal {
	for _, fn := range p.amount {
		if d := fn(body); d != nil {
			return d
		}
	}
	return nil
}

func (p *Parser) kindChain(body string) model.TransactionKind {
	for _, fn := range p.kind {
		if k := fn(body); k != "" {
			return k
		}
	}
	return ""
}

func (p *Parser) merchantChain(body, sender string) string {
	for _, fn := range p.merchant {
		if m := fn(body, sender); m != "" {
			return m
		}
	}
	return ""
}

func (p *Parser) referenceChain(body string) string {
	for _, fn := range p.reference {
		if r := fn(body); r != "" {
			return r
		}
	}
	return ""
}

func (p *Parser) accountTailChain(body string) string {
	for _, fn := range p.accountTail {
		if a := fn(body); a != "" {
			return a
		}
	}
	return ""
}

func (p *Parser) balanceChain(body string) *decimal.Decimal {
	for _, fn := range p.balance {
		if b := fn(body); b != nil {
			return b
		}
	}
	return nil
}

func (p *Parser) limitChain(body string) *decimal.Decimal {
	for _, fn := range p.limit {
		if l := fn(body); l != nil {
			return l
		}
	}
	return nil
}

func (p *Parser) cardOriginChain(body string) bool {
	for _, fn := range p.cardOrigin {
		if isCard, ok := fn(body); ok {
			return isCard
		}
	}
	return false
}

func (p *Parser) transferChain(body string) (string, string) {
	for _, fn := range p.transfer {
		if from, to := fn(body); from != "" || to != "" {
			return from, to
		}
	}
	return "", ""
}

func (p *Parser) resolveCurrency(body string) string {
	for _, fn := range p.currencyFns {
		if c := fn(body); c != "" {
			return c
		}
	}
	return p.currency
}
