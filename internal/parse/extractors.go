// Package parse implements the message classification and field-extraction
// engine: the parser contract, the default extraction pipeline, the locale
// bases, and the sender dispatch registry.
//
// A parser is assembled from up to three tiers of extractors (root defaults,
// a locale base, leaf overrides) flattened at construction into one fallback
// chain per capability. A chain entry that reports "no match" falls through
// to the next entry, so there is no runtime dispatch between tiers.
package parse

import (
	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
)

// Verdict is the tri-state result of a classification step: accept, reject,
// or no opinion (fall through to the next tier).
type Verdict int

const (
	VerdictNone Verdict = iota
	VerdictAccept
	VerdictReject
)

// Extractors is the capability set a tier may supply. A nil function means
// "inherit": the capability is resolved from the next tier down.
type Extractors struct {
	// Classify decides whether the message describes a completed movement of
	// money at all. VerdictReject short-circuits the whole parse.
	Classify func(msg string) Verdict

	// Amount extracts the transaction amount; nil means no match.
	Amount func(msg string) *decimal.Decimal

	// Kind resolves the transaction kind; empty string means no match.
	Kind func(msg string) model.TransactionKind

	// Merchant extracts the counterparty label; empty string means no match.
	Merchant func(msg, sender string) string

	// Reference extracts the external transaction identifier.
	Reference func(msg string) string

	// AccountTail extracts the masked account/card tail. Implementations
	// reusing the default must keep the false-positive guard (ValidAccountTail).
	AccountTail func(msg string) string

	// Balance extracts the post-transaction balance.
	Balance func(msg string) *decimal.Decimal

	// AvailableLimit extracts the remaining credit limit; only consulted when
	// the resolved kind is a card charge.
	AvailableLimit func(msg string) *decimal.Decimal

	// Currency extracts an explicit in-message currency code, overriding the
	// parser's locale default.
	Currency func(msg string) string

	// CardOrigin decides whether the money moved on a card; ok=false means
	// no opinion.
	CardOrigin func(msg string) (isCard, ok bool)

	// TransferAccounts extracts source and destination tails for transfers.
	TransferAccounts func(msg string) (from, to string)

	// MandateNotice reports whether the message is a future-debit/mandate
	// notice. Checked before the transaction pipeline.
	MandateNotice func(msg string) bool

	// ParseMandate extracts mandate details from a mandate notice.
	ParseMandate func(msg string) *model.MandateInfo

	// BalanceNotice reports whether the message only restates an account
	// balance with no money movement. Checked before the transaction
	// pipeline.
	BalanceNotice func(msg string) bool
}

// Locale is a regional specialization: a default currency plus the shared
// extractor overrides leaf parsers of that region inherit.
type Locale struct {
	Name       string
	Currency   string
	Extractors Extractors
}

// FinalizeFunc lets a leaf adjust the assembled transaction before it is
// sealed, e.g. reclassifying a card message. It runs before the
// kind-dependent side extractions and before construction; the returned
// value is what gets validated and frozen.
type FinalizeFunc func(msg, sender string, tx model.Transaction) model.Transaction

// Config describes one institution parser.
type Config struct {
	BankName string

	// Accepts is the pure sender predicate used by the dispatch registry.
	Accepts func(sender string) bool

	// Locale selects the regional base; nil keeps root defaults only.
	Locale *Locale

	// Currency overrides the locale's default currency for this institution.
	Currency string

	// Overrides is the leaf tier of extractors.
	Overrides Extractors

	// Normalize preprocesses the body before any extraction runs.
	Normalize func(msg string) string

	// Finalize is the leaf post-processing hook.
	Finalize FinalizeFunc
}

// Parser is a fully resolved institution parser. It is immutable after New
// and safe for unsynchronized concurrent use.
type Parser struct {
	bankName  string
	accepts   func(string) bool
	currency  string
	normalize func(string) string
	finalize  FinalizeFunc

	classify    []func(string) Verdict
	amount      []func(string) *decimal.Decimal
	kind        []func(string) model.TransactionKind
	merchant    []func(string, string) string
	reference   []func(string) string
	accountTail []func(string) string
	balance     []func(string) *decimal.Decimal
	limit       []func(string) *decimal.Decimal
	currencyFns []func(string) string
	cardOrigin  []func(string) (bool, bool)
	transfer    []func(string) (string, string)

	mandateNotice []func(string) bool
	parseMandate  []func(string) *model.MandateInfo
	balanceNotice []func(string) bool
}

// New resolves a parser from its configuration. Chains run leaf first, then
// locale, then root defaults.
func New(cfg Config) *Parser {
	p := &Parser{
		bankName:  cfg.BankName,
		accepts:   cfg.Accepts,
		currency:  "INR",
		normalize: cfg.Normalize,
		finalize:  cfg.Finalize,
	}

	if cfg.Locale != nil && cfg.Locale.Currency != "" {
		p.currency = cfg.Locale.Currency
	}
	if cfg.Currency != "" {
		p.currency = cfg.Currency
	}

	tiers := []Extractors{cfg.Overrides}
	if cfg.Locale != nil {
		tiers = append(tiers, cfg.Locale.Extractors)
	}
	tiers = append(tiers, rootExtractors)

	for _, tier := range tiers {
		if tier.Classify != nil {
			p.classify = append(p.classify, tier.Classify)
		}
		if tier.Amount != nil {
			p.amount = append(p.amount, tier.Amount)
		}
		if tier.Kind != nil {
			p.kind = append(p.kind, tier.Kind)
		}
		if tier.Merchant != nil {
			p.merchant = append(p.merchant, tier.Merchant)
		}
		if tier.Reference != nil {
			p.reference = append(p.reference, tier.Reference)
		}
		if tier.AccountTail != nil {
			p.accountTail = append(p.accountTail, tier.AccountTail)
		}
		if tier.Balance != nil {
			p.balance = append(p.balance, tier.Balance)
		}
		if tier.AvailableLimit != nil {
			p.limit = append(p.limit, tier.AvailableLimit)
		}
		if tier.Currency != nil {
			p.currencyFns = append(p.currencyFns, tier.Currency)
		}
		if tier.CardOrigin != nil {
			p.cardOrigin = append(p.cardOrigin, tier.CardOrigin)
		}
		if tier.TransferAccounts != nil {
			p.transfer = append(p.transfer, tier.TransferAccounts)
		}
		if tier.MandateNotice != nil {
			p.mandateNotice = append(p.mandateNotice, tier.MandateNotice)
		}
		if tier.ParseMandate != nil {
			p.parseMandate = append(p.parseMandate, tier.ParseMandate)
		}
		if tier.BalanceNotice != nil {
			p.balanceNotice = append(p.balanceNotice, tier.BalanceNotice)
		}
	}

	return p
}

// BankName returns the institution this parser handles.
func (p *Parser) BankName() string { return p.bankName }

// Accepts reports whether this parser handles messages from the sender.
func (p *Parser) Accepts(sender string) bool { return p.accepts(sender) }

// Currency returns the parser's default currency code.
func (p *Parser) Currency() string { return p.currency }
