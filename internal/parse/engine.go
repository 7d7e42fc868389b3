package parse

import (
	"github.com/rs/zerolog"

	"github.com/finsift/smsparser/internal/model"
)

// Status tells the caller what happened to one message.
type Status string

const (
	// StatusParsed: the message produced a transaction.
	StatusParsed Status = "parsed"
	// StatusMandate: the message is a future-debit notice, not a transaction.
	StatusMandate Status = "mandate"
	// StatusBalanceUpdate: the message restates an account balance only.
	StatusBalanceUpdate Status = "balance_update"
	// StatusNotTransaction: a parser accepted the sender but the body is not
	// a parseable transaction.
	StatusNotTransaction Status = "not_transaction"
	// StatusNoParser: no registered parser accepts the sender.
	StatusNoParser Status = "no_parser"
)

// Outcome is the result of processing one message.
type Outcome struct {
	Status        Status
	BankName      string
	Transaction   *model.Transaction
	Mandate       *model.MandateInfo
	BalanceUpdate *model.BalanceUpdate
}

// Engine ties the registry to the per-parser pipelines and gives callers one
// entry point for raw messages.
type Engine struct {
	registry *Registry
	log      zerolog.Logger
}

// NewEngine builds an engine over a resolved registry.
func NewEngine(registry *Registry, log zerolog.Logger) *Engine {
	return &Engine{registry: registry, log: log}
}

// Registry returns the engine's dispatch registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Process classifies and parses one message. It never fails with an error:
// every message maps to exactly one Outcome status.
func (e *Engine) Process(src model.Source) Outcome {
	parser, ok := e.registry.Resolve(src.Sender)
	if !ok {
		e.log.Debug().Str("sender", src.Sender).Msg("no parser for sender")
		return Outcome{Status: StatusNoParser}
	}

	if parser.IsMandateNotice(src.Body) {
		out := Outcome{Status: StatusMandate, BankName: parser.BankName()}
		out.Mandate = parser.ParseMandate(src.Body)
		e.log.Debug().
			Str("sender", src.Sender).
			Str("bank", parser.BankName()).
			Msg("mandate notice detected")
		return out
	}

	if parser.IsBalanceUpdate(src.Body) {
		out := Outcome{Status: StatusBalanceUpdate, BankName: parser.BankName()}
		out.BalanceUpdate = parser.ParseBalanceUpdate(src.Body)
		e.log.Debug().
			Str("sender", src.Sender).
			Str("bank", parser.BankName()).
			Msg("balance notification detected")
		return out
	}

	tx := parser.Parse(src)
	if tx == nil {
		e.log.Debug().
			Str("sender", src.Sender).
			Str("bank", parser.BankName()).
			Msg("message is not a transaction")
		return Outcome{Status: StatusNotTransaction, BankName: parser.BankName()}
	}

	e.log.Debug().
		Str("sender", src.Sender).
		Str("bank", parser.BankName()).
		Str("kind", tx.Kind.String()).
		Str("amount", tx.Amount.String()).
		Msg("message parsed")
	return Outcome{Status: StatusParsed, BankName: parser.BankName(), Transaction: tx}
}
