package ingest

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/parse"
)

// Report summarizes one batch run. Transactions keep input order and are
// deduplicated by identity hash, so re-ingesting an overlapping export does
// not double-count.
type Report struct {
	RunID          string
	Total          int
	Parsed         int
	Duplicates     int
	Mandates       int
	BalanceUpdates int
	NotTransaction int
	NoParser       int

	Transactions []*model.Transaction
	MandateInfos []*model.MandateInfo

	// Outcomes holds the per-message result in input order, for annotated
	// output. A zero-status entry means the run was cancelled before the
	// message was processed.
	Outcomes []parse.Outcome
}

// Processor runs batches of raw messages through the engine with a fixed
// worker pool.
type Processor struct {
	engine  *parse.Engine
	workers int
	log     zerolog.Logger
}

// NewProcessor creates a processor; workers below 1 are clamped to 1.
func NewProcessor(engine *parse.Engine, workers int, log zerolog.Logger) *Processor {
	if workers < 1 {
		workers = 1
	}
	return &Processor{engine: engine, workers: workers, log: log}
}

type indexedOutcome struct {
	index   int
	outcome parse.Outcome
}

// Run processes all sources and returns the aggregated report. Parsing one
// message never affects another; cancellation stops feeding the pool but
// in-flight messages finish.
func (p *Processor) Run(ctx context.Context, sources []model.Source) Report {
	report := Report{RunID: uuid.NewString(), Total: len(sources)}

	jobs := make(chan int)
	results := make(chan indexedOutcome, len(sources))

	var wg sync.WaitGroup
	for w := 0; w < p.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results <- indexedOutcome{index: i, outcome: p.engine.Process(sources[i])}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i := range sources {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	wg.Wait()
	close(results)

	outcomes := make([]parse.Outcome, len(sources))
	seen := make(map[int]bool, len(sources))
	for r := range results {
		outcomes[r.index] = r.outcome
		seen[r.index] = true
	}

	report.Outcomes = outcomes

	identities := make(map[string]bool)
	for i, out := range outcomes {
		if !seen[i] {
			continue // cancelled before this message was fed
		}
		switch out.Status {
		case parse.StatusParsed:
			id := out.Transaction.Identity()
			if identities[id] {
				report.Duplicates++
				continue
			}
			identities[id] = true
			report.Parsed++
			report.Transactions = append(report.Transactions, out.Transaction)
		case parse.StatusMandate:
			report.Mandates++
			if out.Mandate != nil {
				report.MandateInfos = append(report.MandateInfos, out.Mandate)
			}
		case parse.StatusBalanceUpdate:
			report.BalanceUpdates++
		case parse.StatusNotTransaction:
			report.NotTransaction++
		case parse.StatusNoParser:
			report.NoParser++
		}
	}

	p.log.Info().
		Str("run_id", report.RunID).
		Int("total", report.Total).
		Int("parsed", report.Parsed).
		Int("duplicates", report.Duplicates).
		Int("mandates", report.Mandates).
		Int("balance_updates", report.BalanceUpdates).
		Int("not_transaction", report.NotTransaction).
		Int("no_parser", report.NoParser).
		Msg("batch run complete")
	return report
}
