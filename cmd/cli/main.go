package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/finsift/smsparser/internal/analytics"
	"github.com/finsift/smsparser/internal/bank"
	"github.com/finsift/smsparser/internal/ingest"
	"github.com/finsift/smsparser/internal/logger"
	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/parse"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log := logger.New("cli", os.Getenv("LOG_LEVEL"))
	engine := parse.NewEngine(bank.Catalog(), log)

	var err error
	switch os.Args[1] {
	case "parse":
		err = runParse(engine, os.Args[2:])
	case "batch":
		err = runBatch(engine, log, os.Args[2:])
	case "senders":
		err = runSenders(engine)
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage: smsparser <command> [flags]

Commands:
  parse    parse a single message
  batch    parse a CSV export of messages
  senders  list supported institutions`)
}

func runParse(engine *parse.Engine, args []string) error {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	body := fs.String("body", "", "message body")
	sender := fs.String("sender", "", "sender address, e.g. XX-SBIBNK-S")
	timestamp := fs.Int64("timestamp", 0, "message timestamp in epoch milliseconds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *body == "" || *sender == "" {
		return fmt.Errorf("both -body and -sender are required")
	}

	out := engine.Process(model.Source{Body: *body, Sender: *sender, Timestamp: *timestamp})

	result := map[string]interface{}{"status": out.Status}
	if out.BankName != "" {
		result["bank_name"] = out.BankName
	}
	if out.Transaction != nil {
		result["transaction"] = out.Transaction.ToRecord()
	}
	if out.Mandate != nil {
		result["mandate"] = out.Mandate.ToRecord()
	}
	return printJSON(result)
}

func runBatch(engine *parse.Engine, log zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	file := fs.String("file", "", "CSV export with address, body and date columns")
	workers := fs.Int("workers", 4, "number of concurrent workers")
	summary := fs.Bool("summary", false, "include monthly summaries in the output")
	out := fs.String("out", "", "write the input annotated with parse results to this CSV file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("-file is required")
	}

	f, err := os.Open(*file)
	if err != nil {
		return fmt.Errorf("open %s: %w", *file, err)
	}
	defer f.Close()

	sources, err := ingest.ReadMessages(f)
	if err != nil {
		return fmt.Errorf("read messages: %w", err)
	}

	report := ingest.NewProcessor(engine, *workers, log).Run(context.Background(), sources)

	if *out != "" {
		of, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create %s: %w", *out, err)
		}
		defer of.Close()
		if err := ingest.WriteAnnotated(of, sources, report.Outcomes); err != nil {
			return fmt.Errorf("write annotated output: %w", err)
		}
	}

	records := make([]model.Record, 0, len(report.Transactions))
	for _, tx := range report.Transactions {
		records = append(records, tx.ToRecord())
	}
	result := map[string]interface{}{
		"run_id":          report.RunID,
		"total":           report.Total,
		"parsed":          report.Parsed,
		"duplicates":      report.Duplicates,
		"mandates":        report.Mandates,
		"not_transaction": report.NotTransaction,
		"no_parser":       report.NoParser,
		"transactions":    records,
	}
	if *summary {
		result["summaries"] = analytics.Summarize(report.Transactions)
	}
	return printJSON(result)
}

func runSenders(engine *parse.Engine) error {
	banks := []string{}
	for _, p := range engine.Registry().Parsers() {
		banks = append(banks, p.BankName())
	}
	return printJSON(map[string]interface{}{"banks": banks})
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
