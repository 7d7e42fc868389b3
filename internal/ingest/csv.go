// Package ingest reads exported message dumps and runs them through the
// parse engine concurrently.
package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/finsift/smsparser/internal/model"
	"github.com/finsift/smsparser/internal/parse"
)

// ReadMessages reads a message export. The file must have a header row with
// at least "address" and "body" columns; "date" (epoch milliseconds) is
// optional. Column order does not matter.
func ReadMessages(r io.Reader) ([]model.Source, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols := map[string]int{}
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	addrIdx, ok := cols["address"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "address")
	}
	bodyIdx, ok := cols["body"]
	if !ok {
		return nil, fmt.Errorf("missing required column %q", "body")
	}
	dateIdx, hasDate := cols["date"]

	var sources []model.Source
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read line %d: %w", line, err)
		}
		if addrIdx >= len(row) || bodyIdx >= len(row) {
			return nil, fmt.Errorf("line %d: too few columns", line)
		}

		src := model.Source{
			Sender: strings.TrimSpace(row[addrIdx]),
			Body:   row[bodyIdx],
		}
		if hasDate && dateIdx < len(row) && row[dateIdx] != "" {
			ts, err := strconv.ParseInt(strings.TrimSpace(row[dateIdx]), 10, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: bad date %q: %w", line, row[dateIdx], err)
			}
			src.Timestamp = ts
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// WriteAnnotated writes the input messages back out with the parse results
// appended as extra columns. Rows and outcomes must be index-aligned, as
// produced by Processor.Run.
func WriteAnnotated(w io.Writer, sources []model.Source, outcomes []parse.Outcome) error {
	if len(sources) != len(outcomes) {
		return fmt.Errorf("sources and outcomes differ in length: %d vs %d", len(sources), len(outcomes))
	}

	cw := csv.NewWriter(w)
	header := []string{
		"address", "date", "body",
		"status", "bank_name", "amount", "kind", "merchant",
		"account_last4", "currency", "transaction_id",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, src := range sources {
		out := outcomes[i]
		row := []string{
			src.Sender,
			formatTimestamp(src.Timestamp),
			src.Body,
			string(out.Status), out.BankName, "", "", "", "", "", "",
		}
		if tx := out.Transaction; tx != nil {
			row[5] = tx.Amount.StringFixed(2)
			row[6] = tx.Kind.String()
			row[7] = tx.Merchant
			row[8] = tx.AccountLast4
			row[9] = tx.Currency
			row[10] = tx.Identity()
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatTimestamp(ts int64) string {
	if ts == 0 {
		return ""
	}
	return strconv.FormatInt(ts, 10)
}
