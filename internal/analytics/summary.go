// Package analytics aggregates parsed transactions into per-month summaries.
package analytics

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
)

// Channel is the payment rail a transaction moved on, inferred from the
// message text.
type Channel string

const (
	ChannelUPI   Channel = "upi"
	ChannelCard  Channel = "card"
	ChannelATM   Channel = "atm"
	ChannelOther Channel = "other"
)

// MerchantTotal is one merchant's aggregated spend.
type MerchantTotal struct {
	Merchant string
	Total    decimal.Decimal
	Count    int
}

// Summary aggregates one calendar month of transactions.
type Summary struct {
	// Month is the UTC window in "2006-01" form; transactions without a
	// timestamp group under "unknown".
	Month string

	Spend    decimal.Decimal
	Earn     decimal.Decimal
	Invested decimal.Decimal

	ByKind    map[model.TransactionKind]int
	ByChannel map[Channel]int

	TopMerchants []MerchantTotal
}

const topMerchantLimit = 5

// ChannelOf infers the payment rail for a transaction. Card origin wins over
// text markers; UPI wording beats the ATM check since UPI bodies sometimes
// mention cash.
func ChannelOf(tx *model.Transaction) Channel {
	if tx.IsFromCard {
		return ChannelCard
	}
	lower := strings.ToLower(tx.Source.Body)
	if strings.Contains(lower, "upi") || strings.Contains(lower, "vpa ") {
		return ChannelUPI
	}
	if strings.Contains(lower, "atm") {
		return ChannelATM
	}
	return ChannelOther
}

func monthOf(tx *model.Transaction) string {
	if tx.Source.Timestamp == 0 {
		return "unknown"
	}
	return time.UnixMilli(tx.Source.Timestamp).UTC().Format("2006-01")
}

// Summarize groups transactions into monthly summaries, oldest first, with
// the "unknown" bucket last. Spend covers expenses and card charges; earn is
// income; transfers and balance updates count in ByKind only.
func Summarize(txs []*model.Transaction) []Summary {
	byMonth := map[string]*Summary{}
	merchants := map[string]map[string]*MerchantTotal{}

	for _, tx := range txs {
		month := monthOf(tx)
		s, ok := byMonth[month]
		if !ok {
			s = &Summary{
				Month:     month,
				ByKind:    map[model.TransactionKind]int{},
				ByChannel: map[Channel]int{},
			}
			byMonth[month] = s
			merchants[month] = map[string]*MerchantTotal{}
		}

		s.ByKind[tx.Kind]++
		s.ByChannel[ChannelOf(tx)]++

		switch tx.Kind {
		case model.KindExpense, model.KindCreditCardCharge:
			s.Spend = s.Spend.Add(tx.Amount)
			if tx.Merchant != "" {
				mt, ok := merchants[month][tx.Merchant]
				if !ok {
					mt = &MerchantTotal{Merchant: tx.Merchant}
					merchants[month][tx.Merchant] = mt
				}
				mt.Total = mt.Total.Add(tx.Amount)
				mt.Count++
			}
		case model.KindIncome:
			s.Earn = s.Earn.Add(tx.Amount)
		case model.KindInvestment:
			s.Invested = s.Invested.Add(tx.Amount)
		}
	}

	out := make([]Summary, 0, len(byMonth))
	for month, s := range byMonth {
		s.TopMerchants = rankMerchants(merchants[month])
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Month, out[j].Month
		if a == "unknown" {
			return false
		}
		if b == "unknown" {
			return true
		}
		return a < b
	})
	return out
}

func rankMerchants(totals map[string]*MerchantTotal) []MerchantTotal {
	ranked := make([]MerchantTotal, 0, len(totals))
	for _, mt := range totals {
		ranked = append(ranked, *mt)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if !ranked[i].Total.Equal(ranked[j].Total) {
			return ranked[i].Total.GreaterThan(ranked[j].Total)
		}
		return ranked[i].Merchant < ranked[j].Merchant
	})
	if len(ranked) > topMerchantLimit {
		ranked = ranked[:topMerchantLimit]
	}
	return ranked
}
