package analytics

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
)

func tx(t *testing.T, kind model.TransactionKind, amount, merchant, body string, ts time.Time, card bool) *model.Transaction {
	t.Helper()
	out, err := model.NewTransaction(model.Transaction{
		Amount:     decimal.RequireFromString(amount),
		Kind:       kind,
		Merchant:   merchant,
		Currency:   "INR",
		IsFromCard: card,
		Source: model.Source{
			Body:      body,
			Sender:    "XX-TEST-S",
			Timestamp: ts.UnixMilli(),
			BankName:  "Test Bank",
		},
	})
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}
	return out
}

func TestSummarize_MonthWindows(t *testing.T) {
	jan := time.Date(2024, time.January, 10, 12, 0, 0, 0, time.UTC)
	feb := time.Date(2024, time.February, 2, 9, 0, 0, 0, time.UTC)

	txs := []*model.Transaction{
		tx(t, model.KindExpense, "500", "SWIGGY", "Rs.500 debited via UPI", jan, false),
		tx(t, model.KindExpense, "300", "SWIGGY", "Rs.300 debited via UPI", jan, false),
		tx(t, model.KindIncome, "85000", "", "Rs.85000 credited SALARY", jan, false),
		tx(t, model.KindCreditCardCharge, "1200", "AMAZON", "Rs.1200 spent on Credit Card", feb, true),
		tx(t, model.KindInvestment, "5000", "", "Rs.5000 debited to INDIAN CLEARING CORP", feb, false),
	}

	summaries := Summarize(txs)
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}

	jan24 := summaries[0]
	if jan24.Month != "2024-01" {
		t.Fatalf("first month = %s, want 2024-01", jan24.Month)
	}
	if !jan24.Spend.Equal(decimal.RequireFromString("800")) {
		t.Errorf("jan spend = %s, want 800", jan24.Spend)
	}
	if !jan24.Earn.Equal(decimal.RequireFromString("85000")) {
		t.Errorf("jan earn = %s, want 85000", jan24.Earn)
	}
	if jan24.ByKind[model.KindExpense] != 2 {
		t.Errorf("jan expense count = %d, want 2", jan24.ByKind[model.KindExpense])
	}

	feb24 := summaries[1]
	if !feb24.Spend.Equal(decimal.RequireFromString("1200")) {
		t.Errorf("feb spend = %s, want 1200", feb24.Spend)
	}
	if !feb24.Invested.Equal(decimal.RequireFromString("5000")) {
		t.Errorf("feb invested = %s, want 5000", feb24.Invested)
	}
}

func TestSummarize_Channels(t *testing.T) {
	now := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	txs := []*model.Transaction{
		tx(t, model.KindExpense, "100", "A", "Rs.100 debited UPI Ref 1234", now, false),
		tx(t, model.KindCreditCardCharge, "200", "B", "Rs.200 spent on Credit Card", now, true),
		tx(t, model.KindExpense, "300", "", "Rs.300 withdrawn at ATM", now, false),
		tx(t, model.KindExpense, "400", "C", "Rs.400 debited by cheque", now, false),
	}

	s := Summarize(txs)[0]
	want := map[Channel]int{ChannelUPI: 1, ChannelCard: 1, ChannelATM: 1, ChannelOther: 1}
	for ch, n := range want {
		if s.ByChannel[ch] != n {
			t.Errorf("channel %s = %d, want %d", ch, s.ByChannel[ch], n)
		}
	}
}

func TestSummarize_TopMerchants(t *testing.T) {
	now := time.Date(2024, time.April, 1, 0, 0, 0, 0, time.UTC)

	txs := []*model.Transaction{
		tx(t, model.KindExpense, "100", "SWIGGY", "Rs.100 debited", now, false),
		tx(t, model.KindExpense, "900", "SWIGGY", "Rs.900 debited", now, false),
		tx(t, model.KindExpense, "500", "AMAZON", "Rs.500 debited", now, false),
	}

	s := Summarize(txs)[0]
	if len(s.TopMerchants) != 2 {
		t.Fatalf("got %d merchants, want 2", len(s.TopMerchants))
	}
	if s.TopMerchants[0].Merchant != "SWIGGY" || s.TopMerchants[0].Count != 2 {
		t.Errorf("top merchant = %+v, want SWIGGY x2", s.TopMerchants[0])
	}
	if !s.TopMerchants[0].Total.Equal(decimal.RequireFromString("1000")) {
		t.Errorf("top merchant total = %s, want 1000", s.TopMerchants[0].Total)
	}
}

func TestSummarize_UnknownMonthLast(t *testing.T) {
	now := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	noTS, err := model.NewTransaction(model.Transaction{
		Amount:   decimal.RequireFromString("50"),
		Kind:     model.KindExpense,
		Currency: "INR",
		Source:   model.Source{Body: "Rs.50 debited", Sender: "S", BankName: "B"},
	})
	if err != nil {
		t.Fatalf("NewTransaction: %v", err)
	}

	summaries := Summarize([]*model.Transaction{
		noTS,
		tx(t, model.KindExpense, "10", "", "Rs.10 debited", now, false),
	})
	if len(summaries) != 2 {
		t.Fatalf("got %d summaries, want 2", len(summaries))
	}
	if summaries[1].Month != "unknown" {
		t.Errorf("last month = %s, want unknown", summaries[1].Month)
	}
}
