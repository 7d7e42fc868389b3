package parse

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finsift/smsparser/internal/model"
)

func thaiTestParser() *Parser {
	return New(Config{
		BankName: "Thai Test Bank",
		Accepts:  func(string) bool { return true },
		Locale:   LocaleThai,
	})
}

func TestThaiParse_Withdrawal(t *testing.T) {
	p := thaiTestParser()

	tx := p.Parse(model.Source{
		Body:   "ถอนเงิน THB 1,500.00 ยอดคงเหลือ 12,345.67",
		Sender: "KBANK",
	})
	if tx == nil {
		t.Fatal("Parse returned nil")
	}
	if tx.Kind != model.KindExpense {
		t.Errorf("Kind = %s, want %s", tx.Kind, model.KindExpense)
	}
	if !tx.Amount.Equal(decimal.RequireFromString("1500.00")) {
		t.Errorf("Amount = %s, want 1500.00", tx.Amount)
	}
	if tx.Currency != "THB" {
		t.Errorf("Currency = %q, want THB", tx.Currency)
	}
	if tx.Balance == nil || !tx.Balance.Equal(decimal.RequireFromString("12345.67")) {
		t.Errorf("Balance = %v, want 12345.67", tx.Balance)
	}
}

func TestThaiKind_IncomingTransferIsIncome(t *testing.T) {
	if k := thaiKind("รับโอนเงิน 500.00 บาท"); k != model.KindIncome {
		t.Errorf("kind = %s, want %s", k, model.KindIncome)
	}
	if k := thaiKind("โอนเงิน 500.00 บาท ไปยังบัญชี"); k != model.KindTransfer {
		t.Errorf("kind = %s, want %s", k, model.KindTransfer)
	}
}

func TestThaiAmount_SuffixBaht(t *testing.T) {
	d := thaiAmount("ชำระเงิน 250.00 บาท ที่ 7-ELEVEN")
	if d == nil || !d.Equal(decimal.RequireFromString("250.00")) {
		t.Errorf("thaiAmount = %v, want 250.00", d)
	}
}

func TestThaiKind_InvestmentBeatsTransferVerb(t *testing.T) {
	if k := thaiKind("โอนเงิน 5,000.00 THB ไปยัง NSE CLEARING LTD"); k != model.KindInvestment {
		t.Errorf("kind = %s, want %s", k, model.KindInvestment)
	}
}

func TestThaiMerchant(t *testing.T) {
	if got := thaiMerchant("ชำระเงิน 250.00 บาท ที่ 7-ELEVEN", "KBANK"); got != "7-ELEVEN" {
		t.Errorf("thaiMerchant = %q, want 7-ELEVEN", got)
	}
	if got := thaiMerchant("ถอนเงิน 500.00 บาท", "KBANK"); got != "" {
		t.Errorf("thaiMerchant = %q, want empty", got)
	}
}
