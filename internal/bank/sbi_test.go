package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsift/smsparser/internal/model"
)

func TestSBIAccepts(t *testing.T) {
	p := NewSBI()

	for _, sender := range []string{"XX-SBIBNK-S", "VM-SBIINB", "AD-SBIUPI-T", "CBSSBI"} {
		assert.True(t, p.Accepts(sender), "sender %s", sender)
	}
	for _, sender := range []string{"XX-HDFCBK-S", "FAB", "AX-ICICIB"} {
		assert.False(t, p.Accepts(sender), "sender %s", sender)
	}
}

func TestSBIParse_AccountDebit(t *testing.T) {
	p := NewSBI()

	tx := p.Parse(model.Source{
		Body:   "Rs.1,234.56 debited from A/c XX4321 on 05-01-24 to AMAZON. Avl Bal Rs.9,876.54",
		Sender: "XX-SBIBNK-S",
	})
	require.NotNil(t, tx)

	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("1234.56")), "amount %s", tx.Amount)
	assert.Equal(t, model.KindExpense, tx.Kind)
	assert.Equal(t, "4321", tx.AccountLast4)
	assert.Contains(t, tx.Merchant, "AMAZON")
	require.NotNil(t, tx.Balance)
	assert.True(t, tx.Balance.Equal(decimal.RequireFromString("9876.54")), "balance %s", tx.Balance)
	assert.Equal(t, "INR", tx.Currency)
	assert.False(t, tx.IsFromCard)
	assert.Equal(t, "State Bank of India", tx.Source.BankName)
}

func TestSBIParse_UPIDebitedBy(t *testing.T) {
	p := NewSBI()

	tx := p.Parse(model.Source{
		Body:   "A/c XX9999-debited by 500.0 on 12Jan24 trf to JOHN DOE Refno 400100200300",
		Sender: "VM-SBIUPI",
	})
	require.NotNil(t, tx)

	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("500.0")), "amount %s", tx.Amount)
	assert.Equal(t, "JOHN DOE", tx.Merchant)
	assert.Equal(t, "400100200300", tx.Reference)
	assert.Equal(t, "9999", tx.AccountLast4)
}

func TestSBIParse_NonASCIIStripped(t *testing.T) {
	p := NewSBI()

	tx := p.Parse(model.Source{
		Body:   "Rs.250.00 debited from A/c XX1212 to IRCTC​. Avl Bal Rs.5,000.00",
		Sender: "XX-SBIBNK-S",
	})
	require.NotNil(t, tx)
	assert.Equal(t, "1212", tx.AccountLast4)
	assert.Contains(t, tx.Merchant, "IRCTC")
}

func TestSBIParse_CreditCardOverride(t *testing.T) {
	p := NewSBI()

	tx := p.Parse(model.Source{
		Body:   "Rs.999.00 spent on your SBI Credit Card ending 7777 at NETFLIX. Avl Lmt: Rs.50,001.00",
		Sender: "XX-SBICRD-S",
	})
	require.NotNil(t, tx)
	assert.Equal(t, model.KindCreditCardCharge, tx.Kind)
	assert.True(t, tx.IsFromCard)
	require.NotNil(t, tx.CreditLimit)
	assert.True(t, tx.CreditLimit.Equal(decimal.RequireFromString("50001.00")), "limit %s", tx.CreditLimit)
}

func TestSBIParse_CardSpendWithoutCreditCardWording(t *testing.T) {
	// The card arm phrases some spends without "credit card"; the sender code
	// alone reclassifies, and the limit must still be picked up afterwards.
	p := NewSBI()

	tx := p.Parse(model.Source{
		Body:   "Rs.1,200.00 spent on your card ending with 5678 at AMAZON on 12-01-24. Avl Lmt Rs.48,800.00",
		Sender: "XX-SBICRD-S",
	})
	require.NotNil(t, tx)
	assert.Equal(t, model.KindCreditCardCharge, tx.Kind)
	assert.True(t, tx.IsFromCard)
	assert.Equal(t, "5678", tx.AccountLast4)
	assert.Equal(t, "AMAZON", tx.Merchant)
	require.NotNil(t, tx.CreditLimit)
	assert.True(t, tx.CreditLimit.Equal(decimal.RequireFromString("48800.00")), "limit %s", tx.CreditLimit)
}

func TestSBIParse_CardPaymentCreditedIsIncome(t *testing.T) {
	p := NewSBI()

	tx := p.Parse(model.Source{
		Body:   "Payment of Rs.5,000.00 credited to your SBI Credit Card ending 7777 via BBPS",
		Sender: "XX-SBICRD-S",
	})
	require.NotNil(t, tx)
	assert.Equal(t, model.KindIncome, tx.Kind)
	assert.Equal(t, "BBPS Payment", tx.Merchant)
	assert.Equal(t, "7777", tx.AccountLast4)
	assert.True(t, tx.IsFromCard)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("5000.00")), "amount %s", tx.Amount)
}
