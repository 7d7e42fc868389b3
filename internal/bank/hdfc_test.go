package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsift/smsparser/internal/model"
)

func TestHDFCAccepts(t *testing.T) {
	p := NewHDFC()

	for _, sender := range []string{"XX-HDFCBK-S", "VM-HDFCBK", "AD-HDFC-P", "HDFC-ALERTS"} {
		assert.True(t, p.Accepts(sender), "sender %s", sender)
	}
	for _, sender := range []string{"XX-SBIBNK-S", "HDFCX", "ICICI-HDFC"} {
		assert.False(t, p.Accepts(sender), "sender %s", sender)
	}
}

func TestHDFCParse_UPIDebit(t *testing.T) {
	p := NewHDFC()

	tx := p.Parse(model.Source{
		Body:   "Rs.420.00 debited from HDFC Bank A/c XX3456 to VPA swiggy@icici (Swiggy) UPI Ref No 400123456789",
		Sender: "XX-HDFCBK-S",
	})
	require.NotNil(t, tx)

	assert.Equal(t, model.KindExpense, tx.Kind)
	assert.Equal(t, "Swiggy", tx.Merchant)
	assert.Equal(t, "400123456789", tx.Reference)
	assert.Equal(t, "3456", tx.AccountLast4)
}

func TestHDFCParse_SalaryCredit(t *testing.T) {
	p := NewHDFC()

	tx := p.Parse(model.Source{
		Body:   "Rs.85,000.00 credited to A/c XX3456 SALARY-ACME CORP Info: NEFT",
		Sender: "VM-HDFCBK",
	})
	require.NotNil(t, tx)

	assert.Equal(t, model.KindIncome, tx.Kind)
	assert.Equal(t, "ACME CORP", tx.Merchant)
}

func TestHDFCParse_VPAHandleFallback(t *testing.T) {
	p := NewHDFC()

	tx := p.Parse(model.Source{
		Body:   "Rs.150.00 debited from A/c XX3456 to VPA rahulkumar@oksbi on 14/02/24",
		Sender: "XX-HDFCBK-S",
	})
	require.NotNil(t, tx)
	assert.Equal(t, "rahulkumar", tx.Merchant)
}

func TestHDFCMandate(t *testing.T) {
	p := NewHDFC()
	body := "For Netflix mandate Rs.649.00 will be deducted on 05/02/24 UMN abc123@hdfcbank"

	require.True(t, p.IsMandateNotice(body))

	info := p.ParseMandate(body)
	require.NotNil(t, info)
	assert.True(t, info.Amount.Equal(decimal.RequireFromString("649.00")), "amount %s", info.Amount)
	assert.Equal(t, "Netflix", info.Merchant)
	assert.Equal(t, "05/02/24", info.NextDeductionDate)
	assert.Equal(t, "02/01/06", info.DateFormat)
	assert.Equal(t, "abc123@hdfcbank", info.UMN)

	// The notice must never surface as a transaction.
	assert.Nil(t, p.Parse(model.Source{Body: body, Sender: "XX-HDFCBK-S"}))
}

func TestHDFCMandate_FallsBackToSharedParsing(t *testing.T) {
	p := NewHDFC()
	body := "e-mandate of Rs 499 towards Spotify will be debited on 07-Mar"

	info := p.ParseMandate(body)
	require.NotNil(t, info)
	assert.True(t, info.Amount.Equal(decimal.NewFromInt(499)), "amount %s", info.Amount)
	assert.Equal(t, "Spotify", info.Merchant)
}
