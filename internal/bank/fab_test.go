package bank

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finsift/smsparser/internal/model"
)

func TestFABParse_CardPurchase(t *testing.T) {
	p := NewFAB()

	tx := p.Parse(model.Source{
		Body:   "Purchase of AED 250.00 with your Debit Card ending 4455 at CARREFOUR DUBAI",
		Sender: "FAB",
	})
	require.NotNil(t, tx)

	assert.Equal(t, model.KindExpense, tx.Kind)
	assert.True(t, tx.IsFromCard)
	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("250.00")), "amount %s", tx.Amount)
	assert.Equal(t, "AED", tx.Currency)
	assert.Contains(t, tx.Merchant, "CARREFOUR")
}

func TestFABParse_MaskedLeadingStarAmount(t *testing.T) {
	p := NewFAB()

	tx := p.Parse(model.Source{
		Body:   "Your Credit Card XX1234 was used for AED *150.00 at CARREFOUR, DUBAI",
		Sender: "FAB",
	})
	require.NotNil(t, tx)

	assert.True(t, tx.Amount.Equal(decimal.RequireFromString("150.00")), "amount %s", tx.Amount)
	assert.Equal(t, "AED", tx.Currency)
	assert.Equal(t, model.KindCreditCardCharge, tx.Kind)
	assert.True(t, tx.IsFromCard)
}

func TestFABParse_TransferAccounts(t *testing.T) {
	p := NewFAB()

	tx := p.Parse(model.Source{
		Body:   "AED 5,000.00 transferred from account XX1234 to account XX5678",
		Sender: "FAB",
	})
	require.NotNil(t, tx)

	assert.Equal(t, model.KindTransfer, tx.Kind)
	assert.Equal(t, "1234", tx.FromAccount)
	assert.Equal(t, "5678", tx.ToAccount)
}

func TestFABParse_Rejections(t *testing.T) {
	p := NewFAB()

	tests := []struct {
		name string
		body string
	}{
		{"declined card payment", "Your payment of AED 90.00 has been declined due to insufficient funds"},
		{"partially masked amount", "Purchase of AED 1,2**.50 with your Credit Card at NOON.COM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Nil(t, p.Parse(model.Source{Body: tt.body, Sender: "FAB"}))
		})
	}
}
