package model

import (
	"github.com/shopspring/decimal"
)

// MandateInfo describes a detected future or recurring debit authorization
// (e-mandate creation, upcoming auto-debit). A message is either a completed
// transaction or a mandate notice, never both; mandate notices are filtered
// out before the transaction pipeline runs so future obligations are not
// counted as spend.
type MandateInfo struct {
	Amount   decimal.Decimal
	Merchant string

	// NextDeductionDate is the raw matched date string; DateFormat is the
	// bank's format hint for it. Parsing to a concrete time is left to the
	// caller, which owns the timezone policy.
	NextDeductionDate string
	DateFormat        string

	// UMN is the Unique Mandate Number assigned by the bank, when present.
	UMN string
}

// MandateRecord is the serialized form of a mandate notice.
type MandateRecord struct {
	Amount            string  `json:"amount"`
	Merchant          *string `json:"merchant"`
	NextDeductionDate *string `json:"next_deduction_date"`
	DateFormat        *string `json:"date_format"`
	UMN               *string `json:"umn"`
}

// ToRecord converts the mandate to its serialized form. The amount keeps two
// decimal places to match transaction records.
func (m *MandateInfo) ToRecord() MandateRecord {
	return MandateRecord{
		Amount:            m.Amount.StringFixed(2),
		Merchant:          optString(m.Merchant),
		NextDeductionDate: optString(m.NextDeductionDate),
		DateFormat:        optString(m.DateFormat),
		UMN:               optString(m.UMN),
	}
}
