// Package patterns holds the compiled regular expressions shared by the
// default extraction logic. Everything here is built once at init and is
// read-only afterwards, so concurrent parsers can use the catalog without
// synchronization.
package patterns

import "regexp"

// Amount patterns. Ordered: currency-prefixed forms first, the first numeric
// match wins.
var (
	AmountRs          = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	AmountINR         = regexp.MustCompile(`(?i)INR\s*([0-9,]+(?:\.\d{2})?)`)
	AmountRupeeSymbol = regexp.MustCompile(`₹\s*([0-9,]+(?:\.\d{2})?)`)

	AmountAll = []*regexp.Regexp{AmountRs, AmountINR, AmountRupeeSymbol}
)

// Reference patterns.
var (
	RefGeneric = regexp.MustCompile(`(?i)(?:Ref|Reference|Txn|Transaction)(?:\s+No)?[:\s]+([A-Z0-9]+)`)
	RefUPI     = regexp.MustCompile(`(?i)UPI[:\s]+([0-9]+)`)
	RefNumber  = regexp.MustCompile(`(?i)Reference\s+Number[:\s]+([A-Z0-9]+)`)

	ReferenceAll = []*regexp.Regexp{RefGeneric, RefUPI, RefNumber}
)

// Account-tail patterns. The captured digits still pass the false-positive
// guard before being accepted.
var (
	AccountMasked = regexp.MustCompile(`(?i)(?:A/c|Account|Acct)(?:\s+No)?\.?\s+(?:X+|\*+)?(\d{3,4})`)
	CardMasked    = regexp.MustCompile(`(?i)Card\s+(?:X+|\*+)?(\d{4})`)
	CardEnding    = regexp.MustCompile(`(?i)ending\s+(?:in\s+|with\s+)?(?:X+|\*+)?(\d{4})`)

	AccountAll = []*regexp.Regexp{AccountMasked, CardMasked, CardEnding}
)

// Balance patterns.
var (
	BalanceRs         = regexp.MustCompile(`(?i)(?:Bal|Balance|Avl Bal|Available Balance)[:\s]+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	BalanceINR        = regexp.MustCompile(`(?i)(?:Bal|Balance|Avl Bal|Available Balance)[:\s]+INR\s*([0-9,]+(?:\.\d{2})?)`)
	BalanceRupee      = regexp.MustCompile(`(?i)(?:Bal|Balance|Avl Bal|Available Balance)[:\s]+₹\s*([0-9,]+(?:\.\d{2})?)`)
	BalanceBare       = regexp.MustCompile(`(?i)(?:Bal|Balance|Avl Bal|Available Balance)[:\s]+([0-9,]+(?:\.\d{2})?)`)
	BalanceUpdatedRs  = regexp.MustCompile(`(?i)(?:Updated Balance|Remaining Balance)[:\s]+Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	BalanceUpdatedINR = regexp.MustCompile(`(?i)(?:Updated Balance|Remaining Balance)[:\s]+INR\s*([0-9,]+(?:\.\d{2})?)`)

	BalanceAll = []*regexp.Regexp{BalanceRs, BalanceINR, BalanceRupee, BalanceBare, BalanceUpdatedRs, BalanceUpdatedINR}
)

// Available-limit patterns, only consulted for card charges.
var LimitAll = []*regexp.Regexp{
	regexp.MustCompile(`(?i)Available\s+limit\s+Rs\.([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available\s+limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avl\s+Lmt:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Avail\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)Available\s+Credit\s+Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
	regexp.MustCompile(`(?i)(?:^|\s)Limit:?\s*Rs\.?\s*([0-9,]+(?:\.\d{2})?)`),
}

// Merchant clause patterns. "to" runs before "from" so that payee clauses win
// over source-account clauses in messages carrying both.
var (
	MerchantTo   = regexp.MustCompile(`(?i)\bto\s+([^.\n]+?)(?:\s+on\b|\s+at\b|\s+Ref\b|\s+UPI\b|\.|$)`)
	MerchantFrom = regexp.MustCompile(`(?i)\bfrom\s+([^.\n]+?)(?:\s+on\b|\s+at\b|\s+Ref\b|\s+UPI\b|\.|$)`)
	MerchantAt   = regexp.MustCompile(`(?i)\bat\s+([^.\n]+?)(?:\s+on\b|\s+Ref\b|\.|$)`)
	MerchantFor  = regexp.MustCompile(`(?i)\bfor\s+([^.\n]+?)(?:\s+on\b|\s+at\b|\s+Ref\b|\.|$)`)

	MerchantAll = []*regexp.Regexp{MerchantTo, MerchantFrom, MerchantAt, MerchantFor}
)

// Merchant-cleaning patterns, applied in order to strip trailing noise.
var (
	CleanTrailingParens = regexp.MustCompile(`\s*\(.*?\)\s*$`)
	CleanRefSuffix      = regexp.MustCompile(`(?i)\s+Ref\s+No.*`)
	CleanDateSuffix     = regexp.MustCompile(`\s+on\s+\d{2}.*`)
	CleanUPISuffix      = regexp.MustCompile(`(?i)\s+UPI.*`)
	CleanTimeSuffix     = regexp.MustCompile(`\s+at\s+\d{2}:\d{2}.*`)
	CleanTrailingDash   = regexp.MustCompile(`\s*-\s*$`)
	CleanPvtLtd         = regexp.MustCompile(`(?i)(\s+PVT\.?\s*LTD\.?|\s+PRIVATE\s+LIMITED)$`)
	CleanLtd            = regexp.MustCompile(`(?i)(\s+LTD\.?|\s+LIMITED)$`)
)

// Date and time shapes, used by the account-tail guard and mandate parsing.
var (
	DateDDMMYY       = regexp.MustCompile(`\d{1,2}/\d{1,2}/\d{2,4}`)
	DateDDMMYYDash   = regexp.MustCompile(`\d{1,2}-\d{1,2}-\d{2,4}`)
	DateDDMMMYY      = regexp.MustCompile(`(?i)\d{1,2}-[A-Za-z]{3}(?:-\d{2,4})?`)
	DateYYYYMMDDDash = regexp.MustCompile(`\d{4}-\d{1,2}-\d{1,2}`)

	DateAll = []*regexp.Regexp{DateDDMMYY, DateDDMMYYDash, DateDDMMMYY, DateYYYYMMDDDash}

	TimeHHMMSS = regexp.MustCompile(`\d{1,2}:\d{2}:\d{2}`)
)

// HDFC-specific patterns, referenced by the HDFC leaf parser.
var (
	HDFCSenderDLT = []*regexp.Regexp{
		regexp.MustCompile(`^[A-Z]{2}-HDFCBK.*$`),
		regexp.MustCompile(`^[A-Z]{2}-HDFC.*$`),
		regexp.MustCompile(`^HDFC-[A-Z]+$`),
		regexp.MustCompile(`^[A-Z]{2}-HDFCB.*$`),
	}

	HDFCSalary       = regexp.MustCompile(`(?i)for\s+[^-]+-[^-]+-[^-]+\s+[A-Z]+\s+SALARY-([^.\n]+)`)
	HDFCSimpleSalary = regexp.MustCompile(`(?i)SALARY[- ]([^.\n]+?)(?:\s+Info|$)`)
	HDFCInfo         = regexp.MustCompile(`(?i)Info:\s*(?:UPI/)?([^/.\n]+?)(?:/|$)`)
	HDFCVPAWithName  = regexp.MustCompile(`(?i)VPA\s+[^@\s]+@[^\s]+\s*\(([^)]+)\)`)
	HDFCVPA          = regexp.MustCompile(`(?i)VPA\s+([^@\s]+)@`)
	HDFCSpentAt      = regexp.MustCompile(`(?i)at\s+([^.\n]+?)\s+on\s+\d{2}`)
	HDFCDebitFor     = regexp.MustCompile(`(?i)debited\s+for\s+([^.\n]+?)\s+on\s+\d{2}`)

	HDFCUPIRefNo = regexp.MustCompile(`(?i)UPI\s+Ref\s+No\s+(\d{12})`)
	HDFCRefNo    = regexp.MustCompile(`(?i)Ref\s+No\.?\s+([A-Z0-9]+)`)
	HDFCRefSimple = regexp.MustCompile(`(?i)Ref\s+(\d{9,12})`)

	HDFCDeposited      = regexp.MustCompile(`(?i)deposited\s+in\s+(?:HDFC\s+Bank\s+)?A/c\s+(?:X+)?(\d+)`)
	HDFCAccountFrom    = regexp.MustCompile(`(?i)from\s+(?:HDFC\s+Bank\s+)?A/c\s+(?:X+)?(\d+)`)
	HDFCAccountGeneric = regexp.MustCompile(`(?i)A/c\s+(?:X+)?(\d+)`)

	HDFCWillDeduct     = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+will\s+be\s+deducted`)
	HDFCDeductionDate  = regexp.MustCompile(`(?i)deducted\s+on\s+(\d{2}/\d{2}/\d{2})`)
	HDFCMandateMerchant = regexp.MustCompile(`(?i)For\s+([^\n]+?)\s+mandate`)
	HDFCUMN            = regexp.MustCompile(`(?i)UMN\s+([a-zA-Z0-9@]+)`)
)

// Multi-currency amount shapes: ISO code before or after the number. The
// captured code must still pass the month-abbreviation guard. The masked form
// covers card alerts that print a star before an otherwise intact figure
// ("AED *150.00"); amounts with stars inside the digits stay unmatched.
var (
	CurrencyPrefixAmount       = regexp.MustCompile(`\b([A-Z]{3})\.?\s*([0-9,]+(?:\.\d{1,2})?)`)
	CurrencySuffixAmount       = regexp.MustCompile(`([0-9,]+(?:\.\d{1,2})?)\s+([A-Z]{3})\b`)
	CurrencyMaskedPrefixAmount = regexp.MustCompile(`\b([A-Z]{3})\.?\s*\*+([0-9,]+(?:\.\d{1,2})?)\b`)
)

// Iranian bank message shapes, matched after Persian/Arabic digits are
// normalized to ASCII. Amounts are in rials.
var (
	IranAmountLabeled = regexp.MustCompile(`مبلغ\s*:?\s*([0-9,]+)`)
	IranAmountRial    = regexp.MustCompile(`([0-9,]+)\s*(?:ریال|ريال)`)
	IranBalance       = regexp.MustCompile(`(?:مانده|موجودی)\s*:?\s*([0-9,]+)`)
	IranMerchant      = regexp.MustCompile(`(?:پذیرنده|فروشگاه)\s*:?\s*([^\n:،]+)`)
	IranCardTail      = regexp.MustCompile(`کارت\s*(?:\*+|x+)?(\d{4})`)
)

// Thai bank message shapes; Thai banks mix Thai and English in one message.
var (
	ThaiAmountPrefix = regexp.MustCompile(`(?:THB|฿)\s*([0-9,]+(?:\.\d{2})?)`)
	ThaiAmountSuffix = regexp.MustCompile(`([0-9,]+(?:\.\d{2})?)\s*(?:บาท|THB)`)
	ThaiBalance      = regexp.MustCompile(`(?:ยอดคงเหลือ|คงเหลือ|Avail(?:able)?\s+Bal(?:ance)?)\s*:?\s*(?:THB|฿)?\s*([0-9,]+(?:\.\d{2})?)`)
	ThaiMerchant     = regexp.MustCompile(`(?:ที่|ร้าน)\s*:?\s*([A-Za-z0-9][A-Za-z0-9\-&. ]*[A-Za-z0-9])`)
)

// Mandate notice patterns: future-debit amount, payee, schedule.
var (
	MandateAmount    = regexp.MustCompile(`(?i)(?:e-?mandate|mandate|autopay|auto-?debit)\s+(?:of\s+)?Rs\.?\s*([0-9,]+(?:\.\d{2})?)`)
	MandateWillDebit = regexp.MustCompile(`(?i)Rs\.?\s*([0-9,]+(?:\.\d{2})?)\s+will\s+be\s+(?:debited|deducted)`)
	MandateTowards   = regexp.MustCompile(`(?i)towards\s+([^.\n]+?)(?:\s+will\b|\s+on\b|\s+via\b|\.|$)`)
	MandateFor       = regexp.MustCompile(`(?i)\bfor\s+([^.\n]+?)\s+(?:e-?mandate|mandate|subscription)`)
	MandateOnDate    = regexp.MustCompile(`(?i)(?:debited|deducted)\s+on\s+(\d{1,2}[-/](?:[A-Za-z]{3}|\d{1,2})(?:[-/]\d{2,4})?)`)
	MandateUMN       = regexp.MustCompile(`(?i)UMN[:\s]+([a-zA-Z0-9@.]+)`)
)

// monthAbbreviations collide with ISO currency codes in multi-currency
// extraction; "JAN 100.00" is a date fragment, not a january dollar.
var monthAbbreviations = map[string]bool{
	"JAN": true, "FEB": true, "MAR": true, "APR": true, "MAY": true, "JUN": true,
	"JUL": true, "AUG": true, "SEP": true, "OCT": true, "NOV": true, "DEC": true,
}

// IsMonthAbbreviation reports whether a three-letter code is a month
// abbreviation rather than a plausible currency code.
func IsMonthAbbreviation(code string) bool {
	return monthAbbreviations[code]
}
