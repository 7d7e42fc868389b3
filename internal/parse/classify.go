package parse

import "strings"

// transactionVerbs are the completed-movement markers. A message without one
// of these never enters the extraction pipeline.
var transactionVerbs = []string{
	"debited", "credited", "paid", "received", "withdrawn", "deposited",
	"sent", "transferred", "spent", "purchase", "payment of", "txn of",
	"debit of", "credit of", "charged", "deducted", "refund", "cashback",
}

// otpMarkers identify one-time-password and verification messages.
var otpMarkers = []string{
	"otp", "one time password", "verification code", "do not share",
}

// marketingMarkers identify promotional and solicitation messages. These are
// rejected even when a transaction verb appears, since offers routinely quote
// amounts and use words like "credited".
var marketingMarkers = []string{
	"pre-approved", "pre approved", "preapproved",
	"apply now", "click here", "t&c apply", "tc apply", "offer valid",
	"avail now", "exclusive offer", "limited period", "congratulations! you are eligible",
	"loan of up to", "upto rs", "up to rs",
	"win ", "cashback offer", "discount",
}

// pendingMarkers identify requests and reminders about money that has not
// moved yet.
var pendingMarkers = []string{
	"has requested money", "payment request", "requested rs",
	"collect request", "is requesting",
	"bill is due", "bill due", "due date", "is due on", "overdue",
	"min amt due", "minimum amount due", "total amt due",
	"will expire", "recharge now",
}

// containsAny reports whether lower contains any of the needles. Needles are
// expected to be lowercase already.
func containsAny(lower string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

// defaultClassify is the root transaction-message check: reject OTPs,
// marketing, and not-yet-money messages outright, then require a completed
// transaction verb. No verb means reject; the pipeline fails closed.
func defaultClassify(msg string) Verdict {
	lower := strings.ToLower(msg)

	if containsAny(lower, otpMarkers) {
		return VerdictReject
	}
	if containsAny(lower, marketingMarkers) {
		return VerdictReject
	}
	if containsAny(lower, pendingMarkers) {
		return VerdictReject
	}
	if containsAny(lower, transactionVerbs) {
		return VerdictAccept
	}
	return VerdictReject
}
