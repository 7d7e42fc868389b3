package parse

import (
	"strings"

	"github.com/finsift/smsparser/internal/patterns"
)

// merchantStopWords are connective words a clause pattern can capture on
// their own; none of them is ever a real counterparty.
var merchantStopWords = map[string]bool{
	"USING": true, "VIA": true, "THROUGH": true, "BY": true, "WITH": true,
	"FOR": true, "TO": true, "FROM": true, "AT": true, "THE": true,
	"YOUR": true, "YOU": true, "INFO": true,
}

// CleanMerchantName strips trailing noise (ref numbers, dates, UPI suffixes,
// corporate suffixes) from a raw merchant capture.
func CleanMerchantName(raw string) string {
	s := strings.TrimSpace(raw)

	s = patterns.CleanTrailingParens.ReplaceAllString(s, "")
	s = patterns.CleanRefSuffix.ReplaceAllString(s, "")
	s = patterns.CleanDateSuffix.ReplaceAllString(s, "")
	s = patterns.CleanUPISuffix.ReplaceAllString(s, "")
	s = patterns.CleanTimeSuffix.ReplaceAllString(s, "")
	s = patterns.CleanPvtLtd.ReplaceAllString(s, "")
	s = patterns.CleanLtd.ReplaceAllString(s, "")
	s = patterns.CleanTrailingDash.ReplaceAllString(s, "")

	s = strings.Trim(s, `"'`)
	return strings.TrimSpace(s)
}

// validMerchantName filters out captures that are obviously not a
// counterparty: empty, too short, pure digits, account fragments, VPA
// addresses, or connective words.
func validMerchantName(name string) bool {
	if len(name) < 2 {
		return false
	}
	if strings.Contains(name, "@") {
		return false
	}
	if merchantStopWords[strings.ToUpper(name)] {
		return false
	}

	hasAlpha := false
	allDigits := true
	for _, r := range name {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' {
			hasAlpha = true
		}
		if r < '0' || r > '9' {
			allDigits = false
		}
	}
	if !hasAlpha || allDigits {
		return false
	}

	lower := strings.ToLower(name)
	if strings.HasPrefix(lower, "a/c") || strings.HasPrefix(lower, "account") ||
		strings.HasPrefix(lower, "acct") || strings.HasPrefix(lower, "your ") {
		return false
	}
	return true
}

// defaultMerchant tries each clause pattern in order, cleaning and validating
// every capture before accepting it. No valid capture means no merchant.
func defaultMerchant(msg, _ string) string {
	for _, p := range patterns.MerchantAll {
		for _, m := range p.FindAllStringSubmatch(msg, -1) {
			name := CleanMerchantName(m[1])
			if validMerchantName(name) {
				return name
			}
		}
	}
	return ""
}
