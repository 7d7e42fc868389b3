package parse

import (
	"regexp"
	"strconv"

	"github.com/finsift/smsparser/internal/patterns"
)

// tailContextWindow is how far back an account/card word must appear for a
// year-shaped tail (2000-2099) to be trusted.
const tailContextWindow = 25

var tailContextVocab = regexp.MustCompile(`(?i)\b(?:A/c|Account|Acct|Card)\b`)

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// ValidAccountTail reports whether the digits captured at pos really are a
// masked account or card tail. Bank messages are full of other 3-4 digit
// runs: date fragments, slices of 12-digit RRNs, and bare years, all of which
// must be refused rather than guessed.
func ValidAccountTail(msg, tail string, pos int) bool {
	end := pos + len(tail)

	// Part of a longer digit run means the capture is a slice of a reference
	// or RRN, not a tail.
	runStart, runEnd := pos, end
	for runStart > 0 && isDigit(msg[runStart-1]) {
		runStart--
	}
	for runEnd < len(msg) && isDigit(msg[runEnd]) {
		runEnd++
	}
	if runLen := runEnd - runStart; runLen >= 8 && runLen <= 16 {
		return false
	}

	// Inside a date shape (05/01/24, 05-01-2024, 05-Jan-24).
	for _, p := range patterns.DateAll {
		for _, m := range p.FindAllStringIndex(msg, -1) {
			if pos >= m[0] && end <= m[1] {
				return false
			}
		}
	}

	// A year-shaped tail needs explicit account or card wording close by,
	// otherwise "in 2024" style fragments leak through.
	if len(tail) == 4 {
		if year, err := strconv.Atoi(tail); err == nil && year >= 2000 && year <= 2099 {
			windowStart := pos - tailContextWindow
			if windowStart < 0 {
				windowStart = 0
			}
			if !tailContextVocab.MatchString(msg[windowStart:pos]) {
				return false
			}
		}
	}

	return true
}
