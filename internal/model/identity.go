package model

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
)

// Identity returns the deterministic deduplication hash for a transaction.
//
// The hash covers the sender, the amount normalized to two decimal places,
// and a digest of the raw message body. Extracted fields such as merchant or
// reference are deliberately excluded: their cleaning rules may change
// between versions, and identity must survive re-ingestion of the same
// message. md5 is a fingerprint here, not a security boundary.
func (t *Transaction) Identity() string {
	bodySum := md5.Sum([]byte(t.Source.Body))
	bodyHash := hex.EncodeToString(bodySum[:])[:16]

	data := fmt.Sprintf("%s|%s|%s", t.Source.Sender, t.Amount.StringFixed(2), bodyHash)
	sum := md5.Sum([]byte(data))
	return hex.EncodeToString(sum[:])
}
