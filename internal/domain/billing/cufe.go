package billing

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// cufeTag is the fixed literal appended to the hashed concatenation.
const cufeTag = "SIMULADO"

// SimulatedCUFELength is the fixed length of the generated code, chosen to
// resemble a real SHA-384 CUFE.
const SimulatedCUFELength = 96

// SimulatedCUFE derives the simulated verification code for an invoice.
//
// The four inputs plus the fixed tag are joined with "|", hashed with
// SHA-256, and rendered as lowercase hex (64 chars). The hex string is then
// duplicated and truncated to exactly 96 characters. The second half is
// derivable from the first, so this is visibly not a real 384-bit digest and
// carries no tamper-evidence whatsoever; the construction is kept only so
// newly generated codes stay byte-for-byte identical to documented behavior.
func SimulatedCUFE(invoiceNumber, taxID, total, isoTimestamp string) string {
	data := strings.Join([]string{invoiceNumber, taxID, total, isoTimestamp, cufeTag}, "|")
	sum := sha256.Sum256([]byte(data))
	hexDigest := hex.EncodeToString(sum[:])
	return (hexDigest + hexDigest)[:SimulatedCUFELength]
}
