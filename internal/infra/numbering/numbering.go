// Package numbering generates business identifiers (order, invoice and
// certificate numbers). Numbers keep the human-readable
// <PREFIX>-<unix-millis> convention and append a random suffix so rapid
// concurrent creation cannot collide on timestamp granularity alone.
package numbering

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// Prefixes for the generated number families.
const (
	OrderPrefix       = "ORD"
	InvoicePrefix     = "INV"
	CertificatePrefix = "CERT"
)

// Next returns a new business number for the given prefix.
func Next(prefix string) string {
	var suffix [3]byte
	// crypto/rand.Read only fails when the OS entropy source is broken;
	// the zero suffix still leaves the timestamp component intact.
	_, _ = rand.Read(suffix[:])

	return fmt.Sprintf("%s-%d-%s", prefix, time.Now().UnixMilli(), strings.ToUpper(hex.EncodeToString(suffix[:])))
}
