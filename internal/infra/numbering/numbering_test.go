package numbering

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var numberPattern = regexp.MustCompile(`^[A-Z]+-\d+-[0-9A-F]{6}$`)

func TestNext_Format(t *testing.T) {
	for _, prefix := range []string{OrderPrefix, InvoicePrefix, CertificatePrefix} {
		number := Next(prefix)
		assert.Regexp(t, numberPattern, number)
		assert.Contains(t, number, prefix+"-")
	}
}

func TestNext_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		number := Next(OrderPrefix)
		_, dup := seen[number]
		require.False(t, dup, "duplicate number %s", number)
		seen[number] = struct{}{}
	}
}
