package utils

import (
	"fmt"
	"math/rand/v2"
	"regexp"

	"github.com/google/uuid"
)

// NewUUID generates a new UUID
func NewUUID() uuid.UUID {
	return uuid.New()
}

// ParseUUID parses a string into a UUID
func ParseUUID(s string) (uuid.UUID, error) {
	return uuid.Parse(s)
}

// FormatVoucherNo renders a sequence number in voucher form, e.g.
// RC-000042. Numbers past six digits widen rather than truncate.
func FormatVoucherNo(prefix string, n int64) string {
	return fmt.Sprintf("%s-%06d", prefix, n)
}

// PlaceholderVoucherNo generates a random six-digit voucher number of the
// RC-###### form. The form shows it while the real sequence number is
// fetched; it stays in place if that fetch fails.
func PlaceholderVoucherNo(prefix string) string {
	return fmt.Sprintf("%s-%06d", prefix, rand.IntN(1000000))
}

var voucherNoPattern = regexp.MustCompile(`^[A-Z]{2,5}-\d{6,}$`)

// IsVoucherNo reports whether s looks like a voucher number.
func IsVoucherNo(s string) bool {
	return voucherNoPattern.MatchString(s)
}
