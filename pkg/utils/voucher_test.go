package utils

import (
	"strings"
	"testing"
)

func TestFormatVoucherNo(t *testing.T) {
	tests := []struct {
		prefix string
		n      int64
		want   string
	}{
		{"RC", 1, "RC-000001"},
		{"RC", 42, "RC-000042"},
		{"SH", 999999, "SH-999999"},
		{"RC", 1234567, "RC-1234567"},
	}
	for _, tt := range tests {
		if got := FormatVoucherNo(tt.prefix, tt.n); got != tt.want {
			t.Errorf("FormatVoucherNo(%q, %d) = %q, want %q", tt.prefix, tt.n, got, tt.want)
		}
	}
}

func TestPlaceholderVoucherNo(t *testing.T) {
	for i := 0; i < 50; i++ {
		got := PlaceholderVoucherNo("RC")
		if !strings.HasPrefix(got, "RC-") || len(got) != len("RC-000000") {
			t.Fatalf("PlaceholderVoucherNo = %q, want RC-######", got)
		}
		if !IsVoucherNo(got) {
			t.Fatalf("placeholder %q does not satisfy IsVoucherNo", got)
		}
	}
}

func TestIsVoucherNo(t *testing.T) {
	valid := []string{"RC-000001", "SH-123456", "RC-1234567"}
	invalid := []string{"", "RC000001", "rc-000001", "RC-123", "R-123456", "RC-12345a"}

	for _, s := range valid {
		if !IsVoucherNo(s) {
			t.Errorf("IsVoucherNo(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsVoucherNo(s) {
			t.Errorf("IsVoucherNo(%q) = true, want false", s)
		}
	}
}
