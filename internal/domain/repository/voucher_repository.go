package repository

import "context"

// VoucherRepository hands out voucher sequence numbers.
type VoucherRepository interface {
	// NextNumber reserves and returns the next number for the prefix,
	// creating the sequence row on first use. Safe under concurrent
	// callers.
	NextNumber(ctx context.Context, prefix string) (int64, error)
}
