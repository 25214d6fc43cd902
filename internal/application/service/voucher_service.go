package service

import (
	"context"

	"github.com/aurumworks/goldsmith-api/internal/domain/repository"
	"github.com/aurumworks/goldsmith-api/pkg/apperror"
	"github.com/aurumworks/goldsmith-api/pkg/utils"
)

// VoucherService hands out formatted voucher numbers from the per-prefix
// sequences.
type VoucherService struct {
	voucherRepo repository.VoucherRepository
	prefixes    map[string]bool
}

// NewVoucherService creates a new voucher service. allowedPrefixes is the
// set of prefixes callers may draw from (receipt and shop voucher).
func NewVoucherService(voucherRepo repository.VoucherRepository, allowedPrefixes ...string) *VoucherService {
	prefixes := make(map[string]bool, len(allowedPrefixes))
	for _, p := range allowedPrefixes {
		prefixes[p] = true
	}
	return &VoucherService{voucherRepo: voucherRepo, prefixes: prefixes}
}

// NextVoucher reserves and returns the next formatted voucher number for
// the prefix. Every call consumes a number; the sequence never reuses one.
func (s *VoucherService) NextVoucher(ctx context.Context, prefix string) (string, error) {
	if !s.prefixes[prefix] {
		return "", apperror.NewBadRequestError("Unknown voucher prefix")
	}

	n, err := s.voucherRepo.NextNumber(ctx, prefix)
	if err != nil {
		return "", err
	}

	return utils.FormatVoucherNo(prefix, n), nil
}
