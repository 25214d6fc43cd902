package repository

import (
	"context"
	"errors"

	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	domainRepo "github.com/aurumworks/goldsmith-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type voucherRepository struct {
	db *gorm.DB
}

// NewVoucherRepository creates a new voucher repository
func NewVoucherRepository(db *gorm.DB) domainRepo.VoucherRepository {
	return &voucherRepository{db: db}
}

// NextNumber reserves the next sequence number for a prefix. The row is
// locked for the duration of the transaction so two concurrent
// submissions cannot take the same voucher number.
func (r *voucherRepository) NextNumber(ctx context.Context, prefix string) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var seq entity.VoucherSequence
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&seq, "prefix = ?", prefix).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			seq = entity.VoucherSequence{Prefix: prefix, Next: 1}
			if err := tx.Create(&seq).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		n = seq.Next
		return tx.Model(&entity.VoucherSequence{}).
			Where("prefix = ?", prefix).
			Update("next", seq.Next+1).Error
	})
	return n, err
}
