package repository

import (
	"context"
	"errors"

	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	domainRepo "github.com/aurumworks/goldsmith-api/internal/domain/repository"
	"github.com/aurumworks/goldsmith-api/pkg/pagination"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type receiptRepository struct {
	db *gorm.DB
}

// NewReceiptRepository creates a new receipt repository
func NewReceiptRepository(db *gorm.DB) domainRepo.ReceiptRepository {
	return &receiptRepository{db: db}
}

// CreateWithBalance writes the receipt, its rows, and the client's new
// balance atomically. The old two-call flow (update balance, then create
// receipt) could leave the balance mutated after a failed create; a single
// transaction closes that window.
func (r *receiptRepository) CreateWithBalance(ctx context.Context, receipt *entity.Receipt, newBalance float64, balanceNote string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&entity.Client{}).
			Where("id = ?", receipt.ClientID).
			Updates(map[string]interface{}{
				"balance":      newBalance,
				"balance_note": balanceNote,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}

		// Item rows ride along through the associations.
		return tx.Create(receipt).Error
	})
}

func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	var receipt entity.Receipt
	err := r.db.WithContext(ctx).
		Preload("GivenItems").
		Preload("ReceivedItems").
		Preload("Client").
		First(&receipt, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &receipt, err
}

func (r *receiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.GivenItem{}, "receipt_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Delete(&entity.ReceivedItem{}, "receipt_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Receipt{}, "id = ?", id).Error
	})
}

func (r *receiptRepository) List(ctx context.Context, userID uuid.UUID, params *domainRepo.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var receipts []entity.Receipt
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).Where("user_id = ?", userID)
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("issue_date DESC, created_at DESC").
		Preload("Client").
		Find(&receipts).Error

	return receipts, total, err
}

// ListWithCursor returns receipts using cursor-based pagination.
// Fetches limit+1 rows to detect whether more results exist.
func (r *receiptRepository) ListWithCursor(ctx context.Context, userID uuid.UUID, params *domainRepo.ReceiptFilterParams, cursor *pagination.CursorParams) ([]entity.Receipt, error) {
	var receipts []entity.Receipt

	cursor.Validate()
	query := r.db.WithContext(ctx).Model(&entity.Receipt{}).Where("user_id = ?", userID)
	if params.ClientID != nil {
		query = query.Where("client_id = ?", *params.ClientID)
	}
	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	decoded, err := cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	if decoded != nil {
		if cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", decoded.CreatedAt, decoded.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", decoded.CreatedAt, decoded.ID)
		}
	}

	err = query.Limit(cursor.Limit + 1).
		Order("created_at ASC, id ASC").
		Preload("Client").
		Find(&receipts).Error

	return receipts, err
}
