package repository

import (
	"context"

	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	"github.com/aurumworks/goldsmith-api/internal/domain/enum"
	"github.com/aurumworks/goldsmith-api/pkg/pagination"
	"github.com/google/uuid"
)

// ReceiptFilterParams narrows a receipt listing.
type ReceiptFilterParams struct {
	ClientID   *uuid.UUID
	Status     *enum.ReceiptStatus
	Pagination pagination.PaginationParams
}

// ReceiptRepository defines the interface for receipt data operations.
type ReceiptRepository interface {
	// CreateWithBalance persists the receipt, its item rows and the
	// client's new balance in one transaction. Either everything lands
	// or nothing does; there is no partial-mutation window.
	CreateWithBalance(ctx context.Context, receipt *entity.Receipt, newBalance float64, balanceNote string) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	// GetWithItems loads a receipt along with its given and received rows.
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams) ([]entity.Receipt, int64, error)
	// ListWithCursor applies the same filters as List but pages with an
	// opaque cursor instead of page numbers.
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *ReceiptFilterParams, cursor *pagination.CursorParams) ([]entity.Receipt, error)
}
