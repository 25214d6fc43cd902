package repository

import (
	"context"

	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	"github.com/aurumworks/goldsmith-api/pkg/pagination"
	"github.com/google/uuid"
)

// ClientRepository defines the interface for client data operations.
// GetByID is the single lookup collaborator the receipt form binds a
// client through; callers must pass the client ID explicitly.
type ClientRepository interface {
	Create(ctx context.Context, client *entity.Client) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)
	Update(ctx context.Context, client *entity.Client) error
	// UpdateBalance overwrites the stored balance and its note.
	UpdateBalance(ctx context.Context, id uuid.UUID, balance float64, note string) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns clients with page-based pagination, filtered by search.
	List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error)
	// ListWithCursor returns clients using cursor-based pagination.
	ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) ([]entity.Client, error)
}
