package service

import (
	"context"
	"fmt"
	"time"

	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	"github.com/aurumworks/goldsmith-api/internal/domain/metal"
	"github.com/aurumworks/goldsmith-api/internal/domain/repository"
	"github.com/aurumworks/goldsmith-api/pkg/apperror"
	"github.com/aurumworks/goldsmith-api/pkg/pagination"
	"github.com/google/uuid"
)

// ClientService handles client-related operations
type ClientService struct {
	clientRepo repository.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repository.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// CreateClientInput represents the create client input
type CreateClientInput struct {
	UserID         uuid.UUID
	ClientName     string
	ShopName       *string
	PhoneNumber    *string
	Address        *string
	OpeningBalance float64
}

// CreateClient creates a new client. A non-zero opening balance seeds the
// carry-forward chain; the first receipt for this client opens with it.
func (s *ClientService) CreateClient(ctx context.Context, input *CreateClientInput) (*entity.Client, error) {
	client := &entity.Client{
		UserID:      input.UserID,
		ClientName:  input.ClientName,
		ShopName:    input.ShopName,
		PhoneNumber: input.PhoneNumber,
		Address:     input.Address,
		Balance:     metal.Round3(input.OpeningBalance),
	}
	if input.OpeningBalance != 0 {
		client.BalanceNote = "Opening balance"
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// GetClient retrieves a client by ID
func (s *ClientService) GetClient(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}
	return client, nil
}

// UpdateClientInput represents the update client input
type UpdateClientInput struct {
	ClientName  *string
	ShopName    *string
	PhoneNumber *string
	Address     *string
}

// UpdateClient updates a client's contact fields. The balance is not
// touched here; use OverrideBalance for corrections.
func (s *ClientService) UpdateClient(ctx context.Context, id uuid.UUID, input *UpdateClientInput) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	if input.ClientName != nil {
		client.ClientName = *input.ClientName
	}
	if input.ShopName != nil {
		client.ShopName = input.ShopName
	}
	if input.PhoneNumber != nil {
		client.PhoneNumber = input.PhoneNumber
	}
	if input.Address != nil {
		client.Address = input.Address
	}

	if err := s.clientRepo.Update(ctx, client); err != nil {
		return nil, err
	}

	return client, nil
}

// OverrideBalance replaces a client's stored balance with an explicit
// value, recording who set it and why. Used for manual corrections
// outside the receipt flow.
func (s *ClientService) OverrideBalance(ctx context.Context, id uuid.UUID, balance float64, reason, actor string) (*entity.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	note := "Manual adjustment"
	if actor != "" {
		note = fmt.Sprintf("Manual adjustment by %s", actor)
	}
	if reason != "" {
		note = fmt.Sprintf("%s: %s", note, reason)
	}

	rounded := metal.Round3(balance)
	if err := s.clientRepo.UpdateBalance(ctx, id, rounded, note); err != nil {
		return nil, err
	}

	client.Balance = rounded
	client.BalanceNote = note
	return client, nil
}

// DeleteClient soft-deletes a client
func (s *ClientService) DeleteClient(ctx context.Context, id uuid.UUID) error {
	client, err := s.clientRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if client == nil {
		return apperror.NewNotFoundError("Client")
	}
	return s.clientRepo.Delete(ctx, id)
}

// ListClients lists a user's clients with page-based pagination
func (s *ClientService) ListClients(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Client], error) {
	clients, total, err := s.clientRepo.List(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(clients, pag), nil
}

// ListClientsWithCursor lists a user's clients using cursor-based pagination
func (s *ClientService) ListClientsWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) (*pagination.CursorPaginatedResult[entity.Client], error) {
	clients, err := s.clientRepo.ListWithCursor(ctx, userID, params, search)
	if err != nil {
		return nil, err
	}

	pag, items := pagination.NewCursorPagination(clients, params.Limit,
		func(c entity.Client) string { return c.ID.String() },
		func(c entity.Client) time.Time { return c.CreatedAt },
	)
	pag.HasPrev = params.Cursor != ""

	return pagination.NewCursorPaginatedResult(items, pag), nil
}
