package service

import (
	"context"
	"errors"
	"time"

	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	"github.com/aurumworks/goldsmith-api/internal/domain/enum"
	"github.com/aurumworks/goldsmith-api/internal/domain/metal"
	"github.com/aurumworks/goldsmith-api/internal/domain/repository"
	"github.com/aurumworks/goldsmith-api/pkg/apperror"
	"github.com/aurumworks/goldsmith-api/pkg/pagination"
	"github.com/aurumworks/goldsmith-api/pkg/utils"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptService hosts the receipt form's submission flow: gate checks,
// row validation, weight derivation and the balance carry, ending in one
// transactional write.
type ReceiptService struct {
	receiptRepo   repository.ReceiptRepository
	clientRepo    repository.ClientRepository
	voucherRepo   repository.VoucherRepository
	convention    metal.ReceivedConvention
	receiptPrefix string
}

// NewReceiptService creates a new receipt service
func NewReceiptService(
	receiptRepo repository.ReceiptRepository,
	clientRepo repository.ClientRepository,
	voucherRepo repository.VoucherRepository,
	convention metal.ReceivedConvention,
	receiptPrefix string,
) *ReceiptService {
	if !convention.Valid() {
		convention = metal.ConventionNetOfLoss
	}
	return &ReceiptService{
		receiptRepo:   receiptRepo,
		clientRepo:    clientRepo,
		voucherRepo:   voucherRepo,
		convention:    convention,
		receiptPrefix: receiptPrefix,
	}
}

// GivenItemInput is one given row as submitted by the form.
type GivenItemInput struct {
	ID           string
	ItemName     string
	Tag          string
	GrossWeight  float64
	StoneWeight  float64
	MeltingTouch float64
	StoneAmount  float64
	EntryDate    time.Time
}

// ReceivedItemInput is one received row as submitted by the form. Nil
// fields mean the field was left blank; a row with both blank is ignored.
type ReceivedItemInput struct {
	ID           string
	ReceivedGold *float64
	Melting      *float64
	EntryDate    time.Time
}

// SubmitReceiptInput is the submission payload. OverrideBalance, when
// set, replaces the computed carry-forward as the client's new balance.
type SubmitReceiptInput struct {
	UserID          uuid.UUID
	ClientID        uuid.UUID
	IssueDate       time.Time
	MetalType       enum.MetalType
	VoucherNo       string
	Items           []GivenItemInput
	ReceivedItems   []ReceivedItemInput
	OverrideBalance *float64
}

// Submit validates and persists a receipt. The gates run in a fixed
// order: bound client, form schema, given rows, then received rows (only
// when any received row carries input). The client's balance update and
// the receipt insert happen in one transaction, so a failure never leaves
// the balance mutated without a receipt.
func (s *ReceiptService) Submit(ctx context.Context, input *SubmitReceiptInput) (*entity.Receipt, error) {
	if input.ClientID == uuid.Nil {
		return nil, apperror.ErrMissingClient
	}
	client, err := s.clientRepo.GetByID(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.ErrMissingClient
	}

	if fieldErrs := validateReceiptSchema(input); fieldErrs != nil {
		return nil, &apperror.AppError{
			Code:    apperror.ErrSchemaInvalid.Code,
			Message: apperror.ErrSchemaInvalid.Message,
			Errors:  fieldErrs,
		}
	}

	givenRows := toGivenRows(input.Items)
	if rowErrs := metal.ValidateGivenRows(givenRows); rowErrs != nil {
		return nil, apperror.NewItemValidationError("Item validation failed", rowErrs)
	}

	receivedRows := toReceivedRows(input.ReceivedItems)
	hasReceived := metal.AnyReceivedInput(receivedRows)
	if hasReceived {
		if rowErrs := metal.ValidateReceivedRows(receivedRows); rowErrs != nil {
			return nil, apperror.NewItemValidationError("Received item validation failed", rowErrs)
		}
	}

	// The carry row rides along as a display row but stays out of the
	// balance arithmetic: the prior balance enters once, through
	// CarryForward, never twice.
	prior := client.Balance
	itemRows := withoutBalanceRows(givenRows)
	carryRows := balanceRowsOf(givenRows)
	if len(carryRows) == 0 && prior != 0 {
		carryRows = []metal.GivenRow{metal.BalanceRow(uuid.New().String(), prior)}
	}

	givenTotals := metal.SumGiven(itemRows)
	receivedTotals := metal.SumReceived(receivedRows, s.convention)
	balance := metal.Balance(givenTotals, receivedTotals)

	newBalance := metal.CarryForward(prior, balance)
	if input.OverrideBalance != nil {
		newBalance = *input.OverrideBalance
	}

	voucherNo := input.VoucherNo
	if voucherNo == "" {
		n, err := s.voucherRepo.NextNumber(ctx, s.receiptPrefix)
		if err != nil {
			return nil, apperror.NewAppError(500, "Failed to generate voucher number")
		}
		voucherNo = utils.FormatVoucherNo(s.receiptPrefix, n)
	}

	status := enum.ReceiptStatusIncomplete
	if hasReceived {
		status = enum.ReceiptStatusComplete
	}

	receipt := &entity.Receipt{
		UserID:      input.UserID,
		ClientID:    client.ID,
		VoucherNo:   voucherNo,
		MetalType:   input.MetalType,
		Status:      status,
		IssueDate:   input.IssueDate,
		ClientName:  client.ClientName,
		ShopName:    client.ShopName,
		PhoneNumber: client.PhoneNumber,

		PreviousBalance:     metal.Round3(prior),
		GivenGrossWeight:    metal.Round3(givenTotals.GrossWeight),
		GivenStoneWeight:    metal.Round3(givenTotals.StoneWeight),
		GivenNetWeight:      metal.Round3(givenTotals.NetWeight),
		GivenFinalWeight:    metal.Round3(givenTotals.FinalWeight),
		GivenStoneAmount:    metal.Round3(givenTotals.StoneAmount),
		ReceivedGold:        metal.Round3(receivedTotals.ReceivedGold),
		ReceivedFinalWeight: metal.Round3(receivedTotals.FinalWeight),
		BalanceWeight:       metal.Round3(balance),
		NewClientBalance:    metal.Round3(newBalance),
	}

	receipt.GivenItems = buildGivenItems(append(carryRows, itemRows...), input.Items)
	if hasReceived {
		receipt.ReceivedItems = buildReceivedItems(receivedRows, input.ReceivedItems, s.convention)
	} else {
		receipt.ReceivedItems = []entity.ReceivedItem{}
	}

	note := "Receipt " + voucherNo
	if err := s.receiptRepo.CreateWithBalance(ctx, receipt, metal.Round3(newBalance), note); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NewAppError(502, "Failed to update client balance")
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperror.NewConflictError("Voucher number already used")
		}
		return nil, err
	}

	return receipt, nil
}

// validateReceiptSchema covers the structural gate: issue date, metal
// type, and a non-empty item list.
func validateReceiptSchema(input *SubmitReceiptInput) []apperror.FieldError {
	var errs []apperror.FieldError
	if input.IssueDate.IsZero() {
		errs = append(errs, apperror.FieldError{Field: "issue_date", Message: "Issue date is required"})
	}
	if !input.MetalType.IsValid() {
		errs = append(errs, apperror.FieldError{Field: "metal_type", Message: "Metal type is required"})
	}
	if len(input.Items) == 0 {
		errs = append(errs, apperror.FieldError{Field: "items", Message: "At least one item is required"})
	}
	return errs
}

func toGivenRows(items []GivenItemInput) []metal.GivenRow {
	rows := make([]metal.GivenRow, len(items))
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}
		rows[i] = metal.GivenRow{
			ID:           id,
			ItemName:     item.ItemName,
			Tag:          item.Tag,
			GrossWeight:  item.GrossWeight,
			StoneWeight:  item.StoneWeight,
			MeltingTouch: item.MeltingTouch,
			StoneAmount:  item.StoneAmount,
		}
	}
	return rows
}

func toReceivedRows(items []ReceivedItemInput) []metal.ReceivedRow {
	rows := make([]metal.ReceivedRow, len(items))
	for i, item := range items {
		id := item.ID
		if id == "" {
			id = uuid.New().String()
		}
		row := metal.ReceivedRow{ID: id}
		if item.ReceivedGold != nil {
			row.ReceivedGold = *item.ReceivedGold
		}
		if item.Melting != nil {
			row.Melting = *item.Melting
		}
		rows[i] = row
	}
	return rows
}

func withoutBalanceRows(rows []metal.GivenRow) []metal.GivenRow {
	out := make([]metal.GivenRow, 0, len(rows))
	for _, r := range rows {
		if !r.IsBalanceRow() {
			out = append(out, r)
		}
	}
	return out
}

func balanceRowsOf(rows []metal.GivenRow) []metal.GivenRow {
	var out []metal.GivenRow
	for _, r := range rows {
		if r.IsBalanceRow() {
			out = append(out, r)
		}
	}
	return out
}

// buildGivenItems turns validated rows into persistable items, recomputing
// derived weights from the raw fields rather than trusting anything the
// form displayed.
func buildGivenItems(rows []metal.GivenRow, inputs []GivenItemInput) []entity.GivenItem {
	dates := make(map[string]time.Time, len(inputs))
	for _, in := range inputs {
		if in.ID != "" {
			dates[in.ID] = in.EntryDate
		}
	}

	items := make([]entity.GivenItem, len(rows))
	for i, row := range rows {
		d := row.Derive()
		entryDate := dates[row.ID]
		if entryDate.IsZero() {
			entryDate = time.Now()
		}
		items[i] = entity.GivenItem{
			ItemName:     row.ItemName,
			Tag:          row.Tag,
			GrossWeight:  metal.Round3(row.GrossWeight),
			StoneWeight:  metal.Round3(row.StoneWeight),
			MeltingTouch: row.MeltingTouch,
			NetWeight:    metal.Round3(d.NetWeight),
			FinalWeight:  metal.Round3(d.FinalWeight),
			StoneAmount:  metal.Round3(row.StoneAmount),
			EntryDate:    entryDate,
		}
	}
	return items
}

func buildReceivedItems(rows []metal.ReceivedRow, inputs []ReceivedItemInput, convention metal.ReceivedConvention) []entity.ReceivedItem {
	dates := make(map[string]time.Time, len(inputs))
	for _, in := range inputs {
		if in.ID != "" {
			dates[in.ID] = in.EntryDate
		}
	}

	items := make([]entity.ReceivedItem, 0, len(rows))
	for _, row := range rows {
		if !row.HasInput() {
			continue
		}
		entryDate := dates[row.ID]
		if entryDate.IsZero() {
			entryDate = time.Now()
		}
		items = append(items, entity.ReceivedItem{
			ReceivedGold: metal.Round3(row.ReceivedGold),
			Melting:      row.Melting,
			FinalWeight:  metal.Round3(metal.ReceivedFinal(row.ReceivedGold, row.Melting, convention)),
			EntryDate:    entryDate,
		})
	}
	return items
}

// GetReceipt retrieves a receipt with its item rows
func (s *ReceiptService) GetReceipt(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	return receipt, nil
}

// ListReceipts lists receipts with filtering
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// ListReceiptsWithCursor lists receipts with the same filters as
// ListReceipts but paged by cursor.
func (s *ReceiptService) ListReceiptsWithCursor(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams, cursor *pagination.CursorParams) (*pagination.CursorPaginatedResult[entity.Receipt], error) {
	receipts, err := s.receiptRepo.ListWithCursor(ctx, userID, params, cursor)
	if err != nil {
		return nil, err
	}

	pag, items := pagination.NewCursorPagination(receipts, cursor.Limit,
		func(r entity.Receipt) string { return r.ID.String() },
		func(r entity.Receipt) time.Time { return r.CreatedAt },
	)
	pag.HasPrev = cursor.Cursor != ""

	return pagination.NewCursorPaginatedResult(items, pag), nil
}

// DeleteReceipt removes a receipt. The client balance is left as is; a
// deleted receipt does not unwind the carry. Admins may delete any
// receipt, staff only their own.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, userID, id uuid.UUID, isAdmin bool) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}
	if !isAdmin && receipt.UserID != userID {
		return apperror.ErrForbidden
	}
	return s.receiptRepo.Delete(ctx, id)
}
