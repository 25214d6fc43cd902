package service

import (
	"context"
	"errors"
	"math"
	"testing"
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

// fakeClientRepo is an in-memory ClientRepository for service tests.
type fakeClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	m := make(map[uuid.UUID]*entity.Client)
	for _, c := range clients {
		m[c.ID] = c
	}
	return &fakeClientRepo{clients: m}
}

func (r *fakeClientRepo) Create(ctx context.Context, client *entity.Client) error {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := r.clients[id]
	if !ok {
		return nil, nil
	}
	return c, nil
}

func (r *fakeClientRepo) Update(ctx context.Context, client *entity.Client) error {
	r.clients[client.ID] = client
	return nil
}

func (r *fakeClientRepo) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64, note string) error {
	c, ok := r.clients[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	c.Balance = balance
	c.BalanceNote = note
	return nil
}

func (r *fakeClientRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.clients, id)
	return nil
}

func (r *fakeClientRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	var out []entity.Client
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (r *fakeClientRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) ([]entity.Client, error) {
	var out []entity.Client
	for _, c := range r.clients {
		out = append(out, *c)
	}
	return out, nil
}

// fakeReceiptRepo records the receipt and balance handed to
// CreateWithBalance, optionally failing the balance step.
type fakeReceiptRepo struct {
	created     *entity.Receipt
	newBalance  float64
	balanceNote string
	failBalance bool
	createErr   error
	receipts    map[uuid.UUID]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (r *fakeReceiptRepo) CreateWithBalance(ctx context.Context, receipt *entity.Receipt, newBalance float64, balanceNote string) error {
	if r.failBalance {
		return gorm.ErrRecordNotFound
	}
	if r.createErr != nil {
		return r.createErr
	}
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	r.created = receipt
	r.newBalance = newBalance
	r.balanceNote = balanceNote
	r.receipts[receipt.ID] = receipt
	return nil
}

func (r *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	rec, ok := r.receipts[id]
	if !ok {
		return nil, nil
	}
	return rec, nil
}

func (r *fakeReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(r.receipts, id)
	return nil
}

func (r *fakeReceiptRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var out []entity.Receipt
	for _, rec := range r.receipts {
		out = append(out, *rec)
	}
	return out, int64(len(out)), nil
}

func (r *fakeReceiptRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams, cursor *pagination.CursorParams) ([]entity.Receipt, error) {
	var out []entity.Receipt
	for _, rec := range r.receipts {
		out = append(out, *rec)
	}
	return out, nil
}

// fakeVoucherRepo is a counting VoucherRepository.
type fakeVoucherRepo struct {
	next map[string]int64
	err  error
}

func newFakeVoucherRepo() *fakeVoucherRepo {
	return &fakeVoucherRepo{next: make(map[string]int64)}
}

func (r *fakeVoucherRepo) NextNumber(ctx context.Context, prefix string) (int64, error) {
	if r.err != nil {
		return 0, r.err
	}
	r.next[prefix]++
	return r.next[prefix], nil
}

func newTestReceiptService(client *entity.Client) (*ReceiptService, *fakeReceiptRepo, *fakeVoucherRepo) {
	var clients []*entity.Client
	if client != nil {
		clients = append(clients, client)
	}
	receiptRepo := newFakeReceiptRepo()
	voucherRepo := newFakeVoucherRepo()
	svc := NewReceiptService(receiptRepo, newFakeClientRepo(clients...), voucherRepo, metal.ConventionNetOfLoss, "RC")
	return svc, receiptRepo, voucherRepo
}

func testClient(balance float64) *entity.Client {
	return &entity.Client{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		ClientName: "Ramesh",
		Balance:    balance,
	}
}

func validSubmitInput(client *entity.Client) *SubmitReceiptInput {
	return &SubmitReceiptInput{
		UserID:    client.UserID,
		ClientID:  client.ID,
		IssueDate: time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		MetalType: enum.MetalTypeGold,
		Items: []GivenItemInput{
			{ItemName: "Chain", GrossWeight: 10, StoneWeight: 2, MeltingTouch: 50},
		},
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSubmitRequiresClient(t *testing.T) {
	svc, _, _ := newTestReceiptService(nil)

	_, err := svc.Submit(context.Background(), &SubmitReceiptInput{
		IssueDate: time.Now(),
		Items:     []GivenItemInput{{ItemName: "Ring", GrossWeight: 1, MeltingTouch: 100}},
	})
	if !errors.Is(err, apperror.ErrMissingClient) {
		t.Fatalf("expected ErrMissingClient for nil client ID, got %v", err)
	}

	_, err = svc.Submit(context.Background(), &SubmitReceiptInput{
		ClientID:  uuid.New(),
		IssueDate: time.Now(),
		Items:     []GivenItemInput{{ItemName: "Ring", GrossWeight: 1, MeltingTouch: 100}},
	})
	if !errors.Is(err, apperror.ErrMissingClient) {
		t.Fatalf("expected ErrMissingClient for unknown client, got %v", err)
	}
}

func TestSubmitSchemaGate(t *testing.T) {
	client := testClient(0)
	svc, _, _ := newTestReceiptService(client)

	input := validSubmitInput(client)
	input.IssueDate = time.Time{}
	input.MetalType = enum.MetalTypeUnspecified
	input.Items = nil

	_, err := svc.Submit(context.Background(), input)
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Fatalf("expected 422, got %d (%v)", appErr.Code, err)
	}
	if len(appErr.Errors) != 3 {
		t.Fatalf("expected field errors for issue_date, metal_type and items, got %v", appErr.Errors)
	}
	var sawMetalType bool
	for _, fe := range appErr.Errors {
		if fe.Field == "metal_type" {
			sawMetalType = true
		}
	}
	if !sawMetalType {
		t.Fatalf("expected a metal_type field error, got %v", appErr.Errors)
	}
}

func TestSubmitItemValidationKeyedByRow(t *testing.T) {
	client := testClient(0)
	svc, _, _ := newTestReceiptService(client)

	input := validSubmitInput(client)
	input.Items = []GivenItemInput{
		{ID: "row-1", ItemName: "Chain", GrossWeight: 10, StoneWeight: 2, MeltingTouch: 50},
		{ID: "row-2", GrossWeight: 0, StoneWeight: 3, MeltingTouch: 150},
	}

	_, err := svc.Submit(context.Background(), input)
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Fatalf("expected 422, got %d", appErr.Code)
	}

	rowErrs, ok := appErr.Details.(map[string]metal.GivenRowErrors)
	if !ok {
		t.Fatalf("expected row error map in details, got %T", appErr.Details)
	}
	if _, ok := rowErrs["row-1"]; ok {
		t.Error("valid row should not appear in the error map")
	}
	bad, ok := rowErrs["row-2"]
	if !ok {
		t.Fatal("invalid row missing from the error map")
	}
	if bad.ItemName == "" || bad.GrossWeight == "" || bad.StoneWeight == "" || bad.MeltingTouch == "" {
		t.Errorf("expected all four field messages, got %+v", bad)
	}
}

func TestSubmitReceivedValidationOnlyWhenInput(t *testing.T) {
	client := testClient(0)
	svc, repo, _ := newTestReceiptService(client)

	// All-blank received rows pass straight through.
	input := validSubmitInput(client)
	input.ReceivedItems = []ReceivedItemInput{{ID: "r1"}, {ID: "r2"}}
	receipt, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("blank received rows should be ignored: %v", err)
	}
	if receipt.Status != enum.ReceiptStatusIncomplete {
		t.Errorf("expected incomplete status, got %v", receipt.Status)
	}
	if receipt.ReceivedItems == nil || len(receipt.ReceivedItems) != 0 {
		t.Errorf("expected empty received items, got %v", receipt.ReceivedItems)
	}
	if repo.created == nil {
		t.Fatal("receipt was not persisted")
	}

	// A received row with input but invalid melting trips the gate.
	gold := 20.0
	melting := 150.0
	input = validSubmitInput(client)
	input.ReceivedItems = []ReceivedItemInput{{ID: "r1", ReceivedGold: &gold, Melting: &melting}}
	_, err = svc.Submit(context.Background(), input)
	appErr := apperror.GetAppError(err)
	if appErr.Code != 422 {
		t.Fatalf("expected 422 for invalid received row, got %d (%v)", appErr.Code, err)
	}
	if _, ok := appErr.Details.(map[string]metal.ReceivedRowErrors); !ok {
		t.Fatalf("expected received row error map, got %T", appErr.Details)
	}
}

func TestSubmitBalanceArithmetic(t *testing.T) {
	// Prior balance -5, one item 10/2/50: net 8, final 4. Nothing
	// received, so the receipt balance is 4 and the client lands on -1.
	client := testClient(-5)
	svc, repo, _ := newTestReceiptService(client)

	receipt, err := svc.Submit(context.Background(), validSubmitInput(client))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if !almostEqual(receipt.GivenNetWeight, 8) {
		t.Errorf("net weight = %v, want 8", receipt.GivenNetWeight)
	}
	if !almostEqual(receipt.GivenFinalWeight, 4) {
		t.Errorf("final weight = %v, want 4", receipt.GivenFinalWeight)
	}
	if !almostEqual(receipt.BalanceWeight, 4) {
		t.Errorf("balance = %v, want 4", receipt.BalanceWeight)
	}
	if !almostEqual(receipt.PreviousBalance, -5) {
		t.Errorf("previous balance = %v, want -5", receipt.PreviousBalance)
	}
	if !almostEqual(receipt.NewClientBalance, -1) {
		t.Errorf("new balance = %v, want -1", receipt.NewClientBalance)
	}
	if !almostEqual(repo.newBalance, -1) {
		t.Errorf("persisted balance = %v, want -1", repo.newBalance)
	}
}

func TestSubmitSynthesizesCarryRow(t *testing.T) {
	client := testClient(-5)
	svc, _, _ := newTestReceiptService(client)

	receipt, err := svc.Submit(context.Background(), validSubmitInput(client))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if len(receipt.GivenItems) != 2 {
		t.Fatalf("expected carry row plus item row, got %d rows", len(receipt.GivenItems))
	}
	carry := receipt.GivenItems[0]
	if carry.Tag != metal.BalanceTag {
		t.Errorf("first row tag = %q, want %q", carry.Tag, metal.BalanceTag)
	}
	if !almostEqual(carry.GrossWeight, -5) {
		t.Errorf("carry gross = %v, want -5", carry.GrossWeight)
	}
	if !almostEqual(carry.FinalWeight, -5) {
		t.Errorf("carry final = %v, want -5 at melting 100", carry.FinalWeight)
	}

	// The carry row is display-only: totals cover the item rows alone.
	if !almostEqual(receipt.GivenFinalWeight, 4) {
		t.Errorf("totals must exclude the carry row, final = %v", receipt.GivenFinalWeight)
	}
}

func TestSubmitNoCarryRowForZeroBalance(t *testing.T) {
	client := testClient(0)
	svc, _, _ := newTestReceiptService(client)

	receipt, err := svc.Submit(context.Background(), validSubmitInput(client))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	for _, item := range receipt.GivenItems {
		if item.Tag == metal.BalanceTag {
			t.Fatal("no carry row expected for a zero prior balance")
		}
	}
}

func TestSubmitClientBalanceRowPassesValidation(t *testing.T) {
	// A form-supplied BALANCE row with a negative gross must not trip the
	// item gate, and must not be double-counted against the prior balance.
	client := testClient(-5)
	svc, _, _ := newTestReceiptService(client)

	input := validSubmitInput(client)
	input.Items = append([]GivenItemInput{
		{ID: "carry", ItemName: "Balance", Tag: "BALANCE", GrossWeight: -5, MeltingTouch: 100},
	}, input.Items...)

	receipt, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !almostEqual(receipt.BalanceWeight, 4) {
		t.Errorf("balance = %v, want 4", receipt.BalanceWeight)
	}
	if !almostEqual(receipt.NewClientBalance, -1) {
		t.Errorf("new balance = %v, want -1", receipt.NewClientBalance)
	}
	if len(receipt.GivenItems) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(receipt.GivenItems))
	}
}

func TestSubmitWithReceivedItems(t *testing.T) {
	client := testClient(0)
	svc, _, _ := newTestReceiptService(client)

	gold := 20.0
	melting := 10.0
	input := validSubmitInput(client)
	input.ReceivedItems = []ReceivedItemInput{{ReceivedGold: &gold, Melting: &melting}}

	receipt, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if receipt.Status != enum.ReceiptStatusComplete {
		t.Errorf("expected complete status, got %v", receipt.Status)
	}
	// net_of_loss: 20 - 20*10/100 = 18.
	if !almostEqual(receipt.ReceivedFinalWeight, 18) {
		t.Errorf("received final = %v, want 18", receipt.ReceivedFinalWeight)
	}
	// Given final 4 minus received 18.
	if !almostEqual(receipt.BalanceWeight, -14) {
		t.Errorf("balance = %v, want -14", receipt.BalanceWeight)
	}
	if len(receipt.ReceivedItems) != 1 {
		t.Fatalf("expected 1 received item, got %d", len(receipt.ReceivedItems))
	}
	if !almostEqual(receipt.ReceivedItems[0].FinalWeight, 18) {
		t.Errorf("received item final = %v, want 18", receipt.ReceivedItems[0].FinalWeight)
	}
}

func TestSubmitMeltedYieldConvention(t *testing.T) {
	client := testClient(0)
	receiptRepo := newFakeReceiptRepo()
	svc := NewReceiptService(receiptRepo, newFakeClientRepo(client), newFakeVoucherRepo(), metal.ConventionMeltedYield, "RC")

	gold := 20.0
	melting := 10.0
	input := validSubmitInput(client)
	input.ReceivedItems = []ReceivedItemInput{{ReceivedGold: &gold, Melting: &melting}}

	receipt, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	// melted_yield: 20*10/100 = 2.
	if !almostEqual(receipt.ReceivedFinalWeight, 2) {
		t.Errorf("received final = %v, want 2", receipt.ReceivedFinalWeight)
	}
}

func TestSubmitGeneratesVoucherNo(t *testing.T) {
	client := testClient(0)
	svc, _, _ := newTestReceiptService(client)

	receipt, err := svc.Submit(context.Background(), validSubmitInput(client))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if receipt.VoucherNo != "RC-000001" {
		t.Errorf("voucher = %q, want RC-000001", receipt.VoucherNo)
	}

	input := validSubmitInput(client)
	input.VoucherNo = "RC-000777"
	receipt, err = svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if receipt.VoucherNo != "RC-000777" {
		t.Errorf("explicit voucher was replaced: %q", receipt.VoucherNo)
	}
}

func TestSubmitOverrideBalance(t *testing.T) {
	client := testClient(-5)
	svc, repo, _ := newTestReceiptService(client)

	override := 2.5
	input := validSubmitInput(client)
	input.OverrideBalance = &override

	receipt, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if !almostEqual(receipt.NewClientBalance, 2.5) {
		t.Errorf("new balance = %v, want override 2.5", receipt.NewClientBalance)
	}
	if !almostEqual(repo.newBalance, 2.5) {
		t.Errorf("persisted balance = %v, want 2.5", repo.newBalance)
	}
}

func TestSubmitBalanceUpdateFailure(t *testing.T) {
	client := testClient(0)
	receiptRepo := newFakeReceiptRepo()
	receiptRepo.failBalance = true
	svc := NewReceiptService(receiptRepo, newFakeClientRepo(client), newFakeVoucherRepo(), metal.ConventionNetOfLoss, "RC")

	_, err := svc.Submit(context.Background(), validSubmitInput(client))
	appErr := apperror.GetAppError(err)
	if appErr.Code != 502 {
		t.Fatalf("expected 502 when the balance update fails, got %d (%v)", appErr.Code, err)
	}
}

func TestSubmitDuplicateVoucherNo(t *testing.T) {
	client := testClient(0)
	receiptRepo := newFakeReceiptRepo()
	receiptRepo.createErr = gorm.ErrDuplicatedKey
	svc := NewReceiptService(receiptRepo, newFakeClientRepo(client), newFakeVoucherRepo(), metal.ConventionNetOfLoss, "RC")

	input := validSubmitInput(client)
	input.VoucherNo = "RC-000042"

	_, err := svc.Submit(context.Background(), input)
	appErr := apperror.GetAppError(err)
	if appErr.Code != 409 {
		t.Fatalf("expected 409 for a reused voucher number, got %d (%v)", appErr.Code, err)
	}
	if appErr.Message != "Voucher number already used" {
		t.Fatalf("unexpected conflict message %q", appErr.Message)
	}
}

func TestListReceiptsWithCursor(t *testing.T) {
	client := testClient(0)
	svc, repo, _ := newTestReceiptService(client)

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(context.Background(), validSubmitInput(client)); err != nil {
			t.Fatalf("submit: %v", err)
		}
		repo.created = nil
	}

	cursor := &pagination.CursorParams{Limit: 1}
	cursor.Validate()
	result, err := svc.ListReceiptsWithCursor(context.Background(), client.UserID, &repository.ReceiptFilterParams{}, cursor)
	if err != nil {
		t.Fatalf("list with cursor: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected the page trimmed to 1 receipt, got %d", len(result.Items))
	}
	if !result.Pagination.HasNext {
		t.Fatal("expected HasNext with a second receipt available")
	}
	if result.Pagination.HasPrev {
		t.Fatal("expected no HasPrev on the first page")
	}
}

func TestSubmitRoundsStoredWeights(t *testing.T) {
	client := testClient(0)
	svc, _, _ := newTestReceiptService(client)

	input := validSubmitInput(client)
	input.Items = []GivenItemInput{
		{ItemName: "Bangle", GrossWeight: 10.12345, StoneWeight: 0.00049, MeltingTouch: 91.6},
	}

	receipt, err := svc.Submit(context.Background(), input)
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if receipt.GivenGrossWeight != 10.123 {
		t.Errorf("gross = %v, want 10.123", receipt.GivenGrossWeight)
	}
	item := receipt.GivenItems[0]
	if item.GrossWeight != 10.123 {
		t.Errorf("item gross = %v, want 10.123", item.GrossWeight)
	}
}

func TestNewForm(t *testing.T) {
	client := testClient(-5)
	svc, _, _ := newTestReceiptService(client)

	form, err := svc.NewForm(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}

	if form.Client == nil || form.Client.ID != client.ID {
		t.Fatal("form did not carry the client snapshot")
	}
	if !almostEqual(form.PreviousBalance, -5) {
		t.Errorf("previous balance = %v, want -5", form.PreviousBalance)
	}
	if form.VoucherNo != "RC-000001" {
		t.Errorf("voucher = %q, want RC-000001", form.VoucherNo)
	}
	if len(form.GivenItems) != 2 {
		t.Fatalf("expected carry row plus one blank row, got %d", len(form.GivenItems))
	}
	carry := form.GivenItems[0]
	if carry.Tag != metal.BalanceTag || !almostEqual(carry.GrossWeight, -5) {
		t.Errorf("carry row = %+v", carry)
	}
	if len(form.ReceivedItems) != 1 {
		t.Fatalf("expected one blank received row, got %d", len(form.ReceivedItems))
	}
}

func TestNewFormZeroBalance(t *testing.T) {
	client := testClient(0)
	svc, _, _ := newTestReceiptService(client)

	form, err := svc.NewForm(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("form failed: %v", err)
	}
	if len(form.GivenItems) != 1 {
		t.Fatalf("expected a single blank row, got %d", len(form.GivenItems))
	}
	if form.GivenItems[0].Tag == metal.BalanceTag {
		t.Error("no carry row expected for a zero balance")
	}
}

func TestNewFormVoucherFallback(t *testing.T) {
	client := testClient(0)
	receiptRepo := newFakeReceiptRepo()
	voucherRepo := newFakeVoucherRepo()
	voucherRepo.err = errors.New("sequence unavailable")
	svc := NewReceiptService(receiptRepo, newFakeClientRepo(client), voucherRepo, metal.ConventionNetOfLoss, "RC")

	form, err := svc.NewForm(context.Background(), client.ID)
	if err != nil {
		t.Fatalf("voucher failure must not fail the form: %v", err)
	}
	if !utils.IsVoucherNo(form.VoucherNo) {
		t.Errorf("placeholder voucher %q has the wrong shape", form.VoucherNo)
	}
}

func TestDeleteReceiptOwnership(t *testing.T) {
	client := testClient(0)
	svc, repo, _ := newTestReceiptService(client)

	receipt, err := svc.Submit(context.Background(), validSubmitInput(client))
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if err := svc.DeleteReceipt(context.Background(), uuid.New(), receipt.ID, false); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for another user, got %v", err)
	}
	if err := svc.DeleteReceipt(context.Background(), uuid.New(), receipt.ID, true); err != nil {
		t.Fatalf("admin delete should bypass ownership: %v", err)
	}
	if _, ok := repo.receipts[receipt.ID]; ok {
		t.Error("receipt still present after delete")
	}
}
