package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aurumworks/goldsmith-api/internal/application/service"
	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	"github.com/aurumworks/goldsmith-api/internal/domain/metal"
	"github.com/aurumworks/goldsmith-api/internal/domain/repository"
	"github.com/aurumworks/goldsmith-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type memClientRepo struct {
	clients map[uuid.UUID]*entity.Client
}

func (r *memClientRepo) Create(ctx context.Context, c *entity.Client) error {
	r.clients[c.ID] = c
	return nil
}

func (r *memClientRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	return r.clients[id], nil
}

func (r *memClientRepo) Update(ctx context.Context, c *entity.Client) error { return nil }

func (r *memClientRepo) UpdateBalance(ctx context.Context, id uuid.UUID, balance float64, note string) error {
	return nil
}

func (r *memClientRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memClientRepo) List(ctx context.Context, userID uuid.UUID, params *pagination.PaginationParams, search string) ([]entity.Client, int64, error) {
	return nil, 0, nil
}

func (r *memClientRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *pagination.CursorParams, search string) ([]entity.Client, error) {
	return nil, nil
}

type memReceiptRepo struct {
	created  *entity.Receipt
	receipts []entity.Receipt
}

func (r *memReceiptRepo) CreateWithBalance(ctx context.Context, receipt *entity.Receipt, newBalance float64, note string) error {
	receipt.ID = uuid.New()
	r.created = receipt
	return nil
}

func (r *memReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}

func (r *memReceiptRepo) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return nil, nil
}

func (r *memReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

func (r *memReceiptRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	return r.receipts, int64(len(r.receipts)), nil
}

func (r *memReceiptRepo) ListWithCursor(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams, cursor *pagination.CursorParams) ([]entity.Receipt, error) {
	return r.receipts, nil
}

type memVoucherRepo struct{ n int64 }

func (r *memVoucherRepo) NextNumber(ctx context.Context, prefix string) (int64, error) {
	r.n++
	return r.n, nil
}

func setupReceiptRouter(t *testing.T, client *entity.Client) (*gin.Engine, *memReceiptRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	clientRepo := &memClientRepo{clients: map[uuid.UUID]*entity.Client{}}
	if client != nil {
		clientRepo.clients[client.ID] = client
	}
	receiptRepo := &memReceiptRepo{}
	svc := service.NewReceiptService(receiptRepo, clientRepo, &memVoucherRepo{}, metal.ConventionNetOfLoss, "RC")
	h := NewReceiptHandler(svc)

	router := gin.New()
	router.POST("/receipts", func(c *gin.Context) {
		c.Set("user_id", client.UserID)
		h.Submit(c)
	})
	router.GET("/receipts", func(c *gin.Context) {
		c.Set("user_id", client.UserID)
		h.List(c)
	})
	router.GET("/receipts/form", h.Form)
	return router, receiptRepo
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestSubmitAcceptsTaggedNumerics(t *testing.T) {
	client := &entity.Client{ID: uuid.New(), UserID: uuid.New(), ClientName: "Meera"}
	router, repo := setupReceiptRouter(t, client)

	// Weights in the three legacy encodings plus a plain number.
	body := `{
		"client_id": "` + client.ID.String() + `",
		"issue_date": "2026-03-14",
		"metal_type": "gold",
		"items": [{
			"item_name": "Chain",
			"gross_wt": {"$numberInt": "10"},
			"stone_wt": {"$numberDouble": "2.0"},
			"melting_touch": 50,
			"stone_amount": {"$numberLong": "0"}
		}]
	}`

	w := postJSON(router, "/receipts", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.created == nil {
		t.Fatal("receipt was not persisted")
	}
	if repo.created.GivenFinalWeight != 4 {
		t.Errorf("final weight = %v, want 4 from tagged inputs", repo.created.GivenFinalWeight)
	}
}

func TestSubmitEnvelopeOnRowError(t *testing.T) {
	client := &entity.Client{ID: uuid.New(), UserID: uuid.New(), ClientName: "Meera"}
	router, _ := setupReceiptRouter(t, client)

	body := `{
		"client_id": "` + client.ID.String() + `",
		"issue_date": "2026-03-14",
		"metal_type": "gold",
		"items": [{"id": "bad-row", "gross_wt": 0, "melting_touch": 120}]
	}`

	w := postJSON(router, "/receipts", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Success bool                       `json:"success"`
		Message string                     `json:"message"`
		Errors  map[string]json.RawMessage `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if envelope.Success {
		t.Error("success must be false on a validation failure")
	}
	if _, ok := envelope.Errors["bad-row"]; !ok {
		t.Errorf("row errors not keyed by row ID: %s", w.Body.String())
	}
}

func TestSubmitWithoutMetalType(t *testing.T) {
	client := &entity.Client{ID: uuid.New(), UserID: uuid.New(), ClientName: "Meera"}
	router, repo := setupReceiptRouter(t, client)

	// Omitting metal_type must not fall back to gold.
	body := `{
		"client_id": "` + client.ID.String() + `",
		"issue_date": "2026-03-14",
		"items": [{"item_name": "Chain", "gross_wt": 10, "stone_wt": 2, "melting_touch": 50}]
	}`

	w := postJSON(router, "/receipts", body)
	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if repo.created != nil {
		t.Fatalf("receipt persisted despite missing metal type: %+v", repo.created)
	}

	var envelope struct {
		Errors []struct {
			Field string `json:"field"`
		} `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	var sawMetalType bool
	for _, fe := range envelope.Errors {
		if fe.Field == "metal_type" {
			sawMetalType = true
		}
	}
	if !sawMetalType {
		t.Errorf("expected a metal_type field error, got %s", w.Body.String())
	}
}

func TestSubmitMissingClientOverWire(t *testing.T) {
	client := &entity.Client{ID: uuid.New(), UserID: uuid.New(), ClientName: "Meera"}
	router, _ := setupReceiptRouter(t, client)

	body := `{
		"issue_date": "2026-03-14",
		"metal_type": "gold",
		"items": [{"item_name": "Ring", "gross_wt": 1, "melting_touch": 100}]
	}`

	w := postJSON(router, "/receipts", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestListReceiptsCursorMode(t *testing.T) {
	client := &entity.Client{ID: uuid.New(), UserID: uuid.New(), ClientName: "Meera"}
	router, repo := setupReceiptRouter(t, client)
	repo.receipts = []entity.Receipt{
		{ID: uuid.New(), UserID: client.UserID, ClientID: client.ID},
		{ID: uuid.New(), UserID: client.UserID, ClientID: client.ID},
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/receipts?limit=1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data struct {
			Items      []json.RawMessage `json:"items"`
			Pagination struct {
				HasNext bool `json:"has_next"`
				HasPrev bool `json:"has_prev"`
			} `json:"pagination"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if len(envelope.Data.Items) != 1 {
		t.Errorf("expected the page trimmed to 1 receipt, got %d", len(envelope.Data.Items))
	}
	if !envelope.Data.Pagination.HasNext {
		t.Error("expected has_next with a second receipt available")
	}
	if envelope.Data.Pagination.HasPrev {
		t.Error("expected no has_prev without a cursor")
	}
}

func TestFormEndpoint(t *testing.T) {
	client := &entity.Client{ID: uuid.New(), UserID: uuid.New(), ClientName: "Meera", Balance: -5}
	router, _ := setupReceiptRouter(t, client)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/receipts/form?client_id="+client.ID.String(), nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Data struct {
			PreviousBalance float64 `json:"previous_balance"`
			VoucherNo       string  `json:"voucher_no"`
			GivenItems      []struct {
				Tag string `json:"tag"`
			} `json:"given_items"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("bad envelope: %v", err)
	}
	if envelope.Data.PreviousBalance != -5 {
		t.Errorf("previous balance = %v, want -5", envelope.Data.PreviousBalance)
	}
	if len(envelope.Data.GivenItems) != 2 || envelope.Data.GivenItems[0].Tag != "BALANCE" {
		t.Errorf("expected carry row first, got %+v", envelope.Data.GivenItems)
	}
	if envelope.Data.VoucherNo == "" {
		t.Error("form must carry a voucher number")
	}
}
