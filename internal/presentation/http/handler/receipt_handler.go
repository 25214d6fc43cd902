package handler

import (
	"strconv"
	"time"

	"github.com/aurumworks/goldsmith-api/internal/application/service"
	"github.com/aurumworks/goldsmith-api/internal/domain/enum"
	"github.com/aurumworks/goldsmith-api/internal/domain/repository"
	"github.com/aurumworks/goldsmith-api/internal/presentation/http/dto/request"
	"github.com/aurumworks/goldsmith-api/internal/presentation/http/dto/response"
	"github.com/aurumworks/goldsmith-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReceiptHandler handles receipt-related HTTP requests
type ReceiptHandler struct {
	receiptService *service.ReceiptService
}

// NewReceiptHandler creates a new receipt handler
func NewReceiptHandler(receiptService *service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Form returns the prefilled state for a new receipt bound to a client
func (h *ReceiptHandler) Form(c *gin.Context) {
	clientID, err := uuid.Parse(c.Query("client_id"))
	if err != nil {
		response.BadRequest(c, "A client_id query parameter is required")
		return
	}

	form, err := h.receiptService.NewForm(c.Request.Context(), clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt form prepared", form)
}

// Submit handles receipt submission
func (h *ReceiptHandler) Submit(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.SubmitReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.SubmitReceiptInput{
		UserID:    *userID,
		VoucherNo: req.VoucherNo,
		IssueDate: parseDate(req.IssueDate),
	}

	// An unparseable client ID flows through as nil so the submission
	// gate reports the missing client instead of a generic bind error.
	if clientID, err := uuid.Parse(req.ClientID); err == nil {
		input.ClientID = clientID
	}

	// A blank metal type stays unspecified so the submission gate
	// reports the missing field instead of defaulting to gold.
	metalType, ok := enum.ParseMetalType(req.MetalType)
	if !ok && req.MetalType != "" {
		response.BadRequest(c, "Unknown metal type")
		return
	}
	input.MetalType = metalType

	for _, item := range req.Items {
		input.Items = append(input.Items, service.GivenItemInput{
			ID:           item.ID,
			ItemName:     item.ItemName,
			Tag:          item.Tag,
			GrossWeight:  item.GrossWeight.Float64(),
			StoneWeight:  item.StoneWeight.Float64(),
			MeltingTouch: item.MeltingTouch.Float64(),
			StoneAmount:  item.StoneAmount.Float64(),
			EntryDate:    parseDate(item.EntryDate),
		})
	}
	for _, item := range req.ReceivedItems {
		in := service.ReceivedItemInput{
			ID:        item.ID,
			EntryDate: parseDate(item.EntryDate),
		}
		if item.ReceivedGold != nil {
			v := item.ReceivedGold.Float64()
			in.ReceivedGold = &v
		}
		if item.Melting != nil {
			v := item.Melting.Float64()
			in.Melting = &v
		}
		input.ReceivedItems = append(input.ReceivedItems, in)
	}
	if req.OverrideBalance != nil {
		v := req.OverrideBalance.Float64()
		input.OverrideBalance = &v
	}

	receipt, err := h.receiptService.Submit(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Receipt saved successfully", receipt)
}

// Get handles retrieving a single receipt with its item rows
func (h *ReceiptHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	receipt, err := h.receiptService.GetReceipt(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt retrieved successfully", receipt)
}

// List handles listing receipts with optional client and status filters
func (h *ReceiptHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	params := &repository.ReceiptFilterParams{}
	if clientIDStr := c.Query("client_id"); clientIDStr != "" {
		clientID, err := uuid.Parse(clientIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		params.ClientID = &clientID
	}
	switch c.Query("status") {
	case "incomplete":
		status := enum.ReceiptStatusIncomplete
		params.Status = &status
	case "complete":
		status := enum.ReceiptStatusComplete
		params.Status = &status
	}

	if cursor := c.Query("cursor"); cursor != "" || c.Query("limit") != "" {
		h.listWithCursor(c, *userID, params)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params.Pagination = pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}
	params.Pagination.Validate()

	result, err := h.receiptService.ListReceipts(c.Request.Context(), *userID, params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Receipts retrieved successfully", result)
}

// listWithCursor handles listing receipts with cursor-based pagination
func (h *ReceiptHandler) listWithCursor(c *gin.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "15"))

	cursorParams := &pagination.CursorParams{
		Cursor:    c.Query("cursor"),
		Direction: pagination.CursorDirection(c.DefaultQuery("direction", "next")),
		Limit:     limit,
	}
	cursorParams.Validate()

	result, err := h.receiptService.ListReceiptsWithCursor(c.Request.Context(), userID, params, cursorParams)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipts retrieved successfully", result)
}

// Delete handles receipt deletion
func (h *ReceiptHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid receipt ID")
		return
	}

	if err := h.receiptService.DeleteReceipt(c.Request.Context(), *userID, id, IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt deleted successfully", nil)
}

// parseDate accepts the form's date-only format as well as RFC 3339.
// A blank or unparseable value yields the zero time.
func parseDate(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	return time.Time{}
}
