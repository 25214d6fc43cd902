package handler

import (
	"github.com/aurumworks/goldsmith-api/internal/application/service"
	"github.com/aurumworks/goldsmith-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// VoucherHandler handles voucher number requests
type VoucherHandler struct {
	voucherService *service.VoucherService
	receiptPrefix  string
}

// NewVoucherHandler creates a new voucher handler
func NewVoucherHandler(voucherService *service.VoucherService, receiptPrefix string) *VoucherHandler {
	return &VoucherHandler{voucherService: voucherService, receiptPrefix: receiptPrefix}
}

// Next reserves the next voucher number for a prefix. The receipt prefix
// is the default when none is given.
func (h *VoucherHandler) Next(c *gin.Context) {
	prefix := c.DefaultQuery("prefix", h.receiptPrefix)

	voucherNo, err := h.voucherService.NextVoucher(c.Request.Context(), prefix)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Voucher number reserved", gin.H{"voucher_id": voucherNo})
}
