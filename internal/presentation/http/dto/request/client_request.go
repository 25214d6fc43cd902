package request

import "github.com/aurumworks/goldsmith-api/pkg/numeral"

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	ClientName     string           `json:"client_name" binding:"required,min=2,max=255"`
	ShopName       *string          `json:"shop_name" binding:"omitempty,max=255"`
	PhoneNumber    *string          `json:"phone_number" binding:"omitempty,max=50"`
	Address        *string          `json:"address"`
	OpeningBalance numeral.Flexible `json:"opening_balance"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	ClientName  *string `json:"client_name" binding:"omitempty,min=2,max=255"`
	ShopName    *string `json:"shop_name" binding:"omitempty,max=255"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=50"`
	Address     *string `json:"address"`
}

// BalanceOverrideRequest sets a client's balance to an explicit value.
// The balance field accepts the legacy tagged numeric encodings.
type BalanceOverrideRequest struct {
	Balance *numeral.Flexible `json:"balance" binding:"required"`
	Reason  string            `json:"reason" binding:"omitempty,max=500"`
}

// ClientFilterRequest represents client filter parameters
type ClientFilterRequest struct {
	Search  string `form:"search"`
	Page    int    `form:"page"`
	PerPage int    `form:"per_page"`
	Cursor  string `form:"cursor"`
	Limit   int    `form:"limit"` // For cursor-based pagination
}
