package request

import "github.com/aurumworks/goldsmith-api/pkg/numeral"

// GivenItemRequest is one given row from the form. Weight fields accept
// plain numbers as well as the legacy tagged encodings.
type GivenItemRequest struct {
	ID           string           `json:"id"`
	ItemName     string           `json:"item_name"`
	Tag          string           `json:"tag"`
	GrossWeight  numeral.Flexible `json:"gross_wt"`
	StoneWeight  numeral.Flexible `json:"stone_wt"`
	MeltingTouch numeral.Flexible `json:"melting_touch"`
	StoneAmount  numeral.Flexible `json:"stone_amount"`
	EntryDate    string           `json:"entry_date"`
}

// ReceivedItemRequest is one received row from the form. Nil fields are
// blank inputs; a fully blank row is skipped.
type ReceivedItemRequest struct {
	ID           string            `json:"id"`
	ReceivedGold *numeral.Flexible `json:"received_gold"`
	Melting      *numeral.Flexible `json:"melting"`
	EntryDate    string            `json:"entry_date"`
}

// SubmitReceiptRequest represents a receipt submission. Structural
// requirements (client, issue date, metal type, items) are enforced by
// the submission gates rather than binding tags, so their failures come
// back classified instead of as a generic bind error.
type SubmitReceiptRequest struct {
	ClientID        string                `json:"client_id"`
	IssueDate       string                `json:"issue_date"`
	MetalType       string                `json:"metal_type"`
	VoucherNo       string                `json:"voucher_no"`
	Items           []GivenItemRequest    `json:"items"`
	ReceivedItems   []ReceivedItemRequest `json:"received_items"`
	OverrideBalance *numeral.Flexible     `json:"override_balance"`
}

// ReceiptFilterRequest represents receipt filter parameters
type ReceiptFilterRequest struct {
	ClientID string `form:"client_id"`
	Status   string `form:"status"`
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
}
