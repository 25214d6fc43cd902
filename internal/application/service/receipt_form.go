package service

import (
	"context"
	"time"

	"github.com/aurumworks/goldsmith-api/internal/domain/entity"
	"github.com/aurumworks/goldsmith-api/internal/domain/metal"
	"github.com/aurumworks/goldsmith-api/pkg/apperror"
	"github.com/aurumworks/goldsmith-api/pkg/utils"
	"github.com/google/uuid"
)

// FormRow is one prefilled given row of a fresh receipt form, with the
// derived weights already computed.
type FormRow struct {
	ID           string  `json:"id"`
	ItemName     string  `json:"item_name"`
	Tag          string  `json:"tag"`
	GrossWeight  float64 `json:"gross_wt"`
	StoneWeight  float64 `json:"stone_wt"`
	MeltingTouch float64 `json:"melting_touch"`
	NetWeight    float64 `json:"net_wt"`
	FinalWeight  float64 `json:"final_wt"`
	StoneAmount  float64 `json:"stone_amount"`
}

// FormReceivedRow is one blank received row of a fresh form.
type FormReceivedRow struct {
	ID           string  `json:"id"`
	ReceivedGold float64 `json:"received_gold"`
	Melting      float64 `json:"melting"`
	FinalWeight  float64 `json:"final_wt"`
}

// ReceiptForm is the prefilled state a new receipt form opens with: the
// bound client, the prior balance (as a BALANCE carry row when non-zero),
// one empty placeholder row per list, and a voucher number. Every row
// list holds at least one row; rows are only ever removed down to one.
type ReceiptForm struct {
	Client          *entity.Client    `json:"client"`
	PreviousBalance float64           `json:"previous_balance"`
	VoucherNo       string            `json:"voucher_no"`
	IssueDate       time.Time         `json:"issue_date"`
	GivenItems      []FormRow         `json:"given_items"`
	ReceivedItems   []FormReceivedRow `json:"received_items"`
}

// NewForm builds the prefilled form for a client. The voucher number
// comes from the sequence when available; if that fails the form keeps a
// random placeholder and the failure is not surfaced.
func (s *ReceiptService) NewForm(ctx context.Context, clientID uuid.UUID) (*ReceiptForm, error) {
	if clientID == uuid.Nil {
		return nil, apperror.ErrMissingClient
	}
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if client == nil {
		return nil, apperror.NewNotFoundError("Client")
	}

	voucherNo := utils.PlaceholderVoucherNo(s.receiptPrefix)
	if n, err := s.voucherRepo.NextNumber(ctx, s.receiptPrefix); err == nil {
		voucherNo = utils.FormatVoucherNo(s.receiptPrefix, n)
	}

	form := &ReceiptForm{
		Client:          client,
		PreviousBalance: metal.Round3(client.Balance),
		VoucherNo:       voucherNo,
		IssueDate:       time.Now(),
		ReceivedItems:   []FormReceivedRow{{ID: uuid.New().String()}},
	}

	if client.Balance != 0 {
		carry := metal.BalanceRow(uuid.New().String(), client.Balance)
		d := carry.Derive()
		form.GivenItems = append(form.GivenItems, FormRow{
			ID:           carry.ID,
			ItemName:     carry.ItemName,
			Tag:          carry.Tag,
			GrossWeight:  metal.Round3(carry.GrossWeight),
			MeltingTouch: carry.MeltingTouch,
			NetWeight:    metal.Round3(d.NetWeight),
			FinalWeight:  metal.Round3(d.FinalWeight),
		})
	}
	form.GivenItems = append(form.GivenItems, FormRow{ID: uuid.New().String()})

	return form, nil
}
