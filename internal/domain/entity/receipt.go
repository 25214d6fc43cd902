package entity

import (
	"time"

	"github.com/aurumworks/goldsmith-api/internal/domain/enum"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Receipt records one exchange of metal between the shop and a client:
// the items given in, the items received back, and the balance carried
// forward. All stored weights are rounded to three decimals at submission.
type Receipt struct {
	ID        uuid.UUID          `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID          `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID  uuid.UUID          `gorm:"type:uuid;not null;index" json:"client_id"`
	VoucherNo string             `gorm:"size:50;unique;not null" json:"voucher_no"`
	MetalType enum.MetalType     `gorm:"default:0" json:"metal_type"`
	Status    enum.ReceiptStatus `gorm:"default:0" json:"status"`
	IssueDate time.Time          `gorm:"type:date;not null" json:"issue_date"`

	// Client snapshot at submission time; the live client record may
	// change afterwards.
	ClientName  string  `gorm:"size:255;not null" json:"client_name"`
	ShopName    *string `gorm:"size:255" json:"shop_name,omitempty"`
	PhoneNumber *string `gorm:"size:50" json:"phone_number,omitempty"`

	PreviousBalance     float64 `gorm:"not null;default:0" json:"previous_balance"`
	GivenGrossWeight    float64 `gorm:"not null;default:0" json:"given_gross_weight"`
	GivenStoneWeight    float64 `gorm:"not null;default:0" json:"given_stone_weight"`
	GivenNetWeight      float64 `gorm:"not null;default:0" json:"given_net_weight"`
	GivenFinalWeight    float64 `gorm:"not null;default:0" json:"given_final_weight"`
	GivenStoneAmount    float64 `gorm:"not null;default:0" json:"given_stone_amount"`
	ReceivedGold        float64 `gorm:"not null;default:0" json:"received_gold"`
	ReceivedFinalWeight float64 `gorm:"not null;default:0" json:"received_final_weight"`
	BalanceWeight       float64 `gorm:"not null;default:0" json:"balance_weight"`
	NewClientBalance    float64 `gorm:"not null;default:0" json:"new_client_balance"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Client        *Client        `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	GivenItems    []GivenItem    `gorm:"foreignKey:ReceiptID" json:"given_items,omitempty"`
	ReceivedItems []ReceivedItem `gorm:"foreignKey:ReceiptID" json:"received_items"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// GivenItem is one line of metal handed to the shop. A row whose Tag is
// "BALANCE" is the synthetic carry-forward row and may hold signed weights.
type GivenItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ItemName     string         `gorm:"size:255" json:"item_name"`
	Tag          string         `gorm:"size:50" json:"tag"`
	GrossWeight  float64        `gorm:"not null;default:0" json:"gross_wt"`
	StoneWeight  float64        `gorm:"not null;default:0" json:"stone_wt"`
	MeltingTouch float64        `gorm:"not null;default:0" json:"melting_touch"`
	NetWeight    float64        `gorm:"not null;default:0" json:"net_wt"`
	FinalWeight  float64        `gorm:"not null;default:0" json:"final_wt"`
	StoneAmount  float64        `gorm:"not null;default:0" json:"stone_amount"`
	EntryDate    time.Time      `gorm:"type:date" json:"entry_date"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new given item
func (i *GivenItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the GivenItem model
func (GivenItem) TableName() string {
	return "given_items"
}

// ReceivedItem is one line of metal returned by the client.
type ReceivedItem struct {
	ID           uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ReceiptID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"receipt_id"`
	ReceivedGold float64        `gorm:"not null;default:0" json:"received_gold"`
	Melting      float64        `gorm:"not null;default:0" json:"melting"`
	FinalWeight  float64        `gorm:"not null;default:0" json:"final_wt"`
	EntryDate    time.Time      `gorm:"type:date" json:"entry_date"`
	CreatedAt    time.Time      `json:"created_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	Receipt Receipt `gorm:"foreignKey:ReceiptID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new received item
func (i *ReceivedItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceivedItem model
func (ReceivedItem) TableName() string {
	return "received_items"
}
