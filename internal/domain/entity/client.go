package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client is a goldsmith-shop client. Balance is the signed weight the shop
// owes the client (negative when the client owes the shop); it is the one
// piece of form state that outlives a receipt.
type Client struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientName  string         `gorm:"size:255;not null" json:"client_name"`
	ShopName    *string        `gorm:"size:255" json:"shop_name,omitempty"`
	PhoneNumber *string        `gorm:"size:50" json:"phone_number,omitempty"`
	Address     *string        `gorm:"type:text" json:"address,omitempty"`
	Balance     float64        `gorm:"not null;default:0" json:"balance"`
	BalanceNote string         `gorm:"type:text" json:"balance_note,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User     User      `gorm:"foreignKey:UserID" json:"-"`
	Receipts []Receipt `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}
