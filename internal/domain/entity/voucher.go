package entity

// VoucherSequence backs voucher-number generation, one row per prefix
// ("RC" for receipts, "SH" for shop vouchers). Next is the number the next
// voucher will take.
type VoucherSequence struct {
	Prefix string `gorm:"size:10;primary_key" json:"prefix"`
	Next   int64  `gorm:"not null;default:1" json:"next"`
}

// TableName returns the table name for the VoucherSequence model
func (VoucherSequence) TableName() string {
	return "voucher_sequences"
}
