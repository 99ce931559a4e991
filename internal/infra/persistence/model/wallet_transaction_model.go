package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WalletTransactionModel mirrors the 'wallet_transactions' table. Entries are
// immutable once written; the check constraint keeps amounts strictly positive
// so the type column alone carries the sign.
type WalletTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID      string          `gorm:"type:varchar(128);index;not null"`
	Type        string          `gorm:"type:varchar(8);not null"`
	Amount      decimal.Decimal `gorm:"type:numeric(12,2);not null;check:amount > 0"`
	Description string          `gorm:"type:varchar(255)"`
	Reference   string          `gorm:"type:varchar(64)"`
	Status      string          `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time       `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (WalletTransactionModel) TableName() string {
	return "wallet_transactions"
}
