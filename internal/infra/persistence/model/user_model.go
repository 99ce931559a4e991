package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UserModel mirrors the 'users' table. The primary key is the auth provider's
// UID rather than a generated UUID, since identity is owned by the external
// auth collaborator. WalletBalance is the denormalized ledger cache; it is
// only ever changed via atomic SQL increments alongside a ledger insert.
type UserModel struct {
	UID           string          `gorm:"type:varchar(128);primary_key"`
	Email         string          `gorm:"type:varchar(255);uniqueIndex;not null"`
	DisplayName   string          `gorm:"type:varchar(100)"`
	Phone         string          `gorm:"type:varchar(30)"`
	Company       string          `gorm:"type:varchar(100)"`
	Role          string          `gorm:"type:varchar(16);not null;default:customer"`
	WalletBalance decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Transactions []WalletTransactionModel `gorm:"foreignKey:UserID;references:UID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
