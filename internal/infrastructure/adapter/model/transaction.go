package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents the database model for ledger entries
type Transaction struct {
	ID          uint64          `gorm:"primaryKey;autoIncrement"`
	UserID      uint64          `gorm:"not null;index"`
	Description string          `gorm:"not null;size:255"`
	Amount      decimal.Decimal `gorm:"not null;type:numeric(10,2)"`
	Category    string          `gorm:"not null;size:100"`
	Date        time.Time       `gorm:"not null;index"`
	Type        string          `gorm:"not null;size:20"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`

	User User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
