package model

import (
	"time"
)

// CreditUsage is one append-only audit row of the credit ledger.
// The partial unique index on transaction_id for grants is created by the migrator.
type CreditUsage struct {
	ID            string    `gorm:"primaryKey;size:64"`
	UserID        string    `gorm:"not null;size:64;index:idx_credit_usages_user_created,priority:1"`
	Kind          string    `gorm:"not null;size:16"`
	Credits       int64     `gorm:"not null;check:chk_credit_usages_credits_positive,credits > 0"`
	Action        string    `gorm:"not null;size:64"`
	TransactionID *string   `gorm:"size:64"`
	SessionID     *string   `gorm:"size:128"`
	BalanceAfter  int64     `gorm:"not null"`
	CreatedAt     time.Time `gorm:"not null;index:idx_credit_usages_user_created,priority:2,sort:desc"`

	User User `gorm:"foreignKey:UserID;references:ID"`
}

// TableName specifies the table name for CreditUsage
func (CreditUsage) TableName() string {
	return "credit_usages"
}
