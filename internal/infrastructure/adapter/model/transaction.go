package model

import (
	"time"
)

// Transaction represents the database model for top-up transactions
type Transaction struct {
	ID              string `gorm:"primaryKey;size:64"`
	ExternalID      string `gorm:"uniqueIndex;not null;size:128"`
	UserID          string `gorm:"not null;index;size:64"`
	PackageID       string `gorm:"not null;size:64"`
	Amount          int64  `gorm:"not null"`
	AmountCorrected bool   `gorm:"not null;default:false"`
	Status          string `gorm:"not null;size:16;index"`
	Provider        string `gorm:"not null;size:32"`
	ProviderRef     string `gorm:"size:128;index"`
	DisplayPayload  string `gorm:"type:text"`
	DisplayType     string `gorm:"size:32"`
	ExpiresAt       *time.Time
	PaidAt          *time.Time
	PaymentMethod   string    `gorm:"size:64"`
	CreatedAt       time.Time `gorm:"not null;index"`
	UpdatedAt       time.Time `gorm:"not null"`

	// Define relationships
	User    User          `gorm:"foreignKey:UserID;references:ID"`
	Package CreditPackage `gorm:"foreignKey:PackageID;references:ID"`
}

// TableName specifies the table name for Transaction
func (Transaction) TableName() string {
	return "transactions"
}
