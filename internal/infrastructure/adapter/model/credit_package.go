package model

import (
	"time"
)

// CreditPackage represents a catalog entry
type CreditPackage struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Name      string    `gorm:"not null;size:128"`
	Credits   int64     `gorm:"not null"`
	Price     int64     `gorm:"not null"`
	Active    bool      `gorm:"not null;default:true"`
	SortOrder int       `gorm:"not null;default:0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for CreditPackage
func (CreditPackage) TableName() string {
	return "credit_packages"
}
