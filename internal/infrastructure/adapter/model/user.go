package model

import (
	"time"
)

// User represents the database model for users
type User struct {
	ID        string    `gorm:"primaryKey;size:64"`
	Email     string    `gorm:"size:255"`
	Credits   int64     `gorm:"not null;default:0;check:chk_users_credits_non_negative,credits >= 0"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}
