package entity

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// User is the ledger owner. Identity is managed elsewhere; only the credit balance lives here.
type User struct {
	ID        string
	Email     string
	credits   int64 // never negative
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser creates a user with an initial non-negative balance
func NewUser(id, email string, initialCredits int64, timeProvider coreport.TimeProvider) (*User, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: user id is required", errs.ErrInvalidRequest)
	}
	if initialCredits < 0 {
		return nil, fmt.Errorf("%w: initial credits cannot be negative", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	return &User{
		ID:        id,
		Email:     email,
		credits:   initialCredits,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// RestoreUser rebuilds a user from storage
func RestoreUser(id, email string, credits int64, createdAt, updatedAt time.Time) *User {
	return &User{
		ID:        id,
		Email:     email,
		credits:   credits,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// Credits returns the current balance
func (u *User) Credits() int64 {
	return u.credits
}

// CanDeduct checks if the user has enough credits for a debit
func (u *User) CanDeduct(amount int64) bool {
	return amount >= 0 && u.credits >= amount
}

// Grant adds credits and returns the new balance
func (u *User) Grant(amount int64, timeProvider coreport.TimeProvider) (int64, error) {
	if amount <= 0 {
		return u.credits, fmt.Errorf("%w: grant must be positive", errs.ErrInvalidRequest)
	}
	u.credits += amount
	u.UpdatedAt = timeProvider.Now()
	return u.credits, nil
}

// Deduct subtracts credits, rejecting the whole debit if it would go negative
func (u *User) Deduct(amount int64, timeProvider coreport.TimeProvider) (int64, error) {
	if amount <= 0 {
		return u.credits, fmt.Errorf("%w: debit must be positive", errs.ErrInvalidRequest)
	}
	if !u.CanDeduct(amount) {
		return u.credits, errs.NewInsufficientCreditsError(u.ID, amount, u.credits)
	}
	u.credits -= amount
	u.UpdatedAt = timeProvider.Now()
	return u.credits, nil
}
