package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/amirhossein-jamali/credit-ledger/internal/domain/error"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// TransactionStatus is the lifecycle status of a top-up attempt
type TransactionStatus string

// TransactionStatus constants
const (
	StatusPending TransactionStatus = "PENDING"
	StatusPaid    TransactionStatus = "PAID"
	StatusExpired TransactionStatus = "EXPIRED"
	StatusFailed  TransactionStatus = "FAILED"
)

// ParseTransactionStatus normalizes a status string, case-insensitively
func ParseTransactionStatus(s string) (TransactionStatus, error) {
	switch TransactionStatus(strings.ToUpper(strings.TrimSpace(s))) {
	case StatusPending:
		return StatusPending, nil
	case StatusPaid:
		return StatusPaid, nil
	case StatusExpired:
		return StatusExpired, nil
	case StatusFailed:
		return StatusFailed, nil
	default:
		return "", fmt.Errorf("%w: unknown status %q", errs.ErrInvalidRequest, s)
	}
}

// IsTerminal reports whether no further transition is allowed under the normal lifecycle
func (s TransactionStatus) IsTerminal() bool {
	return s != StatusPending
}

// CanTransitionTo reports whether s -> next is a valid lifecycle step.
// Only PENDING has successors; PAID is never left.
func (s TransactionStatus) CanTransitionTo(next TransactionStatus) bool {
	if s != StatusPending {
		return false
	}
	return next == StatusPaid || next == StatusExpired || next == StatusFailed
}

// DisplayType tells the client how to render a provider display payload
type DisplayType string

// DisplayType constants
const (
	DisplayQRImage     DisplayType = "qr_image"
	DisplayQRString    DisplayType = "qr_string"
	DisplayRedirectURL DisplayType = "redirect_url"
)

// Transaction is one top-up attempt with a payment provider
type Transaction struct {
	ID              string            // Internal identifier, immutable
	ExternalID      string            // Reference shared with the provider, unique
	UserID          string            // Owning user, immutable
	PackageID       string            // Purchased credit package, immutable
	Amount          int64             // Amount in whole rupiah, corrected at most once before settlement
	AmountCorrected bool              // Whether the provider correction has been applied
	Status          TransactionStatus // Lifecycle status
	Provider        string            // Name of the provider adapter that created the payment
	ProviderRef     string            // Provider-side payment id
	DisplayPayload  string            // QR image, QR string or checkout URL
	DisplayType     DisplayType       // How the client renders DisplayPayload
	ExpiresAt       *time.Time        // Provider-side expiry, if any
	PaidAt          *time.Time        // Set exactly once on the PAID transition
	PaymentMethod   string            // Set exactly once on the PAID transition
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewTransaction creates a PENDING transaction with basic validation
func NewTransaction(
	id string,
	externalID string,
	userID string,
	packageID string,
	amount int64,
	provider string,
	timeProvider coreport.TimeProvider,
) (*Transaction, error) {
	if id == "" || externalID == "" {
		return nil, fmt.Errorf("%w: transaction id and external id are required", errs.ErrInvalidRequest)
	}
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", errs.ErrInvalidRequest)
	}
	if packageID == "" {
		return nil, fmt.Errorf("%w: package id is required", errs.ErrInvalidRequest)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", errs.ErrInvalidRequest)
	}

	now := timeProvider.Now()
	return &Transaction{
		ID:         id,
		ExternalID: externalID,
		UserID:     userID,
		PackageID:  packageID,
		Amount:     amount,
		Status:     StatusPending,
		Provider:   provider,
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// IsOwnedBy reports whether the transaction belongs to userID
func (t *Transaction) IsOwnedBy(userID string) bool {
	return t.UserID == userID
}

// IsExpiredAt reports whether the provider-side expiry has passed
func (t *Transaction) IsExpiredAt(now time.Time) bool {
	return t.ExpiresAt != nil && !now.Before(*t.ExpiresAt)
}

// TransactionPatch carries the post-creation provider data for UpdateAfterCreate
type TransactionPatch struct {
	Amount         *int64
	DisplayPayload *string
	DisplayType    *DisplayType
	ProviderRef    *string
	ExpiresAt      *time.Time
}

// IsEmpty reports whether the patch changes nothing
func (p TransactionPatch) IsEmpty() bool {
	return p.Amount == nil && p.DisplayPayload == nil && p.DisplayType == nil &&
		p.ProviderRef == nil && p.ExpiresAt == nil
}

// ApplyPatch applies provider data in memory, enforcing the pre-settlement rules.
// A patch whose amount equals the current amount is not a correction.
func (t *Transaction) ApplyPatch(patch TransactionPatch, timeProvider coreport.TimeProvider) error {
	if t.Status != StatusPending {
		return fmt.Errorf("%w: %s is %s", errs.ErrInvalidStatusTransition, t.ExternalID, t.Status)
	}
	if patch.Amount != nil && *patch.Amount != t.Amount {
		if t.AmountCorrected {
			return fmt.Errorf("%w: %s", errs.ErrAmountAlreadyCorrected, t.ExternalID)
		}
		if *patch.Amount <= 0 {
			return fmt.Errorf("%w: corrected amount must be positive", errs.ErrInvalidRequest)
		}
		t.Amount = *patch.Amount
		t.AmountCorrected = true
	}
	if patch.DisplayPayload != nil {
		t.DisplayPayload = *patch.DisplayPayload
	}
	if patch.DisplayType != nil {
		t.DisplayType = *patch.DisplayType
	}
	if patch.ProviderRef != nil {
		t.ProviderRef = *patch.ProviderRef
	}
	if patch.ExpiresAt != nil {
		expiresAt := *patch.ExpiresAt
		t.ExpiresAt = &expiresAt
	}
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// MarkPaid moves a PENDING transaction to PAID, setting paidAt and method once.
// When allowExpired is set an EXPIRED transaction may also be reactivated.
func (t *Transaction) MarkPaid(paidAt time.Time, method string, allowExpired bool, timeProvider coreport.TimeProvider) error {
	if t.Status != StatusPending && !(allowExpired && t.Status == StatusExpired) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, StatusPaid)
	}
	t.Status = StatusPaid
	t.PaidAt = &paidAt
	t.PaymentMethod = method
	t.UpdatedAt = timeProvider.Now()
	return nil
}

// TransitionTo moves a PENDING transaction to EXPIRED or FAILED
func (t *Transaction) TransitionTo(next TransactionStatus, timeProvider coreport.TimeProvider) error {
	if next == StatusPaid || !t.Status.CanTransitionTo(next) {
		return fmt.Errorf("%w: %s -> %s", errs.ErrInvalidStatusTransition, t.Status, next)
	}
	t.Status = next
	t.UpdatedAt = timeProvider.Now()
	return nil
}
