package entity

import (
	"time"
)

// UsageKind distinguishes grants from debits in the audit log
type UsageKind string

// UsageKind constants
const (
	UsageGrant UsageKind = "grant"
	UsageDebit UsageKind = "debit"
)

// ActionTopUp is the implicit action recorded for top-up grants
const ActionTopUp = "topup"

// CreditUsage is one append-only audit row for a balance change
type CreditUsage struct {
	ID            string
	UserID        string
	Kind          UsageKind
	Credits       int64 // always positive; Kind gives the direction
	Action        string
	TransactionID *string
	SessionID     *string
	BalanceAfter  int64
	CreatedAt     time.Time
}

// SignedCredits returns the balance delta this row represents
func (u *CreditUsage) SignedCredits() int64 {
	if u.Kind == UsageDebit {
		return -u.Credits
	}
	return u.Credits
}

// NewGrant builds the audit row for a top-up settlement
func NewGrant(id, userID, transactionID string, credits, balanceAfter int64, at time.Time) *CreditUsage {
	txID := transactionID
	return &CreditUsage{
		ID:            id,
		UserID:        userID,
		Kind:          UsageGrant,
		Credits:       credits,
		Action:        ActionTopUp,
		TransactionID: &txID,
		BalanceAfter:  balanceAfter,
		CreatedAt:     at,
	}
}

// NewDebit builds the audit row for a usage debit
func NewDebit(id, userID, action string, sessionID *string, credits, balanceAfter int64, at time.Time) *CreditUsage {
	return &CreditUsage{
		ID:           id,
		UserID:       userID,
		Kind:         UsageDebit,
		Credits:      credits,
		Action:       action,
		SessionID:    sessionID,
		BalanceAfter: balanceAfter,
		CreatedAt:    at,
	}
}

// UsageTotals aggregates a user's audit log
type UsageTotals struct {
	Granted int64
	Debited int64
}

// Net is the balance the audit log alone implies
func (t UsageTotals) Net() int64 {
	return t.Granted - t.Debited
}

// LedgerAudit compares the stored balance with the balance rebuilt from the audit log
type LedgerAudit struct {
	UserID        string
	Balance       int64
	Granted       int64
	Debited       int64
	Reconstructed int64
	Consistent    bool
}

// NewLedgerAudit builds an audit result from a balance and its totals
func NewLedgerAudit(userID string, balance int64, totals UsageTotals) LedgerAudit {
	return LedgerAudit{
		UserID:        userID,
		Balance:       balance,
		Granted:       totals.Granted,
		Debited:       totals.Debited,
		Reconstructed: totals.Net(),
		Consistent:    totals.Net() == balance,
	}
}
