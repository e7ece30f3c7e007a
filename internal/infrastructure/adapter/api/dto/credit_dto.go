package dto

import "time"

// BalanceResponse is the caller's current balance
type BalanceResponse struct {
	Credits int64 `json:"credits"`
}

// CheckCreditsResponse tells the client whether an action is affordable before it starts
type CheckCreditsResponse struct {
	Action     string `json:"action"`
	Credits    int64  `json:"credits"`
	Sufficient bool   `json:"sufficient"`
}

// DeductRequest spends credits on one action
type DeductRequest struct {
	Action    string  `json:"action" binding:"required"`
	SessionID *string `json:"sessionId"`
}

// DeductResponse reports a successful debit
type DeductResponse struct {
	Action    string `json:"action"`
	Deducted  int64  `json:"deducted"`
	Remaining int64  `json:"remaining"`
}

// UsageResponse is one audit log row
type UsageResponse struct {
	ID            string    `json:"id"`
	Kind          string    `json:"kind"`
	Credits       int64     `json:"credits"`
	Action        string    `json:"action"`
	TransactionID *string   `json:"transactionId,omitempty"`
	SessionID     *string   `json:"sessionId,omitempty"`
	BalanceAfter  int64     `json:"balanceAfter"`
	CreatedAt     time.Time `json:"createdAt"`
}

// AuditResponse compares the stored balance with the audit log
type AuditResponse struct {
	Balance       int64 `json:"balance"`
	Granted       int64 `json:"granted"`
	Debited       int64 `json:"debited"`
	Reconstructed int64 `json:"reconstructed"`
	Consistent    bool  `json:"consistent"`
}
