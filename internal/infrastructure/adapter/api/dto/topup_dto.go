package dto

import "time"

// CreateTopUpRequest starts a top-up for one catalog package
type CreateTopUpRequest struct {
	PackageID string `json:"packageId" binding:"required"`
}

// TopUpResponse carries what the client needs to render the payment
type TopUpResponse struct {
	ExternalID      string     `json:"externalId"`
	Amount          int64      `json:"amount"`
	AmountFormatted string     `json:"amountFormatted"`
	DisplayPayload  string     `json:"displayPayload"`
	DisplayType     string     `json:"displayType"`
	ExpiresAt       *time.Time `json:"expiresAt,omitempty"`
	Provider        string     `json:"provider"`
}

// StatusRequest is the client poll body
type StatusRequest struct {
	ExternalID string `json:"externalId" binding:"required"`
}

// StatusResponse is the poll answer
type StatusResponse struct {
	ExternalID string     `json:"externalId"`
	Status     string     `json:"status"`
	PaidAt     *time.Time `json:"paidAt,omitempty"`
	Amount     int64      `json:"amount"`
}

// TransactionResponse is one row of the top-up history
type TransactionResponse struct {
	ID            string     `json:"id"`
	ExternalID    string     `json:"externalId"`
	PackageID     string     `json:"packageId"`
	Amount        int64      `json:"amount"`
	Status        string     `json:"status"`
	Provider      string     `json:"provider"`
	PaymentMethod string     `json:"paymentMethod,omitempty"`
	PaidAt        *time.Time `json:"paidAt,omitempty"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// PackageResponse is one catalog entry
type PackageResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Credits        int64  `json:"credits"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"priceFormatted"`
}
