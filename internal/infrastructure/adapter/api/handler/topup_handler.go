package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// TopUpHandler serves top-up creation, the status poll, history and the catalog
type TopUpHandler struct {
	topUps usecase.TopUpUseCase
	logger coreport.Logger
}

// NewTopUpHandler creates a new top-up handler instance
func NewTopUpHandler(topUps usecase.TopUpUseCase, logger coreport.Logger) *TopUpHandler {
	return &TopUpHandler{topUps: topUps, logger: logger}
}

// CreateTopUp handles POST /api/topup
func (h *TopUpHandler) CreateTopUp(c *gin.Context) {
	var req dto.CreateTopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, err)
		return
	}

	result, err := h.topUps.CreateTopUp(c.Request.Context(), middleware.UserID(c), middleware.UserEmail(c), req.PackageID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, dto.TopUpResponse{
		ExternalID:      result.ExternalID,
		Amount:          result.Amount,
		AmountFormatted: entity.FormatRupiah(result.Amount),
		DisplayPayload:  result.DisplayPayload,
		DisplayType:     string(result.DisplayType),
		ExpiresAt:       result.ExpiresAt,
		Provider:        result.Provider,
	})
}

// CheckStatus handles POST /api/topup/status, the client-driven poll
func (h *TopUpHandler) CheckStatus(c *gin.Context) {
	var req dto.StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortInvalid(c, err)
		return
	}

	result, err := h.topUps.CheckStatus(c.Request.Context(), middleware.UserID(c), req.ExternalID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		ExternalID: result.ExternalID,
		Status:     string(result.Status),
		PaidAt:     result.PaidAt,
		Amount:     result.Amount,
	})
}

// ListTransactions handles GET /api/transactions
func (h *TopUpHandler) ListTransactions(c *gin.Context) {
	limit, err := queryLimit(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	txns, err := h.topUps.ListTransactions(c.Request.Context(), middleware.UserID(c), limit)
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.TransactionResponse, 0, len(txns))
	for _, t := range txns {
		out = append(out, dto.TransactionResponse{
			ID:            t.ID,
			ExternalID:    t.ExternalID,
			PackageID:     t.PackageID,
			Amount:        t.Amount,
			Status:        string(t.Status),
			Provider:      t.Provider,
			PaymentMethod: t.PaymentMethod,
			PaidAt:        t.PaidAt,
			CreatedAt:     t.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"transactions": out})
}

// ListDeliveries handles GET /api/transactions/:externalId/webhooks
func (h *TopUpHandler) ListDeliveries(c *gin.Context) {
	events, err := h.topUps.ListDeliveries(c.Request.Context(), middleware.UserID(c), c.Param("externalId"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.DeliveryResponse, 0, len(events))
	for _, e := range events {
		out = append(out, dto.DeliveryResponse{
			ID:              e.ID,
			Provider:        e.Provider,
			ReportedStatus:  e.ReportedStatus,
			SignatureValid:  e.SignatureValid,
			Result:          string(e.Result),
			ProcessingError: e.ProcessingError,
			ReceivedAt:      e.ReceivedAt,
			ProcessedAt:     e.ProcessedAt,
		})
	}
	c.JSON(http.StatusOK, gin.H{"deliveries": out})
}

// ListPackages handles GET /api/packages
func (h *TopUpHandler) ListPackages(c *gin.Context) {
	packages, err := h.topUps.ListPackages(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]dto.PackageResponse, 0, len(packages))
	for _, p := range packages {
		out = append(out, dto.PackageResponse{
			ID:             p.ID,
			Name:           p.Name,
			Credits:        p.Credits,
			Price:          p.Price,
			PriceFormatted: entity.FormatRupiah(p.Price),
		})
	}
	c.JSON(http.StatusOK, gin.H{"packages": out})
}
